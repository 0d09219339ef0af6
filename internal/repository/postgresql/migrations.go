package postgresql

import (
	"context"
	"fmt"

	"github.com/careerbridge/recruit-backend-go/internal/pkg/database"
)

const migration001Applications = `
CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	opportunity_id UUID NOT NULL,
	student_id UUID NOT NULL,
	recruiter_org_id UUID NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
	active_interview_id UUID,
	activities JSONB NOT NULL DEFAULT '[]'::jsonb,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

	CONSTRAINT valid_application_status CHECK (status IN ('pending', 'under_review', 'shortlisted', 'interview', 'accepted', 'rejected'))
);

CREATE INDEX IF NOT EXISTS idx_applications_student ON applications(student_id, applied_at DESC);
CREATE INDEX IF NOT EXISTS idx_applications_opportunity ON applications(opportunity_id, applied_at DESC);
`

const migration002Interviews = `
CREATE TABLE IF NOT EXISTS interviews (
	id UUID PRIMARY KEY,
	application_id UUID NOT NULL REFERENCES applications(id),
	candidate_id UUID NOT NULL,
	recruiter_id UUID NOT NULL,
	candidate_name VARCHAR(200) NOT NULL DEFAULT '',
	date DATE NOT NULL,
	start_time VARCHAR(5) NOT NULL,
	duration_minutes INTEGER NOT NULL,
	type VARCHAR(20) NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
	location VARCHAR(200) NOT NULL DEFAULT '',
	meeting_link TEXT,
	notes TEXT,
	calendar_sync_pending BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

	CONSTRAINT valid_interview_status CHECK (status IN ('scheduled', 'confirmed', 'completed', 'cancelled', 'rescheduled')),
	CONSTRAINT valid_interview_type CHECK (type IN ('screening', 'technical', 'hr_round', 'final_round')),
	CONSTRAINT valid_interview_duration CHECK (duration_minutes IN (30, 45, 60, 90, 120))
);

-- At most one non-cancelled interview per application. Concurrent schedule
-- attempts race on this index; the loser surfaces as a unique violation.
CREATE UNIQUE INDEX IF NOT EXISTS idx_interviews_active_per_application
	ON interviews(application_id) WHERE status != 'cancelled';

CREATE INDEX IF NOT EXISTS idx_interviews_candidate_date ON interviews(candidate_id, date);
CREATE INDEX IF NOT EXISTS idx_interviews_recruiter_date ON interviews(recruiter_id, date);
CREATE INDEX IF NOT EXISTS idx_interviews_sync_pending ON interviews(created_at) WHERE calendar_sync_pending = TRUE;
`

const migration003CalendarEvents = `
CREATE TABLE IF NOT EXISTS calendar_events (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	title VARCHAR(300) NOT NULL,
	date DATE NOT NULL,
	start_time VARCHAR(5) NOT NULL DEFAULT '',
	type VARCHAR(50) NOT NULL,
	location VARCHAR(200) NOT NULL DEFAULT '',
	meeting_link TEXT,
	status VARCHAR(20) NOT NULL DEFAULT 'upcoming',
	related_to UUID,
	related_type VARCHAR(20),
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

	CONSTRAINT valid_event_status CHECK (status IN ('upcoming', 'ongoing', 'completed', 'cancelled')),
	CONSTRAINT valid_related_type CHECK (related_type IS NULL OR related_type IN ('application', 'opportunity', 'challenge', 'mentorship'))
);

-- One mirror event per application; the sync upsert conflicts on this.
CREATE UNIQUE INDEX IF NOT EXISTS idx_calendar_events_application_mirror
	ON calendar_events(related_to) WHERE related_type = 'application';

CREATE INDEX IF NOT EXISTS idx_calendar_events_owner_date ON calendar_events(owner_id, date);
CREATE INDEX IF NOT EXISTS idx_calendar_events_upcoming ON calendar_events(date) WHERE status = 'upcoming';
`

const migration004Notifications = `
CREATE TABLE IF NOT EXISTS notifications (
	id UUID PRIMARY KEY,
	recipient_id UUID NOT NULL,
	sender_id UUID,
	type VARCHAR(50) NOT NULL,
	title VARCHAR(200) NOT NULL,
	message TEXT NOT NULL,
	data JSONB,
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	read_at TIMESTAMP WITH TIME ZONE,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications(recipient_id) WHERE is_read = FALSE;
`

// Migration pairs a schema version with the SQL that brings the database up
// to it.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

func migrations() []Migration {
	return []Migration{
		{Version: 1, Name: "create_applications", SQL: migration001Applications},
		{Version: 2, Name: "create_interviews", SQL: migration002Interviews},
		{Version: 3, Name: "create_calendar_events", SQL: migration003CalendarEvents},
		{Version: 4, Name: "create_notifications", SQL: migration004Notifications},
	}
}

// RunMigrations applies all pending schema migrations. Each migration runs in
// its own transaction and is recorded in schema_migrations.
func RunMigrations(ctx context.Context, db *database.DB) error {
	_, err := db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, m := range migrations() {
		if applied[m.Version] {
			continue
		}

		err := db.WithinTx(ctx, func(txCtx context.Context) error {
			q := GetQuerier(txCtx, db)
			if _, err := q.Exec(txCtx, m.SQL); err != nil {
				return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
			}
			_, err := q.Exec(txCtx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
	}

	return nil
}
