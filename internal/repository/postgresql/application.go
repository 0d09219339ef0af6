package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/application"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type applicationRepository struct {
	db *database.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *database.DB) application.Repository {
	return &applicationRepository{db: db}
}

const applicationColumns = `
	id, opportunity_id, student_id, recruiter_org_id, status, applied_at,
	active_interview_id, activities, created_at, updated_at
`

// Create creates a new application
func (r *applicationRepository) Create(ctx context.Context, app application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.Status == "" {
		app.Status = application.StatusPending
	}
	if app.Activities == nil {
		app.Activities = []application.Activity{}
	}

	activitiesJSON, err := json.Marshal(app.Activities)
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to marshal activities: %w", err)
	}

	now := time.Now()

	query := `
		INSERT INTO applications (id, opportunity_id, student_id, recruiter_org_id, status, applied_at, activities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + applicationColumns

	row := q.QueryRow(ctx, query,
		app.ID,
		app.OpportunityID,
		app.StudentID,
		app.RecruiterOrgID,
		string(app.Status),
		app.AppliedAt,
		activitiesJSON,
		now,
		now,
	)

	created, err := scanApplication(row)
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to create application: %w", err)
	}

	return created, nil
}

// GetByID retrieves an application by ID
func (r *applicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

// ListByStudent retrieves all applications submitted by a student
func (r *applicationRepository) ListByStudent(ctx context.Context, studentID string) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE student_id = $1 ORDER BY applied_at DESC`
	return r.list(ctx, query, studentID)
}

// ListByOpportunity retrieves all applications for an opportunity
func (r *applicationRepository) ListByOpportunity(ctx context.Context, opportunityID string) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE opportunity_id = $1 ORDER BY applied_at DESC`
	return r.list(ctx, query, opportunityID)
}

func (r *applicationRepository) list(ctx context.Context, query string, arg interface{}) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

// UpdateStatus moves an application from one status to another and appends
// the activity to its log. The previous status guards the update: if another
// writer moved the application first, no row matches and ErrConcurrentUpdate
// is returned.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, from, to application.Status, activity application.Activity) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	activityJSON, err := json.Marshal([]application.Activity{activity})
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to marshal activity: %w", err)
	}

	query := `
		UPDATE applications
		SET status = $1, activities = activities || $2::jsonb, updated_at = $3
		WHERE id = $4 AND status = $5
		RETURNING ` + applicationColumns

	app, err := scanApplication(q.QueryRow(ctx, query, string(to), activityJSON, time.Now(), id, string(from)))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Row missing or status moved under us; disambiguate.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return application.Application{}, getErr
			}
			return application.Application{}, application.ErrConcurrentUpdate
		}
		return application.Application{}, fmt.Errorf("failed to update application status: %w", err)
	}

	return app, nil
}

// SetActiveInterview points the application at its active interview (or
// clears the pointer) and appends the activity to its log.
func (r *applicationRepository) SetActiveInterview(ctx context.Context, id string, interviewID *string, activity application.Activity) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	activityJSON, err := json.Marshal([]application.Activity{activity})
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to marshal activity: %w", err)
	}

	query := `
		UPDATE applications
		SET active_interview_id = $1, activities = activities || $2::jsonb, updated_at = $3
		WHERE id = $4
		RETURNING ` + applicationColumns

	app, err := scanApplication(q.QueryRow(ctx, query, interviewID, activityJSON, time.Now(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("failed to set active interview: %w", err)
	}

	return app, nil
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var app application.Application
	var status string
	var activitiesJSON []byte

	err := row.Scan(
		&app.ID,
		&app.OpportunityID,
		&app.StudentID,
		&app.RecruiterOrgID,
		&status,
		&app.AppliedAt,
		&app.ActiveInterviewID,
		&activitiesJSON,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}

	app.Status = application.Status(status)
	if activitiesJSON != nil {
		if err := json.Unmarshal(activitiesJSON, &app.Activities); err != nil {
			return application.Application{}, fmt.Errorf("failed to unmarshal activities: %w", err)
		}
	}

	return app, nil
}
