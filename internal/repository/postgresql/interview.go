package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type interviewRepository struct {
	db *database.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *database.DB) interview.Repository {
	return &interviewRepository{db: db}
}

const interviewColumns = `
	id, application_id, candidate_id, recruiter_id, candidate_name, date,
	start_time, duration_minutes, type, status, location, meeting_link, notes,
	calendar_sync_pending, created_at, updated_at
`

// Create creates a new interview. The partial unique index on
// interviews(application_id) rejects a second non-cancelled interview for
// the same application, which surfaces as ErrInterviewAlreadyScheduled.
func (r *interviewRepository) Create(ctx context.Context, iv interview.Interview) (interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	if iv.ID == "" {
		iv.ID = uuid.New().String()
	}
	if iv.Status == "" {
		iv.Status = interview.StatusScheduled
	}

	now := time.Now()

	query := `
		INSERT INTO interviews (id, application_id, candidate_id, recruiter_id, candidate_name, date,
			start_time, duration_minutes, type, status, location, meeting_link, notes,
			calendar_sync_pending, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + interviewColumns

	row := q.QueryRow(ctx, query,
		iv.ID,
		iv.ApplicationID,
		iv.CandidateID,
		iv.RecruiterID,
		iv.CandidateName,
		iv.Date,
		iv.StartTime,
		iv.DurationMinutes,
		string(iv.Type),
		string(iv.Status),
		iv.Location,
		iv.MeetingLink,
		iv.Notes,
		iv.CalendarSyncPending,
		now,
		now,
	)

	created, err := scanInterview(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return interview.Interview{}, interview.ErrInterviewAlreadyScheduled
		}
		return interview.Interview{}, fmt.Errorf("failed to create interview: %w", err)
	}

	return created, nil
}

// GetByID retrieves an interview by ID
func (r *interviewRepository) GetByID(ctx context.Context, id string) (interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	iv, err := scanInterview(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return interview.Interview{}, interview.ErrInterviewNotFound
		}
		return interview.Interview{}, fmt.Errorf("failed to get interview: %w", err)
	}

	return iv, nil
}

// GetActiveByApplication returns the application's non-cancelled interview
func (r *interviewRepository) GetActiveByApplication(ctx context.Context, applicationID string) (interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE application_id = $1 AND status != 'cancelled'`

	iv, err := scanInterview(q.QueryRow(ctx, query, applicationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return interview.Interview{}, interview.ErrInterviewNotFound
		}
		return interview.Interview{}, fmt.Errorf("failed to get active interview: %w", err)
	}

	return iv, nil
}

// Update applies a partial update to an interview
func (r *interviewRepository) Update(ctx context.Context, req interview.UpdateInterviewRequest) (interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if req.Date != nil {
		addSet("date", *req.Date)
	}
	if req.StartTime != nil {
		addSet("start_time", *req.StartTime)
	}
	if req.Status != nil {
		addSet("status", string(*req.Status))
	}
	if req.CalendarSyncPending != nil {
		addSet("calendar_sync_pending", *req.CalendarSyncPending)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE interviews
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argIndex, interviewColumns)
	args = append(args, req.ID)

	iv, err := scanInterview(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return interview.Interview{}, interview.ErrInterviewNotFound
		}
		return interview.Interview{}, fmt.Errorf("failed to update interview: %w", err)
	}

	return iv, nil
}

// ListByCandidate retrieves a candidate's interviews within a date range
func (r *interviewRepository) ListByCandidate(ctx context.Context, candidateID string, from, to time.Time) ([]interview.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE candidate_id = $1 AND date >= $2 AND date <= $3 ORDER BY date, start_time`
	return r.list(ctx, query, candidateID, from, to)
}

// ListByRecruiter retrieves a recruiter's interviews within a date range
func (r *interviewRepository) ListByRecruiter(ctx context.Context, recruiterID string, from, to time.Time) ([]interview.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE recruiter_id = $1 AND date >= $2 AND date <= $3 ORDER BY date, start_time`
	return r.list(ctx, query, recruiterID, from, to)
}

// ListSyncPending retrieves interviews whose calendar mirror write failed,
// oldest first
func (r *interviewRepository) ListSyncPending(ctx context.Context, limit int) ([]interview.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE calendar_sync_pending = TRUE ORDER BY created_at LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *interviewRepository) list(ctx context.Context, query string, args ...interface{}) ([]interview.Interview, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interviews: %w", err)
	}
	defer rows.Close()

	var interviews []interview.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}

	return interviews, rows.Err()
}

func scanInterview(row pgx.Row) (interview.Interview, error) {
	var iv interview.Interview
	var ivType, status string

	err := row.Scan(
		&iv.ID,
		&iv.ApplicationID,
		&iv.CandidateID,
		&iv.RecruiterID,
		&iv.CandidateName,
		&iv.Date,
		&iv.StartTime,
		&iv.DurationMinutes,
		&ivType,
		&status,
		&iv.Location,
		&iv.MeetingLink,
		&iv.Notes,
		&iv.CalendarSyncPending,
		&iv.CreatedAt,
		&iv.UpdatedAt,
	)
	if err != nil {
		return interview.Interview{}, err
	}

	iv.Type = interview.Type(ivType)
	iv.Status = interview.Status(status)

	return iv, nil
}
