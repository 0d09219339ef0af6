package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type calendarEventRepository struct {
	db *database.DB
}

// NewCalendarEventRepository creates a new calendar event repository
func NewCalendarEventRepository(db *database.DB) calendar.EventRepository {
	return &calendarEventRepository{db: db}
}

const calendarEventColumns = `
	id, owner_id, title, date, start_time, type, location, meeting_link,
	status, related_to, related_type, created_at, updated_at
`

// Create creates a new calendar event
func (r *calendarEventRepository) Create(ctx context.Context, e calendar.Event) (calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = calendar.EventStatusUpcoming
	}

	now := time.Now()

	query := `
		INSERT INTO calendar_events (id, owner_id, title, date, start_time, type, location,
			meeting_link, status, related_to, related_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + calendarEventColumns

	var relatedType *string
	if e.RelatedType != nil {
		rt := string(*e.RelatedType)
		relatedType = &rt
	}

	row := q.QueryRow(ctx, query,
		e.ID,
		e.OwnerID,
		e.Title,
		e.Date,
		e.StartTime,
		e.Type,
		e.Location,
		e.MeetingLink,
		string(e.Status),
		e.RelatedTo,
		relatedType,
		now,
		now,
	)

	created, err := scanCalendarEvent(row)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return created, nil
}

// GetByID retrieves a calendar event by ID
func (r *calendarEventRepository) GetByID(ctx context.Context, id string) (calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + calendarEventColumns + ` FROM calendar_events WHERE id = $1`

	e, err := scanCalendarEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.Event{}, calendar.ErrEventNotFound
		}
		return calendar.Event{}, fmt.Errorf("failed to get calendar event: %w", err)
	}

	return e, nil
}

// GetByApplication returns the interview-derived event mirroring the given
// application's interview
func (r *calendarEventRepository) GetByApplication(ctx context.Context, applicationID string) (calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + calendarEventColumns + ` FROM calendar_events WHERE related_to = $1 AND related_type = 'application'`

	e, err := scanCalendarEvent(q.QueryRow(ctx, query, applicationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.Event{}, calendar.ErrEventNotFound
		}
		return calendar.Event{}, fmt.Errorf("failed to get mirror event: %w", err)
	}

	return e, nil
}

// ListByOwner retrieves an owner's events within a date range
func (r *calendarEventRepository) ListByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]calendar.Event, error) {
	query := `SELECT ` + calendarEventColumns + ` FROM calendar_events WHERE owner_id = $1 AND date >= $2 AND date <= $3 ORDER BY date, start_time`
	return r.list(ctx, query, ownerID, from, to)
}

// ListUpcomingEndedBefore returns events still marked upcoming whose date
// lies before the cutoff
func (r *calendarEventRepository) ListUpcomingEndedBefore(ctx context.Context, cutoff time.Time) ([]calendar.Event, error) {
	query := `SELECT ` + calendarEventColumns + ` FROM calendar_events WHERE status = 'upcoming' AND date < $1`
	return r.list(ctx, query, cutoff)
}

// Update applies a partial update to a calendar event
func (r *calendarEventRepository) Update(ctx context.Context, req calendar.UpdateEventRequest) (calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if req.Title != nil {
		addSet("title", *req.Title)
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
	if req.Location != nil {
		addSet("location", *req.Location)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE calendar_events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argIndex, calendarEventColumns)
	args = append(args, req.ID)

	e, err := scanCalendarEvent(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.Event{}, calendar.ErrEventNotFound
		}
		return calendar.Event{}, fmt.Errorf("failed to update calendar event: %w", err)
	}

	return e, nil
}

func (r *calendarEventRepository) list(ctx context.Context, query string, args ...interface{}) ([]calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar events: %w", err)
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		e, err := scanCalendarEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func scanCalendarEvent(row pgx.Row) (calendar.Event, error) {
	var e calendar.Event
	var status string
	var relatedType *string

	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Title,
		&e.Date,
		&e.StartTime,
		&e.Type,
		&e.Location,
		&e.MeetingLink,
		&status,
		&e.RelatedTo,
		&relatedType,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return calendar.Event{}, err
	}

	e.Status = calendar.EventStatus(status)
	if relatedType != nil {
		rt := calendar.RelatedType(*relatedType)
		e.RelatedType = &rt
	}

	return e, nil
}
