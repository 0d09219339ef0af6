package calendar

import (
	"context"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/careerbridge/recruit-backend-go/internal/domain/user"
)

// Service merges interviews and events into per-actor schedules and owns
// the event write path. SyncInterviewEvent is reserved for the scheduling
// coordinator; user-facing writes go through CreateEvent.
type Service interface {
	// GetSchedule returns the actor's merged schedule for the inclusive
	// date range, sorted ascending by start instant, ties broken by id.
	// Re-querying is idempotent; no cursor state is retained.
	GetSchedule(ctx context.Context, actorID string, role user.Role, from, to time.Time) ([]ScheduleItem, error)

	CreateEvent(ctx context.Context, ownerID string, req CreateEventRequest) (Event, error)
	ListEvents(ctx context.Context, ownerID string, from, to time.Time) ([]Event, error)

	// SyncInterviewEvent creates or refreshes the event mirroring the
	// interview: date, time and status are brought in lockstep.
	SyncInterviewEvent(ctx context.Context, iv interview.Interview) error

	// SweepPastEvents rolls upcoming events whose start passed to
	// completed and returns how many were touched.
	SweepPastEvents(ctx context.Context, now time.Time) (int, error)
}
