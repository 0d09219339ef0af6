package calendar

import (
	"context"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/user"
)

type EventRepository interface {
	Create(ctx context.Context, e Event) (Event, error)
	GetByID(ctx context.Context, id string) (Event, error)

	// GetByApplication returns the interview-derived event mirroring the
	// given application's interview.
	GetByApplication(ctx context.Context, applicationID string) (Event, error)

	ListByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]Event, error)

	Update(ctx context.Context, req UpdateEventRequest) (Event, error)

	// ListUpcomingEndedBefore returns events still marked upcoming whose
	// start lies before the cutoff; the sweep job rolls them forward.
	ListUpcomingEndedBefore(ctx context.Context, cutoff time.Time) ([]Event, error)
}

// ScheduleCache is a read-side cache for merged schedules. Entries are
// short-lived and invalidated per actor on any calendar write; a missing
// or unavailable cache is never an error for readers.
type ScheduleCache interface {
	Get(ctx context.Context, actorID string, role user.Role, from, to time.Time) ([]ScheduleItem, error)
	Set(ctx context.Context, actorID string, role user.Role, from, to time.Time, items []ScheduleItem) error
	InvalidateActor(ctx context.Context, actorID string) error
}
