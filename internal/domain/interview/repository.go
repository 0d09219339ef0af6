package interview

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists a new interview. The "at most one active interview
	// per application" invariant is enforced by the store itself (a partial
	// unique index on application_id for non-cancelled rows), not by a
	// read-then-write check; a conflict surfaces as
	// ErrInterviewAlreadyScheduled.
	Create(ctx context.Context, iv Interview) (Interview, error)

	GetByID(ctx context.Context, id string) (Interview, error)
	GetActiveByApplication(ctx context.Context, applicationID string) (Interview, error)

	Update(ctx context.Context, req UpdateInterviewRequest) (Interview, error)

	ListByCandidate(ctx context.Context, candidateID string, from, to time.Time) ([]Interview, error)
	ListByRecruiter(ctx context.Context, recruiterID string, from, to time.Time) ([]Interview, error)

	// ListSyncPending returns interviews whose mirrored calendar event is
	// still missing or stale, oldest first.
	ListSyncPending(ctx context.Context, limit int) ([]Interview, error)
}
