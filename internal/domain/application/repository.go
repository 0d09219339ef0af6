package application

import "context"

type Repository interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	ListByStudent(ctx context.Context, studentID string) ([]Application, error)
	ListByOpportunity(ctx context.Context, opportunityID string) ([]Application, error)

	// UpdateStatus moves the application from one status to another and
	// appends the activity in the same statement. The update is guarded by
	// the expected current status; ErrConcurrentUpdate is returned when the
	// row moved underneath the caller.
	UpdateStatus(ctx context.Context, id string, from, to Status, activity Activity) (Application, error)

	// SetActiveInterview points the application at its current non-cancelled
	// interview (nil clears the pointer) and appends the activity.
	SetActiveInterview(ctx context.Context, id string, interviewID *string, activity Activity) (Application, error)
}
