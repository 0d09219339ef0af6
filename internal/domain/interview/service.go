package interview

import "context"

// Service owns the interview state machine. It manages interview rows and
// the owning application's active-interview pointer; mirroring into the
// calendar is the scheduling coordinator's job.
type Service interface {
	// Schedule validates the slot and creates the interview. Fails with
	// ErrInterviewAlreadyScheduled when the application already has an
	// active interview; callers must use Reschedule for that case.
	Schedule(ctx context.Context, applicationID string, details ScheduleDetails) (Interview, error)

	// Reschedule moves an existing slot to a new date/time. The observable
	// end state is always StatusScheduled.
	Reschedule(ctx context.Context, interviewID, newDate, newTime string) (Interview, error)

	// UpdateStatus applies one edge of the state machine. Cancelling clears
	// the owning application's active-interview pointer but never regresses
	// the application's own status.
	UpdateStatus(ctx context.Context, interviewID string, newStatus Status) (Interview, error)

	GetByID(ctx context.Context, interviewID string) (Interview, error)

	// MarkSyncPending flags or clears the calendar-sync backlog bit.
	MarkSyncPending(ctx context.Context, interviewID string, pending bool) error
}
