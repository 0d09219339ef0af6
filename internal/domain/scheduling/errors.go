package scheduling

import "fmt"

// SyncPartialFailure reports that the interview was persisted but its
// mirrored calendar event was not, even after the retry budget. It is a
// warning, not a rollback: the interview remains valid and schedules fall
// back to the interview projection until the sync job repairs the mirror.
type SyncPartialFailure struct {
	InterviewID string
	Err         error
}

func (e *SyncPartialFailure) Error() string {
	return fmt.Sprintf("interview %s saved but calendar sync pending: %v", e.InterviewID, e.Err)
}

func (e *SyncPartialFailure) Unwrap() error {
	return e.Err
}
