// Package scheduling defines the coordinator that keeps applications,
// interviews and calendar events mutually consistent. Scheduling an
// interview is a saga, not a single transaction: the interview write must
// succeed first, and the mirrored calendar event is retried and, on
// exhaustion, left pending rather than rolled back.
package scheduling

import (
	"context"

	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
)

type Coordinator interface {
	// ScheduleInterview creates the interview, mirrors it into the
	// calendar, points the application at it, and advances the
	// application to the interview stage when it is still earlier in the
	// pipeline. On mirror failure after retries the interview is returned
	// together with a *SyncPartialFailure.
	ScheduleInterview(ctx context.Context, applicationID string, details interview.ScheduleDetails) (interview.Interview, error)

	// RescheduleInterview moves the slot and keeps the mirrored event in
	// lockstep under the same retry/pending policy.
	RescheduleInterview(ctx context.Context, interviewID string, req interview.RescheduleRequest) (interview.Interview, error)

	// CancelInterview cancels the slot, clears the application's active
	// pointer and cancels the mirrored event. The application's own
	// status is deliberately left untouched.
	CancelInterview(ctx context.Context, interviewID string) (interview.Interview, error)

	// RetryPendingSyncs re-mirrors interviews whose calendar event write
	// previously failed; returns how many were repaired.
	RetryPendingSyncs(ctx context.Context, limit int) (int, error)
}
