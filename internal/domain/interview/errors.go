package interview

import (
	"errors"
	"fmt"
)

var (
	ErrInterviewNotFound = errors.New("Interview not found")

	// ErrInterviewAlreadyScheduled signals that the application already has
	// an active (non-cancelled) interview; callers should reschedule the
	// existing slot instead of creating a second one.
	ErrInterviewAlreadyScheduled = errors.New("Application already has an active interview")

	ErrInterviewInPast = errors.New("Interview date and time must not be in the past")
)

// TransitionError reports an illegal edge in the interview state machine.
type TransitionError struct {
	From   Status
	To     Status
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal interview transition %s -> %s: %s", e.From, e.To, e.Reason)
}

func NewTransitionError(from, to Status) *TransitionError {
	reason := "no such edge"
	if from.IsTerminal() {
		reason = "terminal"
	}
	return &TransitionError{From: from, To: to, Reason: reason}
}
