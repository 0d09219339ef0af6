package application

import (
	"errors"
	"fmt"
)

var (
	ErrApplicationNotFound = errors.New("Application not found")
	ErrInvalidStatus       = errors.New("Invalid application status")
	ErrConcurrentUpdate    = errors.New("Application was modified concurrently")
)

// TransitionError reports an illegal edge in the application state machine.
// Callers must not retry without changing intent.
type TransitionError struct {
	From   Status
	To     Status
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal application transition %s -> %s: %s", e.From, e.To, e.Reason)
}

// NewTransitionError builds a TransitionError, picking the reason from the
// shape of the rejected edge.
func NewTransitionError(from, to Status) *TransitionError {
	reason := "no such edge"
	if from.IsTerminal() {
		reason = "terminal"
	}
	return &TransitionError{From: from, To: to, Reason: reason}
}
