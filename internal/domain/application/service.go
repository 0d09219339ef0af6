package application

import "context"

// Service owns the application status state machine. Transitioning to
// Shortlisted or Interview only marks intent; scheduling the interview
// itself is the scheduling coordinator's job.
type Service interface {
	Transition(ctx context.Context, applicationID string, newStatus Status) (Application, error)
	GetByID(ctx context.Context, applicationID string) (Application, error)
	ListByStudent(ctx context.Context, studentID string) ([]Application, error)
	ListByOpportunity(ctx context.Context, opportunityID string) ([]Application, error)
}
