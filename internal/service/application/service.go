package application

import (
	"context"
	"fmt"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/application"
	"github.com/careerbridge/recruit-backend-go/internal/domain/notification"
)

type service struct {
	repo            application.Repository
	notificationSvc notification.Service
}

// NewApplicationService creates a new application service.
// notificationSvc may be nil; status changes are then not announced.
func NewApplicationService(repo application.Repository, notificationSvc notification.Service) application.Service {
	return &service{
		repo:            repo,
		notificationSvc: notificationSvc,
	}
}

// Transition moves an application along the pipeline. Rejection is allowed
// from any non-terminal status; every other move must follow the pipeline
// order one step at a time.
func (s *service) Transition(ctx context.Context, applicationID string, newStatus application.Status) (application.Application, error) {
	if !newStatus.IsValid() {
		return application.Application{}, application.ErrInvalidStatus
	}

	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return application.Application{}, err
	}

	if !app.Status.CanTransitionTo(newStatus) {
		return application.Application{}, application.NewTransitionError(app.Status, newStatus)
	}

	activity := application.StatusChangeActivity(app.Status, newStatus, time.Now())

	updated, err := s.repo.UpdateStatus(ctx, applicationID, app.Status, newStatus, activity)
	if err != nil {
		return application.Application{}, err
	}

	s.notifyStatusChange(ctx, updated, app.Status)

	return updated, nil
}

// GetByID retrieves an application by ID
func (s *service) GetByID(ctx context.Context, id string) (application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByStudent retrieves all applications submitted by a student
func (s *service) ListByStudent(ctx context.Context, studentID string) ([]application.Application, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// ListByOpportunity retrieves all applications for an opportunity
func (s *service) ListByOpportunity(ctx context.Context, opportunityID string) ([]application.Application, error) {
	return s.repo.ListByOpportunity(ctx, opportunityID)
}

func (s *service) notifyStatusChange(ctx context.Context, app application.Application, from application.Status) {
	if s.notificationSvc == nil {
		return
	}

	_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: app.StudentID,
		Type:        notification.TypeApplicationStatusChanged,
		Title:       "Application Status Updated",
		Message:     fmt.Sprintf("Your application moved from %s to %s", from, app.Status),
		Data: map[string]interface{}{
			"application_id": app.ID,
			"from":           string(from),
			"to":             string(app.Status),
		},
	})
}
