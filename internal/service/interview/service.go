package interview

import (
	"context"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/application"
	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
)

type service struct {
	repo    interview.Repository
	appRepo application.Repository
	now     func() time.Time
}

// NewInterviewService creates a new interview service
func NewInterviewService(repo interview.Repository, appRepo application.Repository) interview.Service {
	return &service{
		repo:    repo,
		appRepo: appRepo,
		now:     time.Now,
	}
}

// Schedule creates an interview for the application. The slot must lie in
// the future and the application must still be in play; the database rejects
// a second active interview for the same application.
func (s *service) Schedule(ctx context.Context, applicationID string, details interview.ScheduleDetails) (interview.Interview, error) {
	if err := details.Validate(); err != nil {
		return interview.Interview{}, err
	}

	date, _ := time.Parse(timeutil.DateLayout, details.Date)
	if timeutil.InPast(date, details.StartTime, s.now()) {
		return interview.Interview{}, interview.ErrInterviewInPast
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return interview.Interview{}, err
	}

	if app.Status.IsTerminal() {
		return interview.Interview{}, application.NewTransitionError(app.Status, application.StatusInterview)
	}

	iv := interview.Interview{
		ApplicationID:   applicationID,
		CandidateID:     app.StudentID,
		RecruiterID:     app.RecruiterOrgID,
		CandidateName:   details.CandidateName,
		Date:            date,
		StartTime:       details.StartTime,
		DurationMinutes: details.DurationMinutes,
		Type:            interview.Type(details.Type),
		Status:          interview.StatusScheduled,
		Location:        details.Location,
		MeetingLink:     details.MeetingLink,
		Notes:           details.Notes,
	}

	return s.repo.Create(ctx, iv)
}

// Reschedule moves the interview to a new slot. The interview passes through
// the rescheduled marker and comes to rest as scheduled again; the audit
// trail of the move lives on the application's activity log.
func (s *service) Reschedule(ctx context.Context, interviewID, newDate, newTime string) (interview.Interview, error) {
	req := interview.RescheduleRequest{Date: newDate, StartTime: newTime}
	if err := req.Validate(); err != nil {
		return interview.Interview{}, err
	}

	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return interview.Interview{}, err
	}

	if !iv.Status.CanTransitionTo(interview.StatusRescheduled) {
		return interview.Interview{}, interview.NewTransitionError(iv.Status, interview.StatusRescheduled)
	}

	date, _ := time.Parse(timeutil.DateLayout, newDate)
	if timeutil.InPast(date, newTime, s.now()) {
		return interview.Interview{}, interview.ErrInterviewInPast
	}

	status := interview.StatusScheduled
	return s.repo.Update(ctx, interview.UpdateInterviewRequest{
		ID:        interviewID,
		Date:      &date,
		StartTime: &newTime,
		Status:    &status,
	})
}

// UpdateStatus transitions the interview's own lifecycle
func (s *service) UpdateStatus(ctx context.Context, interviewID string, newStatus interview.Status) (interview.Interview, error) {
	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return interview.Interview{}, err
	}

	if !iv.Status.CanTransitionTo(newStatus) {
		return interview.Interview{}, interview.NewTransitionError(iv.Status, newStatus)
	}

	return s.repo.Update(ctx, interview.UpdateInterviewRequest{
		ID:     interviewID,
		Status: &newStatus,
	})
}

// GetByID retrieves an interview by ID
func (s *service) GetByID(ctx context.Context, interviewID string) (interview.Interview, error) {
	return s.repo.GetByID(ctx, interviewID)
}

// MarkSyncPending flags or clears the interview's calendar sync debt
func (s *service) MarkSyncPending(ctx context.Context, interviewID string, pending bool) error {
	_, err := s.repo.Update(ctx, interview.UpdateInterviewRequest{
		ID:                  interviewID,
		CalendarSyncPending: &pending,
	})
	return err
}
