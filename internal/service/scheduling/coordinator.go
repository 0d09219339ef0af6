package scheduling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/application"
	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/careerbridge/recruit-backend-go/internal/domain/notification"
	"github.com/careerbridge/recruit-backend-go/internal/domain/scheduling"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/database"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/retry"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
)

type coordinator struct {
	interviewSvc    interview.Service
	interviewRepo   interview.Repository
	appRepo         application.Repository
	calendarSvc     calendar.Service
	notificationSvc notification.Service
	txManager       database.TxManager
	retrier         *retry.Retrier
}

// NewCoordinator creates the scheduling coordinator.
// notificationSvc may be nil; lifecycle events are then not announced.
func NewCoordinator(
	interviewSvc interview.Service,
	interviewRepo interview.Repository,
	appRepo application.Repository,
	calendarSvc calendar.Service,
	notificationSvc notification.Service,
	txManager database.TxManager,
	retrier *retry.Retrier,
) scheduling.Coordinator {
	if retrier == nil {
		retrier = retry.CalendarSyncRetrier()
	}
	return &coordinator{
		interviewSvc:    interviewSvc,
		interviewRepo:   interviewRepo,
		appRepo:         appRepo,
		calendarSvc:     calendarSvc,
		notificationSvc: notificationSvc,
		txManager:       txManager,
		retrier:         retrier,
	}
}

// ScheduleInterview runs the scheduling saga: create the interview, mirror
// it into the calendar, then point the application at it and advance its
// status in one transaction. A failed mirror never rolls the interview back;
// it is flagged sync-pending and reported as a *SyncPartialFailure.
func (c *coordinator) ScheduleInterview(ctx context.Context, applicationID string, details interview.ScheduleDetails) (interview.Interview, error) {
	iv, err := c.interviewSvc.Schedule(ctx, applicationID, details)
	if err != nil {
		return interview.Interview{}, err
	}

	syncErr := c.syncWithRetry(ctx, iv)
	if syncErr != nil {
		if markErr := c.interviewSvc.MarkSyncPending(ctx, iv.ID, true); markErr != nil {
			slog.Error("Failed to flag interview sync-pending", "interview_id", iv.ID, "error", markErr)
		} else {
			iv.CalendarSyncPending = true
		}
	}

	err = c.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		activity := application.Activity{
			Type:        application.ActivityInterviewScheduled,
			Date:        time.Now(),
			Description: fmt.Sprintf("Interview scheduled for %s %s", details.Date, details.StartTime),
		}

		app, err := c.appRepo.SetActiveInterview(txCtx, applicationID, &iv.ID, activity)
		if err != nil {
			return err
		}

		if app.Status.IsBefore(application.StatusInterview) {
			statusActivity := application.StatusChangeActivity(app.Status, application.StatusInterview, time.Now())
			if _, err := c.appRepo.UpdateStatus(txCtx, applicationID, app.Status, application.StatusInterview, statusActivity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return interview.Interview{}, err
	}

	c.notify(ctx, iv, notification.TypeInterviewScheduled, "Interview Scheduled",
		fmt.Sprintf("Your interview is scheduled for %s at %s", details.Date, details.StartTime))

	if syncErr != nil {
		return iv, &scheduling.SyncPartialFailure{InterviewID: iv.ID, Err: syncErr}
	}

	return iv, nil
}

// RescheduleInterview moves the slot and keeps the mirror in lockstep
func (c *coordinator) RescheduleInterview(ctx context.Context, interviewID string, req interview.RescheduleRequest) (interview.Interview, error) {
	iv, err := c.interviewSvc.Reschedule(ctx, interviewID, req.Date, req.StartTime)
	if err != nil {
		return interview.Interview{}, err
	}

	syncErr := c.syncWithRetry(ctx, iv)
	if syncErr != nil {
		if markErr := c.interviewSvc.MarkSyncPending(ctx, iv.ID, true); markErr != nil {
			slog.Error("Failed to flag interview sync-pending", "interview_id", iv.ID, "error", markErr)
		} else {
			iv.CalendarSyncPending = true
		}
	} else if iv.CalendarSyncPending {
		if err := c.interviewSvc.MarkSyncPending(ctx, iv.ID, false); err == nil {
			iv.CalendarSyncPending = false
		}
	}

	activity := application.Activity{
		Type:        application.ActivityInterviewRescheduled,
		Date:        time.Now(),
		Description: fmt.Sprintf("Interview moved to %s %s", req.Date, req.StartTime),
	}
	if _, err := c.appRepo.SetActiveInterview(ctx, iv.ApplicationID, &iv.ID, activity); err != nil {
		slog.Error("Failed to record reschedule activity", "application_id", iv.ApplicationID, "error", err)
	}

	c.notify(ctx, iv, notification.TypeInterviewRescheduled, "Interview Rescheduled",
		fmt.Sprintf("Your interview was moved to %s at %s", req.Date, req.StartTime))

	if syncErr != nil {
		return iv, &scheduling.SyncPartialFailure{InterviewID: iv.ID, Err: syncErr}
	}

	return iv, nil
}

// CancelInterview cancels the slot, releases the application's active slot
// and cancels the mirrored event. The application's pipeline status is left
// untouched so the recruiter can schedule a fresh interview.
func (c *coordinator) CancelInterview(ctx context.Context, interviewID string) (interview.Interview, error) {
	iv, err := c.interviewSvc.UpdateStatus(ctx, interviewID, interview.StatusCancelled)
	if err != nil {
		return interview.Interview{}, err
	}

	activity := application.Activity{
		Type:        application.ActivityInterviewCancelled,
		Date:        time.Now(),
		Description: fmt.Sprintf("Interview on %s cancelled", iv.Date.Format(timeutil.DateLayout)),
	}
	if _, err := c.appRepo.SetActiveInterview(ctx, iv.ApplicationID, nil, activity); err != nil {
		return interview.Interview{}, err
	}

	syncErr := c.syncWithRetry(ctx, iv)
	if syncErr != nil {
		if markErr := c.interviewSvc.MarkSyncPending(ctx, iv.ID, true); markErr != nil {
			slog.Error("Failed to flag interview sync-pending", "interview_id", iv.ID, "error", markErr)
		} else {
			iv.CalendarSyncPending = true
		}
	}

	c.notify(ctx, iv, notification.TypeInterviewCancelled, "Interview Cancelled",
		fmt.Sprintf("Your interview on %s was cancelled", iv.Date.Format(timeutil.DateLayout)))

	if syncErr != nil {
		return iv, &scheduling.SyncPartialFailure{InterviewID: iv.ID, Err: syncErr}
	}

	return iv, nil
}

// RetryPendingSyncs re-mirrors interviews whose calendar write previously
// failed. Failures stay flagged and are picked up on the next run.
func (c *coordinator) RetryPendingSyncs(ctx context.Context, limit int) (int, error) {
	pending, err := c.interviewRepo.ListSyncPending(ctx, limit)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, iv := range pending {
		if err := c.calendarSvc.SyncInterviewEvent(ctx, iv); err != nil {
			slog.Warn("Calendar sync retry failed", "interview_id", iv.ID, "error", err)
			continue
		}
		if err := c.interviewSvc.MarkSyncPending(ctx, iv.ID, false); err != nil {
			slog.Error("Failed to clear sync-pending flag", "interview_id", iv.ID, "error", err)
			continue
		}
		repaired++
	}

	return repaired, nil
}

func (c *coordinator) syncWithRetry(ctx context.Context, iv interview.Interview) error {
	return c.retrier.Do(ctx, func(ctx context.Context) error {
		return retry.Retryable(c.calendarSvc.SyncInterviewEvent(ctx, iv))
	})
}

func (c *coordinator) notify(ctx context.Context, iv interview.Interview, notifType notification.NotificationType, title, message string) {
	if c.notificationSvc == nil {
		return
	}

	_ = c.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: iv.CandidateID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data: map[string]interface{}{
			"interview_id":   iv.ID,
			"application_id": iv.ApplicationID,
			"date":           iv.Date.Format(timeutil.DateLayout),
			"start_time":     iv.StartTime,
		},
	})
}
