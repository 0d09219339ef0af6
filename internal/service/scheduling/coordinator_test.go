package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/application"
	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/careerbridge/recruit-backend-go/internal/domain/notification"
	"github.com/careerbridge/recruit-backend-go/internal/domain/scheduling"
	"github.com/careerbridge/recruit-backend-go/internal/domain/user"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInterviewService struct {
	scheduled   interview.Interview
	scheduleErr error

	rescheduled   interview.Interview
	rescheduleErr error

	updated         interview.Interview
	updateStatusErr error

	syncPendingCalls []bool
}

func (s *fakeInterviewService) Schedule(ctx context.Context, applicationID string, details interview.ScheduleDetails) (interview.Interview, error) {
	if s.scheduleErr != nil {
		return interview.Interview{}, s.scheduleErr
	}
	return s.scheduled, nil
}

func (s *fakeInterviewService) Reschedule(ctx context.Context, interviewID, newDate, newTime string) (interview.Interview, error) {
	if s.rescheduleErr != nil {
		return interview.Interview{}, s.rescheduleErr
	}
	return s.rescheduled, nil
}

func (s *fakeInterviewService) UpdateStatus(ctx context.Context, interviewID string, newStatus interview.Status) (interview.Interview, error) {
	if s.updateStatusErr != nil {
		return interview.Interview{}, s.updateStatusErr
	}
	return s.updated, nil
}

func (s *fakeInterviewService) GetByID(ctx context.Context, interviewID string) (interview.Interview, error) {
	return s.scheduled, nil
}

func (s *fakeInterviewService) MarkSyncPending(ctx context.Context, interviewID string, pending bool) error {
	s.syncPendingCalls = append(s.syncPendingCalls, pending)
	return nil
}

type fakeInterviewRepo struct {
	syncPending []interview.Interview
}

func (r *fakeInterviewRepo) Create(ctx context.Context, iv interview.Interview) (interview.Interview, error) {
	return iv, nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id string) (interview.Interview, error) {
	return interview.Interview{}, interview.ErrInterviewNotFound
}

func (r *fakeInterviewRepo) GetActiveByApplication(ctx context.Context, applicationID string) (interview.Interview, error) {
	return interview.Interview{}, interview.ErrInterviewNotFound
}

func (r *fakeInterviewRepo) Update(ctx context.Context, req interview.UpdateInterviewRequest) (interview.Interview, error) {
	return interview.Interview{}, interview.ErrInterviewNotFound
}

func (r *fakeInterviewRepo) ListByCandidate(ctx context.Context, candidateID string, from, to time.Time) ([]interview.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) ListByRecruiter(ctx context.Context, recruiterID string, from, to time.Time) ([]interview.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) ListSyncPending(ctx context.Context, limit int) ([]interview.Interview, error) {
	return r.syncPending, nil
}

type setActiveCall struct {
	applicationID string
	interviewID   *string
	activityType  application.ActivityType
}

type fakeAppRepo struct {
	status application.Status

	setActiveCalls   []setActiveCall
	statusTransition *struct{ from, to application.Status }
}

func (r *fakeAppRepo) Create(ctx context.Context, app application.Application) (application.Application, error) {
	return app, nil
}

func (r *fakeAppRepo) GetByID(ctx context.Context, id string) (application.Application, error) {
	return application.Application{ID: id, Status: r.status}, nil
}

func (r *fakeAppRepo) ListByStudent(ctx context.Context, studentID string) ([]application.Application, error) {
	return nil, nil
}

func (r *fakeAppRepo) ListByOpportunity(ctx context.Context, opportunityID string) ([]application.Application, error) {
	return nil, nil
}

func (r *fakeAppRepo) UpdateStatus(ctx context.Context, id string, from, to application.Status, activity application.Activity) (application.Application, error) {
	r.statusTransition = &struct{ from, to application.Status }{from, to}
	r.status = to
	return application.Application{ID: id, Status: to}, nil
}

func (r *fakeAppRepo) SetActiveInterview(ctx context.Context, id string, interviewID *string, activity application.Activity) (application.Application, error) {
	r.setActiveCalls = append(r.setActiveCalls, setActiveCall{
		applicationID: id,
		interviewID:   interviewID,
		activityType:  activity.Type,
	})
	return application.Application{ID: id, Status: r.status, ActiveInterviewID: interviewID}, nil
}

type fakeCalendarService struct {
	syncCalls int
	failFirst int // fail this many sync calls before succeeding
	synced    []interview.Interview
}

func (s *fakeCalendarService) GetSchedule(ctx context.Context, actorID string, role user.Role, from, to time.Time) ([]calendar.ScheduleItem, error) {
	return nil, nil
}

func (s *fakeCalendarService) CreateEvent(ctx context.Context, ownerID string, req calendar.CreateEventRequest) (calendar.Event, error) {
	return calendar.Event{}, nil
}

func (s *fakeCalendarService) ListEvents(ctx context.Context, ownerID string, from, to time.Time) ([]calendar.Event, error) {
	return nil, nil
}

func (s *fakeCalendarService) SyncInterviewEvent(ctx context.Context, iv interview.Interview) error {
	s.syncCalls++
	if s.syncCalls <= s.failFirst {
		return errors.New("calendar store unavailable")
	}
	s.synced = append(s.synced, iv)
	return nil
}

func (s *fakeCalendarService) SweepPastEvents(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

type fakeNotifier struct {
	queued []notification.CreateNotificationRequest
}

func (n *fakeNotifier) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	n.queued = append(n.queued, req)
	return nil
}

func (n *fakeNotifier) GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	return &notification.NotificationListResponse{}, nil
}

func (n *fakeNotifier) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (n *fakeNotifier) MarkAsRead(ctx context.Context, userID string, req notification.MarkAsReadRequest) error {
	return nil
}

func (n *fakeNotifier) MarkAllAsRead(ctx context.Context, userID string) error { return nil }

func (n *fakeNotifier) Delete(ctx context.Context, userID, notificationID string) error { return nil }

func (n *fakeNotifier) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	ch := make(chan notification.SSEEvent)
	return ch, func() {}
}

func (n *fakeNotifier) Stop() {}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func fastRetrier() *retry.Retrier {
	return retry.New(
		retry.WithMaxAttempts(3),
		retry.WithInitialDelay(time.Millisecond),
		retry.WithJitter(0),
	)
}

func testInterview() interview.Interview {
	return interview.Interview{
		ID:            "iv-1",
		ApplicationID: "app-1",
		CandidateID:   "student-1",
		RecruiterID:   "org-1",
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:30",
		Status:        interview.StatusScheduled,
	}
}

func testDetails() interview.ScheduleDetails {
	return interview.ScheduleDetails{Date: "2026-09-15", StartTime: "14:30"}
}

func TestScheduleInterview(t *testing.T) {
	t.Parallel()

	interviewSvc := &fakeInterviewService{scheduled: testInterview()}
	appRepo := &fakeAppRepo{status: application.StatusShortlisted}
	calendarSvc := &fakeCalendarService{}
	notifier := &fakeNotifier{}
	tx := &fakeTxManager{}

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{}, appRepo, calendarSvc, notifier, tx, fastRetrier())

	iv, err := c.ScheduleInterview(context.Background(), "app-1", testDetails())
	require.NoError(t, err)

	assert.Equal(t, "iv-1", iv.ID)
	assert.False(t, iv.CalendarSyncPending)
	assert.Equal(t, 1, calendarSvc.syncCalls)
	assert.Equal(t, 1, tx.calls)

	// The application now points at the interview and advanced in the pipeline
	require.Len(t, appRepo.setActiveCalls, 1)
	require.NotNil(t, appRepo.setActiveCalls[0].interviewID)
	assert.Equal(t, "iv-1", *appRepo.setActiveCalls[0].interviewID)
	assert.Equal(t, application.ActivityInterviewScheduled, appRepo.setActiveCalls[0].activityType)
	require.NotNil(t, appRepo.statusTransition)
	assert.Equal(t, application.StatusInterview, appRepo.statusTransition.to)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeInterviewScheduled, notifier.queued[0].Type)
	assert.Equal(t, "student-1", notifier.queued[0].RecipientID)
}

func TestScheduleInterviewAlreadyAtInterviewStage(t *testing.T) {
	t.Parallel()

	interviewSvc := &fakeInterviewService{scheduled: testInterview()}
	appRepo := &fakeAppRepo{status: application.StatusInterview}

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{}, appRepo, &fakeCalendarService{}, nil, &fakeTxManager{}, fastRetrier())

	_, err := c.ScheduleInterview(context.Background(), "app-1", testDetails())
	require.NoError(t, err)

	assert.Nil(t, appRepo.statusTransition)
}

func TestScheduleInterviewSyncRetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	interviewSvc := &fakeInterviewService{scheduled: testInterview()}
	calendarSvc := &fakeCalendarService{failFirst: 2}

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{}, &fakeAppRepo{status: application.StatusShortlisted},
		calendarSvc, nil, &fakeTxManager{}, fastRetrier())

	iv, err := c.ScheduleInterview(context.Background(), "app-1", testDetails())
	require.NoError(t, err)

	assert.Equal(t, 3, calendarSvc.syncCalls)
	assert.False(t, iv.CalendarSyncPending)
	assert.Empty(t, interviewSvc.syncPendingCalls)
}

func TestScheduleInterviewSyncExhausted(t *testing.T) {
	t.Parallel()

	interviewSvc := &fakeInterviewService{scheduled: testInterview()}
	appRepo := &fakeAppRepo{status: application.StatusShortlisted}
	calendarSvc := &fakeCalendarService{failFirst: 100}
	notifier := &fakeNotifier{}

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{}, appRepo, calendarSvc, notifier, &fakeTxManager{}, fastRetrier())

	iv, err := c.ScheduleInterview(context.Background(), "app-1", testDetails())

	// The interview survives; only the mirror is pending
	var partial *scheduling.SyncPartialFailure
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "iv-1", partial.InterviewID)

	assert.Equal(t, "iv-1", iv.ID)
	assert.True(t, iv.CalendarSyncPending)
	assert.Equal(t, 3, calendarSvc.syncCalls)
	assert.Equal(t, []bool{true}, interviewSvc.syncPendingCalls)

	// Pointer, pipeline advance and notification still happen
	require.Len(t, appRepo.setActiveCalls, 1)
	require.NotNil(t, appRepo.statusTransition)
	require.Len(t, notifier.queued, 1)
}

func TestScheduleInterviewFailsFast(t *testing.T) {
	t.Parallel()

	interviewSvc := &fakeInterviewService{scheduleErr: interview.ErrInterviewAlreadyScheduled}
	appRepo := &fakeAppRepo{status: application.StatusShortlisted}
	calendarSvc := &fakeCalendarService{}

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{}, appRepo, calendarSvc, nil, &fakeTxManager{}, fastRetrier())

	_, err := c.ScheduleInterview(context.Background(), "app-1", testDetails())
	assert.ErrorIs(t, err, interview.ErrInterviewAlreadyScheduled)
	assert.Zero(t, calendarSvc.syncCalls)
	assert.Empty(t, appRepo.setActiveCalls)
}

func TestRescheduleInterview(t *testing.T) {
	t.Parallel()

	iv := testInterview()
	iv.Date = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	iv.StartTime = "10:00"
	interviewSvc := &fakeInterviewService{rescheduled: iv}
	appRepo := &fakeAppRepo{status: application.StatusInterview}
	calendarSvc := &fakeCalendarService{}
	notifier := &fakeNotifier{}

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{}, appRepo, calendarSvc, notifier, &fakeTxManager{}, fastRetrier())

	got, err := c.RescheduleInterview(context.Background(), "iv-1",
		interview.RescheduleRequest{Date: "2026-09-20", StartTime: "10:00"})
	require.NoError(t, err)

	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, 1, calendarSvc.syncCalls)

	// The pointer is unchanged but the move lands in the audit trail
	require.Len(t, appRepo.setActiveCalls, 1)
	require.NotNil(t, appRepo.setActiveCalls[0].interviewID)
	assert.Equal(t, "iv-1", *appRepo.setActiveCalls[0].interviewID)
	assert.Equal(t, application.ActivityInterviewRescheduled, appRepo.setActiveCalls[0].activityType)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeInterviewRescheduled, notifier.queued[0].Type)
}

func TestRescheduleInterviewClearsPendingFlag(t *testing.T) {
	t.Parallel()

	iv := testInterview()
	iv.CalendarSyncPending = true
	interviewSvc := &fakeInterviewService{rescheduled: iv}

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{}, &fakeAppRepo{status: application.StatusInterview},
		&fakeCalendarService{}, nil, &fakeTxManager{}, fastRetrier())

	got, err := c.RescheduleInterview(context.Background(), "iv-1",
		interview.RescheduleRequest{Date: "2026-09-20", StartTime: "10:00"})
	require.NoError(t, err)

	assert.False(t, got.CalendarSyncPending)
	assert.Equal(t, []bool{false}, interviewSvc.syncPendingCalls)
}

func TestCancelInterview(t *testing.T) {
	t.Parallel()

	iv := testInterview()
	iv.Status = interview.StatusCancelled
	interviewSvc := &fakeInterviewService{updated: iv}
	appRepo := &fakeAppRepo{status: application.StatusInterview}
	calendarSvc := &fakeCalendarService{}
	notifier := &fakeNotifier{}

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{}, appRepo, calendarSvc, notifier, &fakeTxManager{}, fastRetrier())

	got, err := c.CancelInterview(context.Background(), "iv-1")
	require.NoError(t, err)

	assert.Equal(t, interview.StatusCancelled, got.Status)

	// The active pointer is released; the application's status stays put
	require.Len(t, appRepo.setActiveCalls, 1)
	assert.Nil(t, appRepo.setActiveCalls[0].interviewID)
	assert.Equal(t, application.ActivityInterviewCancelled, appRepo.setActiveCalls[0].activityType)
	assert.Nil(t, appRepo.statusTransition)

	// The mirror is brought in lockstep with the cancellation
	assert.Equal(t, 1, calendarSvc.syncCalls)
	require.Len(t, calendarSvc.synced, 1)
	assert.Equal(t, interview.StatusCancelled, calendarSvc.synced[0].Status)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeInterviewCancelled, notifier.queued[0].Type)
}

func TestRetryPendingSyncs(t *testing.T) {
	t.Parallel()

	pending := []interview.Interview{
		{ID: "iv-1", ApplicationID: "app-1", CalendarSyncPending: true},
		{ID: "iv-2", ApplicationID: "app-2", CalendarSyncPending: true},
		{ID: "iv-3", ApplicationID: "app-3", CalendarSyncPending: true},
	}
	interviewSvc := &fakeInterviewService{}
	calendarSvc := &fakeCalendarService{failFirst: 1} // first of the three still fails

	c := NewCoordinator(interviewSvc, &fakeInterviewRepo{syncPending: pending}, &fakeAppRepo{},
		calendarSvc, nil, &fakeTxManager{}, fastRetrier())

	repaired, err := c.RetryPendingSyncs(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, repaired)
	assert.Equal(t, []bool{false, false}, interviewSvc.syncPendingCalls)
}
