package interview

import (
	"context"
	"testing"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/application"
	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed clock so "in the past" checks are deterministic.
var testNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

type fakeInterviewRepo struct {
	interviews map[string]interview.Interview
	nextID     string

	createErr error
}

func newFakeInterviewRepo(ivs ...interview.Interview) *fakeInterviewRepo {
	r := &fakeInterviewRepo{interviews: make(map[string]interview.Interview), nextID: "iv-1"}
	for _, iv := range ivs {
		r.interviews[iv.ID] = iv
	}
	return r
}

func (r *fakeInterviewRepo) Create(ctx context.Context, iv interview.Interview) (interview.Interview, error) {
	if r.createErr != nil {
		return interview.Interview{}, r.createErr
	}
	iv.ID = r.nextID
	r.interviews[iv.ID] = iv
	return iv, nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id string) (interview.Interview, error) {
	iv, ok := r.interviews[id]
	if !ok {
		return interview.Interview{}, interview.ErrInterviewNotFound
	}
	return iv, nil
}

func (r *fakeInterviewRepo) GetActiveByApplication(ctx context.Context, applicationID string) (interview.Interview, error) {
	for _, iv := range r.interviews {
		if iv.ApplicationID == applicationID && iv.IsActive() {
			return iv, nil
		}
	}
	return interview.Interview{}, interview.ErrInterviewNotFound
}

func (r *fakeInterviewRepo) Update(ctx context.Context, req interview.UpdateInterviewRequest) (interview.Interview, error) {
	iv, ok := r.interviews[req.ID]
	if !ok {
		return interview.Interview{}, interview.ErrInterviewNotFound
	}
	if req.Date != nil {
		iv.Date = *req.Date
	}
	if req.StartTime != nil {
		iv.StartTime = *req.StartTime
	}
	if req.Status != nil {
		iv.Status = *req.Status
	}
	if req.CalendarSyncPending != nil {
		iv.CalendarSyncPending = *req.CalendarSyncPending
	}
	if req.Notes != nil {
		iv.Notes = req.Notes
	}
	r.interviews[req.ID] = iv
	return iv, nil
}

func (r *fakeInterviewRepo) ListByCandidate(ctx context.Context, candidateID string, from, to time.Time) ([]interview.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) ListByRecruiter(ctx context.Context, recruiterID string, from, to time.Time) ([]interview.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) ListSyncPending(ctx context.Context, limit int) ([]interview.Interview, error) {
	return nil, nil
}

type fakeAppRepo struct {
	apps map[string]application.Application
}

func newFakeAppRepo(apps ...application.Application) *fakeAppRepo {
	r := &fakeAppRepo{apps: make(map[string]application.Application)}
	for _, app := range apps {
		r.apps[app.ID] = app
	}
	return r
}

func (r *fakeAppRepo) Create(ctx context.Context, app application.Application) (application.Application, error) {
	r.apps[app.ID] = app
	return app, nil
}

func (r *fakeAppRepo) GetByID(ctx context.Context, id string) (application.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeAppRepo) ListByStudent(ctx context.Context, studentID string) ([]application.Application, error) {
	return nil, nil
}

func (r *fakeAppRepo) ListByOpportunity(ctx context.Context, opportunityID string) ([]application.Application, error) {
	return nil, nil
}

func (r *fakeAppRepo) UpdateStatus(ctx context.Context, id string, from, to application.Status, activity application.Activity) (application.Application, error) {
	app := r.apps[id]
	app.Status = to
	r.apps[id] = app
	return app, nil
}

func (r *fakeAppRepo) SetActiveInterview(ctx context.Context, id string, interviewID *string, activity application.Activity) (application.Application, error) {
	app := r.apps[id]
	app.ActiveInterviewID = interviewID
	r.apps[id] = app
	return app, nil
}

func newTestService(repo *fakeInterviewRepo, appRepo *fakeAppRepo) *service {
	return &service{
		repo:    repo,
		appRepo: appRepo,
		now:     func() time.Time { return testNow },
	}
}

func validDetails() interview.ScheduleDetails {
	return interview.ScheduleDetails{
		Date:            "2026-09-15",
		StartTime:       "14:30",
		DurationMinutes: 60,
		Type:            "technical",
		CandidateName:   "Dana Putri",
		Location:        "Online",
	}
}

func TestSchedule(t *testing.T) {
	t.Parallel()

	appRepo := newFakeAppRepo(application.Application{
		ID:             "app-1",
		StudentID:      "student-1",
		RecruiterOrgID: "org-1",
		Status:         application.StatusShortlisted,
	})
	repo := newFakeInterviewRepo()
	svc := newTestService(repo, appRepo)

	iv, err := svc.Schedule(context.Background(), "app-1", validDetails())
	require.NoError(t, err)

	assert.Equal(t, "app-1", iv.ApplicationID)
	assert.Equal(t, "student-1", iv.CandidateID)
	assert.Equal(t, "org-1", iv.RecruiterID)
	assert.Equal(t, interview.StatusScheduled, iv.Status)
	assert.Equal(t, interview.TypeTechnical, iv.Type)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), iv.Date)
	assert.Equal(t, "14:30", iv.StartTime)
	assert.False(t, iv.CalendarSyncPending)
}

func TestScheduleValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeInterviewRepo(), newFakeAppRepo())

	details := validDetails()
	details.DurationMinutes = 25

	_, err := svc.Schedule(context.Background(), "app-1", details)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration_minutes")
}

func TestScheduleInPast(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeInterviewRepo(), newFakeAppRepo())

	details := validDetails()
	details.Date = "2026-08-31"

	_, err := svc.Schedule(context.Background(), "app-1", details)
	assert.ErrorIs(t, err, interview.ErrInterviewInPast)
}

func TestScheduleTerminalApplication(t *testing.T) {
	t.Parallel()

	appRepo := newFakeAppRepo(application.Application{ID: "app-1", Status: application.StatusRejected})
	svc := newTestService(newFakeInterviewRepo(), appRepo)

	_, err := svc.Schedule(context.Background(), "app-1", validDetails())

	var transitionErr *application.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "terminal", transitionErr.Reason)
}

func TestScheduleConflict(t *testing.T) {
	t.Parallel()

	appRepo := newFakeAppRepo(application.Application{ID: "app-1", Status: application.StatusShortlisted})
	repo := newFakeInterviewRepo()
	repo.createErr = interview.ErrInterviewAlreadyScheduled
	svc := newTestService(repo, appRepo)

	_, err := svc.Schedule(context.Background(), "app-1", validDetails())
	assert.ErrorIs(t, err, interview.ErrInterviewAlreadyScheduled)
}

func TestReschedule(t *testing.T) {
	t.Parallel()

	repo := newFakeInterviewRepo(interview.Interview{
		ID:            "iv-1",
		ApplicationID: "app-1",
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:30",
		Status:        interview.StatusConfirmed,
	})
	svc := newTestService(repo, newFakeAppRepo())

	iv, err := svc.Reschedule(context.Background(), "iv-1", "2026-09-20", "10:00")
	require.NoError(t, err)

	// Rescheduled is transient; the resting state is always scheduled
	assert.Equal(t, interview.StatusScheduled, iv.Status)
	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), iv.Date)
	assert.Equal(t, "10:00", iv.StartTime)
}

func TestRescheduleCompleted(t *testing.T) {
	t.Parallel()

	repo := newFakeInterviewRepo(interview.Interview{ID: "iv-1", Status: interview.StatusCompleted})
	svc := newTestService(repo, newFakeAppRepo())

	_, err := svc.Reschedule(context.Background(), "iv-1", "2026-09-20", "10:00")

	var transitionErr *interview.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "terminal", transitionErr.Reason)
}

func TestRescheduleInPast(t *testing.T) {
	t.Parallel()

	repo := newFakeInterviewRepo(interview.Interview{ID: "iv-1", Status: interview.StatusScheduled})
	svc := newTestService(repo, newFakeAppRepo())

	_, err := svc.Reschedule(context.Background(), "iv-1", "2026-08-30", "10:00")
	assert.ErrorIs(t, err, interview.ErrInterviewInPast)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeInterviewRepo(interview.Interview{ID: "iv-1", Status: interview.StatusScheduled})
	svc := newTestService(repo, newFakeAppRepo())

	iv, err := svc.UpdateStatus(context.Background(), "iv-1", interview.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, interview.StatusConfirmed, iv.Status)
}

func TestUpdateStatusIllegalEdge(t *testing.T) {
	t.Parallel()

	repo := newFakeInterviewRepo(interview.Interview{ID: "iv-1", Status: interview.StatusScheduled})
	svc := newTestService(repo, newFakeAppRepo())

	_, err := svc.UpdateStatus(context.Background(), "iv-1", interview.StatusCompleted)

	var transitionErr *interview.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, interview.StatusScheduled, transitionErr.From)
	assert.Equal(t, interview.StatusCompleted, transitionErr.To)
}

func TestMarkSyncPending(t *testing.T) {
	t.Parallel()

	repo := newFakeInterviewRepo(interview.Interview{ID: "iv-1", Status: interview.StatusScheduled})
	svc := newTestService(repo, newFakeAppRepo())

	require.NoError(t, svc.MarkSyncPending(context.Background(), "iv-1", true))
	assert.True(t, repo.interviews["iv-1"].CalendarSyncPending)

	require.NoError(t, svc.MarkSyncPending(context.Background(), "iv-1", false))
	assert.False(t, repo.interviews["iv-1"].CalendarSyncPending)
}
