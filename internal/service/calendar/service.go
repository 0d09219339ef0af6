package calendar

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/careerbridge/recruit-backend-go/internal/domain/user"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
)

type service struct {
	eventRepo     calendar.EventRepository
	interviewRepo interview.Repository
	cache         calendar.ScheduleCache
}

// NewCalendarService creates a new calendar service.
// cache may be nil; schedules are then always computed from the database.
func NewCalendarService(eventRepo calendar.EventRepository, interviewRepo interview.Repository, cache calendar.ScheduleCache) calendar.Service {
	return &service{
		eventRepo:     eventRepo,
		interviewRepo: interviewRepo,
		cache:         cache,
	}
}

// GetSchedule merges the actor's interviews and events for the date range.
// Interviews project into the schedule directly; mirror events whose
// application already contributed an interview are dropped so the slot
// appears once.
func (s *service) GetSchedule(ctx context.Context, actorID string, role user.Role, from, to time.Time) ([]calendar.ScheduleItem, error) {
	if from.After(to) {
		return nil, calendar.ErrInvalidDateRange
	}

	if s.cache != nil {
		if items, err := s.cache.Get(ctx, actorID, role, from, to); err == nil {
			return items, nil
		} else if !errors.Is(err, calendar.ErrCacheMiss) {
			slog.Warn("Schedule cache read failed", "actor_id", actorID, "error", err)
		}
	}

	var interviews []interview.Interview
	var err error

	switch role {
	case user.RoleStudent:
		interviews, err = s.interviewRepo.ListByCandidate(ctx, actorID, from, to)
	case user.RoleRecruiter:
		interviews, err = s.interviewRepo.ListByRecruiter(ctx, actorID, from, to)
	default:
		return nil, user.ErrUnknownRole
	}
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByOwner(ctx, actorID, from, to)
	if err != nil {
		return nil, err
	}

	items := make([]calendar.ScheduleItem, 0, len(interviews)+len(events))
	seenApplications := make(map[string]bool, len(interviews))

	for _, iv := range interviews {
		if !iv.IsActive() {
			continue
		}
		seenApplications[iv.ApplicationID] = true
		items = append(items, calendar.ScheduleItem{
			ID:            iv.ID,
			Title:         iv.DisplayTitle(),
			StartDateTime: iv.StartDateTime(),
			Type:          calendar.EventTypeInterview,
			Status:        string(eventStatusFor(iv.Status)),
			Location:      iv.Location,
			MeetingLink:   iv.MeetingLink,
			SourceKind:    calendar.SourceInterview,
		})
	}

	for _, e := range events {
		if e.IsInterviewDerived() && seenApplications[*e.RelatedTo] {
			continue
		}
		items = append(items, calendar.ScheduleItem{
			ID:            e.ID,
			Title:         e.Title,
			StartDateTime: e.StartDateTime(),
			Type:          e.Type,
			Status:        string(e.Status),
			Location:      e.Location,
			MeetingLink:   e.MeetingLink,
			SourceKind:    calendar.SourceEvent,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].StartDateTime.Equal(items[j].StartDateTime) {
			return items[i].ID < items[j].ID
		}
		return items[i].StartDateTime.Before(items[j].StartDateTime)
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, actorID, role, from, to, items); err != nil {
			slog.Warn("Schedule cache write failed", "actor_id", actorID, "error", err)
		}
	}

	return items, nil
}

// CreateEvent creates a user-managed calendar event
func (s *service) CreateEvent(ctx context.Context, ownerID string, req calendar.CreateEventRequest) (calendar.Event, error) {
	if err := req.Validate(); err != nil {
		return calendar.Event{}, err
	}

	date, _ := time.Parse(timeutil.DateLayout, req.Date)

	e := calendar.Event{
		OwnerID:     ownerID,
		Title:       req.Title,
		Date:        date,
		StartTime:   req.StartTime,
		Type:        req.Type,
		Location:    req.Location,
		MeetingLink: req.MeetingLink,
		Status:      calendar.EventStatusUpcoming,
	}

	created, err := s.eventRepo.Create(ctx, e)
	if err != nil {
		return calendar.Event{}, err
	}

	s.invalidate(ctx, ownerID)

	return created, nil
}

// ListEvents retrieves the owner's events within a date range
func (s *service) ListEvents(ctx context.Context, ownerID string, from, to time.Time) ([]calendar.Event, error) {
	if from.After(to) {
		return nil, calendar.ErrInvalidDateRange
	}
	return s.eventRepo.ListByOwner(ctx, ownerID, from, to)
}

// SyncInterviewEvent upserts the calendar event mirroring the interview,
// keeping date, time and status in lockstep.
func (s *service) SyncInterviewEvent(ctx context.Context, iv interview.Interview) error {
	existing, err := s.eventRepo.GetByApplication(ctx, iv.ApplicationID)
	if err != nil {
		if !errors.Is(err, calendar.ErrEventNotFound) {
			return err
		}

		if !iv.IsActive() {
			// Cancelled interview with no mirror: nothing to do.
			return nil
		}

		relatedTo := iv.ApplicationID
		relatedType := calendar.RelatedApplication
		_, err = s.eventRepo.Create(ctx, calendar.Event{
			OwnerID:     iv.CandidateID,
			Title:       iv.DisplayTitle(),
			Date:        iv.Date,
			StartTime:   iv.StartTime,
			Type:        calendar.EventTypeInterview,
			Location:    iv.Location,
			MeetingLink: iv.MeetingLink,
			Status:      eventStatusFor(iv.Status),
			RelatedTo:   &relatedTo,
			RelatedType: &relatedType,
		})
		if err != nil {
			return err
		}

		s.invalidate(ctx, iv.CandidateID, iv.RecruiterID)
		return nil
	}

	title := iv.DisplayTitle()
	status := eventStatusFor(iv.Status)
	_, err = s.eventRepo.Update(ctx, calendar.UpdateEventRequest{
		ID:        existing.ID,
		Title:     &title,
		Date:      &iv.Date,
		StartTime: &iv.StartTime,
		Status:    &status,
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, iv.CandidateID, iv.RecruiterID)
	return nil
}

// SweepPastEvents rolls upcoming events whose date has passed to completed
func (s *service) SweepPastEvents(ctx context.Context, now time.Time) (int, error) {
	cutoff := timeutil.DateOnly(now)

	events, err := s.eventRepo.ListUpcomingEndedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, e := range events {
		status := calendar.EventStatusCompleted
		if _, err := s.eventRepo.Update(ctx, calendar.UpdateEventRequest{ID: e.ID, Status: &status}); err != nil {
			slog.Error("Failed to roll past event to completed", "event_id", e.ID, "error", err)
			continue
		}
		s.invalidate(ctx, e.OwnerID)
		swept++
	}

	return swept, nil
}

func (s *service) invalidate(ctx context.Context, actorIDs ...string) {
	if s.cache == nil {
		return
	}
	for _, id := range actorIDs {
		if err := s.cache.InvalidateActor(ctx, id); err != nil {
			slog.Warn("Schedule cache invalidation failed", "actor_id", id, "error", err)
		}
	}
}

// eventStatusFor maps an interview status onto the mirrored event's status
func eventStatusFor(status interview.Status) calendar.EventStatus {
	switch status {
	case interview.StatusCompleted:
		return calendar.EventStatusCompleted
	case interview.StatusCancelled:
		return calendar.EventStatusCancelled
	default:
		return calendar.EventStatusUpcoming
	}
}
