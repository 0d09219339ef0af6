package calendar

import (
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
)

// EventStatus is the lifecycle status of a calendar event.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	default:
		return false
	}
}

// RelatedType names the record an event mirrors or references.
type RelatedType string

const (
	RelatedApplication RelatedType = "application"
	RelatedOpportunity RelatedType = "opportunity"
	RelatedChallenge   RelatedType = "challenge"
	RelatedMentorship  RelatedType = "mentorship"
)

// EventTypeInterview is the reserved category for events that mirror an
// interview; user-created events may use any other free-form type.
const EventTypeInterview = "Interview"

// Event is a schedulable calendar item. It is either independent
// (user-created) or interview-derived, in which case the scheduling
// coordinator keeps it in lockstep with its interview and direct edits
// are rejected.
type Event struct {
	ID      string
	OwnerID string

	Title     string
	Date      time.Time // calendar date, midnight
	StartTime string    // local time-of-day, "15:04"; empty means all-day
	Type      string

	Location    string
	MeetingLink *string
	Status      EventStatus

	RelatedTo   *string
	RelatedType *RelatedType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartDateTime combines the date and time-of-day into a sortable instant.
func (e Event) StartDateTime() time.Time {
	return timeutil.Combine(e.Date, e.StartTime)
}

// IsInterviewDerived reports whether the event mirrors an interview and is
// therefore managed by the scheduling coordinator.
func (e Event) IsInterviewDerived() bool {
	return e.RelatedType != nil && *e.RelatedType == RelatedApplication && e.RelatedTo != nil
}

// SourceKind tells a schedule consumer which record a ScheduleItem was
// projected from.
type SourceKind string

const (
	SourceInterview SourceKind = "interview"
	SourceEvent     SourceKind = "event"
)

// ScheduleItem is the normalized projection merged from interviews and
// events into one chronological per-actor schedule.
type ScheduleItem struct {
	ID            string
	Title         string
	StartDateTime time.Time
	Type          string
	Status        string
	Location      string
	MeetingLink   *string
	SourceKind    SourceKind
}
