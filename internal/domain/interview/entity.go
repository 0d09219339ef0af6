package interview

import (
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
)

// Status is the lifecycle status of an interview slot.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"

	// StatusRescheduled is a transient marker used while a reschedule is in
	// flight. The resting state after a successful reschedule is always
	// StatusScheduled; callers never read Rescheduled back. The reschedule
	// itself is recorded as an audit entry on the owning application.
	StatusRescheduled Status = "rescheduled"
)

var StatusValues = []string{
	string(StatusScheduled),
	string(StatusConfirmed),
	string(StatusCompleted),
	string(StatusCancelled),
	string(StatusRescheduled),
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// allowedTransitions is the explicit edge table of the interview state
// machine. Rescheduled only ever returns to Scheduled.
var allowedTransitions = map[Status][]Status{
	StatusScheduled:   {StatusConfirmed, StatusCancelled, StatusRescheduled},
	StatusConfirmed:   {StatusCompleted, StatusCancelled, StatusRescheduled},
	StatusRescheduled: {StatusScheduled},
}

// CanTransitionTo reports whether the edge s -> next exists.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Type categorizes the interview round.
type Type string

const (
	TypeScreening  Type = "screening"
	TypeTechnical  Type = "technical"
	TypeHRRound    Type = "hr_round"
	TypeFinalRound Type = "final_round"
)

var TypeValues = []string{
	string(TypeScreening),
	string(TypeTechnical),
	string(TypeHRRound),
	string(TypeFinalRound),
}

func (t Type) IsValid() bool {
	switch t {
	case TypeScreening, TypeTechnical, TypeHRRound, TypeFinalRound:
		return true
	default:
		return false
	}
}

// DurationValues are the only slot lengths the product offers, in minutes.
var DurationValues = []int{30, 45, 60, 90, 120}

func IsAllowedDuration(minutes int) bool {
	for _, d := range DurationValues {
		if d == minutes {
			return true
		}
	}
	return false
}

// Interview is a scheduled meeting tied to exactly one application.
type Interview struct {
	ID            string
	ApplicationID string
	CandidateID   string
	RecruiterID   string

	// CandidateName is denormalized display text resolved by the caller
	// before scheduling; the core treats it as opaque.
	CandidateName string

	Date            time.Time // calendar date, midnight
	StartTime       string    // local time-of-day, "15:04"
	DurationMinutes int
	Type            Type
	Status          Status

	Location    string
	MeetingLink *string
	Notes       *string

	// CalendarSyncPending is set when the mirrored calendar event could not
	// be written after the retry budget; the interview stays valid and the
	// sync job picks it up later.
	CalendarSyncPending bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartDateTime combines the date and time-of-day into a sortable instant.
func (i Interview) StartDateTime() time.Time {
	return timeutil.Combine(i.Date, i.StartTime)
}

// EndDateTime is the start plus the slot duration.
func (i Interview) EndDateTime() time.Time {
	return i.StartDateTime().Add(time.Duration(i.DurationMinutes) * time.Minute)
}

// IsActive reports whether the interview still occupies its application's
// single active slot.
func (i Interview) IsActive() bool {
	return i.Status != StatusCancelled
}

// DisplayTitle is the projection title used in schedules and in the
// mirrored calendar event.
func (i Interview) DisplayTitle() string {
	if i.CandidateName == "" {
		return "Interview"
	}
	return "Interview: " + i.CandidateName
}
