package application

import "time"

// Status is the review-pipeline status of an application.
type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
)

// StatusValues lists every legal status, in pipeline order.
var StatusValues = []string{
	string(StatusPending),
	string(StatusUnderReview),
	string(StatusShortlisted),
	string(StatusInterview),
	string(StatusAccepted),
	string(StatusRejected),
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusShortlisted, StatusInterview, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// pipelineRank orders the forward pipeline. Rejected has no rank; it is
// reachable from every non-terminal status.
var pipelineRank = map[Status]int{
	StatusPending:     0,
	StatusUnderReview: 1,
	StatusShortlisted: 2,
	StatusInterview:   3,
	StatusAccepted:    4,
}

// IsBefore reports whether s comes earlier than other in the forward
// pipeline. Rejected is never before or after anything.
func (s Status) IsBefore(other Status) bool {
	a, okA := pipelineRank[s]
	b, okB := pipelineRank[other]
	return okA && okB && a < b
}

// allowedTransitions is the explicit edge table of the application state
// machine. Transitions to Rejected are handled separately: any non-terminal
// status may reject.
var allowedTransitions = map[Status][]Status{
	StatusPending:     {StatusUnderReview},
	StatusUnderReview: {StatusShortlisted},
	StatusShortlisted: {StatusInterview},
	StatusInterview:   {StatusAccepted},
}

// CanTransitionTo reports whether the edge s -> next exists.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusRejected {
		return true
	}
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ActivityType tags an entry in the application audit trail.
type ActivityType string

const (
	ActivityStatusChanged        ActivityType = "StatusChanged"
	ActivityInterviewScheduled   ActivityType = "InterviewScheduled"
	ActivityInterviewRescheduled ActivityType = "InterviewRescheduled"
	ActivityInterviewCancelled   ActivityType = "InterviewCancelled"
)

// Activity is one entry of the append-only audit trail. Entries are never
// edited or removed once written.
type Activity struct {
	Type        ActivityType `json:"type"`
	Date        time.Time    `json:"date"`
	Description string       `json:"description"`
}

// Application is a candidate's submission to an opportunity, carrying its
// position in the review pipeline.
type Application struct {
	ID             string
	OpportunityID  string
	StudentID      string
	RecruiterOrgID string

	Status    Status
	AppliedAt time.Time

	// ActiveInterviewID, when set, references the single non-cancelled
	// interview for this application.
	ActiveInterviewID *string

	Activities []Activity

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusChangeActivity builds the audit entry recorded on every successful
// status transition.
func StatusChangeActivity(from, to Status, at time.Time) Activity {
	return Activity{
		Type:        ActivityStatusChanged,
		Date:        at,
		Description: string(from) + " -> " + string(to),
	}
}
