package interview

import (
	"strconv"
	"strings"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/validator"
)

// ScheduleDetails carries the caller-supplied slot details. Candidate and
// recruiter ids come from the owning application; CandidateName is resolved
// by the caller (directory lookups are outside the core).
type ScheduleDetails struct {
	Date            string  `json:"date"`       // "2006-01-02"
	StartTime       string  `json:"start_time"` // "15:04"
	DurationMinutes int     `json:"duration_minutes"`
	Type            string  `json:"type"`
	CandidateName   string  `json:"candidate_name"`
	Location        string  `json:"location"`
	MeetingLink     *string `json:"meeting_link,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func durationValuesJoined() string {
	parts := make([]string, len(DurationValues))
	for i, d := range DurationValues {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}

func (r *ScheduleDetails) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !IsAllowedDuration(r.DurationMinutes) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must be one of: " + durationValuesJoined(),
		})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(TypeValues, ", "),
		})
	}
	if validator.IsEmpty(r.CandidateName) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_name",
			Message: "candidate_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RescheduleRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

func (r *RescheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateInterviewRequest is the repository-level partial update.
type UpdateInterviewRequest struct {
	ID                  string
	Date                *time.Time
	StartTime           *string
	Status              *Status
	CalendarSyncPending *bool
	Notes               *string
}

type InterviewResponse struct {
	ID                  string  `json:"id"`
	ApplicationID       string  `json:"application_id"`
	CandidateID         string  `json:"candidate_id"`
	RecruiterID         string  `json:"recruiter_id"`
	CandidateName       string  `json:"candidate_name"`
	Date                string  `json:"date"`
	StartTime           string  `json:"start_time"`
	DurationMinutes     int     `json:"duration_minutes"`
	Type                string  `json:"type"`
	Status              string  `json:"status"`
	Location            string  `json:"location,omitempty"`
	MeetingLink         *string `json:"meeting_link,omitempty"`
	Notes               *string `json:"notes,omitempty"`
	CalendarSyncPending bool    `json:"calendar_sync_pending,omitempty"`
}

func ToResponse(iv Interview) InterviewResponse {
	return InterviewResponse{
		ID:                  iv.ID,
		ApplicationID:       iv.ApplicationID,
		CandidateID:         iv.CandidateID,
		RecruiterID:         iv.RecruiterID,
		CandidateName:       iv.CandidateName,
		Date:                iv.Date.Format(timeutil.DateLayout),
		StartTime:           iv.StartTime,
		DurationMinutes:     iv.DurationMinutes,
		Type:                string(iv.Type),
		Status:              string(iv.Status),
		Location:            iv.Location,
		MeetingLink:         iv.MeetingLink,
		Notes:               iv.Notes,
		CalendarSyncPending: iv.CalendarSyncPending,
	}
}
