package calendar

import (
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/validator"
)

type CreateEventRequest struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`       // "2006-01-02"
	StartTime   string  `json:"start_time"` // "15:04", optional
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	MeetingLink *string `json:"meeting_link,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.StartTime != "" && !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}
	if r.Type == EventTypeInterview {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type \"Interview\" is reserved for mirrored interviews",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEventRequest is the repository-level partial update.
type UpdateEventRequest struct {
	ID        string
	Title     *string
	Date      *time.Time
	StartTime *string
	Status    *EventStatus
	Location  *string
}

type EventResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time,omitempty"`
	Type        string  `json:"type"`
	Location    string  `json:"location,omitempty"`
	MeetingLink *string `json:"meeting_link,omitempty"`
	Status      string  `json:"status"`
	RelatedTo   *string `json:"related_to,omitempty"`
	RelatedType *string `json:"related_type,omitempty"`
}

func ToEventResponse(e Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Date:        e.Date.Format(timeutil.DateLayout),
		StartTime:   e.StartTime,
		Type:        e.Type,
		Location:    e.Location,
		MeetingLink: e.MeetingLink,
		Status:      string(e.Status),
		RelatedTo:   e.RelatedTo,
	}
	if e.RelatedType != nil {
		rt := string(*e.RelatedType)
		resp.RelatedType = &rt
	}
	return resp
}

type ScheduleItemResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	StartDateTime time.Time `json:"start_date_time"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Location      string    `json:"location,omitempty"`
	MeetingLink   *string   `json:"meeting_link,omitempty"`
	SourceKind    string    `json:"source_kind"`
}

type ScheduleResponse struct {
	Items      []ScheduleItemResponse `json:"items"`
	TotalCount int                    `json:"total_count"`
}

func ToScheduleResponse(items []ScheduleItem) ScheduleResponse {
	resp := ScheduleResponse{
		Items:      make([]ScheduleItemResponse, 0, len(items)),
		TotalCount: len(items),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, ScheduleItemResponse{
			ID:            it.ID,
			Title:         it.Title,
			StartDateTime: it.StartDateTime,
			Type:          it.Type,
			Status:        it.Status,
			Location:      it.Location,
			MeetingLink:   it.MeetingLink,
			SourceKind:    string(it.SourceKind),
		})
	}
	return resp
}
