package http

import (
	"encoding/json"
	"net/http"

	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	"github.com/careerbridge/recruit-backend-go/internal/handler/http/response"
)

// ScheduleHandler defines the schedule and calendar event handler interface
type ScheduleHandler interface {
	GetSchedule(w http.ResponseWriter, r *http.Request)
	CreateEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	calendarSvc calendar.Service
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(calendarSvc calendar.Service) ScheduleHandler {
	return &scheduleHandlerImpl{calendarSvc: calendarSvc}
}

// GetSchedule returns the actor's merged schedule of interviews and events
func (h *scheduleHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	actor, err := getActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	from, to, ok := getDateRange(r)
	if !ok {
		response.BadRequest(w, "from/to must be in YYYY-MM-DD format", nil)
		return
	}

	items, err := h.calendarSvc.GetSchedule(r.Context(), actor.ID, actor.Role, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar.ToScheduleResponse(items))
}

// CreateEvent creates an independent calendar event for the actor
func (h *scheduleHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req calendar.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.calendarSvc.CreateEvent(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created", calendar.ToEventResponse(event))
}

// ListEvents lists the actor's calendar events in a date range
func (h *scheduleHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	from, to, ok := getDateRange(r)
	if !ok {
		response.BadRequest(w, "from/to must be in YYYY-MM-DD format", nil)
		return
	}

	events, err := h.calendarSvc.ListEvents(r.Context(), userID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]calendar.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, calendar.ToEventResponse(e))
	}

	response.Success(w, responses)
}
