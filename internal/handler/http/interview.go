package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/careerbridge/recruit-backend-go/internal/domain/scheduling"
	"github.com/careerbridge/recruit-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// InterviewHandler defines the interview handler interface
type InterviewHandler interface {
	Schedule(w http.ResponseWriter, r *http.Request)
	Reschedule(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type interviewHandlerImpl struct {
	coordinator  scheduling.Coordinator
	interviewSvc interview.Service
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(coordinator scheduling.Coordinator, interviewSvc interview.Service) InterviewHandler {
	return &interviewHandlerImpl{
		coordinator:  coordinator,
		interviewSvc: interviewSvc,
	}
}

// Schedule books an interview for an application. When the interview is
// saved but its calendar mirror is not, the interview is still returned;
// the response message carries the sync warning.
func (h *interviewHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	applicationID := chi.URLParam(r, "id")
	if applicationID == "" {
		response.BadRequest(w, "Application ID is required", nil)
		return
	}

	var details interview.ScheduleDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	iv, err := h.coordinator.ScheduleInterview(r.Context(), applicationID, details)
	if err != nil {
		var partial *scheduling.SyncPartialFailure
		if errors.As(err, &partial) {
			response.Created(w, "Interview scheduled; calendar sync pending", interview.ToResponse(iv))
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Interview scheduled", interview.ToResponse(iv))
}

// Reschedule moves an interview to a new slot
func (h *interviewHandlerImpl) Reschedule(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "id")
	if interviewID == "" {
		response.BadRequest(w, "Interview ID is required", nil)
		return
	}

	var req interview.RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	iv, err := h.coordinator.RescheduleInterview(r.Context(), interviewID, req)
	if err != nil {
		var partial *scheduling.SyncPartialFailure
		if errors.As(err, &partial) {
			response.SuccessWithMessage(w, "Interview rescheduled; calendar sync pending", interview.ToResponse(iv))
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Interview rescheduled", interview.ToResponse(iv))
}

// Cancel cancels an interview and frees the application's slot
func (h *interviewHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "id")
	if interviewID == "" {
		response.BadRequest(w, "Interview ID is required", nil)
		return
	}

	iv, err := h.coordinator.CancelInterview(r.Context(), interviewID)
	if err != nil {
		var partial *scheduling.SyncPartialFailure
		if errors.As(err, &partial) {
			response.SuccessWithMessage(w, "Interview cancelled; calendar sync pending", interview.ToResponse(iv))
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Interview cancelled", interview.ToResponse(iv))
}

// UpdateStatus transitions an interview's lifecycle status. Cancellation
// goes through the coordinator so the application and calendar stay
// consistent.
func (h *interviewHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "id")
	if interviewID == "" {
		response.BadRequest(w, "Interview ID is required", nil)
		return
	}

	var req interview.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if interview.Status(req.Status) == interview.StatusCancelled {
		h.Cancel(w, r)
		return
	}

	iv, err := h.interviewSvc.UpdateStatus(r.Context(), interviewID, interview.Status(req.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Interview status updated", interview.ToResponse(iv))
}

// GetByID retrieves a single interview
func (h *interviewHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "id")
	if interviewID == "" {
		response.BadRequest(w, "Interview ID is required", nil)
		return
	}

	iv, err := h.interviewSvc.GetByID(r.Context(), interviewID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, interview.ToResponse(iv))
}
