package http

import (
	"encoding/json"
	"net/http"

	"github.com/careerbridge/recruit-backend-go/internal/domain/application"
	"github.com/careerbridge/recruit-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// ApplicationHandler defines the application handler interface
type ApplicationHandler interface {
	Transition(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByOpportunity(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	appService application.Service
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appService application.Service) ApplicationHandler {
	return &applicationHandlerImpl{appService: appService}
}

// Transition moves an application to a new pipeline status
func (h *applicationHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	applicationID := chi.URLParam(r, "id")
	if applicationID == "" {
		response.BadRequest(w, "Application ID is required", nil)
		return
	}

	var req application.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	app, err := h.appService.Transition(r.Context(), applicationID, application.Status(req.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application status updated", application.ToResponse(app))
}

// GetByID retrieves a single application with its activity log
func (h *applicationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	applicationID := chi.URLParam(r, "id")
	if applicationID == "" {
		response.BadRequest(w, "Application ID is required", nil)
		return
	}

	app, err := h.appService.GetByID(r.Context(), applicationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, application.ToResponse(app))
}

// ListMine lists the authenticated student's applications
func (h *applicationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	apps, err := h.appService.ListByStudent(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, application.ToListResponse(apps))
}

// ListByOpportunity lists applications received for an opportunity
func (h *applicationHandlerImpl) ListByOpportunity(w http.ResponseWriter, r *http.Request) {
	opportunityID := chi.URLParam(r, "id")
	if opportunityID == "" {
		response.BadRequest(w, "Opportunity ID is required", nil)
		return
	}

	apps, err := h.appService.ListByOpportunity(r.Context(), opportunityID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, application.ToListResponse(apps))
}
