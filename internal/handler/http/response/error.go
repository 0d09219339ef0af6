package response

import (
	"errors"
	"net/http"

	"github.com/careerbridge/recruit-backend-go/internal/domain/application"
	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	"github.com/careerbridge/recruit-backend-go/internal/domain/interview"
	"github.com/careerbridge/recruit-backend-go/internal/domain/notification"
	"github.com/careerbridge/recruit-backend-go/internal/domain/user"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Illegal lifecycle transitions carry their own message
	var appTransitionErr *application.TransitionError
	if errors.As(err, &appTransitionErr) {
		Conflict(w, appTransitionErr.Error())
		return
	}
	var ivTransitionErr *interview.TransitionError
	if errors.As(err, &ivTransitionErr) {
		Conflict(w, ivTransitionErr.Error())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUnknownRole):
		Forbidden(w, "Unknown role")
	case errors.Is(err, user.ErrRecruiterAccessRequired):
		Forbidden(w, "Recruiter access required")
	case errors.Is(err, user.ErrStudentAccessRequired):
		Forbidden(w, "Student access required")

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrInvalidStatus):
		BadRequest(w, "Invalid application status", nil)
	case errors.Is(err, application.ErrConcurrentUpdate):
		Conflict(w, "Application was modified concurrently, retry")

	// Interview domain errors
	case errors.Is(err, interview.ErrInterviewNotFound):
		NotFound(w, "Interview not found")
	case errors.Is(err, interview.ErrInterviewAlreadyScheduled):
		Conflict(w, "Application already has an active interview")
	case errors.Is(err, interview.ErrInterviewInPast):
		BadRequest(w, "Interview slot lies in the past", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, calendar.ErrEventInterviewManaged):
		Conflict(w, "Interview-derived events are managed through the interview")
	case errors.Is(err, calendar.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, calendar.ErrReservedType):
		BadRequest(w, "Event type is reserved", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this notification")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
