package application

import (
	"strings"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/pkg/validator"
)

type TransitionRequest struct {
	Status string `json:"status"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}
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

type ActivityResponse struct {
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type ApplicationResponse struct {
	ID                string             `json:"id"`
	OpportunityID     string             `json:"opportunity_id"`
	StudentID         string             `json:"student_id"`
	RecruiterOrgID    string             `json:"recruiter_org_id"`
	Status            string             `json:"status"`
	AppliedAt         time.Time          `json:"applied_at"`
	ActiveInterviewID *string            `json:"active_interview_id,omitempty"`
	Activities        []ActivityResponse `json:"activities,omitempty"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	TotalCount   int                   `json:"total_count"`
}

func ToResponse(app Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:                app.ID,
		OpportunityID:     app.OpportunityID,
		StudentID:         app.StudentID,
		RecruiterOrgID:    app.RecruiterOrgID,
		Status:            string(app.Status),
		AppliedAt:         app.AppliedAt,
		ActiveInterviewID: app.ActiveInterviewID,
	}
	for _, a := range app.Activities {
		resp.Activities = append(resp.Activities, ActivityResponse{
			Type:        string(a.Type),
			Date:        a.Date,
			Description: a.Description,
		})
	}
	return resp
}

func ToListResponse(apps []Application) ListApplicationsResponse {
	resp := ListApplicationsResponse{
		Applications: make([]ApplicationResponse, 0, len(apps)),
		TotalCount:   len(apps),
	}
	for _, app := range apps {
		item := ToResponse(app)
		item.Activities = nil // list views stay slim
		resp.Applications = append(resp.Applications, item)
	}
	return resp
}
