package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// UpdateApplicationStatusRequest carries a recruiter's verdict.
// Cancellation has its own endpoint and is not accepted here.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Hired Rejected"`
}

type ApplicationResponse struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	JobID      string        `json:"job_id"`
	Status     string        `json:"status"`
	ResumePath string        `json:"resume_path,omitempty"`
	Job        *JobResponse  `json:"job,omitempty"`
	Applicant  *UserResponse `json:"applicant,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func NewApplicationResponse(a *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		JobID:      a.JobID,
		Status:     string(a.Status),
		ResumePath: a.ResumePath,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if a.Job != nil {
		resp.Job = NewJobResponse(a.Job)
	}
	if a.User != nil {
		resp.Applicant = NewUserResponse(a.User)
	}
	return resp
}

func NewApplicationResponseList(apps []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, *NewApplicationResponse(&apps[i]))
	}
	return out
}
