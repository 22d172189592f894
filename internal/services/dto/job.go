package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateJobRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=150"`
	Description  string `json:"description" validate:"required,min=10"`
	Location     string `json:"location" validate:"omitempty,max=100"`
	SalaryRange  string `json:"salary_range" validate:"omitempty,max=50"`
	Schedule     string `json:"schedule" validate:"omitempty,max=50"`
	Availability string `json:"availability" validate:"omitempty,max=50"`
}

// UpdateJobRequest is partial; nil fields are left untouched.
type UpdateJobRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3,max=150"`
	Description  *string `json:"description" validate:"omitempty,min=10"`
	Location     *string `json:"location" validate:"omitempty,max=100"`
	SalaryRange  *string `json:"salary_range" validate:"omitempty,max=50"`
	Schedule     *string `json:"schedule" validate:"omitempty,max=50"`
	Availability *string `json:"availability" validate:"omitempty,max=50"`
}

type JobResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Location     string        `json:"location,omitempty"`
	SalaryRange  string        `json:"salary_range,omitempty"`
	Schedule     string        `json:"schedule,omitempty"`
	Availability string        `json:"availability,omitempty"`
	Poster       *UserResponse `json:"poster,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func NewJobResponse(j *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:           j.ID,
		UserID:       j.UserID,
		Title:        j.Title,
		Description:  j.Description,
		Location:     j.Location,
		SalaryRange:  j.SalaryRange,
		Schedule:     j.Schedule,
		Availability: j.Availability,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if j.User != nil {
		resp.Poster = NewUserResponse(j.User)
	}
	return resp
}

func NewJobResponseList(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *NewJobResponse(&jobs[i]))
	}
	return out
}
