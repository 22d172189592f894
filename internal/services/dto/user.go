package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// UserResponse is the public shape of an account; the password hash
// never leaves the service layer.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	Fullname    string     `json:"fullname"`
	Age         int        `json:"age,omitempty"`
	CompanyName string     `json:"company_name,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		Fullname:    u.Fullname,
		Age:         u.Age,
		CompanyName: u.CompanyName,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		DeletedAt:   u.DeletedAt,
		CreatedAt:   u.CreatedAt,
	}
}

func NewUserResponseList(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *NewUserResponse(&users[i]))
	}
	return out
}

// UpdateUserRequest carries partial self-service profile edits.
type UpdateUserRequest struct {
	Fullname    *string `json:"fullname" validate:"omitempty,min=2,max=100"`
	Age         *int    `json:"age" validate:"omitempty,min=16,max=100"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=100"`
}
