package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateSkillRequest struct {
	SkillName string `json:"skill_name" validate:"required,min=1,max=50"`
}

type SkillResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SkillName string    `json:"skill_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSkillResponse(s *models.Skill) *SkillResponse {
	return &SkillResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		SkillName: s.SkillName,
		CreatedAt: s.CreatedAt,
	}
}

func NewSkillResponseList(skills []models.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for i := range skills {
		out = append(out, *NewSkillResponse(&skills[i]))
	}
	return out
}
