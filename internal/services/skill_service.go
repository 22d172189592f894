package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/pagination"
)

type SkillService interface {
	Create(userID, skillName string) (*dto.SkillResponse, error)
	GetAll(page, limit int) (*pagination.Result[dto.SkillResponse], error)
	GetByID(skillID string) (*dto.SkillResponse, error)
	DeleteOwn(userID, skillID string) error
}

type SkillServiceImpl struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &SkillServiceImpl{skillRepo: skillRepo}
}

// Create adds a skill to the caller's profile. Uniqueness is per user;
// the composite index backstops the pre-check under concurrency.
func (s *SkillServiceImpl) Create(userID, skillName string) (*dto.SkillResponse, error) {
	if _, err := s.skillRepo.FindByUserAndName(userID, skillName); err == nil {
		return nil, apperrors.ErrDuplicate(nil, "skill", "Skill already exists on your profile")
	} else if !apperrors.Is(err, repositories.ErrSkillNotFound) {
		return nil, apperrors.InternalError(err)
	}

	skill := &models.Skill{
		UserID:    userID,
		SkillName: skillName,
	}
	if err := s.skillRepo.Create(skill); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateSkillName) {
			return nil, apperrors.ErrDuplicate(err, "skill", "Skill already exists on your profile")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewSkillResponse(skill), nil
}

func (s *SkillServiceImpl) GetAll(page, limit int) (*pagination.Result[dto.SkillResponse], error) {
	p := pagination.Normalize(page, limit)
	skills, total, err := s.skillRepo.FindAll(p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pagination.NewResult(dto.NewSkillResponseList(skills), total, p), nil
}

func (s *SkillServiceImpl) GetByID(skillID string) (*dto.SkillResponse, error) {
	skill, err := s.skillRepo.FindByID(skillID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.ErrNotFound(err, "skill", "Skill not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewSkillResponse(skill), nil
}

func (s *SkillServiceImpl) DeleteOwn(userID, skillID string) error {
	skill, err := s.skillRepo.FindScoped(skillID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrNotFound(err, "skill", "Skill not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.skillRepo.Delete(skill.ID); err != nil {
		if apperrors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrNotFound(err, "skill", "Skill not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
