package repositories

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/pagination"

	"gorm.io/gorm"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrDuplicateSkillName = errors.New("skill name already exists for this user")
)

type SkillRepository interface {
	Create(skill *models.Skill) error
	FindByID(id string) (*models.Skill, error)
	FindByUserAndName(userID, skillName string) (*models.Skill, error)
	FindScoped(id, userID string) (*models.Skill, error)
	FindAll(p pagination.Params) ([]models.Skill, int64, error)
	Delete(id string) error
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) Create(skill *models.Skill) error {
	if err := r.db.Create(skill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSkillName
		}
		return err
	}
	return nil
}

func (r *SkillRepositoryImpl) FindByID(id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Preload("User").First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindByUserAndName(userID, skillName string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "user_id = ? AND skill_name = ?", userID, skillName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindScoped(id, userID string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindAll(p pagination.Params) ([]models.Skill, int64, error) {
	var skills []models.Skill
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Skill{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.
			Order("created_at DESC").
			Limit(p.Limit).
			Offset(p.Offset()).
			Find(&skills).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

func (r *SkillRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
