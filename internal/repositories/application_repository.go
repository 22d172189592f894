package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job")
)

type ApplicationRepository interface {
	// Create inserts the row; a race-lost duplicate insert surfaces the
	// same ErrDuplicateApplication the service pre-check produces.
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindExisting(userID, jobID string) (*models.Application, error)
	FindScoped(id, userID string) (*models.Application, error)
	FindByUser(userID string) ([]models.Application, error)
	FindCancelledByUser(userID string) ([]models.Application, error)
	// UpdateStatusIf performs the conditional transition
	// (WHERE status = from); false means the row was no longer in `from`.
	UpdateStatusIf(id string, from, to models.ApplicationStatus) (bool, error)
	Delete(id string) error
	// DeleteCancelledBefore removes Cancelled rows last touched at or
	// before cutoff; reports rows removed.
	DeleteCancelledBefore(cutoff time.Time) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Preload("Job").
		Preload("Job.User").
		Preload("User").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindExisting(userID, jobID string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindScoped(id, userID string) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Preload("Job").
		First(&application, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(userID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindCancelledByUser(userID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.ApplicationStatusCancelled).
		Order("updated_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatusIf(id string, from, to models.ApplicationStatus) (bool, error) {
	result := r.db.Model(&models.Application{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) DeleteCancelledBefore(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("status = ? AND updated_at <= ?", models.ApplicationStatusCancelled, cutoff).
		Delete(&models.Application{})
	return result.RowsAffected, result.Error
}
