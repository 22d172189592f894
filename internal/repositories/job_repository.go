package repositories

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/pagination"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	// FindOwned loads a job scoped to its owner; a job existing under a
	// different recruiter is indistinguishable from an absent one.
	FindOwned(id, ownerID string) (*models.Job, error)
	FindAll(p pagination.Params) ([]models.Job, int64, error)
	FindByOwner(ownerID string, p pagination.Params) ([]models.Job, int64, error)
	Update(job *models.Job) error
	// DeleteCascade removes the job and its applications in one
	// transaction and returns the orphaned resume paths for cleanup.
	DeleteCascade(id string) ([]string, error)
	SearchByTitle(query string) ([]models.Job, error)
	FindApplicants(jobID string) ([]models.Application, error)
	// FindApplicantScoped composes job ownership into the predicate so a
	// recruiter cannot probe applications under other recruiters' jobs.
	FindApplicantScoped(ownerID, jobID, applicationID string) (*models.Application, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("User").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindOwned(id, ownerID string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll(p pagination.Params) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Job{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.
			Preload("User").
			Order("created_at DESC").
			Limit(p.Limit).
			Offset(p.Offset()).
			Find(&jobs).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) FindByOwner(ownerID string, p pagination.Params) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Job{}).Where("user_id = ?", ownerID)
		if err := query.Count(&total).Error; err != nil {
			return err
		}
		return query.
			Order("created_at DESC").
			Limit(p.Limit).
			Offset(p.Offset()).
			Find(&jobs).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) DeleteCascade(id string) ([]string, error) {
	var resumePaths []string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var applications []models.Application
		if err := tx.Where("job_id = ?", id).Find(&applications).Error; err != nil {
			return err
		}
		for _, app := range applications {
			if app.ResumePath != "" {
				resumePaths = append(resumePaths, app.ResumePath)
			}
		}

		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resumePaths, nil
}

// SearchByTitle matches a case-insensitive substring, newest first. An
// empty query returns nothing rather than the whole table.
func (r *JobRepositoryImpl) SearchByTitle(query string) ([]models.Job, error) {
	if query == "" {
		return []models.Job{}, nil
	}

	var jobs []models.Job
	err := r.db.
		Where("title ILIKE ?", "%"+query+"%").
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindApplicants(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("User").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *JobRepositoryImpl) FindApplicantScoped(ownerID, jobID, applicationID string) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Preload("User").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.id = ? AND applications.job_id = ? AND jobs.user_id = ?", applicationID, jobID, ownerID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}
