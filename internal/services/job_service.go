package services

import (
	"context"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/pagination"
)

type JobService interface {
	Create(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetAll(page, limit int) (*pagination.Result[dto.JobResponse], error)
	GetOwn(recruiterID string, page, limit int) (*pagination.Result[dto.JobResponse], error)
	GetOneOwn(recruiterID, jobID string) (*dto.JobResponse, error)
	GetByID(jobID string) (*dto.JobResponse, error)
	Update(recruiterID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteByOwner(recruiterID, jobID string) error
	DeleteByAdmin(jobID string) error
	GetApplicants(recruiterID, jobID string) ([]dto.ApplicationResponse, error)
	GetOneApplicant(recruiterID, jobID, applicationID string) (*dto.ApplicationResponse, error)
	Search(query string) ([]dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
	storage storage.Storage
}

func NewJobService(jobRepo repositories.JobRepository, store storage.Storage) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, storage: store}
}

func (s *JobServiceImpl) Create(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		UserID:       recruiterID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
		Schedule:     req.Schedule,
		Availability: req.Availability,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

func (s *JobServiceImpl) GetAll(page, limit int) (*pagination.Result[dto.JobResponse], error) {
	p := pagination.Normalize(page, limit)
	jobs, total, err := s.jobRepo.FindAll(p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pagination.NewResult(dto.NewJobResponseList(jobs), total, p), nil
}

func (s *JobServiceImpl) GetOwn(recruiterID string, page, limit int) (*pagination.Result[dto.JobResponse], error) {
	p := pagination.Normalize(page, limit)
	jobs, total, err := s.jobRepo.FindByOwner(recruiterID, p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pagination.NewResult(dto.NewJobResponseList(jobs), total, p), nil
}

func (s *JobServiceImpl) GetOneOwn(recruiterID, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindOwned(jobID, recruiterID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

func (s *JobServiceImpl) GetByID(jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// Update loads the job fresh and checks ownership before touching any
// field; nil fields in the request are left as they are.
func (s *JobServiceImpl) Update(recruiterID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if job.UserID != recruiterID {
		return nil, apperrors.ErrNotJobOwner
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.Schedule != nil {
		job.Schedule = *req.Schedule
	}
	if req.Availability != nil {
		job.Availability = *req.Availability
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

func (s *JobServiceImpl) DeleteByOwner(recruiterID, jobID string) error {
	if _, err := s.jobRepo.FindOwned(jobID, recruiterID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotJobOwner
		}
		return apperrors.InternalError(err)
	}
	return s.delete(jobID)
}

func (s *JobServiceImpl) DeleteByAdmin(jobID string) error {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}
	return s.delete(jobID)
}

// delete removes the job and its applications in one transaction, then
// cleans up the orphaned resume files.
func (s *JobServiceImpl) delete(jobID string) error {
	resumePaths, err := s.jobRepo.DeleteCascade(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}

	if s.storage != nil {
		for _, path := range resumePaths {
			if path == "" {
				continue
			}
			if err := s.storage.Delete(context.Background(), path); err != nil {
				logger.Warn("failed to remove resume file", "path", path, "error", err)
			}
		}
	}
	return nil
}

// GetApplicants lists applications for one of the recruiter's own jobs.
// The scoped job load doubles as the ownership check.
func (s *JobServiceImpl) GetApplicants(recruiterID, jobID string) ([]dto.ApplicationResponse, error) {
	if _, err := s.jobRepo.FindOwned(jobID, recruiterID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotJobOwner
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.jobRepo.FindApplicants(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(applications), nil
}

func (s *JobServiceImpl) GetOneApplicant(recruiterID, jobID, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.jobRepo.FindApplicantScoped(recruiterID, jobID, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponse(application), nil
}

// Search matches job titles by substring; an empty query returns an
// empty slice rather than the whole table.
func (s *JobServiceImpl) Search(query string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.SearchByTitle(query)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponseList(jobs), nil
}
