package services

import (
	"context"
	"fmt"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(userID, jobID, resumePath string) (*dto.ApplicationResponse, error)
	GetAllMy(userID string) ([]dto.ApplicationResponse, error)
	GetOneOfMy(userID, applicationID string) (*dto.ApplicationResponse, error)
	GetMyCancelled(userID string) ([]dto.ApplicationResponse, error)
	UpdateStatus(recruiterID, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
	Cancel(userID, applicationID string) (*dto.ApplicationResponse, error)
	DeleteMy(userID, applicationID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo     repositories.ApplicationRepository
	jobRepo             repositories.JobRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
	storage             storage.Storage
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
	store storage.Storage,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo:     applicationRepo,
		jobRepo:             jobRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		storage:             store,
	}
}

// Apply submits an application. The duplicate pre-check is the fast
// path; the composite unique index on (user_id, job_id) closes the race
// when two requests pass the pre-check together. A cancelled application
// still holds the slot until it is deleted.
func (s *ApplicationServiceImpl) Apply(userID, jobID, resumePath string) (*dto.ApplicationResponse, error) {
	cleanup := func() {
		if resumePath == "" || s.storage == nil {
			return
		}
		if err := s.storage.Delete(context.Background(), resumePath); err != nil {
			logger.Warn("failed to remove orphaned resume", "path", resumePath, "error", err)
		}
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		cleanup()
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.applicationRepo.FindExisting(userID, jobID); err == nil {
		cleanup()
		return nil, apperrors.ErrAlreadyApplied
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		cleanup()
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		UserID:     userID,
		JobID:      jobID,
		Status:     models.ApplicationStatusApplied,
		ResumePath: resumePath,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		cleanup()
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyJobOwner(job, userID, application.ID)

	return s.GetOneOfMy(userID, application.ID)
}

// notifyJobOwner is best-effort; a failed notification never rolls back
// the application.
func (s *ApplicationServiceImpl) notifyJobOwner(job *models.Job, applicantID, applicationID string) {
	applicant, err := s.userRepo.FindByID(applicantID)
	if err != nil {
		logger.Warn("failed to load applicant for notification", "user_id", applicantID, "error", err)
		return
	}

	message := fmt.Sprintf("%s applied to your job \"%s\"", applicant.Fullname, job.Title)
	data := map[string]interface{}{
		"job_id":         job.ID,
		"application_id": applicationID,
	}
	if _, err := s.notificationService.Create(job.UserID, message, data); err != nil {
		logger.Warn("failed to notify job owner", "job_id", job.ID, "error", err)
	}
}

func (s *ApplicationServiceImpl) GetAllMy(userID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(applications), nil
}

func (s *ApplicationServiceImpl) GetOneOfMy(userID, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindScoped(applicationID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponse(application), nil
}

func (s *ApplicationServiceImpl) GetMyCancelled(userID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindCancelledByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(applications), nil
}

// UpdateStatus records a recruiter verdict. The write is conditional on
// the row still being Applied, so two concurrent verdicts cannot both
// land: the loser sees zero rows affected and fails on the re-read.
func (s *ApplicationServiceImpl) UpdateStatus(recruiterID, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if status != models.ApplicationStatusHired && status != models.ApplicationStatusRejected {
		return nil, apperrors.ErrInvalidStatus("application", "Status must be Hired or Rejected")
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Job == nil || application.Job.UserID != recruiterID {
		return nil, apperrors.ErrNotJobOwner
	}

	var recruiter *models.User
	if status == models.ApplicationStatusHired {
		recruiter, err = s.userRepo.FindByID(recruiterID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if recruiter.CompanyName == "" {
			return nil, apperrors.ErrRecruiterHasNoCompany
		}
	}

	// Hiring stamps the employer onto the applicant's profile. The
	// stamp lands before the status write: a Hired row must never exist
	// with the applicant left un-stamped.
	if status == models.ApplicationStatusHired {
		if err := s.userRepo.UpdateCompanyName(application.UserID, recruiter.CompanyName); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	updated, err := s.applicationRepo.UpdateStatusIf(applicationID, models.ApplicationStatusApplied, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !updated {
		current, err := s.applicationRepo.FindByID(applicationID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return nil, apperrors.ErrInvalidStatus("application",
			fmt.Sprintf("Application is already %s", current.Status))
	}

	message := fmt.Sprintf("Your application for \"%s\" was %s", application.Job.Title, statusVerb(status))
	data := map[string]interface{}{
		"job_id":         application.JobID,
		"application_id": application.ID,
		"status":         string(status),
	}
	if _, err := s.notificationService.Create(application.UserID, message, data); err != nil {
		logger.Warn("failed to notify applicant", "application_id", application.ID, "error", err)
	}

	return s.GetOneOfMy(application.UserID, applicationID)
}

func statusVerb(status models.ApplicationStatus) string {
	switch status {
	case models.ApplicationStatusHired:
		return "accepted"
	case models.ApplicationStatusRejected:
		return "rejected"
	default:
		return string(status)
	}
}

// Cancel withdraws the caller's own application, only from Applied.
func (s *ApplicationServiceImpl) Cancel(userID, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindScoped(applicationID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotApplicationOwner
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Status != models.ApplicationStatusApplied {
		return nil, apperrors.ErrApplicationNotCancellable
	}

	updated, err := s.applicationRepo.UpdateStatusIf(applicationID, models.ApplicationStatusApplied, models.ApplicationStatusCancelled)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !updated {
		return nil, apperrors.ErrApplicationNotCancellable
	}

	return s.GetOneOfMy(userID, applicationID)
}

// DeleteMy removes the caller's application and its resume file. A hired
// application is part of the employer's records and cannot be deleted.
func (s *ApplicationServiceImpl) DeleteMy(userID, applicationID string) error {
	application, err := s.applicationRepo.FindScoped(applicationID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return apperrors.InternalError(err)
	}

	if application.Status == models.ApplicationStatusHired {
		return apperrors.ErrApplicationHired
	}

	if err := s.applicationRepo.Delete(applicationID); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return apperrors.InternalError(err)
	}

	if application.ResumePath != "" && s.storage != nil {
		if err := s.storage.Delete(context.Background(), application.ResumePath); err != nil {
			logger.Warn("failed to remove resume file", "path", application.ResumePath, "error", err)
		}
	}
	return nil
}
