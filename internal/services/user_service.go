package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/pagination"
)

type UserService interface {
	GetAllRecruiters(page, limit int) (*pagination.Result[dto.UserResponse], error)
	GetAllJobseekers(page, limit int) (*pagination.Result[dto.UserResponse], error)
	GetAllDeleted(page, limit int) (*pagination.Result[dto.UserResponse], error)
	GetByID(userID string) (*dto.UserResponse, error)
	GetCurrent(userID string) (*dto.UserResponse, error)
	UpdateOwnDetails(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteOwn(userID string) error
	DeleteByAdmin(userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) byRole(role models.UserRole, page, limit int) (*pagination.Result[dto.UserResponse], error) {
	p := pagination.Normalize(page, limit)
	users, total, err := s.userRepo.FindByRole(role, p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pagination.NewResult(dto.NewUserResponseList(users), total, p), nil
}

func (s *UserServiceImpl) GetAllRecruiters(page, limit int) (*pagination.Result[dto.UserResponse], error) {
	return s.byRole(models.UserRoleRecruiter, page, limit)
}

func (s *UserServiceImpl) GetAllJobseekers(page, limit int) (*pagination.Result[dto.UserResponse], error) {
	return s.byRole(models.UserRoleJobseeker, page, limit)
}

func (s *UserServiceImpl) GetAllDeleted(page, limit int) (*pagination.Result[dto.UserResponse], error) {
	p := pagination.Normalize(page, limit)
	users, total, err := s.userRepo.FindDeleted(p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pagination.NewResult(dto.NewUserResponseList(users), total, p), nil
}

func (s *UserServiceImpl) GetByID(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) GetCurrent(userID string) (*dto.UserResponse, error) {
	return s.GetByID(userID)
}

func (s *UserServiceImpl) UpdateOwnDetails(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Fullname != nil {
		user.Fullname = *req.Fullname
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.CompanyName != nil {
		// Only recruiters carry a company of their own.
		if user.Role != models.UserRoleRecruiter {
			return nil, apperrors.ErrInvalidOperation("user", "Only recruiters can set a company name")
		}
		user.CompanyName = *req.CompanyName
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// DeleteOwn soft-deletes: the account stops authenticating immediately
// and the purge sweep hard-deletes it after 30 days unless recovered.
func (s *UserServiceImpl) DeleteOwn(userID string) error {
	if err := s.userRepo.SoftDelete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) DeleteByAdmin(userID string) error {
	if err := s.userRepo.HardDelete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
