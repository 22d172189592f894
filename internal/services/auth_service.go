package services

import (
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

const codeTTL = 10 * time.Minute

type AuthService interface {
	RegisterRecruiter(req *dto.RegisterRequest) error
	RegisterJobseeker(req *dto.RegisterRequest) error
	VerifyEmail(code string) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(userID string) error
	RecoverAccount(emailAddr string) error
	VerifyRecovery(code string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	verificationRepo repositories.VerificationRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	verificationRepo repositories.VerificationRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		emailProvider:    emailProvider,
	}
}

func (s *AuthServiceImpl) RegisterRecruiter(req *dto.RegisterRequest) error {
	if req.CompanyName == "" {
		return apperrors.ErrRecruiterHasNoCompany
	}
	return s.register(req, models.UserRoleRecruiter)
}

func (s *AuthServiceImpl) RegisterJobseeker(req *dto.RegisterRequest) error {
	return s.register(req, models.UserRoleJobseeker)
}

// register stages an account as an EmailVerification row. The account
// only becomes a User once the mailed code is confirmed.
func (s *AuthServiceImpl) register(req *dto.RegisterRequest, role models.UserRole) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ValidationError(err.Error())
	}

	// Duplicate pre-checks against live users and pending registrations.
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return apperrors.ErrEmailAlreadyUsed
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return apperrors.ErrUsernameAlreadyUsed
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}
	if _, err := s.verificationRepo.FindVerificationByEmail(req.Email); err == nil {
		return apperrors.ErrEmailAlreadyUsed
	} else if !apperrors.Is(err, repositories.ErrVerificationNotFound) {
		return apperrors.InternalError(err)
	}
	if _, err := s.verificationRepo.FindVerificationByUsername(req.Username); err == nil {
		return apperrors.ErrUsernameAlreadyUsed
	} else if !apperrors.Is(err, repositories.ErrVerificationNotFound) {
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	code, err := email.GenerateCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	verification := &models.EmailVerification{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Fullname:     req.Fullname,
		Age:          req.Age,
		CompanyName:  req.CompanyName,
		Role:         role,
		Code:         code,
		ExpiresAt:    time.Now().Add(codeTTL),
	}
	if err := s.verificationRepo.CreateVerification(verification); err != nil {
		if apperrors.Is(err, repositories.ErrPendingExists) {
			return apperrors.ErrEmailAlreadyUsed
		}
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendVerificationCode(req.Email, code); err != nil {
		return apperrors.ErrUpstream(err, "auth", "Failed to send verification email")
	}
	return nil
}

func (s *AuthServiceImpl) VerifyEmail(code string) (*dto.UserResponse, error) {
	verification, err := s.verificationRepo.FindVerificationByCode(code)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVerificationNotFound) {
			return nil, apperrors.ErrInvalidVerificationCode
		}
		return nil, apperrors.InternalError(err)
	}

	// Re-check uniqueness: a user may have registered directly while
	// this code sat unconfirmed.
	if _, err := s.userRepo.FindByEmail(verification.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyUsed
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.userRepo.FindByUsername(verification.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyUsed
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        verification.Email,
		Username:     verification.Username,
		PasswordHash: verification.PasswordHash,
		Fullname:     verification.Fullname,
		Age:          verification.Age,
		CompanyName:  verification.CompanyName,
		Role:         verification.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyUsed
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.verificationRepo.DeleteVerification(verification.ID); err != nil {
		// The user exists; the sweep reclaims the stale row later.
		logger.Warn("failed to delete confirmed verification", "id", verification.ID, "error", err)
	}

	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.DeletedAt != nil {
		return nil, apperrors.ErrAccountDeleted
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Email, string(user.Role), user.Fullname)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetActive(user.ID, true); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsActive = true

	return &dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AuthServiceImpl) Logout(userID string) error {
	if err := s.userRepo.SetActive(userID, false); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// RecoverAccount issues a recovery code for a soft-deleted account.
func (s *AuthServiceImpl) RecoverAccount(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "auth", "No account for this email")
		}
		return apperrors.InternalError(err)
	}

	if user.DeletedAt == nil {
		return apperrors.ErrAccountNotDeleted
	}

	code, err := email.GenerateCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Replace any previous pending code for this email.
	if err := s.verificationRepo.DeleteRecoveryByEmail(emailAddr); err != nil {
		return apperrors.InternalError(err)
	}
	recovery := &models.AccountRecovery{
		Email:     emailAddr,
		Code:      code,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.verificationRepo.CreateRecovery(recovery); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendRecoveryCode(emailAddr, code); err != nil {
		return apperrors.ErrUpstream(err, "auth", "Failed to send recovery email")
	}
	return nil
}

func (s *AuthServiceImpl) VerifyRecovery(code string) error {
	recovery, err := s.verificationRepo.FindRecoveryByCode(code)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecoveryNotFound) {
			return apperrors.ErrInvalidVerificationCode
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.RecoverByEmail(recovery.Email); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "auth", "No account for this email")
		}
		return apperrors.InternalError(err)
	}

	if err := s.verificationRepo.DeleteRecoveryByEmail(recovery.Email); err != nil {
		logger.Warn("failed to delete used recovery code", "email", recovery.Email, "error", err)
	}
	return nil
}
