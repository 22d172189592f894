package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrVerificationNotFound = errors.New("verification record not found")
	ErrRecoveryNotFound     = errors.New("recovery record not found")
	ErrPendingExists        = errors.New("a pending verification already exists")
)

// VerificationRepository owns the two ephemeral code tables:
// EmailVerification (pending registrations) and AccountRecovery
// (pending soft-delete recoveries).
type VerificationRepository interface {
	CreateVerification(v *models.EmailVerification) error
	FindVerificationByEmail(email string) (*models.EmailVerification, error)
	FindVerificationByUsername(username string) (*models.EmailVerification, error)
	// FindVerificationByCode only matches unexpired records.
	FindVerificationByCode(code string) (*models.EmailVerification, error)
	DeleteVerification(id string) error

	CreateRecovery(rec *models.AccountRecovery) error
	FindRecoveryByCode(code string) (*models.AccountRecovery, error)
	DeleteRecoveryByEmail(email string) error

	// Retention sweeps; both report rows removed.
	DeleteExpiredVerifications(now time.Time) (int64, error)
	DeleteExpiredRecoveries(now time.Time) (int64, error)
}

type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) CreateVerification(v *models.EmailVerification) error {
	if err := r.db.Create(v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPendingExists
		}
		return err
	}
	return nil
}

func (r *VerificationRepositoryImpl) FindVerificationByEmail(email string) (*models.EmailVerification, error) {
	var v models.EmailVerification
	err := r.db.First(&v, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VerificationRepositoryImpl) FindVerificationByUsername(username string) (*models.EmailVerification, error) {
	var v models.EmailVerification
	err := r.db.First(&v, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VerificationRepositoryImpl) FindVerificationByCode(code string) (*models.EmailVerification, error) {
	var v models.EmailVerification
	err := r.db.First(&v, "code = ? AND expires_at > ?", code, time.Now()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VerificationRepositoryImpl) DeleteVerification(id string) error {
	return r.db.Delete(&models.EmailVerification{}, "id = ?", id).Error
}

func (r *VerificationRepositoryImpl) CreateRecovery(rec *models.AccountRecovery) error {
	if err := r.db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPendingExists
		}
		return err
	}
	return nil
}

func (r *VerificationRepositoryImpl) FindRecoveryByCode(code string) (*models.AccountRecovery, error) {
	var rec models.AccountRecovery
	err := r.db.First(&rec, "code = ? AND expires_at > ?", code, time.Now()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecoveryNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *VerificationRepositoryImpl) DeleteRecoveryByEmail(email string) error {
	return r.db.Delete(&models.AccountRecovery{}, "email = ?", email).Error
}

func (r *VerificationRepositoryImpl) DeleteExpiredVerifications(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now).Delete(&models.EmailVerification{})
	return result.RowsAffected, result.Error
}

func (r *VerificationRepositoryImpl) DeleteExpiredRecoveries(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now).Delete(&models.AccountRecovery{})
	return result.RowsAffected, result.Error
}
