package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/pagination"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateCompanyName(userID, companyName string) error
	SetActive(userID string, active bool) error
	SoftDelete(userID string) error
	RecoverByEmail(email string) error
	HardDelete(userID string) error
	// PurgeDeletedBefore hard-deletes accounts soft-deleted at or before
	// cutoff (and still inactive), dependents included; reports accounts
	// removed.
	PurgeDeletedBefore(cutoff time.Time) (int64, error)

	// Admin listings; count and slice run in one transaction.
	FindByRole(role models.UserRole, p pagination.Params) ([]models.User, int64, error)
	FindDeleted(p pagination.Params) ([]models.User, int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateCompanyName(userID, companyName string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("company_name", companyName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetActive(userID string, active bool) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SoftDelete marks the account deleted and drops its session-liveness
// flag in one statement, so the purge sweep's compound predicate
// (deleted_at age AND is_active = false) holds from the moment of deletion.
func (r *UserRepositoryImpl) SoftDelete(userID string) error {
	now := time.Now()
	result := r.db.Model(&models.User{}).
		Where("id = ? AND deleted_at IS NULL", userID).
		Updates(map[string]interface{}{"deleted_at": now, "is_active": false})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RecoverByEmail clears the soft-delete marker, resetting the purge clock.
func (r *UserRepositoryImpl) RecoverByEmail(email string) error {
	result := r.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) HardDelete(userID string) error {
	result := r.db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PurgeDeletedBefore runs in one transaction: dependents first, the
// user rows last, so a failure leaves the accounts purgeable on the
// next sweep.
func (r *UserRepositoryImpl) PurgeDeletedBefore(cutoff time.Time) (int64, error) {
	const purgeable = `SELECT id FROM users WHERE deleted_at <= ? AND is_active = false`

	var purged int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			`DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE user_id IN (` + purgeable + `))`,
			`DELETE FROM applications WHERE user_id IN (` + purgeable + `)`,
			`DELETE FROM jobs WHERE user_id IN (` + purgeable + `)`,
			`DELETE FROM skills WHERE user_id IN (` + purgeable + `)`,
			`DELETE FROM notifications WHERE user_id IN (` + purgeable + `)`,
		} {
			if err := tx.Exec(stmt, cutoff).Error; err != nil {
				return err
			}
		}
		result := tx.Exec(`DELETE FROM users WHERE deleted_at <= ? AND is_active = false`, cutoff)
		purged = result.RowsAffected
		return result.Error
	})
	return purged, err
}

func (r *UserRepositoryImpl) FindByRole(role models.UserRole, p pagination.Params) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.User{}).Where("role = ? AND deleted_at IS NULL", role)
		if err := query.Count(&total).Error; err != nil {
			return err
		}
		return query.
			Order("created_at DESC").
			Limit(p.Limit).
			Offset(p.Offset()).
			Find(&users).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) FindDeleted(p pagination.Params) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.User{}).Where("deleted_at IS NOT NULL")
		if err := query.Count(&total).Error; err != nil {
			return err
		}
		return query.
			Order("deleted_at DESC").
			Limit(p.Limit).
			Offset(p.Offset()).
			Find(&users).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
