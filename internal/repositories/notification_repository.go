package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists per-recipient notifications. Every
// scoped operation filters by (id, user_id) in a single predicate so an
// id belonging to another recipient behaves exactly like a missing one.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByUser(userID string) ([]models.Notification, error)
	FindScoped(id, userID string) (*models.Notification, error)
	MarkAsRead(id, userID string) error
	DeleteScoped(id, userID string) error
	UnreadCount(userID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepositoryImpl) FindScoped(id, userID string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(id, userID string) error {
	now := time.Now()
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) DeleteScoped(id, userID string) error {
	result := r.db.Delete(&models.Notification{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}
