package services

import (
	"encoding/json"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// Pusher is the live delivery channel. Satisfied by the ws manager;
// delivery is best-effort and never fails the caller.
type Pusher interface {
	NotifyUser(userID, message string)
}

type NotificationService interface {
	Create(recipientID, message string, data map[string]interface{}) (*dto.NotificationResponse, error)
	GetAll(userID string) ([]dto.NotificationResponse, error)
	GetOne(userID, id string) (*dto.NotificationResponse, error)
	MarkAsRead(userID, id string) (*dto.NotificationResponse, error)
	Delete(userID, id string) error
	UnreadCount(userID string) (int64, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	pusher           Pusher
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, pusher Pusher) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

// Create persists the notification first; the live push is best-effort
// and rides on the stored row.
func (s *NotificationServiceImpl) Create(recipientID, message string, data map[string]interface{}) (*dto.NotificationResponse, error) {
	notification := &models.Notification{
		UserID:  recipientID,
		Message: message,
	}
	if len(data) > 0 {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		notification.Data = raw
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if s.pusher != nil {
		s.pusher.NotifyUser(recipientID, message)
	} else {
		logger.Debug("no pusher configured, notification stored only", "user_id", recipientID)
	}

	return dto.NewNotificationResponse(notification), nil
}

func (s *NotificationServiceImpl) GetAll(userID string) ([]dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewNotificationResponseList(notifications), nil
}

func (s *NotificationServiceImpl) GetOne(userID, id string) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.FindScoped(id, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewNotificationResponse(notification), nil
}

func (s *NotificationServiceImpl) MarkAsRead(userID, id string) (*dto.NotificationResponse, error) {
	if err := s.notificationRepo.MarkAsRead(id, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetOne(userID, id)
}

func (s *NotificationServiceImpl) Delete(userID, id string) error {
	if err := s.notificationRepo.DeleteScoped(id, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) UnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
