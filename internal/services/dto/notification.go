package dto

import (
	"encoding/json"
	"time"

	"jobboard_backend/internal/models"
)

// CreateNotificationRequest carries no recipient field: the recipient
// is always the authenticated caller. Cross-user notifications are
// created internally by the services, never over HTTP.
type CreateNotificationRequest struct {
	Message string                 `json:"message" validate:"required,max=500"`
	Data    map[string]interface{} `json:"data"`
}

type NotificationResponse struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	ReadAt    *time.Time             `json:"read_at,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func NewNotificationResponse(n *models.Notification) *NotificationResponse {
	resp := &NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(n.Data, &data); err == nil {
			resp.Data = data
		}
	}
	return resp
}

func NewNotificationResponseList(notifications []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, *NewNotificationResponse(&notifications[i]))
	}
	return out
}
