package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Message string         `gorm:"not null" json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"job_id": "...", "application_id": "..."}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at,omitempty"`
}
