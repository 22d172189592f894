package models

import "time"

// User is the single account type; Role separates jobseekers,
// recruiters and admins. DeletedAt is a distinct lifecycle stage, not a
// boolean: a soft-deleted account cannot authenticate until recovered,
// and the purge sweep keys on its age. It is deliberately not
// gorm.DeletedAt — recovery must be able to clear it explicitly.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Fullname     string     `gorm:"not null" json:"fullname"`
	Age          int        `json:"age"`
	CompanyName  string     `json:"company_name,omitempty"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool       `gorm:"default:false" json:"is_active"`
	DeletedAt    *time.Time `gorm:"index" json:"deleted_at,omitempty"`

	// Relations
	Jobs          []Job          `gorm:"foreignKey:UserID" json:"-"`
	Applications  []Application  `gorm:"foreignKey:UserID" json:"-"`
	Skills        []Skill        `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}
