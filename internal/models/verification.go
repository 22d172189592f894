package models

import "time"

// EmailVerification is the pending-registration record: the account
// exists here, and only here, between "code sent" and "code confirmed".
// Deleted on success or by the daily sweep once expired.
type EmailVerification struct {
	BaseModel
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Fullname     string    `json:"fullname"`
	Age          int       `json:"age"`
	CompanyName  string    `json:"company_name,omitempty"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	Code         string    `gorm:"not null;index" json:"-"`
	ExpiresAt    time.Time `gorm:"not null;index" json:"expires_at"`
}

// AccountRecovery holds a pending soft-delete recovery code.
type AccountRecovery struct {
	BaseModel
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Code      string    `gorm:"not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}
