package models

// Skill is a named skill attached to a user's profile. Uniqueness is
// per user, not global: two users may both list "Go".
type Skill struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_skills_user_name" json:"user_id"`
	SkillName string `gorm:"not null;uniqueIndex:idx_skills_user_name" json:"skill_name"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
