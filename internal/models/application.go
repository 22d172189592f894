package models

// Application links an applicant to a job. The composite unique index on
// (user_id, job_id) is the race-closing mechanism behind the duplicate
// pre-check: a cancelled application keeps the slot until it is deleted.
type Application struct {
	BaseModel
	UserID     string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	JobID      string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"job_id"`
	Status     ApplicationStatus `gorm:"type:varchar(20);not null;default:'Applied'" json:"status"`
	ResumePath string            `json:"resume_path,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
