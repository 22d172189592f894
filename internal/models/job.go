package models

// Job is a posting owned by a recruiter. Deletion is hard and cascades
// to its applications inside one transaction (see JobRepository.Delete).
type Job struct {
	BaseModel
	UserID       string `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string `gorm:"not null;index" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Location     string `json:"location"`
	SalaryRange  string `json:"salary_range"`
	Schedule     string `json:"schedule"`
	Availability string `json:"availability"`

	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
