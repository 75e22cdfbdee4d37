package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

type Application struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	FullName          string    `gorm:"not null" json:"full_name"`
	CourseYearDept    string    `json:"course_year_dept"`
	PhoneNumber       string    `json:"phone_number"`
	Email             string    `gorm:"not null" json:"email"`
	PortfolioLink     *string   `json:"portfolio_link,omitempty"`
	RoleInterest      string    `json:"role_interest"`
	ExistingSkills    *string   `json:"existing_skills,omitempty"`
	WhyConsider       string    `json:"why_consider"`
	ProjectExperience string    `json:"project_experience"`
	StartupComfort    string    `gorm:"type:varchar(5)" json:"startup_comfort"`
	WorkSample        *string   `json:"work_sample,omitempty"`
	HoursPerWeek      string    `json:"hours_per_week"`
	InternshipGoals   string    `json:"internship_goals"`
	ResumeURL         string    `json:"resume_url"`
	ResumeFileName    string    `json:"resume_file_name"`
	CampusID          string    `gorm:"index" json:"campus_id"`
	Preference1       *string   `json:"preference1,omitempty"`
	Preference2       *string   `json:"preference2,omitempty"`
	Status            string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Application) TableName() string {
	return "internship_applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
