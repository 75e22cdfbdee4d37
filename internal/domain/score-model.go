package domain

import "time"

// InterviewScore holds one interviewer's rubric for one applicant. The pair
// (applicant_id, interviewer) is unique; a repeat submission overwrites.
type InterviewScore struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ApplicantID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_applicant_interviewer" json:"applicant_id"`
	Interviewer    string    `gorm:"not null;uniqueIndex:idx_applicant_interviewer" json:"interviewer"`
	Communication  int       `json:"communication"`
	TechnicalDepth int       `json:"technical_depth"`
	ProblemSolving int       `json:"problem_solving"`
	CultureFit     int       `json:"culture_fit"`
	Ownership      int       `json:"ownership"`
	Total          int       `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
}

func (InterviewScore) TableName() string {
	return "interview_scores"
}
