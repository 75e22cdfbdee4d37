package dto

// ApplicationForm carries the multipart fields of a public submission.
// Resume bytes travel separately.
type ApplicationForm struct {
	FullName          string
	CourseYearDept    string
	PhoneNumber       string
	Email             string
	PortfolioLink     string
	RoleInterest      string
	ExistingSkills    string
	WhyConsider       string
	ProjectExperience string
	StartupComfort    string
	WorkSample        string
	HoursPerWeek      string
	InternshipGoals   string
	CampusID          string
}

type ApplyResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}
