package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/withsocio/socio-backend/internal/domain"
	"github.com/withsocio/socio-backend/internal/repository"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	ExportCSV(preference string) (filename string, data []byte, err error)
	ExportXLSX() (filename string, data []byte, err error)
}

type exportService struct {
	repo repository.ApplicationRepository
}

func NewExportService(repo repository.ApplicationRepository) ExportService {
	return &exportService{repo: repo}
}

// csvColumns is the legacy export layout; the header row carries the raw
// column names consumers already parse.
var csvColumns = []string{
	"id", "full_name", "course_year_dept", "phone_number", "email",
	"portfolio_link", "role_interest", "existing_skills", "why_consider",
	"project_experience", "startup_comfort", "work_sample", "hours_per_week",
	"internship_goals", "resume_url", "resume_file_name", "campus_id",
	"preference1", "preference2", "status", "created_at",
}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// csvEscape quotes every value, doubles embedded quotes and collapses
// newlines to spaces. Nil renders empty (an empty quoted field).
func csvEscape(value *string) string {
	if value == nil {
		return `""`
	}
	s := newlineReplacer.Replace(*value)
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func strPtr(s string) *string { return &s }

func csvValue(app domain.Application, column string) *string {
	switch column {
	case "id":
		return strPtr(app.ID)
	case "full_name":
		return strPtr(app.FullName)
	case "course_year_dept":
		return strPtr(app.CourseYearDept)
	case "phone_number":
		return strPtr(app.PhoneNumber)
	case "email":
		return strPtr(app.Email)
	case "portfolio_link":
		return app.PortfolioLink
	case "role_interest":
		return strPtr(app.RoleInterest)
	case "existing_skills":
		return app.ExistingSkills
	case "why_consider":
		return strPtr(app.WhyConsider)
	case "project_experience":
		return strPtr(app.ProjectExperience)
	case "startup_comfort":
		return strPtr(app.StartupComfort)
	case "work_sample":
		return app.WorkSample
	case "hours_per_week":
		return strPtr(app.HoursPerWeek)
	case "internship_goals":
		return strPtr(app.InternshipGoals)
	case "resume_url":
		return strPtr(app.ResumeURL)
	case "resume_file_name":
		return strPtr(app.ResumeFileName)
	case "campus_id":
		return strPtr(app.CampusID)
	case "preference1":
		return app.Preference1
	case "preference2":
		return app.Preference2
	case "status":
		return strPtr(app.Status)
	case "created_at":
		return strPtr(app.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// ExportCSV selects rows whose preference1 or preference2 equals the given
// value and renders the legacy CSV.
func (s *exportService) ExportCSV(preference string) (string, []byte, error) {
	apps, err := s.repo.ListByPreference(preference)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvColumns, ","))
	for _, app := range apps {
		b.WriteString("\n")
		fields := make([]string, 0, len(csvColumns))
		for _, col := range csvColumns {
			fields = append(fields, csvEscape(csvValue(app, col)))
		}
		b.WriteString(strings.Join(fields, ","))
	}

	filename := fmt.Sprintf("applicants_%s.csv", strings.ToLower(preference))
	return filename, []byte(b.String()), nil
}

// ExportXLSX emits every applicant as three fixed-width columns.
func (s *exportService) ExportXLSX() (string, []byte, error) {
	apps, err := s.repo.ListAll()
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Applicants"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return "", nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", nil, err
	}

	_ = f.SetColWidth(sheet, "A", "A", 30)
	_ = f.SetColWidth(sheet, "B", "B", 25)
	_ = f.SetColWidth(sheet, "C", "C", 15)

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Name", "Applied Role", "Status"}); err != nil {
		return "", nil, err
	}
	for i, app := range apps {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{app.FullName, app.RoleInterest, app.Status}); err != nil {
			return "", nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, err
	}
	return "applicants_export.xlsx", buf.Bytes(), nil
}
