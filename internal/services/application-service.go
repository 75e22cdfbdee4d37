package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/withsocio/socio-backend/internal/domain"
	"github.com/withsocio/socio-backend/internal/dto"
	"github.com/withsocio/socio-backend/internal/interfaces"
	"github.com/withsocio/socio-backend/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrMissingRequired = errors.New("missing required fields")
var ErrInvalidStatus = errors.New("invalid status")

type ApplicationService interface {
	Submit(ctx context.Context, form dto.ApplicationForm, resumeName string, resume []byte) (*domain.Application, error)
	List(page, limit int) ([]domain.Application, int64, int, int, error)
	GetByID(id string) (*domain.Application, error)
	UpdateStatus(id, status string) error
}

type applicationService struct {
	repo         repository.ApplicationRepository
	uploader     interfaces.Uploader
	producer     interfaces.ProducerHandler
	resumeFolder string
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
	resumeFolder string,
) ApplicationService {
	return &applicationService{
		repo:         repo,
		uploader:     uploader,
		producer:     producer,
		resumeFolder: resumeFolder,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// resumeObjectName builds <campusId>_<unix ms>_<name with spaces collapsed>.<ext>.
func resumeObjectName(campusID, fullName, originalName string) string {
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	base := fmt.Sprintf("%s_%d_%s",
		campusID,
		time.Now().UnixMilli(),
		whitespaceRe.ReplaceAllString(strings.TrimSpace(fullName), "_"),
	)
	if ext == "" {
		return base
	}
	return base + "." + ext
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Submit runs the intake side effects in order: upload, insert, publish.
// Upload and insert failures abort; the confirmation event is best effort.
func (s *applicationService) Submit(ctx context.Context, form dto.ApplicationForm, resumeName string, resume []byte) (*domain.Application, error) {
	if len(resume) == 0 || form.FullName == "" || form.Email == "" {
		return nil, ErrMissingRequired
	}

	objectName := resumeObjectName(form.CampusID, form.FullName, resumeName)
	resumeURL, err := s.uploader.UploadBytes(ctx, s.resumeFolder, objectName, resume)
	if err != nil {
		return nil, fmt.Errorf("failed to upload resume: %w", err)
	}

	app := &domain.Application{
		FullName:          form.FullName,
		CourseYearDept:    form.CourseYearDept,
		PhoneNumber:       form.PhoneNumber,
		Email:             form.Email,
		PortfolioLink:     optional(form.PortfolioLink),
		RoleInterest:      form.RoleInterest,
		ExistingSkills:    optional(form.ExistingSkills),
		WhyConsider:       form.WhyConsider,
		ProjectExperience: form.ProjectExperience,
		StartupComfort:    form.StartupComfort,
		WorkSample:        optional(form.WorkSample),
		HoursPerWeek:      form.HoursPerWeek,
		InternshipGoals:   form.InternshipGoals,
		ResumeURL:         resumeURL,
		ResumeFileName:    resumeName,
		CampusID:          form.CampusID,
		Status:            domain.StatusPending,
	}

	created, err := s.repo.Create(app)
	if err != nil {
		return nil, err
	}

	event := dto.ApplicationReceivedEvent{
		ApplicationID: created.ID,
		Email:         created.Email,
		FullName:      created.FullName,
		RoleInterest:  created.RoleInterest,
	}
	payload, _ := json.Marshal(event)
	if err := s.producer.PublishMessage([]byte(created.ID), payload); err != nil {
		// the record is already durable; confirmation mail failure is logged only
		log.Printf("publish application.received failed for %s: %v", created.ID, err)
	}

	return created, nil
}

// List clamps page to >=1 and limit to (0,100], default 20, and returns the
// page plus the overall total and the effective page/limit.
func (s *applicationService) List(page, limit int) ([]domain.Application, int64, int, int, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	apps, total, err := s.repo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, 0, page, limit, err
	}
	return apps, total, page, limit, nil
}

func (s *applicationService) GetByID(id string) (*domain.Application, error) {
	return s.repo.FindByID(id)
}

func (s *applicationService) UpdateStatus(id, status string) error {
	if id == "" || status == "" {
		return ErrMissingRequired
	}
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(id, status)
}
