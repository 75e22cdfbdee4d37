package repository

import (
	"errors"
	"log"

	"github.com/withsocio/socio-backend/internal/domain"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(app *domain.Application) (*domain.Application, error)
	FindByID(id string) (*domain.Application, error)
	List(limit, offset int) ([]domain.Application, int64, error)
	ListAll() ([]domain.Application, error)
	ListByPreference(preference string) ([]domain.Application, error)
	UpdateStatus(id, status string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *domain.Application) (*domain.Application, error) {
	if app == nil {
		return nil, errors.New("nil application")
	}

	if err := r.db.Create(app).Error; err != nil {
		log.Printf("create application error: %v", err)
		return nil, errors.New("failed to save application")
	}

	return app, nil
}

func (r *applicationRepository) FindByID(id string) (*domain.Application, error) {
	app := &domain.Application{}

	if err := r.db.First(app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		log.Printf("find application error: %v", err)
		return nil, errors.New("failed to find application")
	}

	return app, nil
}

// List returns one page ordered newest first plus the unpaged total, so the
// dashboard can render page controls.
func (r *applicationRepository) List(limit, offset int) ([]domain.Application, int64, error) {
	var apps []domain.Application
	var total int64

	if err := r.db.Model(&domain.Application{}).Count(&total).Error; err != nil {
		log.Printf("count applications error: %v", err)
		return nil, 0, errors.New("failed to count applications")
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&apps).Error
	if err != nil {
		log.Printf("list applications error: %v", err)
		return nil, 0, errors.New("failed to list applications")
	}

	return apps, total, nil
}

func (r *applicationRepository) ListAll() ([]domain.Application, error) {
	var apps []domain.Application

	if err := r.db.Order("created_at DESC").Find(&apps).Error; err != nil {
		log.Printf("list applications error: %v", err)
		return nil, errors.New("failed to list applications")
	}

	return apps, nil
}

func (r *applicationRepository) ListByPreference(preference string) ([]domain.Application, error) {
	var apps []domain.Application

	err := r.db.
		Where("preference1 = ? OR preference2 = ?", preference, preference).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		log.Printf("list applications by preference error: %v", err)
		return nil, errors.New("failed to list applications")
	}

	return apps, nil
}

func (r *applicationRepository) UpdateStatus(id, status string) error {
	res := r.db.Model(&domain.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status})

	if res.Error != nil {
		log.Printf("update status error: %v", res.Error)
		return errors.New("failed to update status")
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
