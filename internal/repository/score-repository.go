package repository

import (
	"errors"
	"log"

	"github.com/withsocio/socio-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository interface {
	Upsert(score *domain.InterviewScore) error
	ListByApplicant(applicantID string) ([]domain.InterviewScore, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

// Upsert relies on the unique (applicant_id, interviewer) index: a repeat
// submission by the same interviewer overwrites their previous rubric.
func (r *scoreRepository) Upsert(score *domain.InterviewScore) error {
	if score == nil {
		return errors.New("nil score")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "applicant_id"}, {Name: "interviewer"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"communication", "technical_depth", "problem_solving",
			"culture_fit", "ownership", "total",
		}),
	}).Create(score).Error
	if err != nil {
		log.Printf("upsert score error: %v", err)
		return errors.New("failed to save score")
	}

	return nil
}

func (r *scoreRepository) ListByApplicant(applicantID string) ([]domain.InterviewScore, error) {
	var scores []domain.InterviewScore

	err := r.db.
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&scores).Error
	if err != nil {
		log.Printf("list scores error: %v", err)
		return nil, errors.New("failed to list scores")
	}

	return scores, nil
}
