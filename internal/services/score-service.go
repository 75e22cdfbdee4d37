package services

import (
	"strconv"

	"github.com/withsocio/socio-backend/internal/domain"
	"github.com/withsocio/socio-backend/internal/repository"
)

type ScoreService interface {
	RecordScore(applicantID, interviewer string, dims map[string]any) (*domain.InterviewScore, error)
	ListScores(applicantID string) ([]domain.InterviewScore, error)
}

type scoreService struct {
	repo repository.ScoreRepository
}

func NewScoreService(repo repository.ScoreRepository) ScoreService {
	return &scoreService{repo: repo}
}

// coerceScore mirrors the dashboard's Number(x || 0): absent or non-numeric
// dimensions become 0 instead of rejecting the submission.
func coerceScore(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(f)
		}
	}
	return 0
}

// RecordScore persists the total exactly as the sum of the submitted
// dimensions; there is no server-side clamping or recomputation.
func (s *scoreService) RecordScore(applicantID, interviewer string, dims map[string]any) (*domain.InterviewScore, error) {
	if applicantID == "" || interviewer == "" || dims == nil {
		return nil, ErrMissingRequired
	}

	score := &domain.InterviewScore{
		ApplicantID:    applicantID,
		Interviewer:    interviewer,
		Communication:  coerceScore(dims["communication"]),
		TechnicalDepth: coerceScore(dims["technicalDepth"]),
		ProblemSolving: coerceScore(dims["problemSolving"]),
		CultureFit:     coerceScore(dims["cultureFit"]),
		Ownership:      coerceScore(dims["ownership"]),
	}
	score.Total = score.Communication + score.TechnicalDepth +
		score.ProblemSolving + score.CultureFit + score.Ownership

	if err := s.repo.Upsert(score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *scoreService) ListScores(applicantID string) ([]domain.InterviewScore, error) {
	if applicantID == "" {
		return nil, ErrMissingRequired
	}
	return s.repo.ListByApplicant(applicantID)
}
