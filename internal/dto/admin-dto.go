package dto

import "github.com/withsocio/socio-backend/internal/domain"

type StatusUpdateRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ScoreSubmitRequest struct {
	ApplicantID string         `json:"applicantId"`
	Interviewer string         `json:"interviewer"`
	Scores      map[string]any `json:"scores"`
}

type NotifyRequest struct {
	Type         string `json:"type"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	RoleInterest string `json:"roleInterest"`
	Venue        string `json:"venue"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

type ApplicantListResponse struct {
	Data  []domain.Application `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}
