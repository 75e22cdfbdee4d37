package services

import (
	"errors"

	"github.com/withsocio/socio-backend/internal/dto"
	"github.com/withsocio/socio-backend/internal/mail"
)

var ErrInvalidNotifyType = errors.New("invalid type")

type NotifyService interface {
	Notify(req dto.NotifyRequest) error
}

type notifyService struct {
	sender    mail.Sender
	templates mail.Templates
}

func NewNotifyService(sender mail.Sender, templates mail.Templates) NotifyService {
	return &notifyService{sender: sender, templates: templates}
}

// Notify sends one candidate-outcome email synchronously. This is a staff
// action, so delivery failure is surfaced to the operator, unlike the
// submission confirmation.
func (s *notifyService) Notify(req dto.NotifyRequest) error {
	if req.Type == "" || req.Email == "" || req.FullName == "" || req.RoleInterest == "" {
		return ErrMissingRequired
	}
	if req.Type == mail.TypeInterview && (req.Venue == "" || req.Date == "" || req.Time == "") {
		return ErrMissingRequired
	}
	if !mail.ValidType(req.Type) {
		return ErrInvalidNotifyType
	}

	firstName := mail.FirstName(req.FullName)

	var msg mail.Message
	var err error
	switch req.Type {
	case mail.TypeShortlisted:
		msg, err = s.templates.Shortlisted(firstName, req.RoleInterest)
	case mail.TypeSelected:
		msg, err = s.templates.Selected(firstName, req.RoleInterest)
	case mail.TypeRejected:
		msg, err = s.templates.Rejected(firstName, req.RoleInterest)
	case mail.TypeInterview:
		msg, err = s.templates.Interview(firstName, req.RoleInterest, req.Venue, req.Date, req.Time)
	}
	if err != nil {
		return err
	}

	return s.sender.Send(req.Email, msg)
}
