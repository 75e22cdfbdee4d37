package mail

import (
	"encoding/json"
	"log"

	"github.com/withsocio/socio-backend/internal/dto"
)

// EventHandler consumes application.received events and sends the
// confirmation email. Errors are logged by the consumer loop; nothing is
// retried, the applicant record is already durable.
type EventHandler struct {
	sender    Sender
	templates Templates
}

func NewEventHandler(sender Sender, templates Templates) *EventHandler {
	return &EventHandler{sender: sender, templates: templates}
}

func (h *EventHandler) HandleMessage(message string) error {
	var event dto.ApplicationReceivedEvent

	if err := json.Unmarshal([]byte(message), &event); err != nil {
		log.Printf("invalid event payload: %s", message)
		return err
	}

	log.Printf("application received event: id=%s email=%s",
		event.ApplicationID, event.Email)

	msg, err := h.templates.Confirmation(FirstName(event.FullName), event.RoleInterest, event.Email)
	if err != nil {
		return err
	}

	err = h.sender.Send(event.Email, msg)
	log.Println("[MAIL] send finished, err =", err)
	return err
}
