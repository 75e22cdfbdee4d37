package dto

// ApplicationReceivedEvent is published after a submission is durably stored
// and consumed by the mail worker to send the confirmation email.
type ApplicationReceivedEvent struct {
	ApplicationID string `json:"application_id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	RoleInterest  string `json:"role_interest"`
}
