package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var htmlTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	TypeShortlisted = "shortlisted"
	TypeSelected    = "selected"
	TypeRejected    = "rejected"
	TypeInterview   = "interview"
)

func ValidType(t string) bool {
	switch t {
	case TypeShortlisted, TypeSelected, TypeRejected, TypeInterview:
		return true
	}
	return false
}

// Message is one rendered email, ready to hand to a Sender.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

type TemplateData struct {
	FirstName    string
	Role         string
	Email        string
	Venue        string
	Date         string
	Time         string
	BaseURL      string
	CareersEmail string
	Year         int
}

// Templates renders the fixed candidate-facing emails. BaseURL and
// CareersEmail come from config so staging sends don't point at production.
type Templates struct {
	BaseURL      string
	CareersEmail string
}

// FirstName is the text before the first space of the full name.
func FirstName(fullName string) string {
	return strings.SplitN(strings.TrimSpace(fullName), " ", 2)[0]
}

func (t Templates) data(firstName, role, email string) TemplateData {
	return TemplateData{
		FirstName:    firstName,
		Role:         role,
		Email:        email,
		BaseURL:      t.BaseURL,
		CareersEmail: t.CareersEmail,
		Year:         time.Now().Year(),
	}
}

func (t Templates) render(name string, data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (t Templates) footerText() string {
	return fmt.Sprintf(`---
© %d SOCIO. All rights reserved.
To unsubscribe from career emails, reply to %s with subject "UNSUBSCRIBE".`, time.Now().Year(), t.CareersEmail)
}

func (t Templates) Shortlisted(firstName, role string) (Message, error) {
	html, err := t.render("shortlisted.html", t.data(firstName, role, ""))
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("Shortlisted - %s Internship at SOCIO", role),
		Text: fmt.Sprintf(`Hello %s,

Great news! You've been shortlisted for the %s internship at SOCIO.

** YOUR INTERVIEWS WILL BE SCHEDULED IN THE UPCOMING WEEK **
Please stay active - the schedule and venue will be sent via email.

Please keep an eye on your email and phone for updates.

Visit: %s

Best regards,
Team SOCIO

%s`, firstName, role, t.BaseURL, t.footerText()),
		HTML: html,
	}, nil
}

func (t Templates) Selected(firstName, role string) (Message, error) {
	html, err := t.render("selected.html", t.data(firstName, role, ""))
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("Selected - %s Internship at SOCIO", role),
		Text: fmt.Sprintf(`Hello %s,

Congratulations! You've been selected for the %s internship at SOCIO.
We'll share onboarding details shortly.

Please keep an eye on your email and phone for the onboarding schedule.

Visit: %s

Best regards,
Team SOCIO

%s`, firstName, role, t.BaseURL, t.footerText()),
		HTML: html,
	}, nil
}

func (t Templates) Rejected(firstName, role string) (Message, error) {
	html, err := t.render("rejected.html", t.data(firstName, role, ""))
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("Application Status - %s Internship at SOCIO", role),
		Text: fmt.Sprintf(`Hello %s,

Thank you for your interest in the %s internship position at SOCIO.

NOT SHORTLISTED

We are sorry that we will not be going ahead with your application at this time. We truly appreciate the time and effort you took to apply.

We encourage you to remain connected with us. We will retain your profile and consider you for future opportunities at SOCIO that align with your skills and experience. Should a suitable position become available, we will reach out to you directly.

Thank you once again for considering SOCIO!

Best regards,
Team SOCIO
%s

%s`, firstName, role, t.CareersEmail, t.footerText()),
		HTML: html,
	}, nil
}

func (t Templates) Interview(firstName, role, venue, date, timeOfDay string) (Message, error) {
	data := t.data(firstName, role, "")
	data.Venue = venue
	data.Date = date
	data.Time = timeOfDay
	html, err := t.render("interview.html", data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("Interview Invitation - %s Internship at SOCIO", role),
		Text: fmt.Sprintf(`Hello %s,

Congratulations! You have been shortlisted for the %s internship at SOCIO.

You are invited to attend an interview as per the following details:

Date: %s
Time: %s
Venue: %s

Please be present at the venue on time. If you have any questions or are unable to attend, reply to this email as soon as possible.

Best regards,
Team SOCIO
%s

%s`, firstName, role, date, timeOfDay, venue, t.CareersEmail, t.footerText()),
		HTML: html,
	}, nil
}

func (t Templates) Confirmation(firstName, role, email string) (Message, error) {
	html, err := t.render("confirmation.html", t.data(firstName, role, email))
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: "Thank You for Applying at SOCIO! 🎉",
		Text: fmt.Sprintf(`Hi %s,

Thank you for applying at SOCIO! We're excited to have received your application for the %s internship position.

Our team will carefully review your application, and if shortlisted, we will be contacting you within this week.

Thank you for your interest in joining our team!

With love,
Team SOCIO`, firstName, role),
		HTML: html,
	}, nil
}
