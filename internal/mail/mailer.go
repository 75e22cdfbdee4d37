package mail

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Sender delivers one rendered message.
type Sender interface {
	Send(to string, msg Message) error
}

// Mailer sends over SMTP with STARTTLS. Both the API (candidate-outcome
// mails) and the mail worker (submission confirmations) use it.
type Mailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
	fromName string
}

func NewMailer(host, port, user, password, from, fromName string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

func (m *Mailer) Send(to string, msg Message) error {
	fromHeader := fmt.Sprintf("%s <%s>", m.fromName, m.from)
	boundary := "socio-alt-boundary"

	raw := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Reply-To: %s", m.from),
		fmt.Sprintf("Subject: %s", msg.Subject),
		fmt.Sprintf("List-Unsubscribe: <mailto:%s?subject=UNSUBSCRIBE>", m.from),
		"MIME-Version: 1.0",
		fmt.Sprintf(`Content-Type: multipart/alternative; boundary="%s"`, boundary),
		"",
		"--" + boundary,
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		msg.Text,
		"",
		"--" + boundary,
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		msg.HTML,
		"",
		"--" + boundary + "--",
		"",
	}, "\r\n")

	return m.sendSMTPWithTimeout(to, []byte(raw))
}

func (m *Mailer) sendSMTPWithTimeout(to string, msg []byte) error {
	addr := net.JoinHostPort(m.host, m.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole exchange, not just the dial
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}

	if m.user != "" {
		auth := smtp.PlainAuth("", m.user, m.password, m.host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(m.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
