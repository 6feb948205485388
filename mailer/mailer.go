// mailer.go - Sends review-request emails through the configured SMTP relay

package mailer

import (
	"gopkg.in/gomail.v2"
)

const senderName = "Feedback App"

// Sender dispatches a plain-text email to a single recipient. Sending is
// synchronous; a transport failure is reported to the caller immediately.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through an SMTP relay using gomail. Port 465 uses
// implicit TLS, other ports negotiate STARTTLS when the server offers it.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
