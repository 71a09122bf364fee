// Package mailer delivers contact-form submissions over SMTP.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// ErrDisabled is returned when no SMTP relay is configured.
var ErrDisabled = errors.New("mailer: smtp relay not configured")

// Message is one contact-form submission.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers contact messages. Handlers depend on this interface so
// tests can swap in a capture.
type Sender interface {
	Send(msg Message) error
}

// Config holds the SMTP relay settings.
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Recipient string
}

// sendMailFunc matches net/smtp.SendMail; injectable for tests.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender relays messages through a single SMTP host.
type SMTPSender struct {
	cfg      Config
	sendMail sendMailFunc
}

// New returns a sender for cfg. Delivery fails with ErrDisabled when the
// host or recipient is missing.
func New(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

// Send formats and relays msg to the configured recipient.
func (s *SMTPSender) Send(msg Message) error {
	if s.cfg.Host == "" || s.cfg.Recipient == "" {
		return ErrDisabled
	}

	from := s.cfg.User
	if from == "" {
		from = "no-reply@" + s.cfg.Host
	}

	var auth smtp.Auth
	if s.cfg.User != "" && s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := s.sendMail(addr, auth, from, []string{s.cfg.Recipient}, buildBody(from, s.cfg.Recipient, msg)); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

func buildBody(from, to string, msg Message) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: GamerStore <%s>\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", to)
	fmt.Fprintf(&sb, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&sb, "Subject: Nuevo mensaje de contacto de %s\r\n", msg.Name)
	sb.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&sb, "Nombre: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message)
	return []byte(sb.String())
}
