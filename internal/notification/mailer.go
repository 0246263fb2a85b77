package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"go-attendance/internal/config"
)

// Mailer sends a single HTML email. The dispatcher treats every send as
// best-effort.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	cfg  config.SMTP
	auth smtp.Auth
}

func NewSMTPMailer(cfg config.SMTP) Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &smtpMailer{cfg: cfg, auth: auth}
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	return smtp.SendMail(addr, m.auth, m.cfg.From, []string{to}, []byte(msg.String()))
}
