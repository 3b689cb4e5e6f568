package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"enertek-backend-go/internal/config"
	"enertek-backend-go/internal/models"
)

// Mailer sends contact-form notifications over plain SMTP. A mailer built
// from an empty SMTP host is a no-op.
type Mailer struct {
	cfg config.Config
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) enabled() bool {
	return m.cfg.SMTPHost != "" && m.cfg.ContactRecipient != ""
}

func (m *Mailer) NotifyContact(msg *models.ContactMessage) error {
	if !m.enabled() {
		return nil
	}
	from := m.cfg.SMTPFrom
	if from == "" {
		from = m.cfg.SMTPUser
	}
	name := msg.FirstName
	if msg.LastName != nil {
		name = strings.TrimSpace(name + " " + *msg.LastName)
	}
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: New contact message from %s\r\n\r\nName: %s\r\nEmail: %s\r\nPhone: %s\r\n\r\n%s\r\n",
		from, m.cfg.ContactRecipient, name, name, msg.Email, msg.Phone, msg.Message)
	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	var auth smtp.Auth
	if m.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	}
	return smtp.SendMail(addr, auth, from, []string{m.cfg.ContactRecipient}, []byte(body))
}
