package utils

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/Kariqs/storefront/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var mailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type EmailData struct {
	Name     string
	Message  string
	StoreURL string
}

// SMTPConfig holds the outgoing mail settings.
type SMTPConfig struct {
	From     string
	Password string
	Host     string
	Address  string
	StoreURL string
}

type Mailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

func (m *Mailer) SendWelcomeEmail(user models.User) error {
	data := EmailData{
		Name:     user.Name,
		Message:  "Your account is ready. Sign in to keep your cart with you.",
		StoreURL: m.cfg.StoreURL,
	}
	return m.SendEmail(user.Email, "Welcome to the store", data, "welcome.html")
}

func (m *Mailer) SendEmail(emailTo string, emailSubject string, data EmailData, templateName string) error {
	var body bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.cfg.From,
		emailTo,
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)

	if err := m.send(m.cfg.Address, auth, m.cfg.From, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
