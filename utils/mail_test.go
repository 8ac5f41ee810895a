package utils

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/Kariqs/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestMailer(sent *[]sentMail, err error) *Mailer {
	m := NewMailer(SMTPConfig{
		From:     "shop@example.com",
		Password: "pw",
		Host:     "smtp.example.com",
		Address:  "smtp.example.com:587",
		StoreURL: "https://shop.example.com",
	})
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return err
	}
	return m
}

func TestSendWelcomeEmail(t *testing.T) {
	var sent []sentMail
	m := newTestMailer(&sent, nil)

	err := m.SendWelcomeEmail(models.User{Name: "Ana", Email: "ana@example.com"})

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "smtp.example.com:587", sent[0].addr)
	assert.Equal(t, "shop@example.com", sent[0].from)
	assert.Equal(t, []string{"ana@example.com"}, sent[0].to)
	assert.Contains(t, sent[0].msg, "Subject: Welcome to the store\r\n")
	assert.Contains(t, sent[0].msg, "Hello Ana,")
	assert.Contains(t, sent[0].msg, `href="https://shop.example.com"`)
}

func TestSendEmail_EscapesName(t *testing.T) {
	var sent []sentMail
	m := newTestMailer(&sent, nil)

	err := m.SendEmail("x@example.com", "Hi", EmailData{Name: "<b>Bo</b>"}, "welcome.html")

	require.NoError(t, err)
	assert.Contains(t, sent[0].msg, "&lt;b&gt;Bo&lt;/b&gt;")
}

func TestSendEmail_UnknownTemplate(t *testing.T) {
	var sent []sentMail
	m := newTestMailer(&sent, nil)

	err := m.SendEmail("x@example.com", "Hi", EmailData{}, "missing.html")

	assert.Error(t, err)
	assert.Empty(t, sent)
}

func TestSendEmail_TransportFailure(t *testing.T) {
	var sent []sentMail
	m := newTestMailer(&sent, errors.New("connection reset"))

	err := m.SendWelcomeEmail(models.User{Name: "Ana", Email: "ana@example.com"})

	assert.ErrorContains(t, err, "failed to send email")
}
