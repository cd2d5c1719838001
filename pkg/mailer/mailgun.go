package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Rendered is a ready-to-send email body as produced by the template
// renderer. Text is the plain fallback; HTML is optional.
type Rendered struct {
	Subject string
	Text    string
	HTML    string
}

// Mailgun sends transactional email (welcome, password reset, password
// changed) for the worker.
type Mailgun struct {
	client *mg.MailgunImpl
	sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{client: mg.NewMailgun(domain, apiKey), sender: sender}
}

// Send delivers a rendered email to a single recipient.
func (m *Mailgun) Send(ctx context.Context, to string, r Rendered) error {
	msg := m.client.NewMessage(m.sender, r.Subject, r.Text, to)
	if r.HTML != "" {
		msg.SetHtml(r.HTML)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := m.client.Send(c, msg)
	return err
}
