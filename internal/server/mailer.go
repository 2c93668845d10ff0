package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/mail.v2"

	"termfolio/internal/config"
	"termfolio/internal/content"
)

// Mailer delivers contact notifications.
type Mailer interface {
	Send(ctx context.Context, msg content.ContactMessage) error
}

// SMTPMailer sends notifications through an SMTP relay.
type SMTPMailer struct {
	dialer *mail.Dialer
	from   string
	to     string
}

// NewSMTPMailer returns a mailer for cfg, or nil when no host is configured.
func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	if cfg.Host == "" {
		return nil
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &SMTPMailer{
		dialer: mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
		to:     cfg.To,
	}
}

// Send delivers msg. The dialer does not take a context, so cancellation is
// only checked before connecting.
func (m *SMTPMailer) Send(ctx context.Context, msg content.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := renderNotification(msg)
	if err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(buildMessage(m.from, m.to, msg, body)); err != nil {
		return fmt.Errorf("failed to send email notification: %w", err)
	}
	return nil
}

func buildMessage(from, to string, msg content.ContactMessage, body string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", "New Contact Form Submission - "+msg.Name)
	m.SetBody("text/html", body)
	return m
}

var notificationTemplate = template.Must(template.New("notification").Funcs(template.FuncMap{
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h1>New Contact Form Submission</h1>
  <p><strong>From:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  <p><strong>Submitted:</strong> {{.SubmittedAt.Format "2006-01-02 15:04:05"}}</p>
  <p><strong>Message:</strong></p>
  <div style="border-left: 4px solid #00ff00; padding: 15px;">{{range $i, $line := lines .Message}}{{if $i}}<br>{{end}}{{$line}}{{end}}</div>
  <p style="color: #777; font-size: 12px;">Sent from the portfolio contact form. Reply to this message to answer.</p>
</body>
</html>
`))

func renderNotification(msg content.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := notificationTemplate.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("failed to render email notification: %w", err)
	}
	return buf.String(), nil
}
