package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-gladiator-backend/config"
)

// EmailService handles sending notification emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// FeedbackEmailData holds the data for feedback notification emails
type FeedbackEmailData struct {
	Type        string
	Title       string
	Description string
	SenderEmail string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPUsername,
		toEmail:   cfg.FeedbackEmailTo,
	}
}

const feedbackEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Feedback Submission</title>
</head>
<body>
    <h2>New {{.Type}} feedback</h2>
    <p><strong>Title:</strong> {{.Title}}</p>
    <p><strong>From:</strong> {{if .SenderEmail}}{{.SenderEmail}}{{else}}anonymous{{end}}</p>
    <hr>
    <p>{{.Description}}</p>
</body>
</html>`

// IsConfigured reports whether SMTP credentials are present
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// SendFeedbackEmail notifies the team about a new feedback submission
func (s *EmailService) SendFeedbackEmail(data FeedbackEmailData) error {
	tmpl, err := template.New("feedback").Parse(feedbackEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("[Gladiator Jobs] %s: %s", data.Type, data.Title)
	msg := []byte("To: " + s.toEmail + "\r\n" +
		"From: " + s.fromEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		body.String())

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port
	return smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg)
}
