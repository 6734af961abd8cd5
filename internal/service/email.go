package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"scef-chapters-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendChapterDecisionNotification(ctx context.Context, email, name, chapterName string, decision Decision) error {
	subject := fmt.Sprintf("Your chapter application: %s", chapterName)
	var body string
	if decision == DecisionApprove {
		body = fmt.Sprintf("Hello %s,\n\nGood news: your chapter \"%s\" has been approved and is now active.\n\nThe SCEF Team", name, chapterName)
	} else {
		body = fmt.Sprintf("Hello %s,\n\nYour chapter application \"%s\" was not approved this time. You may submit a new application at any point.\n\nThe SCEF Team", name, chapterName)
	}
	return s.send(email, name, subject, body)
}

func (s *emailService) SendUpgradeDecisionNotification(ctx context.Context, email, name, chapterName string, target domain.ChapterTier, decision Decision) error {
	subject := fmt.Sprintf("Upgrade review for %s", chapterName)
	var body string
	if decision == DecisionApprove {
		body = fmt.Sprintf("Hello %s,\n\nYour chapter \"%s\" has been promoted to the %s tier and is now verified.\n\nThe SCEF Team", name, chapterName, target)
	} else {
		body = fmt.Sprintf("Hello %s,\n\nThe %s upgrade request for \"%s\" was rejected. You can reapply with fresh evidence.\n\nThe SCEF Team", name, target, chapterName)
	}
	return s.send(email, name, subject, body)
}

func (s *emailService) SendAdminDigest(ctx context.Context, email, subject, body string) error {
	return s.send(email, "", subject, body)
}
