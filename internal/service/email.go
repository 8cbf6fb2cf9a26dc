package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

func (s *EmailService) send(emailType, to, subject, body string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", emailType, "to", to, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", emailType, "to", to)
	}
	return err
}

func (s *EmailService) SendMagicLinkEmail(email, token, name string) error {
	magicURL := fmt.Sprintf("%s/auth/magic-link/%s", s.appURL, token)
	subject, body := magicLinkEmailTemplate(magicURL, s.appName)
	return s.send("magic_link", email, subject, body)
}

func (s *EmailService) SendForgotPasswordEmail(email, token, name string) error {
	signInURL := fmt.Sprintf("%s/auth/forgot-password/%s", s.appURL, token)
	subject, body := forgotPasswordEmailTemplate(signInURL, s.appName)
	return s.send("forgot_password", email, subject, body)
}

func (s *EmailService) SendEmailChangeVerification(email, token, name string) error {
	verifyURL := fmt.Sprintf("%s/auth/verify-email-change/%s", s.appURL, token)
	subject, body := emailChangeVerificationTemplate(name, verifyURL, s.appName)
	return s.send("email_change_verification", email, subject, body)
}

func (s *EmailService) SendWelcomeEmail(email, name string) error {
	subject, body := welcomeEmailTemplate(name, s.appURL, s.appName)
	return s.send("welcome", email, subject, body)
}

// SendMilestoneEmail congratulates the user on a newly earned milestone.
func (s *EmailService) SendMilestoneEmail(email, name, title, description string) error {
	subject, body := milestoneEmailTemplate(name, title, description, s.appName)
	return s.send("milestone", email, subject, body)
}

func (s *EmailService) SendAccountDeletedEmail(email, name string) error {
	subject, body := accountDeletedEmailTemplate(name, s.appName)
	return s.send("account_deleted", email, subject, body)
}

// SendEmailChangeNotification tells the old address that a change was requested.
func (s *EmailService) SendEmailChangeNotification(oldEmail, newEmail, name string) error {
	subject, body := emailChangeNotificationTemplate(name, newEmail, s.appName)
	return s.send("email_change_notification", oldEmail, subject, body)
}
