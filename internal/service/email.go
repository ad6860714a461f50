package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendgridEmailService) SendJoinRequestDecision(ctx context.Context, email, name, clubName string, status domain.JoinRequestStatus, message string) error {
	subject := fmt.Sprintf("Your request to join %s", clubName)
	plainText := fmt.Sprintf("Hello %s,\n\nYour request to join %s has been %s.", name, clubName, status)
	if message != "" {
		plainText += fmt.Sprintf("\n\nMessage from the coordinator: %s", message)
	}
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Join Request Update</h2>
				<p>Hello %s,</p>
				<p>Your request to join <strong>%s</strong> has been <strong>%s</strong>.</p>
			</body>
		</html>
	`, name, clubName, status)

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *sendgridEmailService) SendAccountCreated(ctx context.Context, email, name string, role domain.UserRole) error {
	subject := "Your campus clubs account"
	plainText := fmt.Sprintf("Hello %s,\n\nA %s account has been created for you. Log in with this email address.", name, role)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Welcome</h2>
				<p>Hello %s,</p>
				<p>A <strong>%s</strong> account has been created for you. Log in with this email address.</p>
			</body>
		</html>
	`, name, role)

	return s.send(email, name, subject, plainText, htmlContent)
}

// disabledEmailService drops every message; used when email is not configured.
type disabledEmailService struct{}

func NewDisabledEmailService() EmailService {
	return disabledEmailService{}
}

func (disabledEmailService) SendJoinRequestDecision(ctx context.Context, email, name, clubName string, status domain.JoinRequestStatus, message string) error {
	logger.Debug("Email disabled, dropping join request decision notification", "to", email, "club", clubName, "status", status)
	return nil
}

func (disabledEmailService) SendAccountCreated(ctx context.Context, email, name string, role domain.UserRole) error {
	logger.Debug("Email disabled, dropping account created notification", "to", email, "role", role)
	return nil
}
