package mailer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// EmailSender delivers a single email and returns the provider message id.
// Implementations can be swapped (SendGrid, SES, SMTP) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// NewSendGridSender creates a SendGrid email sender. Returns nil when no API
// key is configured so callers can fall back to the stub.
func NewSendGridSender(apiKey, fromEmail, fromName string, logger *zap.Logger) *SendGridSender {
	if apiKey == "" {
		return nil
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// Send sends an email via SendGrid and returns the provider message id.
func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("mailer: sendgrid client not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.HTML, msg.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("sendgrid send failed", zap.Error(err), zap.String("to", msg.To))
		return "", fmt.Errorf("mailer: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status",
			zap.Int("status", response.StatusCode), zap.String("to", msg.To))
		return "", fmt.Errorf("mailer: sendgrid returned status %d", response.StatusCode)
	}

	messageID := ""
	if ids, ok := response.Headers["X-Message-Id"]; ok && len(ids) > 0 {
		messageID = ids[0]
	}
	if messageID == "" {
		messageID = uuid.New().String()
	}

	s.logger.Info("email sent via sendgrid",
		zap.String("to", msg.To), zap.String("subject", msg.Subject), zap.String("messageID", messageID))
	return messageID, nil
}

// StubEmailSender logs instead of sending, for development and tests.
type StubEmailSender struct {
	logger *zap.Logger
}

// NewStubEmailSender creates a stub email sender.
func NewStubEmailSender(logger *zap.Logger) *StubEmailSender {
	return &StubEmailSender{logger: logger}
}

// Send logs the email and fabricates a message id.
func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) (string, error) {
	id := uuid.New().String()
	s.logger.Info("stub email sender: would send email",
		zap.String("to", msg.To), zap.String("subject", msg.Subject), zap.String("messageID", id))
	return id, nil
}
