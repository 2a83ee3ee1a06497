package wizard

import (
	"context"
	"time"

	bookingRepo "neatspin/database/repository/booking"
	"neatspin/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PaymentGateway creates payment intents for the step-4 prefetch.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, service, email string) (*models.PaymentIntent, error)
}

// EmailGateway sends and manages booking confirmation emails.
type EmailGateway interface {
	SendConfirmation(ctx context.Context, req models.ConfirmationEmailRequest) (*models.ConfirmationEmailResult, error)
	Reschedule(ctx context.Context, emailID string, at time.Time) (*models.EmailUpdateResult, error)
	Cancel(ctx context.Context, emailID string) (*models.EmailUpdateResult, error)
}

// WizardService manages the stateful multi-step booking wizard session.
type WizardService interface {
	Start(userEmail string) (*models.WizardSession, error)
	Get(sessionID string) (*models.WizardSession, error)
	UpdateDraft(sessionID string, draft models.DraftBooking) (*models.WizardSession, error)
	Advance(sessionID string) (*models.WizardSession, error)
	Back(sessionID string) (*models.WizardSession, error)
	Submit(sessionID string) (*models.SubmitResult, error)
	RescheduleEmail(sessionID, scheduleTime string) (*models.EmailUpdateResult, error)
	CancelEmail(sessionID string) (*models.EmailUpdateResult, error)
}

// DefaultWizardService implements WizardService on top of a Redis session
// store, the booking repository and the payment/email gateways.
type DefaultWizardService struct {
	Repo     bookingRepo.BookingRepository
	Payments PaymentGateway
	Mailer   EmailGateway
	Cache    *redis.Client
	Logger   *zap.Logger

	// UseTestEmailDefault seeds the draft's test-routing toggle for new
	// sessions. Explicit configuration, not a baked-in default.
	UseTestEmailDefault bool
}
