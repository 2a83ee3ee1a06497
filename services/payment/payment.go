package payment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"neatspin/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates payment intents and checks their status.
type PaymentService interface {
	CreateIntent(ctx context.Context, service, email string) (*models.PaymentIntent, error)
	CheckStatus(ctx context.Context, intentID string) (string, error)
}

// StripePaymentService talks to Stripe when a real secret key is configured
// and falls back to a simulated flow otherwise. The simulated flow fabricates
// intent ids and derives status from the id string; it is a placeholder, not
// real payment verification.
type StripePaymentService struct {
	APIKey string
	Logger *zap.Logger
}

// NewStripePaymentService creates a payment service.
func NewStripePaymentService(apiKey string, logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{APIKey: apiKey, Logger: logger}
}

func (p *StripePaymentService) testMode() bool {
	return p.APIKey == "" || p.APIKey == "test_key"
}

// CreateIntent creates a payment intent for the given service. The amount
// comes from the fixed service price table.
func (p *StripePaymentService) CreateIntent(ctx context.Context, service, email string) (*models.PaymentIntent, error) {
	amount := models.ServiceAmount(service)

	if p.testMode() {
		intent := &models.PaymentIntent{
			ID:           "pi_test_" + randomToken(),
			ClientSecret: "test_secret_" + randomToken(),
			Amount:       amount,
		}
		p.Logger.Info("created simulated payment intent",
			zap.String("intentID", intent.ID), zap.String("service", service), zap.Int64("amount", amount))
		return intent, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(amount),
		Currency:     stripe.String(string(stripe.CurrencyUSD)),
		ReceiptEmail: stripe.String(email),
	}
	params.AddMetadata("service", service)

	pi, err := paymentintent.New(params)
	if err != nil {
		p.Logger.Error("stripe payment intent creation failed",
			zap.String("service", service), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
	}, nil
}

// CheckStatus reports the payment intent status. In simulation mode the
// status is a heuristic on the id string.
func (p *StripePaymentService) CheckStatus(ctx context.Context, intentID string) (string, error) {
	if intentID == "" {
		return "", fmt.Errorf("missing payment intent id")
	}

	if p.testMode() {
		if strings.Contains(intentID, "test") {
			statuses := []string{models.PaymentSucceeded, models.PaymentProcessing, models.PaymentFailed}
			return statuses[rand.Intn(len(statuses))], nil
		}
		if strings.Contains(intentID, "live") {
			return models.PaymentSucceeded, nil
		}
		return models.PaymentFailed, nil
	}

	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		p.Logger.Error("stripe payment intent lookup failed",
			zap.String("intentID", intentID), zap.Error(err))
		return "", fmt.Errorf("failed to check payment status: %w", err)
	}
	return string(pi.Status), nil
}

func randomToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:13]
}
