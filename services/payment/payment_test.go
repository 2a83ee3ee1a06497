package payment_test

import (
	"context"
	"strings"
	"testing"

	"neatspin/models"
	"neatspin/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSimulatedService() *payment.StripePaymentService {
	return payment.NewStripePaymentService("test_key", zap.NewNop())
}

func TestCreateIntentSimulated(t *testing.T) {
	svc := newSimulatedService()

	cases := []struct {
		service string
		amount  int64
	}{
		{"basic", 1999},
		{"premium", 2999},
		{"family", 4999},
		{"unknown", 1999}, // falls back to the basic price
	}
	for _, tc := range cases {
		t.Run(tc.service, func(t *testing.T) {
			intent, err := svc.CreateIntent(context.Background(), tc.service, "customer@example.com")
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(intent.ID, "pi_test_"))
			assert.True(t, strings.HasPrefix(intent.ClientSecret, "test_secret_"))
			assert.Equal(t, tc.amount, intent.Amount)
		})
	}
}

func TestCreateIntentSimulatedWithEmptyKey(t *testing.T) {
	svc := payment.NewStripePaymentService("", zap.NewNop())

	intent, err := svc.CreateIntent(context.Background(), "basic", "customer@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(intent.ID, "pi_test_"))
}

func TestCreateIntentIDsAreUnique(t *testing.T) {
	svc := newSimulatedService()

	a, err := svc.CreateIntent(context.Background(), "basic", "a@example.com")
	require.NoError(t, err)
	b, err := svc.CreateIntent(context.Background(), "basic", "b@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCheckStatusSimulated(t *testing.T) {
	svc := newSimulatedService()

	t.Run("missing id", func(t *testing.T) {
		_, err := svc.CheckStatus(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("test id returns a known status", func(t *testing.T) {
		status, err := svc.CheckStatus(context.Background(), "pi_test_0a1b2c3d4e5f6")
		require.NoError(t, err)
		assert.Contains(t, []string{
			models.PaymentSucceeded,
			models.PaymentProcessing,
			models.PaymentFailed,
		}, status)
	})

	t.Run("live id succeeds", func(t *testing.T) {
		status, err := svc.CheckStatus(context.Background(), "pi_live_0a1b2c3d4e5f6")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentSucceeded, status)
	})

	t.Run("unrecognized id fails", func(t *testing.T) {
		status, err := svc.CheckStatus(context.Background(), "pi_0a1b2c3d4e5f6")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentFailed, status)
	})
}
