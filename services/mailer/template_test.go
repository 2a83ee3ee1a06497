package mailer_test

import (
	"strings"
	"testing"
	"time"

	"neatspin/models"
	"neatspin/services/mailer"

	"github.com/stretchr/testify/assert"
)

func TestBuildConfirmationEmail(t *testing.T) {
	req := confirmationRequest()

	subject, html := mailer.BuildConfirmationEmail(req, false)

	assert.Equal(t, "Booking Confirmation for Kofi Boateng", subject)
	assert.Contains(t, html, "Premium Care")
	assert.Contains(t, html, "$29.99/load")
	assert.Contains(t, html, "2026-09-12")
	assert.Contains(t, html, "1:00 PM - 3:00 PM")
	assert.Contains(t, html, "44 Elm Street")
	assert.Contains(t, html, "Credit Card")
	assert.NotContains(t, html, "TEST EMAIL")
}

func TestBuildConfirmationEmailTestMode(t *testing.T) {
	req := confirmationRequest()

	subject, html := mailer.BuildConfirmationEmail(req, true)

	assert.True(t, strings.HasPrefix(subject, "[TEST] "))
	assert.Contains(t, html, "TEST EMAIL - Would normally be sent to: kofi@example.com")
}

func TestBuildConfirmationEmailUnknownKeys(t *testing.T) {
	req := confirmationRequest()
	req.Service = "dry-cleaning"
	req.PaymentMethod = "barter"

	_, html := mailer.BuildConfirmationEmail(req, false)

	assert.Contains(t, html, "Unknown Service")
	assert.Contains(t, html, "Unknown Payment Method")
	// Unknown services fall back to the basic price.
	assert.Contains(t, html, models.ServiceCatalog[models.ServiceBasic].DisplayPrice)
}

func TestNewConfirmationTaskCarriesPayload(t *testing.T) {
	payload := mailer.ConfirmationTaskPayload{
		To:      "kofi@example.com",
		ToName:  "Kofi Boateng",
		Subject: "Booking Confirmation for Kofi Boateng",
		HTML:    "<p>hi</p>",
	}

	task, opts, err := mailer.NewConfirmationTask(payload, "email-id-1", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, mailer.TypeSendConfirmation, task.Type())
	assert.Contains(t, string(task.Payload()), "kofi@example.com")
	assert.Len(t, opts, 3)
}
