package mailer

import (
	"fmt"
	"strings"

	"neatspin/models"
)

// BuildConfirmationEmail renders the booking confirmation subject and HTML
// body. In test mode the subject is prefixed and the body carries a banner
// naming the customer address the email would normally go to.
func BuildConfirmationEmail(req models.ConfirmationEmailRequest, testMode bool) (subject, html string) {
	svc, ok := models.ServiceCatalog[req.Service]
	serviceName := "Unknown Service"
	servicePrice := models.ServiceCatalog[models.ServiceBasic].DisplayPrice
	if ok {
		serviceName = svc.Name
		servicePrice = svc.DisplayPrice
	}

	paymentName, ok := models.PaymentMethodNames[req.PaymentMethod]
	if !ok {
		paymentName = "Unknown Payment Method"
	}

	subject = fmt.Sprintf("Booking Confirmation for %s", req.Name)
	if testMode {
		subject = "[TEST] " + subject
	}

	testBanner := ""
	if testMode {
		testBanner = fmt.Sprintf(
			`<p style="font-size: 16px; color: #e11d48; font-weight: bold;">TEST EMAIL - Would normally be sent to: %s</p>`,
			req.Email)
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eaeaea; border-radius: 5px;">`)
	b.WriteString(`<div style="text-align: center; margin-bottom: 20px;">`)
	b.WriteString(`<h1 style="color: #3b82f6; margin-bottom: 10px;">NeatSpin Laundry</h1>`)
	b.WriteString(`<p style="font-size: 18px; color: #333;">Booking Confirmation</p>`)
	b.WriteString(testBanner)
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<div style="margin-bottom: 30px;"><p>Hello %s,</p><p>Thank you for choosing NeatSpin Laundry! Your booking has been confirmed.</p></div>`, req.Name)

	b.WriteString(`<div style="background-color: #f9fafb; padding: 15px; border-radius: 5px; margin-bottom: 20px;">`)
	b.WriteString(`<h2 style="color: #333; font-size: 18px; margin-bottom: 15px;">Booking Details</h2>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse;">`)
	writeRow(&b, "Service", serviceName)
	writeRow(&b, "Price", servicePrice)
	writeRow(&b, "Pickup Date", req.Date)
	writeRow(&b, "Pickup Time", req.Time)
	writeRow(&b, "Address", req.Address)
	writeRow(&b, "Payment Method", paymentName)
	b.WriteString(`</table></div>`)

	b.WriteString(`<div>`)
	b.WriteString(`<p>Our team will be at your location during the scheduled time to pick up your laundry. Please have your items ready for pickup.</p>`)
	b.WriteString(`<p>If you have any questions or need to make changes to your booking, please contact us at support@neatspin.example.com or call (555) 123-4567.</p>`)
	b.WriteString(`<p style="margin-top: 30px;">Thank you for choosing NeatSpin Laundry!</p>`)
	b.WriteString(`<p>Best regards,<br>The NeatSpin Team</p>`)
	b.WriteString(`</div></div>`)

	return subject, b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b,
		`<tr><td style="padding: 8px 0; border-bottom: 1px solid #eaeaea; color: #666;">%s</td><td style="padding: 8px 0; border-bottom: 1px solid #eaeaea; text-align: right; font-weight: bold;">%s</td></tr>`,
		label, value)
}
