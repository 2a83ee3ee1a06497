package models

// Payment intent statuses reported by the status check.
const (
	PaymentSucceeded  = "succeeded"
	PaymentProcessing = "processing"
	PaymentFailed     = "failed"
)

// PaymentIntent mirrors the payment gateway's intent shape.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
}
