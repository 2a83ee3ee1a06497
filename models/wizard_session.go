package models

// DraftBooking is the in-progress, unsaved wizard form state.
type DraftBooking struct {
	Service          string `json:"service"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Notes            string `json:"notes"`
	PaymentMethod    string `json:"paymentMethod"`
	ScheduleEmailFor string `json:"scheduleEmailFor,omitempty"` // RFC3339; empty means "send immediately"
	UseTestEmail     bool   `json:"useTestEmail"`
}

// WizardSession holds the wizard state between steps.
type WizardSession struct {
	SessionID       string       `json:"sessionId"`
	Step            int          `json:"step"`
	Draft           DraftBooking `json:"draft"`
	IsSubmitting    bool         `json:"isSubmitting"`
	SentEmailID     string       `json:"sentEmailId,omitempty"`
	PaymentIntentID string       `json:"paymentIntentId,omitempty"`
	PrefetchGen     int          `json:"prefetchGen"` // Bumped on every step change; stale intent prefetches are dropped
	UserEmail       string       `json:"userEmail,omitempty"`
}

// SubmitResult reports the outcome of a wizard submission.
type SubmitResult struct {
	Booking *Booking `json:"booking"`
	EmailID string   `json:"emailId,omitempty"`
	Notice  string   `json:"notice"`
}

// Submission notice variants.
const (
	NoticeConfirmed     = "confirmed"                 // Booking saved, email sent to the customer
	NoticeConfirmedTest = "confirmed-test-email"      // Booking saved, email routed to the test address
	NoticeScheduled     = "confirmed-email-scheduled" // Booking saved, email scheduled for later
	NoticeEmailFailed   = "confirmed-email-failed"    // Booking saved, email issue, team will follow up
)
