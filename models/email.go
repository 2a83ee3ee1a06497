package models

// ConfirmationEmailRequest carries everything needed to build and route a
// booking confirmation email.
type ConfirmationEmailRequest struct {
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes,omitempty"`
	PaymentMethod string `json:"paymentMethod"`
	ScheduleTime  string `json:"scheduleTime,omitempty"` // RFC3339; absent means "send immediately"
	UseTestEmail  bool   `json:"useTestEmail"`
}

// ConfirmationEmailResult is returned after a confirmation email is accepted.
type ConfirmationEmailResult struct {
	TestMode    bool   `json:"testMode"`
	SentToEmail string `json:"sentToEmail"`
	EmailID     string `json:"emailId"`
	Scheduled   bool   `json:"scheduled"`
}

// EmailUpdateRequest mutates a previously scheduled confirmation email.
type EmailUpdateRequest struct {
	EmailID      string `json:"emailId"`
	ScheduleTime string `json:"scheduleTime,omitempty"`
	Cancel       bool   `json:"cancel,omitempty"`
}

// Email update actions.
const (
	EmailActionUpdated   = "updated"
	EmailActionCancelled = "cancelled"
)

// EmailUpdateResult reports the action taken on a scheduled email.
type EmailUpdateResult struct {
	Action  string `json:"action"`
	EmailID string `json:"emailId"`
}
