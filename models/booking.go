package models

import "time"

// Booking statuses mutated through the admin view.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Booking represents a persisted booking record.
type Booking struct {
	ID            string    `bson:"id" json:"id"`                         // Unique booking identifier (UUID)
	Service       string    `bson:"service" json:"service"`               // Service key: "basic", "premium" or "family"
	Date          string    `bson:"date" json:"date"`                     // Pickup date in "YYYY-MM-DD" format
	Time          string    `bson:"time" json:"time"`                     // Pickup time slot, e.g. "11:00 AM - 1:00 PM"
	Name          string    `bson:"name" json:"name"`                     // Customer full name
	Email         string    `bson:"email" json:"email"`                   // Customer email
	Phone         string    `bson:"phone" json:"phone"`                   // Customer phone number
	Address       string    `bson:"address" json:"address"`               // Pickup address
	Notes         *string   `bson:"notes" json:"notes"`                   // Optional special instructions
	PaymentMethod string    `bson:"payment_method" json:"payment_method"` // "credit-card", "digital-wallet" or "pay-later"
	Status        string    `bson:"status" json:"status"`                 // Empty status is treated as "pending"
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`         // Timestamp when the booking was created
}

// IsValidStatus reports whether s is one of the allowed booking statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
