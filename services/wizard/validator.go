package wizard

import (
	"strings"
	"time"

	"neatspin/models"
)

// Wizard step numbers.
const (
	StepService  = 1
	StepSchedule = 2
	StepContact  = 3
	StepPayment  = 4
)

// ValidateStep reports whether the draft satisfies the gate for the given
// step. It is a pure predicate: the Continue/Submit action is enabled iff it
// returns true.
func ValidateStep(step int, d models.DraftBooking) bool {
	switch step {
	case StepService:
		return models.IsValidService(strings.TrimSpace(d.Service))
	case StepSchedule:
		return validDate(d.Date) && models.IsValidTimeSlot(strings.TrimSpace(d.Time))
	case StepContact:
		return nonEmpty(d.Name) && nonEmpty(d.Email) && nonEmpty(d.Phone) && nonEmpty(d.Address)
	case StepPayment:
		return models.IsValidPaymentMethod(strings.TrimSpace(d.PaymentMethod))
	}
	return false
}

func nonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// validDate accepts a "YYYY-MM-DD" date that is today or later.
func validDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	return !d.Before(today)
}
