package models

// Service keys offered for booking.
const (
	ServiceBasic   = "basic"
	ServicePremium = "premium"
	ServiceFamily  = "family"
)

// Payment method keys.
const (
	PaymentCreditCard    = "credit-card"
	PaymentDigitalWallet = "digital-wallet"
	PaymentPayLater      = "pay-later"
)

// ServiceOption describes a bookable service for catalog listings and emails.
type ServiceOption struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayPrice string `json:"displayPrice"`
	Amount       int64  `json:"amount"` // Price in minor currency units
}

// ServiceCatalog is the fixed service lookup table.
var ServiceCatalog = map[string]ServiceOption{
	ServiceBasic: {
		Key:          ServiceBasic,
		Name:         "Basic Wash",
		Description:  "Wash & Fold for everyday clothes",
		DisplayPrice: "$19.99/load",
		Amount:       1999,
	},
	ServicePremium: {
		Key:          ServicePremium,
		Name:         "Premium Care",
		Description:  "Wash, Dry & Press for business attire",
		DisplayPrice: "$29.99/load",
		Amount:       2999,
	},
	ServiceFamily: {
		Key:          ServiceFamily,
		Name:         "Family Bundle",
		Description:  "Up to 20 lbs of laundry, sorting included",
		DisplayPrice: "$49.99/bundle",
		Amount:       4999,
	},
}

// PaymentMethodNames maps payment method keys to display labels.
var PaymentMethodNames = map[string]string{
	PaymentCreditCard:    "Credit Card",
	PaymentDigitalWallet: "Digital Wallet",
	PaymentPayLater:      "Pay Later (during pickup)",
}

// PickupTimeSlots lists the fixed pickup windows offered in step 2.
var PickupTimeSlots = []string{
	"9:00 AM - 11:00 AM",
	"11:00 AM - 1:00 PM",
	"1:00 PM - 3:00 PM",
	"3:00 PM - 5:00 PM",
	"5:00 PM - 7:00 PM",
}

// IsValidService reports whether key is a known service.
func IsValidService(key string) bool {
	_, ok := ServiceCatalog[key]
	return ok
}

// IsValidPaymentMethod reports whether key is a known payment method.
func IsValidPaymentMethod(key string) bool {
	_, ok := PaymentMethodNames[key]
	return ok
}

// IsValidTimeSlot reports whether slot is one of the fixed pickup windows.
func IsValidTimeSlot(slot string) bool {
	for _, s := range PickupTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ServiceAmount returns the price in minor units for a service key,
// falling back to the basic price for unknown keys.
func ServiceAmount(key string) int64 {
	if opt, ok := ServiceCatalog[key]; ok {
		return opt.Amount
	}
	return ServiceCatalog[ServiceBasic].Amount
}
