package models

import "time"

// ServiceCharge is a single line item on a checkout bill.
type ServiceCharge struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CheckoutSummary is the itemized bill computed at checkout. The effective
// checkout date is the date billing was computed against, which may differ
// from the originally booked check-out date.
type CheckoutSummary struct {
	RoomTotal      float64         `json:"roomTotal"`
	ServiceCharges []ServiceCharge `json:"serviceCharges"` // Tax, cleaning fee, then each completed service
	GrandTotal     float64         `json:"grandTotal"`
	TotalNights    int             `json:"totalNights"`
	CheckInDate    time.Time       `json:"checkInDate"`
	CheckOutDate   time.Time       `json:"checkOutDate"` // Effective checkout date
}
