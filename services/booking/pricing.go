package booking

import (
	"fmt"
	"time"

	"hotelier/models"
)

const (
	// TaxRate is applied to the room total at checkout.
	TaxRate = 0.10
	// CleaningFee is a fixed per-stay charge added at checkout.
	CleaningFee = 3000.0
)

// DateOnly truncates a timestamp to midnight UTC. All booking dates are
// stored in this form so interval arithmetic works on whole calendar days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of calendar nights between two dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// StayTotal computes the room charge for a stay at the given nightly rate.
func StayTotal(nights int, nightlyRate float64) float64 {
	return float64(nights) * nightlyRate
}

// BuildCheckoutSummary computes the itemized checkout bill. Billing uses the
// effective checkout date rather than the originally booked one, so an early
// or late checkout changes the charged nights; a same-day checkout is still
// charged one night.
func BuildCheckoutSummary(
	b *models.Booking,
	nightlyRate float64,
	effectiveCheckout time.Time,
	completedCharges []models.ServiceCharge,
) models.CheckoutSummary {
	totalNights := Nights(b.CheckInDate, effectiveCheckout)
	if totalNights < 1 {
		totalNights = 1
	}

	roomTotal := StayTotal(totalNights, nightlyRate)
	tax := roomTotal * TaxRate

	charges := make([]models.ServiceCharge, 0, len(completedCharges)+2)
	charges = append(charges,
		models.ServiceCharge{Name: fmt.Sprintf("Tax (%.0f%%)", TaxRate*100), Amount: tax},
		models.ServiceCharge{Name: "Cleaning Fee", Amount: CleaningFee},
	)

	serviceTotal := 0.0
	for _, c := range completedCharges {
		charges = append(charges, c)
		serviceTotal += c.Amount
	}

	return models.CheckoutSummary{
		RoomTotal:      roomTotal,
		ServiceCharges: charges,
		GrandTotal:     roomTotal + tax + CleaningFee + serviceTotal,
		TotalNights:    totalNights,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   DateOnly(effectiveCheckout),
	}
}
