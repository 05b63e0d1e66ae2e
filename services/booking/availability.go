package booking

import (
	"time"

	"hotelier/models"
)

// RangesOverlap reports whether the half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one night. A checkout date equal to another
// booking's check-in date is not an overlap, so back-to-back turnover is
// allowed.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsAvailable decides whether [checkIn, checkOut) is free given the room's
// current active bookings. Inputs must already be date-validated
// (checkIn < checkOut); ordering is not re-checked here.
func IsAvailable(checkIn, checkOut time.Time, activeBookings []models.Booking) bool {
	for _, b := range activeBookings {
		if RangesOverlap(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			return false
		}
	}
	return true
}

// FindConflicts returns the active bookings whose date ranges overlap
// [checkIn, checkOut), for diagnostics.
func FindConflicts(checkIn, checkOut time.Time, activeBookings []models.Booking) []models.Booking {
	var conflicts []models.Booking
	for _, b := range activeBookings {
		if RangesOverlap(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
