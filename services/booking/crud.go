package booking

import (
	"fmt"

	"hotelier/models"
)

// GetBooking retrieves a single booking by ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.loadBooking(id)
}

// ListBookings retrieves bookings with pagination, sorting, search and status
// filter, plus the total match count.
func (s *DefaultBookingService) ListBookings(q models.BookingQuery) ([]models.Booking, int64, error) {
	bookings, total, err := s.Repo.List(q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, total, nil
}
