package bookingRepo

import (
	"time"

	"hotelier/models"
)

// BookingRepository defines methods for reservation ledger access. It holds
// no business logic; availability decisions are made by the booking service.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// List retrieves bookings with pagination, sorting, search and status filter.
	List(q models.BookingQuery) ([]models.Booking, int64, error)
	// ActiveByRoom retrieves the active (BOOKED or CHECKED_IN) bookings for a room.
	ActiveByRoom(roomID string) ([]models.Booking, error)
	// UpdateStatus transitions a booking from an expected prior status to a new
	// one. It reports false when the booking exists but its status no longer
	// matches the expected value, so a lost race never corrupts state.
	UpdateStatus(id string, from, to models.BookingStatus) (bool, error)
	// FinalizeCheckout atomically sets the grand total and transitions
	// CHECKED_IN to CHECKED_OUT. Reports false when the status check fails.
	FinalizeCheckout(id string, grandTotal float64) (bool, error)
	// ActiveRoomIDsOverlapping returns the distinct room IDs that have an
	// active booking overlapping [checkIn, checkOut).
	ActiveRoomIDsOverlapping(checkIn, checkOut time.Time) ([]string, error)
	// CheckInsOn retrieves BOOKED bookings whose check-in date is the given day.
	CheckInsOn(day time.Time) ([]models.Booking, error)
	// CheckOutsOn retrieves CHECKED_IN bookings whose check-out date is the given day.
	CheckOutsOn(day time.Time) ([]models.Booking, error)
	// CurrentGuests retrieves all CHECKED_IN bookings.
	CurrentGuests() ([]models.Booking, error)
	// CountByStatus counts bookings in a given status.
	CountByStatus(status models.BookingStatus) (int64, error)
	// Count counts all bookings in the ledger.
	Count() (int64, error)
	// CountOccupiedRooms counts distinct rooms occupied by an active booking on a date.
	CountOccupiedRooms(date time.Time) (int64, error)
	// WeeklyOccupancy aggregates active and cancelled bookings per check-in day
	// over [start, end].
	WeeklyOccupancy(start, end time.Time) ([]models.OccupancyPoint, error)
}
