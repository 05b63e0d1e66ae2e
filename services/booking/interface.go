package booking

import (
	"time"

	bookingRepo "hotelier/database/repository/booking"
	roomRepo "hotelier/database/repository/room"
	roomServiceRepo "hotelier/database/repository/roomservice"
	"hotelier/models"
)

// BookingService defines the interface for the reservation engine: booking
// creation, the status lifecycle, and checkout billing.
type BookingService interface {
	CreateBooking(req models.BookingRequest) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	ListBookings(q models.BookingQuery) ([]models.Booking, int64, error)
	UpdateStatus(id string, target models.BookingStatus) (*models.Booking, error)
	CheckIn(id string) (*models.Booking, error)
	CheckOut(id string) (*models.Booking, error)
	CancelBooking(id string) (*models.Booking, error)
	GetCheckoutSummary(id string) (*models.CheckoutSummary, error)
	FindAvailableRooms(checkIn, checkOut time.Time, adultCapacity, childrenCapacity int) ([]models.Room, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	RoomRepo roomRepo.RoomRepository
	Charges  roomServiceRepo.RoomServiceRepository
	// Now supplies the current time; overridable in tests.
	Now func() time.Time

	roomLocks *roomLockRegistry
}

// NewBookingService wires a DefaultBookingService with its room lock registry.
func NewBookingService(
	repo bookingRepo.BookingRepository,
	rooms roomRepo.RoomRepository,
	charges roomServiceRepo.RoomServiceRepository,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:      repo,
		RoomRepo:  rooms,
		Charges:   charges,
		Now:       time.Now,
		roomLocks: newRoomLockRegistry(),
	}
}

// today returns the current date truncated to midnight UTC.
func (s *DefaultBookingService) today() time.Time {
	return DateOnly(s.Now())
}
