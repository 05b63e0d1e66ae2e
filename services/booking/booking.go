package booking

import (
	"fmt"
	"time"

	"hotelier/models"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking runs the reservation protocol. Validation happens before any
// lock is taken; the availability check and the ledger write happen inside a
// critical section keyed by room identity, so concurrent create attempts for
// the same room cannot both observe "available".
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	checkIn := DateOnly(req.CheckInDate)
	checkOut := DateOnly(req.CheckOutDate)

	if !checkIn.Before(checkOut) {
		return nil, NewValidationError("check-out date must be after check-in date")
	}
	if checkIn.Before(s.today()) {
		return nil, NewValidationError("check-in date cannot be in the past")
	}

	room, err := s.RoomRepo.GetByID(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	if room == nil {
		return nil, NewNotFoundError("room", req.RoomID)
	}
	if !room.IsActive {
		return nil, NewValidationError("room %s is not active", room.RoomNumber)
	}
	if room.AdultCapacity < req.AdultCapacity {
		return nil, NewValidationError("room adult capacity (%d) is insufficient for requested capacity (%d)",
			room.AdultCapacity, req.AdultCapacity)
	}
	if room.ChildrenCapacity < req.ChildrenCapacity {
		return nil, NewValidationError("room children capacity (%d) is insufficient for requested capacity (%d)",
			room.ChildrenCapacity, req.ChildrenCapacity)
	}

	// Critical section: reread active bookings, check overlap, write. The
	// deferred unlock guarantees release on every exit path.
	lock := s.roomLocks.get(room.ID)
	lock.Lock()
	defer lock.Unlock()

	active, err := s.Repo.ActiveByRoom(room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active bookings: %w", err)
	}
	if !IsAvailable(checkIn, checkOut, active) {
		logger.Info("booking conflict detected",
			zap.String("roomNumber", room.RoomNumber),
			zap.Time("checkIn", checkIn),
			zap.Time("checkOut", checkOut),
		)
		return nil, &ConflictError{RoomNumber: room.RoomNumber}
	}

	nights := Nights(checkIn, checkOut)
	booking := &models.Booking{
		ID:               uuid.New().String(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Pronouns:         req.Pronouns,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		AdultCapacity:    req.AdultCapacity,
		ChildrenCapacity: req.ChildrenCapacity,
		TotalAmount:      StayTotal(nights, room.Price),
		Status:           models.StatusBooked,
		RoomID:           room.ID,
		RoomNumber:       room.RoomNumber,
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("roomNumber", room.RoomNumber),
		zap.Int("nights", nights),
		zap.Float64("totalAmount", booking.TotalAmount),
	)
	return booking, nil
}

// UpdateStatus applies a lifecycle event expressed as a target status.
// Checkout requests are routed through CheckOut so billing is finalized.
func (s *DefaultBookingService) UpdateStatus(id string, target models.BookingStatus) (*models.Booking, error) {
	event, ok := eventFor(target)
	if !ok {
		return nil, NewStateError("no transition leads to status %s", target)
	}
	switch event {
	case EventCheckIn:
		return s.CheckIn(id)
	case EventCheckOut:
		return s.CheckOut(id)
	default:
		return s.CancelBooking(id)
	}
}

// CheckIn transitions a BOOKED booking to CHECKED_IN once its check-in date
// has been reached.
func (s *DefaultBookingService) CheckIn(id string) (*models.Booking, error) {
	b, err := s.loadBooking(id)
	if err != nil {
		return nil, err
	}
	if _, ok := NextStatus(b.Status, EventCheckIn); !ok {
		return nil, NewStateError("cannot check in: booking status is %s", b.Status)
	}
	if b.CheckInDate.After(s.today()) {
		return nil, NewStateError("cannot check in before the check-in date")
	}
	return s.transition(b, EventCheckIn, models.StatusCheckedIn)
}

// CancelBooking transitions an active booking to CANCELLED. Cancelling a
// checked-in guest is treated as early termination.
func (s *DefaultBookingService) CancelBooking(id string) (*models.Booking, error) {
	b, err := s.loadBooking(id)
	if err != nil {
		return nil, err
	}
	if _, ok := NextStatus(b.Status, EventCancel); !ok {
		return nil, NewStateError("cannot cancel: booking status is %s", b.Status)
	}
	return s.transition(b, EventCancel, models.StatusCancelled)
}

// CheckOut computes the final bill, persists the grand total and transitions
// CHECKED_IN to CHECKED_OUT. The total is only written if the status
// compare-and-set wins; a lost race surfaces as a StateError.
func (s *DefaultBookingService) CheckOut(id string) (*models.Booking, error) {
	b, err := s.loadBooking(id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.StatusCheckedIn {
		return nil, NewStateError("cannot check out: guest is not checked in")
	}

	summary, err := s.buildSummary(b)
	if err != nil {
		return nil, err
	}

	ok, err := s.Repo.FinalizeCheckout(b.ID, summary.GrandTotal)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize checkout: %w", err)
	}
	if !ok {
		return nil, NewStateError("cannot check out: booking %s is no longer checked in", b.ID)
	}

	utils.GetLogger().Info("guest checked out",
		zap.String("bookingID", b.ID),
		zap.String("roomNumber", b.RoomNumber),
		zap.Int("nights", summary.TotalNights),
		zap.Float64("grandTotal", summary.GrandTotal),
	)

	b.Status = models.StatusCheckedOut
	b.TotalAmount = summary.GrandTotal
	return b, nil
}

// GetCheckoutSummary computes the itemized bill without finalizing anything.
// The booking must currently be checked in.
func (s *DefaultBookingService) GetCheckoutSummary(id string) (*models.CheckoutSummary, error) {
	b, err := s.loadBooking(id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.StatusCheckedIn {
		return nil, NewStateError("cannot get checkout summary: guest is not checked in")
	}
	summary, err := s.buildSummary(b)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// FindAvailableRooms returns active rooms matching the capacities with no
// active booking overlapping the requested range.
func (s *DefaultBookingService) FindAvailableRooms(checkIn, checkOut time.Time, adultCapacity, childrenCapacity int) ([]models.Room, error) {
	checkIn = DateOnly(checkIn)
	checkOut = DateOnly(checkOut)

	if !checkIn.Before(checkOut) {
		return nil, NewValidationError("check-out date must be after check-in date")
	}
	if checkIn.Before(s.today()) {
		return nil, NewValidationError("check-in date cannot be in the past")
	}
	if adultCapacity < 1 {
		adultCapacity = 1
	}
	if childrenCapacity < 0 {
		childrenCapacity = 0
	}

	occupied, err := s.Repo.ActiveRoomIDsOverlapping(checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("failed to query occupied rooms: %w", err)
	}
	rooms, err := s.RoomRepo.FindAvailable(occupied, adultCapacity, childrenCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}
	return rooms, nil
}

// transition persists a status change via compare-and-set on the expected
// prior status. A lost race yields StateError, never a corrupting write.
func (s *DefaultBookingService) transition(b *models.Booking, event Event, next models.BookingStatus) (*models.Booking, error) {
	ok, err := s.Repo.UpdateStatus(b.ID, b.Status, next)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !ok {
		return nil, NewStateError("cannot %s: booking %s changed status concurrently", event, b.ID)
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", b.ID),
		zap.String("from", string(b.Status)),
		zap.String("to", string(next)),
	)

	b.Status = next
	return b, nil
}

// buildSummary assembles the checkout bill from the room's nightly rate and
// the room's completed service charges, billed against the current date.
func (s *DefaultBookingService) buildSummary(b *models.Booking) (*models.CheckoutSummary, error) {
	room, err := s.RoomRepo.GetByID(b.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	if room == nil {
		return nil, NewNotFoundError("room", b.RoomID)
	}

	charges, err := s.Charges.CompletedCharges(b.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed service charges: %w", err)
	}

	summary := BuildCheckoutSummary(b, room.Price, s.Now(), charges)
	return &summary, nil
}

func (s *DefaultBookingService) loadBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking", id)
	}
	return b, nil
}
