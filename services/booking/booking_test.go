package booking

import (
	"errors"
	"sync"
	"testing"
	"time"

	"hotelier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository. Its CAS methods mirror
// the Mongo implementation's matched-count semantics.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) List(q models.BookingQuery) ([]models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) ActiveByRoom(roomID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.RoomID == roomID && b.Status.IsActive() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (r *fakeBookingRepo) FinalizeCheckout(id string, grandTotal float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.StatusCheckedIn {
		return false, nil
	}
	b.Status = models.StatusCheckedOut
	b.TotalAmount = grandTotal
	return true, nil
}

func (r *fakeBookingRepo) ActiveRoomIDsOverlapping(checkIn, checkOut time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, b := range r.bookings {
		if b.Status.IsActive() && RangesOverlap(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) && !seen[b.RoomID] {
			seen[b.RoomID] = true
			out = append(out, b.RoomID)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CheckInsOn(day time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.StatusBooked && b.CheckInDate.Equal(day) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CheckOutsOn(day time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.StatusCheckedIn && b.CheckOutDate.Equal(day) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CurrentGuests() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.StatusCheckedIn {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CountByStatus(status models.BookingStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) CountOccupiedRooms(dateAt time.Time) (int64, error) {
	ids, err := r.ActiveRoomIDsOverlapping(dateAt, dateAt.Add(24*time.Hour))
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (r *fakeBookingRepo) WeeklyOccupancy(start, end time.Time) ([]models.OccupancyPoint, error) {
	return nil, nil
}

// fakeRoomRepo is an in-memory RoomRepository.
type fakeRoomRepo struct {
	rooms map[string]*models.Room
}

func newFakeRoomRepo(rooms ...*models.Room) *fakeRoomRepo {
	r := &fakeRoomRepo{rooms: make(map[string]*models.Room)}
	for _, room := range rooms {
		r.rooms[room.ID] = room
	}
	return r
}

func (r *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) GetByRoomNumber(roomNumber string) (*models.Room, error) {
	for _, room := range r.rooms {
		if room.RoomNumber == roomNumber {
			cp := *room
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRoomRepo) GetAll() ([]models.Room, error) {
	var out []models.Room
	for _, room := range r.rooms {
		out = append(out, *room)
	}
	return out, nil
}

func (r *fakeRoomRepo) Create(room *models.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) Update(room *models.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) SetActive(id string, active bool) error {
	if room, ok := r.rooms[id]; ok {
		room.IsActive = active
	}
	return nil
}

func (r *fakeRoomRepo) FindAvailable(excludeIDs []string, adultCapacity, childrenCapacity int) ([]models.Room, error) {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var out []models.Room
	for _, room := range r.rooms {
		if !excluded[room.ID] && room.IsActive &&
			room.AdultCapacity >= adultCapacity && room.ChildrenCapacity >= childrenCapacity {
			out = append(out, *room)
		}
	}
	return out, nil
}

func (r *fakeRoomRepo) Count() (int64, error) {
	return int64(len(r.rooms)), nil
}

// fakeChargeRepo is an in-memory RoomServiceRepository exposing canned
// completed charges per room number.
type fakeChargeRepo struct {
	charges map[string][]models.ServiceCharge
}

func (r *fakeChargeRepo) Create(t *models.RoomServiceTicket) error             { return nil }
func (r *fakeChargeRepo) GetByID(id string) (*models.RoomServiceTicket, error) { return nil, nil }
func (r *fakeChargeRepo) ListByRoomNumber(rn string) ([]models.RoomServiceTicket, error) {
	return nil, nil
}
func (r *fakeChargeRepo) ListByStatus(s models.ServiceStatus) ([]models.RoomServiceTicket, error) {
	return nil, nil
}
func (r *fakeChargeRepo) ListActive() ([]models.RoomServiceTicket, error) { return nil, nil }
func (r *fakeChargeRepo) UpdateStatus(id string, from, to models.ServiceStatus) (bool, error) {
	return false, nil
}
func (r *fakeChargeRepo) CompletedCharges(roomNumber string) ([]models.ServiceCharge, error) {
	return r.charges[roomNumber], nil
}

var testToday = date(2026, time.June, 1)

func newTestService(repo *fakeBookingRepo, rooms *fakeRoomRepo, charges map[string][]models.ServiceCharge) *DefaultBookingService {
	svc := NewBookingService(repo, rooms, &fakeChargeRepo{charges: charges})
	svc.Now = func() time.Time { return testToday }
	return svc
}

func standardRoom() *models.Room {
	return &models.Room{
		ID:               "room-1",
		RoomNumber:       "101",
		RoomType:         models.RoomTypeStandard,
		AdultCapacity:    2,
		ChildrenCapacity: 1,
		Price:            150.0,
		IsActive:         true,
	}
}

func bookingRequest() models.BookingRequest {
	return models.BookingRequest{
		FirstName:        "Ada",
		LastName:         "Wanjiru",
		CheckInDate:      date(2026, time.June, 1),
		CheckOutDate:     date(2026, time.June, 4),
		AdultCapacity:    2,
		ChildrenCapacity: 0,
		RoomID:           "room-1",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, newFakeRoomRepo(standardRoom()), nil)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.StatusBooked, b.Status)
	assert.Equal(t, "101", b.RoomNumber)
	assert.InDelta(t, 450.0, b.TotalAmount, 0.001)

	stored, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.StatusBooked, stored.Status)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	t.Run("check-out not after check-in", func(t *testing.T) {
		req := bookingRequest()
		req.CheckOutDate = req.CheckInDate
		_, err := svc.CreateBooking(req)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("check-in in the past", func(t *testing.T) {
		req := bookingRequest()
		req.CheckInDate = date(2026, time.May, 20)
		_, err := svc.CreateBooking(req)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("unknown room", func(t *testing.T) {
		req := bookingRequest()
		req.RoomID = "missing"
		_, err := svc.CreateBooking(req)
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("adult capacity exceeded", func(t *testing.T) {
		req := bookingRequest()
		req.AdultCapacity = 5
		_, err := svc.CreateBooking(req)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("children capacity exceeded", func(t *testing.T) {
		req := bookingRequest()
		req.ChildrenCapacity = 4
		_, err := svc.CreateBooking(req)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestCreateBookingInactiveRoom(t *testing.T) {
	room := standardRoom()
	room.IsActive = false
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(room), nil)

	_, err := svc.CreateBooking(bookingRequest())
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCreateBookingConflict(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	_, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	req := bookingRequest()
	req.CheckInDate = date(2026, time.June, 3)
	req.CheckOutDate = date(2026, time.June, 6)
	_, err = svc.CreateBooking(req)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "101", ce.RoomNumber)

	// Back to back with the existing stay succeeds.
	req.CheckInDate = date(2026, time.June, 4)
	req.CheckOutDate = date(2026, time.June, 6)
	_, err = svc.CreateBooking(req)
	assert.NoError(t, err)
}

func TestCreateBookingConcurrentSingleWinner(t *testing.T) {
	const attempts = 16
	repo := newFakeBookingRepo()
	svc := newTestService(repo, newFakeRoomRepo(standardRoom()), nil)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(bookingRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		var ce *ConflictError
		require.ErrorAs(t, err, &ce)
		conflicts++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCheckIn(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, newFakeRoomRepo(standardRoom()), nil)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	checkedIn, err := svc.CheckIn(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, checkedIn.Status)

	// A second check-in is rejected.
	_, err = svc.CheckIn(b.ID)
	var se *StateError
	assert.ErrorAs(t, err, &se)
}

func TestCheckInBeforeCheckInDate(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	req := bookingRequest()
	req.CheckInDate = date(2026, time.June, 10)
	req.CheckOutDate = date(2026, time.June, 12)
	b, err := svc.CreateBooking(req)
	require.NoError(t, err)

	_, err = svc.CheckIn(b.ID)
	var se *StateError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, err.Error(), "before the check-in date")
}

func TestCheckInUnknownBooking(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	_, err := svc.CheckIn("missing")
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestCancelBooking(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// Cancellation is terminal.
	_, err = svc.CancelBooking(b.ID)
	var se *StateError
	assert.ErrorAs(t, err, &se)

	// The cancelled range is free again.
	_, err = svc.CreateBooking(bookingRequest())
	assert.NoError(t, err)
}

func TestCancelCheckedInGuest(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)
	_, err = svc.CheckIn(b.ID)
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestCheckOut(t *testing.T) {
	repo := newFakeBookingRepo()
	charges := map[string][]models.ServiceCharge{
		"101": {{Name: "FOOD - Club sandwich", Amount: 50.0}},
	}
	svc := newTestService(repo, newFakeRoomRepo(standardRoom()), charges)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)
	_, err = svc.CheckIn(b.ID)
	require.NoError(t, err)

	// Guest leaves on the booked checkout date.
	svc.Now = func() time.Time { return date(2026, time.June, 4) }

	out, err := svc.CheckOut(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, out.Status)
	assert.InDelta(t, 3545.0, out.TotalAmount, 0.001)

	stored, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, stored.Status)
	assert.InDelta(t, 3545.0, stored.TotalAmount, 0.001)

	// Checkout is terminal.
	_, err = svc.CheckOut(b.ID)
	var se *StateError
	assert.ErrorAs(t, err, &se)
}

func TestCheckOutRequiresCheckedIn(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	_, err = svc.CheckOut(b.ID)
	var se *StateError
	assert.ErrorAs(t, err, &se)
}

func TestGetCheckoutSummary(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	// Summary requires an in-house guest.
	_, err = svc.GetCheckoutSummary(b.ID)
	var se *StateError
	require.ErrorAs(t, err, &se)

	_, err = svc.CheckIn(b.ID)
	require.NoError(t, err)

	svc.Now = func() time.Time { return date(2026, time.June, 4) }
	summary, err := svc.GetCheckoutSummary(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalNights)
	assert.InDelta(t, 3495.0, summary.GrandTotal, 0.001)

	// The summary is read-only.
	stored, err := svc.GetBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, stored.Status)
}

func TestUpdateStatusDispatch(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom()), nil)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	// BOOKED is never a transition target.
	_, err = svc.UpdateStatus(b.ID, models.StatusBooked)
	var se *StateError
	require.ErrorAs(t, err, &se)

	updated, err := svc.UpdateStatus(b.ID, models.StatusCheckedIn)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, updated.Status)

	updated, err = svc.UpdateStatus(b.ID, models.StatusCheckedOut)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, updated.Status)
}

func TestTransitionLostRace(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, newFakeRoomRepo(standardRoom()), nil)

	b, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	// Another actor cancels between the read and the write.
	loaded, err := svc.GetBooking(b.ID)
	require.NoError(t, err)
	ok, err := repo.UpdateStatus(loaded.ID, models.StatusBooked, models.StatusCancelled)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.CheckIn(b.ID)
	var se *StateError
	assert.True(t, errors.As(err, &se))
}

func TestFindAvailableRooms(t *testing.T) {
	room2 := &models.Room{
		ID:               "room-2",
		RoomNumber:       "102",
		RoomType:         models.RoomTypeDeluxe,
		AdultCapacity:    2,
		ChildrenCapacity: 2,
		Price:            220.0,
		IsActive:         true,
	}
	svc := newTestService(newFakeBookingRepo(), newFakeRoomRepo(standardRoom(), room2), nil)

	_, err := svc.CreateBooking(bookingRequest())
	require.NoError(t, err)

	rooms, err := svc.FindAvailableRooms(date(2026, time.June, 2), date(2026, time.June, 5), 2, 0)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "102", rooms[0].RoomNumber)

	// Outside the booked range both rooms are free.
	rooms, err = svc.FindAvailableRooms(date(2026, time.June, 4), date(2026, time.June, 6), 2, 0)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	_, err = svc.FindAvailableRooms(date(2026, time.June, 5), date(2026, time.June, 5), 1, 0)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
