package dashboard

import (
	"fmt"
	"time"

	bookingRepo "hotelier/database/repository/booking"
	roomRepo "hotelier/database/repository/room"
	"hotelier/models"
	"hotelier/services/booking"
)

// DashboardService aggregates ledger data for the front desk: today's
// movements, current guests and occupancy. It only reads.
type DashboardService interface {
	TodayCheckIns() ([]models.StaySummary, error)
	TodayCheckOuts() ([]models.StaySummary, error)
	CurrentGuests() ([]models.StaySummary, error)
	OccupancyRate(date time.Time) (*models.OccupancyRate, error)
	WeeklyOccupancy() ([]models.OccupancyPoint, error)
	BookingCounts() (map[models.BookingStatus]int64, error)
}

// DefaultDashboardService implements DashboardService.
type DefaultDashboardService struct {
	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	// Now supplies the current time; overridable in tests.
	Now func() time.Time
}

// NewDashboardService wires a DefaultDashboardService with the real clock.
func NewDashboardService(bookings bookingRepo.BookingRepository, rooms roomRepo.RoomRepository) *DefaultDashboardService {
	return &DefaultDashboardService{Bookings: bookings, Rooms: rooms, Now: time.Now}
}

func (s *DefaultDashboardService) today() time.Time {
	return booking.DateOnly(s.Now())
}

// TodayCheckIns returns guests expected to arrive today.
func (s *DefaultDashboardService) TodayCheckIns() ([]models.StaySummary, error) {
	bookings, err := s.Bookings.CheckInsOn(s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's check-ins: %w", err)
	}
	return s.summarize(bookings), nil
}

// TodayCheckOuts returns guests expected to depart today.
func (s *DefaultDashboardService) TodayCheckOuts() ([]models.StaySummary, error) {
	bookings, err := s.Bookings.CheckOutsOn(s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's check-outs: %w", err)
	}
	return s.summarize(bookings), nil
}

// CurrentGuests returns every checked-in booking.
func (s *DefaultDashboardService) CurrentGuests() ([]models.StaySummary, error) {
	bookings, err := s.Bookings.CurrentGuests()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current guests: %w", err)
	}
	return s.summarize(bookings), nil
}

// OccupancyRate reports occupied versus total rooms for a date.
func (s *DefaultDashboardService) OccupancyRate(date time.Time) (*models.OccupancyRate, error) {
	date = booking.DateOnly(date)

	occupied, err := s.Bookings.CountOccupiedRooms(date)
	if err != nil {
		return nil, fmt.Errorf("failed to count occupied rooms: %w", err)
	}
	total, err := s.Rooms.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}

	rate := 0.0
	if total > 0 {
		rate = float64(occupied) / float64(total)
	}
	return &models.OccupancyRate{Date: date, OccupiedRooms: occupied, TotalRooms: total, Rate: rate}, nil
}

// WeeklyOccupancy returns the active/cancelled series for the last seven days.
func (s *DefaultDashboardService) WeeklyOccupancy() ([]models.OccupancyPoint, error) {
	end := s.today()
	start := end.AddDate(0, 0, -6)

	points, err := s.Bookings.WeeklyOccupancy(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly occupancy: %w", err)
	}
	return points, nil
}

// BookingCounts returns the ledger size per status.
func (s *DefaultDashboardService) BookingCounts() (map[models.BookingStatus]int64, error) {
	counts := make(map[models.BookingStatus]int64, 4)
	for _, status := range []models.BookingStatus{
		models.StatusBooked, models.StatusCheckedIn, models.StatusCheckedOut, models.StatusCancelled,
	} {
		n, err := s.Bookings.CountByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to count bookings by status: %w", err)
		}
		counts[status] = n
	}
	return counts, nil
}

// summarize converts ledger records into dashboard cards.
func (s *DefaultDashboardService) summarize(bookings []models.Booking) []models.StaySummary {
	today := s.today()
	summaries := make([]models.StaySummary, 0, len(bookings))
	for _, b := range bookings {
		remaining := booking.Nights(today, b.CheckOutDate)
		if remaining < 0 {
			remaining = 0
		}
		summaries = append(summaries, models.StaySummary{
			BookingID:     b.ID,
			GuestName:     b.GuestFullName(),
			RoomNumber:    b.RoomNumber,
			CheckInDate:   b.CheckInDate,
			CheckOutDate:  b.CheckOutDate,
			DaysRemaining: remaining,
		})
	}
	return summaries
}
