package models

import "time"

// StaySummary is a compact booking view for the desk dashboard
// (today's arrivals and departures, current guests).
type StaySummary struct {
	BookingID     string    `json:"bookingId"`
	GuestName     string    `json:"guestName"`
	RoomNumber    string    `json:"roomNumber"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	DaysRemaining int       `json:"daysRemaining"`
}

// OccupancyPoint is one day of the weekly occupancy series.
type OccupancyPoint struct {
	Day       int   `bson:"day" json:"day"` // Day of month of the check-in date
	Active    int64 `bson:"active" json:"active"`
	Cancelled int64 `bson:"cancelled" json:"cancelled"`
}

// OccupancyRate reports room occupancy for a single date.
type OccupancyRate struct {
	Date          time.Time `json:"date"`
	OccupiedRooms int64     `json:"occupiedRooms"`
	TotalRooms    int64     `json:"totalRooms"`
	Rate          float64   `json:"rate"` // 0..1
}
