package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusBooked     BookingStatus = "BOOKED"
	StatusCheckedIn  BookingStatus = "CHECKED_IN"
	StatusCheckedOut BookingStatus = "CHECKED_OUT"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// IsActive reports whether a booking in this status still occupies its room.
// Only active bookings participate in availability checks.
func (s BookingStatus) IsActive() bool {
	return s == StatusBooked || s == StatusCheckedIn
}

// IsTerminal reports whether no further transitions are allowed from this status.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// Booking represents a confirmed reservation record. Bookings are never
// deleted; cancellation is a status transition.
type Booking struct {
	ID               string        `bson:"id" json:"id"` // UUID
	FirstName        string        `bson:"first_name" json:"firstName"`
	LastName         string        `bson:"last_name" json:"lastName"`
	Pronouns         string        `bson:"pronouns" json:"pronouns"`
	CheckInDate      time.Time     `bson:"check_in_date" json:"checkInDate"`   // Date only, truncated to midnight UTC
	CheckOutDate     time.Time     `bson:"check_out_date" json:"checkOutDate"` // Exclusive; checkInDate < checkOutDate
	AdultCapacity    int           `bson:"adult_capacity" json:"adultCapacity"`
	ChildrenCapacity int           `bson:"children_capacity" json:"childrenCapacity"`
	TotalAmount      float64       `bson:"total_amount" json:"totalAmount"` // Recomputed at checkout
	Status           BookingStatus `bson:"status" json:"status"`
	RoomID           string        `bson:"room_id" json:"roomId"`
	RoomNumber       string        `bson:"room_number" json:"roomNumber"` // Denormalized for billing and search
	CreatedAt        time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updatedAt"`
}

// GuestFullName returns the guest's display name.
func (b *Booking) GuestFullName() string {
	return b.FirstName + " " + b.LastName
}

// BookingRequest is the input for creating a booking.
type BookingRequest struct {
	FirstName        string
	LastName         string
	Pronouns         string
	CheckInDate      time.Time
	CheckOutDate     time.Time
	AdultCapacity    int
	ChildrenCapacity int
	RoomID           string
}

// BookingQuery captures list filters for the booking ledger.
type BookingQuery struct {
	Page     int
	Size     int
	SortBy   string
	SortDesc bool
	Search   string // Matches guest first/last name or room number
	Status   BookingStatus
}
