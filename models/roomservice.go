package models

import "time"

// ServiceStatus is the lifecycle state of an ancillary room service ticket.
type ServiceStatus string

const (
	ServicePending    ServiceStatus = "PENDING"
	ServiceInProgress ServiceStatus = "IN_PROGRESS"
	ServiceCompleted  ServiceStatus = "COMPLETED"
	ServiceCancelled  ServiceStatus = "CANCELLED"
)

// RoomServiceTicket represents an ancillary service ordered against a room
// (meals, laundry, spa). Completed tickets feed the checkout bill.
type RoomServiceTicket struct {
	ID          string        `bson:"id" json:"id"`
	RoomNumber  string        `bson:"room_number" json:"roomNumber"`
	ServiceType string        `bson:"service_type" json:"serviceType"`
	Amount      float64       `bson:"amount" json:"amount"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	GuestName   string        `bson:"guest_name,omitempty" json:"guestName,omitempty"`
	Status      ServiceStatus `bson:"status" json:"status"`
	RequestedAt time.Time     `bson:"requested_at" json:"requestedAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// RoomServiceRequest is the input for opening a room service ticket.
type RoomServiceRequest struct {
	RoomNumber  string  `json:"roomNumber" binding:"required"`
	ServiceType string  `json:"serviceType" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
	GuestName   string  `json:"guestName"`
}
