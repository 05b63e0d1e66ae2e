package roomServiceRepo

import "hotelier/models"

// RoomServiceRepository defines methods for ancillary service ticket access.
type RoomServiceRepository interface {
	// Create inserts a new ticket record.
	Create(ticket *models.RoomServiceTicket) error
	// GetByID retrieves a ticket by its unique ID.
	GetByID(id string) (*models.RoomServiceTicket, error)
	// ListByRoomNumber retrieves a room's tickets, most recent first.
	ListByRoomNumber(roomNumber string) ([]models.RoomServiceTicket, error)
	// ListByStatus retrieves tickets in a given status, most recent first.
	ListByStatus(status models.ServiceStatus) ([]models.RoomServiceTicket, error)
	// ListActive retrieves PENDING and IN_PROGRESS tickets, oldest first.
	ListActive() ([]models.RoomServiceTicket, error)
	// UpdateStatus transitions a ticket from an expected prior status to a new
	// one; reports false when the status no longer matches.
	UpdateStatus(id string, from, to models.ServiceStatus) (bool, error)
	// CompletedCharges returns the completed tickets for a room number as
	// billing line items. This is the charge source consumed at checkout.
	CompletedCharges(roomNumber string) ([]models.ServiceCharge, error)
}
