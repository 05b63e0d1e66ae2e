package roomRepo

import "hotelier/models"

// RoomRepository defines methods for room catalog access.
type RoomRepository interface {
	// GetByID retrieves a room by its unique ID.
	GetByID(id string) (*models.Room, error)
	// GetByRoomNumber retrieves a room by its unique room number.
	GetByRoomNumber(roomNumber string) (*models.Room, error)
	// GetAll retrieves all rooms.
	GetAll() ([]models.Room, error)
	// Create inserts a new room record.
	Create(room *models.Room) error
	// Update modifies an existing room record.
	Update(room *models.Room) error
	// SetActive flips the room's active flag.
	SetActive(id string, active bool) error
	// FindAvailable retrieves active rooms with at least the requested
	// capacities, excluding the given room IDs.
	FindAvailable(excludeIDs []string, adultCapacity, childrenCapacity int) ([]models.Room, error)
	// Count counts all rooms in the catalog.
	Count() (int64, error)
}
