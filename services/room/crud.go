package room

import (
	"fmt"

	"hotelier/models"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRoom adds a room to the catalog. Room numbers are unique.
func (s *DefaultRoomService) CreateRoom(input models.Room) (*models.Room, error) {
	if input.RoomNumber == "" {
		return nil, &ValidationError{Message: "room number is required"}
	}
	if input.AdultCapacity < 1 {
		return nil, &ValidationError{Message: "adult capacity must be at least 1"}
	}
	if input.ChildrenCapacity < 0 {
		return nil, &ValidationError{Message: "children capacity must be at least 0"}
	}
	if input.Price < 0 {
		return nil, &ValidationError{Message: "price must be greater than or equal to 0"}
	}

	existing, err := s.Repo.GetByRoomNumber(input.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check room number: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateRoomNumberError{RoomNumber: input.RoomNumber}
	}

	input.ID = uuid.New().String()
	if err := s.Repo.Create(&input); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	utils.GetLogger().Info("room created",
		zap.String("roomID", input.ID),
		zap.String("roomNumber", input.RoomNumber),
	)
	return &input, nil
}

// GetRoom retrieves a room by ID.
func (s *DefaultRoomService) GetRoom(id string) (*models.Room, error) {
	room, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if room == nil {
		return nil, &NotFoundError{ID: id}
	}
	return room, nil
}

// GetAllRooms retrieves the full catalog.
func (s *DefaultRoomService) GetAllRooms() ([]models.Room, error) {
	rooms, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// UpdateRoom modifies a room's catalog attributes.
func (s *DefaultRoomService) UpdateRoom(input models.Room) (*models.Room, error) {
	existing, err := s.Repo.GetByID(input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if existing == nil {
		return nil, &NotFoundError{ID: input.ID}
	}

	if input.RoomNumber != existing.RoomNumber {
		dup, err := s.Repo.GetByRoomNumber(input.RoomNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check room number: %w", err)
		}
		if dup != nil {
			return nil, &DuplicateRoomNumberError{RoomNumber: input.RoomNumber}
		}
	}

	input.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(&input); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return &input, nil
}

// SetRoomActive flips a room's active flag. Inactive rooms never appear in
// availability results and reject new bookings.
func (s *DefaultRoomService) SetRoomActive(id string, active bool) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch room: %w", err)
	}
	if existing == nil {
		return &NotFoundError{ID: id}
	}
	if err := s.Repo.SetActive(id, active); err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	return nil
}
