package room

import "fmt"

// NotFoundError indicates an unknown room id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("room not found with id: %s", e.ID)
}

// DuplicateRoomNumberError indicates the room number is already in use.
type DuplicateRoomNumberError struct {
	RoomNumber string
}

func (e *DuplicateRoomNumberError) Error() string {
	return fmt.Sprintf("room number %s already exists", e.RoomNumber)
}

// ValidationError indicates malformed room attributes.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
