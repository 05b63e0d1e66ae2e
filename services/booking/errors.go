package booking

import "fmt"

// ValidationError signals malformed input (bad date order, past check-in,
// capacity exceeded). It is raised before any side effect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals an unknown room or booking id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError signals that the room is unavailable for the requested dates.
// It is detected only inside the per-room critical section and causes no write.
type ConflictError struct {
	RoomNumber string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s is not available for the selected dates", e.RoomNumber)
}

// StateError signals a status transition that is not legal from the booking's
// current status. Nothing is mutated.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

func NewStateError(format string, args ...interface{}) error {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}
