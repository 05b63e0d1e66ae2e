package roomservice

import "fmt"

// NotFoundError indicates an unknown ticket id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("room service ticket not found with id: %s", e.ID)
}

// StateError indicates a ticket transition that is not legal from its
// current status.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}
