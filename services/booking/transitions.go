package booking

import "hotelier/models"

// Event is a requested change to a booking's lifecycle.
type Event string

const (
	EventCheckIn  Event = "check-in"
	EventCheckOut Event = "check-out"
	EventCancel   Event = "cancel"
)

// transitions is the single source of truth for transition legality. Guards
// beyond status (check-in date reached, billing computed) are enforced by the
// service before the transition is persisted. Terminal states have no entries,
// so every event from them is rejected.
var transitions = map[models.BookingStatus]map[Event]models.BookingStatus{
	models.StatusBooked: {
		EventCheckIn: models.StatusCheckedIn,
		EventCancel:  models.StatusCancelled,
	},
	models.StatusCheckedIn: {
		EventCheckOut: models.StatusCheckedOut,
		EventCancel:   models.StatusCancelled, // Early termination
	},
}

// NextStatus resolves the target status for an event from the current status.
// The second return value is false when the transition is not legal.
func NextStatus(current models.BookingStatus, event Event) (models.BookingStatus, bool) {
	targets, ok := transitions[current]
	if !ok {
		return "", false
	}
	next, ok := targets[event]
	return next, ok
}

// eventFor maps a requested target status to the event that reaches it.
func eventFor(target models.BookingStatus) (Event, bool) {
	switch target {
	case models.StatusCheckedIn:
		return EventCheckIn, true
	case models.StatusCheckedOut:
		return EventCheckOut, true
	case models.StatusCancelled:
		return EventCancel, true
	default:
		return "", false
	}
}
