package booking

import "sync"

// roomLockRegistry holds a map of room IDs to their mutexes. Booking creation
// for a room serializes on its mutex so two concurrent create attempts cannot
// both observe "available" before either commits. Creation for different
// rooms proceeds fully in parallel.
type roomLockRegistry struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func newRoomLockRegistry() *roomLockRegistry {
	return &roomLockRegistry{
		locks: make(map[string]*sync.Mutex),
	}
}

// get returns the mutex for a given room ID, creating one if it doesn't exist.
func (s *roomLockRegistry) get(roomID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[roomID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[roomID] = lock
	}
	return lock
}
