package requestlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of entries kept when no capacity is given.
const DefaultCapacity = 1000

// MemoryStore implements Store with a bounded in-memory buffer.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
}

// NewMemoryStore creates a MemoryStore holding at most capacity entries.
// A non-positive capacity selects DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Capacity returns the maximum number of entries retained.
func (s *MemoryStore) Capacity() int {
	return s.capacity
}

// Log appends entry, evicting the oldest entries once capacity is exceeded.
// ID and Timestamp are assigned when unset. The entry is copied; later
// changes by the caller are not observed.
func (s *MemoryStore) Log(entry *Entry) {
	if entry == nil {
		return
	}

	e := *entry
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	// FIFO eviction: drop exactly the overflow from the front
	if excess := len(s.entries) - s.capacity; excess > 0 {
		s.entries = s.entries[excess:]
	}
}

// List returns a snapshot of all entries, oldest first.
func (s *MemoryStore) List() []Entry {
	return s.Tail(0)
}

// Tail returns a snapshot of the newest n entries, oldest first.
func (s *MemoryStore) Tail(n int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if n > 0 && n < len(s.entries) {
		start = len(s.entries) - n
	}
	out := make([]Entry, len(s.entries)-start)
	copy(out, s.entries[start:])
	return out
}

// Count returns the number of entries currently held.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
