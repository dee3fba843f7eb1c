package notify

import (
	"sync"

	"bloomnet-dispatch/internal/clock"
	"bloomnet-dispatch/internal/domain"
)

// DefaultCapacity is the number of notifications retained when no
// explicit capacity is configured.
const DefaultCapacity = 10

type counter interface {
	Inc()
}

// Stream is an append-only, capacity-bounded, time-ordered log of
// operator-visible events. Readers observe entries most-recent-first.
// All mutations are serialized by the stream's mutex.
type Stream struct {
	clock    clock.Clock
	capacity int
	evicted  counter

	mu        sync.Mutex
	nextID    int64
	entries   []domain.Notification
	listeners []func(domain.Notification)
}

// NewStream creates a Stream bound to the given clock. capacity <= 0
// falls back to DefaultCapacity. evicted may be nil.
func NewStream(c clock.Clock, capacity int, evicted counter) *Stream {
	if c == nil {
		c = clock.RealClock{}
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stream{
		clock:    c,
		capacity: capacity,
		evicted:  evicted,
	}
}

// Push appends a notification with a fresh id and the clock's current
// time, evicting the oldest entry once the capacity is exceeded.
func (s *Stream) Push(message string) domain.Notification {
	s.mu.Lock()

	s.nextID++
	n := domain.Notification{
		ID:        s.nextID,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}

	s.entries = append([]domain.Notification{n}, s.entries...)
	if len(s.entries) > s.capacity {
		dropped := len(s.entries) - s.capacity
		s.entries = s.entries[:s.capacity]
		if s.evicted != nil {
			for i := 0; i < dropped; i++ {
				s.evicted.Inc()
			}
		}
	}

	listeners := append(([]func(domain.Notification))(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(n)
	}
	return n
}

// Recent returns a copy of the retained notifications, most recent first.
func (s *Stream) Recent() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of retained notifications.
func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Subscribe registers fn to be called for every subsequent push. The
// callback runs on the pushing goroutine and must not block.
func (s *Stream) Subscribe(fn func(domain.Notification)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
