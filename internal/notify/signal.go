package notify

import "sync"

// Signal is a latched boolean event raised by the dispatch engine and
// consumed by the presentation layer, e.g. "show the aerial-delivery
// interface". Raising an already raised signal is a no-op.
type Signal struct {
	mu     sync.Mutex
	raised bool
	done   chan struct{}
}

// NewSignal returns an unraised Signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Raise latches the signal.
func (s *Signal) Raise() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raised {
		return
	}
	s.raised = true
	close(s.done)
}

// Active reports whether the signal has been raised.
func (s *Signal) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raised
}

// Done returns a channel closed when the signal is raised.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}
