package clock

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a manually advanced Clock for deterministic tests.
// Advance moves the virtual time forward and fires due timers
// synchronously, in firing order. A fired callback may schedule
// further timers; those also fire if they fall inside the window
// being advanced over.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	seq     int64
	pending []*fakeTimer
}

type fakeTimer struct {
	clk *FakeClock
	at  time.Time
	seq int64
	fn  func()
}

// NewFakeClock returns a FakeClock frozen at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current virtual time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers fn to fire once the virtual time reaches now+d.
func (c *FakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &fakeTimer{clk: c, at: c.now.Add(d), seq: c.seq, fn: fn}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the virtual time forward by d, firing every timer due
// on the way. Callbacks run on the calling goroutine, outside the
// clock's lock.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for {
		t := c.popDueLocked(target)
		if t == nil {
			break
		}
		c.now = t.at
		c.mu.Unlock()
		t.fn()
		c.mu.Lock()
	}

	c.now = target
	c.mu.Unlock()
}

// popDueLocked removes and returns the earliest timer due at or before
// target, or nil if none is due. Equal deadlines fire in registration order.
func (c *FakeClock) popDueLocked(target time.Time) *fakeTimer {
	sort.SliceStable(c.pending, func(i, j int) bool {
		if !c.pending[i].at.Equal(c.pending[j].at) {
			return c.pending[i].at.Before(c.pending[j].at)
		}
		return c.pending[i].seq < c.pending[j].seq
	})
	if len(c.pending) == 0 || c.pending[0].at.After(target) {
		return nil
	}
	t := c.pending[0]
	c.pending = c.pending[1:]
	return t
}

// PendingCount reports how many timers are registered and not yet fired.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (t *fakeTimer) Stop() bool {
	c := t.clk
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return true
		}
	}
	return false
}

var (
	_ Clock = RealClock{}
	_ Clock = (*FakeClock)(nil)
)
