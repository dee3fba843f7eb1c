package ratelimit

import "time"

// Clock provides current time. Satisfied by clock.RealClock and clock.FakeClock.
type Clock interface {
	Now() time.Time
}
