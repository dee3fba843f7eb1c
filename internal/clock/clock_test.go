package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFakeClock_NowFrozenUntilAdvance(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	clk := NewFakeClock(start)

	require.Equal(t, start, clk.Now())
	clk.Advance(3 * time.Second)
	require.Equal(t, start.Add(3*time.Second), clk.Now())
}

func TestFakeClock_FiresDueTimersInOrder(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(time.Unix(0, 0))

	var fired []string
	clk.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	clk.AfterFunc(1*time.Second, func() { fired = append(fired, "a") })
	clk.AfterFunc(5*time.Second, func() { fired = append(fired, "c") })

	clk.Advance(2 * time.Second)
	require.Equal(t, []string{"a", "b"}, fired)
	require.Equal(t, 1, clk.PendingCount())

	clk.Advance(3 * time.Second)
	require.Equal(t, []string{"a", "b", "c"}, fired)
	require.Zero(t, clk.PendingCount())
}

func TestFakeClock_CallbackSchedulesWithinWindow(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(time.Unix(0, 0))

	var fired []string
	clk.AfterFunc(2*time.Second, func() {
		fired = append(fired, "outer")
		clk.AfterFunc(1*time.Second, func() { fired = append(fired, "inner") })
	})

	// one Advance covering both the outer deadline and the timer the
	// outer callback registers
	clk.Advance(3 * time.Second)
	require.Equal(t, []string{"outer", "inner"}, fired)
	require.Zero(t, clk.PendingCount())
}

func TestFakeClock_StopCancelsPending(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(time.Unix(0, 0))

	fired := false
	timer := clk.AfterFunc(time.Second, func() { fired = true })
	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	clk.Advance(2 * time.Second)
	require.False(t, fired)
}

func TestFakeClock_EqualDeadlinesFireInRegistrationOrder(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(time.Unix(0, 0))

	var fired []int
	for i := 1; i <= 3; i++ {
		i := i
		clk.AfterFunc(time.Second, func() { fired = append(fired, i) })
	}

	clk.Advance(time.Second)
	require.Equal(t, []int{1, 2, 3}, fired)
}

func TestRealClock_AfterFuncFires(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	RealClock{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
