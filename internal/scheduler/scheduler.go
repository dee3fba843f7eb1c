package scheduler

import (
	"fmt"
	"sync"
	"time"

	"bloomnet-dispatch/internal/clock"
	"bloomnet-dispatch/internal/logx"
)

// Scheduler runs named deferred tasks on the injected clock. A panic in
// a task is confined to that task: it is logged and reported through the
// failure hook instead of crashing the process.
type Scheduler struct {
	clock     clock.Clock
	logger    logx.Logger
	onFailure func(task string)
	wg        sync.WaitGroup
}

// New creates a Scheduler. onFailure may be nil.
func New(c clock.Clock, logger logx.Logger, onFailure func(task string)) *Scheduler {
	if c == nil {
		c = clock.RealClock{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Scheduler{
		clock:     c,
		logger:    logger,
		onFailure: onFailure,
	}
}

// After schedules fn to run once after d. The call returns immediately;
// fn runs on a timer goroutine (or on the advancing goroutine under a
// fake clock).
func (s *Scheduler) After(d time.Duration, task string, fn func()) {
	s.wg.Add(1)
	s.clock.AfterFunc(d, func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("scheduled task panicked",
					logx.String("task", task),
					logx.String("panic", fmt.Sprint(r)),
				)
				if s.onFailure != nil {
					s.onFailure(task)
				}
			}
		}()

		s.logger.Debug("scheduled task fired",
			logx.String("task", task),
			logx.Duration("delay", d),
		)
		fn()
	})
}

// Wait blocks until every fired or pending task has completed. Meant
// for shutdown; tasks scheduled after Wait returns are not covered.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
