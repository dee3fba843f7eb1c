package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"bloomnet-dispatch/internal/logx"
	"bloomnet-dispatch/internal/scheduler"
)

// Runner starts the HTTP servers from a DI container and shuts them
// down on context cancellation.
type Runner struct {
	runFn     func(*dig.Container) error
	logFatalf func(string, ...interface{})
}

// NewRunner returns a Runner with default wiring.
func NewRunner() *Runner {
	return &Runner{
		runFn:     run,
		logFatalf: log.Fatalf,
	}
}

// MustRun runs the service and exits the process on unexpected errors.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	var msg string
	switch {
	case errors.Is(err, context.Canceled):
		msg = "shutdown requested, exiting"
	case errors.Is(err, context.DeadlineExceeded):
		msg = "startup aborted: startup timeout exceeded"
	default:
		r.logFatalf("run error: %v", err)
		return
	}

	if invErr := container.Invoke(func(logger logx.Logger) {
		logger.Info(msg)
	}); invErr != nil {
		log.Println(msg)
	}
}

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	NewRunner().MustRun(container)
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Server *http.Server
	Pprof  *http.Server `name:"pprof_server" optional:"true"`
	Sched  *scheduler.Scheduler
	Logger logx.Logger
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		startServer(in.Server, "bloomnet-dispatch", in.Logger)
		if in.Pprof != nil {
			startServer(in.Pprof, "pprof", in.Logger)
		}

		<-in.Ctx.Done()
		in.Logger.Info("shutting down bloomnet-dispatch")

		gracefulShutdown(in.Server, in.Logger, 15*time.Second)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, time.Second)
		}

		// let in-flight escalation checks and aerial signals finish
		in.Sched.Wait()
		return in.Ctx.Err()
	})
}

func startServer(server *http.Server, name string, logger logx.Logger) {
	go func() {
		logger.Info("listening",
			logx.String("server", name),
			logx.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error",
				logx.String("server", name),
				logx.Any("err", err),
			)
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Any("err", err))
	}
}
