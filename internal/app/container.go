package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"bloomnet-dispatch/internal/clock"
	"bloomnet-dispatch/internal/config"
	"bloomnet-dispatch/internal/escalation"
	"bloomnet-dispatch/internal/http/handlers"
	"bloomnet-dispatch/internal/http/pprofserver"
	"bloomnet-dispatch/internal/http/router"
	"bloomnet-dispatch/internal/logx"
	"bloomnet-dispatch/internal/metrics"
	"bloomnet-dispatch/internal/notify"
	"bloomnet-dispatch/internal/repository"
	"bloomnet-dispatch/internal/scheduler"
	"bloomnet-dispatch/internal/service/dispatch"
	"bloomnet-dispatch/internal/service/responder"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		logFatalf: log.Fatalf,
	}
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerState(container); err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		func() clock.Clock { return clock.RealClock{} },
		provideMetrics,
	)
}

// metricsOut groups the engine counters under dig names together with
// the registry they are registered in.
type metricsOut struct {
	dig.Out

	Registry               *prometheus.Registry
	ClaimsAssignedTotal    prometheus.Counter `name:"claims_assigned_total"`
	EscalationsTotal       prometheus.Counter `name:"escalations_total"`
	NotificationsEvicted   prometheus.Counter `name:"notifications_evicted_total"`
	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
}

func provideMetrics() (metricsOut, error) {
	reg := prometheus.NewRegistry()

	out := metricsOut{
		Registry:               reg,
		ClaimsAssignedTotal:    metrics.NewClaimsAssignedTotal(),
		EscalationsTotal:       metrics.NewEscalationsTotal(),
		NotificationsEvicted:   metrics.NewNotificationsEvictedTotal(),
		RateLimitExceededTotal: metrics.NewRateLimitExceededTotal(),
	}

	counters := []struct {
		name string
		c    prometheus.Counter
	}{
		{"claims_assigned_total", out.ClaimsAssignedTotal},
		{"escalations_total", out.EscalationsTotal},
		{"notifications_evicted_total", out.NotificationsEvicted},
		{"rate_limit_exceeded_total", out.RateLimitExceededTotal},
	}
	for _, c := range counters {
		if err := reg.Register(c.c); err != nil {
			return metricsOut{}, fmt.Errorf("register %s: %w", c.name, err)
		}
	}
	return out, nil
}

type streamIn struct {
	dig.In

	Clock   clock.Clock
	Cfg     *config.Config
	Evicted prometheus.Counter `name:"notifications_evicted_total"`
}

func newStream(in streamIn) *notify.Stream {
	return notify.NewStream(in.Clock, in.Cfg.Dispatch.NotificationCap, in.Evicted)
}

func newScheduler(clk clock.Clock, logger logx.Logger, stream *notify.Stream) *scheduler.Scheduler {
	return scheduler.New(clk, logger, func(task string) {
		stream.Push(fmt.Sprintf("Background task %s failed.", task))
	})
}

func registerState(container *dig.Container) error {
	return provideAll(container,
		func() *repository.DonationRepo {
			return repository.NewDonationRepo(repository.SeedDonations())
		},
		func() *repository.ResponderRepo {
			return repository.NewResponderRepo(repository.SeedResponders())
		},
		newStream,
		notify.NewSignal,
		newScheduler,
	)
}

type dispatchIn struct {
	dig.In

	Repo   *repository.DonationRepo
	Pool   *repository.ResponderRepo
	Stream *notify.Stream
	Sched  *scheduler.Scheduler
	Signal *notify.Signal
	Cfg    *config.Config
	Logger logx.Logger

	ClaimsAssigned prometheus.Counter `name:"claims_assigned_total"`
	Escalations    prometheus.Counter `name:"escalations_total"`
}

func newDispatchService(in dispatchIn) *dispatch.Service {
	detector := escalation.NewDetector(in.Cfg.Dispatch.DisasterMarkers)
	return dispatch.NewService(
		in.Repo,
		in.Pool,
		detector,
		in.Stream,
		in.Sched,
		in.Signal,
		in.Cfg.Dispatch,
		in.Logger,
		in.ClaimsAssigned,
		in.Escalations,
	)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		newDispatchService,
		func(pool *repository.ResponderRepo) *responder.Service {
			return responder.NewService(pool)
		},
	)
}

type pprofOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

func newPprofServer(cfg *config.Config) pprofOut {
	if !cfg.Pprof.Enabled {
		return pprofOut{}
	}
	return pprofOut{
		Server: &http.Server{
			Addr:              cfg.Pprof.Addr,
			Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDispatchUsecase,
		handlers.NewDonationHandler,
		handlers.NewResponderUsecase,
		handlers.NewResponderHandler,
		handlers.NewNotificationSource,
		handlers.NewAerialSignal,
		handlers.NewNotificationHandler,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
		newPprofServer,
	)
}
