package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bloomnet-dispatch/internal/http/handlers"
	appmw "bloomnet-dispatch/internal/http/middleware"
	"bloomnet-dispatch/internal/http/middleware/ratelimit"
	"bloomnet-dispatch/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// Mutating routes go through the rate limiter.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	donations *handlers.DonationHandler,
	responders *handlers.ResponderHandler,
	notifications *handlers.NotificationHandler,
	rl *ratelimit.Middleware,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.Observability(logger, registry))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Get("/donations", donations.List)
	r.Get("/notifications", notifications.List)
	r.Get("/drone", notifications.DroneStatus)
	r.Get("/responders", responders.List)
	r.Get("/responder/{id}", responders.GetByID)

	r.Group(func(g chi.Router) {
		g.Use(rl.Handler())
		g.Post("/donation", donations.Create)
		g.Post("/donation/{id}/claim", donations.Claim)
		g.Post("/responder", responders.Create)
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
