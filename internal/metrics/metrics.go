package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewClaimsAssignedTotal returns a Prometheus counter for the number of donations claimed and bound to a responder
func NewClaimsAssignedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "claims_assigned_total",
		Help: "Total number of donations claimed and bound to a responder",
	})
}

// NewEscalationsTotal returns a Prometheus counter for the number of claims escalated to aerial delivery
func NewEscalationsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "escalations_total",
		Help: "Total number of claims escalated to aerial delivery",
	})
}

// NewNotificationsEvictedTotal returns a Prometheus counter for the number of notifications dropped by stream truncation
func NewNotificationsEvictedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_evicted_total",
		Help: "Total number of notifications dropped by stream truncation",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}
