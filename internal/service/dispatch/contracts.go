//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"
	"time"

	"bloomnet-dispatch/internal/domain"
)

// DonationRepository defines storage operations required by the engine.
type DonationRepository interface {
	Create(ctx context.Context, d domain.Donation) (domain.Donation, error)
	Get(ctx context.Context, id int64) (domain.Donation, error)
	List(ctx context.Context) ([]domain.Donation, error)
	Claim(ctx context.Context, id int64, r domain.Responder) (domain.Donation, error)
}

// ResponderPool exposes the read-only responder pool to the engine.
type ResponderPool interface {
	List(ctx context.Context) ([]domain.Responder, error)
}

// Notifier is the engine's write side of the notification stream.
type Notifier interface {
	Push(message string) domain.Notification
}

// TaskScheduler runs named deferred tasks.
type TaskScheduler interface {
	After(d time.Duration, task string, fn func())
}

// Counter counts events, e.g. a Prometheus counter.
type Counter interface {
	Inc()
}
