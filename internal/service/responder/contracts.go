package responder

import (
	"context"

	"bloomnet-dispatch/internal/domain"
)

// responderRepository defines storage operations required by the business layer.
type responderRepository interface {
	Get(ctx context.Context, id int64) (domain.Responder, error)
	List(ctx context.Context) ([]domain.Responder, error)
	Create(ctx context.Context, r domain.Responder) (int64, error)
}
