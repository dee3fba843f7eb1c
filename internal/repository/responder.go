package repository

import (
	"context"
	"sync"

	"bloomnet-dispatch/internal/apperr"
	"bloomnet-dispatch/internal/domain"
)

// ResponderRepo is an in-memory responder pool. Insertion order is
// preserved: the scoring engine's tie-break depends on it.
type ResponderRepo struct {
	mu     sync.Mutex
	nextID int64
	pool   []domain.Responder
}

// NewResponderRepo creates a pool preloaded with the given responders.
func NewResponderRepo(seed []domain.Responder) *ResponderRepo {
	r := &ResponderRepo{pool: append([]domain.Responder(nil), seed...)}
	for _, v := range seed {
		if v.ID > r.nextID {
			r.nextID = v.ID
		}
	}
	return r
}

// Create adds a responder to the pool and returns its generated id.
func (r *ResponderRepo) Create(_ context.Context, v domain.Responder) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	r.pool = append(r.pool, v)
	return v.ID, nil
}

// Get returns the responder with the given id.
func (r *ResponderRepo) Get(_ context.Context, id int64) (domain.Responder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.pool {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Responder{}, apperr.NotFound
}

// List returns the pool in insertion order.
func (r *ResponderRepo) List(_ context.Context) ([]domain.Responder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Responder(nil), r.pool...), nil
}
