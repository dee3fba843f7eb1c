package repository

import (
	"context"
	"sync"

	"bloomnet-dispatch/internal/apperr"
	"bloomnet-dispatch/internal/domain"
)

// DonationRepo is an in-memory, session-scoped donation store. A single
// mutex guards the whole store; the claim commit runs entirely under it
// so that at most one caller can flip a donation to claimed.
type DonationRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Donation
	order  []int64 // newest first
}

// NewDonationRepo creates a store preloaded with the given donations.
// Preloaded records keep their ids; generated ids continue after the
// highest preloaded one.
func NewDonationRepo(seed []domain.Donation) *DonationRepo {
	r := &DonationRepo{byID: make(map[int64]domain.Donation, len(seed))}
	for _, d := range seed {
		r.byID[d.ID] = d
		r.order = append([]int64{d.ID}, r.order...)
		if d.ID > r.nextID {
			r.nextID = d.ID
		}
	}
	return r
}

// Create stores a new donation and returns it with its assigned id.
func (r *DonationRepo) Create(_ context.Context, d domain.Donation) (domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	d.ID = r.nextID
	r.byID[d.ID] = d
	r.order = append([]int64{d.ID}, r.order...)
	return d, nil
}

// Get returns the donation with the given id.
func (r *DonationRepo) Get(_ context.Context, id int64) (domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return domain.Donation{}, apperr.NotFound
	}
	return d, nil
}

// List returns every donation, newest first.
func (r *DonationRepo) List(_ context.Context) ([]domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Donation, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// Claim atomically transitions a donation to claimed and binds the
// responder. Exactly one of two concurrent calls on the same id
// succeeds; the loser gets apperr.AlreadyClaimed. The bound responder
// is never overwritten.
func (r *DonationRepo) Claim(_ context.Context, id int64, resp domain.Responder) (domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return domain.Donation{}, apperr.NotFound
	}
	if d.Claimed {
		return domain.Donation{}, apperr.AlreadyClaimed
	}

	d.Claimed = true
	d.Responder = &resp
	r.byID[id] = d
	return d, nil
}
