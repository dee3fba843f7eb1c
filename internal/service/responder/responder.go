package responder

import (
	"context"
	"strings"

	"bloomnet-dispatch/internal/apperr"
	"bloomnet-dispatch/internal/domain"
)

// Service coordinates responder pool management. The pool is reference
// data for the dispatch engine: scoring reads it, never writes it.
type Service struct {
	repo responderRepository
}

// NewService creates and configures a responder Service.
func NewService(r responderRepository) *Service {
	return &Service{repo: r}
}

// validateCreate validates a responder for registration.
func validateCreate(r *domain.Responder) error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Invalid
	}
	if r.DistanceKm < 0 {
		return apperr.Invalid
	}
	if r.Workload < 0 {
		return apperr.Invalid
	}
	if r.Rating < 0 || r.Rating > 5 {
		return apperr.Invalid
	}
	if r.Vehicle == "" {
		r.Vehicle = domain.VehicleBike
	}
	if !r.Vehicle.Valid() {
		return apperr.Invalid
	}
	return nil
}

// Get retrieves a responder by its ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Responder, error) {
	return s.repo.Get(ctx, id)
}

// List returns the pool in its stable iteration order.
func (s *Service) List(ctx context.Context) ([]domain.Responder, error) {
	return s.repo.List(ctx)
}

// Create registers a new responder and returns its generated ID.
func (s *Service) Create(ctx context.Context, r *domain.Responder) (int64, error) {
	if err := validateCreate(r); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, *r)
}
