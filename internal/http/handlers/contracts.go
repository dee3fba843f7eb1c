package handlers

import (
	"context"

	"bloomnet-dispatch/internal/domain"
	"bloomnet-dispatch/internal/notify"
	"bloomnet-dispatch/internal/service/dispatch"
	"bloomnet-dispatch/internal/service/responder"
)

type dispatchUsecase interface {
	Submit(ctx context.Context, draft domain.DonationDraft) (domain.Donation, error)
	Claim(ctx context.Context, donationID int64) (domain.Donation, error)
	Donations(ctx context.Context) ([]dispatch.DonationView, error)
}

// NewDispatchUsecase wires the dispatch Service into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}

type responderUsecase interface {
	Get(ctx context.Context, id int64) (domain.Responder, error)
	List(ctx context.Context) ([]domain.Responder, error)
	Create(ctx context.Context, r *domain.Responder) (int64, error)
}

// NewResponderUsecase wires the responder Service into a responderUsecase.
func NewResponderUsecase(svc *responder.Service) responderUsecase {
	return svc
}

type notificationSource interface {
	Recent() []domain.Notification
}

// NewNotificationSource wires the notification stream into a notificationSource.
func NewNotificationSource(s *notify.Stream) notificationSource {
	return s
}

type aerialSignal interface {
	Active() bool
}

// NewAerialSignal wires the drone signal into an aerialSignal.
func NewAerialSignal(s *notify.Signal) aerialSignal {
	return s
}
