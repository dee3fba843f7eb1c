package dispatch

import (
	"context"
	"fmt"
	"strings"

	"bloomnet-dispatch/internal/apperr"
	"bloomnet-dispatch/internal/config"
	"bloomnet-dispatch/internal/domain"
	"bloomnet-dispatch/internal/escalation"
	"bloomnet-dispatch/internal/geo"
	"bloomnet-dispatch/internal/logx"
	"bloomnet-dispatch/internal/notify"
	"bloomnet-dispatch/internal/scoring"
)

// Default attributes applied to a submitted donation when the donor
// leaves them out.
const (
	DefaultUnit     = "Plates"
	DefaultPackType = "Meal Pack"
	DefaultDonor    = "Anonymous Donor"

	HubName = "Simulated Central Hub"
	HubLat  = 30.7333
	HubLon  = 76.7794
)

// Safety derivation: a short expiry window downgrades the status and
// the safety score.
const (
	shareSoonExpiryHours = 2
	safetyScoreFresh     = 95
	safetyScoreShareSoon = 70
)

// Service is the assignment & dispatch engine. It owns the claim
// lifecycle of donations, ranks responders against claims, escalates
// disaster-zone donations to aerial delivery and feeds the operator
// notification stream.
type Service struct {
	repo     DonationRepository
	pool     ResponderPool
	detector *escalation.Detector
	stream   Notifier
	sched    TaskScheduler
	signal   *notify.Signal
	cfg      config.Dispatch
	logger   logx.Logger

	claimsAssigned Counter
	escalations    Counter
}

// NewService creates and configures the dispatch engine.
func NewService(
	repo DonationRepository,
	pool ResponderPool,
	detector *escalation.Detector,
	stream Notifier,
	sched TaskScheduler,
	signal *notify.Signal,
	cfg config.Dispatch,
	logger logx.Logger,
	claimsAssigned, escalations Counter,
) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:           repo,
		pool:           pool,
		detector:       detector,
		stream:         stream,
		sched:          sched,
		signal:         signal,
		cfg:            cfg,
		logger:         logger,
		claimsAssigned: claimsAssigned,
		escalations:    escalations,
	}
}

func validateDraft(d *domain.DonationDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return apperr.Invalid
	}
	if strings.TrimSpace(d.Quantity) == "" {
		return apperr.Invalid
	}
	if d.ExpiryHours < 0 {
		return apperr.Invalid
	}
	if d.Category == "" {
		d.Category = domain.CategoryCooked
	}
	if !d.Category.Valid() {
		return apperr.Invalid
	}
	return nil
}

// Submit accepts a donor-submitted draft, fills defaults, derives the
// freshness status and safety score from the expiry window and stores
// the donation.
func (s *Service) Submit(ctx context.Context, draft domain.DonationDraft) (domain.Donation, error) {
	if err := validateDraft(&draft); err != nil {
		return domain.Donation{}, err
	}

	if draft.Unit == "" {
		draft.Unit = DefaultUnit
	}
	if draft.PackType == "" {
		draft.PackType = DefaultPackType
	}
	if draft.Donor == "" {
		draft.Donor = DefaultDonor
	}
	if draft.Location == "" {
		draft.Location = HubName
		draft.Lat = HubLat
		draft.Lon = HubLon
	}

	status := domain.StatusFresh
	safety := safetyScoreFresh
	if draft.ExpiryHours <= shareSoonExpiryHours {
		status = domain.StatusShareSoon
		safety = safetyScoreShareSoon
	}

	created, err := s.repo.Create(ctx, domain.Donation{
		Name:        draft.Name,
		Category:    draft.Category,
		Quantity:    draft.Quantity,
		Unit:        draft.Unit,
		PackType:    draft.PackType,
		Donor:       draft.Donor,
		Location:    draft.Location,
		Lat:         draft.Lat,
		Lon:         draft.Lon,
		ExpiryHours: draft.ExpiryHours,
		Status:      status,
		SafetyScore: safety,
	})
	if err != nil {
		return domain.Donation{}, err
	}

	s.stream.Push(fmt.Sprintf("Food uploaded: %s. Safety check: %s", created.Name, created.Status))
	s.logger.Info("donation submitted",
		logx.String("event", "donation_submitted"),
		logx.Int64("donation_id", created.ID),
		logx.String("status", string(created.Status)),
		logx.Int("safety_score", created.SafetyScore),
	)
	return created, nil
}

// Claim binds the top-scoring responder to the donation and schedules
// the escalation check. Errors are synchronous: a failed claim changes
// no state, schedules nothing and emits no notification.
func (s *Service) Claim(ctx context.Context, donationID int64) (domain.Donation, error) {
	d, err := s.repo.Get(ctx, donationID)
	if err != nil {
		return domain.Donation{}, err
	}
	if d.Claimed {
		return domain.Donation{}, apperr.AlreadyClaimed
	}

	pool, err := s.pool.List(ctx)
	if err != nil {
		return domain.Donation{}, err
	}
	best, err := scoring.Best(pool, scoring.Urgency(d.ExpiryHours))
	if err != nil {
		return domain.Donation{}, err
	}

	claimed, err := s.repo.Claim(ctx, donationID, best)
	if err != nil {
		return domain.Donation{}, err
	}

	s.stream.Push(fmt.Sprintf("Food claimed! Volunteer %s assigned.", best.Name))
	if s.claimsAssigned != nil {
		s.claimsAssigned.Inc()
	}
	s.logger.Info("responder assigned",
		logx.String("event", "responder_assigned"),
		logx.Int64("donation_id", claimed.ID),
		logx.Int64("responder_id", best.ID),
		logx.String("responder", best.Name),
		logx.String("vehicle", string(best.Vehicle)),
	)

	s.sched.After(s.cfg.EscalationDelay, "escalation-check", func() {
		s.runEscalationCheck(claimed, best)
	})

	return claimed, nil
}

// runEscalationCheck selects the delivery channel for a claimed
// donation. The classification is total, so this path cannot fail.
func (s *Service) runEscalationCheck(d domain.Donation, best domain.Responder) {
	if s.detector.Classify(d.Location) == escalation.ChannelAerial {
		s.stream.Push(fmt.Sprintf("Disaster Zone detected in %s! Activating drone delivery...", d.Location))
		if s.escalations != nil {
			s.escalations.Inc()
		}
		s.logger.Warn("disaster zone escalation",
			logx.String("event", "aerial_escalation"),
			logx.Int64("donation_id", d.ID),
			logx.String("location", d.Location),
		)

		s.sched.After(s.cfg.AerialSignalDelay, "aerial-signal", func() {
			s.signal.Raise()
		})
		return
	}

	s.stream.Push(fmt.Sprintf("%s is on the way with %s.", best.Name, best.Vehicle))
	s.logger.Info("ground dispatch",
		logx.String("event", "ground_dispatch"),
		logx.Int64("donation_id", d.ID),
		logx.Int64("responder_id", best.ID),
	)
}

// DonationView pairs a donation with its distance from the central hub.
type DonationView struct {
	domain.Donation
	HubDistanceKm float64
}

// Donations returns every donation, newest first, annotated with the
// great-circle distance from the central hub for list rendering.
func (s *Service) Donations(ctx context.Context) ([]DonationView, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DonationView, 0, len(list))
	for _, d := range list {
		out = append(out, DonationView{
			Donation:      d,
			HubDistanceKm: geo.Distance(HubLat, HubLon, d.Lat, d.Lon),
		})
	}
	return out, nil
}
