package scoring

import (
	"sort"

	"bloomnet-dispatch/internal/apperr"
	"bloomnet-dispatch/internal/domain"
)

// Urgency tiers derived from a donation's remaining freshness window.
const (
	UrgencyHigh   = 5
	UrgencyMedium = 3
	UrgencyLow    = 1
)

// Urgency maps an expiry window in hours to a coarse urgency tier.
// Both boundaries are inclusive: 1 hour left is already high urgency.
func Urgency(expiryHours int) int {
	switch {
	case expiryHours <= 1:
		return UrgencyHigh
	case expiryHours <= 3:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// Score rates a responder for a claim of the given urgency. Proximity
// carries the highest weight, then low workload, then rating.
func Score(r domain.Responder, urgency int) float64 {
	return (10-r.DistanceKm)*3 + float64(5-r.Workload)*2 + r.Rating + float64(urgency)
}

// Ranked pairs a responder with its computed score.
type Ranked struct {
	Responder domain.Responder
	Score     float64
}

// Rank scores the whole pool and orders it best-first. The sort is
// stable: on an exact tie the responder listed earlier in the pool wins.
func Rank(pool []domain.Responder, urgency int) []Ranked {
	ranked := make([]Ranked, 0, len(pool))
	for _, r := range pool {
		ranked = append(ranked, Ranked{Responder: r, Score: Score(r, urgency)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Best returns the top-ranked responder for the given urgency.
// Returns apperr.EmptyPool when there is nobody to score.
func Best(pool []domain.Responder, urgency int) (domain.Responder, error) {
	if len(pool) == 0 {
		return domain.Responder{}, apperr.EmptyPool
	}
	return Rank(pool, urgency)[0].Responder, nil
}
