package escalation

import "strings"

// Channel is the delivery channel selected for a claimed donation.
type Channel string

// List of delivery channels
const (
	ChannelGround Channel = "ground"
	ChannelAerial Channel = "aerial"
)

// Detector classifies donation locations against a fixed set of
// disaster-zone marker substrings. Matching is a case-sensitive
// substring check, not a geofence lookup.
type Detector struct {
	markers []string
}

// NewDetector creates a Detector with the given marker substrings.
func NewDetector(markers []string) *Detector {
	return &Detector{markers: append([]string(nil), markers...)}
}

// IsDisasterZone reports whether the location label names a disaster zone.
func (d *Detector) IsDisasterZone(location string) bool {
	for _, m := range d.markers {
		if m != "" && strings.Contains(location, m) {
			return true
		}
	}
	return false
}

// Classify selects the delivery channel for the location. The
// classification is total: every label maps to exactly one channel.
func (d *Detector) Classify(location string) Channel {
	if d.IsDisasterZone(location) {
		return ChannelAerial
	}
	return ChannelGround
}
