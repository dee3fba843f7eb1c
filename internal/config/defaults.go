package config

import "time"

const defaultPort = 8080

var defaultDispatch = Dispatch{
	EscalationDelay:   2 * time.Second,
	AerialSignalDelay: 1 * time.Second,
	DisasterMarkers:   []string{"Amritsar", "Disaster"},
	NotificationCap:   10,
}

var defaultPprof = Pprof{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       5,
	Burst:      10,
	TTL:        time.Minute,
	MaxBuckets: 1024,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDispatch returns the default dispatch settings.
func DefaultDispatch() Dispatch {
	d := defaultDispatch
	d.DisasterMarkers = append([]string(nil), defaultDispatch.DisasterMarkers...)
	return d
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof settings.
func DefaultPprof() Pprof {
	return defaultPprof
}
