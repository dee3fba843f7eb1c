package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port      int `env:"PORT"`
	Dispatch  Dispatch
	RateLimit RateLimit
	Pprof     Pprof
}

// Dispatch stores assignment & dispatch engine settings. The two
// delays are fixed configuration, not user-tunable per request.
type Dispatch struct {
	EscalationDelay   time.Duration `env:"ESCALATION_DELAY"`
	AerialSignalDelay time.Duration `env:"AERIAL_SIGNAL_DELAY"`
	DisasterMarkers   []string      `env:"DISASTER_MARKERS" envSeparator:","`
	NotificationCap   int           `env:"NOTIFICATION_CAP"`
}

// RateLimit stores token bucket limiter settings for mutating routes.
type RateLimit struct {
	Enabled    bool          `env:"RATE_LIMIT_ENABLED"`
	Rate       float64       `env:"RATE_LIMIT_RATE"`
	Burst      int           `env:"RATE_LIMIT_BURST"`
	TTL        time.Duration `env:"RATE_LIMIT_TTL"`
	MaxBuckets int           `env:"RATE_LIMIT_MAX_BUCKETS"`
}

// Pprof stores the debug profiling endpoint settings. Remote access
// requires basic auth credentials.
type Pprof struct {
	Enabled bool   `env:"PPROF_ENABLED"`
	Addr    string `env:"PPROF_ADDR"`
	User    string `env:"PPROF_USER"`
	Pass    string `env:"PPROF_PASS"`
}

// Load reads configuration in order: defaults → .env (if present) →
// environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		Dispatch:  DefaultDispatch(),
		RateLimit: DefaultRateLimit(),
		Pprof:     DefaultPprof(),
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Dispatch.EscalationDelay <= 0 {
		return fmt.Errorf("invalid escalation delay: %s", c.Dispatch.EscalationDelay)
	}
	if c.Dispatch.AerialSignalDelay <= 0 {
		return fmt.Errorf("invalid aerial signal delay: %s", c.Dispatch.AerialSignalDelay)
	}
	if c.Dispatch.NotificationCap <= 0 {
		return fmt.Errorf("invalid notification cap: %d", c.Dispatch.NotificationCap)
	}
	if c.Pprof.Enabled && c.Pprof.Addr == "" {
		return fmt.Errorf("pprof enabled but no addr set")
	}
	return nil
}
