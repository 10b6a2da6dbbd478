// Package config loads process settings for the riskdrip CLI from the
// environment. Command-line flags take precedence over these values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds environment-provided defaults.
type Settings struct {
	// LogLevel is "debug", "info" (default), "warn" or "error".
	LogLevel string `env:"RISKDRIP_LOG_LEVEL" envDefault:"info"`

	// Rounds, when set, overrides the round count of every strategy.
	Rounds *int `env:"RISKDRIP_ROUNDS"`

	// Seed, when set, makes every run reproducible.
	Seed *uint64 `env:"RISKDRIP_SEED"`

	// StrategyFile points at a YAML strategy book used instead of the presets.
	StrategyFile string `env:"RISKDRIP_STRATEGIES"`

	// Trials is the Monte Carlo batch size.
	Trials int `env:"RISKDRIP_TRIALS" envDefault:"500"`
}

// Load reads settings from the process environment.
func Load() (Settings, error) {
	return parse(env.Options{})
}

// LoadFrom reads settings from the given variables only.
func LoadFrom(vars map[string]string) (Settings, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Rounds != nil && *s.Rounds < 0 {
		return Settings{}, fmt.Errorf("RISKDRIP_ROUNDS must be >= 0, got %d", *s.Rounds)
	}
	if s.Trials < 0 {
		return Settings{}, fmt.Errorf("RISKDRIP_TRIALS must be >= 0, got %d", s.Trials)
	}
	return s, nil
}
