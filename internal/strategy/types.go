// types.go
package strategy

import "github.com/xtding233/riskdrip/internal/drip"

// RawConfig is one layer of simulation settings as written in YAML.
// Nil fields leave the layer below untouched.
type RawConfig struct {
	StartingBalance    *float64  `yaml:"starting_balance,omitempty" json:"starting_balance,omitempty"`
	BaseAllocation     *float64  `yaml:"base_allocation,omitempty" json:"base_allocation,omitempty"`
	MissileProbability *float64  `yaml:"missile_probability,omitempty" json:"missile_probability,omitempty"`
	TennerProbability  *float64  `yaml:"tenner_probability,omitempty" json:"tenner_probability,omitempty"`
	GainRange          []float64 `yaml:"gain_range,omitempty,flow" json:"gain_range,omitempty"` // [min, max]
	TennerGain         *float64  `yaml:"tenner_gain,omitempty" json:"tenner_gain,omitempty"`
	LossCap            *float64  `yaml:"loss_cap,omitempty" json:"loss_cap,omitempty"`
	Cashout            *float64  `yaml:"cashout,omitempty" json:"cashout,omitempty"`
	CooldownAllocation *float64  `yaml:"cooldown_allocation,omitempty" json:"cooldown_allocation,omitempty"`
	Rounds             *int      `yaml:"rounds,omitempty" json:"rounds,omitempty"`
	Seed               *uint64   `yaml:"seed,omitempty" json:"seed,omitempty"`
	LogEvents          *bool     `yaml:"log_events,omitempty" json:"log_events,omitempty"`
}

// Entry is a labelled strategy inside a book.
type Entry struct {
	Label     string `yaml:"label" json:"label"`
	RawConfig `yaml:",inline"`
}

// Book is a set of strategies compared under shared defaults.
type Book struct {
	Defaults   RawConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Strategies []Entry   `yaml:"strategies" json:"strategies"`
}

// Resolved is an entry merged down to a runnable configuration.
type Resolved struct {
	Label  string
	Config drip.Config
}

// Run is one strategy's simulated outcome.
type Run struct {
	Label   string       `json:"label"`
	Config  drip.Config  `json:"config"`
	Result  drip.Result  `json:"result"`
	Summary drip.Summary `json:"summary"`
}

// MonteCarloRun is one strategy's aggregate over many trials.
type MonteCarloRun struct {
	Label  string                `json:"label"`
	Config drip.Config           `json:"config"`
	Seed   uint64                `json:"seed"`
	Stats  drip.MonteCarloResult `json:"stats"`
}

func ptr[T any](v T) *T { return &v }
