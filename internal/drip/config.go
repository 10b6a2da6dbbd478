package drip

// GainRange bounds the multiplicative factor applied to a non-tenner missile.
type GainRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Config describes one simulation run. It is never mutated by the simulator.
type Config struct {
	StartingBalance    float64   `json:"starting_balance"`
	BaseAllocation     float64   `json:"base_allocation"`     // fraction of balance risked in a normal round
	MissileProbability float64   `json:"missile_probability"` // chance a round wins at all
	TennerProbability  float64   `json:"tenner_probability"`  // conditional on a missile
	GainRange          GainRange `json:"gain_range"`
	TennerGain         float64   `json:"tenner_gain"`
	LossCap            float64   `json:"loss_cap"`            // upper bound of the loss fraction on a losing round
	Cashout            float64   `json:"cashout"`             // fraction of the balance kept after a tenner
	CooldownAllocation float64   `json:"cooldown_allocation"` // fraction risked in the round after a tenner
	Rounds             int       `json:"rounds"`
	Seed               *uint64   `json:"seed,omitempty"`
	LogEvents          bool      `json:"log_events"`
}

// DefaultConfig returns the baseline RiskDrip parameters.
func DefaultConfig() Config {
	return Config{
		StartingBalance:    800,
		BaseAllocation:     1.0,
		MissileProbability: 0.15,
		TennerProbability:  0.04,
		GainRange:          GainRange{Min: 1.0, Max: 2.5},
		TennerGain:         8.0,
		LossCap:            0.15,
		Cashout:            0.80,
		CooldownAllocation: 0.15,
		Rounds:             1000,
	}
}

// WithSeed returns a copy of c seeded with seed.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}
