package strategy

import (
	"fmt"

	"github.com/xtding233/riskdrip/internal/drip"
)

// Overlay returns a with every field set in b replacing it.
// Slices (GainRange) are replaced, never appended.
func Overlay(a, b RawConfig) RawConfig {
	out := a
	if b.StartingBalance != nil {
		out.StartingBalance = b.StartingBalance
	}
	if b.BaseAllocation != nil {
		out.BaseAllocation = b.BaseAllocation
	}
	if b.MissileProbability != nil {
		out.MissileProbability = b.MissileProbability
	}
	if b.TennerProbability != nil {
		out.TennerProbability = b.TennerProbability
	}
	if len(b.GainRange) > 0 {
		out.GainRange = append([]float64(nil), b.GainRange...)
	}
	if b.TennerGain != nil {
		out.TennerGain = b.TennerGain
	}
	if b.LossCap != nil {
		out.LossCap = b.LossCap
	}
	if b.Cashout != nil {
		out.Cashout = b.Cashout
	}
	if b.CooldownAllocation != nil {
		out.CooldownAllocation = b.CooldownAllocation
	}
	if b.Rounds != nil {
		out.Rounds = b.Rounds
	}
	if b.Seed != nil {
		out.Seed = b.Seed
	}
	if b.LogEvents != nil {
		out.LogEvents = b.LogEvents
	}
	return out
}

// apply writes the set fields of r onto cfg.
func (r RawConfig) apply(cfg drip.Config) (drip.Config, error) {
	if r.StartingBalance != nil {
		cfg.StartingBalance = *r.StartingBalance
	}
	if r.BaseAllocation != nil {
		cfg.BaseAllocation = *r.BaseAllocation
	}
	if r.MissileProbability != nil {
		cfg.MissileProbability = *r.MissileProbability
	}
	if r.TennerProbability != nil {
		cfg.TennerProbability = *r.TennerProbability
	}
	if len(r.GainRange) > 0 {
		if len(r.GainRange) != 2 {
			return drip.Config{}, fmt.Errorf("gain_range must be [min, max], got %d values", len(r.GainRange))
		}
		cfg.GainRange = drip.GainRange{Min: r.GainRange[0], Max: r.GainRange[1]}
	}
	if r.TennerGain != nil {
		cfg.TennerGain = *r.TennerGain
	}
	if r.LossCap != nil {
		cfg.LossCap = *r.LossCap
	}
	if r.Cashout != nil {
		cfg.Cashout = *r.Cashout
	}
	if r.CooldownAllocation != nil {
		cfg.CooldownAllocation = *r.CooldownAllocation
	}
	if r.Rounds != nil {
		cfg.Rounds = *r.Rounds
	}
	if r.Seed != nil {
		seed := *r.Seed
		cfg.Seed = &seed
	}
	if r.LogEvents != nil {
		cfg.LogEvents = *r.LogEvents
	}
	return cfg, nil
}

// Merge resolves layers over drip.DefaultConfig, later layers winning,
// and validates the result.
func Merge(layers ...RawConfig) (drip.Config, error) {
	var merged RawConfig
	for _, l := range layers {
		merged = Overlay(merged, l)
	}
	cfg, err := merged.apply(drip.DefaultConfig())
	if err != nil {
		return drip.Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return drip.Config{}, err
	}
	return cfg, nil
}

// Resolve merges every entry of the book as default ← book defaults ←
// entry ← overrides. It fails on the first invalid entry.
func (b Book) Resolve(overrides RawConfig) ([]Resolved, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	out := make([]Resolved, 0, len(b.Strategies))
	for _, e := range b.Strategies {
		cfg, err := Merge(b.Defaults, e.RawConfig, overrides)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", e.Label, err)
		}
		out = append(out, Resolved{Label: e.Label, Config: cfg})
	}
	return out, nil
}

// FromConfig converts a resolved configuration back into a full layer.
func FromConfig(cfg drip.Config) RawConfig {
	raw := RawConfig{
		StartingBalance:    ptr(cfg.StartingBalance),
		BaseAllocation:     ptr(cfg.BaseAllocation),
		MissileProbability: ptr(cfg.MissileProbability),
		TennerProbability:  ptr(cfg.TennerProbability),
		GainRange:          []float64{cfg.GainRange.Min, cfg.GainRange.Max},
		TennerGain:         ptr(cfg.TennerGain),
		LossCap:            ptr(cfg.LossCap),
		Cashout:            ptr(cfg.Cashout),
		CooldownAllocation: ptr(cfg.CooldownAllocation),
		Rounds:             ptr(cfg.Rounds),
		LogEvents:          ptr(cfg.LogEvents),
	}
	if cfg.Seed != nil {
		raw.Seed = ptr(*cfg.Seed)
	}
	return raw
}
