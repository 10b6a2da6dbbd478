package strategy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/xtding233/riskdrip/internal/drip"
)

var (
	ErrNoStrategies   = errors.New("strategy book has no strategies")
	ErrEmptyLabel     = errors.New("strategy label must not be empty")
	ErrDuplicateLabel = errors.New("duplicate strategy label")
)

// ValidationError lists every problem found in one configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %s", strings.Join(e.Problems, "; "))
}

// Validate rejects configurations the simulator would run but that do not
// describe a meaningful strategy. Out-of-range values are never clamped.
func Validate(cfg drip.Config) error {
	var errs []string

	fields := []struct {
		name string
		v    float64
	}{
		{"starting_balance", cfg.StartingBalance},
		{"base_allocation", cfg.BaseAllocation},
		{"missile_probability", cfg.MissileProbability},
		{"tenner_probability", cfg.TennerProbability},
		{"gain_range.min", cfg.GainRange.Min},
		{"gain_range.max", cfg.GainRange.Max},
		{"tenner_gain", cfg.TennerGain},
		{"loss_cap", cfg.LossCap},
		{"cashout", cfg.Cashout},
		{"cooldown_allocation", cfg.CooldownAllocation},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			errs = append(errs, f.name+" must be finite")
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}

	if cfg.StartingBalance <= 0 {
		errs = append(errs, "starting_balance must be > 0")
	}
	if cfg.BaseAllocation <= 0 || cfg.BaseAllocation > 1 {
		errs = append(errs, "base_allocation must be in (0,1]")
	}
	if cfg.CooldownAllocation <= 0 || cfg.CooldownAllocation > 1 {
		errs = append(errs, "cooldown_allocation must be in (0,1]")
	}
	if cfg.MissileProbability < 0 || cfg.MissileProbability > 1 {
		errs = append(errs, "missile_probability must be in [0,1]")
	}
	if cfg.TennerProbability < 0 || cfg.TennerProbability > 1 {
		errs = append(errs, "tenner_probability must be in [0,1]")
	}
	if cfg.GainRange.Min < 0 {
		errs = append(errs, "gain_range.min must be >= 0")
	}
	if cfg.GainRange.Min > cfg.GainRange.Max {
		errs = append(errs, "gain_range.min must be <= gain_range.max")
	}
	if cfg.TennerGain < 1 {
		errs = append(errs, "tenner_gain must be >= 1")
	}
	// losses are drawn from [0.01, loss_cap)
	if cfg.LossCap < drip.MinLossFraction || cfg.LossCap > 1 {
		errs = append(errs, fmt.Sprintf("loss_cap must be in [%g,1]", drip.MinLossFraction))
	}
	if cfg.Cashout <= 0 || cfg.Cashout > 1 {
		errs = append(errs, "cashout must be in (0,1]")
	}
	if cfg.Rounds < 0 {
		errs = append(errs, "rounds must be >= 0")
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

// check enforces book-level rules: at least one strategy, unique non-empty labels.
func (b Book) check() error {
	if len(b.Strategies) == 0 {
		return ErrNoStrategies
	}
	seen := make(map[string]bool, len(b.Strategies))
	for i, e := range b.Strategies {
		if strings.TrimSpace(e.Label) == "" {
			return fmt.Errorf("strategies[%d]: %w", i, ErrEmptyLabel)
		}
		if seen[e.Label] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, e.Label)
		}
		seen[e.Label] = true
	}
	return nil
}
