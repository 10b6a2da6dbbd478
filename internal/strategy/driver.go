package strategy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"

	"github.com/xtding233/riskdrip/internal/drip"
)

// Driver runs every strategy of a book, one after another.
type Driver struct {
	log *zap.Logger
}

// NewDriver returns a driver logging to log. A nil logger discards output.
func NewDriver(log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{log: log}
}

// Compare resolves the whole book before simulating anything, then runs
// each strategy with its own freshly seeded source. Strategies sharing a
// seed therefore see the same random sequence.
func (d *Driver) Compare(b Book, overrides RawConfig) ([]Run, error) {
	resolved, err := b.Resolve(overrides)
	if err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(resolved))
	for _, r := range resolved {
		res := drip.Run(r.Config, drip.NewSource(r.Config))
		sum := drip.Summarize(res)

		for _, e := range res.Events {
			d.log.Debug("tenner hit",
				zap.String("strategy", r.Label),
				zap.Int("round", e.Round),
				zap.Float64("pre_cashout", e.PreCashout),
				zap.Float64("post_cashout", e.PostCashout),
			)
		}
		d.log.Info("strategy simulated",
			zap.String("strategy", r.Label),
			zap.Int("rounds", r.Config.Rounds),
			zap.Float64("final", sum.Final),
			zap.Float64("peak", sum.Peak),
			zap.Int("tenners", sum.Tenners),
		)

		runs = append(runs, Run{Label: r.Label, Config: r.Config, Result: res, Summary: sum})
	}
	return runs, nil
}

// MonteCarlo aggregates trials runs per strategy. Strategies without a seed
// get a fresh random one, reported in the result so the batch can be replayed.
func (d *Driver) MonteCarlo(b Book, overrides RawConfig, trials int) ([]MonteCarloRun, error) {
	resolved, err := b.Resolve(overrides)
	if err != nil {
		return nil, err
	}

	out := make([]MonteCarloRun, 0, len(resolved))
	for _, r := range resolved {
		var seed uint64
		if r.Config.Seed != nil {
			seed = *r.Config.Seed
		} else {
			seed, err = newSeed()
			if err != nil {
				return nil, err
			}
		}
		stats := drip.RunMonteCarlo(r.Config, trials, seed)
		d.log.Info("monte carlo finished",
			zap.String("strategy", r.Label),
			zap.Int("trials", trials),
			zap.Uint64("seed", seed),
			zap.Float64("median_final", stats.FinalBalance.P50),
			zap.Float64("below_start", stats.BelowStart),
		)
		out = append(out, MonteCarloRun{Label: r.Label, Config: r.Config, Seed: seed, Stats: stats})
	}
	return out, nil
}

func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
