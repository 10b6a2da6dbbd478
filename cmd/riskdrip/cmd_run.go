package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/riskdrip/internal/drip"
	"github.com/xtding233/riskdrip/internal/strategy"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a single strategy",
		Long: `Simulate one strategy built from the default parameters and any flags given.

Example:
  riskdrip run --allocation 0.5 --rounds 500 --seed 41 --events`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			label, _ := cmd.Flags().GetString("label")
			cfg, err := strategy.Merge(a.envOverrides(), runFlags(cmd))
			if err != nil {
				return err
			}

			res := drip.Run(cfg, drip.NewSource(cfg))
			run := strategy.Run{Label: label, Config: cfg, Result: res, Summary: drip.Summarize(res)}
			a.log.Info("strategy simulated",
				zap.String("strategy", label),
				zap.Int("rounds", cfg.Rounds),
				zap.Float64("final", run.Summary.Final),
				zap.Int("tenners", run.Summary.Tenners),
			)
			return writeRuns(cmd, []strategy.Run{run})
		},
	}

	cmd.Flags().String("label", "run", "Label used in reports")
	cmd.Flags().Float64("starting-balance", 0, "Starting portfolio value (default 800)")
	cmd.Flags().Float64("allocation", 0, "Fraction of the balance risked each normal round (default 1.0)")
	cmd.Flags().Float64("missile", 0, "Probability a round wins (default 0.15)")
	cmd.Flags().Float64("tenner", 0, "Probability a win is a tenner (default 0.04)")
	cmd.Flags().Float64("gain-min", 0, "Lowest multiplier on a regular win (default 1.0)")
	cmd.Flags().Float64("gain-max", 0, "Highest multiplier on a regular win (default 2.5)")
	cmd.Flags().Float64("tenner-gain", 0, "Multiplier on a tenner (default 8.0)")
	cmd.Flags().Float64("loss-cap", 0, "Largest fraction of the stake lost on a losing round (default 0.15)")
	cmd.Flags().Float64("cashout", 0, "Fraction of the balance kept after a tenner (default 0.80)")
	cmd.Flags().Float64("cooldown", 0, "Fraction risked in the round after a tenner (default 0.15)")
	cmd.Flags().Int("rounds", 0, "Number of rounds (default 1000, env RISKDRIP_ROUNDS)")
	cmd.Flags().Uint64("seed", 0, "Random seed (env RISKDRIP_SEED; unset means non-reproducible)")
	cmd.Flags().Bool("events", false, "Record and print tenner events")
	cmd.Flags().String("csv", "", "Write the balance trajectory as CSV to this file")

	return cmd
}

// runFlags turns the flags the user set into a configuration layer.
func runFlags(cmd *cobra.Command) strategy.RawConfig {
	o := flagOverrides(cmd)
	floats := []struct {
		flag string
		dst  **float64
	}{
		{"starting-balance", &o.StartingBalance},
		{"allocation", &o.BaseAllocation},
		{"missile", &o.MissileProbability},
		{"tenner", &o.TennerProbability},
		{"tenner-gain", &o.TennerGain},
		{"loss-cap", &o.LossCap},
		{"cashout", &o.Cashout},
		{"cooldown", &o.CooldownAllocation},
	}
	for _, f := range floats {
		if cmd.Flags().Changed(f.flag) {
			v, _ := cmd.Flags().GetFloat64(f.flag)
			*f.dst = &v
		}
	}

	if cmd.Flags().Changed("gain-min") || cmd.Flags().Changed("gain-max") {
		def := drip.DefaultConfig().GainRange
		lo, hi := def.Min, def.Max
		if cmd.Flags().Changed("gain-min") {
			lo, _ = cmd.Flags().GetFloat64("gain-min")
		}
		if cmd.Flags().Changed("gain-max") {
			hi, _ = cmd.Flags().GetFloat64("gain-max")
		}
		o.GainRange = []float64{lo, hi}
	}
	if cmd.Flags().Changed("events") {
		v, _ := cmd.Flags().GetBool("events")
		o.LogEvents = &v
	}
	return o
}
