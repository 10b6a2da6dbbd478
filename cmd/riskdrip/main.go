package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/riskdrip/internal/config"
	"github.com/xtding233/riskdrip/internal/logging"
	"github.com/xtding233/riskdrip/internal/strategy"
)

var version = "0.1.0-dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	settings config.Settings
	log      *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "riskdrip",
		Short: "RiskDrip - repeated capital allocation simulator",
		Long: `riskdrip simulates a disciplined options-style allocation strategy.

Each round a fraction of the portfolio is risked. Most rounds lose a little,
some win a multiple ("missiles"), and rare "tenners" pay out big, after which
profits are cashed out and exposure is cut for one round.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				s.LogLevel, _ = cmd.Flags().GetString("log-level")
			}
			a.settings = s
			a.log = logging.NewLogger(s.LogLevel, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error (env RISKDRIP_LOG_LEVEL)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(a),
		newCompareCmd(a),
		newMonteCarloCmd(a),
		newStrategiesCmd(a),
	)
	return rootCmd
}

// loadBook returns the book named by --file, then RISKDRIP_STRATEGIES,
// falling back to the presets. The returned path is empty for presets.
func (a *app) loadBook(cmd *cobra.Command, loader *strategy.Loader) (strategy.Book, string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = a.settings.StrategyFile
	}
	if path == "" {
		return strategy.Presets(), "", nil
	}
	b, err := loader.Load(path)
	if err != nil {
		return strategy.Book{}, path, err
	}
	return b, path, nil
}

// envOverrides is the environment layer, applied above the book.
func (a *app) envOverrides() strategy.RawConfig {
	return strategy.RawConfig{Rounds: a.settings.Rounds, Seed: a.settings.Seed}
}

// addOverrideFlags registers the flags shared by book-driven commands.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "YAML strategy book (default: built-in presets, env RISKDRIP_STRATEGIES)")
	cmd.Flags().Int("rounds", 0, "Override the number of rounds for every strategy")
	cmd.Flags().Uint64("seed", 0, "Override the random seed for every strategy")
}

// flagOverrides returns a layer holding only the flags the user set.
func flagOverrides(cmd *cobra.Command) strategy.RawConfig {
	var o strategy.RawConfig
	if cmd.Flags().Changed("rounds") {
		v, _ := cmd.Flags().GetInt("rounds")
		o.Rounds = &v
	}
	if cmd.Flags().Changed("seed") {
		v, _ := cmd.Flags().GetUint64("seed")
		o.Seed = &v
	}
	return o
}

// overrides stacks flags above the environment.
func (a *app) overrides(cmd *cobra.Command) strategy.RawConfig {
	return strategy.Overlay(a.envOverrides(), flagOverrides(cmd))
}
