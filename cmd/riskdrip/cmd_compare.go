package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/riskdrip/internal/strategy"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the strategies of a book under a shared seed",
		Long: `Run every strategy of a YAML strategy book (or the built-in presets)
and print a summary table and each strategy's tenner events.

With --watch the book file is polled and the comparison reruns whenever it
changes, until interrupted.

Example:
  riskdrip compare --file strategies.yaml --csv balances.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			loader := strategy.NewLoader()
			driver := strategy.NewDriver(a.log)

			render := func() error {
				book, _, err := a.loadBook(cmd, loader)
				if err != nil {
					return err
				}
				runs, err := driver.Compare(book, a.overrides(cmd))
				if err != nil {
					return err
				}
				return writeRuns(cmd, runs)
			}

			if !watch {
				return render()
			}

			_, path, err := a.loadBook(cmd, loader)
			if err != nil {
				return err
			}
			if path == "" {
				return fmt.Errorf("--watch needs a strategy book (--file or RISKDRIP_STRATEGIES)")
			}
			interval, _ := cmd.Flags().GetDuration("interval")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, path, interval, loader, render)
		},
	}

	addOverrideFlags(cmd)
	cmd.Flags().String("csv", "", "Write all trajectories as CSV to this file")
	cmd.Flags().Bool("watch", false, "Rerun whenever the strategy book changes")
	cmd.Flags().Duration("interval", time.Second, "Polling interval for --watch")

	return cmd
}

// watch reruns render after every change to path until ctx is done.
// Render failures are logged, not returned, so a broken edit can be fixed
// without restarting.
func (a *app) watch(ctx context.Context, path string, interval time.Duration, loader *strategy.Loader, render func() error) error {
	changes := strategy.NewBookWatcher(path, interval).Changes(ctx)

	if err := render(); err != nil {
		a.log.Error("comparison failed", zap.String("file", path), zap.Error(err))
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			a.log.Info("strategy book changed", zap.String("file", path))
			loader.Invalidate()
			if err := render(); err != nil {
				a.log.Error("comparison failed", zap.String("file", path), zap.Error(err))
			}
		}
	}
}
