package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtding233/riskdrip/internal/report"
	"github.com/xtding233/riskdrip/internal/strategy"
)

func newMonteCarloCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Aggregate many independent runs per strategy",
		Long: `Repeat every strategy of a book over many independently seeded trials
and report the distribution of final balances.

Example:
  riskdrip montecarlo --trials 2000 --rounds 250`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trials := a.settings.Trials
			if cmd.Flags().Changed("trials") {
				trials, _ = cmd.Flags().GetInt("trials")
			}
			if trials <= 0 {
				return fmt.Errorf("--trials must be > 0, got %d", trials)
			}

			book, _, err := a.loadBook(cmd, strategy.NewLoader())
			if err != nil {
				return err
			}
			runs, err := strategy.NewDriver(a.log).MonteCarlo(book, a.overrides(cmd), trials)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				doc := report.NewDocument()
				doc.MonteCarlo = runs
				return report.WriteJSON(cmd.OutOrStdout(), doc)
			}
			return report.WriteMonteCarlo(cmd.OutOrStdout(), runs)
		},
	}

	addOverrideFlags(cmd)
	cmd.Flags().Int("trials", 500, "Trials per strategy (env RISKDRIP_TRIALS)")

	return cmd
}
