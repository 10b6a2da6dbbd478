// Package report renders simulation results for people and for plotting
// tools: event lines, summary tables, CSV trajectories and JSON documents.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/xtding233/riskdrip/internal/drip"
	"github.com/xtding233/riskdrip/internal/strategy"
)

// Money formats v as dollars rounded to cents, e.g. "$6400.00" or "-$12.50".
func Money(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// Percent formats a fraction as a percentage with one decimal.
func Percent(f float64) string {
	return decimal.NewFromFloat(f).Shift(2).StringFixed(1) + "%"
}

// EventLine renders one tenner event.
func EventLine(e drip.EventRecord) string {
	return fmt.Sprintf("[Round %d] Tenner hit! Portfolio: %s -> cashing out to %s",
		e.Round, Money(e.PreCashout), Money(e.PostCashout))
}

// WriteEvents prints a strategy header followed by its tenner events.
func WriteEvents(w io.Writer, label string, events []drip.EventRecord) error {
	if _, err := fmt.Fprintf(w, "\n=== %s ===\n", label); err != nil {
		return err
	}
	for _, e := range events {
		if _, err := fmt.Fprintln(w, EventLine(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummaryTable prints one aligned row per run.
func WriteSummaryTable(w io.Writer, runs []strategy.Run) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "STRATEGY\tROUNDS\tFINAL\tPEAK\tTROUGH\tMAX DD\tRETURN\tTENNERS\t")
	for _, r := range runs {
		s := r.Summary
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%d\t\n",
			r.Label, len(r.Result.Balances)-1,
			Money(s.Final), Money(s.Peak), Money(s.Trough),
			Percent(s.MaxDrawdown), Percent(s.Return), s.Tenners)
	}
	return tw.Flush()
}

// WriteMonteCarlo prints the aggregate statistics of each strategy.
func WriteMonteCarlo(w io.Writer, runs []strategy.MonteCarloRun) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "STRATEGY\tTRIALS\tSEED\tP10\tMEDIAN\tP90\tMEAN\tBELOW START\tTENNERS/RUN\t")
	for _, r := range runs {
		fb := r.Stats.FinalBalance
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Label, r.Stats.Trials, r.Seed,
			Money(fb.P10), Money(fb.P50), Money(fb.P90), Money(fb.Mean),
			Percent(r.Stats.BelowStart),
			decimal.NewFromFloat(r.Stats.Tenners.Mean).StringFixed(2))
	}
	return tw.Flush()
}
