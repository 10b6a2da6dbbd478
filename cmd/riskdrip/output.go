package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xtding233/riskdrip/internal/report"
	"github.com/xtding233/riskdrip/internal/strategy"
)

// writeRuns prints runs as JSON or as a summary table plus event logs,
// and exports the trajectories when --csv is set.
func writeRuns(cmd *cobra.Command, runs []strategy.Run) error {
	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		if err := writeCSVFile(path, runs); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		doc := report.NewDocument()
		doc.Runs = runs
		return report.WriteJSON(out, doc)
	}

	if err := report.WriteSummaryTable(out, runs); err != nil {
		return err
	}
	for _, r := range runs {
		if !r.Config.LogEvents {
			continue
		}
		if err := report.WriteEvents(out, r.Label, r.Result.Events); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVFile(path string, runs []strategy.Run) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := report.WriteTrajectoriesCSV(f, runs); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}
