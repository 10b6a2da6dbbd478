package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xtding233/riskdrip/internal/strategy"
)

// WriteTrajectoriesCSV writes one column per run and one row per round:
//
//	round,<label 1>,<label 2>,...
//
// Runs with fewer rounds leave their trailing cells empty.
func WriteTrajectoriesCSV(w io.Writer, runs []strategy.Run) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(runs)+1)
	header = append(header, "round")
	longest := 0
	for _, r := range runs {
		header = append(header, r.Label)
		if n := len(r.Result.Balances); n > longest {
			longest = n
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i := 0; i < longest; i++ {
		row[0] = strconv.Itoa(i)
		for j, r := range runs {
			if i < len(r.Result.Balances) {
				row[j+1] = strconv.FormatFloat(r.Result.Balances[i], 'f', -1, 64)
			} else {
				row[j+1] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
