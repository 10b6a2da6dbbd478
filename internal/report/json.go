package report

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/xtding233/riskdrip/internal/strategy"
)

// Document is the JSON shape of a CLI invocation's results.
type Document struct {
	RunID      string                   `json:"run_id"`
	Runs       []strategy.Run           `json:"runs,omitempty"`
	MonteCarlo []strategy.MonteCarloRun `json:"monte_carlo,omitempty"`
}

// NewDocument stamps a fresh run ID.
func NewDocument() Document {
	return Document{RunID: uuid.NewString()}
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
