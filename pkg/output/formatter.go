package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/resultdiff/pkg/models"
)

// Formatter defines the interface for output formatting
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Start initializes the formatter for a run over totalPairs pairs
	Start(writer io.Writer, totalPairs int) error

	// Pair reports one compared pair as soon as it is known
	Pair(result models.PairResult) error

	// Complete finalizes output once the run is over
	Complete(report *models.Report) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for an output format
func New(format string, reportLength bool) (Formatter, error) {
	switch format {
	case "human", "":
		return NewHumanFormatter(reportLength), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use: human, json)", format)
	}
}
