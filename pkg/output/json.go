package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/resultdiff/pkg/models"
)

// JSONFormatter writes the whole report as one JSON document for automation
// and scripting
type JSONFormatter struct {
	writer io.Writer
}

// JSONReport wraps the report with derived timing fields
type JSONReport struct {
	*models.Report
	Duration   string `json:"duration"`
	DurationMs int64  `json:"duration_ms"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, totalPairs int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Pair does nothing; pairs are emitted with the final report
// to keep the output a single parseable document
func (f *JSONFormatter) Pair(p models.PairResult) error {
	return nil
}

// Complete writes the report as JSON
func (f *JSONFormatter) Complete(report *models.Report) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(JSONReport{
		Report:     report,
		Duration:   report.Duration.Round(time.Millisecond).String(),
		DurationMs: report.Duration.Milliseconds(),
	})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
