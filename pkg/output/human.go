package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/resultdiff/pkg/models"
)

// HumanFormatter prints a header and the differing lines for every pair
// that does not match. Equal pairs and identical runs print nothing.
type HumanFormatter struct {
	writer       io.Writer
	reportLength bool
}

// NewHumanFormatter creates a new human-readable formatter.
// With reportLength set, pairs whose line counts differ get an extra line.
func NewHumanFormatter(reportLength bool) *HumanFormatter {
	return &HumanFormatter{reportLength: reportLength}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, totalPairs int) error {
	if writer == nil {
		writer = io.Discard
	}
	f.writer = writer
	return nil
}

// Pair prints the differences of one pair
func (f *HumanFormatter) Pair(p models.PairResult) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	switch p.Result {
	case models.ResultDifferent:
		if _, err := fmt.Fprintf(f.writer, "Os arquivos %s e %s são DIFERENTES.\n", p.ExpectedName, p.ActualName); err != nil {
			return err
		}
		for _, line := range p.Lines {
			if _, err := fmt.Fprintf(f.writer, " - %s\n + %s\n", line.Expected, line.Actual); err != nil {
				return err
			}
		}
		if f.reportLength && p.LengthMismatch != nil {
			_, err := fmt.Fprintf(f.writer, " ! %s tem %d linhas, %s tem %d linhas.\n",
				p.ExpectedName, p.LengthMismatch.ExpectedLines,
				p.ActualName, p.LengthMismatch.ActualLines)
			return err
		}

	case models.ResultReadError:
		_, err := fmt.Fprintf(f.writer, "Não foi possível ler os arquivos %s e %s: %s.\n", p.ExpectedName, p.ActualName, p.Error)
		return err
	}

	return nil
}

// Complete prints nothing; all output is produced per pair
func (f *HumanFormatter) Complete(report *models.Report) error {
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
