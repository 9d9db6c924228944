package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sdejongh/resultdiff/pkg/models"
)

// WriteDifferencesReport writes the pairs that did not compare equal to a file.
// Format can be "human" or "json". No file is created when nothing differs.
func WriteDifferencesReport(report *models.Report, path string, format string) error {
	if len(report.Differences()) == 0 {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create differences file: %w", err)
	}
	defer file.Close()

	switch format {
	case "json":
		err = writeDifferencesJSON(report, file)
	default: // "human"
		err = writeDifferencesHuman(report, file)
	}
	if err != nil {
		return fmt.Errorf("failed to write differences file: %w", err)
	}

	return file.Close()
}

// writeDifferencesHuman writes differences in human-readable format
func writeDifferencesHuman(report *models.Report, w io.Writer) error {
	diffs := report.Differences()

	fmt.Fprintf(w, "Differences Report\n")
	fmt.Fprintf(w, "==================\n\n")
	fmt.Fprintf(w, "Run: %s\n", report.OperationID)
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Expected: %s (*%s)\n", report.ExpectedDir, report.ExpectedSuffix)
	fmt.Fprintf(w, "Actual: %s (*%s)\n\n", report.ActualDir, report.ActualSuffix)
	fmt.Fprintf(w, "Total Differences: %d\n\n", len(diffs))

	sections := []struct {
		result models.ComparisonResult
		label  string
	}{
		{models.ResultReadError, "Read Errors"},
		{models.ResultDifferent, "Content Differences"},
	}

	for _, section := range sections {
		var matching []models.PairResult
		for _, d := range diffs {
			if d.Result == section.result {
				matching = append(matching, d)
			}
		}
		if len(matching) == 0 {
			continue
		}

		label := fmt.Sprintf("%s (%d files)", section.label, len(matching))
		fmt.Fprintf(w, "%s\n", label)
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(label)))

		for _, d := range matching {
			fmt.Fprintf(w, "  %s <> %s\n", d.ExpectedName, d.ActualName)
			if d.Error != "" {
				fmt.Fprintf(w, "    Error: %s\n", d.Error)
			}
			for _, line := range d.Lines {
				fmt.Fprintf(w, "    line %d\n", line.Index+1)
				fmt.Fprintf(w, "      - %s\n", line.Expected)
				fmt.Fprintf(w, "      + %s\n", line.Actual)
			}
			if d.LengthMismatch != nil {
				fmt.Fprintf(w, "    Lines: %d expected, %d actual\n",
					d.LengthMismatch.ExpectedLines, d.LengthMismatch.ActualLines)
			}
			fmt.Fprintf(w, "\n")
		}
	}

	return nil
}

// writeDifferencesJSON writes differences in JSON format
func writeDifferencesJSON(report *models.Report, w io.Writer) error {
	diffs := report.Differences()
	output := struct {
		Generated   string              `json:"generated"`
		OperationID string              `json:"operation_id"`
		ExpectedDir string              `json:"expected_dir"`
		ActualDir   string              `json:"actual_dir"`
		TotalCount  int                 `json:"total_count"`
		Differences []models.PairResult `json:"differences"`
	}{
		Generated:   time.Now().Format(time.RFC3339),
		OperationID: report.OperationID,
		ExpectedDir: report.ExpectedDir,
		ActualDir:   report.ActualDir,
		TotalCount:  len(diffs),
		Differences: diffs,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
