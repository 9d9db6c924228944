package compare

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/sdejongh/resultdiff/pkg/models"
	"github.com/sdejongh/resultdiff/pkg/storage"
)

// SplitLines reads r into lines, each keeping its trailing newline.
// A final line without a newline is kept as is.
func SplitLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// ReadLines opens a file from a backend and splits it into lines
func ReadLines(ctx context.Context, backend storage.Backend, name string) ([]string, error) {
	reader, err := backend.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	lines, err := SplitLines(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read lines of %s: %w", name, err)
	}
	return lines, nil
}

// DiffLines compares two line sequences index by index up to the length of
// the shorter one. Lines are compared raw and trimmed only for display.
func DiffLines(expected, actual []string) []models.LineDifference {
	var diffs []models.LineDifference
	n := min(len(expected), len(actual))
	for i := 0; i < n; i++ {
		if expected[i] == actual[i] {
			continue
		}
		diffs = append(diffs, models.LineDifference{
			Index:    i,
			Expected: DisplayLine(expected[i]),
			Actual:   DisplayLine(actual[i]),
		})
	}
	return diffs
}

// LengthMismatch returns the line counts when they differ, nil otherwise
func LengthMismatch(expected, actual []string) *models.LengthMismatch {
	if len(expected) == len(actual) {
		return nil
	}
	return &models.LengthMismatch{
		ExpectedLines: len(expected),
		ActualLines:   len(actual),
	}
}

// DisplayLine strips trailing whitespace and the line terminator
func DisplayLine(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
