package compare

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/sdejongh/resultdiff/pkg/models"
	"github.com/sdejongh/resultdiff/pkg/storage"
)

// TextComparator reads both files fully and compares their contents exactly,
// whitespace and line endings included.
type TextComparator struct{}

// NewTextComparator creates a new whole-content comparator
func NewTextComparator() *TextComparator {
	return &TextComparator{}
}

// Compare compares two files by their full contents
func (c *TextComparator) Compare(ctx context.Context, expected, actual storage.Backend, expectedName, actualName string) (*Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	expectedData, err := ReadAll(ctx, expected, expectedName)
	if err != nil {
		return readError(expectedName, actualName, "failed to read expected file", err), nil
	}

	actualData, err := ReadAll(ctx, actual, actualName)
	if err != nil {
		return readError(expectedName, actualName, "failed to read actual file", err), nil
	}

	if !bytes.Equal(expectedData, actualData) {
		return &Comparison{
			ExpectedName: expectedName,
			ActualName:   actualName,
			Result:       models.ResultDifferent,
			Reason:       fmt.Sprintf("content differs (%d vs %d bytes)", len(expectedData), len(actualData)),
		}, nil
	}

	return &Comparison{
		ExpectedName: expectedName,
		ActualName:   actualName,
		Result:       models.ResultEqual,
		Reason:       fmt.Sprintf("content matches (%d bytes)", len(expectedData)),
	}, nil
}

// Name returns the comparator name
func (c *TextComparator) Name() string {
	return "text"
}

// ReadAll opens, fully reads and closes a file from a backend
func ReadAll(ctx context.Context, backend storage.Backend, name string) ([]byte, error) {
	reader, err := backend.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
