package compare

import (
	"context"

	"github.com/sdejongh/resultdiff/pkg/models"
	"github.com/sdejongh/resultdiff/pkg/storage"
)

// Comparison holds the result of comparing two files
type Comparison struct {
	ExpectedName string
	ActualName   string
	Result       models.ComparisonResult
	Reason       string
	// Err is the read failure behind a ReadError result
	Err error
}

// Comparator defines the interface for file comparison algorithms.
// Read failures are reported through a ReadError result, never as an error;
// the returned error is reserved for context cancellation.
type Comparator interface {
	// Compare compares two files and returns the result
	Compare(ctx context.Context, expected, actual storage.Backend, expectedName, actualName string) (*Comparison, error)

	// Name returns the name of the comparison method
	Name() string
}

// New returns the comparator for a comparison method
func New(method models.ComparisonMethod, bufferSize int) (Comparator, error) {
	switch method {
	case models.CompareText:
		return NewTextComparator(), nil
	case models.CompareBinary:
		return NewBinaryComparator(bufferSize), nil
	default:
		return nil, &models.ValidationError{
			Field:   "comparison",
			Message: "unsupported comparison method: " + string(method) + " (use: text, binary)",
		}
	}
}

func readError(expectedName, actualName, reason string, err error) *Comparison {
	return &Comparison{
		ExpectedName: expectedName,
		ActualName:   actualName,
		Result:       models.ResultReadError,
		Reason:       reason,
		Err:          err,
	}
}
