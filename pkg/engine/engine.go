package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/resultdiff/pkg/compare"
	"github.com/sdejongh/resultdiff/pkg/logging"
	"github.com/sdejongh/resultdiff/pkg/models"
	"github.com/sdejongh/resultdiff/pkg/output"
	"github.com/sdejongh/resultdiff/pkg/storage"
)

// Engine compares the expected files of one directory with their
// counterparts in another. It runs as a single sequential pass: every file
// is opened, read and closed before the next one is touched.
type Engine struct {
	expected   storage.Backend
	actual     storage.Backend
	comparator compare.Comparator
	formatter  output.Formatter
	logger     logging.Logger
	operation  *models.CompareOperation
	writer     io.Writer
	now        func() time.Time
}

// NewEngine creates a new comparison engine
func NewEngine(
	expected, actual storage.Backend,
	comparator compare.Comparator,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.CompareOperation,
) *Engine {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Engine{
		expected:   expected,
		actual:     actual,
		comparator: comparator,
		formatter:  formatter,
		logger:     logger,
		operation:  operation,
		writer:     os.Stdout,
		now:        time.Now,
	}
}

// SetWriter sets where the formatter writes the report
func (e *Engine) SetWriter(w io.Writer) {
	e.writer = w
}

// Run executes the comparison. Directory listing failures abort the run with
// an error; per-pair read failures are recorded in the report instead.
func (e *Engine) Run(ctx context.Context) (*models.Report, error) {
	op := e.operation
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	logger := e.logger.WithFields(logging.Fields{"run_id": op.ID})

	report := &models.Report{
		OperationID:    op.ID,
		ExpectedDir:    e.expected.Root(),
		ActualDir:      e.actual.Root(),
		ExpectedSuffix: op.ExpectedSuffix,
		ActualSuffix:   op.ActualSuffix,
		StartTime:      e.now(),
		Pairs:          []models.PairResult{},
	}

	filter, err := NewFilter(op.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	expected, err := scan(ctx, e.expected, op.ExpectedSuffix, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan expected directory: %w", err)
	}
	actual, err := scan(ctx, e.actual, op.ActualSuffix, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan actual directory: %w", err)
	}

	report.Stats.ExpectedScanned = expected.set.Len()
	report.Stats.ActualScanned = actual.set.Len()
	report.Stats.Excluded = expected.excluded + actual.excluded

	pairs, unmatched := models.Pair(expected.set, actual.set)
	report.Unmatched = unmatched
	report.Stats.Unmatched = len(unmatched)

	logger.Info(ctx, "starting comparison", logging.Fields{
		"expected_dir": report.ExpectedDir,
		"actual_dir":   report.ActualDir,
		"pairs":        len(pairs),
		"unmatched":    len(unmatched),
		"method":       e.comparator.Name(),
	})
	for _, name := range unmatched {
		logger.Debug(ctx, "no counterpart, skipping", logging.Fields{
			"expected": name,
			"actual":   models.Counterpart(name, op.ExpectedSuffix, op.ActualSuffix),
		})
	}

	if err := e.formatter.Start(e.writer, len(pairs)); err != nil {
		return nil, fmt.Errorf("failed to start output: %w", err)
	}

	for _, pair := range pairs {
		result, err := e.comparePair(ctx, pair)
		if err != nil {
			report.Finalize(e.now())
			report.Status = models.StatusCancelled
			logger.Warn(ctx, "comparison cancelled", logging.Fields{"compared": report.Stats.Paired})
			return report, err
		}

		report.Record(result)
		e.logPair(ctx, logger, result)

		if err := e.formatter.Pair(result); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
	}

	report.Finalize(e.now())

	if err := e.formatter.Complete(report); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info(ctx, "comparison finished", logging.Fields{
		"status":    string(report.Status),
		"equal":     report.Stats.Equal,
		"different": report.Stats.Different,
		"errored":   report.Stats.Errored,
		"duration":  report.Duration.String(),
	})

	return report, nil
}

// comparePair compares one pair and, when the contents differ, re-reads both
// files as lines to locate the differing line indices.
func (e *Engine) comparePair(ctx context.Context, pair models.FilePair) (models.PairResult, error) {
	result := models.PairResult{
		ExpectedName: pair.ExpectedName,
		ActualName:   pair.ActualName,
	}

	comparison, err := e.comparator.Compare(ctx, e.expected, e.actual, pair.ExpectedName, pair.ActualName)
	if err != nil {
		return result, err
	}

	result.Result = comparison.Result
	result.Reason = comparison.Reason
	if comparison.Err != nil {
		result.Error = comparison.Err.Error()
	}
	if comparison.Result != models.ResultDifferent {
		return result, nil
	}

	expectedLines, err := compare.ReadLines(ctx, e.expected, pair.ExpectedName)
	if err != nil {
		return readFailure(result, err), nil
	}
	actualLines, err := compare.ReadLines(ctx, e.actual, pair.ActualName)
	if err != nil {
		return readFailure(result, err), nil
	}

	result.Lines = compare.DiffLines(expectedLines, actualLines)
	result.LengthMismatch = compare.LengthMismatch(expectedLines, actualLines)
	return result, nil
}

func (e *Engine) logPair(ctx context.Context, logger logging.Logger, p models.PairResult) {
	fields := logging.Fields{
		"expected": p.ExpectedName,
		"actual":   p.ActualName,
		"result":   string(p.Result),
	}

	switch p.Result {
	case models.ResultReadError:
		logger.Error(ctx, "failed to read pair", errors.New(p.Error), fields)
	case models.ResultDifferent:
		fields["lines"] = len(p.Lines)
		logger.Info(ctx, "files differ", fields)
	default:
		logger.Debug(ctx, "files match", fields)
	}
}

// readFailure turns a pair into a read error when the line pass fails
func readFailure(result models.PairResult, err error) models.PairResult {
	result.Result = models.ResultReadError
	result.Reason = "failed to read lines"
	result.Error = err.Error()
	result.Lines = nil
	return result
}
