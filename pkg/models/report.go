package models

import (
	"time"
)

// ComparisonResult is the outcome of comparing one file pair
type ComparisonResult string

const (
	// ResultEqual indicates the files are byte-identical
	ResultEqual ComparisonResult = "equal"
	// ResultDifferent indicates the file contents differ
	ResultDifferent ComparisonResult = "different"
	// ResultReadError indicates at least one file could not be read
	ResultReadError ComparisonResult = "read_error"
)

// Equal reports whether the result means the files matched.
// A read error never counts as equal.
func (r ComparisonResult) Equal() bool {
	return r == ResultEqual
}

// LineDifference is a line index where the two files disagree
type LineDifference struct {
	Index    int    `json:"index"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// LengthMismatch records line counts when they differ
type LengthMismatch struct {
	ExpectedLines int `json:"expected_lines"`
	ActualLines   int `json:"actual_lines"`
}

// PairResult holds everything known about one compared pair
type PairResult struct {
	ExpectedName   string           `json:"expected"`
	ActualName     string           `json:"actual"`
	Result         ComparisonResult `json:"result"`
	Reason         string           `json:"reason,omitempty"`
	Error          string           `json:"error,omitempty"`
	Lines          []LineDifference `json:"lines,omitempty"`
	LengthMismatch *LengthMismatch  `json:"length_mismatch,omitempty"`
}

// Report represents the results of a comparison run
type Report struct {
	// Operation details
	OperationID    string `json:"operation_id"`
	ExpectedDir    string `json:"expected_dir"`
	ActualDir      string `json:"actual_dir"`
	ExpectedSuffix string `json:"expected_suffix"`
	ActualSuffix   string `json:"actual_suffix"`

	// Timing
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"-"`

	Stats Statistics `json:"stats"`

	// Pairs holds every compared pair in processing order
	Pairs []PairResult `json:"pairs"`

	// Unmatched lists expected files with no counterpart
	Unmatched []string `json:"unmatched,omitempty"`

	Status Status `json:"status"`
}

// Statistics holds comparison run counters
type Statistics struct {
	ExpectedScanned int `json:"expected_scanned"`
	ActualScanned   int `json:"actual_scanned"`
	Excluded        int `json:"excluded"`
	Paired          int `json:"paired"`
	Unmatched       int `json:"unmatched"`
	Equal           int `json:"equal"`
	Different       int `json:"different"`
	Errored         int `json:"errored"`
}

// Differences returns the pairs that did not compare equal
func (r *Report) Differences() []PairResult {
	var diffs []PairResult
	for _, p := range r.Pairs {
		if !p.Result.Equal() {
			diffs = append(diffs, p)
		}
	}
	return diffs
}

// Record adds a pair result and updates the counters
func (r *Report) Record(p PairResult) {
	r.Pairs = append(r.Pairs, p)
	r.Stats.Paired++
	switch p.Result {
	case ResultEqual:
		r.Stats.Equal++
	case ResultDifferent:
		r.Stats.Different++
	case ResultReadError:
		r.Stats.Errored++
	}
}

// Finalize sets the end time and derives the overall status
func (r *Report) Finalize(end time.Time) {
	r.EndTime = end
	r.Duration = end.Sub(r.StartTime)
	switch {
	case r.Stats.Errored > 0:
		r.Status = StatusErrored
	case r.Stats.Different > 0:
		r.Status = StatusDifferent
	default:
		r.Status = StatusIdentical
	}
}

// Status represents the overall result of a run
type Status string

const (
	// StatusIdentical indicates every paired file matched
	StatusIdentical Status = "identical"
	// StatusDifferent indicates at least one pair differs
	StatusDifferent Status = "different"
	// StatusErrored indicates at least one pair could not be read
	StatusErrored Status = "errored"
	// StatusCancelled indicates the run was interrupted
	StatusCancelled Status = "cancelled"
)

// ExitCode returns the exit code used when failing on differences
func (s Status) ExitCode() int {
	switch s {
	case StatusIdentical:
		return 0
	case StatusDifferent:
		return 1
	case StatusErrored:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}
