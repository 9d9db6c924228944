package models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// ============== FileSet Tests ==============

func TestNewFileSet(t *testing.T) {
	set := NewFileSet(".out", []string{"b.out", "a.out", "notes.txt", "a.result", "out"})

	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	if !set.Contains("a.out") {
		t.Error("Contains(a.out) should be true")
	}
	if set.Contains("notes.txt") {
		t.Error("Contains(notes.txt) should be false")
	}
	if diff := cmp.Diff([]string{"a.out", "b.out"}, set.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if set.Suffix() != ".out" {
		t.Errorf("Suffix() = %q, want .out", set.Suffix())
	}
}

func TestCounterpart(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.out", "a.result"},
		{"test-01.out", "test-01.result"},
		{"x.output.out", "x.output.result"},
		{"nested.out.out", "nested.out.result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Counterpart(tt.name, ".out", ".result")
			if got != tt.want {
				t.Errorf("Counterpart(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestPair(t *testing.T) {
	expected := NewFileSet(".out", []string{"c.out", "a.out", "b.out"})
	actual := NewFileSet(".result", []string{"a.result", "c.result", "d.result"})

	pairs, unmatched := Pair(expected, actual)

	wantPairs := []FilePair{
		{ExpectedName: "a.out", ActualName: "a.result"},
		{ExpectedName: "c.out", ActualName: "c.result"},
	}
	if diff := cmp.Diff(wantPairs, pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b.out"}, unmatched); diff != "" {
		t.Errorf("unmatched mismatch (-want +got):\n%s", diff)
	}
}

func TestPair_Empty(t *testing.T) {
	pairs, unmatched := Pair(NewFileSet(".out", nil), NewFileSet(".result", nil))
	if len(pairs) != 0 || len(unmatched) != 0 {
		t.Errorf("expected no pairs and no unmatched, got %v / %v", pairs, unmatched)
	}
}

// ============== Report Tests ==============

func TestComparisonResultEqual(t *testing.T) {
	tests := []struct {
		result ComparisonResult
		want   bool
	}{
		{ResultEqual, true},
		{ResultDifferent, false},
		{ResultReadError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.result), func(t *testing.T) {
			if got := tt.result.Equal(); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReportRecordAndFinalize(t *testing.T) {
	start := time.Now()

	t.Run("AllEqual", func(t *testing.T) {
		r := &Report{StartTime: start}
		r.Record(PairResult{ExpectedName: "a.out", Result: ResultEqual})
		r.Finalize(start.Add(time.Second))

		if r.Status != StatusIdentical {
			t.Errorf("Status = %s, want %s", r.Status, StatusIdentical)
		}
		if r.Duration != time.Second {
			t.Errorf("Duration = %v, want 1s", r.Duration)
		}
		if len(r.Differences()) != 0 {
			t.Errorf("Differences() = %v, want none", r.Differences())
		}
	})

	t.Run("WithDifferences", func(t *testing.T) {
		r := &Report{StartTime: start}
		r.Record(PairResult{ExpectedName: "a.out", Result: ResultEqual})
		r.Record(PairResult{ExpectedName: "b.out", Result: ResultDifferent})
		r.Finalize(start)

		if r.Status != StatusDifferent {
			t.Errorf("Status = %s, want %s", r.Status, StatusDifferent)
		}
		want := Statistics{Paired: 2, Equal: 1, Different: 1}
		if diff := cmp.Diff(want, r.Stats); diff != "" {
			t.Errorf("Stats mismatch (-want +got):\n%s", diff)
		}
		if got := len(r.Differences()); got != 1 {
			t.Errorf("len(Differences()) = %d, want 1", got)
		}
	})

	t.Run("ReadErrorWins", func(t *testing.T) {
		r := &Report{StartTime: start}
		r.Record(PairResult{ExpectedName: "a.out", Result: ResultDifferent})
		r.Record(PairResult{ExpectedName: "b.out", Result: ResultReadError})
		r.Finalize(start)

		if r.Status != StatusErrored {
			t.Errorf("Status = %s, want %s", r.Status, StatusErrored)
		}
	})
}

func TestStatusExitCode(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusIdentical, 0},
		{StatusDifferent, 1},
		{StatusErrored, 2},
		{StatusCancelled, 3},
		{Status("bogus"), 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

// ============== CompareOperation Tests ==============

func TestCompareOperationValidate(t *testing.T) {
	valid := func() *CompareOperation {
		return &CompareOperation{
			ExpectedDir:      "/jobs",
			ActualDir:        "/results",
			ExpectedSuffix:   DefaultExpectedSuffix,
			ActualSuffix:     DefaultActualSuffix,
			ComparisonMethod: CompareText,
			BufferSize:       65536,
		}
	}

	tests := []struct {
		name    string
		mutate  func(op *CompareOperation)
		wantErr string
	}{
		{"Valid", func(op *CompareOperation) {}, ""},
		{"MissingExpected", func(op *CompareOperation) { op.ExpectedDir = "" }, "ExpectedDir"},
		{"MissingActual", func(op *CompareOperation) { op.ActualDir = "" }, "ActualDir"},
		{"EmptySuffix", func(op *CompareOperation) { op.ExpectedSuffix = "" }, "ExpectedSuffix"},
		{"SeparatorInSuffix", func(op *CompareOperation) { op.ActualSuffix = "x/.result" }, "ActualSuffix"},
		{"SameSuffix", func(op *CompareOperation) { op.ActualSuffix = ".out" }, "ActualSuffix"},
		{"BadMethod", func(op *CompareOperation) { op.ComparisonMethod = "md5" }, "ComparisonMethod"},
		{"SmallBuffer", func(op *CompareOperation) { op.BufferSize = 10 }, "BufferSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := valid()
			tt.mutate(op)
			err := op.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantErr {
				t.Errorf("Field = %s, want %s", verr.Field, tt.wantErr)
			}
		})
	}
}
