package models

import (
	"strings"
	"time"
)

// ComparisonMethod defines how file contents are compared
type ComparisonMethod string

const (
	// CompareText reads both files fully and compares their contents
	CompareText ComparisonMethod = "text"
	// CompareBinary streams both files and compares them chunk by chunk
	CompareBinary ComparisonMethod = "binary"
)

// Default suffixes used to pair files
const (
	DefaultExpectedSuffix = ".out"
	DefaultActualSuffix   = ".result"
)

// CompareOperation describes a single directory comparison run
type CompareOperation struct {
	ID               string
	ExpectedDir      string
	ActualDir        string
	ExpectedSuffix   string
	ActualSuffix     string
	ComparisonMethod ComparisonMethod
	ExcludePatterns  []string
	ReportLength     bool // Report line count mismatches after the line diff
	BufferSize       int
	CreatedAt        time.Time
}

// Validate checks if the operation configuration is valid
func (op *CompareOperation) Validate() error {
	if op.ExpectedDir == "" {
		return &ValidationError{Field: "ExpectedDir", Message: "expected directory is required"}
	}
	if op.ActualDir == "" {
		return &ValidationError{Field: "ActualDir", Message: "actual directory is required"}
	}
	if err := ValidateSuffix("ExpectedSuffix", op.ExpectedSuffix); err != nil {
		return err
	}
	if err := ValidateSuffix("ActualSuffix", op.ActualSuffix); err != nil {
		return err
	}
	if op.ExpectedSuffix == op.ActualSuffix {
		return &ValidationError{Field: "ActualSuffix", Message: "must differ from the expected suffix"}
	}
	switch op.ComparisonMethod {
	case CompareText, CompareBinary:
	default:
		return &ValidationError{Field: "ComparisonMethod", Message: "must be 'text' or 'binary'"}
	}
	if op.BufferSize < 1024 {
		return &ValidationError{Field: "BufferSize", Message: "buffer size must be at least 1024 bytes"}
	}
	return nil
}

// ValidateSuffix checks that a pairing suffix is usable
func ValidateSuffix(field, suffix string) error {
	if suffix == "" {
		return &ValidationError{Field: field, Message: "suffix is required"}
	}
	if strings.ContainsAny(suffix, `/\`) {
		return &ValidationError{Field: field, Message: "suffix must not contain path separators"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
