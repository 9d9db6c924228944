package engine

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Filter excludes file names matching glob patterns.
// Patterns support simple globs (*.tmp, run-??.out) matched against the
// file name, and directory-style patterns (tmp/) which match an entry of
// that exact name.
type Filter struct {
	patterns []string
}

// NewFilter validates the patterns and builds a filter
func NewFilter(patterns []string) (*Filter, error) {
	f := &Filter{}
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		normalized := strings.TrimSuffix(filepath.ToSlash(pattern), "/")
		if _, err := filepath.Match(normalized, ""); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		f.patterns = append(f.patterns, normalized)
	}
	return f, nil
}

// Excluded reports whether name matches any pattern
func (f *Filter) Excluded(name string) bool {
	if f == nil {
		return false
	}
	for _, pattern := range f.patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
