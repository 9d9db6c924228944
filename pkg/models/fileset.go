package models

import (
	"sort"
	"strings"
)

// FileSet is an immutable set of file names sharing a suffix
type FileSet struct {
	suffix string
	names  map[string]struct{}
}

// NewFileSet builds a FileSet from the names that end with suffix.
// Names without the suffix are dropped.
func NewFileSet(suffix string, names []string) *FileSet {
	set := &FileSet{
		suffix: suffix,
		names:  make(map[string]struct{}, len(names)),
	}
	for _, name := range names {
		if strings.HasSuffix(name, suffix) {
			set.names[name] = struct{}{}
		}
	}
	return set
}

// Suffix returns the suffix the set was filtered by
func (s *FileSet) Suffix() string {
	return s.suffix
}

// Contains reports whether name is in the set
func (s *FileSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set
func (s *FileSet) Len() int {
	return len(s.names)
}

// Names returns the names in lexical order
func (s *FileSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilePair associates an expected file with its actual counterpart
type FilePair struct {
	ExpectedName string
	ActualName   string
}

// Counterpart derives the actual-side name for an expected name by
// replacing the trailing expected suffix with the actual suffix.
func Counterpart(name, expectedSuffix, actualSuffix string) string {
	return strings.TrimSuffix(name, expectedSuffix) + actualSuffix
}

// Pair matches every expected name with its counterpart in actual.
// Expected names without a counterpart are returned separately.
func Pair(expected, actual *FileSet) (pairs []FilePair, unmatched []string) {
	for _, name := range expected.Names() {
		counterpart := Counterpart(name, expected.Suffix(), actual.Suffix())
		if !actual.Contains(counterpart) {
			unmatched = append(unmatched, name)
			continue
		}
		pairs = append(pairs, FilePair{ExpectedName: name, ActualName: counterpart})
	}
	return pairs, unmatched
}
