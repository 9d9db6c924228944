package engine

import (
	"context"
	"fmt"

	"github.com/sdejongh/resultdiff/pkg/models"
	"github.com/sdejongh/resultdiff/pkg/storage"
)

// scanResult is the outcome of listing one side
type scanResult struct {
	set      *models.FileSet
	excluded int
}

// scan lists the files directly under backend whose names end with suffix.
// Directories are never part of the set. Listing failures are returned.
func scan(ctx context.Context, backend storage.Backend, suffix string, filter *Filter) (*scanResult, error) {
	entries, err := backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", backend.Root(), err)
	}

	names := make([]string, 0, len(entries))
	excluded := 0
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		if filter.Excluded(entry.Name) {
			excluded++
			continue
		}
		names = append(names, entry.Name)
	}

	return &scanResult{
		set:      models.NewFileSet(suffix, names),
		excluded: excluded,
	}, nil
}
