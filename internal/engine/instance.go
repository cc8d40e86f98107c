package engine

import (
	"context"
	"fmt"

	"github.com/gcbaptista/allocation-search-engine/config"
	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/internal/search"
)

// Snapshot bundles one index's immutable posting store with the settings
// and query service built against it. It satisfies services.IndexAccessor.
// A Snapshot is itself immutable once built: settings or index changes
// always produce a new Snapshot, which the Engine swaps in under lock.
type Snapshot struct {
	settings *config.IndexSettings
	idx      *index.Index
	searcher *search.Service
}

// newSnapshot builds a Snapshot querying idx under settings.
func newSnapshot(settings *config.IndexSettings, idx *index.Index) (*Snapshot, error) {
	if idx == nil {
		return nil, fmt.Errorf("index cannot be nil")
	}
	settings.ApplyDefaults()
	searcher, err := search.NewService(idx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to build search service for index '%s': %w", settings.Name, err)
	}
	return &Snapshot{settings: settings, idx: idx, searcher: searcher}, nil
}

// Search delegates to the underlying query service. This satisfies
// services.Searcher.
func (s *Snapshot) Search(ctx context.Context, q search.Query) (search.Result, error) {
	return s.searcher.Search(ctx, q)
}

// Settings returns a copy of the settings this snapshot was built with.
// This satisfies services.IndexAccessor.
func (s *Snapshot) Settings() config.IndexSettings {
	return *s.settings
}
