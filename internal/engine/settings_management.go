package engine

import (
	"github.com/gcbaptista/allocation-search-engine/config"
	"github.com/gcbaptista/allocation-search-engine/index"
	apperrors "github.com/gcbaptista/allocation-search-engine/internal/errors"
)

// UpdateIndexSettings rebuilds the named index's search service against its
// existing posting-store index but new settings, and persists the result.
// Unlike Swap, the underlying index data is untouched -- only query-time
// behavior (weights, qualifiers, early termination) changes.
// Satisfies services.IndexManager.
func (e *Engine) UpdateIndexSettings(name string, newSettings config.IndexSettings) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur, ok := e.snapshots[name]
	if !ok {
		return apperrors.NewIndexNotFoundError(name)
	}

	newSettings.Name = name

	// Queries read weights and qualifiers from the index's categories, so
	// the new snapshot gets category copies carrying the new values; the
	// posting stores stay shared with the previous snapshot.
	cur.idx.Mu.RLock()
	idx := index.NewIndex(cur.idx.Name)
	for catName, cat := range cur.idx.Categories {
		next := *cat
		if cs, ok := newSettings.CategoryByName(catName); ok {
			next.Weight = cs.Weight
			next.Qualifiers = cs.Qualifiers
			if len(next.Qualifiers) == 0 {
				next.Qualifiers = []string{catName}
			}
		}
		idx.Categories[catName] = &next
	}
	cur.idx.Mu.RUnlock()

	updated, err := newSnapshot(&newSettings, idx)
	if err != nil {
		return err
	}
	if err := e.persistSnapshotUnsafe(name, updated); err != nil {
		return err
	}
	e.snapshots[name] = updated
	return nil
}
