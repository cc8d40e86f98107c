package engine

import (
	"github.com/gcbaptista/allocation-search-engine/config"
	apperrors "github.com/gcbaptista/allocation-search-engine/internal/errors"
	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/services"
)

// CreateIndex builds an empty index for settings.Name and persists it.
// Satisfies services.IndexManager.
func (e *Engine) CreateIndex(settings config.IndexSettings) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.snapshots[settings.Name]; exists {
		return apperrors.NewIndexAlreadyExistsError(settings.Name)
	}

	settingsCopy := settings
	idx := index.FromSettings(&settingsCopy)
	snap, err := newSnapshot(&settingsCopy, idx)
	if err != nil {
		return err
	}
	if err := e.persistSnapshotUnsafe(settings.Name, snap); err != nil {
		return err
	}
	e.snapshots[settings.Name] = snap
	return nil
}

// GetIndex returns the named index's current snapshot. Satisfies
// services.IndexManager.
func (e *Engine) GetIndex(name string) (services.IndexAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap, ok := e.snapshots[name]
	if !ok {
		return nil, apperrors.NewIndexNotFoundError(name)
	}
	return snap, nil
}

// GetIndexSettings returns the named index's settings. Satisfies
// services.IndexManager.
func (e *Engine) GetIndexSettings(name string) (config.IndexSettings, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap, ok := e.snapshots[name]
	if !ok {
		return config.IndexSettings{}, apperrors.NewIndexNotFoundError(name)
	}
	return snap.Settings(), nil
}

// DeleteIndex removes the named index from memory and disk. Satisfies
// services.IndexManager.
func (e *Engine) DeleteIndex(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.snapshots[name]; !ok {
		return apperrors.NewIndexNotFoundError(name)
	}
	delete(e.snapshots, name)
	return e.removeSnapshotDir(name)
}

// RenameIndex renames an index in place, updating its settings and on-disk
// directory. Satisfies services.IndexManager.
func (e *Engine) RenameIndex(oldName, newName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if oldName == newName {
		return apperrors.NewSameNameError(newName)
	}
	snap, ok := e.snapshots[oldName]
	if !ok {
		return apperrors.NewIndexNotFoundError(oldName)
	}
	if _, exists := e.snapshots[newName]; exists {
		return apperrors.NewIndexAlreadyExistsError(newName)
	}

	newSettings := snap.Settings()
	newSettings.Name = newName
	renamed, err := newSnapshot(&newSettings, snap.idx)
	if err != nil {
		return err
	}
	if err := e.persistSnapshotUnsafe(newName, renamed); err != nil {
		return err
	}
	if err := e.removeSnapshotDir(oldName); err != nil {
		return err
	}

	delete(e.snapshots, oldName)
	e.snapshots[newName] = renamed
	return nil
}

// ListIndexes returns the names of all currently loaded indexes. Satisfies
// services.IndexManager.
func (e *Engine) ListIndexes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.snapshots))
	for name := range e.snapshots {
		names = append(names, name)
	}
	return names
}

// Swap atomically replaces name's posting-store index with next, keeping
// its current settings, and persists the result. In-flight queries holding
// a reference to the old snapshot are unaffected: Snapshot is immutable,
// so a query in progress simply finishes against the value it already has.
// Satisfies services.IndexManager.
func (e *Engine) Swap(name string, next *index.Index) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur, ok := e.snapshots[name]
	if !ok {
		return apperrors.NewIndexNotFoundError(name)
	}

	settings := cur.Settings()
	swapped, err := newSnapshot(&settings, next)
	if err != nil {
		return err
	}
	if err := e.persistSnapshotUnsafe(name, swapped); err != nil {
		return err
	}
	e.snapshots[name] = swapped
	return nil
}
