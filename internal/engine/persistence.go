package engine

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gcbaptista/allocation-search-engine/config"
	apperrors "github.com/gcbaptista/allocation-search-engine/internal/errors"
	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/internal/persistence"
)

func (e *Engine) indexDir(name string) string {
	return filepath.Join(e.dataDir, name)
}

// loadSnapshotUnsafe loads one index's settings and posting-store index
// from disk and builds a Snapshot from them. It does not touch e.snapshots
// and is safe to call without holding e.mu.
func (e *Engine) loadSnapshotUnsafe(name string) (*Snapshot, error) {
	dir := e.indexDir(name)

	settingsPath := filepath.Join(dir, settingsFile)
	var settings config.IndexSettings
	if err := persistence.LoadGob(settingsPath, &settings); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewSnapshotMissingError(name, settingsPath)
		}
		return nil, err
	}

	indexPath := filepath.Join(dir, indexFile)
	var idx index.Index
	if err := persistence.LoadGob(indexPath, &idx); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewSnapshotMissingError(name, indexPath)
		}
		return nil, err
	}

	return newSnapshot(&settings, &idx)
}

// persistSnapshotUnsafe writes a snapshot's settings and index to disk.
// A Snapshot is immutable once built, so its fields can be read without
// holding e.mu; callers that also update e.snapshots hold it for that.
func (e *Engine) persistSnapshotUnsafe(name string, snap *Snapshot) error {
	dir := e.indexDir(name)
	if err := os.MkdirAll(dir, dataDirPerm); err != nil {
		return err
	}
	if err := persistence.SaveGob(filepath.Join(dir, settingsFile), snap.settings); err != nil {
		return err
	}
	return persistence.SaveGob(filepath.Join(dir, indexFile), snap.idx)
}

// removeSnapshotDir deletes an index's on-disk directory entirely.
func (e *Engine) removeSnapshotDir(name string) error {
	return os.RemoveAll(e.indexDir(name))
}

// renameSnapshotDir moves an index's on-disk directory to a new name.
func (e *Engine) renameSnapshotDir(oldName, newName string) error {
	return os.Rename(e.indexDir(oldName), e.indexDir(newName))
}

// PersistIndexData writes the named index's current in-memory snapshot to
// disk, satisfying services.IndexManager.
func (e *Engine) PersistIndexData(name string) error {
	e.mu.RLock()
	snap, ok := e.snapshots[name]
	e.mu.RUnlock()
	if !ok {
		return apperrors.NewIndexNotFoundError(name)
	}
	return e.persistSnapshotUnsafe(name, snap)
}
