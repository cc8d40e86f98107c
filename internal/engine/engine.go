// Package engine owns the set of loaded index snapshots: it loads them
// from disk at startup, serves them to queries, and swaps in new
// snapshots (settings changes or full rebuilds) atomically.
package engine

import (
	"context"
	"log"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/allocation-search-engine/internal/jobs"
)

const (
	dataDirPerm  = 0755
	settingsFile = "settings.gob"
	indexFile    = "index.gob"

	// maxConcurrentLoads bounds how many index snapshots are deserialized
	// in parallel at startup; gob decoding is CPU-bound, so this is kept
	// modest rather than unbounded.
	maxConcurrentLoads = 8
)

// Engine manages multiple named search indexes. It implements
// services.IndexManager and services.IndexManagerWithAsyncOps.
type Engine struct {
	mu         sync.RWMutex
	snapshots  map[string]*Snapshot
	dataDir    string
	jobManager *jobs.Manager
}

// NewEngine creates an engine rooted at dataDir, loading any snapshots
// already persisted there concurrently via an errgroup.
func NewEngine(dataDir string) *Engine {
	eng := &Engine{
		snapshots:  make(map[string]*Snapshot),
		dataDir:    dataDir,
		jobManager: jobs.NewManager(4),
	}
	eng.jobManager.Start()

	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		log.Printf("Warning: could not create data directory %s: %v", dataDir, err)
	}
	eng.loadSnapshotsFromDisk()
	return eng
}

// Stop releases the engine's background job workers. Loaded snapshots are
// left untouched; callers that want a final flush should call
// PersistIndexData themselves first.
func (e *Engine) Stop() {
	e.jobManager.Stop()
}

// loadSnapshotsFromDisk loads every index directory under e.dataDir
// concurrently, bounded by maxConcurrentLoads, and installs the
// successfully loaded ones. A directory that fails to load is logged and
// skipped rather than aborting the whole engine.
func (e *Engine) loadSnapshotsFromDisk() {
	log.Printf("Loading index snapshots from disk: %s", e.dataDir)

	items, err := os.ReadDir(e.dataDir)
	if err != nil {
		log.Printf("Warning: failed to read data directory %s: %v. No snapshots loaded.", e.dataDir, err)
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(maxConcurrentLoads)

	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		name := item.Name()
		g.Go(func() error {
			snap, err := e.loadSnapshotUnsafe(name)
			if err != nil {
				log.Printf("Warning: failed to load index '%s': %v. Skipping.", name, err)
				return nil
			}
			e.mu.Lock()
			e.snapshots[name] = snap
			e.mu.Unlock()
			log.Printf("Successfully loaded index '%s'.", name)
			return nil
		})
	}

	_ = g.Wait() // the goroutines above never return a non-nil error; load failures are logged and skipped
}
