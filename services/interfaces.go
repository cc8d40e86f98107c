// Package services defines the narrow contracts the API layer and
// ancillary services (analytics, jobs) depend on, so they can be tested
// against a fake without importing internal/engine directly.
package services

import (
	"context"

	"github.com/gcbaptista/allocation-search-engine/config"
	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/internal/search"
	"github.com/gcbaptista/allocation-search-engine/model"
)

// Searcher queries a single index snapshot.
type Searcher interface {
	Search(ctx context.Context, q search.Query) (search.Result, error)
}

// IndexAccessor is the per-index handle returned by IndexManager.GetIndex.
type IndexAccessor interface {
	Searcher
	Settings() config.IndexSettings
}

// IndexManager manages the lifecycle of indexes: creation, settings,
// snapshot swap, and on-disk persistence.
type IndexManager interface {
	CreateIndex(settings config.IndexSettings) error
	GetIndex(name string) (IndexAccessor, error)
	GetIndexSettings(name string) (config.IndexSettings, error)
	UpdateIndexSettings(name string, settings config.IndexSettings) error
	RenameIndex(oldName, newName string) error
	DeleteIndex(name string) error
	ListIndexes() []string
	// Swap atomically replaces name's posting-store snapshot with next,
	// built offline by a caller outside this module. In-flight queries
	// against the old snapshot are unaffected.
	Swap(name string, next *index.Index) error
	PersistIndexData(indexName string) error
}

// IndexManagerWithAsyncOps extends IndexManager with job-tracked
// asynchronous variants of its mutating operations.
type IndexManagerWithAsyncOps interface {
	IndexManager
	CreateIndexAsync(settings config.IndexSettings) (string, error)
	DeleteIndexAsync(name string) (string, error)
	RenameIndexAsync(oldName, newName string) (string, error)
	UpdateIndexSettingsAsync(name string, settings config.IndexSettings) (string, error)
	SwapAsync(name string, next *index.Index) (string, error)
}

// JobManager exposes read access to background job state.
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(indexName string, status *model.JobStatus) []*model.Job
}
