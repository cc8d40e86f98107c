package engine

import (
	"context"

	"github.com/gcbaptista/allocation-search-engine/config"
	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/internal/jobs"
	"github.com/gcbaptista/allocation-search-engine/model"
)

// CreateIndexAsync schedules CreateIndex as a tracked background job and
// returns its job ID. Satisfies services.IndexManagerWithAsyncOps.
func (e *Engine) CreateIndexAsync(settings config.IndexSettings) (string, error) {
	jobID := e.jobManager.CreateJob(model.JobTypeCreateIndex, settings.Name, nil)
	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.CreateIndex(settings)
	})
	return jobID, err
}

// DeleteIndexAsync schedules DeleteIndex as a tracked background job.
// Satisfies services.IndexManagerWithAsyncOps.
func (e *Engine) DeleteIndexAsync(name string) (string, error) {
	jobID := e.jobManager.CreateJob(model.JobTypeDeleteIndex, name, nil)
	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.DeleteIndex(name)
	})
	return jobID, err
}

// RenameIndexAsync schedules RenameIndex as a tracked background job.
// Satisfies services.IndexManagerWithAsyncOps.
func (e *Engine) RenameIndexAsync(oldName, newName string) (string, error) {
	jobID := e.jobManager.CreateJob(model.JobTypeRenameIndex, oldName, map[string]string{"new_name": newName})
	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.RenameIndex(oldName, newName)
	})
	return jobID, err
}

// UpdateIndexSettingsAsync schedules UpdateIndexSettings as a tracked
// background job. Satisfies services.IndexManagerWithAsyncOps.
func (e *Engine) UpdateIndexSettingsAsync(name string, settings config.IndexSettings) (string, error) {
	jobID := e.jobManager.CreateJob(model.JobTypeUpdateSettings, name, nil)
	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.UpdateIndexSettings(name, settings)
	})
	return jobID, err
}

// SwapAsync schedules Swap as a tracked background job, the asynchronous
// entry point an offline indexing pipeline uses to publish a freshly built
// index. Satisfies services.IndexManagerWithAsyncOps.
func (e *Engine) SwapAsync(name string, next *index.Index) (string, error) {
	jobID := e.jobManager.CreateJob(model.JobTypeSwapSnapshot, name, nil)
	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.Swap(name, next)
	})
	return jobID, err
}

// GetJob delegates to the engine's job manager. Satisfies
// services.JobManager.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs delegates to the engine's job manager. Satisfies
// services.JobManager.
func (e *Engine) ListJobs(indexName string, status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(indexName, status)
}

// GetJobMetrics returns the engine's background job performance metrics.
func (e *Engine) GetJobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}

// GetJobSuccessRate returns the overall background job success rate.
func (e *Engine) GetJobSuccessRate() float64 {
	return e.jobManager.GetJobSuccessRate()
}

// GetCurrentWorkload returns the number of currently active background jobs.
func (e *Engine) GetCurrentWorkload() int64 {
	return e.jobManager.GetCurrentWorkload()
}
