package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/allocation-search-engine/config"
	internalErrors "github.com/gcbaptista/allocation-search-engine/internal/errors"
	"github.com/gcbaptista/allocation-search-engine/services"
)

// CreateIndexHandler handles the request to create a new, empty index.
// Request Body: config.IndexSettings
func (api *API) CreateIndexHandler(c *gin.Context) {
	var settings config.IndexSettings

	if result := ValidateJSONBinding(c, &settings); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateIndexSettings(&settings); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var jobID string
	var err error
	if asyncMgr, ok := api.engine.(services.IndexManagerWithAsyncOps); ok {
		jobID, err = asyncMgr.CreateIndexAsync(settings)
	} else {
		err = api.engine.CreateIndex(settings)
	}

	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexAlreadyExists) {
			SendIndexExistsError(c, settings.Name)
			return
		}
		SendIndexingError(c, "create index", err)
		return
	}

	if jobID != "" {
		c.JSON(http.StatusAccepted, gin.H{
			"status":  "accepted",
			"message": "Index creation started for '" + settings.Name + "'",
			"job_id":  jobID,
		})
	} else {
		c.JSON(http.StatusCreated, gin.H{"message": "Index '" + settings.Name + "' created successfully"})
	}
}

// ListIndexesHandler lists all available indexes.
func (api *API) ListIndexesHandler(c *gin.Context) {
	names := api.engine.ListIndexes()
	c.JSON(http.StatusOK, gin.H{"indexes": names, "count": len(names)})
}

// GetIndexHandler retrieves details about a specific index (its settings).
func (api *API) GetIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "get index", err)
		return
	}
	c.JSON(http.StatusOK, indexAccessor.Settings())
}

// DeleteIndexHandler handles deleting an index.
func (api *API) DeleteIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	var jobID string
	var err error
	if asyncMgr, ok := api.engine.(services.IndexManagerWithAsyncOps); ok {
		jobID, err = asyncMgr.DeleteIndexAsync(indexName)
	} else {
		err = api.engine.DeleteIndex(indexName)
	}

	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendIndexingError(c, "delete index", err)
		return
	}

	if jobID != "" {
		c.JSON(http.StatusAccepted, gin.H{
			"status":  "accepted",
			"message": "Index deletion started for '" + indexName + "'",
			"job_id":  jobID,
		})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Index '" + indexName + "' deleted successfully"})
	}
}

// RenameIndexRequest defines the structure for renaming an index
type RenameIndexRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// RenameIndexHandler handles requests to rename an index
func (api *API) RenameIndexHandler(c *gin.Context) {
	oldName := c.Param("indexName")

	var req RenameIndexRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateRenameRequest(oldName, req.NewName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var jobID string
	var err error
	if asyncMgr, ok := api.engine.(services.IndexManagerWithAsyncOps); ok {
		jobID, err = asyncMgr.RenameIndexAsync(oldName, req.NewName)
	} else {
		err = api.engine.RenameIndex(oldName, req.NewName)
	}

	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, oldName)
			return
		}
		if errors.Is(err, internalErrors.ErrIndexAlreadyExists) {
			SendIndexExistsError(c, req.NewName)
			return
		}
		if errors.Is(err, internalErrors.ErrSameName) {
			SendSameNameError(c, req.NewName)
			return
		}
		SendIndexingError(c, "rename index", err)
		return
	}

	if jobID != "" {
		c.JSON(http.StatusAccepted, gin.H{
			"status":   "accepted",
			"message":  fmt.Sprintf("Index rename started: '%s' -> '%s'", oldName, req.NewName),
			"job_id":   jobID,
			"old_name": oldName,
			"new_name": req.NewName,
		})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Index renamed successfully",
			"old_name": oldName,
			"new_name": req.NewName,
		})
	}
}

// IndexSettingsUpdate defines the structure for updating index settings.
// Every field is optional: only keys present in the request body are
// applied, letting a caller update e.g. just terminate_early without
// resending the full category list.
type IndexSettingsUpdate struct {
	Categories     *[]config.CategorySettings    `json:"categories,omitempty"`
	TerminateEarly *config.TerminateEarlyConfig  `json:"terminate_early,omitempty"`
	DefaultLimit   *int                          `json:"default_limit,omitempty"`
}

// UpdateIndexSettingsHandler handles requests to update index settings.
// This never touches the underlying posting-store index -- only
// query-time behavior (weights, qualifiers, early termination, default
// limit) changes; publishing new index data goes through Swap.
func (api *API) UpdateIndexSettingsHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	settings, err := api.engine.GetIndexSettings(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "get index settings", err)
		return
	}

	var update IndexSettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	updated := false
	if update.Categories != nil {
		settings.Categories = *update.Categories
		updated = true
	}
	if update.TerminateEarly != nil {
		settings.TerminateEarly = *update.TerminateEarly
		updated = true
	}
	if update.DefaultLimit != nil {
		settings.DefaultLimit = *update.DefaultLimit
		updated = true
	}

	if !updated {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "No valid updatable fields provided or no changes detected")
		return
	}

	if conflicts := settings.ValidateFieldNames(); len(conflicts) > 0 {
		details := make([]ErrorDetail, len(conflicts))
		for i, conflict := range conflicts {
			details[i] = ErrorDetail{Message: conflict, Code: "FIELD_VALIDATION_ERROR"}
		}
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Field name validation failed", details...)
		return
	}

	var jobID string
	if asyncMgr, ok := api.engine.(services.IndexManagerWithAsyncOps); ok {
		jobID, err = asyncMgr.UpdateIndexSettingsAsync(indexName, settings)
		if err != nil {
			SendJobExecutionError(c, "settings update", err)
			return
		}
	} else {
		if err := api.engine.UpdateIndexSettings(indexName, settings); err != nil {
			SendInternalError(c, "update index settings", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully for index '" + indexName + "'"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Settings update started for index '" + indexName + "'",
		"job_id":  jobID,
	})
}

// GetIndexStatsHandler returns statistics for a specific index: its
// categories and their posting-store sizes.
func (api *API) GetIndexStatsHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "get index", err)
		return
	}

	settings := indexAccessor.Settings()

	categoryStats := make([]gin.H, 0, len(settings.Categories))
	for _, cs := range settings.Categories {
		categoryStats = append(categoryStats, gin.H{
			"name":       cs.Name,
			"qualifiers": cs.Qualifiers,
			"weight":     cs.Weight,
		})
	}

	stats := gin.H{
		"name":            settings.Name,
		"categories":      categoryStats,
		"default_limit":   settings.DefaultLimit,
		"terminate_early": settings.TerminateEarly,
	}

	c.JSON(http.StatusOK, stats)
}
