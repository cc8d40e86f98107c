package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/allocation-search-engine/internal/errors"
	"github.com/gcbaptista/allocation-search-engine/internal/search"
)

// searchResponse is the wire shape of a search result, serialized in this
// field order: allocations, ids, offset, total, duration.
type searchResponse struct {
	Allocations []search.AllocationSummary `json:"allocations"`
	IDs         []uint32                   `json:"ids"`
	Offset      int                        `json:"offset"`
	Total       int                        `json:"total"`
	Duration    string                     `json:"duration"`
}

// SearchHandler handles GET /{indexName}?query=...&limit=...&offset=...
func (api *API) SearchHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "get index", err)
		return
	}

	query := c.Query("query")
	limit := parseIntParam(c, "limit", 0)
	offset := parseIntParam(c, "offset", 0)

	if _, _, result := ValidateSearchParams(limit, offset); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	res, err := indexAccessor.Search(c.Request.Context(), search.Query{
		Text:   query,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		SendSearchError(c, indexName, err)
		return
	}

	api.metrics.Observe(indexName, len(res.Allocations), len(res.IDs), res.Duration.Seconds(), res.Truncated)

	go func() {
		if err := api.analytics.TrackQueryEvent(indexName, query, res); err != nil {
			log.Printf("Warning: failed to track query event: %v", err)
		}
	}()

	c.JSON(http.StatusOK, searchResponse{
		Allocations: res.Allocations,
		IDs:         res.IDs,
		Offset:      res.Offset,
		Total:       res.Total,
		Duration:    res.Duration.String(),
	})
}

// parseIntParam reads an integer query parameter, falling back to
// defaultValue when absent or malformed.
func parseIntParam(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
