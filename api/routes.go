// Package api exposes the search engine over HTTP: a thin gin layer that
// maps index and query management onto services.IndexManager.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/allocation-search-engine/internal/analytics"
	"github.com/gcbaptista/allocation-search-engine/internal/metrics"
	"github.com/gcbaptista/allocation-search-engine/services"
)

// API holds dependencies for API handlers: the index manager, the
// query-analytics tracker, and the Prometheus collectors built on top of
// it.
type API struct {
	engine    services.IndexManager
	analytics *analytics.Service
	metrics   *metrics.Metrics
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.IndexManager) *API {
	return &API{
		engine:    engine,
		analytics: analytics.NewService(engine),
		metrics:   metrics.New(),
	}
}

// SetupRoutes defines all the API routes for the search engine. The core
// query route is GET /:indexName?query=...&limit=...&offset=...; index
// and job management sit alongside it under reserved static paths.
func SetupRoutes(router *gin.Engine, engine services.IndexManager) {
	apiHandler := NewAPI(engine)

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/", apiHandler.ListIndexesHandler)

	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler)
	}

	router.POST("/:indexName", apiHandler.CreateIndexHandler)
	router.GET("/:indexName", apiHandler.SearchHandler)
	router.DELETE("/:indexName", apiHandler.DeleteIndexHandler)
	router.GET("/:indexName/settings", apiHandler.GetIndexHandler)
	router.PATCH("/:indexName/settings", apiHandler.UpdateIndexSettingsHandler)
	router.POST("/:indexName/rename", apiHandler.RenameIndexHandler)
	router.GET("/:indexName/stats", apiHandler.GetIndexStatsHandler)
	router.GET("/:indexName/jobs", apiHandler.ListJobsHandler)
}
