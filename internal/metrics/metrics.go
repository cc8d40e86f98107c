// Package metrics defines the Prometheus collectors for query latency and
// early-termination savings, and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for one engine instance.
type Metrics struct {
	QueriesTotal         *prometheus.CounterVec
	QueryLatency         *prometheus.HistogramVec
	AllocationsEvaluated *prometheus.HistogramVec
	ResultsCount         *prometheus.HistogramVec
	TruncatedTotal       *prometheus.CounterVec
	LoadedIndexes        prometheus.Gauge
}

// New creates and registers the engine's Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total queries handled, by index.",
			},
			[]string{"index"},
		),
		QueryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_query_latency_seconds",
				Help:    "Query latency in seconds, by index.",
				Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
			},
			[]string{"index"},
		),
		AllocationsEvaluated: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_allocations_evaluated",
				Help:    "Number of allocations that contributed at least one id to a query's result.",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
			},
			[]string{"index"},
		),
		ResultsCount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of ids returned per query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
			},
			[]string{"index"},
		),
		TruncatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_truncated_total",
				Help: "Total queries that hit their deadline before finishing, by index.",
			},
			[]string{"index"},
		),
		LoadedIndexes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "search_loaded_indexes",
				Help: "Number of index snapshots currently loaded.",
			},
		),
	}

	prometheus.MustRegister(
		m.QueriesTotal,
		m.QueryLatency,
		m.AllocationsEvaluated,
		m.ResultsCount,
		m.TruncatedTotal,
		m.LoadedIndexes,
	)

	return m
}

// Observe records one completed query's outcome against an index's labels.
// allocationsEvaluated is the number of allocations that contributed at
// least one id (internal/search.Result.Allocations), not a raw enumerator
// step count -- the orchestrator does not expose the latter.
func (m *Metrics) Observe(indexName string, allocationsEvaluated, resultCount int, latencySeconds float64, truncated bool) {
	m.QueriesTotal.WithLabelValues(indexName).Inc()
	m.QueryLatency.WithLabelValues(indexName).Observe(latencySeconds)
	m.AllocationsEvaluated.WithLabelValues(indexName).Observe(float64(allocationsEvaluated))
	m.ResultsCount.WithLabelValues(indexName).Observe(float64(resultCount))
	if truncated {
		m.TruncatedTotal.WithLabelValues(indexName).Inc()
	}
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
