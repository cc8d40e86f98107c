// Package analytics tracks completed queries and aggregates them into a
// dashboard: recent volume, latency trends, popular query text, and which
// categories winning allocations actually touched.
package analytics

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/allocation-search-engine/internal/search"
	"github.com/gcbaptista/allocation-search-engine/model"
	"github.com/gcbaptista/allocation-search-engine/services"
)

const (
	analyticsDataFile = "search_data/analytics.json"
	maxEventsToKeep    = 10000 // Keep last 10k events for performance
)

// Service implements query analytics tracking and reporting.
type Service struct {
	mutex        sync.RWMutex
	events       []model.QueryEvent
	indexManager services.IndexManager
	dataFilePath string
}

// NewService creates a new analytics service.
func NewService(indexManager services.IndexManager) *Service {
	service := &Service{
		events:       make([]model.QueryEvent, 0),
		indexManager: indexManager,
		dataFilePath: analyticsDataFile,
	}

	if err := service.loadData(); err != nil {
		log.Printf("Warning: Failed to load analytics data: %v", err)
	}

	return service
}

// TrackQueryEvent records the outcome of one completed search against an
// index. Called asynchronously from the search handler, so it never blocks
// the response.
func (s *Service) TrackQueryEvent(indexName, query string, res search.Result) error {
	event := model.QueryEvent{
		IndexName:   indexName,
		Query:       query,
		Duration:    res.Duration,
		ResultCount: res.Total,
		Truncated:   res.Truncated,
		Categories:  distinctCategories(res.Allocations),
		Timestamp:   time.Now(),
	}

	s.mutex.Lock()
	s.events = append(s.events, event)
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
	s.mutex.Unlock()

	go func() {
		if err := s.saveData(); err != nil {
			log.Printf("Warning: Failed to save analytics data: %v", err)
		}
	}()

	return nil
}

// distinctCategories flattens the categories touched by a result's winning
// allocations into a deduplicated, order-preserving slice.
func distinctCategories(allocations []search.AllocationSummary) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, alloc := range allocations {
		for _, cat := range alloc.Categories {
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			out = append(out, cat)
		}
	}
	return out
}

// GetDashboardData returns complete analytics dashboard data.
func (s *Service) GetDashboardData() (model.AnalyticsDashboard, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	last24hEvents := s.filterEventsByTime(s.events, yesterday)
	lastWeekEvents := s.filterEventsByTime(s.events, lastWeek)
	prevWeekEvents := s.filterEventsByTimeRange(s.events, lastWeek.Add(-7*24*time.Hour), lastWeek)

	truncatedCount := 0
	for _, e := range last24hEvents {
		if e.Truncated {
			truncatedCount++
		}
	}

	dashboard := model.AnalyticsDashboard{
		TotalSearches:            len(last24hEvents),
		SearchesChangePercent:    s.calculateChangePercent(len(last24hEvents), len(prevWeekEvents)),
		AvgResponseTime:          s.calculateAvgResponseTime(last24hEvents),
		ResponseTimeChange:       s.calculateResponseTimeChange(last24hEvents, prevWeekEvents),
		TruncatedCount:           truncatedCount,
		ActiveIndexes:            s.getActiveIndexesCount(),
		IndexesChangeCount:       s.getIndexesChange(),
		SearchPerformance24h:     s.getHourlyPerformance(last24hEvents),
		PopularSearches:          s.getPopularSearches(lastWeekEvents),
		IndexUsage:               s.getIndexUsage(lastWeekEvents),
		ResponseTimeDistribution: s.getResponseTimeDistribution(last24hEvents),
		CategoryUsage:            s.getCategoryUsage(last24hEvents),
		SystemHealth:             s.getSystemHealth(),
	}

	return dashboard, nil
}

// filterEventsByTime returns events after the given time
func (s *Service) filterEventsByTime(events []model.QueryEvent, after time.Time) []model.QueryEvent {
	var filtered []model.QueryEvent
	for _, event := range events {
		if event.Timestamp.After(after) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// filterEventsByTimeRange returns events within the given time range
func (s *Service) filterEventsByTimeRange(events []model.QueryEvent, start, end time.Time) []model.QueryEvent {
	var filtered []model.QueryEvent
	for _, event := range events {
		if event.Timestamp.After(start) && event.Timestamp.Before(end) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// calculateChangePercent calculates percentage change between current and previous values
func (s *Service) calculateChangePercent(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100.0
		}
		return 0.0
	}
	return float64(current-previous) / float64(previous) * 100.0
}

// calculateAvgResponseTime calculates average response time for events in milliseconds
func (s *Service) calculateAvgResponseTime(events []model.QueryEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.Duration
	}
	avgDuration := total / time.Duration(len(events))
	return avgDuration.Milliseconds()
}

// calculateResponseTimeChange calculates response time change trend
func (s *Service) calculateResponseTimeChange(current, previous []model.QueryEvent) string {
	currentAvg := s.calculateAvgResponseTime(current)
	previousAvg := s.calculateAvgResponseTime(previous)

	if previousAvg == 0 {
		return "stable"
	}

	change := float64(currentAvg-previousAvg) / float64(previousAvg)
	if change > 0.1 {
		return "up"
	} else if change < -0.1 {
		return "down"
	}
	return "stable"
}

// getActiveIndexesCount returns the number of active indexes
func (s *Service) getActiveIndexesCount() int {
	indexes := s.indexManager.ListIndexes()
	return len(indexes)
}

// getIndexesChange returns the change in index count
func (s *Service) getIndexesChange() int {
	// Placeholder implementation - would require tracking historical index counts
	return 0
}

// getHourlyPerformance returns hourly search performance for the last 24 hours
func (s *Service) getHourlyPerformance(events []model.QueryEvent) []model.SearchPerformanceHourly {
	hourlyData := make(map[int][]model.QueryEvent)

	for _, event := range events {
		hour := event.Timestamp.Hour()
		hourlyData[hour] = append(hourlyData[hour], event)
	}

	var performance []model.SearchPerformanceHourly
	for hour := 0; hour < 24; hour++ {
		events := hourlyData[hour]
		avgResponseTime := s.calculateAvgResponseTime(events)

		performance = append(performance, model.SearchPerformanceHourly{
			Hour:            hour,
			SearchCount:     len(events),
			AvgResponseTime: avgResponseTime,
		})
	}

	return performance
}

// getPopularSearches returns the most popular search terms
func (s *Service) getPopularSearches(events []model.QueryEvent) []model.PopularSearch {
	queryCounts := make(map[string]int)

	for _, event := range events {
		if event.Query != "" {
			queryCounts[event.Query]++
		}
	}

	type queryCount struct {
		query string
		count int
	}

	var queries []queryCount
	for query, count := range queryCounts {
		queries = append(queries, queryCount{query: query, count: count})
	}

	sort.Slice(queries, func(i, j int) bool {
		return queries[i].count > queries[j].count
	})

	var popular []model.PopularSearch
	for i, qc := range queries {
		if i >= 5 {
			break
		}
		popular = append(popular, model.PopularSearch{
			Query:       qc.query,
			SearchCount: qc.count,
			TrendChange: "stable",
		})
	}

	return popular
}

// getIndexUsage returns usage statistics for each index
func (s *Service) getIndexUsage(events []model.QueryEvent) []model.IndexStats {
	perIndex := make(map[string][]model.QueryEvent)
	for _, event := range events {
		perIndex[event.IndexName] = append(perIndex[event.IndexName], event)
	}

	indexes := s.indexManager.ListIndexes()

	var usage []model.IndexStats
	for _, indexName := range indexes {
		indexEvents := perIndex[indexName]
		truncated := 0
		categories := make(map[string]struct{})
		for _, e := range indexEvents {
			if e.Truncated {
				truncated++
			}
			for _, cat := range e.Categories {
				categories[cat] = struct{}{}
			}
		}

		usage = append(usage, model.IndexStats{
			IndexName:       indexName,
			SearchCount:     len(indexEvents),
			TruncatedCount:  truncated,
			AvgResponseTime: s.calculateAvgResponseTime(indexEvents),
			CategoryCount:   len(categories),
		})
	}

	return usage
}

// getResponseTimeDistribution returns response time distribution
func (s *Service) getResponseTimeDistribution(events []model.QueryEvent) model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}
	total := len(events)

	if total == 0 {
		return dist
	}

	for _, event := range events {
		ms := event.Duration.Milliseconds()
		switch {
		case ms <= 25:
			dist.Bucket0To25ms++
		case ms <= 50:
			dist.Bucket25To50ms++
		case ms <= 100:
			dist.Bucket50To100ms++
		default:
			dist.Bucket100msPlus++
		}
	}

	dist.Percentage0To25 = float64(dist.Bucket0To25ms) / float64(total) * 100
	dist.Percentage25To50 = float64(dist.Bucket25To50ms) / float64(total) * 100
	dist.Percentage50To100 = float64(dist.Bucket50To100ms) / float64(total) * 100
	dist.Percentage100Plus = float64(dist.Bucket100msPlus) / float64(total) * 100

	return dist
}

// getCategoryUsage counts how many events' winning allocations touched each
// category.
func (s *Service) getCategoryUsage(events []model.QueryEvent) model.CategoryUsageStats {
	stats := make(model.CategoryUsageStats)
	for _, event := range events {
		for _, cat := range event.Categories {
			stats[cat]++
		}
	}
	return stats
}

// getSystemHealth returns current system health metrics
func (s *Service) getSystemHealth() model.SystemHealth {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	memoryUsage := float64(m.Alloc) / float64(m.Sys) * 100

	return model.SystemHealth{
		MemoryUsage: memoryUsage,
		CPUUsage:    23.0,
		DiskSpace:   45.0,
		IndexHealth: 100.0,
	}
}

// loadData loads analytics data from file
func (s *Service) loadData() error {
	dir := filepath.Dir(s.dataFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create analytics directory: %v", err)
	}

	if _, err := os.Stat(s.dataFilePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(s.dataFilePath)
	if err != nil {
		return fmt.Errorf("failed to read analytics file: %v", err)
	}

	if err := json.Unmarshal(data, &s.events); err != nil {
		return fmt.Errorf("failed to unmarshal analytics data: %v", err)
	}

	return nil
}

// saveData saves analytics data to file
func (s *Service) saveData() error {
	dir := filepath.Dir(s.dataFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create analytics directory: %v", err)
	}

	s.mutex.RLock()
	data, err := json.MarshalIndent(s.events, "", "  ")
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal analytics data: %v", err)
	}

	if err := os.WriteFile(s.dataFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write analytics file: %v", err)
	}

	return nil
}
