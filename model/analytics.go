package model

import "time"

// QueryEvent represents a single query event for analytics tracking. It is
// recorded once per completed search, independent of whether it returned any
// ids.
type QueryEvent struct {
	IndexName   string        `json:"index_name"`
	Query       string        `json:"query"`
	Duration    time.Duration `json:"duration"`
	ResultCount int           `json:"result_count"`
	Truncated   bool          `json:"truncated"`
	Categories  []string      `json:"categories"` // distinct categories touched by the winning allocations
	Timestamp   time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for popular search terms
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
	TrendChange string `json:"trend_change,omitempty"` // "up", "down", "stable"
}

// IndexStats represents usage statistics for a specific index
type IndexStats struct {
	IndexName       string `json:"index_name"`
	SearchCount     int    `json:"search_count"`
	TruncatedCount  int    `json:"truncated_count"`
	AvgResponseTime int64  `json:"avg_response_time"` // in milliseconds
	CategoryCount   int    `json:"category_count"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	Bucket0To25ms     int     `json:"bucket_0_25ms"`
	Bucket25To50ms    int     `json:"bucket_25_50ms"`
	Bucket50To100ms   int     `json:"bucket_50_100ms"`
	Bucket100msPlus   int     `json:"bucket_100ms_plus"`
	Percentage0To25   float64 `json:"percentage_0_25"`
	Percentage25To50  float64 `json:"percentage_25_50"`
	Percentage50To100 float64 `json:"percentage_50_100"`
	Percentage100Plus float64 `json:"percentage_100_plus"`
}

// CategoryUsageStats counts how many queries' winning allocations touched
// each category, keyed by category name.
type CategoryUsageStats map[string]int

// SearchPerformanceHourly represents hourly search performance data
type SearchPerformanceHourly struct {
	Hour            int   `json:"hour"`
	SearchCount     int   `json:"search_count"`
	AvgResponseTime int64 `json:"avg_response_time"` // in milliseconds
}

// SystemHealth represents system health metrics
type SystemHealth struct {
	MemoryUsage float64 `json:"memory_usage_percent"`
	CPUUsage    float64 `json:"cpu_usage_percent"`
	DiskSpace   float64 `json:"disk_space_percent"`
	IndexHealth float64 `json:"index_health_percent"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	// Summary metrics
	TotalSearches         int     `json:"total_searches"`
	SearchesChangePercent float64 `json:"searches_change_percent"`
	AvgResponseTime       int64   `json:"avg_response_time"` // in milliseconds
	ResponseTimeChange    string  `json:"response_time_change"`
	TruncatedCount        int     `json:"truncated_count"`
	ActiveIndexes         int     `json:"active_indexes"`
	IndexesChangeCount    int     `json:"indexes_change_count"`

	// Detailed analytics
	SearchPerformance24h     []SearchPerformanceHourly `json:"search_performance_24h"`
	PopularSearches          []PopularSearch           `json:"popular_searches"`
	IndexUsage               []IndexStats              `json:"index_usage"`
	ResponseTimeDistribution ResponseTimeDistribution  `json:"response_time_distribution"`
	CategoryUsage            CategoryUsageStats        `json:"category_usage"`
	SystemHealth             SystemHealth              `json:"system_health"`
}
