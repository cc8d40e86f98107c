package analytics

import (
	"testing"
	"time"

	"github.com/gcbaptista/allocation-search-engine/config"
	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/internal/search"
	"github.com/gcbaptista/allocation-search-engine/model"
	"github.com/gcbaptista/allocation-search-engine/services"
)

// MockIndexManager is a simple mock for testing
type MockIndexManager struct {
	indexes []string
}

func (m *MockIndexManager) CreateIndex(_ config.IndexSettings) error          { return nil }
func (m *MockIndexManager) GetIndex(_ string) (services.IndexAccessor, error) { return nil, nil }
func (m *MockIndexManager) GetIndexSettings(_ string) (config.IndexSettings, error) {
	return config.IndexSettings{}, nil
}
func (m *MockIndexManager) UpdateIndexSettings(_ string, _ config.IndexSettings) error {
	return nil
}
func (m *MockIndexManager) RenameIndex(_, _ string) error   { return nil }
func (m *MockIndexManager) DeleteIndex(_ string) error      { return nil }
func (m *MockIndexManager) ListIndexes() []string           { return m.indexes }
func (m *MockIndexManager) PersistIndexData(_ string) error { return nil }
func (m *MockIndexManager) Swap(_ string, _ *index.Index) error { return nil }

func TestAnalyticsService_TrackQueryEvent(t *testing.T) {
	mockIndexManager := &MockIndexManager{
		indexes: []string{"test_index"},
	}

	service := NewService(mockIndexManager)
	service.events = make([]model.QueryEvent, 0)

	res := search.Result{
		Total:    10,
		Duration: 50 * time.Millisecond,
		Allocations: []search.AllocationSummary{
			{Score: 1.0, Categories: []string{"title"}, IDsCount: 10},
		},
	}

	if err := service.TrackQueryEvent("test_index", "test query", res); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(service.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(service.events))
	}

	stored := service.events[0]
	if stored.IndexName != "test_index" {
		t.Errorf("Expected IndexName test_index, got %s", stored.IndexName)
	}
	if stored.Query != "test query" {
		t.Errorf("Expected Query 'test query', got %s", stored.Query)
	}
	if stored.ResultCount != 10 {
		t.Errorf("Expected ResultCount 10, got %d", stored.ResultCount)
	}
	if len(stored.Categories) != 1 || stored.Categories[0] != "title" {
		t.Errorf("Expected Categories [title], got %v", stored.Categories)
	}
}

func TestAnalyticsService_GetDashboardData(t *testing.T) {
	mockIndexManager := &MockIndexManager{
		indexes: []string{"test_index1", "test_index2"},
	}

	service := NewService(mockIndexManager)
	service.events = make([]model.QueryEvent, 0)

	service.events = append(service.events,
		model.QueryEvent{
			IndexName:   "test_index1",
			Query:       "matrix",
			Duration:    30 * time.Millisecond,
			ResultCount: 5,
			Categories:  []string{"title"},
			Timestamp:   time.Now().Add(-1 * time.Hour),
		},
		model.QueryEvent{
			IndexName:   "test_index2",
			Query:       "batman",
			Duration:    45 * time.Millisecond,
			ResultCount: 3,
			Categories:  []string{"title", "cast"},
			Timestamp:   time.Now().Add(-2 * time.Hour),
		},
	)

	dashboard, err := service.GetDashboardData()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if dashboard.ActiveIndexes != 2 {
		t.Errorf("Expected 2 active indexes, got %d", dashboard.ActiveIndexes)
	}

	if len(dashboard.SearchPerformance24h) != 24 {
		t.Errorf("Expected 24 hourly performance entries, got %d", len(dashboard.SearchPerformance24h))
	}

	if len(dashboard.PopularSearches) == 0 {
		t.Error("Expected some popular searches, got none")
	}

	if dashboard.CategoryUsage["title"] != 2 {
		t.Errorf("Expected category 'title' to be used twice, got %d", dashboard.CategoryUsage["title"])
	}
}
