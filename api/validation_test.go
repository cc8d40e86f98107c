package api

import (
	"testing"

	"github.com/gcbaptista/allocation-search-engine/config"
)

func TestValidationResult_AddError(t *testing.T) {
	result := &ValidationResult{Valid: true}

	result.AddError("field1", "error message")

	if result.Valid {
		t.Error("Expected Valid to be false after adding error")
	}

	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}

	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}

	if result.Errors[0].Message != "error message" {
		t.Errorf("Expected message 'error message', got '%s'", result.Errors[0].Message)
	}
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Valid: true}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.AddError("field", "message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding error")
	}
}

func TestValidateIndexName(t *testing.T) {
	tests := []struct {
		name      string
		indexName string
		wantValid bool
		wantError string
	}{
		{
			name:      "valid index name",
			indexName: "test-index",
			wantValid: true,
		},
		{
			name:      "empty index name",
			indexName: "",
			wantValid: false,
			wantError: "Index name is required",
		},
		{
			name:      "index name with leading whitespace",
			indexName: " test-index",
			wantValid: false,
			wantError: "Index name cannot have leading or trailing whitespace",
		},
		{
			name:      "index name with trailing whitespace",
			indexName: "test-index ",
			wantValid: false,
			wantError: "Index name cannot have leading or trailing whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateIndexName(tt.indexName)

			if result.Valid != tt.wantValid {
				t.Errorf("ValidateIndexName() Valid = %v, want %v", result.Valid, tt.wantValid)
			}

			if !tt.wantValid && len(result.Errors) > 0 {
				if result.Errors[0].Message != tt.wantError {
					t.Errorf("ValidateIndexName() error = %v, want %v", result.Errors[0].Message, tt.wantError)
				}
			}
		})
	}
}

func TestValidateIndexSettings(t *testing.T) {
	tests := []struct {
		name      string
		settings  *config.IndexSettings
		wantValid bool
		wantError string
	}{
		{
			name: "valid settings",
			settings: &config.IndexSettings{
				Name: "test-index",
				Categories: []config.CategorySettings{
					config.Category("title"),
				},
			},
			wantValid: true,
		},
		{
			name:      "nil settings",
			settings:  nil,
			wantValid: false,
			wantError: "Index settings are required",
		},
		{
			name: "empty name",
			settings: &config.IndexSettings{
				Name: "",
				Categories: []config.CategorySettings{
					config.Category("title"),
				},
			},
			wantValid: false,
			wantError: "Index name is required",
		},
		{
			name: "duplicate category name",
			settings: &config.IndexSettings{
				Name: "test-index",
				Categories: []config.CategorySettings{
					config.Category("title"),
					config.Category("title"),
				},
			},
			wantValid: false,
			wantError: "duplicate category 'title' found in categories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateIndexSettings(tt.settings)

			if result.Valid != tt.wantValid {
				t.Errorf("ValidateIndexSettings() Valid = %v, want %v", result.Valid, tt.wantValid)
			}

			if !tt.wantValid && len(result.Errors) > 0 {
				found := false
				for _, err := range result.Errors {
					if err.Message == tt.wantError {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("ValidateIndexSettings() expected error '%v' not found in %v", tt.wantError, result.Errors)
				}
			}
		})
	}
}

func TestValidateSearchParams(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantValid  bool
	}{
		{
			name:      "valid limit and offset",
			limit:     20,
			offset:    0,
			wantValid: true,
		},
		{
			name:      "zero limit means default, still valid",
			limit:     0,
			offset:    0,
			wantValid: true,
		},
		{
			name:      "negative limit is invalid",
			limit:     -1,
			offset:    0,
			wantValid: false,
		},
		{
			name:      "negative offset is invalid",
			limit:     20,
			offset:    -5,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLimit, gotOffset, result := ValidateSearchParams(tt.limit, tt.offset)

			if gotLimit != tt.limit {
				t.Errorf("ValidateSearchParams() limit = %v, want %v", gotLimit, tt.limit)
			}
			if gotOffset != tt.offset {
				t.Errorf("ValidateSearchParams() offset = %v, want %v", gotOffset, tt.offset)
			}
			if result.Valid != tt.wantValid {
				t.Errorf("ValidateSearchParams() Valid = %v, want %v", result.Valid, tt.wantValid)
			}
		})
	}
}

func TestValidateRenameRequest(t *testing.T) {
	tests := []struct {
		name      string
		oldName   string
		newName   string
		wantValid bool
		wantError string
	}{
		{
			name:      "valid rename",
			oldName:   "old-index",
			newName:   "new-index",
			wantValid: true,
		},
		{
			name:      "empty old name",
			oldName:   "",
			newName:   "new-index",
			wantValid: false,
			wantError: "Current index name is required",
		},
		{
			name:      "empty new name",
			oldName:   "old-index",
			newName:   "",
			wantValid: false,
			wantError: "New name is required and cannot be empty",
		},
		{
			name:      "new name with whitespace",
			oldName:   "old-index",
			newName:   " new-index ",
			wantValid: false,
			wantError: "New name cannot have leading or trailing whitespace",
		},
		{
			name:      "same names",
			oldName:   "same-index",
			newName:   "same-index",
			wantValid: false,
			wantError: "New name must be different from current name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateRenameRequest(tt.oldName, tt.newName)

			if result.Valid != tt.wantValid {
				t.Errorf("ValidateRenameRequest() Valid = %v, want %v", result.Valid, tt.wantValid)
			}

			if !tt.wantValid && len(result.Errors) > 0 {
				found := false
				for _, err := range result.Errors {
					if err.Message == tt.wantError {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("ValidateRenameRequest() expected error '%v' not found in %v", tt.wantError, result.Errors)
				}
			}
		})
	}
}
