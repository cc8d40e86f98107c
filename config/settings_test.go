package config

import "testing"

func TestCategoryDefaultsQualifierToName(t *testing.T) {
	c := Category("title")
	if len(c.Qualifiers) != 1 || c.Qualifiers[0] != "title" {
		t.Fatalf("expected default qualifier [title], got %v", c.Qualifiers)
	}
}

func TestCategoryOptionsApplyInOrder(t *testing.T) {
	c := Category("title",
		WithQualifiers("t", "ti"),
		WithWeight(2.5),
		WithPartial(Substring(1, 4)),
		WithSimilarity(Phonetic(3)),
	)

	if c.Weight != 2.5 {
		t.Fatalf("Weight = %v, want 2.5", c.Weight)
	}
	if c.Partial.Kind != PartialSubstring || c.Partial.From != 1 || c.Partial.To != 4 {
		t.Fatalf("Partial = %+v, want Substring(1,4)", c.Partial)
	}
	if c.Similarity.Kind != SimilarityPhonetic || c.Similarity.N != 3 {
		t.Fatalf("Similarity = %+v, want Phonetic(3)", c.Similarity)
	}
	if len(c.Qualifiers) != 2 || c.Qualifiers[0] != "t" || c.Qualifiers[1] != "ti" {
		t.Fatalf("Qualifiers = %v, want [t ti]", c.Qualifiers)
	}
}

func TestTerminateEarlyFormsAreEquivalent(t *testing.T) {
	positional := TerminateEarly(2)
	named := WithExtraAllocations(2)
	if positional != named {
		t.Fatalf("TerminateEarly(2) = %+v, WithExtraAllocations(2) = %+v; want equal", positional, named)
	}
}

func TestTerminateEarlyZeroIsDistinctFromOff(t *testing.T) {
	off := TerminateEarlyOff()
	zero := TerminateEarly(0)
	if off.Enabled {
		t.Fatalf("TerminateEarlyOff() must have Enabled = false")
	}
	if !zero.Enabled || zero.ExtraAllocations != 0 {
		t.Fatalf("TerminateEarly(0) must be Enabled with ExtraAllocations = 0, got %+v", zero)
	}
}

func TestValidateFieldNamesCatchesDuplicatesAndEmpty(t *testing.T) {
	s := IndexSettings{
		Name: "movies",
		Categories: []CategorySettings{
			Category("title"),
			Category("title"),
			{Name: "  "},
		},
	}

	conflicts := s.ValidateFieldNames()
	if len(conflicts) != 2 {
		t.Fatalf("expected 2 conflicts (duplicate + empty), got %v", conflicts)
	}
}

func TestValidateFieldNamesCatchesUnknownFrom(t *testing.T) {
	s := IndexSettings{
		Name: "movies",
		Categories: []CategorySettings{
			Category("title", WithFrom("nonexistent")),
		},
	}

	conflicts := s.ValidateFieldNames()
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict for unknown from-alias, got %v", conflicts)
	}
}

func TestApplyDefaultsSetsDefaultLimit(t *testing.T) {
	s := IndexSettings{}
	s.ApplyDefaults()
	if s.DefaultLimit != 20 {
		t.Fatalf("DefaultLimit = %d, want 20", s.DefaultLimit)
	}
	if s.Categories == nil {
		t.Fatalf("Categories must be initialized to a non-nil empty slice")
	}
}

func TestNewLocationCategoryStoresRadiusAndPrecision(t *testing.T) {
	c := NewLocationCategory("coords", 5.5, 3)
	if c.Radius != 5.5 {
		t.Fatalf("Radius = %v, want 5.5", c.Radius)
	}
	if c.Precision != 3 {
		t.Fatalf("Precision = %d, want 3", c.Precision)
	}
	if c.Name != "coords" {
		t.Fatalf("Name = %q, want coords", c.Name)
	}
	if len(c.Qualifiers) != 1 || c.Qualifiers[0] != "coords" {
		t.Fatalf("Qualifiers = %v, want [coords]", c.Qualifiers)
	}
	if c.Partial.Kind != PartialNone || c.Similarity.Kind != SimilarityNone {
		t.Fatalf("location categories must disable partial/similarity matching, got %+v / %+v", c.Partial, c.Similarity)
	}
}

func TestNewLocationCategoryClampsPrecision(t *testing.T) {
	low := NewLocationCategory("coords", 1, 0)
	if low.Precision != 1 {
		t.Fatalf("Precision below range = %d, want clamped to 1", low.Precision)
	}
	high := NewLocationCategory("coords", 1, 9)
	if high.Precision != 5 {
		t.Fatalf("Precision above range = %d, want clamped to 5", high.Precision)
	}
}

func TestLocationBucketDigitsRange(t *testing.T) {
	tests := []struct {
		precision int
		want      int
	}{
		{1, 2},
		{2, 2},
		{3, 1},
		{4, 1},
		{5, 0},
		{0, 1},  // out of range falls back to precision 3's digit count
		{99, 1}, // out of range falls back to precision 3's digit count
	}
	for _, tt := range tests {
		if got := LocationBucketDigits(tt.precision); got != tt.want {
			t.Fatalf("LocationBucketDigits(%d) = %d, want %d", tt.precision, got, tt.want)
		}
	}
}
