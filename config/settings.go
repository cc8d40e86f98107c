// Package config provides configuration structures for the search engine.
// It defines index settings, category configuration, and early-termination
// search configuration.
package config

import "strings"

// PartialKind tags which substring-expansion strategy a category uses.
type PartialKind int

const (
	// PartialNone disables substring expansion for the category.
	PartialNone PartialKind = iota
	// PartialSubstring expands indexed tokens into the [From, To] length
	// range of substrings at index-build time.
	PartialSubstring
)

// PartialStrategy is a tagged variant, not a callable: From/To only apply
// when Kind is PartialSubstring.
type PartialStrategy struct {
	Kind PartialKind `json:"kind" yaml:"kind"`
	From int         `json:"from,omitempty" yaml:"from,omitempty"`
	To   int         `json:"to,omitempty" yaml:"to,omitempty"`
}

// Substring builds a PartialStrategy expanding substrings of length
// [from, to].
func Substring(from, to int) PartialStrategy {
	return PartialStrategy{Kind: PartialSubstring, From: from, To: to}
}

// SimilarityKind tags which phonetic strategy a category uses.
type SimilarityKind int

const (
	// SimilarityNone disables phonetic sibling resolution.
	SimilarityNone SimilarityKind = iota
	// SimilarityPhonetic groups tokens by phonetic code, exposing up to N
	// siblings per lookup.
	SimilarityPhonetic
)

// SimilarityStrategy is a tagged variant: N only applies when Kind is
// SimilarityPhonetic.
type SimilarityStrategy struct {
	Kind SimilarityKind `json:"kind" yaml:"kind"`
	N    int            `json:"n,omitempty" yaml:"n,omitempty"`
}

// Phonetic builds a SimilarityStrategy capped at n sibling tokens.
func Phonetic(n int) SimilarityStrategy {
	return SimilarityStrategy{Kind: SimilarityPhonetic, N: n}
}

// CategorySettings configures one category of an index.
type CategorySettings struct {
	Name       string             `json:"name" yaml:"name"`
	Qualifiers []string           `json:"qualifiers,omitempty" yaml:"qualifiers,omitempty"`
	Weight     float64            `json:"weight" yaml:"weight"`
	Partial    PartialStrategy    `json:"partial" yaml:"partial"`
	Similarity SimilarityStrategy `json:"similarity" yaml:"similarity"`
	From       string             `json:"from,omitempty" yaml:"from,omitempty"` // aliases another category's source data

	// Radius and Precision are only set by NewLocationCategory: Radius is
	// the query-time distance the bucketed tokens must fall within, and
	// Precision (1..5) is the bucket width that produced them. Both are
	// read by the (out-of-scope) indexing pipeline, which owns the actual
	// numeric-to-bucket tokenization; zero means "not a location category".
	Radius    float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Precision int     `json:"precision,omitempty" yaml:"precision,omitempty"`
}

// CategoryOption configures a CategorySettings built by Category.
type CategoryOption func(*CategorySettings)

// WithQualifiers sets the category's user-facing qualifier aliases.
func WithQualifiers(aliases ...string) CategoryOption {
	return func(c *CategorySettings) { c.Qualifiers = aliases }
}

// WithWeight sets the category's score contribution.
func WithWeight(weight float64) CategoryOption {
	return func(c *CategorySettings) { c.Weight = weight }
}

// WithPartial selects the category's substring-expansion strategy.
func WithPartial(strategy PartialStrategy) CategoryOption {
	return func(c *CategorySettings) { c.Partial = strategy }
}

// WithSimilarity selects the category's phonetic strategy.
func WithSimilarity(strategy SimilarityStrategy) CategoryOption {
	return func(c *CategorySettings) { c.Similarity = strategy }
}

// WithFrom aliases this category's storage to another category's source
// data (e.g. a "title_exact" category reusing "title"'s field values).
func WithFrom(sourceCategory string) CategoryOption {
	return func(c *CategorySettings) { c.From = sourceCategory }
}

// Category builds a CategorySettings named name, applying opts in order.
// Unset Qualifiers default to []string{name}.
func Category(name string, opts ...CategoryOption) CategorySettings {
	c := CategorySettings{Name: name}
	for _, opt := range opts {
		opt(&c)
	}
	if len(c.Qualifiers) == 0 {
		c.Qualifiers = []string{name}
	}
	return c
}

// locationPrecisionDigits maps precision 1..5 to the number of trailing
// bucket digits dropped from the coordinate, giving roughly a 5-20% error
// margin around the queried value, widest at precision 1.
var locationPrecisionDigits = map[int]int{
	1: 2,
	2: 2,
	3: 1,
	4: 1,
	5: 0,
}

// NewLocationCategory is a convenience that configures a category for a
// numeric data column to be queried by radius around a value. The
// numeric-to-bucket tokenization itself happens in the (out-of-scope)
// index-building pipeline; this only produces the category's matching
// configuration, analogous to Category but pre-wired for bucketed tokens.
func NewLocationCategory(name string, radius float64, precision int) CategorySettings {
	if precision < 1 {
		precision = 1
	}
	if precision > 5 {
		precision = 5
	}
	c := Category(name,
		WithQualifiers(name),
		WithWeight(0),
		WithPartial(PartialStrategy{Kind: PartialNone}),
		WithSimilarity(SimilarityStrategy{Kind: SimilarityNone}),
	)
	c.Radius = radius
	c.Precision = precision
	return c
}

// LocationBucketDigits reports how many trailing digits NewLocationCategory
// expects the indexing pipeline to drop for the given precision (1..5).
func LocationBucketDigits(precision int) int {
	if d, ok := locationPrecisionDigits[precision]; ok {
		return d
	}
	return locationPrecisionDigits[3]
}

// TerminateEarlyConfig configures the early-termination policy of the
// search orchestrator. The zero value is "off": all allocations are
// evaluated. ExtraAllocations = 0 with Enabled = true means "stop
// immediately upon sufficiency" -- a distinct state from "off".
type TerminateEarlyConfig struct {
	Enabled          bool `json:"enabled" yaml:"enabled"`
	ExtraAllocations int  `json:"extra_allocations" yaml:"extra_allocations"`
}

// TerminateEarlyOff is the default: evaluate every allocation.
func TerminateEarlyOff() TerminateEarlyConfig {
	return TerminateEarlyConfig{Enabled: false}
}

// TerminateEarly turns on early termination with the given extra
// allocations count (the positional-integer form of the configuration).
func TerminateEarly(extraAllocations int) TerminateEarlyConfig {
	if extraAllocations < 0 {
		extraAllocations = 0
	}
	return TerminateEarlyConfig{Enabled: true, ExtraAllocations: extraAllocations}
}

// WithExtraAllocations is the named-argument form equivalent to
// TerminateEarly(n); both forms are accepted by the search configuration.
func WithExtraAllocations(n int) TerminateEarlyConfig { return TerminateEarly(n) }

// defaultExtraAllocations is the extra-allocation count TerminateEarlyDefault
// uses. An Enabled config whose ExtraAllocations is left at zero means "stop
// immediately upon sufficiency", not this default; callers that mean the
// default should use TerminateEarlyDefault().
const defaultExtraAllocations = 1

// TerminateEarlyDefault turns on early termination with the default of one
// extra allocation past sufficiency.
func TerminateEarlyDefault() TerminateEarlyConfig {
	return TerminateEarlyConfig{Enabled: true, ExtraAllocations: defaultExtraAllocations}
}

// IndexSettings contains all configuration for a search index: its
// categories and default search behavior.
type IndexSettings struct {
	Name          string               `json:"name" yaml:"name"`
	Categories    []CategorySettings   `json:"categories" yaml:"categories"`
	TerminateEarly TerminateEarlyConfig `json:"terminate_early" yaml:"terminate_early"`
	DefaultLimit  int                  `json:"default_limit" yaml:"default_limit"`
}

// ApplyDefaults fills unset fields with the engine's defaults.
func (s *IndexSettings) ApplyDefaults() {
	if s.DefaultLimit <= 0 {
		s.DefaultLimit = 20
	}
	if s.Categories == nil {
		s.Categories = []CategorySettings{}
	}
}

// ValidateFieldNames performs basic structural validation, mirroring the
// non-fatal, collect-everything style of the teacher's settings validator.
func (s *IndexSettings) ValidateFieldNames() []string {
	var conflicts []string

	seen := make(map[string]bool)
	for _, c := range s.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			conflicts = append(conflicts, "category name cannot be empty or whitespace-only")
			continue
		}
		if seen[name] {
			conflicts = append(conflicts, "duplicate category '"+name+"' found in categories")
		}
		seen[name] = true

		if c.Partial.Kind == PartialSubstring && c.Partial.From > c.Partial.To && c.Partial.To != 0 {
			conflicts = append(conflicts, "category '"+name+"' has partial.from greater than partial.to")
		}
		if c.From != "" {
			if _, ok := seen[c.From]; !ok {
				found := false
				for _, other := range s.Categories {
					if other.Name == c.From {
						found = true
						break
					}
				}
				if !found {
					conflicts = append(conflicts, "category '"+name+"' has from='"+c.From+"' which is not a configured category")
				}
			}
		}
	}

	return conflicts
}

// CategoryByName returns the settings for the named category, if configured.
func (s *IndexSettings) CategoryByName(name string) (CategorySettings, bool) {
	for _, c := range s.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategorySettings{}, false
}
