package index

import "github.com/gcbaptista/allocation-search-engine/config"

// FromSettings returns an empty index with one category per configured
// CategorySettings entry, ready for an (out-of-scope) index-building
// pipeline to populate via CategoryStore.PutExact/PutPartial/PutSimilarity.
// A category whose From aliases another category shares that category's
// qualifiers are independent; only the source data is conceptually shared,
// which is the pipeline's concern, not this one's.
func FromSettings(settings *config.IndexSettings) *Index {
	idx := NewIndex(settings.Name)
	for _, cs := range settings.Categories {
		idx.Categories[cs.Name] = NewCategory(cs.Name, cs.Weight, cs.Qualifiers)
	}
	return idx
}
