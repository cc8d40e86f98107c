// Package allocation implements the combinatorial core of a query: given a
// token sequence and per-token allowed category sets, it enumerates
// allocations (one category assignment per token) in descending score
// order, and evaluates a chosen allocation into an intersected id list.
package allocation

import "github.com/gcbaptista/allocation-search-engine/index"

// Combination is a single (token, category, bundle) triple within an
// allocation.
type Combination struct {
	Token    string
	Category string
	Bundle   index.BundleKind
}

// Allocation is an assignment of each query token to one category,
// together with the chosen bundle per token and the total score.
type Allocation struct {
	Combinations []Combination
	Score        float64
}

// categoryChoice is one token's candidate assignment to a single category:
// the best bundle available for that (token, category) pair and its score
// contribution (category weight + bundle weight, descending, with
// exact > partial > similarity as the tie-break order already baked into
// how choices are built).
type categoryChoice struct {
	category string
	bundle   index.BundleKind
	score    float64
	catIndex int // index of category in the index's deterministic category order, for tie-breaking
}
