package allocation

import (
	"testing"

	"github.com/gcbaptista/allocation-search-engine/index"
)

func choice(category string, bundle index.BundleKind, score float64, catIndex int) categoryChoice {
	return categoryChoice{category: category, bundle: bundle, score: score, catIndex: catIndex}
}

func TestEnumeratorYieldsNonIncreasingScoreOrder(t *testing.T) {
	choices := [][]categoryChoice{
		{choice("title", index.BundleExact, 5, 0), choice("cast", index.BundleExact, 3, 1)},
		{choice("title", index.BundleExact, 4, 0), choice("cast", index.BundleExact, 2, 1)},
	}
	e := NewEnumerator([]string{"hello", "world"}, choices)

	var scores []float64
	e.Enumerate(func(a Allocation) bool {
		scores = append(scores, a.Score)
		return true
	})

	if len(scores) != 4 {
		t.Fatalf("expected 4 allocations (2x2 product), got %d: %v", len(scores), scores)
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[i-1] {
			t.Fatalf("scores not non-increasing: %v", scores)
		}
	}
	if scores[0] != 9 {
		t.Fatalf("expected best allocation score 5+4=9, got %v", scores[0])
	}
}

func TestEnumeratorStopsWhenYieldReturnsFalse(t *testing.T) {
	choices := [][]categoryChoice{
		{choice("title", index.BundleExact, 5, 0), choice("cast", index.BundleExact, 3, 1)},
	}
	e := NewEnumerator([]string{"hello"}, choices)

	count := 0
	e.Enumerate(func(a Allocation) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("expected enumeration to stop after 1, got %d", count)
	}
}

func TestEnumeratorEmptyWhenAnyTokenHasNoChoices(t *testing.T) {
	choices := [][]categoryChoice{
		{choice("title", index.BundleExact, 5, 0)},
		{},
	}
	e := NewEnumerator([]string{"hello", "world"}, choices)
	if !e.Empty() {
		t.Fatalf("expected Empty() to be true")
	}

	count := 0
	e.Enumerate(func(a Allocation) bool { count++; return true })
	if count != 0 {
		t.Fatalf("expected zero allocations, got %d", count)
	}
}

func TestEnumeratorTieBreaksByCategoryIndex(t *testing.T) {
	// BuildTokenChoices pre-sorts each token's choice vector by
	// (score desc, catIndex asc), so the enumerator's first pop for a
	// single-token query is simply the first entry in that vector.
	choices := [][]categoryChoice{
		{choice("alpha", index.BundleExact, 1, 0), choice("zeta", index.BundleExact, 1, 1)},
	}
	e := NewEnumerator([]string{"hello"}, choices)

	var firstCategory string
	e.Enumerate(func(a Allocation) bool {
		if firstCategory == "" {
			firstCategory = a.Combinations[0].Category
		}
		return true
	})
	if firstCategory != "alpha" {
		t.Fatalf("expected the lower catIndex entry first, got %v", firstCategory)
	}
}

func TestEnumeratorDeterministicTieBreakAcrossMultipleTokens(t *testing.T) {
	// Every allocation scores 2. The first one yielded is the start state
	// built from each token's first choice, tuple (0,1). It opens two
	// equal-score states, tuples (1,1) and (0,0); the lexicographically
	// smaller (0,0) must be yielded next.
	choices := [][]categoryChoice{
		{choice("a", index.BundleExact, 1, 0), choice("b", index.BundleExact, 1, 1)},
		{choice("b", index.BundleExact, 1, 1), choice("a", index.BundleExact, 1, 0)},
	}
	e := NewEnumerator([]string{"x", "y"}, choices)

	var allocations []Allocation
	e.Enumerate(func(a Allocation) bool {
		allocations = append(allocations, a)
		return len(allocations) < 2
	})

	if len(allocations) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(allocations))
	}
	first := allocations[0]
	if first.Combinations[0].Category != "a" || first.Combinations[1].Category != "b" {
		t.Fatalf("expected the start state, tuple (0,1), first, got %+v", first.Combinations)
	}
	second := allocations[1]
	if second.Combinations[0].Category != "a" || second.Combinations[1].Category != "a" {
		t.Fatalf("expected the (0,0) tuple to win the tie against (1,1), got %+v", second.Combinations)
	}
}
