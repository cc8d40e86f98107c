package allocation

import (
	"sort"

	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/internal/intersect"
)

// Result is the outcome of evaluating one allocation: its intersected id
// list (ascending), its score, and the allocation it came from. An
// allocation whose intersection is empty still counts as one evaluated
// allocation -- this distinction is what early termination observes.
type Result struct {
	IDs        []uint32
	Score      float64
	Allocation Allocation
}

// Evaluate resolves one allocation's id list: for each combination it
// collects the chosen bundle's ids (for similarity, the union of its
// sibling tokens' exact postings), then intersects all per-token lists.
func Evaluate(idx *index.Index, alloc Allocation) Result {
	idx.Mu.RLock()
	defer idx.Mu.RUnlock()

	lists := make([][]uint32, 0, len(alloc.Combinations))
	for _, combo := range alloc.Combinations {
		cat, ok := idx.Categories[combo.Category]
		if !ok {
			return Result{Allocation: alloc, Score: alloc.Score}
		}

		switch combo.Bundle {
		case index.BundleExact:
			lists = append(lists, []uint32(cat.Exact().IDsFor(combo.Token)))
		case index.BundlePartial:
			lists = append(lists, []uint32(cat.Partial().IDsFor(combo.Token)))
		case index.BundleSimilarity:
			lists = append(lists, resolveSimilarity(cat, combo.Token))
		}
	}

	ids := intersect.Intersect(lists)
	return Result{IDs: ids, Score: alloc.Score, Allocation: alloc}
}

// resolveSimilarity treats the similarity bundle as a token-rewriting
// layer in front of the exact bundle: it looks up token's sibling tokens
// and unions their exact posting lists ascending.
func resolveSimilarity(cat *index.Category, token string) []uint32 {
	exact := cat.Exact()
	siblings := cat.Similarity().Similar(token)

	seen := make(map[uint32]struct{})
	for _, sibling := range siblings {
		for _, id := range exact.IDsFor(sibling) {
			seen[id] = struct{}{}
		}
	}

	out := make([]uint32, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
