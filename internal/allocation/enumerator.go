package allocation

import (
	"container/heap"
	"sort"
	"strconv"
	"strings"

	"github.com/gcbaptista/allocation-search-engine/index"
)

// BuildTokenChoices computes the per-token category score vector for one
// query token: the best bundle (exact, else partial, else similarity) for
// every category in allowedCategories that matches the token at all,
// sorted descending by score. catIndexOf supplies each category's
// deterministic index (its position in the index's sorted category name
// list) used to break allocation ties.
func BuildTokenChoices(idx *index.Index, token string, allowedCategories []string, catIndexOf map[string]int) []categoryChoice {
	idx.Mu.RLock()
	defer idx.Mu.RUnlock()

	choices := make([]categoryChoice, 0, len(allowedCategories))
	for _, catName := range allowedCategories {
		cat, ok := idx.Categories[catName]
		if !ok {
			continue
		}
		bundle, score, matched := bestBundleFor(cat, token)
		if !matched {
			continue
		}
		choices = append(choices, categoryChoice{
			category: catName,
			bundle:   bundle,
			score:    score,
			catIndex: catIndexOf[catName],
		})
	}

	sort.SliceStable(choices, func(i, j int) bool {
		if choices[i].score != choices[j].score {
			return choices[i].score > choices[j].score
		}
		return choices[i].catIndex < choices[j].catIndex
	})
	return choices
}

// kindBonus enforces exact > partial > similarity as the primary ranking
// key; category weight and bundle weight act as the secondary tie-break
// within a kind, as specified.
func kindBonus(kind index.BundleKind) float64 {
	switch kind {
	case index.BundleExact:
		return 2_000_000
	case index.BundlePartial:
		return 1_000_000
	default:
		return 0
	}
}

// bestBundleFor picks the best matching bundle for token at category,
// preferring exact, then partial, then similarity (resolved through the
// exact bundle of its best-weighted sibling).
func bestBundleFor(cat *index.Category, token string) (index.BundleKind, float64, bool) {
	exact := cat.Exact()
	if exact.HasToken(token) {
		w, _ := exact.WeightFor(token)
		return index.BundleExact, cat.Weight + w + kindBonus(index.BundleExact), true
	}

	partial := cat.Partial()
	if partial.HasToken(token) {
		w, _ := partial.WeightFor(token)
		return index.BundlePartial, cat.Weight + w + kindBonus(index.BundlePartial), true
	}

	sim := cat.Similarity()
	siblings := sim.Similar(token)
	bestWeight, matched := 0.0, false
	for _, sibling := range siblings {
		if w, ok := exact.WeightFor(sibling); ok {
			matched = true
			if w > bestWeight {
				bestWeight = w
			}
		}
	}
	if !matched {
		return 0, 0, false
	}
	return index.BundleSimilarity, cat.Weight + bestWeight + kindBonus(index.BundleSimilarity), true
}

// Enumerator lazily yields allocations for a fixed token sequence in
// non-increasing score order using a best-first frontier: it never
// materializes the full product of per-token category choices.
type Enumerator struct {
	tokens  []string
	choices [][]categoryChoice
}

// NewEnumerator returns an enumerator over tokens, each paired with its
// pre-sorted category choice vector (see BuildTokenChoices). Both slices
// must have the same length, one entry per query token.
func NewEnumerator(tokens []string, choices [][]categoryChoice) *Enumerator {
	return &Enumerator{tokens: tokens, choices: choices}
}

// Plan builds an enumerator directly from an index and per-token allowed
// category sets, computing each token's category choice vector via
// BuildTokenChoices. This is the entry point callers outside this package
// use, since categoryChoice itself is not exported.
func Plan(idx *index.Index, tokens []string, allowedPerToken [][]string, catIndexOf map[string]int) *Enumerator {
	choices := make([][]categoryChoice, len(tokens))
	for i, tok := range tokens {
		var allowed []string
		if i < len(allowedPerToken) {
			allowed = allowedPerToken[i]
		}
		choices[i] = BuildTokenChoices(idx, tok, allowed, catIndexOf)
	}
	return NewEnumerator(tokens, choices)
}

// Empty reports whether any token has zero category choices, in which case
// no allocation can ever be produced.
func (e *Enumerator) Empty() bool {
	if len(e.choices) == 0 {
		return true
	}
	for _, c := range e.choices {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

// frontierState is one candidate allocation in the best-first search: one
// chosen-category index per token, plus its cached score and category
// index tuple (for deterministic tie-breaking).
type frontierState struct {
	idxs     []int
	score    float64
	catTuple []int
}

func (e *Enumerator) newState(idxs []int) *frontierState {
	score := 0.0
	catTuple := make([]int, len(idxs))
	for i, choiceIdx := range idxs {
		c := e.choices[i][choiceIdx]
		score += c.score
		catTuple[i] = c.catIndex
	}
	return &frontierState{idxs: idxs, score: score, catTuple: catTuple}
}

func stateKey(idxs []int) string {
	var b strings.Builder
	for i, v := range idxs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// frontierHeap is a max-heap on score, tie-broken ascending on the
// allocation's category index tuple for determinism.
type frontierHeap []*frontierState

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	for k := 0; k < len(h[i].catTuple) && k < len(h[j].catTuple); k++ {
		if h[i].catTuple[k] != h[j].catTuple[k] {
			return h[i].catTuple[k] < h[j].catTuple[k]
		}
	}
	return false
}
func (h frontierHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x any)        { *h = append(*h, x.(*frontierState)) }
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Enumerate calls yield with each allocation in non-increasing score
// order, stopping as soon as yield returns false.
func (e *Enumerator) Enumerate(yield func(Allocation) bool) {
	if e.Empty() {
		return
	}

	n := len(e.tokens)
	start := make([]int, n)

	h := &frontierHeap{e.newState(start)}
	heap.Init(h)
	visited := map[string]struct{}{stateKey(start): {}}

	for h.Len() > 0 {
		st := heap.Pop(h).(*frontierState)
		if !yield(e.toAllocation(st)) {
			return
		}

		for i := 0; i < n; i++ {
			if st.idxs[i]+1 >= len(e.choices[i]) {
				continue
			}
			next := append([]int(nil), st.idxs...)
			next[i]++
			key := stateKey(next)
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			heap.Push(h, e.newState(next))
		}
	}
}

func (e *Enumerator) toAllocation(st *frontierState) Allocation {
	combos := make([]Combination, len(e.tokens))
	for i, tok := range e.tokens {
		c := e.choices[i][st.idxs[i]]
		combos[i] = Combination{Token: tok, Category: c.category, Bundle: c.bundle}
	}
	return Allocation{Combinations: combos, Score: st.score}
}
