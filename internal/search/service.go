// Package search implements the query-evaluation pipeline: tokenization,
// qualifier resolution, allocation enumeration and evaluation, and the
// early-termination policy that lets the engine stop before every
// allocation has been scored.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gcbaptista/allocation-search-engine/config"
	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/internal/allocation"
	"github.com/gcbaptista/allocation-search-engine/internal/errors"
	"github.com/gcbaptista/allocation-search-engine/internal/pool"
	"github.com/gcbaptista/allocation-search-engine/internal/qualifier"
	"github.com/gcbaptista/allocation-search-engine/internal/tokenizer"
	"github.com/google/uuid"
)

// idBuffer is the per-query scratch structure drawn from the pool: the
// running id accumulator across evaluated allocations.
type idBuffer struct {
	ids []uint32
}

// queryPlan is the resolved, index-specific shape of a raw query string:
// its tokens' texts, their per-token allowed category sets, and any
// unknown-qualifier diagnostics produced while resolving them. It never
// depends on limit/offset, so it can be memoized purely by query text.
type queryPlan struct {
	tokenTexts      []string
	allowedPerToken [][]string
	warnings        []string
}

// Service implements the query core for a single index snapshot. It is
// safe for concurrent use: the index it borrows is immutable after load,
// and the scratch pool synchronizes its own bookkeeping internally.
type Service struct {
	idx        *index.Index
	settings   *config.IndexSettings
	catIndexOf map[string]int
	scratch    *pool.Pool
	plans      *pool.QueryCache[queryPlan]
}

// NewService returns a Service querying idx under settings. idx must not be
// mutated after this call; the category index order used for deterministic
// allocation tie-breaking is fixed at construction time.
func NewService(idx *index.Index, settings *config.IndexSettings) (*Service, error) {
	if idx == nil {
		return nil, fmt.Errorf("index cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}

	names := idx.CategoryNames()
	sort.Strings(names)
	catIndexOf := make(map[string]int, len(names))
	for i, name := range names {
		catIndexOf[name] = i
	}

	return &Service{
		idx:        idx,
		settings:   settings,
		catIndexOf: catIndexOf,
		scratch:    pool.New(),
		plans:      pool.NewQueryCache[queryPlan](0),
	}, nil
}

// resolvePlan tokenizes text and resolves each token's allowed categories,
// memoizing the result by the exact raw query string: repeated identical
// queries against this index skip straight to allocation enumeration.
func (s *Service) resolvePlan(text string) queryPlan {
	if plan, ok := s.plans.Get(text); ok {
		return plan
	}

	tokens := tokenizer.TokenizeQuery(text)
	plan := queryPlan{
		tokenTexts:      make([]string, len(tokens)),
		allowedPerToken: make([][]string, len(tokens)),
	}
	for i, tok := range tokens {
		plan.tokenTexts[i] = tok.Text
		allowed, unknown := qualifier.Resolve(tok, s.idx)
		plan.allowedPerToken[i] = allowed
		for _, alias := range unknown {
			plan.warnings = append(plan.warnings, errors.NewUnknownQualifierError(alias, tok.Text).Error())
		}
	}

	s.plans.Put(text, plan)
	return plan
}

// Search executes one query against the service's index, returning ranked
// ids with early termination applied per the index's configuration.
//
// The termination predicate fires once both hold: enough ids have
// accumulated to satisfy offset+limit, AND at least
// settings.TerminateEarly.ExtraAllocations+1 allocations have been
// evaluated in total. When sufficiency is reached later than that floor,
// evaluation stops immediately -- extra_allocations only extends
// evaluation when sufficiency would otherwise arrive sooner than it.
func (s *Service) Search(ctx context.Context, q Query) (Result, error) {
	start := time.Now()
	queryID := uuid.NewString()

	limit := q.Limit
	if limit <= 0 {
		limit = s.settings.DefaultLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	plan := s.resolvePlan(q.Text)
	if len(plan.tokenTexts) == 0 {
		// Malformed/empty-after-tokenization query: empty success, not an error.
		return Result{Offset: offset, Duration: time.Since(start), QueryID: queryID}, nil
	}
	warnings := plan.warnings

	enumerator := allocation.Plan(s.idx, plan.tokenTexts, plan.allowedPerToken, s.catIndexOf)
	if enumerator.Empty() {
		return Result{Offset: offset, Duration: time.Since(start), Warnings: warnings, QueryID: queryID}, nil
	}

	buf := pool.Obtain(s.scratch, func() *idBuffer { return &idBuffer{ids: make([]uint32, 0, 64)} })
	buf.ids = buf.ids[:0]
	defer pool.Release(s.scratch, buf)

	var summaries []AllocationSummary
	evaluated := 0
	truncated := false
	terminate := s.settings.TerminateEarly

	enumerator.Enumerate(func(a allocation.Allocation) bool {
		select {
		case <-ctx.Done():
			truncated = true
			return false
		default:
		}

		res := allocation.Evaluate(s.idx, a)
		evaluated++

		if len(res.IDs) > 0 {
			buf.ids = append(buf.ids, reversedIDs(res.IDs)...)
			summaries = append(summaries, AllocationSummary{
				Score:      res.Score,
				Categories: categoriesOf(a),
				IDsCount:   len(res.IDs),
			})
		}

		if terminate.Enabled {
			if len(buf.ids) >= offset+limit && evaluated >= terminate.ExtraAllocations+1 {
				return false
			}
		}
		return true
	})

	total := len(buf.ids)
	ids := sliceWindow(buf.ids, offset, limit)

	return Result{
		IDs:         ids,
		Allocations: summaries,
		Offset:      offset,
		Total:       total,
		Duration:    time.Since(start),
		Truncated:   truncated,
		Warnings:    warnings,
		QueryID:     queryID,
	}, nil
}

func categoriesOf(a allocation.Allocation) []string {
	out := make([]string, len(a.Combinations))
	for i, c := range a.Combinations {
		out[i] = c.Category
	}
	return out
}

// reversedIDs returns ids reversed, producing the "newest first" descending
// order each allocation's contribution is concatenated in.
func reversedIDs(ids []uint32) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}

func sliceWindow(ids []uint32, offset, limit int) []uint32 {
	if offset >= len(ids) {
		return nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	out := make([]uint32, end-offset)
	copy(out, ids[offset:end])
	return out
}
