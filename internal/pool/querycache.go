package pool

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultQueryPlanCacheSize bounds the warm-query plan cache: past this many
// distinct raw query strings, the least recently used plan is evicted.
const DefaultQueryPlanCacheSize = 512

// QueryCache memoizes an index's resolved query plan (tokenization plus
// qualifier resolution) by its raw query text, so repeated identical
// queries against the same index skip straight to enumeration.
type QueryCache[T any] struct {
	cache *lru.Cache[string, T]
}

// NewQueryCache returns a plan cache bounded at size entries, falling back
// to DefaultQueryPlanCacheSize when size is not positive.
func NewQueryCache[T any](size int) *QueryCache[T] {
	if size <= 0 {
		size = DefaultQueryPlanCacheSize
	}
	c, _ := lru.New[string, T](size)
	return &QueryCache[T]{cache: c}
}

// Get returns the cached plan for key, if present.
func (q *QueryCache[T]) Get(key string) (T, bool) {
	return q.cache.Get(key)
}

// Put stores plan under key, evicting the least recently used entry if the
// cache is already at capacity.
func (q *QueryCache[T]) Put(key string, plan T) {
	q.cache.Add(key, plan)
}

// Purge empties the cache, e.g. when the backing index snapshot is swapped
// and every memoized plan becomes stale.
func (q *QueryCache[T]) Purge() {
	q.cache.Purge()
}

// Len reports how many plans are currently cached.
func (q *QueryCache[T]) Len() int {
	return q.cache.Len()
}
