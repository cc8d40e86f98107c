package pool

import "testing"

type scratchBuffer struct {
	data []uint32
}

type frontierNode struct {
	idxs []int
}

func TestObtainReturnsFreshInstanceWhenPoolEmpty(t *testing.T) {
	p := New()
	built := 0
	v := Obtain(p, func() *scratchBuffer {
		built++
		return &scratchBuffer{}
	})
	if v == nil {
		t.Fatalf("expected non-nil instance")
	}
	if built != 1 {
		t.Fatalf("expected newFn called once, got %d", built)
	}
}

func TestObtainAfterReleaseReturnsRecycledInstance(t *testing.T) {
	p := New()
	v1 := Obtain(p, func() *scratchBuffer { return &scratchBuffer{data: []uint32{1, 2, 3}} })
	Release(p, v1)

	built := 0
	v2 := Obtain(p, func() *scratchBuffer {
		built++
		return &scratchBuffer{}
	})
	if built != 0 {
		t.Fatalf("expected newFn NOT called, recycled instance should have been reused")
	}
	if v2 != v1 {
		t.Fatalf("expected the same pointer to be recycled")
	}
}

func TestReleaseAllOnOneTypeDoesNotAffectAnother(t *testing.T) {
	p := New()
	buf := Obtain(p, func() *scratchBuffer { return &scratchBuffer{} })
	node := Obtain(p, func() *frontierNode { return &frontierNode{} })

	ReleaseAll[scratchBuffer](p)

	if LiveCount[scratchBuffer](p) != 0 {
		t.Fatalf("expected scratchBuffer live set drained")
	}
	if LiveCount[frontierNode](p) != 1 {
		t.Fatalf("expected frontierNode live set untouched, got %d", LiveCount[frontierNode](p))
	}

	builtBuf := 0
	recycled := Obtain(p, func() *scratchBuffer { builtBuf++; return &scratchBuffer{} })
	if builtBuf != 0 || recycled != buf {
		t.Fatalf("expected release_all to make the buffer obtainable again")
	}
	_ = node
}

func TestGlobalDrainClearsAllTypeScopes(t *testing.T) {
	p := New()
	buf := Obtain(p, func() *scratchBuffer { return &scratchBuffer{} })
	Release(p, buf)
	Obtain(p, func() *frontierNode { return &frontierNode{} })

	p.Drain()

	if LiveCount[scratchBuffer](p) != 0 || LiveCount[frontierNode](p) != 0 {
		t.Fatalf("expected drain to reset all scopes")
	}

	built := 0
	Obtain(p, func() *scratchBuffer { built++; return &scratchBuffer{} })
	if built != 1 {
		t.Fatalf("expected a drained pool to build fresh instances, not reuse pre-drain ones")
	}
}

func TestReleaseOfNonLiveValueIsNoop(t *testing.T) {
	p := New()
	v := &scratchBuffer{}
	Release(p, v) // never obtained from this pool

	built := 0
	Obtain(p, func() *scratchBuffer { built++; return &scratchBuffer{} })
	if built != 1 {
		t.Fatalf("expected releasing an unknown value not to seed the free list")
	}
}

func TestQueryCacheRecyclesEntriesUnderCapacity(t *testing.T) {
	c := NewQueryCache[int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected cached value for 'a', got %v, %v", v, ok)
	}

	c.Put("c", 3) // evicts least recently used ("b", since "a" was just touched)
	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected 'b' to have been evicted")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatalf("expected 'c' present, got %v, %v", v, ok)
	}
}

func TestQueryCachePurgeEmptiesAllEntries(t *testing.T) {
	c := NewQueryCache[int](4)
	c.Put("a", 1)
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after purge, got len %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected 'a' to be gone after purge")
	}
}
