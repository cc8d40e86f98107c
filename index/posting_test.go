package index

import "testing"

func TestCategoryStorePutExactKeepsAscendingNoDuplicates(t *testing.T) {
	c := NewCategoryStore()
	c.PutExact("hello", 3, 1.0)
	c.PutExact("hello", 1, 1.0)
	c.PutExact("hello", 2, 1.0)
	c.PutExact("hello", 2, 1.0) // duplicate insert must be a no-op

	got := c.Exact["hello"]
	want := IDList{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCategoryStorePutSimilarityDedupesAndSorts(t *testing.T) {
	c := NewCategoryStore()
	c.PutSimilarity("smith", "S530")
	c.PutSimilarity("smythe", "S530")
	c.PutSimilarity("smith", "S530") // duplicate

	siblings := c.Phonetic["S530"]
	if len(siblings) != 2 {
		t.Fatalf("expected 2 siblings, got %v", siblings)
	}
	if siblings[0] != "smith" || siblings[1] != "smythe" {
		t.Fatalf("expected sorted siblings, got %v", siblings)
	}
}

func TestBundleIDsForEmptyLookupReturnsNilNotError(t *testing.T) {
	c := NewCategoryStore()
	b := NewBundle(BundleExact, c)
	if ids := b.IDsFor("nope"); ids != nil {
		t.Fatalf("expected nil, got %v", ids)
	}
}

func TestBundleWeightFor(t *testing.T) {
	c := NewCategoryStore()
	c.PutExact("hello", 1, 2.5)
	b := NewBundle(BundleExact, c)

	w, ok := b.WeightFor("hello")
	if !ok || w != 2.5 {
		t.Fatalf("WeightFor(hello) = %v, %v; want 2.5, true", w, ok)
	}
	if _, ok := b.WeightFor("missing"); ok {
		t.Fatalf("expected no weight entry for missing token")
	}
}

func TestBundleSimilarExcludesSelfAndCapsAtK(t *testing.T) {
	c := NewCategoryStore()
	c.SimilarityK = 2
	for _, tok := range []string{"cat", "kat", "kaat", "katt"} {
		c.PutSimilarity(tok, "K300")
	}
	b := NewBundle(BundleSimilarity, c)

	siblings := b.Similar("cat")
	if len(siblings) != 2 {
		t.Fatalf("expected 2 siblings (capped), got %v", siblings)
	}
	for _, s := range siblings {
		if s == "cat" {
			t.Fatalf("Similar must exclude the token itself, got %v", siblings)
		}
	}
}

func TestBundleHasTokenSimilarityResolvesThroughExact(t *testing.T) {
	c := NewCategoryStore()
	c.PutSimilarity("cat", "K300")
	c.PutSimilarity("kat", "K300")
	c.PutExact("kat", 1, 1.0)

	b := NewBundle(BundleSimilarity, c)
	if !b.HasToken("cat") {
		t.Fatalf("expected cat to resolve via sibling kat's exact entry")
	}
}
