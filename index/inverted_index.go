package index

import (
	"bytes"
	"encoding/gob"
	"sync"
)

// Category is a named logical field of an index. It carries its qualifier
// aliases, its weight contribution to allocation scoring, and the three
// parallel posting-list bundles backing it.
type Category struct {
	Name       string
	Qualifiers []string
	Weight     float64
	Store      *CategoryStore
}

// NewCategory returns a category with an empty, ready-to-populate store.
// If qualifiers is empty the category's own name is its sole alias.
func NewCategory(name string, weight float64, qualifiers []string) *Category {
	if len(qualifiers) == 0 {
		qualifiers = []string{name}
	}
	return &Category{
		Name:       name,
		Qualifiers: qualifiers,
		Weight:     weight,
		Store:      NewCategoryStore(),
	}
}

// Exact returns this category's exact bundle.
func (c *Category) Exact() Bundle { return NewBundle(BundleExact, c.Store) }

// Partial returns this category's partial (substring-expanded) bundle.
func (c *Category) Partial() Bundle { return NewBundle(BundlePartial, c.Store) }

// Similarity returns this category's phonetic similarity bundle.
func (c *Category) Similarity() Bundle { return NewBundle(BundleSimilarity, c.Store) }

// HasQualifier reports whether alias names this category.
func (c *Category) HasQualifier(alias string) bool {
	for _, q := range c.Qualifiers {
		if q == alias {
			return true
		}
	}
	return false
}

// Index is a named, immutable-after-load collection of categories. It is
// the unit swapped atomically when a new snapshot is built (see
// internal/engine).
type Index struct {
	Mu         sync.RWMutex
	Name       string
	Categories map[string]*Category
}

// NewIndex returns an empty named index.
func NewIndex(name string) *Index {
	return &Index{Name: name, Categories: make(map[string]*Category)}
}

// CategoryNames returns the index's category names in map iteration order;
// callers that need determinism should sort the result.
func (idx *Index) CategoryNames() []string {
	idx.Mu.RLock()
	defer idx.Mu.RUnlock()
	names := make([]string, 0, len(idx.Categories))
	for name := range idx.Categories {
		names = append(names, name)
	}
	return names
}

// gobIndexData excludes the mutex from gob encoding.
type gobIndexData struct {
	Name       string
	Categories map[string]*Category
}

// GobEncode implements gob.GobEncoder.
func (idx *Index) GobEncode() ([]byte, error) {
	idx.Mu.RLock()
	defer idx.Mu.RUnlock()

	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(gobIndexData{Name: idx.Name, Categories: idx.Categories}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (idx *Index) GobDecode(data []byte) error {
	var decoded gobIndexData
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	if err := dec.Decode(&decoded); err != nil {
		return err
	}

	idx.Mu.Lock()
	defer idx.Mu.Unlock()
	idx.Name = decoded.Name
	idx.Categories = decoded.Categories
	if idx.Categories == nil {
		idx.Categories = make(map[string]*Category)
	}
	return nil
}
