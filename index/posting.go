// Package index holds the in-memory posting store consumed by the query
// core. Everything here is built offline and loaded once; nothing in this
// package mutates a posting list at query time.
package index

import "sort"

// ID is the record identifier type. Integer by convention.
type ID = uint32

// IDList is a strictly ascending, duplicate-free list of record ids.
type IDList []ID

// TokenIndex maps an indexed token to its ascending posting list.
type TokenIndex map[string]IDList

// PhoneticIndex maps a phonetic code to the tokens that share it. Token
// lists are kept sorted for deterministic sibling resolution.
type PhoneticIndex map[string][]string

// CategoryStore holds the three parallel bundles and the weights store for
// a single category of a single index.
//
//   - Exact is the authoritative bundle for a token present verbatim.
//   - Partial holds the substring/prefix expansion computed at index-build
//     time; from the query side it is looked up exactly like Exact.
//   - PhoneticCode/Phonetic together form the similarity bundle: a token
//     is mapped to its phonetic code, and the code is mapped to every
//     token sharing it.
type CategoryStore struct {
	Exact        TokenIndex
	Partial      TokenIndex
	PhoneticCode map[string]string // token -> phonetic code
	Phonetic     PhoneticIndex     // phonetic code -> sibling tokens
	Weights      map[string]float64
	SimilarityK  int // max siblings returned by Similar
}

// NewCategoryStore returns an empty, ready-to-populate store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{
		Exact:        make(TokenIndex),
		Partial:      make(TokenIndex),
		PhoneticCode: make(map[string]string),
		Phonetic:     make(PhoneticIndex),
		Weights:      make(map[string]float64),
	}
}

// PutExact registers token as present verbatim for id, keeping the posting
// list ascending and duplicate-free.
func (c *CategoryStore) PutExact(token string, id ID, weight float64) {
	c.Exact[token] = insertSorted(c.Exact[token], id)
	c.Weights[token] = weight
}

// PutPartial registers a substring-expansion entry: token is a substring of
// some indexed token, and id is added under token directly (the expansion
// itself happened at index-build time; this store only records the result).
func (c *CategoryStore) PutPartial(token string, id ID, weight float64) {
	c.Partial[token] = insertSorted(c.Partial[token], id)
	if _, ok := c.Weights[token]; !ok {
		c.Weights[token] = weight
	}
}

// PutSimilarity registers token under phoneticCode, making it discoverable
// as a sibling of every other token sharing that code.
func (c *CategoryStore) PutSimilarity(token, phoneticCode string) {
	c.PhoneticCode[token] = phoneticCode
	siblings := c.Phonetic[phoneticCode]
	for _, s := range siblings {
		if s == token {
			return
		}
	}
	siblings = append(siblings, token)
	sort.Strings(siblings)
	c.Phonetic[phoneticCode] = siblings
}

func insertSorted(list IDList, id ID) IDList {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= id })
	if i < len(list) && list[i] == id {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = id
	return list
}
