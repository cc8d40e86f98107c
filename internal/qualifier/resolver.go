// Package qualifier resolves a query token's user-supplied qualifier
// strings to the set of categories of an index it is allowed to match.
package qualifier

import (
	"sort"

	"github.com/gcbaptista/allocation-search-engine/index"
	"github.com/gcbaptista/allocation-search-engine/internal/tokenizer"
)

// Resolve computes the allowed category set for token against idx. If the
// token carries explicit qualifiers, the result is the union of categories
// whose alias list contains any of them -- an empty result means the token
// is unsatisfiable and will produce zero allocations, never an error.
// Without qualifiers, every category of the index is allowed.
//
// unknown collects any qualifier string that did not alias a single
// category, so the caller can surface it as a non-fatal diagnostic.
func Resolve(token tokenizer.QueryToken, idx *index.Index) (allowed []string, unknown []string) {
	idx.Mu.RLock()
	defer idx.Mu.RUnlock()

	if len(token.Qualifiers) == 0 {
		allowed = make([]string, 0, len(idx.Categories))
		for name := range idx.Categories {
			allowed = append(allowed, name)
		}
		sort.Strings(allowed)
		return allowed, nil
	}

	seen := make(map[string]struct{})
	for _, q := range token.Qualifiers {
		matchedAny := false
		for name, cat := range idx.Categories {
			if cat.HasQualifier(q) {
				if _, ok := seen[name]; !ok {
					seen[name] = struct{}{}
					allowed = append(allowed, name)
				}
				matchedAny = true
			}
		}
		if !matchedAny {
			unknown = append(unknown, q)
		}
	}
	sort.Strings(allowed)
	return allowed, unknown
}
