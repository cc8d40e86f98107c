package tokenizer

import "strings"

// QueryToken is a normalized text fragment extracted from a query, with an
// optional set of user-requested qualifier strings. Immutable for the life
// of a query.
type QueryToken struct {
	Text       string
	Qualifiers []string
}

// TokenizeQuery splits raw query text into an ordered sequence of
// QueryTokens. It splits on whitespace, then runs each field's body through
// Tokenize (camelCase splitting, lowercasing, splitting on
// non-alphanumeric characters). A token of the form
// "x:y" yields text "y" with qualifiers ["x"]; "x,y:z" yields qualifiers
// ["x", "y"]. Empty tokens, including ones that are qualifiers with no
// text, are dropped.
func TokenizeQuery(text string) []QueryToken {
	fields := strings.Fields(text)
	tokens := make([]QueryToken, 0, len(fields))

	for _, field := range fields {
		qualifiers, body := splitQualifier(field)

		for _, t := range Tokenize(body) {
			if t == "" {
				continue
			}
			tokens = append(tokens, QueryToken{Text: t, Qualifiers: qualifiers})
		}
	}
	return tokens
}

// splitQualifier extracts the "x,y:z" qualifier prefix from a raw
// whitespace-delimited field, returning the qualifier aliases (lowercased,
// comma-separated) and the remaining body text. A field with no colon, or
// whose colon is not preceded by qualifier text, has no qualifiers.
func splitQualifier(field string) (qualifiers []string, body string) {
	idx := strings.Index(field, ":")
	if idx <= 0 {
		return nil, field
	}

	prefix := field[:idx]
	rest := field[idx+1:]

	parts := strings.Split(prefix, ",")
	qualifiers = make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			qualifiers = append(qualifiers, p)
		}
	}
	if len(qualifiers) == 0 {
		return nil, field
	}
	return qualifiers, rest
}
