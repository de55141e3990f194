package index

import "strings"

// Words that carry no signal when matching free-text terms against
// component names and category segments.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "with": true, "and": true,
	"of": true, "in": true, "on": true, "for": true, "to": true,
}

// Tokens splits text into normalized match tokens: lowercased, punctuation
// trimmed, stop words removed. The same normalization is applied to the
// indexed vocabulary and to incoming query terms, so matches are exact
// string equality on normalized tokens.
func Tokens(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	})
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"()[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

// Normalize canonicalizes a single design token for vocabulary lookup.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// TokenTerms splits a free-text term on whitespace only, preserving
// hyphenated design tokens such as "indigo-600" or "px-4" so they can be
// looked up in the token vocabulary verbatim.
func TokenTerms(text string) []string {
	fields := strings.Fields(text)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if normalized := Normalize(f); normalized != "" {
			terms = append(terms, normalized)
		}
	}
	return terms
}
