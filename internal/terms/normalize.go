package terms

import "strings"

// Normalize canonicalizes a raw term into the comparison key used for storage
// and lookup: leading/trailing whitespace is trimmed, the term is lowercased,
// and every interior whitespace run collapses to a single space. Two terms
// differing only in case or whitespace are the same entry. An empty or
// whitespace-only term normalizes to the empty key, which is never an error.
func Normalize(term string) string {
	return strings.ToLower(strings.Join(strings.Fields(term), " "))
}

// Tokens splits a term into its normalized space-separated tokens.
func Tokens(term string) []string {
	return strings.Fields(strings.ToLower(term))
}
