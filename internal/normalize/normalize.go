// Package normalize provides text folding for client-side search matching.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SearchKey folds a string for search comparison: unicode decomposition,
// combining marks stripped, lowercased. "Dirac" and "dirác" fold to the
// same key, so shop names typed with or without accents still match.
func SearchKey(s string) string {
	// Decompose accented characters.
	s = norm.NFKD.String(s)

	// Strip combining marks left over from decomposition.
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)

	return strings.ToLower(s)
}

// ContainsFold reports whether s contains substr under SearchKey folding.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(SearchKey(s), SearchKey(substr))
}
