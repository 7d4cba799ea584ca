package search

import "unicode"

const (
	excerptWidth    = 100
	excerptLead     = 30
	excerptEllipsis = "..."
)

// Excerpt returns a window of content around the first case-insensitive
// occurrence of query: up to excerptLead runes of context before the match
// and excerptWidth-excerptLead runes from the match on, with "..." marking
// each cut side. A match near the start therefore gives a shorter window.
// When query does not occur, the first excerptWidth runes are returned.
func Excerpt(content, query string) string {
	runes := []rune(content)
	pos := indexFold(fold(content), fold(query))

	if pos < 0 {
		end := min(len(runes), excerptWidth)
		return string(runes[:end]) + excerptEllipsis
	}

	start := max(0, pos-excerptLead)
	end := min(len(runes), pos+excerptWidth-excerptLead)

	out := string(runes[start:end])
	if start > 0 {
		out = excerptEllipsis + out
	}
	if end < len(runes) {
		out += excerptEllipsis
	}
	return out
}

// fold lowercases rune by rune so indices in the result line up with
// []rune(s). strings.ToLower can change rune counts for some scripts.
func fold(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func containsFold(haystack, needle []rune) bool {
	return indexFold(haystack, needle) >= 0
}

// indexFold returns the rune index of the first needle in haystack, or -1.
// Both arguments must already be folded.
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, r := range needle {
			if haystack[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
