package ui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// truncate cuts s to width display cells, adding "..." when cut.
func truncate(s string, width int) string {
	if width <= 3 {
		width = 3
	}
	return runewidth.Truncate(s, width, "...")
}

// singleLine collapses newlines and runs of spaces so an excerpt fits on
// one row.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// highlightMatches wraps every case-insensitive occurrence of query in
// highlightStyle. Matching is rune based so highlighted spans always line
// up with the original text.
func highlightMatches(text, query string) string {
	if query == "" || text == "" {
		return text
	}

	runes := []rune(text)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}
	needle := []rune(query)
	for i, r := range needle {
		needle[i] = unicode.ToLower(r)
	}

	var b strings.Builder
	last := 0
	for i := 0; i+len(needle) <= len(lower); {
		if runesEqual(lower[i:i+len(needle)], needle) {
			b.WriteString(string(runes[last:i]))
			b.WriteString(highlightStyle.Render(string(runes[i : i+len(needle)])))
			i += len(needle)
			last = i
			continue
		}
		i++
	}
	b.WriteString(string(runes[last:]))
	return b.String()
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
