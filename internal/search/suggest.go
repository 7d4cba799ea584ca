package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/cfs-ui/cfs-docs/internal/docs"
)

// navTitles adapts a nav list to fuzzy.Source.
type navTitles []docs.NavItem

func (n navTitles) String(i int) string { return n[i].Title }
func (n navTitles) Len() int            { return len(n) }

// Suggest returns up to n page titles that fuzzily resemble query. It is
// only used for "did you mean" hints and never affects Search.
func Suggest(query string, items []docs.NavItem, n int) []string {
	query = strings.TrimSpace(query)
	if query == "" || n <= 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, navTitles(items))
	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		out = append(out, items[m.Index].Title)
		if len(out) == n {
			break
		}
	}
	return out
}
