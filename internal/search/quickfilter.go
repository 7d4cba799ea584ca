package search

import (
	"strings"

	"github.com/cfs-ui/cfs-docs/internal/docs"
)

// DefaultQuickFilterLimit caps sidebar matches.
const DefaultQuickFilterLimit = 5

// QuickFilter returns up to limit items whose title contains query, ignoring
// case, in input order. A limit <= 0 means DefaultQuickFilterLimit. Content
// is never consulted and nothing is scored.
func QuickFilter(query string, items []docs.NavItem, limit int) []docs.NavItem {
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultQuickFilterLimit
	}
	needle := strings.ToLower(query)

	var out []docs.NavItem
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Title), needle) {
			continue
		}
		out = append(out, docs.NavItem{Title: item.Title, URL: item.URL})
		if len(out) == limit {
			break
		}
	}
	return out
}
