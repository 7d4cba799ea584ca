// Package search ranks documentation pages against a query.
//
// Search is the scored full-text variant used by the search box and the
// HTTP API. QuickFilter is the cheap, title-only sidebar filter. The two
// never share matching code paths beyond case folding.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cfs-ui/cfs-docs/internal/docs"
)

// Score weights.
const (
	TitleScore   = 10
	ContentScore = 5
)

// Result is one ranked hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Excerpt string `json:"excerpt"`
	Score   int    `json:"score"`
}

// Search returns items whose title or content contains query, ignoring
// case, ordered by descending score. Equal scores keep the order of items.
// An empty or whitespace-only query returns nil.
func Search(query string, items []docs.NavItem) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	needle := fold(query)

	var results []Result
	for _, item := range items {
		score := 0
		excerpt := ""

		if containsFold(fold(item.Title), needle) {
			score += TitleScore
		}
		if item.HasContent() && containsFold(fold(*item.Content), needle) {
			score += ContentScore
			excerpt = Excerpt(*item.Content, query)
		}
		if score == 0 {
			continue
		}
		if excerpt == "" {
			excerpt = fmt.Sprintf("Navigate to %s", item.Title)
		}

		results = append(results, Result{
			Title:   item.Title,
			URL:     item.URL,
			Excerpt: excerpt,
			Score:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
