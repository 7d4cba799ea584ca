package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cfs-ui/cfs-docs/internal/config"
	"github.com/cfs-ui/cfs-docs/internal/content"
	"github.com/cfs-ui/cfs-docs/internal/docs"
	"github.com/cfs-ui/cfs-docs/internal/search"
)

// searchOptions controls one-shot search output.
type searchOptions struct {
	JSON         bool
	Quick        bool
	Limit        int
	SuggestLimit int
}

type searchOutput struct {
	Query       string          `json:"query"`
	Results     []search.Result `json:"results"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Degraded    bool            `json:"degraded,omitempty"`
}

type quickFilterOutput struct {
	Query string         `json:"query"`
	Items []docs.NavItem `json:"items"`
}

func handleSearch(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	quick := fs.Bool("quick", false, "Title-only quick filter instead of full search")
	limit := fs.Int("limit", 0, "Maximum results (0 = all; quick filter default 5)")
	docsPath := fs.String("docs", "", "Markdown file to index")
	remote := fs.String("remote", "", "Fetch content from a cfs-docs server instead of DOCS.md")

	fs.Usage = func() {
		fmt.Println("Usage: cfs-docs search <query> [options]")
		fmt.Println()
		fmt.Println("Search the documentation and print ranked results.")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args); err != nil {
		if err == errHelp {
			return nil
		}
		return err
	}

	// Keep the query untrimmed: leading and trailing spaces take part in
	// matching.
	query := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(query) == "" {
		fs.Usage()
		return fmt.Errorf("search query is required")
	}

	provider := newProvider(cfg, *docsPath, *remote)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout())
	defer cancel()

	return runSearch(ctx, os.Stdout, provider, query, searchOptions{
		JSON:         *jsonOutput,
		Quick:        *quick,
		Limit:        *limit,
		SuggestLimit: cfg.Search.SuggestLimit,
	})
}

// runSearch waits for content, then writes search or quick filter output
// for query to w.
func runSearch(ctx context.Context, w io.Writer, provider *content.Provider, query string, opts searchOptions) error {
	items, err := provider.Wait(ctx)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	if opts.Quick {
		limit := opts.Limit
		if limit <= 0 {
			limit = search.DefaultQuickFilterLimit
		}
		matches := search.QuickFilter(query, items, limit)
		if opts.JSON {
			if matches == nil {
				matches = []docs.NavItem{}
			}
			return writeJSON(w, quickFilterOutput{Query: query, Items: matches})
		}
		if len(matches) == 0 {
			fmt.Fprintf(w, "No pages match %q\n", query)
			return nil
		}
		for _, item := range matches {
			fmt.Fprintf(w, "%-32s %s\n", item.Title, item.URL)
		}
		return nil
	}

	results := search.Search(query, items)
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	out := searchOutput{
		Query:    query,
		Results:  results,
		Degraded: provider.Err() != nil,
	}
	if out.Results == nil {
		out.Results = []search.Result{}
	}
	if len(results) == 0 {
		out.Suggestions = search.Suggest(query, items, opts.SuggestLimit)
	}

	if opts.JSON {
		return writeJSON(w, out)
	}

	if out.Degraded {
		fmt.Fprintln(w, "warning: docs unavailable, searching titles only")
	}
	if len(results) == 0 {
		fmt.Fprintf(w, "No results for %q\n", query)
		if len(out.Suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(out.Suggestions, ", "))
		}
		return nil
	}
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s (%s) [%d]\n", i+1, r.Title, r.URL, r.Score)
		fmt.Fprintf(w, "   %s\n", singleLine(r.Excerpt))
	}
	return nil
}

// singleLine collapses runs of whitespace so excerpts print on one line.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
