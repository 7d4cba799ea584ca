package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cfs-ui/cfs-docs/internal/config"
	"github.com/cfs-ui/cfs-docs/internal/content"
)

type navEntry struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Indexed bool   `json:"indexed"`
}

func handleNav(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("nav", flag.ContinueOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	docsPath := fs.String("docs", "", "Markdown file to index")
	remote := fs.String("remote", "", "Fetch content from a cfs-docs server instead of DOCS.md")

	fs.Usage = func() {
		fmt.Println("Usage: cfs-docs nav [options]")
		fmt.Println()
		fmt.Println("List documentation pages and whether DOCS.md has content for them.")
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

	provider := newProvider(cfg, *docsPath, *remote)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout())
	defer cancel()

	return runNav(ctx, os.Stdout, provider, *jsonOutput)
}

func runNav(ctx context.Context, w io.Writer, provider *content.Provider, jsonOutput bool) error {
	items, err := provider.Wait(ctx)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	entries := make([]navEntry, len(items))
	for i, item := range items {
		entries[i] = navEntry{
			Title:   item.Title,
			URL:     item.URL,
			Indexed: item.ContentString() != "",
		}
	}

	if jsonOutput {
		return writeJSON(w, entries)
	}

	if loadErr := provider.Err(); loadErr != nil {
		fmt.Fprintf(w, "warning: %v\n", loadErr)
	}
	indexed := 0
	for _, e := range entries {
		mark := " "
		if e.Indexed {
			mark = "●"
			indexed++
		}
		fmt.Fprintf(w, "%s %-32s %s\n", mark, e.Title, e.URL)
	}
	fmt.Fprintf(w, "\n%d pages, %d indexed\n", len(entries), indexed)
	return nil
}
