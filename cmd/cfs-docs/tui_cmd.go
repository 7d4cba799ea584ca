package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/cfs-ui/cfs-docs/internal/config"
	"github.com/cfs-ui/cfs-docs/internal/ui"
)

var errNotTerminal = errors.New("the TUI needs an interactive terminal (try `cfs-docs search` or `cfs-docs serve`)")

func handleTUI(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	docsPath := fs.String("docs", "", "Markdown file to index")
	remote := fs.String("remote", "", "Fetch content from a cfs-docs server instead of DOCS.md")

	fs.Usage = func() {
		fmt.Println("Usage: cfs-docs [tui] [options]")
		fmt.Println()
		fmt.Println("Browse and search the documentation in the terminal.")
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

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	initColorProfile()

	provider := newProvider(cfg, *docsPath, *remote)
	provider.Start()

	app := ui.NewApp(provider, ui.Options{
		Debounce:         cfg.Debounce(),
		QuickFilterLimit: cfg.Search.QuickFilterLimit,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
