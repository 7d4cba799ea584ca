package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cfs-ui/cfs-docs/internal/config"
	"github.com/cfs-ui/cfs-docs/internal/content"
	"github.com/cfs-ui/cfs-docs/internal/docs"
	"github.com/cfs-ui/cfs-docs/internal/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "0.3.0"

// globalFlags are accepted before or after the subcommand.
type globalFlags struct {
	configPath string
	debug      bool
}

func main() {
	flags, args := extractGlobalFlags(os.Args[1:])

	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "version", "--version", "-v":
		fmt.Printf("cfs-docs v%s\n", Version)
		return
	case "help", "--help", "-h":
		printHelp()
		return
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if keys := cfg.UnknownKeys(); len(keys) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: ignoring unknown config keys: %s\n", strings.Join(keys, ", "))
	}

	switch cmd {
	case "", "tui":
		initLogging(cfg, flags.debug, false)
		defer logging.Shutdown()
		err = handleTUI(cfg, args)
	case "serve", "web":
		initLogging(cfg, flags.debug, true)
		defer logging.Shutdown()
		err = handleServe(cfg, args)
	case "search":
		initLogging(cfg, flags.debug, false)
		defer logging.Shutdown()
		err = handleSearch(cfg, args)
	case "nav":
		initLogging(cfg, flags.debug, false)
		defer logging.Shutdown()
		err = handleNav(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmd)
		printHelp()
		os.Exit(2)
	}

	if err != nil {
		logging.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// extractGlobalFlags pulls --config and --debug out of args wherever they
// appear so subcommand flag sets never see them.
func extractGlobalFlags(args []string) (globalFlags, []string) {
	var flags globalFlags
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-c=") {
			flags.configPath = strings.TrimPrefix(arg, "-c=")
			continue
		}
		if strings.HasPrefix(arg, "--config=") {
			flags.configPath = strings.TrimPrefix(arg, "--config=")
			continue
		}
		if arg == "-c" || arg == "--config" {
			if i+1 < len(args) {
				flags.configPath = args[i+1]
				i++
				continue
			}
		}
		if arg == "--debug" {
			flags.debug = true
			continue
		}

		remaining = append(remaining, arg)
	}

	return flags, remaining
}

func loadConfig(flagValue string) (*config.Config, error) {
	path, err := config.ResolvePath(flagValue)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// initLogging starts the file logger. The server also mirrors to stderr;
// the TUI never does since it would corrupt the alt screen.
func initLogging(cfg *config.Config, debug, stderr bool) {
	lc := cfg.Logging(debug || os.Getenv("CFS_DOCS_DEBUG") != "")
	lc.Stderr = stderr
	if lc.LogDir != "" {
		_ = os.MkdirAll(lc.LogDir, 0o700)
	}
	logging.Init(lc)
	cfg.WarnUnknownKeys()
}

// newProvider builds the content provider for the client commands (tui,
// search, nav). remote overrides [ui].remote when non-empty.
func newProvider(cfg *config.Config, docsPath, remote string) *content.Provider {
	return content.New(clientSource(cfg, docsPath, remote), cfg.Nav())
}

// newLocalProvider always indexes the local file. The server uses it so
// that [ui].remote can never point it at another server or itself.
func newLocalProvider(cfg *config.Config, docsPath string) *content.Provider {
	return content.New(localSource(cfg, docsPath), cfg.Nav())
}

func clientSource(cfg *config.Config, docsPath, remote string) content.Source {
	if remote == "" {
		remote = cfg.UI.Remote
	}
	if remote != "" {
		return content.NewHTTPSource(remote, cfg.UI.RemoteToken)
	}
	return localSource(cfg, docsPath)
}

func localSource(cfg *config.Config, docsPath string) *docs.FileSource {
	if docsPath == "" {
		docsPath = cfg.Docs.Path
	}
	return docs.NewFileSource(docsPath, cfg.Nav())
}

func initColorProfile() {
	// CFS_DOCS_COLOR: truecolor, 256, 16, none
	if colorEnv := os.Getenv("CFS_DOCS_COLOR"); colorEnv != "" {
		switch strings.ToLower(colorEnv) {
		case "truecolor", "true", "24bit":
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		case "256", "ansi256":
			lipgloss.SetColorProfile(termenv.ANSI256)
			return
		case "16", "ansi", "basic":
			lipgloss.SetColorProfile(termenv.ANSI)
			return
		case "none", "off", "ascii":
			lipgloss.SetColorProfile(termenv.Ascii)
			return
		}
	}

	colorTerm := os.Getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}

	// Let termenv inspect the terminal, but never go below 256 colors when
	// it reports one; Tokyo Night is unreadable in 16.
	profile := termenv.NewOutput(os.Stdout).EnvColorProfile()
	if profile == termenv.ANSI {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

func printHelp() {
	fmt.Printf("cfs-docs v%s\n", Version)
	fmt.Println("Browse and search the CFS UI documentation")
	fmt.Println()
	fmt.Println("Usage: cfs-docs [-c config] [--debug] [command]")
	fmt.Println()
	fmt.Println("Global Options:")
	fmt.Println("  -c, --config <path>   Config file (default: ~/.cfs-docs/config.toml)")
	fmt.Println("  --debug               Write debug logs to ~/.cfs-docs/cfs-docs.log")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  (none), tui        Start the terminal UI")
	fmt.Println("  serve, web         Serve the search API and web UI")
	fmt.Println("  search <query>     Search the docs and print ranked results")
	fmt.Println("  nav                List pages and whether they are indexed")
	fmt.Println("  version            Show version")
	fmt.Println("  help               Show this help")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  cfs-docs                                  # Start the TUI")
	fmt.Println("  cfs-docs serve --listen 127.0.0.1:9000     # Serve on another port")
	fmt.Println("  cfs-docs search \"custom hooks\" --json      # Search as JSON")
	fmt.Println("  cfs-docs search api --quick               # Title-only quick filter")
	fmt.Println("  cfs-docs tui --remote http://host:8420     # TUI backed by a server")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  CFS_DOCS_CONFIG    Config file path")
	fmt.Println("  CFS_DOCS_COLOR     Color mode: truecolor, 256, 16, none")
	fmt.Println("  CFS_DOCS_DEBUG     Enable debug logging")
	fmt.Println()
	fmt.Println("Keyboard shortcuts (in TUI):")
	fmt.Println("  Ctrl+K     Focus search")
	fmt.Println("  Tab        Next pane (search, sidebar, page)")
	fmt.Println("  ↑/↓        Move selection")
	fmt.Println("  Enter      Open page")
	fmt.Println("  Esc        Close results")
	fmt.Println("  q          Quit")
}
