// Package config loads the cfs-docs TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/cfs-ui/cfs-docs/internal/docs"
	"github.com/cfs-ui/cfs-docs/internal/logging"
	"github.com/cfs-ui/cfs-docs/internal/search"
)

var configLog = logging.ForComponent(logging.CompConfig)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "CFS_DOCS_CONFIG"

const defaultRateLimit = 20

// DirName is the per-user directory under $HOME.
const DirName = ".cfs-docs"

// FileName is the config file inside DirName.
const FileName = "config.toml"

// Config is the decoded config.toml.
type Config struct {
	Docs   DocsSettings   `toml:"docs"`
	Search SearchSettings `toml:"search"`
	Web    WebSettings    `toml:"web"`
	Logs   LogSettings    `toml:"logs"`
	UI     UISettings     `toml:"ui"`

	path        string
	unknownKeys []string
}

// DocsSettings locates the documentation source.
type DocsSettings struct {
	// Path is the markdown file to index. Default: DOCS.md
	Path string `toml:"path"`

	// Nav replaces the built-in navigation list when non-empty.
	Nav []docs.NavItem `toml:"nav"`
}

// SearchSettings tunes search behavior.
type SearchSettings struct {
	// DebounceMS is the keystroke quiet interval before a full search.
	// Default: 300
	DebounceMS int `toml:"debounce_ms"`

	// QuickFilterLimit caps sidebar matches. Default: 5
	QuickFilterLimit int `toml:"quick_filter_limit"`

	// SuggestLimit caps "did you mean" hints. Default: 3
	SuggestLimit int `toml:"suggest_limit"`
}

// WebSettings configures `cfs-docs serve`.
type WebSettings struct {
	// Listen is host:port. Default: 127.0.0.1:8420
	Listen string `toml:"listen"`

	// Token, when set, is required on /api and /ws requests.
	Token string `toml:"token"`

	// RateLimit is requests per second allowed on /api. 0 disables
	// limiting. Default: 20 (when unset)
	RateLimit *float64 `toml:"rate_limit"`

	// Burst is the token bucket size. Default: 40
	Burst int `toml:"burst"`

	// LoadTimeoutSeconds bounds how long the content endpoint waits for
	// the first load. Default: 10
	LoadTimeoutSeconds int `toml:"load_timeout_seconds"`
}

// LogSettings configures the debug log.
type LogSettings struct {
	// Dir holds cfs-docs.log. Default: ~/.cfs-docs
	Dir string `toml:"dir"`

	// Level: "debug", "info", "warn", "error". Default: "info"
	Level string `toml:"level"`

	// Format: "json" (default) or "text"
	Format string `toml:"format"`

	MaxSizeMB  int  `toml:"max_size_mb"`
	MaxBackups int  `toml:"max_backups"`
	MaxAgeDays int  `toml:"max_age_days"`
	Compress   bool `toml:"compress"`

	// Enabled turns file logging on. Default: false
	Enabled bool `toml:"enabled"`
}

// UISettings configures the terminal UI.
type UISettings struct {
	// Remote loads content from a running server instead of the local file.
	Remote string `toml:"remote"`

	// RemoteToken is sent to Remote as a bearer token.
	RemoteToken string `toml:"remote_token"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Docs.Path == "" {
		c.Docs.Path = docs.DefaultDocsFile
	}
	if c.Search.DebounceMS <= 0 {
		c.Search.DebounceMS = int(search.DefaultDebounce / time.Millisecond)
	}
	if c.Search.QuickFilterLimit <= 0 {
		c.Search.QuickFilterLimit = search.DefaultQuickFilterLimit
	}
	if c.Search.SuggestLimit <= 0 {
		c.Search.SuggestLimit = 3
	}
	if c.Web.Listen == "" {
		c.Web.Listen = "127.0.0.1:8420"
	}
	if c.Web.Burst <= 0 {
		c.Web.Burst = 40
	}
	if c.Web.LoadTimeoutSeconds <= 0 {
		c.Web.LoadTimeoutSeconds = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.Format == "" {
		c.Logs.Format = "json"
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if len(c.Docs.Nav) > 0 {
		if err := docs.ValidateNav(c.Docs.Nav); err != nil {
			return fmt.Errorf("docs.nav: %w", err)
		}
	}
	if c.Web.RateLimit != nil && *c.Web.RateLimit < 0 {
		return errors.New("web.rate_limit must not be negative")
	}
	switch c.Logs.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logs.level %q: want debug, info, warn or error", c.Logs.Level)
	}
	switch c.Logs.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logs.format %q: want json or text", c.Logs.Format)
	}
	if c.UI.Remote != "" && !strings.HasPrefix(c.UI.Remote, "http://") && !strings.HasPrefix(c.UI.Remote, "https://") {
		return fmt.Errorf("ui.remote %q: must be an http(s) URL", c.UI.Remote)
	}
	return nil
}

// Nav returns the configured navigation list or the built-in one.
func (c *Config) Nav() []docs.NavItem {
	if len(c.Docs.Nav) > 0 {
		return docs.StripContent(c.Docs.Nav)
	}
	return docs.DefaultNav()
}

// RateLimit returns the /api requests per second, 0 meaning unlimited.
func (c *Config) RateLimit() float64 {
	if c.Web.RateLimit == nil {
		return defaultRateLimit
	}
	return *c.Web.RateLimit
}

// UnknownKeys returns the keys in the file that matched no setting.
func (c *Config) UnknownKeys() []string {
	return c.unknownKeys
}

// WarnUnknownKeys logs UnknownKeys. Load runs before logging is set up,
// so callers do this once logging.Init has run.
func (c *Config) WarnUnknownKeys() {
	if len(c.unknownKeys) == 0 {
		return
	}
	configLog.Warn("config_unknown_keys",
		"path", c.path,
		"keys", strings.Join(c.unknownKeys, ","))
}

// Debounce returns the search quiet interval.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// LoadTimeout returns how long the content endpoint waits.
func (c *Config) LoadTimeout() time.Duration {
	return time.Duration(c.Web.LoadTimeoutSeconds) * time.Second
}

// Logging converts the [logs] section for logging.Init. File logging is
// only enabled when Logs.Enabled or debug is set.
func (c *Config) Logging(debug bool) logging.Config {
	lc := logging.Config{
		Level:      c.Logs.Level,
		Format:     c.Logs.Format,
		MaxSizeMB:  c.Logs.MaxSizeMB,
		MaxBackups: c.Logs.MaxBackups,
		MaxAgeDays: c.Logs.MaxAgeDays,
		Compress:   c.Logs.Compress,
		Debug:      debug,
	}
	if debug {
		lc.Level = "debug"
	}
	if c.Logs.Enabled || debug {
		lc.LogDir = c.Logs.Dir
		if lc.LogDir == "" {
			if dir, err := Dir(); err == nil {
				lc.LogDir = dir
			}
		}
	}
	return lc
}

// Dir returns ~/.cfs-docs.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// ResolvePath picks the config file: an explicit flag value, then
// $CFS_DOCS_CONFIG, then ~/.cfs-docs/config.toml.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load decodes path. A missing file yields Default(); a malformed or
// invalid one is an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config.toml parse error: %w", err)
	}
	cfg.path = path
	for _, k := range md.Undecoded() {
		cfg.unknownKeys = append(cfg.unknownKeys, k.String())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}
