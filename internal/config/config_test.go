package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfs-ui/cfs-docs/internal/docs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "DOCS.md", cfg.Docs.Path)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 5, cfg.Search.QuickFilterLimit)
	assert.Equal(t, "127.0.0.1:8420", cfg.Web.Listen)
	assert.Equal(t, 10*time.Second, cfg.LoadTimeout())
	assert.Equal(t, docs.DefaultNav(), cfg.Nav())
	assert.Equal(t, float64(20), cfg.RateLimit())
	assert.Empty(t, cfg.UnknownKeys())
}

func TestLoadRateLimitZeroDisables(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[web]\nrate_limit = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, float64(0), cfg.RateLimit())

	cfg, err = Load(writeConfig(t, "[web]\nrate_limit = 2.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.RateLimit())
}

func TestLoadCollectsUnknownKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[web]\nlisten = \":9000\"\nlisten_port = 9000\n\n[theme]\nname = \"dark\"\n"))
	require.NoError(t, err)
	assert.Contains(t, cfg.UnknownKeys(), "web.listen_port")
	assert.Contains(t, cfg.UnknownKeys(), "theme.name")
	assert.NotContains(t, cfg.UnknownKeys(), "web.listen")
	cfg.WarnUnknownKeys()
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[docs]
path = "/srv/docs/DOCS.md"

[[docs.nav]]
title = "Setup"
url = "/setup"

[[docs.nav]]
title = "FAQ"
url = "/faq"

[search]
debounce_ms = 150
quick_filter_limit = 8

[web]
listen = ":9000"
token = "secret"
rate_limit = -1
`)
	_, err := Load(path)
	require.Error(t, err, "negative rate limit is rejected")

	path = writeConfig(t, `
[docs]
path = "/srv/docs/DOCS.md"

[[docs.nav]]
title = "Setup"
url = "/setup"

[[docs.nav]]
title = "FAQ"
url = "/faq"

[search]
debounce_ms = 150
quick_filter_limit = 8

[web]
listen = ":9000"
token = "secret"

[logs]
level = "debug"
format = "text"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/docs/DOCS.md", cfg.Docs.Path)
	assert.Equal(t, []docs.NavItem{{Title: "Setup", URL: "/setup"}, {Title: "FAQ", URL: "/faq"}}, cfg.Nav())
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 8, cfg.Search.QuickFilterLimit)
	assert.Equal(t, ":9000", cfg.Web.Listen)
	assert.Equal(t, "secret", cfg.Web.Token)
	assert.Equal(t, "text", cfg.Logs.Format)
}

func TestLoadInvalidNav(t *testing.T) {
	path := writeConfig(t, `
[[docs.nav]]
title = "Setup"
url = "setup"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, docs.ErrInvalidNav))
}

func TestLoadParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[docs\npath="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Logs.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logs.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.UI.Remote = "localhost:8420"
	assert.Error(t, cfg.Validate())
	cfg.UI.Remote = "http://localhost:8420"
	assert.NoError(t, cfg.Validate())
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", "/home/tester")

	got, err := ResolvePath("/etc/cfs.toml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/cfs.toml", got)

	got, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", DirName, FileName), got)

	t.Setenv(EnvConfigPath, "/tmp/env.toml")
	got, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.toml", got)
}

func TestLoggingConfig(t *testing.T) {
	cfg := Default()
	lc := cfg.Logging(false)
	assert.Empty(t, lc.LogDir, "file logging is off by default")
	assert.Equal(t, "info", lc.Level)

	cfg.Logs.Dir = "/var/log/cfs"
	lc = cfg.Logging(true)
	assert.Equal(t, "/var/log/cfs", lc.LogDir)
	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.Debug)
}
