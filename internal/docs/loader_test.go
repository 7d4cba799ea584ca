package docs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocs = `# Introduction
Welcome to CFS UI.

# Custom Hooks
Hooks wrap shared logic.

## useAuth
Returns the session.

# Frontend Notes
Misc.

## API Integration
Calls go through a typed client.
`

func TestParseSections(t *testing.T) {
	sections := ParseSections(sampleDocs)
	require.Len(t, sections, 3)

	assert.Equal(t, "Introduction", sections[0].Title)
	assert.Equal(t, "Welcome to CFS UI.", sections[0].Body)
	assert.Equal(t, "Custom Hooks", sections[1].Title)
	assert.Contains(t, sections[1].Body, "## useAuth")
	assert.Equal(t, "Frontend Notes", sections[2].Title)
}

func TestParseSectionsPreambleAndBlankChunks(t *testing.T) {
	raw := "Preface line\nmore text\n# Setup\nInstall things\n#NotAHeading\n\n# \n"
	sections := ParseSections(raw)
	require.Len(t, sections, 2)
	assert.Equal(t, "Preface line", sections[0].Title)
	assert.Equal(t, "more text", sections[0].Body)
	assert.Equal(t, "Setup", sections[1].Title)
	assert.Equal(t, "Install things\n#NotAHeading", sections[1].Body)

	assert.Empty(t, ParseSections("  \n\n\t\n"))
}

func TestParseSectionsCRLF(t *testing.T) {
	sections := ParseSections("# A\r\nbody a\r\n# B\r\nbody b\r\n")
	require.Len(t, sections, 2)
	assert.Equal(t, "A", sections[0].Title)
	assert.Equal(t, "body a", sections[0].Body)
}

func TestAttach(t *testing.T) {
	nav := []NavItem{
		{Title: "Introduction", URL: "/"},
		{Title: "custom hooks", URL: "/custom-hooks"},
		{Title: "API Integration", URL: "/api-integration"},
		{Title: "Routing Structure", URL: "/routing-structure"},
	}
	items := Attach(nav, ParseSections(sampleDocs))
	require.Len(t, items, 4)

	assert.Equal(t, "Welcome to CFS UI.", items[0].ContentString())
	assert.Contains(t, items[1].ContentString(), "Hooks wrap shared logic.")
	assert.Contains(t, items[2].ContentString(), "typed client", "sub-heading match attaches the whole section")

	require.NotNil(t, items[3].Content, "unmatched items are indexed with empty content")
	assert.Equal(t, "", *items[3].Content)

	assert.Nil(t, nav[0].Content, "input must not be modified")
}

func TestAttachMatchesTitlePrefixAndSubHeadingPrefix(t *testing.T) {
	raw := `# Introduction to CFS UI
Overview of the app.

# Frontend
Notes.

## Custom Hooks Overview
useAuth and friends.
`
	nav := []NavItem{
		{Title: "Introduction", URL: "/"},
		{Title: "Custom Hooks", URL: "/custom-hooks"},
		{Title: "Frontend Guide", URL: "/frontend-guide"},
	}
	items := Attach(nav, ParseSections(raw))

	assert.Equal(t, "Overview of the app.", items[0].ContentString())
	assert.Contains(t, items[1].ContentString(), "useAuth and friends.")
	assert.Equal(t, "", items[2].ContentString(), "nav title longer than the heading does not match")
}

func TestSectionMatchesSubHeadingAtLineStartOnly(t *testing.T) {
	s := Section{Title: "Notes", Body: "see ## Custom Hooks inline\n  ## Custom Hooks indented"}
	assert.False(t, s.Matches("Custom Hooks"))

	s = Section{Title: "Notes", Body: "intro\n## CUSTOM HOOKS and more"}
	assert.True(t, s.Matches("custom hooks"))
}

func TestAttachFirstMatchWins(t *testing.T) {
	sections := []Section{
		{Title: "Setup", Body: "first"},
		{Title: "setup", Body: "second"},
	}
	items := Attach([]NavItem{{Title: "Setup", URL: "/setup"}}, sections)
	assert.Equal(t, "first", items[0].ContentString())
}

func TestAttachPunctuatedTitleNeedsExactSpelling(t *testing.T) {
	nav := []NavItem{{Title: "Authentication & Authorization", URL: "/authentication-authorization"}}

	items := Attach(nav, ParseSections("# Authentication and Authorization\nbody\n"))
	assert.Equal(t, "", items[0].ContentString())

	items = Attach(nav, ParseSections("# Authentication & Authorization\nbody\n"))
	assert.Equal(t, "body", items[0].ContentString())
}

func TestFileSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DOCS.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocs), 0o644))

	src := NewFileSource(path, nil)
	items, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 12)

	for _, item := range items {
		require.NotNil(t, item.Content, "%s should be indexed", item.Title)
	}
	intro, ok := FindByURL(items, "/")
	require.True(t, ok)
	assert.Equal(t, "Welcome to CFS UI.", intro.ContentString())
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.md"), nil)
	items, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read docs")
	require.Len(t, items, 12)
	for _, item := range items {
		assert.Nil(t, item.Content)
	}
}

func TestFileSourceInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DOCS.md")
	require.NoError(t, os.WriteFile(path, []byte("# Intro\n\xff\xfe"), 0o644))

	items, err := NewFileSource(path, nil).Load(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "UTF-8"))
	assert.Equal(t, 0, CountIndexed(items))
}

func TestFileSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileSource("DOCS.md", nil).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("## useAuth\n\nReturns the **session**.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>useAuth</h2>")
	assert.Contains(t, html, "<strong>session</strong>")
}
