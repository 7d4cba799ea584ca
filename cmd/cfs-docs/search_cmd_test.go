package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfs-ui/cfs-docs/internal/content"
	"github.com/cfs-ui/cfs-docs/internal/docs"
)

func testProvider(t *testing.T, items []docs.NavItem, loadErr error) *content.Provider {
	t.Helper()
	fallback := docs.StripContent(items)
	p := content.New(content.SourceFunc(func(ctx context.Context) ([]docs.NavItem, error) {
		if loadErr != nil {
			return nil, loadErr
		}
		return docs.CloneNav(items), nil
	}), fallback)
	return p
}

func sampleItems() []docs.NavItem {
	return []docs.NavItem{
		{Title: "Introduction", URL: "/", Content: docs.StringPtr("Welcome to the CFS UI docs.")},
		{Title: "Custom Hooks", URL: "/custom-hooks", Content: docs.StringPtr("Custom hooks like useAuth wrap the session.")},
		{Title: "API Integration", URL: "/api-integration", Content: docs.StringPtr("Call the REST api with hooks.")},
		{Title: "Deployment", URL: "/deployment", Content: docs.StringPtr("")},
	}
}

func ctxWithTimeout(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRunSearch_Text(t *testing.T) {
	var buf bytes.Buffer
	err := runSearch(ctxWithTimeout(t), &buf, testProvider(t, sampleItems(), nil), "hooks", searchOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1. Custom Hooks (/custom-hooks) [15]")
	assert.Contains(t, out, "2. API Integration (/api-integration) [5]")
	assert.NotContains(t, out, "warning")
}

func TestRunSearch_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := runSearch(ctxWithTimeout(t), &buf, testProvider(t, sampleItems(), nil), "hooks", searchOptions{JSON: true, Limit: 1})
	require.NoError(t, err)

	var out searchOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Results, 1)
	assert.Equal(t, "/custom-hooks", out.Results[0].URL)
	assert.False(t, out.Degraded)
}

func TestRunSearch_NoResultsSuggests(t *testing.T) {
	var buf bytes.Buffer
	err := runSearch(ctxWithTimeout(t), &buf, testProvider(t, sampleItems(), nil), "cstmhk", searchOptions{SuggestLimit: 3})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `No results for "cstmhk"`)
	assert.Contains(t, out, "Did you mean: Custom Hooks")
}

func TestRunSearch_DegradedSearchesTitles(t *testing.T) {
	var buf bytes.Buffer
	p := testProvider(t, sampleItems(), errors.New("read docs DOCS.md: no such file"))
	err := runSearch(ctxWithTimeout(t), &buf, p, "hooks", searchOptions{JSON: true})
	require.NoError(t, err)

	var out searchOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.True(t, out.Degraded)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "Navigate to Custom Hooks", out.Results[0].Excerpt)
}

func TestRunSearch_Quick(t *testing.T) {
	var buf bytes.Buffer
	err := runSearch(ctxWithTimeout(t), &buf, testProvider(t, sampleItems(), nil), "i", searchOptions{Quick: true, JSON: true, Limit: 2})
	require.NoError(t, err)

	var out quickFilterOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Introduction", out.Items[0].Title)
	assert.Equal(t, "API Integration", out.Items[1].Title)
	assert.Nil(t, out.Items[0].Content)
}

func TestRunSearch_QuickNoMatch(t *testing.T) {
	var buf bytes.Buffer
	err := runSearch(ctxWithTimeout(t), &buf, testProvider(t, sampleItems(), nil), "zzz", searchOptions{Quick: true})
	require.NoError(t, err)
	assert.Equal(t, "No pages match \"zzz\"\n", buf.String())
}

func TestRunSearch_ContextDone(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	p := content.New(content.SourceFunc(func(ctx context.Context) ([]docs.NavItem, error) {
		<-block
		return nil, nil
	}), docs.StripContent(sampleItems()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runSearch(ctx, &bytes.Buffer{}, p, "hooks", searchOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunNav(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runNav(ctxWithTimeout(t), &buf, testProvider(t, sampleItems(), nil), false))
	assert.Contains(t, buf.String(), "4 pages, 3 indexed")

	buf.Reset()
	require.NoError(t, runNav(ctxWithTimeout(t), &buf, testProvider(t, sampleItems(), nil), true))
	var entries []navEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 4)
	assert.True(t, entries[1].Indexed)
	assert.False(t, entries[3].Indexed)
}
