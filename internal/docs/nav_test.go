package docs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNavOrder(t *testing.T) {
	nav := DefaultNav()
	require.Len(t, nav, 12)
	assert.Equal(t, "Introduction", nav[0].Title)
	assert.Equal(t, "/", nav[0].URL)
	assert.Equal(t, "Extending the Application", nav[11].Title)
	assert.Equal(t, "/extending-the-application", nav[11].URL)
	for _, item := range nav {
		assert.Nil(t, item.Content, "%s should start unindexed", item.Title)
	}
	require.NoError(t, ValidateNav(nav))
}

func TestDefaultNavIsACopy(t *testing.T) {
	a := DefaultNav()
	a[0].Title = "changed"
	b := DefaultNav()
	assert.Equal(t, "Introduction", b[0].Title)
}

func TestValidateNav(t *testing.T) {
	tests := []struct {
		name  string
		items []NavItem
	}{
		{"empty", nil},
		{"empty title", []NavItem{{Title: " ", URL: "/x"}}},
		{"relative url", []NavItem{{Title: "X", URL: "x"}}},
		{"duplicate title", []NavItem{{Title: "Setup", URL: "/a"}, {Title: "setup", URL: "/b"}}},
		{"duplicate url", []NavItem{{Title: "A", URL: "/a"}, {Title: "B", URL: "/a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNav(tt.items)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNav))
		})
	}
}

func TestStripContent(t *testing.T) {
	items := []NavItem{{Title: "A", URL: "/a", Content: StringPtr("body")}}
	stripped := StripContent(items)
	assert.Nil(t, stripped[0].Content)
	assert.NotNil(t, items[0].Content, "original must be untouched")
}

func TestFindByURL(t *testing.T) {
	nav := DefaultNav()
	item, ok := FindByURL(nav, "/custom-hooks")
	require.True(t, ok)
	assert.Equal(t, "Custom Hooks", item.Title)
	assert.Equal(t, 6, IndexOfURL(nav, "/custom-hooks"))

	_, ok = FindByURL(nav, "/missing")
	assert.False(t, ok)
	assert.Equal(t, -1, IndexOfURL(nav, "/missing"))
}

func TestCountIndexed(t *testing.T) {
	items := []NavItem{
		{Title: "A", Content: StringPtr("x")},
		{Title: "B", Content: StringPtr("")},
		{Title: "C"},
	}
	assert.Equal(t, 1, CountIndexed(items))
	assert.True(t, items[0].HasContent())
	assert.False(t, items[1].HasContent())
	assert.Equal(t, "", items[2].ContentString())
}
