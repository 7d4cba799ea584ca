// Package docs holds the documentation navigation index and the loader that
// attaches DOCS.md sections to it.
package docs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNav is returned by ValidateNav for unusable navigation lists.
var ErrInvalidNav = errors.New("invalid navigation")

// NavItem is one documentation page. Content is nil until the loader has
// indexed the page; an indexed page without a matching section has empty,
// non-nil content.
type NavItem struct {
	Title   string  `json:"title" toml:"title"`
	URL     string  `json:"url" toml:"url"`
	Content *string `json:"content,omitempty" toml:"-"`
}

// HasContent reports whether the item carries searchable body text.
func (n NavItem) HasContent() bool {
	return n.Content != nil && *n.Content != ""
}

// ContentString returns the body text or "" when not indexed.
func (n NavItem) ContentString() string {
	if n.Content == nil {
		return ""
	}
	return *n.Content
}

// StringPtr is a small helper for building NavItem.Content.
func StringPtr(s string) *string {
	return &s
}

var defaultNav = []NavItem{
	{Title: "Introduction", URL: "/"},
	{Title: "Project Architecture", URL: "/project-architecture"},
	{Title: "Technology Stack", URL: "/technology-stack"},
	{Title: "Project Structure", URL: "/project-structure"},
	{Title: "Core Components", URL: "/core-components"},
	{Title: "State Management", URL: "/state-management"},
	{Title: "Custom Hooks", URL: "/custom-hooks"},
	{Title: "API Integration", URL: "/api-integration"},
	{Title: "Authentication & Authorization", URL: "/authentication-authorization"},
	{Title: "Routing Structure", URL: "/routing-structure"},
	{Title: "Environment Configuration", URL: "/environment-configuration"},
	{Title: "Extending the Application", URL: "/extending-the-application"},
}

// DefaultNav returns a fresh copy of the built-in navigation list.
func DefaultNav() []NavItem {
	return CloneNav(defaultNav)
}

// CloneNav copies items so callers can never mutate a shared slice.
// Content strings are immutable, so sharing the pointers is fine.
func CloneNav(items []NavItem) []NavItem {
	if items == nil {
		return nil
	}
	out := make([]NavItem, len(items))
	copy(out, items)
	return out
}

// StripContent returns a copy of items with all content removed.
func StripContent(items []NavItem) []NavItem {
	out := CloneNav(items)
	for i := range out {
		out[i].Content = nil
	}
	return out
}

// ValidateNav checks that every item has a title and a rooted url, and that
// titles and urls are unique.
func ValidateNav(items []NavItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidNav)
	}
	titles := make(map[string]bool, len(items))
	urls := make(map[string]bool, len(items))
	for i, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			return fmt.Errorf("%w: item %d has an empty title", ErrInvalidNav, i)
		}
		if !strings.HasPrefix(item.URL, "/") {
			return fmt.Errorf("%w: %q url %q must start with /", ErrInvalidNav, title, item.URL)
		}
		key := strings.ToLower(title)
		if titles[key] {
			return fmt.Errorf("%w: duplicate title %q", ErrInvalidNav, title)
		}
		if urls[item.URL] {
			return fmt.Errorf("%w: duplicate url %q", ErrInvalidNav, item.URL)
		}
		titles[key] = true
		urls[item.URL] = true
	}
	return nil
}

// FindByURL returns the item with the given url.
func FindByURL(items []NavItem, url string) (NavItem, bool) {
	for _, item := range items {
		if item.URL == url {
			return item, true
		}
	}
	return NavItem{}, false
}

// IndexOfURL returns the position of url in items or -1.
func IndexOfURL(items []NavItem, url string) int {
	for i, item := range items {
		if item.URL == url {
			return i
		}
	}
	return -1
}

// CountIndexed returns how many items carry content.
func CountIndexed(items []NavItem) int {
	n := 0
	for _, item := range items {
		if item.HasContent() {
			n++
		}
	}
	return n
}
