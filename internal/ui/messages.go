package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cfs-ui/cfs-docs/internal/docs"
	"github.com/cfs-ui/cfs-docs/internal/search"
)

// blurGrace is how long a dropdown stays open after its input loses focus.
const blurGrace = 200 * time.Millisecond

// ItemSource supplies the current navigation list and whether indexing is
// still running. *content.Provider satisfies it.
type ItemSource interface {
	NavItems() ([]docs.NavItem, bool)
}

// NavigateMsg asks the app to show the page at URL.
type NavigateMsg struct {
	URL string
}

func navigateCmd(url string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{URL: url} }
}

// docSearchDebounceMsg fires after the debounce interval. Only the message
// carrying the latest seq runs a search.
type docSearchDebounceMsg struct {
	seq   uint64
	query string
}

// docSearchResultsMsg delivers async search results back to the UI.
type docSearchResultsMsg struct {
	seq         uint64
	query       string
	results     []search.Result
	suggestions []string
}

// blurCloseMsg closes a dropdown once the grace period after blur ends.
type blurCloseMsg struct {
	target string
	seq    uint64
}

func blurCloseCmd(target string, seq uint64) tea.Cmd {
	return tea.Tick(blurGrace, func(time.Time) tea.Msg {
		return blurCloseMsg{target: target, seq: seq}
	})
}

// contentPollMsg asks the app to re-read the item source.
type contentPollMsg struct{}

func contentPollCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return contentPollMsg{} })
}

// cursor tracks the highlighted row of a dropdown. -1 means no selection.
type cursor struct {
	index int
}

func (c *cursor) reset() { c.index = -1 }

// down moves forward, stopping at the last of n rows.
func (c *cursor) down(n int) {
	if c.index < n-1 {
		c.index++
	}
}

// up moves backward, stopping at the first row. With no selection it
// selects the first of n rows.
func (c *cursor) up(n int) {
	switch {
	case c.index > 0:
		c.index--
	case n > 0:
		c.index = 0
	}
}

func (c cursor) valid(n int) bool {
	return c.index >= 0 && c.index < n
}
