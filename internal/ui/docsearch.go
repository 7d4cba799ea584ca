package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cfs-ui/cfs-docs/internal/search"
)

// DocSearch is the full-text search box. Keystrokes update the query at
// once; the search itself runs after the debounce interval, and results
// for anything but the latest keystroke are dropped.
type DocSearch struct {
	input       textinput.Model
	source      ItemSource
	debounce    time.Duration
	suggestN    int
	results     []search.Result
	suggestions []string
	cursor      cursor
	open        bool
	focused     bool
	searching   bool
	seq         uint64
	blurSeq     uint64
	width       int
}

// NewDocSearch creates a search box reading pages from source.
func NewDocSearch(source ItemSource, debounce time.Duration) *DocSearch {
	if debounce <= 0 {
		debounce = search.DefaultDebounce
	}
	ti := textinput.New()
	ti.Placeholder = "Search docs..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Width = 40

	return &DocSearch{
		input:    ti,
		source:   source,
		debounce: debounce,
		suggestN: 3,
		cursor:   cursor{index: -1},
	}
}

// SetWidth sets the rendered width of the box and its dropdown.
func (ds *DocSearch) SetWidth(width int) {
	ds.width = width
	ds.input.Width = max(10, width-8)
}

// Focus gives the search input keyboard focus and reopens the dropdown
// if a query is pending.
func (ds *DocSearch) Focus() tea.Cmd {
	ds.focused = true
	ds.blurSeq++
	ds.open = ds.input.Value() != "" && !ds.searching
	return ds.input.Focus()
}

// Blur removes focus. The dropdown stays open for a short grace period.
func (ds *DocSearch) Blur() tea.Cmd {
	ds.focused = false
	ds.input.Blur()
	ds.blurSeq++
	return blurCloseCmd("docsearch", ds.blurSeq)
}

// Focused reports whether the input has keyboard focus.
func (ds *DocSearch) Focused() bool { return ds.focused }

// IsOpen reports whether the results dropdown is shown.
func (ds *DocSearch) IsOpen() bool { return ds.open }

// Query returns the current input text.
func (ds *DocSearch) Query() string { return ds.input.Value() }

// Results returns the results of the last completed search.
func (ds *DocSearch) Results() []search.Result { return ds.results }

// Selected returns the highlighted result.
func (ds *DocSearch) Selected() (search.Result, bool) {
	if !ds.cursor.valid(len(ds.results)) {
		return search.Result{}, false
	}
	return ds.results[ds.cursor.index], true
}

// Clear empties the query, drops any pending search and closes.
func (ds *DocSearch) Clear() {
	ds.input.SetValue("")
	ds.seq++
	ds.results = nil
	ds.suggestions = nil
	ds.searching = false
	ds.open = false
	ds.cursor.reset()
}

// Update handles messages for the search box
func (ds *DocSearch) Update(msg tea.Msg) (*DocSearch, tea.Cmd) {
	switch msg := msg.(type) {
	case docSearchDebounceMsg:
		if msg.seq != ds.seq {
			return ds, nil
		}
		source, query, seq, n := ds.source, msg.query, msg.seq, ds.suggestN
		return ds, func() tea.Msg {
			items, _ := source.NavItems()
			results := search.Search(query, items)
			var suggestions []string
			if len(results) == 0 {
				suggestions = search.Suggest(query, items, n)
			}
			return docSearchResultsMsg{seq: seq, query: query, results: results, suggestions: suggestions}
		}

	case docSearchResultsMsg:
		if msg.seq != ds.seq {
			return ds, nil
		}
		ds.searching = false
		ds.results = msg.results
		ds.suggestions = msg.suggestions
		ds.cursor.reset()
		ds.open = msg.query != "" && (ds.focused || ds.open)
		return ds, nil

	case blurCloseMsg:
		if msg.target == "docsearch" && msg.seq == ds.blurSeq && !ds.focused {
			ds.open = false
			ds.cursor.reset()
		}
		return ds, nil

	case tea.KeyMsg:
		if !ds.focused {
			return ds, nil
		}
		switch msg.String() {
		case "esc":
			ds.open = false
			ds.cursor.reset()
			ds.focused = false
			ds.input.Blur()
			return ds, nil

		case "enter":
			result, ok := ds.Selected()
			if !ds.open || !ok {
				return ds, nil
			}
			ds.Clear()
			return ds, navigateCmd(result.URL)

		case "down", "ctrl+n":
			if ds.open {
				ds.cursor.down(len(ds.results))
			}
			return ds, nil

		case "up", "ctrl+p":
			if ds.open {
				ds.cursor.up(len(ds.results))
			}
			return ds, nil

		default:
			var cmd tea.Cmd
			before := ds.input.Value()
			ds.input, cmd = ds.input.Update(msg)
			query := ds.input.Value()
			if query == before {
				return ds, cmd
			}

			ds.seq++
			ds.cursor.reset()
			if query == "" {
				ds.results = nil
				ds.suggestions = nil
				ds.searching = false
				ds.open = false
				return ds, cmd
			}

			ds.searching = true
			seq := ds.seq
			debounceCmd := tea.Tick(ds.debounce, func(time.Time) tea.Msg {
				return docSearchDebounceMsg{seq: seq, query: query}
			})
			return ds, tea.Batch(cmd, debounceCmd)
		}
	}

	return ds, nil
}

// View renders the input box and, when open, the results dropdown.
func (ds *DocSearch) View() string {
	width := max(30, ds.width)

	box := searchBoxStyle
	if ds.focused {
		box = focusedSearchBoxStyle
	}
	view := box.Width(width - 2).Render(ds.input.View())
	if ds.open {
		view += "\n" + ds.dropdownView(width)
	}
	return view
}

func (ds *DocSearch) dropdownView(width int) string {
	inner := width - 2
	query := ds.input.Value()

	if len(ds.results) == 0 {
		lines := []string{lipgloss.NewStyle().Foreground(ColorComment).Italic(true).Render(" No results found")}
		if len(ds.suggestions) > 0 {
			lines = append(lines, statusStyle.Render(" Did you mean: "+strings.Join(ds.suggestions, ", ")+"?"))
		}
		return dropdownStyle.Width(inner).Render(strings.Join(lines, "\n"))
	}

	lines := make([]string, 0, len(ds.results)*2+1)
	for i, r := range ds.results {
		title := truncate(r.Title, inner-4)
		if i == ds.cursor.index {
			lines = append(lines, selectedResultStyle.Width(inner).Render("› "+title))
		} else {
			lines = append(lines, resultItemStyle.Render("  "+highlightMatches(title, query)))
		}
		excerpt := truncate(singleLine(r.Excerpt), inner-6)
		lines = append(lines, excerptStyle.Render(highlightMatches(excerpt, query)))
	}
	lines = append(lines, statusStyle.Render(" "+formatCount(len(ds.results))))
	return dropdownStyle.Width(inner).Render(strings.Join(lines, "\n"))
}
