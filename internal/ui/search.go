package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cfs-ui/cfs-docs/internal/docs"
	"github.com/cfs-ui/cfs-docs/internal/search"
)

// Sidebar is the page list with its title quick-filter. Filtering runs
// synchronously on every keystroke.
type Sidebar struct {
	input   textinput.Model
	items   []docs.NavItem
	matches []docs.NavItem
	cursor  cursor
	limit   int
	open    bool
	focused bool
	blurSeq uint64

	// navCursor walks the full page list while the filter is closed.
	navCursor int
	active    string
	width     int
	height    int
}

// NewSidebar creates a sidebar showing at most limit quick-filter matches.
func NewSidebar(limit int) *Sidebar {
	if limit <= 0 {
		limit = search.DefaultQuickFilterLimit
	}
	ti := textinput.New()
	ti.Placeholder = "Filter pages..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 24

	return &Sidebar{
		input:  ti,
		limit:  limit,
		cursor: cursor{index: -1},
		active: "/",
	}
}

// SetItems replaces the page list.
func (s *Sidebar) SetItems(items []docs.NavItem) {
	s.items = items
	if s.navCursor >= len(items) {
		s.navCursor = max(0, len(items)-1)
	}
	s.updateMatches()
}

// SetActive marks the page currently shown.
func (s *Sidebar) SetActive(url string) {
	s.active = url
	if i := docs.IndexOfURL(s.items, url); i >= 0 {
		s.navCursor = i
	}
}

// SetSize sets the dimensions of the sidebar
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = max(8, width-6)
}

// Focus gives the filter input keyboard focus.
func (s *Sidebar) Focus() tea.Cmd {
	s.focused = true
	s.blurSeq++
	s.open = s.input.Value() != ""
	return s.input.Focus()
}

// Blur removes focus. The dropdown stays open for a short grace period.
func (s *Sidebar) Blur() tea.Cmd {
	s.focused = false
	s.input.Blur()
	s.blurSeq++
	return blurCloseCmd("sidebar", s.blurSeq)
}

// Focused reports whether the sidebar has keyboard focus.
func (s *Sidebar) Focused() bool { return s.focused }

// IsOpen reports whether the quick-filter dropdown is shown.
func (s *Sidebar) IsOpen() bool { return s.open }

// Query returns the filter text.
func (s *Sidebar) Query() string { return s.input.Value() }

// Matches returns the current quick-filter matches.
func (s *Sidebar) Matches() []docs.NavItem { return s.matches }

// Clear empties the filter and closes the dropdown.
func (s *Sidebar) Clear() {
	s.input.SetValue("")
	s.matches = nil
	s.open = false
	s.cursor.reset()
}

func (s *Sidebar) updateMatches() {
	query := s.input.Value()
	s.matches = search.QuickFilter(query, s.items, s.limit)
	s.open = query != ""
	s.cursor.reset()
}

// Update handles messages for the sidebar
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case blurCloseMsg:
		if msg.target == "sidebar" && msg.seq == s.blurSeq && !s.focused {
			s.open = false
			s.cursor.reset()
		}
		return s, nil

	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			s.open = false
			s.cursor.reset()
			s.focused = false
			s.input.Blur()
			return s, nil

		case "enter":
			if s.open {
				if !s.cursor.valid(len(s.matches)) {
					return s, nil
				}
				url := s.matches[s.cursor.index].URL
				s.Clear()
				return s, navigateCmd(url)
			}
			if s.navCursor < len(s.items) {
				return s, navigateCmd(s.items[s.navCursor].URL)
			}
			return s, nil

		case "down", "ctrl+n":
			if s.open {
				s.cursor.down(len(s.matches))
			} else if s.navCursor < len(s.items)-1 {
				s.navCursor++
			}
			return s, nil

		case "up", "ctrl+p":
			if s.open {
				s.cursor.up(len(s.matches))
			} else if s.navCursor > 0 {
				s.navCursor--
			}
			return s, nil

		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			s.updateMatches()
			return s, cmd
		}
	}

	return s, nil
}

// View renders the filter, its dropdown and the page list.
func (s *Sidebar) View() string {
	width := max(20, s.width)
	inner := width - 2

	var b strings.Builder
	box := searchBoxStyle
	if s.focused {
		box = focusedSearchBoxStyle
	}
	b.WriteString(box.Width(inner - 2).Render(s.input.View()))
	b.WriteString("\n")

	if s.open {
		b.WriteString(s.dropdownView(inner))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render("Pages"))
	b.WriteString("\n")
	for i, item := range s.items {
		title := truncate(item.Title, inner-2)
		marker := "  "
		style := navItemStyle
		if item.URL == s.active {
			marker = "• "
			style = navActiveStyle
		}
		line := style.Render(marker + title)
		if s.focused && !s.open && i == s.navCursor {
			line = navCursorStyle.Render(marker + title)
		}
		b.WriteString(line + "\n")
	}

	style := sidebarStyle.Width(width)
	if s.height > 0 {
		style = style.Height(s.height)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (s *Sidebar) dropdownView(width int) string {
	if len(s.matches) == 0 {
		return dropdownStyle.Width(width - 2).Render(
			lipgloss.NewStyle().Foreground(ColorComment).Italic(true).Render("No results found"))
	}
	lines := make([]string, 0, len(s.matches)+1)
	for i, item := range s.matches {
		title := truncate(item.Title, width-6)
		if i == s.cursor.index {
			lines = append(lines, selectedResultStyle.Render("› "+title))
		} else {
			lines = append(lines, resultItemStyle.Render("  "+highlightMatches(title, s.input.Value())))
		}
	}
	lines = append(lines, statusStyle.Render(" "+formatCount(len(s.matches))))
	return dropdownStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// formatCount formats the result count
func formatCount(count int) string {
	if count == 0 {
		return "No results"
	}
	if count == 1 {
		return "1 result"
	}
	return lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", count)) + " results"
}
