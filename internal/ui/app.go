package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cfs-ui/cfs-docs/internal/docs"
	"github.com/cfs-ui/cfs-docs/internal/logging"
)

var uiLog = logging.ForComponent(logging.CompUI)

const (
	sidebarWidth = 32
	pollInterval = 100 * time.Millisecond
)

type focusArea int

const (
	focusPage focusArea = iota
	focusSidebar
	focusSearch
)

// StatusSource is the part of the content provider the header reports on.
type StatusSource interface {
	ItemSource
	Err() error
	Indexed() int
}

// Options configures the App.
type Options struct {
	Debounce         time.Duration
	QuickFilterLimit int
	// Title is shown at the left of the header.
	Title string
}

// App is the root model: header with the search box, sidebar, and the
// page viewer.
type App struct {
	source  StatusSource
	title   string
	sidebar *Sidebar
	search  *DocSearch
	page    viewport.Model

	items   []docs.NavItem
	loading bool
	active  string
	focus   focusArea

	width  int
	height int
	ready  bool
}

// NewApp creates the root model.
func NewApp(source StatusSource, opts Options) *App {
	title := opts.Title
	if title == "" {
		title = "CFS UI Docs"
	}
	items, loading := source.NavItems()

	a := &App{
		source:  source,
		title:   title,
		sidebar: NewSidebar(opts.QuickFilterLimit),
		search:  NewDocSearch(source, opts.Debounce),
		page:    viewport.New(80, 20),
		items:   items,
		loading: loading,
		active:  "/",
	}
	a.sidebar.SetItems(items)
	a.sidebar.SetActive(a.active)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return contentPollCmd(0)
}

// ActivePage returns the url of the page being shown.
func (a *App) ActivePage() string { return a.active }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		a.ready = true
		a.renderPage()
		return a, nil

	case contentPollMsg:
		items, loading := a.source.NavItems()
		a.items = items
		a.loading = loading
		a.sidebar.SetItems(items)
		if loading {
			return a, contentPollCmd(pollInterval)
		}
		if err := a.source.Err(); err != nil {
			uiLog.Warn("content_degraded", slog.String("error", err.Error()))
		}
		a.renderPage()
		return a, nil

	case NavigateMsg:
		a.navigate(msg.URL)
		return a, nil

	case docSearchDebounceMsg, docSearchResultsMsg:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd

	case blurCloseMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		cmds = append(cmds, cmd)
		a.sidebar, cmd = a.sidebar.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global shortcuts are consumed here and never reach the widgets.
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "ctrl+k":
		return a, a.setFocus(focusSearch)
	}

	switch a.focus {
	case focusSearch:
		switch msg.String() {
		case "tab":
			return a, a.setFocus(focusSidebar)
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		if !a.search.Focused() {
			a.focus = focusPage
		}
		return a, cmd

	case focusSidebar:
		switch msg.String() {
		case "tab":
			return a, a.setFocus(focusPage)
		}
		var cmd tea.Cmd
		a.sidebar, cmd = a.sidebar.Update(msg)
		if !a.sidebar.Focused() {
			a.focus = focusPage
		}
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "tab", "/":
		return a, a.setFocus(focusSidebar)
	case "s":
		return a, a.setFocus(focusSearch)
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

// setFocus moves keyboard focus. The widget losing focus keeps its
// dropdown open for the blur grace period.
func (a *App) setFocus(to focusArea) tea.Cmd {
	if a.focus == to {
		switch to {
		case focusSearch:
			return a.search.Focus()
		case focusSidebar:
			return a.sidebar.Focus()
		}
		return nil
	}

	var cmds []tea.Cmd
	switch a.focus {
	case focusSearch:
		cmds = append(cmds, a.search.Blur())
	case focusSidebar:
		cmds = append(cmds, a.sidebar.Blur())
	}
	a.focus = to
	switch to {
	case focusSearch:
		cmds = append(cmds, a.search.Focus())
	case focusSidebar:
		cmds = append(cmds, a.sidebar.Focus())
	}
	return tea.Batch(cmds...)
}

func (a *App) navigate(url string) {
	if _, ok := docs.FindByURL(a.items, url); !ok {
		uiLog.Warn("navigate_unknown_page", slog.String("url", url))
		return
	}
	a.active = url
	a.sidebar.SetActive(url)
	a.renderPage()
	a.page.GotoTop()
	if a.focus == focusSearch {
		a.search.Blur()
		a.focus = focusPage
	}
}

func (a *App) layout() {
	headerHeight := 3
	footerHeight := 1
	bodyHeight := max(5, a.height-headerHeight-footerHeight)
	pageWidth := max(20, a.width-sidebarWidth-2)

	a.sidebar.SetSize(sidebarWidth, bodyHeight)
	a.search.SetWidth(min(72, max(30, a.width-lipgloss.Width(a.title)-30)))
	a.page.Width = pageWidth
	a.page.Height = bodyHeight
}

func (a *App) renderPage() {
	item, ok := docs.FindByURL(a.items, a.active)
	if !ok {
		a.page.SetContent("")
		return
	}

	body := item.ContentString()
	switch {
	case item.Content == nil && a.loading:
		body = statusStyle.Render("Loading...")
	case body == "":
		body = statusStyle.Render("No content available for this page.")
	}

	wrap := lipgloss.NewStyle().Width(max(10, a.page.Width-2))
	a.page.SetContent(pageTitleStyle.Render(item.Title) + "\n" + wrap.Render(body))
}

func (a *App) statusLine() string {
	switch {
	case a.loading:
		return warnStatusStyle.Render("Indexing docs...")
	case a.source.Err() != nil:
		return warnStatusStyle.Render("Docs unavailable, searching titles only")
	default:
		return statusStyle.Render(fmt.Sprintf("%d pages · %d indexed", len(a.items), a.source.Indexed()))
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(a.title)+"  ",
		a.search.View(),
		"  "+a.statusLine(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.sidebar.View(),
		" ",
		a.page.View(),
	)

	footer := strings.Join([]string{
		renderKeyHint("ctrl+k", "search"),
		renderKeyHint("tab", "next pane"),
		keyHintStyle.Render(FormatKey("up")+FormatKey("down")) + " " + hintStyle.Render("select"),
		renderKeyHint("enter", "open"),
		renderKeyHint("esc", "close"),
		renderKeyHint("q", "quit"),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
