package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newSizedApp(src *fakeSource) *App {
	a := NewApp(src, Options{})
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return a
}

func TestAppCtrlKFocusesSearch(t *testing.T) {
	a := newSizedApp(sampleSource())

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	if a.focus != focusSidebar {
		t.Fatalf("tab should focus the sidebar, got %v", a.focus)
	}

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if a.focus != focusSearch || !a.search.Focused() {
		t.Fatal("ctrl+k should focus the search input")
	}
	if a.sidebar.Focused() {
		t.Error("sidebar should lose focus")
	}
	if a.sidebar.Query() != "" || a.search.Query() != "" {
		t.Error("ctrl+k must not reach any input")
	}

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if a.focus != focusSearch {
		t.Error("ctrl+k while focused keeps focus on search")
	}
}

func TestAppNavigateFromSearch(t *testing.T) {
	a := newSizedApp(sampleSource())
	a.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	a.Update(typeText("faq"))
	settle(t, a.search)

	a.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	a.Update(cmd())

	if a.ActivePage() != "/faq" {
		t.Errorf("expected /faq to be active, got %s", a.ActivePage())
	}
	if a.focus != focusPage {
		t.Error("navigating should return focus to the page")
	}
	if !strings.Contains(a.View(), "setup guide") {
		t.Error("page viewer should show the page body")
	}
}

func TestAppIgnoresUnknownPage(t *testing.T) {
	a := newSizedApp(sampleSource())
	a.Update(NavigateMsg{URL: "/nope"})
	if a.ActivePage() != "/" {
		t.Errorf("unknown page should be ignored, got %s", a.ActivePage())
	}
}

func TestAppPollsUntilLoaded(t *testing.T) {
	src := sampleSource()
	src.loading = true
	a := newSizedApp(src)

	_, cmd := a.Update(contentPollMsg{})
	if cmd == nil {
		t.Fatal("expected another poll while loading")
	}
	if !strings.Contains(a.View(), "Indexing docs") {
		t.Error("header should show loading status")
	}

	src.loading = false
	_, cmd = a.Update(contentPollMsg{})
	if cmd != nil {
		t.Error("polling should stop once loaded")
	}
	if !strings.Contains(a.View(), "5 pages") {
		t.Error("header should show page counts once loaded")
	}
}

func TestAppDegradedStatus(t *testing.T) {
	src := sampleSource()
	src.err = errors.New("read docs DOCS.md: no such file")
	a := newSizedApp(src)
	a.Update(contentPollMsg{})

	if !strings.Contains(a.View(), "titles only") {
		t.Error("header should report degraded search")
	}
}

func TestAppQuit(t *testing.T) {
	a := newSizedApp(sampleSource())
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q on the page should quit")
	}
}
