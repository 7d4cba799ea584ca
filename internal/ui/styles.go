package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night
var (
	ColorBg      = lipgloss.Color("#1a1b26")
	ColorSurface = lipgloss.Color("#24283b")
	ColorBorder  = lipgloss.Color("#414868")
	ColorText    = lipgloss.Color("#c0caf5")
	ColorTextDim = lipgloss.Color("#787fa0")
	ColorAccent  = lipgloss.Color("#7aa2f7")
	ColorPurple  = lipgloss.Color("#bb9af7")
	ColorCyan    = lipgloss.Color("#7dcfff")
	ColorGreen   = lipgloss.Color("#9ece6a")
	ColorYellow  = lipgloss.Color("#e0af68")
	ColorRed     = lipgloss.Color("#f7768e")
	ColorComment = lipgloss.Color("#787fa0")
)

var (
	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	focusedSearchBoxStyle = searchBoxStyle.
				BorderForeground(ColorCyan)

	dropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	resultItemStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorText)

	selectedResultStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(ColorCyan).
				Foreground(ColorBg)

	excerptStyle = lipgloss.NewStyle().
			Padding(0, 3).
			Foreground(ColorComment)

	highlightStyle = lipgloss.NewStyle().
			Background(ColorYellow).
			Foreground(ColorBg).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorComment)

	warnStatusStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	navItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	navActiveStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	navCursorStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface)

	pageTitleStyle = lipgloss.NewStyle().
			Foreground(ColorPurple).
			Bold(true).
			MarginBottom(1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(ColorComment)

	keyHintStyle = lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorComment).
			Padding(0, 1)
)
