package tui

import (
	"github.com/charmbracelet/lipgloss"

	"airdash/internal/prefs"
)

type themeColors struct {
	fg, dim, accent, bg, border, basemap, highlight string
}

var (
	darkPalette = themeColors{
		fg:        "#E6E6E6",
		dim:       "#6B7280",
		accent:    "#7C3AED",
		bg:        "#0B0F14",
		border:    "#243141",
		basemap:   "#3B4A5C",
		highlight: "#FFA500",
	}
	lightPalette = themeColors{
		fg:        "#1F2937",
		dim:       "#6B7280",
		accent:    "#7C3AED",
		bg:        "#FFFFFF",
		border:    "#D1D5DB",
		basemap:   "#C7CED8",
		highlight: "#D97706",
	}
)

// Styles
type styles struct {
	colors themeColors

	app        lipgloss.Style
	box        lipgloss.Style
	focusedBox lipgloss.Style
	title      lipgloss.Style
	dim        lipgloss.Style
	label      lipgloss.Style
	control    lipgloss.Style
	active     lipgloss.Style
	cursor     lipgloss.Style
}

func newStyles(t prefs.Theme) styles {
	p := lightPalette
	if t == prefs.Dark {
		p = darkPalette
	}
	fg, bg := lipgloss.Color(p.fg), lipgloss.Color(p.bg)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.border)).
		Foreground(fg).
		Background(bg).
		BorderBackground(bg).
		Padding(0, 1)
	return styles{
		colors:     p,
		app:        lipgloss.NewStyle().Foreground(fg).Background(bg),
		box:        box,
		focusedBox: box.BorderForeground(lipgloss.Color(p.accent)),
		title:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		dim:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim)),
		label:      lipgloss.NewStyle().Bold(true),
		control:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Underline(true),
		active:     lipgloss.NewStyle().Bold(true),
		cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
	}
}
