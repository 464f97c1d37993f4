package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"airdash/internal/dashboard"
)

func (m Model) detailsView(w int) string {
	sel := m.state.Selection
	if !sel.Valid {
		return m.styles.dim.Italic(true).Width(w).Render(dashboard.Placeholder)
	}
	lines := []string{m.styles.label.Render(sel.Record.Name)}
	for _, f := range dashboard.Details(sel.Record) {
		lines = append(lines, m.styles.dim.Render(f.Label+": ")+f.Value)
	}
	return lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n"))
}

// legendView is one colour chip per category, in colour assignment order.
func (m Model) legendView() string {
	domain := m.ds.CategoryColors.Domain()
	chips := make([]string, 0, len(domain))
	for _, c := range domain {
		chip := lipgloss.NewStyle().Foreground(lipgloss.Color(m.ds.CategoryColors.Color(c))).Render("■")
		chips = append(chips, chip+" "+c)
	}
	return " " + strings.Join(chips, "  ")
}
