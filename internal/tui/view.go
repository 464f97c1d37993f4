package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) layout() layout {
	return computeLayout(m.width, m.height, lipgloss.Height(m.footerView()))
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header: controls, then the category legend
	header := lipgloss.JoinVertical(lipgloss.Left,
		fitBlock(m.controlsView(), m.width, 1),
		fitBlock(m.legendView(), m.width, 1),
	)

	// Left column: map over chart
	mapBody := m.mapView.render(m.styles, m.state.Selection)
	chartBody := ""
	chartTitle := "Airports by " + string(m.state.Chart.Mode)
	if m.hasChart {
		chartBody = m.chart.String()
		chartTitle += fmt.Sprintf(" (axis 0..%g)", m.chart.Upper)
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPane(lo.mapPane, "Map", mapBody, false),
		m.renderPane(lo.chartPane, chartTitle, chartBody, m.focus == paneChart),
	)

	// Right column: list, drill-down, details
	drillTitle := "Drill-down"
	if k := m.state.Chart.DrillKey; k != "" {
		drillTitle = fmt.Sprintf("%s (%d)", k, len(m.drill.Items()))
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPane(lo.listPane, fmt.Sprintf("Airports (%d)", len(m.list.Items())), m.list.View(), m.focus == paneList),
		m.renderPane(lo.drillPane, drillTitle, m.drill.View(), m.focus == paneDrill),
		m.renderPane(lo.detailsPane, "Details", m.detailsView(lo.detailsPane.inner().w), false),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, m.footerView())
	return m.styles.app.Width(m.width).Height(m.height).MaxHeight(m.height).Render(ui)
}

func (m Model) renderPane(r rect, title, body string, focused bool) string {
	in := r.inner()
	box := m.styles.box
	if focused {
		box = m.styles.focusedBox
	}
	content := m.styles.title.Render(fitBlock(title, in.w, 1)) + "\n" + fitBlock(body, in.w, in.h)
	return box.Width(max(0, r.w-2)).Height(max(0, r.h-2)).MaxHeight(r.h).Render(content)
}

func (m Model) controlsView() string {
	search := m.search.View()
	if m.focus == paneSearch {
		search = m.styles.control.Render("[") + search + m.styles.control.Render("]")
	}
	return fmt.Sprintf(" %s  Category: %s  Search: %s  Chart: %s  Theme: %s",
		m.styles.title.Render("airdash"),
		m.styles.control.Render(m.state.Filter.Category),
		search,
		m.styles.control.Render(string(m.state.Chart.Mode)),
		m.styles.control.Render(string(m.theme)),
	)
}

func (m Model) footerView() string {
	status := m.styles.dim.Render(" " + m.status + " ")
	tip := ""
	if m.hover != "" {
		tip = m.styles.label.Render(" " + m.hover + " ")
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, status, tip, " ", m.help.View(m.keys))
	return line
}
