package tui

import (
	"airdash/internal/chart"
	"airdash/internal/dashboard"
)

// redrawChart draws the chart from the live pane size. On failure the error
// is logged and the previous frame stays on screen.
func (m Model) redrawChart() Model {
	inner := m.layout().chartPane.inner()
	mode := m.state.Chart.Mode
	colors := mode.Colors(m.ds)

	agg := dashboard.Aggregate(m.ds, mode)
	bars := make([]chart.Bar, len(agg))
	for i, b := range agg {
		bars[i] = chart.Bar{Key: b.Key, Count: b.Count, Color: colors.Color(b.Key)}
	}
	if m.focusBar >= len(bars) {
		m.focusBar = max(0, len(bars)-1)
	}
	focused := -1
	if m.focus == paneChart {
		focused = m.focusBar
	}

	f, err := chart.Render(bars, chart.Options{
		Width:      inner.w,
		Height:     inner.h,
		Focused:    focused,
		Background: m.styles.colors.bg,
		AxisColor:  m.styles.colors.dim,
	})
	if err != nil {
		m.logger.Printf("Error drawing chart: %v", err)
		return m
	}
	m.chart, m.hasChart = f, true
	return m
}

// barKey is the key of bar i in the current chart mode.
func (m Model) barKey(i int) (string, bool) {
	domain := m.state.Chart.Mode.Domain(m.ds)
	if i < 0 || i >= len(domain) {
		return "", false
	}
	return domain[i], true
}
