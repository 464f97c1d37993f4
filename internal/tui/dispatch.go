package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"airdash/internal/airport"
	"airdash/internal/dashboard"
	"airdash/internal/prefs"
)

// apply runs one event against the state and re-renders the views it
// touches.
func (m Model) apply(ev tea.Msg) Model {
	switch ev := ev.(type) {
	case CategoryChanged:
		m.state.Filter.Category = ev.Category
		m = m.renderAll()
	case SearchChanged:
		m.state.Filter.Search = ev.Query
		if m.search.Value() != ev.Query {
			m.search.SetValue(ev.Query)
		}
		m = m.renderAll()
	case ChartModeChanged:
		m.state.Chart.Mode = ev.Mode
		m.focusBar = 0
		m = m.redrawChart()
		m.status = fmt.Sprintf("chart: by %s", ev.Mode)
	case ThemeChanged:
		m.theme = ev.Theme
		m.styles = newStyles(ev.Theme)
		m.persistTheme()
		m = m.refreshDelegates()
		m = m.redrawChart()
		m.status = fmt.Sprintf("theme: %s", ev.Theme)
	case RecordSelected:
		if ev.Focus {
			m.mapView.focus(ev.Record)
		}
		m = m.showDetails(ev.Record)
	case BarSelected:
		m.state.Chart.DrillKey = ev.Key
		m = m.fillDrill()
	case Resized:
		m.width, m.height = ev.Width, ev.Height
		m = m.resize()
	}
	return m
}

// renderAll redraws everything that depends on the filter: map markers and
// view, the list, an empty details panel and an empty drill-down list.
// Running it twice with the same state gives the same views.
func (m Model) renderAll() Model {
	filtered := m.state.Filtered(m.ds)
	m = m.renderMap(filtered)
	m = m.renderList(filtered)
	m.state.Selection = dashboard.Selection{}
	m.state.Chart.DrillKey = ""
	m.drill.SetItems(nil)
	m.status = fmt.Sprintf("%d of %d airports", len(filtered), m.ds.Len())
	return m.refreshDelegates()
}

// renderMap repopulates the markers, takes the live pane size, then fits the
// view to the markers.
func (m Model) renderMap(records []airport.Record) Model {
	m.mapView.clearMarkers()
	for _, r := range records {
		m.mapView.addMarker(r, m.ds.CategoryColor(r))
	}
	if m.width > 0 && m.height > 0 {
		in := m.layout().mapPane.inner()
		m.mapView.setSize(in.w, in.h)
	}
	m.mapView.fitMarkers()
	return m
}

func (m Model) renderList(records []airport.Record) Model {
	m.list.SetItems(recordItems(dashboard.SortByName(records), m.ds.CategoryColor))
	m.list.Select(0)
	return m
}

func (m Model) fillDrill() Model {
	mode := m.state.Chart.Mode
	members := dashboard.DrillDown(m.ds, mode, m.state.Chart.DrillKey)
	colors := mode.Colors(m.ds)
	m.drill.SetItems(recordItems(members, func(r airport.Record) string { return colors.Color(mode.Key(r)) }))
	m.drill.Select(0)
	m.status = fmt.Sprintf("%s: %d airports", m.state.Chart.DrillKey, len(members))
	return m
}

// showDetails replaces the details panel content with r and highlights the
// rows sharing its name.
func (m Model) showDetails(r airport.Record) Model {
	m.state.Selection = dashboard.Select(r)
	return m.refreshDelegates()
}

func (m Model) refreshDelegates() Model {
	m.list.SetDelegate(recordDelegate{sel: m.state.Selection, focused: m.focus == paneList, styles: m.styles})
	m.drill.SetDelegate(recordDelegate{sel: m.state.Selection, focused: m.focus == paneDrill, styles: m.styles})
	return m
}

func (m Model) persistTheme() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), prefsTimeout)
	defer cancel()
	if err := prefs.SaveTheme(ctx, m.store, m.theme); err != nil {
		m.logger.Printf("Error saving theme: %v", err)
	}
}
