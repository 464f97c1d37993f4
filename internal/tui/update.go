package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"airdash/internal/dashboard"
)

const zoomStep = 1.5

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.apply(Resized{Width: msg.Width, Height: msg.Height}), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case CategoryChanged, SearchChanged, ChartModeChanged, ThemeChanged, RecordSelected, BarSelected, Resized:
		return m.apply(msg), nil
	}
	// Cursor blink and other input internals
	if m.focus == paneSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize pushes the live pane sizes into the map and lists and redraws the
// chart. The map keeps its view.
func (m Model) resize() Model {
	lo := m.layout()
	mi := lo.mapPane.inner()
	m.mapView.setSize(mi.w, mi.h)
	li := lo.listPane.inner()
	m.list.SetSize(li.w, li.h)
	di := lo.drillPane.inner()
	m.drill.SetSize(di.w, di.h)
	m.help.Width = m.width
	return m.redrawChart()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search box captures typing until it is left
	if m.focus == paneSearch {
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keys.LeaveSearch):
			m.search.Blur()
			m = m.setFocus(paneList)
			return m, nil
		case key.Matches(msg, m.keys.ClearSearch):
			return m.apply(SearchChanged{Query: ""}), nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if q := m.search.Value(); q != before {
			m = m.apply(SearchChanged{Query: q})
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.resize(), nil
	case key.Matches(msg, m.keys.Search):
		m = m.setFocus(paneSearch)
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ClearSearch):
		return m.apply(SearchChanged{Query: ""}), nil
	case key.Matches(msg, m.keys.NextCategory):
		return m.apply(CategoryChanged{Category: dashboard.NextCategory(m.ds, m.state.Filter.Category, 1)}), nil
	case key.Matches(msg, m.keys.PrevCategory):
		return m.apply(CategoryChanged{Category: dashboard.NextCategory(m.ds, m.state.Filter.Category, -1)}), nil
	case key.Matches(msg, m.keys.ChartMode):
		return m.apply(ChartModeChanged{Mode: m.state.Chart.Mode.Toggle()}), nil
	case key.Matches(msg, m.keys.Theme):
		return m.apply(ThemeChanged{Theme: m.theme.Toggle()}), nil
	case key.Matches(msg, m.keys.NextPane):
		return m.setFocus((m.focus + 1) % paneSearch), nil
	case key.Matches(msg, m.keys.PrevPane):
		return m.setFocus((m.focus + paneSearch - 1) % paneSearch), nil
	case key.Matches(msg, m.keys.ZoomIn):
		m.mapView.zoom(zoomStep)
	case key.Matches(msg, m.keys.ZoomOut):
		m.mapView.zoom(1 / zoomStep)
	case key.Matches(msg, m.keys.PanUp):
		m.mapView.pan(0, 0.1)
	case key.Matches(msg, m.keys.PanDown):
		m.mapView.pan(0, -0.1)
	case key.Matches(msg, m.keys.PanLeft):
		m.mapView.pan(-0.1, 0)
	case key.Matches(msg, m.keys.PanRight):
		m.mapView.pan(0.1, 0)
	case key.Matches(msg, m.keys.Refit):
		m.mapView.refit()
	default:
		return m.handlePaneKey(msg)
	}
	return m, nil
}

// handlePaneKey routes navigation keys to the focused pane.
func (m Model) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown)
	switch m.focus {
	case paneList:
		if key.Matches(msg, m.keys.Select) {
			if it, ok := m.list.SelectedItem().(recordItem); ok {
				return m.apply(RecordSelected{Record: it.rec, Focus: true}), nil
			}
			return m, nil
		}
		if nav {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	case paneDrill:
		if key.Matches(msg, m.keys.Select) {
			if it, ok := m.drill.SelectedItem().(recordItem); ok {
				return m.apply(RecordSelected{Record: it.rec}), nil
			}
			return m, nil
		}
		if nav {
			var cmd tea.Cmd
			m.drill, cmd = m.drill.Update(msg)
			return m, cmd
		}
	case paneChart:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.focusBar = max(0, m.focusBar-1)
			return m.redrawChart(), nil
		case key.Matches(msg, m.keys.Right):
			m.focusBar++
			return m.redrawChart(), nil
		case key.Matches(msg, m.keys.Select):
			if k, ok := m.barKey(m.focusBar); ok {
				return m.apply(BarSelected{Key: k}), nil
			}
		}
	}
	return m, nil
}

func (m Model) setFocus(p pane) Model {
	if m.focus == p {
		return m
	}
	chartChanged := m.focus == paneChart || p == paneChart
	m.focus = p
	if p != paneSearch {
		m.search.Blur()
	}
	m = m.refreshDelegates()
	if chartChanged {
		m = m.redrawChart()
	}
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	lo := m.layout()
	ev := tea.MouseEvent(msg)
	switch {
	case ev.Action == tea.MouseActionMotion:
		m.hover = ""
		if in := lo.mapPane.inner(); in.contains(ev.X, ev.Y) {
			cx, cy := ev.X-in.x, ev.Y-in.y
			if r, ok := m.mapView.markerAt(cx, cy); ok {
				m.hover = r.Label()
			} else if lon, lat, ok := m.mapView.cellToLonLat(cx, cy); ok {
				m.hover = fmt.Sprintf("lon=%.4f lat=%.4f", lon, lat)
			}
		}
		return m
	case ev.IsWheel():
		up := ev.Button == tea.MouseButtonWheelUp
		switch {
		case lo.mapPane.contains(ev.X, ev.Y):
			if up {
				m.mapView.zoom(zoomStep)
			} else {
				m.mapView.zoom(1 / zoomStep)
			}
		case lo.listPane.contains(ev.X, ev.Y):
			if up {
				m.list.CursorUp()
			} else {
				m.list.CursorDown()
			}
		case lo.drillPane.contains(ev.X, ev.Y):
			if up {
				m.drill.CursorUp()
			} else {
				m.drill.CursorDown()
			}
		}
		return m
	case ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft:
		return m
	}

	if in := lo.mapPane.inner(); in.contains(ev.X, ev.Y) {
		if r, ok := m.mapView.markerAt(ev.X-in.x, ev.Y-in.y); ok {
			return m.apply(RecordSelected{Record: r, Focus: true})
		}
		return m
	}
	if in := lo.listPane.inner(); in.contains(ev.X, ev.Y) {
		if it, idx, ok := itemAt(m.list, ev.Y-in.y); ok {
			m = m.setFocus(paneList)
			m.list.Select(idx)
			return m.apply(RecordSelected{Record: it.rec, Focus: true})
		}
		return m
	}
	if in := lo.drillPane.inner(); in.contains(ev.X, ev.Y) {
		if it, idx, ok := itemAt(m.drill, ev.Y-in.y); ok {
			m = m.setFocus(paneDrill)
			m.drill.Select(idx)
			return m.apply(RecordSelected{Record: it.rec})
		}
		return m
	}
	if in := lo.chartPane.inner(); in.contains(ev.X, ev.Y) && m.hasChart {
		i := m.chart.BarAt(ev.X-in.x, ev.Y-in.y)
		if k, ok := m.barKey(i); ok {
			m.focusBar = i
			m = m.setFocus(paneChart).redrawChart()
			return m.apply(BarSelected{Key: k})
		}
	}
	return m
}
