package tui

import (
	"fmt"
	"io"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"airdash/internal/airport"
	"airdash/internal/dashboard"
	"airdash/internal/palette"
)

// recordItem is one airport row of the main or drill-down list.
type recordItem struct {
	rec   airport.Record
	color string
}

func (i recordItem) FilterValue() string { return i.rec.Name }

// recordDelegate draws a row as a colour swatch and the airport name. Rows
// whose name matches the selection are highlighted.
type recordDelegate struct {
	sel     dashboard.Selection
	focused bool
	styles  styles
}

func (d recordDelegate) Height() int                             { return 1 }
func (d recordDelegate) Spacing() int                            { return 0 }
func (d recordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d recordDelegate) active(it recordItem) bool { return d.sel.Active(it.rec.Name) }

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(recordItem)
	if !ok {
		return
	}
	prefix := "  "
	if d.focused && index == m.Index() {
		prefix = d.styles.cursor.Render("› ")
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(it.color)).Render("▌")
	name := ansi.Truncate(it.rec.Name, max(1, m.Width()-4), "…")
	if d.active(it) {
		name = d.styles.active.
			Background(lipgloss.Color(it.color)).
			Foreground(lipgloss.Color(palette.Contrast(it.color))).
			Render(name)
	}
	fmt.Fprint(w, prefix+swatch+" "+name)
}

func newRecordList(st styles) list.Model {
	l := list.New(nil, recordDelegate{styles: st}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = st.dim
	return l
}

func recordItems(records []airport.Record, color func(airport.Record) string) []list.Item {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = recordItem{rec: r, color: color(r)}
	}
	return items
}

// itemAt maps a row of the visible page to a record.
func itemAt(l list.Model, row int) (recordItem, int, bool) {
	if row < 0 || row >= l.Paginator.PerPage {
		return recordItem{}, 0, false
	}
	idx := l.Paginator.Page*l.Paginator.PerPage + row
	items := l.Items()
	if idx >= len(items) {
		return recordItem{}, 0, false
	}
	it, ok := items[idx].(recordItem)
	return it, idx, ok
}
