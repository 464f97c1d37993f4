package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Search       key.Binding
	ClearSearch  key.Binding
	LeaveSearch  key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	ChartMode    key.Binding
	Theme        key.Binding
	NextPane     key.Binding
	PrevPane     key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Left         key.Binding
	Right        key.Binding
	Select       key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	PanUp        key.Binding
	PanDown      key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	Refit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear search")),
		LeaveSearch:  key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),
		NextCategory: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next category")),
		PrevCategory: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev category")),
		ChartMode:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "chart mode")),
		Theme:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		NextPane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev bar")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next bar")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		ZoomIn:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut:      key.NewBinding(key.WithKeys("-", "_")),
		PanUp:        key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("shift+↑↓←→", "pan")),
		PanDown:      key.NewBinding(key.WithKeys("shift+down", "J")),
		PanLeft:      key.NewBinding(key.WithKeys("shift+left", "H")),
		PanRight:     key.NewBinding(key.WithKeys("shift+right", "L")),
		Refit:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fit markers")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevCategory, k.NextCategory, k.Search, k.ChartMode, k.Theme, k.NextPane, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCategory, k.NextCategory, k.Search, k.ClearSearch},
		{k.NextPane, k.PrevPane, k.Up, k.Down, k.Select},
		{k.Left, k.Right, k.ChartMode, k.Theme},
		{k.ZoomIn, k.PanUp, k.Refit},
		{k.Help, k.Quit},
	}
}
