package tui

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"airdash/internal/airport"
	"airdash/internal/chart"
	"airdash/internal/dashboard"
	"airdash/internal/geom"
	"airdash/internal/prefs"
)

const prefsTimeout = 2 * time.Second

// pane is the part of the screen that receives navigation keys.
type pane int

const (
	paneList pane = iota
	paneChart
	paneDrill
	paneSearch
)

// Options configures a dashboard Model.
type Options struct {
	Dataset   *airport.Dataset
	Store     prefs.Store
	ChartMode dashboard.ChartMode

	Basemap     geom.Data
	Attribution string
	Padding     float64

	Logger *log.Logger
}

// Model is the dashboard orchestrator. It owns the dataset, the dashboard
// state and every view, and applies events in the order they arrive.
type Model struct {
	width  int
	height int

	ds     *airport.Dataset
	state  dashboard.State
	store  prefs.Store
	theme  prefs.Theme
	styles styles
	logger *log.Logger

	mapView mapView
	list    list.Model
	drill   list.Model
	search  textinput.Model

	// last successfully drawn chart
	chart    chart.Frame
	hasChart bool
	focusBar int

	focus pane
	keys  keyMap
	help  help.Model

	status string
	hover  string
}

// New builds the dashboard and performs the initial render: theme from the
// store, map markers, list rows and an empty details panel. The chart is drawn
// once the terminal size is known.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	theme := prefs.Light
	if opts.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), prefsTimeout)
		t, err := prefs.LoadTheme(ctx, opts.Store)
		cancel()
		if err != nil {
			logger.Printf("Error reading theme: %v", err)
		}
		theme = t
	}
	ds := opts.Dataset
	if ds == nil {
		ds = airport.NewDataset(nil)
	}

	m := Model{
		ds:      ds,
		state:   dashboard.NewState(opts.ChartMode),
		store:   opts.Store,
		theme:   theme,
		styles:  newStyles(theme),
		logger:  logger,
		mapView: newMapView(opts.Basemap, opts.Padding, opts.Attribution),
		keys:    defaultKeyMap(),
		help:    help.New(),
		focus:   paneList,
	}
	m.list = newRecordList(m.styles)
	m.drill = newRecordList(m.styles)

	m.search = textinput.New()
	m.search.Prompt = ""
	m.search.Placeholder = "airport name"
	m.search.CharLimit = 64
	m.search.Width = 18

	m = m.renderAll()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// State returns the current dashboard state.
func (m Model) State() dashboard.State { return m.state }

// Theme returns the applied theme.
func (m Model) Theme() prefs.Theme { return m.theme }
