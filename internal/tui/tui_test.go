package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airdash/internal/airport"
	"airdash/internal/dashboard"
	"airdash/internal/geom"
	"airdash/internal/prefs"
)

func sample() *airport.Dataset {
	return airport.NewDataset([]airport.Record{
		{ID: "1", Name: "Heathrow", Type: "large_airport", Continent: "EU", IATA: "LHR", City: "London", Country: "GB", Lat: 51.47, Lon: -0.45},
		{ID: "2", Name: "Alpha Field", Type: "small_airport", Continent: "NA", Lat: 40.0, Lon: -100.0},
		{ID: "3", Name: "Narita", Type: "large_airport", Continent: "AS", IATA: "NRT", Lat: 35.76, Lon: 140.39},
		{ID: "4", Name: "Rooftop Pad", Type: "heliport", Continent: "NA", Lat: 40.7, Lon: -74.0},
		{ID: "5", Name: "Alpine Strip", Type: "small_airport", Continent: "EU", Lat: 46.5, Lon: 8.0},
	})
}

func newModel(t *testing.T, ds *airport.Dataset, store prefs.Store) Model {
	t.Helper()
	return New(Options{Dataset: ds, Store: store, Padding: 0.2, Attribution: "© OpenStreetMap contributors"})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func listNames(t *testing.T, m Model, drill bool) []string {
	t.Helper()
	l := m.list
	if drill {
		l = m.drill
	}
	var out []string
	for _, it := range l.Items() {
		ri, ok := it.(recordItem)
		require.True(t, ok)
		out = append(out, ri.rec.Name)
	}
	return out
}

func TestNewRendersDataset(t *testing.T) {
	m := newModel(t, sample(), nil)

	assert.Len(t, m.mapView.markers, 5)
	assert.Equal(t, []string{"Alpha Field", "Alpine Strip", "Heathrow", "Narita", "Rooftop Pad"}, listNames(t, m, false))
	assert.False(t, m.state.Selection.Valid)
	assert.Empty(t, m.drill.Items())
	assert.Equal(t, dashboard.AllCategories, m.state.Filter.Category)
	assert.Equal(t, dashboard.ByCategory, m.state.Chart.Mode)
	assert.Equal(t, prefs.Light, m.Theme())
	assert.NotEqual(t, geom.World, m.mapView.view)
}

func TestRenderAllIsIdempotent(t *testing.T) {
	m := newModel(t, sample(), nil)
	m = m.apply(CategoryChanged{Category: "small_airport"})
	again := m.renderAll()

	assert.Equal(t, listNames(t, m, false), listNames(t, again, false))
	assert.Equal(t, m.mapView.markers, again.mapView.markers)
	assert.Equal(t, m.mapView.view, again.mapView.view)
}

func TestFilterChangeClearsSelectionAndDrill(t *testing.T) {
	m := newModel(t, sample(), nil)
	m = m.apply(RecordSelected{Record: m.ds.Records[0]})
	m = m.apply(BarSelected{Key: "small_airport"})
	require.True(t, m.state.Selection.Valid)
	require.Len(t, m.drill.Items(), 2)

	m = m.apply(CategoryChanged{Category: "large_airport"})

	assert.Equal(t, []string{"Heathrow", "Narita"}, listNames(t, m, false))
	assert.Len(t, m.mapView.markers, 2)
	assert.False(t, m.state.Selection.Valid)
	assert.Empty(t, m.drill.Items())
	assert.Empty(t, m.state.Chart.DrillKey)
}

func TestDrillDownIgnoresFilter(t *testing.T) {
	m := newModel(t, sample(), nil)
	m = m.apply(SearchChanged{Query: "alp"})
	require.Equal(t, []string{"Alpha Field", "Alpine Strip"}, listNames(t, m, false))

	m = m.apply(BarSelected{Key: "large_airport"})

	assert.Equal(t, []string{"Heathrow", "Narita"}, listNames(t, m, true))
	assert.Equal(t, []string{"Alpha Field", "Alpine Strip"}, listNames(t, m, false))
}

func TestSelectionHighlightsEveryRowWithTheSameName(t *testing.T) {
	ds := airport.NewDataset([]airport.Record{
		{ID: "1", Name: "Springfield", Type: "small_airport", Continent: "NA", Lat: 39.8, Lon: -89.6},
		{ID: "2", Name: "Springfield", Type: "small_airport", Continent: "NA", Lat: 37.2, Lon: -93.3},
		{ID: "3", Name: "Shelbyville", Type: "small_airport", Continent: "NA", Lat: 39.4, Lon: -88.8},
	})
	m := newModel(t, ds, nil)
	m = m.apply(RecordSelected{Record: ds.Records[0]})

	d := recordDelegate{sel: m.state.Selection}
	active := 0
	for _, it := range m.list.Items() {
		if d.active(it.(recordItem)) {
			active++
		}
	}
	assert.Equal(t, 2, active)
	assert.Equal(t, "1", m.state.Selection.Record.ID)
}

func TestEmptySubsetKeepsMapView(t *testing.T) {
	m := newModel(t, sample(), nil)
	before := m.mapView.view

	m = m.apply(SearchChanged{Query: "no such airport"})

	assert.Empty(t, m.mapView.markers)
	assert.Empty(t, m.list.Items())
	assert.Equal(t, before, m.mapView.view)
}

func TestThemeTogglePersists(t *testing.T) {
	store := prefs.NewMemoryStore()
	m := newModel(t, sample(), store)
	require.Equal(t, prefs.Light, m.Theme())

	m = send(t, m, runes("t"))
	assert.Equal(t, prefs.Dark, m.Theme())

	reopened := newModel(t, sample(), store)
	assert.Equal(t, prefs.Dark, reopened.Theme())
}

func TestKeysDriveFilterAndChartMode(t *testing.T) {
	m := newModel(t, sample(), nil)

	m = send(t, m, runes("]"))
	assert.Equal(t, "heliport", m.state.Filter.Category)
	assert.Equal(t, []string{"Rooftop Pad"}, listNames(t, m, false))

	m = send(t, m, runes("["), runes("["))
	assert.Equal(t, "small_airport", m.state.Filter.Category)

	m = m.apply(BarSelected{Key: "heliport"})
	m = send(t, m, runes("m"))
	assert.Equal(t, dashboard.ByRegion, m.state.Chart.Mode)
	assert.Equal(t, "heliport", m.state.Chart.DrillKey)
}

func TestChartModeSwitchRedrawsBars(t *testing.T) {
	ds := airport.NewDataset(append(sample().Records,
		airport.Record{ID: "6", Name: "Kingsford Smith", Type: "large_airport", Continent: "OC", Lat: -33.9, Lon: 151.2}))
	m := send(t, newModel(t, ds, nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	require.True(t, m.hasChart)
	before := m.chart.String()
	in := m.layout().chartPane.inner()

	countBars := func(m Model) int {
		seen := map[int]bool{}
		for x := 0; x < in.w; x++ {
			if i := m.chart.BarAt(x, 1); i >= 0 {
				seen[i] = true
			}
		}
		return len(seen)
	}
	require.Equal(t, len(ds.Categories), countBars(m))

	m = send(t, m, runes("m"))

	assert.Equal(t, dashboard.ByRegion, m.state.Chart.Mode)
	assert.Equal(t, len(ds.Regions), countBars(m))
	assert.NotEqual(t, before, m.chart.String())
	assert.Contains(t, ansi.Strip(m.View()), "Airports by region")
}

func TestRenderAllTakesLiveMapSize(t *testing.T) {
	m := send(t, newModel(t, sample(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	in := m.layout().mapPane.inner()
	m.mapView.setSize(0, 0)

	m = m.apply(CategoryChanged{Category: "heliport"})

	assert.Equal(t, in.w, m.mapView.width)
	assert.Equal(t, in.h, m.mapView.height)
}

func TestRefitFallsBackToBasemap(t *testing.T) {
	base, err := geom.ParseWKT(strings.NewReader("POLYGON ((0 0, 20 0, 20 10, 0 10, 0 0))\n"))
	require.NoError(t, err)
	m := New(Options{Dataset: sample(), Basemap: base, Padding: 0.2})
	require.NotEqual(t, geom.Fit(base.BBox, 0.2), m.mapView.view)

	m = m.apply(SearchChanged{Query: "no such airport"})
	m = send(t, m, runes("f"))

	assert.Equal(t, geom.Fit(base.BBox, 0.2), m.mapView.view)
}

func TestSearchBoxTyping(t *testing.T) {
	m := newModel(t, sample(), nil)

	m = send(t, m, runes("/"), runes("n"), runes("a"), runes("r"))
	assert.Equal(t, "nar", m.state.Filter.Search)
	assert.Equal(t, []string{"Narita"}, listNames(t, m, false))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, paneList, m.focus)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, m.state.Filter.Search)
	assert.Len(t, m.list.Items(), 5)
}

func TestListEnterSelectsAndCentresMap(t *testing.T) {
	m := send(t, newModel(t, sample(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, m.state.Selection.Valid)
	r := m.state.Selection.Record
	assert.Equal(t, "Alpine Strip", r.Name)
	assert.Equal(t, geom.Focus(r.Lon, r.Lat), m.mapView.view)
}

func TestClickListRow(t *testing.T) {
	m := send(t, newModel(t, sample(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	in := m.layout().listPane.inner()

	m = send(t, m, click(in.x+2, in.y+2))

	require.True(t, m.state.Selection.Valid)
	assert.Equal(t, "Heathrow", m.state.Selection.Record.Name)
}

func TestClickMarker(t *testing.T) {
	m := send(t, newModel(t, sample(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	in := m.layout().mapPane.inner()
	x, y, ok := m.mapView.screenXY(-74.0, 40.7)
	require.True(t, ok)

	m = send(t, m, click(in.x+x, in.y+y))

	require.True(t, m.state.Selection.Valid)
	assert.Equal(t, "Rooftop Pad", m.state.Selection.Record.Name)
	assert.Equal(t, geom.Focus(-74.0, 40.7), m.mapView.view)
}

func TestHoverShowsLabel(t *testing.T) {
	m := send(t, newModel(t, sample(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	in := m.layout().mapPane.inner()
	x, y, ok := m.mapView.screenXY(140.39, 35.76)
	require.True(t, ok)

	m = send(t, m, tea.MouseMsg{X: in.x + x, Y: in.y + y, Action: tea.MouseActionMotion})

	assert.Equal(t, "NRT", m.hover)
}

func TestClickBarFillsDrillDown(t *testing.T) {
	m := send(t, newModel(t, sample(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	require.True(t, m.hasChart)
	in := m.layout().chartPane.inner()

	bx := -1
	for x := 0; x < in.w; x++ {
		if m.chart.BarAt(x, 1) == 1 {
			bx = x
			break
		}
	}
	require.GreaterOrEqual(t, bx, 0)

	m = send(t, m, click(in.x+bx, in.y+1))

	key := m.ds.Categories[1]
	assert.Equal(t, key, m.state.Chart.DrillKey)
	assert.Equal(t, paneChart, m.focus)
	assert.NotEmpty(t, m.drill.Items())
}

func TestChartFailureKeepsPreviousFrame(t *testing.T) {
	m := send(t, newModel(t, sample(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	require.True(t, m.hasChart)
	before := m.chart.String()

	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})

	assert.True(t, m.hasChart)
	assert.Equal(t, before, m.chart.String())
}

func TestViewShowsPanes(t *testing.T) {
	m := send(t, newModel(t, sample(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})

	out := ansi.Strip(m.View())

	for _, want := range []string{"airdash", "Category: All", "Map", "Airports (5)", "Details", "heliport", "axis 0.."} {
		assert.True(t, strings.Contains(out, want), want)
	}
	assert.Equal(t, "", newModel(t, sample(), nil).View())
}
