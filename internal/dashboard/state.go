// Package dashboard holds the view-independent state of the dashboard and the
// pure derivations every view renders from.
package dashboard

import (
	"fmt"
	"strings"

	"airdash/internal/airport"
	"airdash/internal/palette"
)

// AllCategories is the category filter value that matches every record.
const AllCategories = "All"

// Filter is the live category + search input.
type Filter struct {
	Category string
	Search   string
}

// Matches reports whether r passes both the category and the name predicate.
func (f Filter) Matches(r airport.Record) bool {
	if f.Category != "" && f.Category != AllCategories && r.Type != f.Category {
		return false
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Search))
}

// Apply returns the matching records in dataset order. It is a fresh scan on
// every call.
func (f Filter) Apply(records []airport.Record) []airport.Record {
	out := make([]airport.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// ChartMode selects the aggregation axis of the chart.
type ChartMode string

const (
	ByCategory ChartMode = "category"
	ByRegion   ChartMode = "region"
)

// ParseChartMode accepts "category" or "region".
func ParseChartMode(s string) (ChartMode, error) {
	switch ChartMode(strings.ToLower(strings.TrimSpace(s))) {
	case ByCategory:
		return ByCategory, nil
	case ByRegion:
		return ByRegion, nil
	}
	return "", fmt.Errorf("unknown chart mode %q", s)
}

// Toggle switches between the two modes.
func (m ChartMode) Toggle() ChartMode {
	if m == ByRegion {
		return ByCategory
	}
	return ByRegion
}

// Key is the grouping value of r under this mode.
func (m ChartMode) Key(r airport.Record) string {
	if m == ByRegion {
		return r.Continent
	}
	return r.Type
}

// Domain is the ordered key set of this mode.
func (m ChartMode) Domain(ds *airport.Dataset) []string {
	if m == ByRegion {
		return ds.Regions
	}
	return ds.Categories
}

// Colors is the colour assignment of this mode.
func (m ChartMode) Colors(ds *airport.Dataset) *palette.Ordinal {
	if m == ByRegion {
		return ds.RegionColors
	}
	return ds.CategoryColors
}

// ChartState is independent of Filter: the chart always describes the whole
// dataset.
type ChartState struct {
	Mode ChartMode
	// DrillKey is the bar whose members are listed; empty when cleared.
	DrillKey string
}

// Selection is the record shown in the details panel, if any.
type Selection struct {
	Record airport.Record
	Valid  bool
}

// Select returns a selection holding r.
func Select(r airport.Record) Selection { return Selection{Record: r, Valid: true} }

// Active reports whether a row displaying name should be highlighted. Rows
// are matched on display name, so distinct records sharing a name are all
// highlighted.
func (s Selection) Active(name string) bool {
	return s.Valid && s.Record.Name == name
}

// State is the whole mutable dashboard state. It is owned by the event
// dispatcher.
type State struct {
	Filter    Filter
	Chart     ChartState
	Selection Selection
}

// NewState returns the initial state for the given chart mode.
func NewState(mode ChartMode) State {
	if mode == "" {
		mode = ByCategory
	}
	return State{
		Filter: Filter{Category: AllCategories},
		Chart:  ChartState{Mode: mode},
	}
}

// Filtered is the filtered subset of ds under the current filter.
func (s State) Filtered(ds *airport.Dataset) []airport.Record {
	return s.Filter.Apply(ds.Records)
}

// CategoryOptions is the category control's option list: All followed by the
// category set.
func CategoryOptions(ds *airport.Dataset) []string {
	return append([]string{AllCategories}, ds.Categories...)
}

// NextCategory steps through CategoryOptions by delta, wrapping at both ends.
// An unknown current value restarts from All.
func NextCategory(ds *airport.Dataset, current string, delta int) string {
	opts := CategoryOptions(ds)
	i := 0
	for j, o := range opts {
		if o == current {
			i = j
			break
		}
	}
	n := len(opts)
	return opts[((i+delta)%n+n)%n]
}
