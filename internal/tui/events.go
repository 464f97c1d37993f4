package tui

import (
	"airdash/internal/airport"
	"airdash/internal/dashboard"
	"airdash/internal/prefs"
)

// Events raised by the controls, map, list and chart. Every state change goes
// through Model.apply.
type (
	// CategoryChanged sets the category filter. AllCategories clears it.
	CategoryChanged struct{ Category string }

	// SearchChanged sets the name search text.
	SearchChanged struct{ Query string }

	// ChartModeChanged switches the chart between categories and regions.
	ChartModeChanged struct{ Mode dashboard.ChartMode }

	// ThemeChanged applies and persists a theme.
	ThemeChanged struct{ Theme prefs.Theme }

	// RecordSelected shows a record in the details panel. Focus also centres
	// the map on it.
	RecordSelected struct {
		Record airport.Record
		Focus  bool
	}

	// BarSelected lists the members of a chart bar in the drill-down list.
	BarSelected struct{ Key string }

	// Resized carries the new terminal size.
	Resized struct{ Width, Height int }
)
