package dashboard

import (
	"fmt"

	"airdash/internal/airport"
)

// Placeholder is shown in the details panel when nothing is selected.
const Placeholder = "Click an airport on the map, list, or chart to see details here."

// NotAvailable stands in for a missing IATA code.
const NotAvailable = "N/A"

// Field is one labelled line of the details panel.
type Field struct {
	Label string
	Value string
}

// Details returns the detail lines for r, title excluded.
func Details(r airport.Record) []Field {
	iata := r.IATA
	if iata == "" {
		iata = NotAvailable
	}
	return []Field{
		{"IATA", iata},
		{"Type", r.Type},
		{"Location", r.City + ", " + r.Country},
		{"Continent", r.Continent},
		{"Coords", fmt.Sprintf("%.4f, %.4f", r.Lat, r.Lon)},
	}
}
