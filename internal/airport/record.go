package airport

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadCoordinate is returned when a latitude or longitude is not a finite number.
var ErrBadCoordinate = errors.New("coordinate is not a number")

// Record is one airport row. Records are immutable after load.
type Record struct {
	ID        string
	Name      string
	Type      string
	City      string
	Country   string
	Region    string
	Continent string
	IATA      string
	Lat       float64
	Lon       float64
}

// Raw holds the unparsed text fields of one dataset row.
type Raw struct {
	ID        string
	Name      string
	Type      string
	City      string
	Country   string
	Region    string
	Continent string
	IATA      string
	Lat       string
	Lon       string
}

// NewRecord converts a raw row into a Record. It fails with ErrBadCoordinate
// when either coordinate does not parse as a finite number. A blank
// coordinate is 0.
func NewRecord(raw Raw) (Record, error) {
	lat, err := parseCoord(raw.Lat)
	if err != nil {
		return Record{}, fmt.Errorf("latitude %q: %w", raw.Lat, err)
	}
	lon, err := parseCoord(raw.Lon)
	if err != nil {
		return Record{}, fmt.Errorf("longitude %q: %w", raw.Lon, err)
	}
	return Record{
		ID:        raw.ID,
		Name:      raw.Name,
		Type:      raw.Type,
		City:      raw.City,
		Country:   raw.Country,
		Region:    raw.Region,
		Continent: raw.Continent,
		IATA:      strings.TrimSpace(raw.IATA),
		Lat:       lat,
		Lon:       lon,
	}, nil
}

// parseCoord follows numeric coercion of a CSV field: a blank field is 0,
// anything else must be a finite number.
func parseCoord(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadCoordinate
	}
	return v, nil
}

// Label is the short marker label: the IATA code when present, else the name.
func (r Record) Label() string {
	if r.IATA != "" {
		return r.IATA
	}
	return r.Name
}
