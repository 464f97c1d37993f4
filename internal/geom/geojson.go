package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type geoObject struct {
	Type        string            `json:"type"`
	Coordinates json.RawMessage   `json:"coordinates"`
	Geometries  []json.RawMessage `json:"geometries"`
	Geometry    json.RawMessage   `json:"geometry"`
	Features    []json.RawMessage `json:"features"`
}

// ParseGeoJSON reads a GeoJSON document (geometry, Feature or
// FeatureCollection) into Data. Unsupported or malformed members are skipped.
func ParseGeoJSON(r io.Reader) (Data, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Data{}, err
	}
	var d Data
	if err := d.walk(raw, 0); err != nil {
		return Data{}, err
	}
	if d.Empty() {
		return Data{}, errors.New("geojson: no geometries found")
	}
	d.finish()
	return d, nil
}

func (d *Data) walk(raw json.RawMessage, depth int) error {
	if len(raw) == 0 || depth > 16 {
		return nil
	}
	var o geoObject
	if err := json.Unmarshal(raw, &o); err != nil {
		if depth == 0 {
			return fmt.Errorf("geojson: %w", err)
		}
		return nil
	}
	switch o.Type {
	case "FeatureCollection":
		for _, f := range o.Features {
			d.walk(f, depth+1)
		}
	case "Feature":
		d.walk(o.Geometry, depth+1)
	case "GeometryCollection":
		for _, g := range o.Geometries {
			d.walk(g, depth+1)
		}
	case "Point":
		var p [2]float64
		if decodePos(o.Coordinates, &p) {
			d.Points = append(d.Points, p)
		}
	case "MultiPoint":
		var ps [][2]float64
		if decodePos(o.Coordinates, &ps) {
			d.Points = append(d.Points, ps...)
		}
	case "LineString":
		var ls [][2]float64
		if decodePos(o.Coordinates, &ls) {
			d.Lines = append(d.Lines, ls)
		}
	case "MultiLineString":
		var mls [][][2]float64
		if decodePos(o.Coordinates, &mls) {
			d.Lines = append(d.Lines, mls...)
		}
	case "Polygon":
		var poly [][][2]float64
		if decodePos(o.Coordinates, &poly) {
			d.Polygons = append(d.Polygons, poly)
		}
	case "MultiPolygon":
		var mp [][][][2]float64
		if decodePos(o.Coordinates, &mp) {
			d.Polygons = append(d.Polygons, mp...)
		}
	default:
		if depth == 0 {
			return fmt.Errorf("geojson: unsupported type %q", o.Type)
		}
	}
	return nil
}

// decodePos decodes positions into v. Extra position members such as
// altitude are discarded by the fixed-size [2]float64 target.
func decodePos(raw json.RawMessage, v any) bool {
	return len(raw) > 0 && json.Unmarshal(raw, v) == nil
}
