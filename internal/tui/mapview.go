package tui

import (
	"github.com/golang/geo/r2"

	"airdash/internal/airport"
	"airdash/internal/geom"
)

type marker struct {
	rec   airport.Record
	color string
}

// mapView is the map canvas: a lon/lat view box, the basemap underlay and one
// marker per filtered airport.
type mapView struct {
	width  int
	height int

	view    r2.Rect
	markers []marker

	basemap     geom.Data
	padding     float64
	attribution string
}

// newMapView starts on the basemap extent, or the whole world without one.
func newMapView(basemap geom.Data, padding float64, attribution string) mapView {
	mv := mapView{
		view:        geom.World,
		basemap:     basemap,
		padding:     padding,
		attribution: attribution,
	}
	if !basemap.Empty() {
		mv.view = geom.Fit(basemap.BBox, padding)
	}
	return mv
}

func (mv *mapView) setSize(w, h int) {
	mv.width, mv.height = max(0, w), max(0, h)
}

// clearMarkers drops every marker. The slice is replaced, not truncated, so
// copies of an older Model keep their markers.
func (mv *mapView) clearMarkers() { mv.markers = nil }

func (mv *mapView) addMarker(r airport.Record, color string) {
	mv.markers = append(mv.markers, marker{rec: r, color: color})
}

// fitMarkers frames every marker. With no markers the view is left as is.
func (mv *mapView) fitMarkers() {
	pts := make([]r2.Point, len(mv.markers))
	for i, mk := range mv.markers {
		pts[i] = r2.Point{X: mk.rec.Lon, Y: mk.rec.Lat}
	}
	if b, ok := geom.Bounds(pts); ok {
		mv.view = geom.Fit(b, mv.padding)
	}
}

// refit frames the markers, or the basemap when there are none.
func (mv *mapView) refit() {
	if len(mv.markers) == 0 && !mv.basemap.Empty() {
		mv.view = geom.Fit(mv.basemap.BBox, mv.padding)
		return
	}
	mv.fitMarkers()
}

func (mv *mapView) focus(r airport.Record) {
	mv.view = geom.Focus(r.Lon, r.Lat)
}

func (mv *mapView) zoom(factor float64) { mv.view = geom.Zoom(mv.view, factor) }

func (mv *mapView) pan(fx, fy float64) { mv.view = geom.Pan(mv.view, fx, fy) }

// screenXYMicro projects lon/lat onto the 2x4 braille microgrid.
func (mv mapView) screenXYMicro(lon, lat float64) (int, int, bool) {
	if mv.width <= 0 || mv.height <= 0 {
		return 0, 0, false
	}
	nx := (lon - mv.view.X.Lo) / mv.view.X.Length()
	ny := (lat - mv.view.Y.Lo) / mv.view.Y.Length()
	if nx < 0 || nx > 1 || ny < 0 || ny > 1 {
		return 0, 0, false
	}
	mx := int(nx * float64(mv.width*2-1))
	my := int((1 - ny) * float64(mv.height*4-1))
	return mx, my, true
}

// screenXY projects lon/lat onto a canvas cell.
func (mv mapView) screenXY(lon, lat float64) (int, int, bool) {
	mx, my, ok := mv.screenXYMicro(lon, lat)
	return mx / 2, my / 4, ok
}

// cellToLonLat converts a canvas cell back to the lon/lat at its centre.
func (mv mapView) cellToLonLat(cx, cy int) (float64, float64, bool) {
	if mv.width <= 0 || mv.height <= 0 {
		return 0, 0, false
	}
	nx := (float64(cx) + 0.5) / float64(mv.width)
	ny := 1 - (float64(cy)+0.5)/float64(mv.height)
	return mv.view.X.Lo + nx*mv.view.X.Length(), mv.view.Y.Lo + ny*mv.view.Y.Length(), true
}

// markerAt returns the marker drawn nearest to canvas cell (cx, cy), within
// one cell. Later markers are drawn on top and win ties.
func (mv mapView) markerAt(cx, cy int) (airport.Record, bool) {
	best, found := 3, -1
	for i, mk := range mv.markers {
		x, y, ok := mv.screenXY(mk.rec.Lon, mk.rec.Lat)
		if !ok {
			continue
		}
		dx, dy := abs(x-cx), abs(y-cy)
		if dx > 1 || dy > 1 {
			continue
		}
		if d := dx + dy; d <= best {
			best, found = d, i
		}
	}
	if found < 0 {
		return airport.Record{}, false
	}
	return mv.markers[found].rec, true
}
