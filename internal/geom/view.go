// Package geom holds lon/lat box arithmetic for the map view and the basemap
// loaders.
package geom

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// World is the lon/lat extent the map view is confined to. There is no
// horizontal wraparound.
var World = r2.Rect{X: r1.Interval{Lo: -180, Hi: 180}, Y: r1.Interval{Lo: -90, Hi: 90}}

// FocusSpan is the lon/lat size of the close-up view used when the map
// centres on a single airport.
var FocusSpan = r2.Point{X: 0.7, Y: 0.35}

// Bounds returns the box enclosing pts. ok is false for no points.
func Bounds(pts []r2.Point) (r2.Rect, bool) {
	if len(pts) == 0 {
		return r2.EmptyRect(), false
	}
	return r2.RectFromPoints(pts...), true
}

// Pad grows r on every side by frac of its width and height.
func Pad(r r2.Rect, frac float64) r2.Rect {
	s := r.Size()
	return r.Expanded(r2.Point{X: s.X * frac, Y: s.Y * frac})
}

// Fit returns the view for a marker box: padded by frac, grown to at least
// FocusSpan around its centre, and kept inside World.
func Fit(r r2.Rect, frac float64) r2.Rect {
	r = Pad(r, frac)
	s := r.Size()
	if s.X < FocusSpan.X || s.Y < FocusSpan.Y {
		s.X = max(s.X, FocusSpan.X)
		s.Y = max(s.Y, FocusSpan.Y)
		r = r2.RectFromCenterSize(r.Center(), s)
	}
	return Clamp(r)
}

// Focus returns the close-up view centred on lon/lat.
func Focus(lon, lat float64) r2.Rect {
	return Clamp(r2.RectFromCenterSize(r2.Point{X: lon, Y: lat}, FocusSpan))
}

// Clamp slides r inside World, shrinking an axis only when it is wider than
// the world itself.
func Clamp(r r2.Rect) r2.Rect {
	return r2.Rect{X: clampInterval(r.X, World.X), Y: clampInterval(r.Y, World.Y)}
}

func clampInterval(i, bound r1.Interval) r1.Interval {
	if i.Length() >= bound.Length() {
		return bound
	}
	if i.Lo < bound.Lo {
		return r1.Interval{Lo: bound.Lo, Hi: bound.Lo + i.Length()}
	}
	if i.Hi > bound.Hi {
		return r1.Interval{Lo: bound.Hi - i.Length(), Hi: bound.Hi}
	}
	return i
}

// Zoom scales r about its centre; factor > 1 zooms in. The view never gets
// smaller than a tenth of FocusSpan.
func Zoom(r r2.Rect, factor float64) r2.Rect {
	s := r.Size().Mul(1 / factor)
	s.X = max(s.X, FocusSpan.X/10)
	s.Y = max(s.Y, FocusSpan.Y/10)
	return Clamp(r2.RectFromCenterSize(r.Center(), s))
}

// Pan shifts r by fractions of its own size.
func Pan(r r2.Rect, fx, fy float64) r2.Rect {
	s := r.Size()
	d := r2.Point{X: s.X * fx, Y: s.Y * fy}
	return Clamp(r2.Rect{
		X: r1.Interval{Lo: r.X.Lo + d.X, Hi: r.X.Hi + d.X},
		Y: r1.Interval{Lo: r.Y.Lo + d.Y, Hi: r.Y.Hi + d.Y},
	})
}
