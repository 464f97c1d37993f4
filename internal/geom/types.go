package geom

import "github.com/golang/geo/r2"

// Data is a minimal geometry container for basemap rendering. Coordinates are
// [lon, lat] pairs.
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     r2.Rect
}

// Empty reports whether d holds no geometry.
func (d Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// finish computes BBox over every coordinate in d.
func (d *Data) finish() {
	var pts []r2.Point
	add := func(p [2]float64) { pts = append(pts, r2.Point{X: p[0], Y: p[1]}) }
	for _, p := range d.Points {
		add(p)
	}
	for _, ls := range d.Lines {
		for _, p := range ls {
			add(p)
		}
	}
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				add(p)
			}
		}
	}
	d.BBox, _ = Bounds(pts)
}
