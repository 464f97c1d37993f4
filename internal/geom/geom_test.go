package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, x1, y0, y1 float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: x0, Hi: x1}, Y: r1.Interval{Lo: y0, Hi: y1}}
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	b, ok := Bounds([]r2.Point{{X: 10, Y: 5}, {X: -20, Y: 40}})
	require.True(t, ok)
	assert.Equal(t, rect(-20, 10, 5, 40), b)
}

func TestPadMatchesTwentyPercentPerSide(t *testing.T) {
	p := Pad(rect(0, 10, 0, 20), 0.2)
	assert.InDelta(t, -2, p.X.Lo, 1e-9)
	assert.InDelta(t, 12, p.X.Hi, 1e-9)
	assert.InDelta(t, -4, p.Y.Lo, 1e-9)
	assert.InDelta(t, 24, p.Y.Hi, 1e-9)
}

func TestFitSinglePointGetsMinimumSpan(t *testing.T) {
	b, _ := Bounds([]r2.Point{{X: 2.35, Y: 48.85}})
	v := Fit(b, 0.2)
	assert.InDelta(t, FocusSpan.X, v.Size().X, 1e-9)
	assert.InDelta(t, FocusSpan.Y, v.Size().Y, 1e-9)
	assert.True(t, v.ContainsPoint(r2.Point{X: 2.35, Y: 48.85}))
}

func TestFitStaysInsideWorld(t *testing.T) {
	b, _ := Bounds([]r2.Point{{X: -179, Y: -89}, {X: 179, Y: 89}})
	v := Fit(b, 0.2)
	assert.Equal(t, World, v)

	b, _ = Bounds([]r2.Point{{X: 170, Y: 0}, {X: 178, Y: 10}})
	v = Fit(b, 0.2)
	assert.LessOrEqual(t, v.X.Hi, 180.0)
	assert.InDelta(t, 8*1.4, v.X.Length(), 1e-9)
}

func TestFocusNearPoleIsClamped(t *testing.T) {
	v := Focus(179.9, 89.99)
	assert.LessOrEqual(t, v.X.Hi, 180.0)
	assert.LessOrEqual(t, v.Y.Hi, 90.0)
	assert.InDelta(t, FocusSpan.X, v.X.Length(), 1e-9)
}

func TestZoomAndPan(t *testing.T) {
	v := Zoom(World, 2)
	assert.InDelta(t, 180, v.X.Length(), 1e-9)
	assert.Equal(t, r2.Point{}, v.Center())

	out := Zoom(v, 0.1)
	assert.Equal(t, World, out)

	p := Pan(v, 0.25, 0)
	assert.InDelta(t, -45, p.X.Lo, 1e-9)
	p = Pan(v, 10, 0)
	assert.InDelta(t, 180, p.X.Hi, 1e-9)
}

func TestParseGeoJSON(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"Point","coordinates":[1,2,300]}},
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[5,5]]}},
	  {"type":"Feature","geometry":{"type":"MultiPolygon","coordinates":[[[[0,0],[10,0],[10,10],[0,0]]]]}},
	  {"type":"Feature","geometry":null}
	]}`
	d, err := ParseGeoJSON(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{1, 2}}, d.Points)
	assert.Len(t, d.Lines, 1)
	assert.Len(t, d.Polygons, 1)
	assert.Equal(t, rect(0, 10, 0, 10), d.BBox)

	_, err = ParseGeoJSON(strings.NewReader(`{"type":"Topology"}`))
	assert.Error(t, err)
	_, err = ParseGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	assert.Error(t, err)
}

func TestParseWKT(t *testing.T) {
	in := "# coastline\nPOLYGON((0 0, 4 0, 4 4, 0 0), (1 1, 2 1, 2 2, 1 1))\nLINESTRING(0 0, 1 1)\nMULTIPOINT((3 3), (4 5))\n"
	d, err := ParseWKT(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	assert.Len(t, d.Polygons[0], 2)
	assert.Len(t, d.Lines, 1)
	assert.Equal(t, [][2]float64{{3, 3}, {4, 5}}, d.Points)
	assert.Equal(t, rect(0, 4, 0, 5), d.BBox)

	_, err = ParseWKT(strings.NewReader("CIRCLE(1 2)"))
	assert.Error(t, err)
}

func TestLoadBasemap(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "world.wkt")
	require.NoError(t, os.WriteFile(p, []byte("LINESTRING(-10 0, 10 0)\n"), 0o644))
	d, err := LoadBasemap(p)
	require.NoError(t, err)
	assert.Len(t, d.Lines, 1)

	_, err = LoadBasemap(filepath.Join(dir, "world.kml"))
	assert.Error(t, err)
}
