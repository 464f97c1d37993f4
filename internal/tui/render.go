package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"airdash/internal/chart"
	"airdash/internal/dashboard"
)

const (
	markerRune   = '●'
	selectedRune = '◉'
)

// render draws the map canvas: basemap edges in braille, then markers, then
// the attribution in the bottom-right corner.
func (mv mapView) render(st styles, sel dashboard.Selection) string {
	w, h := mv.width, mv.height
	if w <= 0 || h <= 0 {
		return ""
	}
	// High-resolution braille buffer for basemap edges
	br := newBrailleBuf(w, h)

	for _, poly := range mv.basemap.Polygons {
		for _, ring := range poly {
			mv.drawPath(br, ring, true)
		}
	}
	for _, ls := range mv.basemap.Lines {
		mv.drawPath(br, ls, false)
	}
	for _, p := range mv.basemap.Points {
		if mx, my, ok := mv.screenXYMicro(p[0], p[1]); ok {
			br.setPixel(mx, my)
		}
	}
	grid := br.cells(st.colors.basemap)

	// Markers in draw order; the selection goes on top
	var picked []int
	for i, mk := range mv.markers {
		x, y, ok := mv.screenXY(mk.rec.Lon, mk.rec.Lat)
		if !ok {
			continue
		}
		if sel.Active(mk.rec.Name) {
			picked = append(picked, i)
			continue
		}
		grid[y][x] = chart.Cell{Ch: markerRune, Color: mk.color}
	}
	for _, i := range picked {
		mk := mv.markers[i]
		x, y, _ := mv.screenXY(mk.rec.Lon, mk.rec.Lat)
		grid[y][x] = chart.Cell{Ch: selectedRune, Color: st.colors.highlight}
	}

	if a := []rune(mv.attribution); len(a) > 0 && len(a) < w {
		row := grid[h-1]
		for i, r := range a {
			row[w-len(a)+i] = chart.Cell{Ch: r, Color: st.colors.dim}
		}
	}

	lines := make([]string, h)
	for y := range grid {
		lines[y] = chart.RenderRow(grid[y])
	}
	return lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n"))
}

// drawPath draws a projected lon/lat path on the microgrid. Segments with an
// end outside the view are skipped.
func (mv mapView) drawPath(br *brailleBuf, path [][2]float64, closed bool) {
	n := len(path)
	if n < 2 {
		return
	}
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := path[i], path[(i+1)%n]
		x0, y0, ok0 := mv.screenXYMicro(a[0], a[1])
		x1, y1, ok1 := mv.screenXYMicro(b[0], b[1])
		if !ok0 || !ok1 {
			continue
		}
		br.drawLineMicro(x0, y0, x1, y1)
	}
}
