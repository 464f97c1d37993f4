package chart

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"airdash/internal/palette"
)

// ErrTooSmall is returned when the canvas cannot hold one cell per bar.
var ErrTooSmall = errors.New("chart: canvas too small")

const (
	bandPadding = 0.1
	yTicks      = 10
)

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Bar is one chart input: a key, its count and its colour.
type Bar struct {
	Key   string
	Count int
	Color string
}

// Options controls canvas size and styling.
type Options struct {
	Width  int
	Height int
	// Focused is the index of the highlighted bar, -1 for none. The other
	// bars are muted toward Background.
	Focused    int
	Background string
	AxisColor  string
}

// Cell is one terminal cell of a canvas: a rune and an optional foreground
// colour.
type Cell struct {
	Ch    rune
	Color string
}

// Frame is a rendered chart plus the geometry needed to hit-test it.
type Frame struct {
	lines []string

	top, plotH int
	labelRows  int
	spans      [][2]int
	Upper      float64
}

// String returns the rendered chart.
func (f Frame) String() string { return strings.Join(f.lines, "\n") }

// BarAt returns the bar index under canvas cell (x, y), or -1.
func (f Frame) BarAt(x, y int) int {
	if y < f.top || y > f.top+f.plotH+f.labelRows {
		return -1
	}
	for i, s := range f.spans {
		if x >= s[0] && x < s[1] {
			return i
		}
	}
	return -1
}

// Render draws bars on a Width x Height canvas: a linear y axis from 0 to the
// nice maximum count, one band per bar in input order, and key labels written
// vertically under the x axis.
func Render(bars []Bar, opt Options) (Frame, error) {
	w, h := opt.Width, opt.Height
	if w <= 0 || h <= 0 {
		return Frame{}, fmt.Errorf("%w: %dx%d", ErrTooSmall, w, h)
	}
	maxCount := 0
	for _, b := range bars {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	upper := Nice(float64(maxCount), yTicks)

	// label area below the axis, capped at a third of the canvas
	maxLabel := 0
	for _, b := range bars {
		if n := len([]rune(b.Key)); n > maxLabel {
			maxLabel = n
		}
	}
	labelRows := min(maxLabel, max(3, h/3))
	top := 1
	plotH := h - top - 1 - labelRows
	if plotH < 2 {
		return Frame{}, fmt.Errorf("%w: height %d", ErrTooSmall, h)
	}
	ticks := Ticks(0, upper, max(2, plotH/2))
	tickW := 1
	for _, t := range ticks {
		tickW = max(tickW, len(formatTick(t)))
	}
	left := tickW + 1
	plotW := w - left - 1
	if plotW < len(bars) || plotW < 1 {
		return Frame{}, fmt.Errorf("%w: width %d for %d bars", ErrTooSmall, w, len(bars))
	}

	grid := make([][]Cell, h)
	for y := range grid {
		grid[y] = make([]Cell, w)
		for x := range grid[y] {
			grid[y][x] = Cell{Ch: ' '}
		}
	}
	put := func(x, y int, ch rune, color string) {
		if y >= 0 && y < h && x >= 0 && x < w {
			grid[y][x] = Cell{ch, color}
		}
	}
	axisY := top + plotH

	// axes
	for y := top; y < axisY; y++ {
		put(left-1, y, '│', opt.AxisColor)
	}
	put(left-1, axisY, '└', opt.AxisColor)
	for x := left; x < w-1; x++ {
		put(x, axisY, '─', opt.AxisColor)
	}
	lastRow := -1
	for _, t := range ticks {
		row := axisY
		if upper > 0 {
			row = axisY - int(math.Round(t/upper*float64(plotH)))
		}
		if row == lastRow {
			continue
		}
		lastRow = row
		if row != axisY {
			put(left-1, row, '┤', opt.AxisColor)
		}
		label := formatTick(t)
		for i, r := range label {
			put(left-1-len(label)+i, row, r, opt.AxisColor)
		}
	}

	band := NewBand(len(bars), float64(plotW), bandPadding)
	f := Frame{top: top, plotH: plotH, labelRows: labelRows, Upper: upper}
	for i, b := range bars {
		x0, x1 := band.Span(i)
		x0, x1 = x0+left, min(x1+left, w-1)
		f.spans = append(f.spans, [2]int{x0, x1})

		color := b.Color
		if opt.Focused >= 0 && i != opt.Focused && opt.Background != "" {
			color = palette.Mute(color, opt.Background, 0.6)
		}
		units := 0
		if upper > 0 {
			units = int(math.Round(float64(b.Count) / upper * float64(plotH*8)))
		}
		full, part := units/8, units%8
		for x := x0; x < x1; x++ {
			for k := 0; k < full; k++ {
				put(x, axisY-1-k, '█', color)
			}
			if part > 0 {
				put(x, axisY-1-full, eighths[part], color)
			}
		}

		label := []rune(b.Key)
		if len(label) > labelRows {
			label = append(label[:labelRows-1], '…')
		}
		cx := x0 + (x1-x0-1)/2
		for k, r := range label {
			put(cx, axisY+1+k, r, opt.AxisColor)
		}
	}

	f.lines = make([]string, h)
	for y, row := range grid {
		f.lines[y] = RenderRow(row)
	}
	return f, nil
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

// RenderRow styles runs of same-coloured cells together.
func RenderRow(row []Cell) string {
	var sb strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run []rune
		for j < len(row) && row[j].Color == row[i].Color {
			run = append(run, row[j].Ch)
			j++
		}
		if row[i].Color == "" {
			sb.WriteString(string(run))
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(row[i].Color)).Render(string(run)))
		}
		i = j
	}
	return sb.String()
}
