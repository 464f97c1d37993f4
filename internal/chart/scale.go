// Package chart lays out and draws the dashboard bar chart on a grid of
// terminal cells.
package chart

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns the tick step for [start, stop] split into about count
// intervals. A negative result -k stands for a step of 1/k.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// Nice extends [0, max] so its upper bound lands on a round tick value.
func Nice(max float64, count int) float64 {
	if max <= 0 || count <= 0 {
		return max
	}
	start, stop := 0.0, max
	var prestep float64
	for iter := 0; iter < 10; iter++ {
		step := tickIncrement(start, stop, count)
		if step == prestep {
			break
		}
		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			return stop
		}
		prestep = step
	}
	return stop
}

// Ticks returns round values in [start, stop], about count of them.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || stop < start {
		return nil
	}
	if stop == start {
		return []float64{start}
	}
	inc := tickIncrement(start, stop, count)
	if inc == 0 || math.IsNaN(inc) || math.IsInf(inc, 0) {
		return nil
	}
	var out []float64
	if inc > 0 {
		for i := math.Ceil(start / inc); i <= math.Floor(stop/inc); i++ {
			out = append(out, i*inc)
		}
		return out
	}
	inc = -inc
	for i := math.Ceil(start * inc); i <= math.Floor(stop*inc); i++ {
		out = append(out, i/inc)
	}
	return out
}

// Band is a band scale over n keys spread across width cells, with equal
// inner and outer padding and centred alignment.
type Band struct {
	start, step, bandwidth float64
	n                      int
}

// NewBand lays out n bands over width cells.
func NewBand(n int, width float64, padding float64) Band {
	step := width / math.Max(1, float64(n)-padding+padding*2)
	start := (width - step*(float64(n)-padding)) * 0.5
	return Band{start: start, step: step, bandwidth: step * (1 - padding), n: n}
}

// Span returns the cell columns [x0, x1) occupied by band i. Every band is at
// least one cell wide.
func (b Band) Span(i int) (int, int) {
	x := b.start + b.step*float64(i)
	x0 := int(math.Round(x))
	x1 := int(math.Round(x + b.bandwidth))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}
