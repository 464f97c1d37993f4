// Package palette assigns stable display colours to categorical values.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Category10 is the ten-colour ordinal scheme used for every categorical domain.
var Category10 = []string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// Ordinal maps domain values to colours in domain order, cycling through the
// range when the domain is longer than it. Values outside the initial domain
// are appended on first use, so the mapping is total and stays stable for the
// lifetime of the Ordinal.
type Ordinal struct {
	domain []string
	index  map[string]int
	colors []string
}

// NewOrdinal builds an ordinal scale over domain. Duplicate domain values keep
// their first position. An empty colors slice falls back to Category10.
func NewOrdinal(domain []string, colors []string) *Ordinal {
	if len(colors) == 0 {
		colors = Category10
	}
	o := &Ordinal{
		index:  make(map[string]int, len(domain)),
		colors: colors,
	}
	for _, d := range domain {
		o.add(d)
	}
	return o
}

func (o *Ordinal) add(v string) int {
	if i, ok := o.index[v]; ok {
		return i
	}
	i := len(o.domain)
	o.index[v] = i
	o.domain = append(o.domain, v)
	return i
}

// Color returns the colour assigned to v.
func (o *Ordinal) Color(v string) string {
	return o.colors[o.add(v)%len(o.colors)]
}

// Domain returns a copy of the current domain in assignment order.
func (o *Ordinal) Domain() []string {
	out := make([]string, len(o.domain))
	copy(out, o.domain)
	return out
}

// Contrast picks black or white text for a background of the given hex colour.
// Unparseable input is treated as a light background.
func Contrast(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Mute blends hex toward bg by t (0 keeps hex, 1 yields bg). It is used to
// push unselected chart bars back when a bar is focused.
func Mute(hex, bg string, t float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return hex
	}
	return c.BlendLab(b, t).Clamped().Hex()
}
