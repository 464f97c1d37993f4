package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseWKT reads one WKT geometry per non-empty line. Supported: POINT,
// MULTIPOINT, LINESTRING, POLYGON.
func ParseWKT(r io.Reader) (Data, error) {
	var d Data
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if err := d.addWKT(s); err != nil {
			return Data{}, fmt.Errorf("wkt line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Data{}, err
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	d.finish()
	return d, nil
}

func (d *Data) addWKT(s string) error {
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		body, err := between(s, "(", ")")
		if err != nil {
			return err
		}
		body = strings.NewReplacer("(", "", ")", "").Replace(body)
		d.Points = append(d.Points, parseTuples(body)...)
	case strings.HasPrefix(up, "POINT"):
		body, err := between(s, "(", ")")
		if err != nil {
			return err
		}
		d.Points = append(d.Points, parseTuples(body)...)
	case strings.HasPrefix(up, "LINESTRING"):
		body, err := between(s, "(", ")")
		if err != nil {
			return err
		}
		if ls := parseTuples(body); len(ls) >= 2 {
			d.Lines = append(d.Lines, ls)
		}
	case strings.HasPrefix(up, "POLYGON"):
		body, err := between(s, "((", "))")
		if err != nil {
			return err
		}
		// normalize spaces around ring separators
		body = strings.ReplaceAll(body, ") , (", "),(")
		body = strings.ReplaceAll(body, "), (", "),(")
		var poly [][][2]float64
		for _, rp := range strings.Split(body, "),(") {
			if ring := parseTuples(rp); len(ring) >= 3 {
				poly = append(poly, ring)
			}
		}
		if len(poly) > 0 {
			d.Polygons = append(d.Polygons, poly)
		}
	default:
		return errors.New("unsupported wkt type")
	}
	return nil
}

func between(s, open, close string) (string, error) {
	i := strings.Index(s, open)
	j := strings.LastIndex(s, close)
	if i < 0 || j <= i {
		return "", errors.New("invalid wkt")
	}
	return s[i+len(open) : j], nil
}

// parseTuples splits "x y, x y, ..." into [lon, lat] pairs, skipping bad tuples.
func parseTuples(block string) [][2]float64 {
	var out [][2]float64
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, [2]float64{x, y})
	}
	return out
}
