package vecpath

import (
	"math"
)

// Dash returns the path split into open dashes following the dash array, which alternates between dash and gap lengths starting at offset into the pattern. An odd number of lengths is repeated to make it even. Curved segments are flattened within Tolerance. An empty array returns the path unchanged.
func (p *Path) Dash(offset float64, array ...float64) (*Path, error) {
	if len(array) == 0 {
		return p.Clone(), nil
	}
	total := 0.0
	for _, d := range array {
		if d < 0.0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, invalidArgumentf("bad dash length %g", d)
		}
		total += d
	}
	if total == 0.0 {
		return nil, invalidArgumentf("dash array has zero length")
	} else if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, invalidArgumentf("bad dash offset %g", offset)
	}
	if len(array)%2 == 1 {
		array = append(append([]float64{}, array...), array...)
		total *= 2.0
	}
	offset = math.Mod(offset, total)
	if offset < 0.0 {
		offset += total
	}

	var out []Subpath
	for _, pl := range p.polylines(Tolerance) {
		out = append(out, dashPolyline(pl, offset, array)...)
	}
	return p.withSubpaths(out), nil
}

func dashPolyline(pl Polyline, offset float64, array []float64) []Subpath {
	i := 0
	for array[i] <= offset {
		offset -= array[i]
		i = (i + 1) % len(array)
	}
	rem := array[i] - offset
	on := i%2 == 0

	var dashes []Subpath
	var cur []Point
	if on && 0 < len(pl.Points) {
		cur = []Point{pl.Points[0]}
	}
	emit := func() {
		if 2 <= len(cur) && Epsilon < (Polyline{Points: cur}).Length() {
			dashes = append(dashes, FromPolygon(false, cur...).Subpath)
		}
		cur = nil
	}
	pl.edges(func(a, b Point) {
		l := Distance(a, b)
		t := 0.0
		for rem < l-t {
			t += rem
			q := a.Interpolate(b, t/l)
			if on {
				cur = append(cur, q)
				emit()
			} else {
				cur = []Point{q}
			}
			i = (i + 1) % len(array)
			rem = array[i]
			on = !on
		}
		rem -= l - t
		if on {
			cur = append(cur, b)
		}
	})
	if on {
		emit()
	}
	return dashes
}
