package vecpath

import (
	"math"
)

// straightAngleEpsilon is the deviation from a straight angle in radians below which a corner is not rounded.
const straightAngleEpsilon = 1e-6

// RoundCorner returns the commands that replace the corner by a fillet of the given radius, tangent to the lines towards prev and next. The tangent distance is clamped to half the shorter adjacent segment so that fillets of neighbouring corners never overlap, and the radius is reduced to match. It returns a LineTo and a CubeTo approximating the circular arc, or a single LineTo to corner when the corner is (nearly) straight, the radius is not positive, or a neighbour coincides with the corner.
func RoundCorner(prev, corner, next Point, radius float64) Commands {
	v0, v1 := prev.Sub(corner), next.Sub(corner)
	l0, l1 := v0.Length(), v1.Length()
	if !(0.0 < radius) {
		return Commands{LineTo(corner.X, corner.Y)}
	} else if equal(l0, 0.0) || equal(l1, 0.0) {
		Logger().Debug("corner rounding skipped, zero-length tangent", "corner", corner)
		return Commands{LineTo(corner.X, corner.Y)}
	}
	v0, v1 = v0.Div(l0), v1.Div(l1)

	theta := math.Acos(math.Max(-1.0, math.Min(1.0, v0.Dot(v1))))
	if math.Pi-theta < straightAngleEpsilon || theta < straightAngleEpsilon {
		return Commands{LineTo(corner.X, corner.Y)}
	}

	tanHalf := math.Tan(theta / 2.0)
	d := radius / tanHalf
	if dmax := math.Min(l0, l1) / 2.0; dmax < d {
		d = dmax
	}
	r := d * tanHalf

	t0 := corner.Add(v0.Mul(d))
	t1 := corner.Add(v1.Mul(d))
	h := r * 4.0 / 3.0 * math.Tan((math.Pi-theta)/4.0)
	cp0 := t0.Sub(v0.Mul(h))
	cp1 := t1.Sub(v1.Mul(h))
	return Commands{
		LineTo(t0.X, t0.Y),
		CubeTo(cp0.X, cp0.Y, cp1.X, cp1.Y, t1.X, t1.Y),
	}
}

// RoundCorners returns the path with a fillet at every anchor, using radii as a list parallel to the anchors of all contours in order. Missing radii are zero and a zero radius leaves its corner untouched. Only corners between two straight segments are rounded, and the endpoints of open contours never are.
func (p *Path) RoundCorners(radii []float64) (*Path, error) {
	for i, r := range radii {
		if r < 0.0 || math.IsNaN(r) {
			return nil, invalidArgumentf("corner radius %d is negative: %g", i, r)
		}
	}

	subs := p.Subpaths()
	out := make([]Subpath, len(subs))
	offset := 0
	for k, sp := range subs {
		if err := sp.checkLen(3, 3); err != nil {
			return nil, err
		}
		n := len(sp.Points)
		sr := make([]float64, n)
		if offset < len(radii) {
			copy(sr, radii[offset:])
		}
		offset += n
		out[k] = sp.roundCorners(sr)
	}
	return p.withSubpaths(out), nil
}

// ApplyCornerRadii returns the path with every anchor rounded by its own CornerRadius, which is reset to zero on the result.
func (p *Path) ApplyCornerRadii() (*Path, error) {
	var radii []float64
	for _, sp := range p.Subpaths() {
		for _, a := range sp.Points {
			radii = append(radii, a.CornerRadius)
		}
	}
	q, err := p.RoundCorners(radii)
	if err != nil {
		return nil, err
	}
	return q.mapSubpaths(func(sp Subpath) Subpath {
		for i := range sp.Points {
			sp.Points[i].CornerRadius = 0.0
		}
		return sp
	}), nil
}

func (sp Subpath) roundCorners(radii []float64) Subpath {
	n := len(sp.Points)
	out := Subpath{make([]Anchor, 0, n), sp.Closed}
	for i, a := range sp.Points {
		if radii[i] == 0.0 || !sp.Closed && (i == 0 || i == n-1) {
			out.Points = append(out.Points, a.Clone())
			continue
		}
		prev, next := sp.Points[(i+n-1)%n], sp.Points[(i+1)%n]
		if !isStraight(prev, a) || !isStraight(a, next) {
			Logger().Debug("corner rounding skipped, adjacent segment is curved", "index", i)
			out.Points = append(out.Points, a.Clone())
			continue
		}

		cs := RoundCorner(prev.Pos(), a.Pos(), next.Pos(), radii[i])
		if len(cs) == 1 {
			b := a.Clone()
			b.CornerRadius = 0.0
			out.Points = append(out.Points, b)
			continue
		}
		t0 := Pt(cs[0].X, cs[0].Y)
		t1 := Pt(cs[1].X, cs[1].Y)
		h0 := Point{cs[1].X1, cs[1].Y1}.Sub(t0.Pos())
		h1 := Point{cs[1].X2, cs[1].Y2}.Sub(t1.Pos())
		t0.Out, t1.In = &h0, &h1
		out.Points = append(out.Points, t0, t1)
	}
	return out
}
