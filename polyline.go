package vecpath

import "math"

// Polyline is a flattened contour of straight segments. A closed polyline has an implicit segment from its last to its first point.
type Polyline struct {
	Points []Point
	Closed bool
}

// polylines flattens every contour of the path within tolerance.
func (p *Path) polylines(tolerance float64) []Polyline {
	subs := p.Subpaths()
	pls := make([]Polyline, 0, len(subs))
	for _, sp := range subs {
		if 0 < len(sp.Points) {
			pls = append(pls, sp.polyline(tolerance))
		}
	}
	return pls
}

// polyline flattens the contour within tolerance, curved segments are subdivided until flat.
func (sp Subpath) polyline(tolerance float64) Polyline {
	pl := Polyline{Closed: sp.Closed}
	if len(sp.Points) == 0 {
		return pl
	}
	pl.Points = append(pl.Points, sp.Points[0].Pos())
	for _, b := range sp.segments() {
		if b.Straight() {
			pl.Points = append(pl.Points, b[3])
		} else {
			pl.Points = flattenCubicBezier(pl.Points, b, tolerance)
		}
	}
	if sp.Closed && 1 < len(pl.Points) && pl.Points[0].Equals(pl.Points[len(pl.Points)-1]) {
		pl.Points = pl.Points[:len(pl.Points)-1]
	}
	return pl
}

// edges calls f for every segment, including the closing segment of closed polylines.
func (pl Polyline) edges(f func(Point, Point)) {
	n := len(pl.Points)
	for i := 1; i < n; i++ {
		f(pl.Points[i-1], pl.Points[i])
	}
	if pl.Closed && 2 < n {
		f(pl.Points[n-1], pl.Points[0])
	}
}

// Winding returns the number of times the polyline winds around the test point, implicitly closing open polylines. Counter clockwise windings count positively.
func (pl Polyline) Winding(test Point) int {
	n := len(pl.Points)
	winding := 0
	for i := 0; i < n; i++ {
		winding += lineWinding(pl.Points[i], pl.Points[(i+1)%n], test)
	}
	return winding
}

// lineWinding returns the winding contribution of the segment p0-p1 for a ray cast from test towards positive x.
func lineWinding(p0, p1, test Point) int {
	if p0.Y <= test.Y && test.Y < p1.Y {
		// upward crossing
		if 0.0 < isLeft(p0, p1, test) {
			return 1
		}
	} else if p1.Y <= test.Y && test.Y < p0.Y {
		// downward crossing
		if isLeft(p0, p1, test) < 0.0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if test is left of the line p0-p1, negative if right, and zero if on it.
func isLeft(p0, p1, test Point) float64 {
	return p1.Sub(p0).PerpDot(test.Sub(p0))
}

// SignedArea returns the polygon's signed area, implicitly closing open polylines. It is positive for counter clockwise polygons.
func (pl Polyline) SignedArea() float64 {
	n := len(pl.Points)
	a := 0.0
	for i := 0; i < n; i++ {
		a += pl.Points[i].PerpDot(pl.Points[(i+1)%n])
	}
	return a / 2.0
}

// Length returns the length of all segments.
func (pl Polyline) Length() float64 {
	d := 0.0
	pl.edges(func(a, b Point) {
		d += Distance(a, b)
	})
	return d
}

// Centroid returns the center point of the polygon. Polygons without area return the average of their points.
func (pl Polyline) Centroid() Point {
	c, a := pl.centroidMoment()
	if equal(a, 0.0) {
		return pl.average()
	}
	return c.Div(6.0 * a)
}

// centroidMoment returns the first moment of area times six and the signed area.
func (pl Polyline) centroidMoment() (Point, float64) {
	n := len(pl.Points)
	c := Point{}
	for i := 0; i < n; i++ {
		p0, p1 := pl.Points[i], pl.Points[(i+1)%n]
		f := p0.PerpDot(p1)
		c = c.Add(p0.Add(p1).Mul(f))
	}
	return c, pl.SignedArea()
}

func (pl Polyline) average() Point {
	if len(pl.Points) == 0 {
		return Point{}
	}
	c := Point{}
	for _, q := range pl.Points {
		c = c.Add(q)
	}
	return c.Div(float64(len(pl.Points)))
}

// Nearest returns the closest point on the polyline to test and its distance.
func (pl Polyline) Nearest(test Point) (Point, float64) {
	if len(pl.Points) == 0 {
		return Point{}, math.Inf(1)
	} else if len(pl.Points) == 1 {
		return pl.Points[0], Distance(test, pl.Points[0])
	}
	best, bestDist := Point{}, math.Inf(1)
	pl.edges(func(a, b Point) {
		if d, q := distanceToSegment(test, a, b); d < bestDist {
			best, bestDist = q, d
		}
	})
	return best, bestDist
}

// ToPath converts the polyline to a path without handles.
func (pl Polyline) ToPath() *Path {
	return FromPolygon(pl.Closed, pl.Points...)
}

// Smoothen returns a contour of cubic Béziers through all points with continuous curvature. Closed polylines are smooth between the last and first points too.
func (pl Polyline) Smoothen() Subpath {
	K := pl.Points
	if pl.Closed && 2 < len(K) {
		K = append(append([]Point{}, K...), K[0])
	}
	if len(K) < 2 {
		return pl.ToPath().Subpath
	} else if len(K) == 2 {
		// a straight line
		return FromPolygon(false, K...).Subpath
	}

	var p1, p2 []Point
	n := len(K) - 1
	if pl.Closed && 2 < n {
		// see http://www.jacos.nl/jacos_html/spline/circular/index.html
		p1 = make([]Point, n+1)
		p2 = make([]Point, n)

		a := make([]float64, n)
		b := make([]float64, n)
		c := make([]float64, n)
		d := make([]Point, n)
		for i := 0; i < n; i++ {
			a[i] = 1.0
			b[i] = 4.0
			c[i] = 1.0
			d[i] = K[i].Mul(4.0).Add(K[i+1].Mul(2.0))
		}

		lc := make([]float64, n)
		lc[0] = a[0]
		lr := c[n-1]
		for i := 0; i < n-3; i++ {
			m := a[i+1] / b[i]
			b[i+1] -= m * c[i]
			d[i+1] = d[i+1].Sub(d[i].Mul(m))
			lc[i+1] = -m * lc[i]
			m = lr / b[i]
			b[n-1] -= m * lc[i]
			lr = -m * c[i]
			d[n-1] = d[n-1].Sub(d[i].Mul(m))
		}

		i := n - 3
		m := a[i+1] / b[i]
		b[i+1] -= m * c[i]
		d[i+1] = d[i+1].Sub(d[i].Mul(m))
		c[i+1] -= m * lc[i]
		m = lr / b[i]
		b[n-1] -= m * lc[i]
		a[n-1] -= m * c[i]
		d[n-1] = d[n-1].Sub(d[i].Mul(m))

		i = n - 2
		m = a[i+1] / b[i]
		b[i+1] -= m * c[i]
		d[i+1] = d[i+1].Sub(d[i].Mul(m))

		p1[n-1] = d[n-1].Div(b[n-1])
		lc[n-2] = 0.0
		for i := n - 2; 0 <= i; i-- {
			p1[i] = d[i].Sub(p1[i+1].Mul(c[i])).Sub(p1[n-1].Mul(lc[i])).Div(b[i])
		}
		p1[n] = p1[0]
		for i := 0; i < n; i++ {
			p2[i] = K[i+1].Mul(2.0).Sub(p1[i+1])
		}
	} else {
		// see https://www.particleincell.com/2012/bezier-splines/
		p1 = make([]Point, n)
		p2 = make([]Point, n)

		a := make([]float64, n)
		b := make([]float64, n)
		c := make([]float64, n)
		d := make([]Point, n)
		b[0] = 2.0
		c[0] = 1.0
		d[0] = K[0].Add(K[1].Mul(2.0))
		for i := 1; i < n-1; i++ {
			a[i] = 1.0
			b[i] = 4.0
			c[i] = 1.0
			d[i] = K[i].Mul(4.0).Add(K[i+1].Mul(2.0))
		}
		a[n-1] = 2.0
		b[n-1] = 7.0
		d[n-1] = K[n].Add(K[n-1].Mul(8.0))

		// solve with tridiagonal matrix algorithm
		for i := 1; i < n; i++ {
			w := a[i] / b[i-1]
			b[i] -= w * c[i-1]
			d[i] = d[i].Sub(d[i-1].Mul(w))
		}

		p1[n-1] = d[n-1].Div(b[n-1])
		for i := n - 2; 0 <= i; i-- {
			p1[i] = d[i].Sub(p1[i+1].Mul(c[i])).Div(b[i])
		}
		for i := 0; i < n-1; i++ {
			p2[i] = K[i+1].Mul(2.0).Sub(p1[i+1])
		}
		p2[n-1] = K[n].Add(p1[n-1]).Mul(0.5)
	}

	cs := Commands{MoveTo(K[0].X, K[0].Y)}
	for i := 0; i < n; i++ {
		cs = append(cs, CubeTo(p1[i].X, p1[i].Y, p2[i].X, p2[i].Y, K[i+1].X, K[i+1].Y))
	}
	if pl.Closed {
		cs = append(cs, Close())
	}
	return cs.ToPath().Subpath
}
