package vecpath

import (
	"math"
)

// Bounds returns the exact bounding box of the path, taking the extrema of curved segments into account.
func (p *Path) Bounds() Rect {
	first := true
	var r Rect
	add := func(q Rect) {
		if first {
			r, first = q, false
		} else {
			r = r.Add(q)
		}
	}
	for _, sp := range p.Subpaths() {
		for _, a := range sp.Points {
			add(Rect{a.X, a.Y, 0.0, 0.0})
		}
		for _, b := range sp.segments() {
			if !b.Straight() {
				add(cubicBezierBounds(b[0], b[1], b[2], b[3]))
			}
		}
	}
	return r
}

// FastBounds returns a bounding box containing the anchors and handles. It is cheaper than Bounds but may be larger.
func (p *Path) FastBounds() Rect {
	first := true
	var r Rect
	for _, sp := range p.Subpaths() {
		for _, a := range sp.Points {
			for _, q := range []Point{a.Pos(), a.InPos(), a.OutPos()} {
				if first {
					r, first = Rect{q.X, q.Y, 0.0, 0.0}, false
				} else {
					r = r.AddPoint(q)
				}
			}
		}
	}
	return r
}

// Length returns the arc length of all contours, curved segments are subdivided until their chord and control polygon agree within Tolerance.
func (p *Path) Length() float64 {
	d := 0.0
	for _, sp := range p.Subpaths() {
		d += sp.Length()
	}
	return d
}

// Length returns the arc length of the contour.
func (sp Subpath) Length() float64 {
	d := 0.0
	for _, b := range sp.segments() {
		if b.Straight() {
			d += Distance(b[0], b[3])
		} else {
			d += cubicBezierLength(b[0], b[1], b[2], b[3], Tolerance)
		}
	}
	return d
}

// SignedArea returns the exact signed area of the contour, implicitly closing open contours. It is positive for counter clockwise contours in a y-up coordinate system.
func (sp Subpath) SignedArea() float64 {
	n := len(sp.Points)
	if n < 2 {
		return 0.0
	}
	a := 0.0
	for _, b := range sp.segments() {
		if b.Straight() {
			a += lineArea(b[0], b[3])
		} else {
			a += cubicBezierArea(b[0], b[1], b[2], b[3])
		}
	}
	if !sp.Closed {
		a += lineArea(sp.Points[n-1].Pos(), sp.Points[0].Pos())
	}
	return a
}

// CCW returns true if the contour runs counter clockwise in a y-up coordinate system, which is clockwise on a y-down screen.
func (sp Subpath) CCW() bool {
	return 0.0 <= sp.SignedArea()
}

// SignedArea returns the sum of the signed areas of all contours.
func (p *Path) SignedArea() float64 {
	a := 0.0
	for _, sp := range p.Subpaths() {
		a += sp.SignedArea()
	}
	return a
}

// Area returns the net area of the path, i.e. the magnitude of the summed signed areas of all contours. Holes must run opposite to their outer contour to be subtracted.
func (p *Path) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Winding returns the winding number of the path around the test point, with open contours implicitly closed.
func (p *Path) Winding(test Point) int {
	winding := 0
	for _, pl := range p.polylines(Tolerance) {
		winding += pl.Winding(test)
	}
	return winding
}

// Contains returns true if the test point is filled by the path according to its fill rule.
func (p *Path) Contains(test Point) bool {
	return p.Fill.Rule.Fills(p.Winding(test))
}

// Nearest returns the closest point on the path outline to test and its distance. An empty path returns an infinite distance.
func (p *Path) Nearest(test Point) (Point, float64) {
	best, bestDist := Point{}, math.Inf(1)
	for _, pl := range p.polylines(Tolerance) {
		if q, d := pl.Nearest(test); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best, bestDist
}

// Near returns true if the test point lies within tolerance of the path outline.
func (p *Path) Near(test Point, tolerance float64) bool {
	_, d := p.Nearest(test)
	return d <= tolerance
}

// Centroid returns the area centroid of the path, where contours running opposite to the outer contour subtract. A path without area returns the average of its anchors.
func (p *Path) Centroid() Point {
	c, a := Point{}, 0.0
	var all Polyline
	for _, pl := range p.polylines(Tolerance) {
		m, area := pl.centroidMoment()
		c, a = c.Add(m), a+area
		all.Points = append(all.Points, pl.Points...)
	}
	if equal(a, 0.0) {
		return all.average()
	}
	return c.Div(6.0 * a)
}
