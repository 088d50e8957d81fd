package vecpath

import (
	"fmt"
	"math"

	"github.com/ByteArena/poly2tri-go"
)

// Triangle is a triangle of a tessellated path.
type Triangle [3]Point

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	a := t[1].Sub(t[0]).PerpDot(t[2].Sub(t[0])) / 2.0
	if a < 0.0 {
		return -a
	}
	return a
}

// Triangulate tessellates the filled area of the path into triangles using a constrained Delaunay triangulation. Contours are flattened within Tolerance, contours nested at an odd depth are holes of their directly enclosing contour. Contours must not intersect each other or themselves, an ErrDegenerateGeometry is returned when the triangulation fails.
func (p *Path) Triangulate() ([]Triangle, error) {
	var rings []Polyline
	for _, pl := range p.polylines(Tolerance) {
		pl = pl.dedup()
		if 3 <= len(pl.Points) && !equal(pl.SignedArea(), 0.0) {
			rings = append(rings, pl)
		}
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("%w: path has no area", ErrDegenerateGeometry)
	}

	// parent is the smallest ring enclosing each ring, depth its nesting level
	parent := make([]int, len(rings))
	depth := make([]int, len(rings))
	for i, ring := range rings {
		parent[i] = -1
		for j, other := range rings {
			if i != j && other.encloses(ring) {
				depth[i]++
				if parent[i] == -1 || math.Abs(other.SignedArea()) < math.Abs(rings[parent[i]].SignedArea()) {
					parent[i] = j
				}
			}
		}
	}

	var tris []Triangle
	for i, ring := range rings {
		if depth[i]%2 == 1 {
			continue
		}
		var holes []Polyline
		for j := range rings {
			if parent[j] == i && depth[j]%2 == 1 {
				holes = append(holes, rings[j])
			}
		}
		ts, err := triangulateRing(ring, holes)
		if err != nil {
			return nil, err
		}
		tris = append(tris, ts...)
	}
	return tris, nil
}

func triangulateRing(ring Polyline, holes []Polyline) (tris []Triangle, err error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("triangulation failed", "err", r)
			tris, err = nil, fmt.Errorf("%w: triangulation failed: %v", ErrDegenerateGeometry, r)
		}
	}()

	toContour := func(pl Polyline) []*poly2tri.Point {
		contour := make([]*poly2tri.Point, 0, len(pl.Points))
		for _, q := range pl.Points {
			contour = append(contour, poly2tri.NewPoint(q.X, q.Y))
		}
		return contour
	}

	swctx := poly2tri.NewSweepContext(toContour(ring), false)
	for _, hole := range holes {
		swctx.AddHole(toContour(hole))
	}
	swctx.Triangulate()

	for _, tr := range swctx.GetTriangles() {
		p0 := Point{tr.Points[0].X, tr.Points[0].Y}
		p1 := Point{tr.Points[1].X, tr.Points[1].Y}
		p2 := Point{tr.Points[2].X, tr.Points[2].Y}
		tris = append(tris, Triangle{p0, p1, p2})
	}
	return tris, nil
}

// dedup returns the polyline without consecutive coinciding points.
func (pl Polyline) dedup() Polyline {
	out := Polyline{Closed: pl.Closed}
	for _, q := range pl.Points {
		if len(out.Points) == 0 || !out.Points[len(out.Points)-1].Equals(q) {
			out.Points = append(out.Points, q)
		}
	}
	if 1 < len(out.Points) && out.Points[0].Equals(out.Points[len(out.Points)-1]) {
		out.Points = out.Points[:len(out.Points)-1]
	}
	return out
}

// encloses returns true if the other polyline lies inside this one, tested at a point of the other that is not on this polyline.
func (pl Polyline) encloses(other Polyline) bool {
	for _, q := range other.Points {
		if _, d := pl.Nearest(q); Epsilon < d {
			return pl.Winding(q) != 0
		}
	}
	return false
}
