package vecpath

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func trianglesArea(tris []Triangle) float64 {
	a := 0.0
	for _, tri := range tris {
		a += tri.Area()
	}
	return a
}

func TestTriangleArea(t *testing.T) {
	test.Float(t, Triangle{{0.0, 0.0}, {4.0, 0.0}, {0.0, 3.0}}.Area(), 6.0)
	test.Float(t, Triangle{{0.0, 0.0}, {0.0, 3.0}, {4.0, 0.0}}.Area(), 6.0)
	test.Float(t, Triangle{{0.0, 0.0}, {1.0, 1.0}, {2.0, 2.0}}.Area(), 0.0)
}

func TestPathTriangulate(t *testing.T) {
	tests := []struct {
		p    string
		n    int
		area float64
	}{
		{"M0 0 L10 0 L10 10 L0 10 Z", 2, 100.0},
		{"M0 0 L10 0 L10 10 L0 10", 2, 100.0},
		{"M0 0 L0 10 L10 10 L10 0 Z", 2, 100.0},
		{"M0 0 L4 0 L4 2 L2 2 L2 4 L0 4 Z", 4, 12.0},
		{"M0 0 L10 0 L10 10 L0 10 Z M3 3 L3 7 L7 7 L7 3 Z", 8, 84.0},
		{"M0 0 L10 0 L10 10 L0 10 Z M2 2 L2 8 L8 8 L8 2 Z M4 4 L6 4 L6 6 L4 6 Z", 10, 68.0},
		{"M0 0 L10 0 L10 10 L0 10 Z M20 0 L30 0 L30 10 Z", 3, 150.0},
	}
	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			tris, err := MustParsePath(tt.p).Triangulate()
			test.Error(t, err)
			test.T(t, len(tris), tt.n)
			test.FloatDiff(t, trianglesArea(tris), tt.area, 1e-9)
		})
	}
}

func TestPathTriangulateHole(t *testing.T) {
	donut := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z M3 3 L3 7 L7 7 L7 3 Z")
	tris, err := donut.Triangulate()
	test.Error(t, err)
	for _, tri := range tris {
		c := tri[0].Add(tri[1]).Add(tri[2]).Div(3.0)
		test.That(t, !(3.0 < c.X && c.X < 7.0 && 3.0 < c.Y && c.Y < 7.0), tri)
	}
}

func TestPathTriangulateCurve(t *testing.T) {
	circle, err := ShapePath(EllipseShape{Rx: 5.0, Ry: 5.0})
	test.Error(t, err)
	tris, err := circle.Triangulate()
	test.Error(t, err)
	test.That(t, 4 < len(tris))
	test.FloatDiff(t, trianglesArea(tris), 25.0*math.Pi, 1e-2)
}

func TestPathTriangulateErrors(t *testing.T) {
	for _, s := range []string{"M0 0 L10 0", "M0 0 L10 0 L20 0 Z", "M5 5"} {
		_, err := MustParsePath(s).Triangulate()
		test.That(t, errors.Is(err, ErrDegenerateGeometry), s, err)
	}
	_, err := NewPath(nil, false).Triangulate()
	test.That(t, errors.Is(err, ErrDegenerateGeometry), err)
}
