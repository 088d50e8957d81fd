package vecpath

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathBounds(t *testing.T) {
	tests := []struct {
		p      string
		bounds Rect
		fast   Rect
	}{
		{"M0 0 L10 0 L10 10 L0 10 Z", Rect{0.0, 0.0, 10.0, 10.0}, Rect{0.0, 0.0, 10.0, 10.0}},
		{"M0 0 C0 10 10 10 10 0", Rect{0.0, 0.0, 10.0, 7.5}, Rect{0.0, 0.0, 10.0, 10.0}},
		{"M0 0 L5 5 M-2 3 L1 1", Rect{-2.0, 0.0, 7.0, 5.0}, Rect{-2.0, 0.0, 7.0, 5.0}},
	}
	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			p := MustParsePath(tt.p)
			test.T(t, p.Bounds(), tt.bounds)
			test.T(t, p.FastBounds(), tt.fast)
		})
	}

	circle, err := ShapePath(EllipseShape{Rx: 5.0, Ry: 5.0})
	test.Error(t, err)
	r := circle.Bounds()
	test.Float(t, r.X, -5.0)
	test.Float(t, r.Y, -5.0)
	test.Float(t, r.W, 10.0)
	test.Float(t, r.H, 10.0)
}

func TestPathLengthArea(t *testing.T) {
	square := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	test.Float(t, square.Length(), 40.0)
	test.Float(t, square.SignedArea(), 100.0)
	test.Float(t, square.Area(), 100.0)
	test.That(t, square.CCW())
	test.Float(t, square.Reverse().SignedArea(), -100.0)
	test.Float(t, square.Reverse().Area(), 100.0)

	line := MustParsePath("M0 0 L10 0 L10 10")
	test.Float(t, line.Length(), 20.0)
	test.Float(t, line.Area(), 50.0)

	circle, err := ShapePath(EllipseShape{Rx: 5.0, Ry: 5.0})
	test.Error(t, err)
	test.FloatDiff(t, circle.Length(), 10.0*math.Pi, 1e-3)
	test.FloatDiff(t, circle.Area(), 25.0*math.Pi, 1e-3)

	donut := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z M3 3 L3 7 L7 7 L7 3 Z")
	test.Float(t, donut.Length(), 56.0)
	test.Float(t, donut.Area(), 84.0)

	test.Float(t, (&Path{}).Length(), 0.0)
	test.Float(t, (&Path{}).Area(), 0.0)
}

func TestPathContains(t *testing.T) {
	hole := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z M3 3 L3 7 L7 7 L7 3 Z")
	same := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z M3 3 L7 3 L7 7 L3 7 Z")

	test.T(t, hole.Winding(Point{5.0, 5.0}), 0)
	test.T(t, same.Winding(Point{5.0, 5.0}), 2)
	test.T(t, hole.Winding(Point{1.0, 1.0}), 1)
	test.T(t, hole.Winding(Point{11.0, 5.0}), 0)

	tests := []struct {
		p        *Path
		rule     FillRule
		test     Point
		contains bool
	}{
		{hole, NonZero, Point{5.0, 5.0}, false},
		{hole, EvenOdd, Point{5.0, 5.0}, false},
		{same, NonZero, Point{5.0, 5.0}, true},
		{same, EvenOdd, Point{5.0, 5.0}, false},
		{same, NonZero, Point{1.0, 5.0}, true},
		{same, EvenOdd, Point{1.0, 5.0}, true},
		{same, EvenOdd, Point{-1.0, 5.0}, false},
	}
	for _, tt := range tests {
		p := tt.p.Clone()
		p.Fill.Rule = tt.rule
		test.T(t, p.Contains(tt.test), tt.contains, tt.rule, tt.test)
	}
}

func TestPathNearest(t *testing.T) {
	square := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	q, d := square.Nearest(Point{5.0, -2.0})
	test.T(t, q, Point{5.0, 0.0})
	test.Float(t, d, 2.0)
	q, d = square.Nearest(Point{5.0, 4.0})
	test.T(t, q, Point{5.0, 0.0})
	test.Float(t, d, 4.0)
	q, d = square.Nearest(Point{-3.0, 14.0})
	test.T(t, q, Point{0.0, 10.0})
	test.Float(t, d, 5.0)

	test.That(t, square.Near(Point{5.0, -2.0}, 2.0))
	test.That(t, !square.Near(Point{5.0, -2.0}, 1.9))
	test.That(t, square.Near(Point{0.0, 5.0}, 0.0))

	circle, err := ShapePath(EllipseShape{Rx: 5.0, Ry: 5.0})
	test.Error(t, err)
	_, d = circle.Nearest(Point{0.0, 0.0})
	test.FloatDiff(t, d, 5.0, 5e-3)

	_, d = (&Path{}).Nearest(Point{0.0, 0.0})
	test.That(t, math.IsInf(d, 1))
}

func TestPathCentroid(t *testing.T) {
	tests := []struct {
		p        string
		centroid Point
	}{
		{"M0 0 L10 0 L10 10 L0 10 Z", Point{5.0, 5.0}},
		{"M0 0 L4 0 L4 2 L2 2 L2 4 L0 4 Z", Point{5.0 / 3.0, 5.0 / 3.0}},
		{"M0 0 L10 0 L10 10 L0 10 Z M3 3 L3 7 L7 7 L7 3 Z", Point{5.0, 5.0}},
		{"M0 0 L6 0 L0 6 Z", Point{2.0, 2.0}},
		{"M0 0 L10 0", Point{5.0, 0.0}},
	}
	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			c := MustParsePath(tt.p).Centroid()
			test.Float(t, c.X, tt.centroid.X)
			test.Float(t, c.Y, tt.centroid.Y)
		})
	}

	circle, err := ShapePath(EllipseShape{Cx: 2.0, Cy: -3.0, Rx: 5.0, Ry: 2.0})
	test.Error(t, err)
	c := circle.Centroid()
	test.FloatDiff(t, c.X, 2.0, 1e-6)
	test.FloatDiff(t, c.Y, -3.0, 1e-6)
}
