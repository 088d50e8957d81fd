package vecpath

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestRoundCorner(t *testing.T) {
	tests := []struct {
		prev, corner, next Point
		radius             float64
		r                  string
	}{
		{Point{0.0, 0.0}, Point{10.0, 0.0}, Point{10.0, 10.0}, 2.0, "L8 0 C9.105 0 10 0.895 10 2"},
		{Point{0.0, 0.0}, Point{10.0, 0.0}, Point{10.0, 10.0}, 0.0, "L10 0"},
		{Point{0.0, 0.0}, Point{10.0, 0.0}, Point{20.0, 0.0}, 2.0, "L10 0"},
		{Point{0.0, 0.0}, Point{10.0, 0.0}, Point{10.0, 0.0}, 2.0, "L10 0"},
		{Point{0.0, 0.0}, Point{2.0, 0.0}, Point{2.0, 10.0}, 5.0, "L1 0 C1.552 0 2 0.448 2 1"},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			cs := RoundCorner(tt.prev, tt.corner, tt.next, tt.radius)
			test.String(t, cs.String(), tt.r)
		})
	}

	// fillet of an acute corner is tangent to both lines and runs through the arc midpoint
	cs := RoundCorner(Point{10.0, 0.0}, Point{0.0, 0.0}, Point{10.0, 10.0}, 1.0)
	test.T(t, len(cs), 2)
	b := Bezier{{cs[0].X, cs[0].Y}, {cs[1].X1, cs[1].Y1}, {cs[1].X2, cs[1].Y2}, cs[1].End()}
	test.Float(t, b[0].Sub(b[1]).PerpDot(Point{1.0, 0.0}), 0.0)
	center := b[0].Add(Point{0.0, 1.0})
	test.FloatDiff(t, Distance(center, b.Point(0.5)), 1.0, 1e-3)
	test.FloatDiff(t, Distance(center, b[3]), 1.0, 1e-9)
}

func TestPathRoundCorners(t *testing.T) {
	tests := []struct {
		p     string
		radii []float64
		r     string
	}{
		{"M0 0 L10 0 L10 10", []float64{5.0, 5.0, 5.0}, "M0 0 L5 0 C7.761 0 10 2.239 10 5 L10 10"},
		{"M0 0 L10 0 L10 10 L0 10 Z", []float64{0.0, 0.0, 0.0, 0.0}, "M0 0 L10 0 L10 10 L0 10 Z"},
		{"M0 0 L10 0 L10 10 L0 10 Z", nil, "M0 0 L10 0 L10 10 L0 10 Z"},
		{"M0 0 L10 0 L10 10 L0 10 Z", []float64{0.0, 1.0}, "M0 0 L9 0 C9.552 0 10 0.448 10 1 L10 10 L0 10 Z"},
		{"M0 0 L10 0 L10 10 L0 10 Z", []float64{1.0}, "M0 1 C0 0.448 0.448 0 1 0 L10 0 L10 10 L0 10 Z"},
		{"M0 0 C0 5 5 10 10 10 L10 0 Z", []float64{1.0, 1.0, 1.0}, "M0 0 C0 5 5 10 10 10 L10 1 C10 0.448 9.552 0 9 0 Z"},
		{"M0 0 L10 0 L10 10 Z M20 0 L30 0 L30 10 Z", []float64{0.0, 0.0, 0.0, 0.0, 1.0}, "M0 0 L10 0 L10 10 Z M20 0 L29 0 C29.552 0 30 0.448 30 1 L30 10 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			q, err := MustParsePath(tt.p).RoundCorners(tt.radii)
			test.Error(t, err)
			test.String(t, q.String(), tt.r)
		})
	}
}

func TestPathRoundCornersZeroRadius(t *testing.T) {
	for _, s := range []string{"M0 0 L10 0 L10 10 L0 10 Z", "M0 0 C0 5 5 10 10 10 L10 0 Z", "M0 0 L3 4 L8 -1 L10 10"} {
		p := MustParsePath(s)
		q, err := p.RoundCorners(make([]float64, p.Len()))
		test.Error(t, err)
		test.T(t, q, p)
	}
}

func TestPathRoundCornersArea(t *testing.T) {
	p := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	q, err := p.RoundCorners([]float64{2.0, 2.0, 2.0, 2.0})
	test.Error(t, err)
	test.T(t, q.Len(), 8)
	test.T(t, q.Bounds(), Rect{0.0, 0.0, 10.0, 10.0})
	test.FloatDiff(t, q.Area(), 100.0-4.0*(4.0-math.Pi), 1e-4)
}

func TestPathApplyCornerRadii(t *testing.T) {
	p := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	p, err := p.SetCornerRadius(1, 1.0)
	test.Error(t, err)
	q, err := p.ApplyCornerRadii()
	test.Error(t, err)
	test.String(t, q.String(), "M0 0 L9 0 C9.552 0 10 0.448 10 1 L10 10 L0 10 Z")
	for _, a := range q.Points {
		test.Float(t, a.CornerRadius, 0.0)
	}
}

func TestPathRoundCornersErrors(t *testing.T) {
	p := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	_, err := p.RoundCorners([]float64{1.0, -1.0})
	test.That(t, errors.Is(err, ErrInvalidArgument), err)
	_, err = p.RoundCorners([]float64{math.NaN()})
	test.That(t, errors.Is(err, ErrInvalidArgument), err)
	_, err = MustParsePath("M0 0 L10 0").RoundCorners([]float64{1.0, 1.0})
	test.That(t, errors.Is(err, ErrInsufficientInput), err)
}
