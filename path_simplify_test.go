package vecpath

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathSimplify(t *testing.T) {
	tests := []struct {
		p         string
		tolerance float64
		r         string
	}{
		{"M0 0 L1 0 L2 0 L3 0 L4 0", 0.01, "M0 0 L4 0"},
		{"M0 0 L1 0.005 L2 0 L3 -0.005 L4 0", 0.01, "M0 0 L4 0"},
		{"M0 0 L1 0.5 L2 0", 0.1, "M0 0 L1 0.5 L2 0"},
		{"M0 0 L5 0 L10 0 L10 10 L0 10 Z", 0.1, "M0 0 L10 0 L10 10 L0 10 Z"},
		{"M0 0 L10 0 L10 5 L10 10 L0 10 L0 5 Z", 0.1, "M0 0 L10 0 L10 10 L0 10 Z"},
		{"M0 0 C0 10 10 10 10 0", 0.1, "M0 0 C0 10 10 10 10 0"},
		{"M0 0 L5 0 C5 5 10 5 10 0", 0.1, "M0 0 L5 0 C5 5 10 5 10 0"},
		{"M0 0 C1 0.01 2 0.01 3 0 L6 0", 0.1, "M0 0 L6 0"},
		{"M0 0 L10 0 L10 10 Z M2 2 L2 2.001 L2 8 L8 8 Z", 0.1, "M0 0 L10 0 L10 10 Z M2 2 L2 8 L8 8 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			q, err := MustParsePath(tt.p).Simplify(tt.tolerance)
			test.Error(t, err)
			test.T(t, q, MustParsePath(tt.r))
		})
	}
}

func TestPathSimplifyBounded(t *testing.T) {
	p := MustParsePath("M0 0 L1 0.3 L2 -0.2 L3 0.4 L4 0 L5 5 L6 0.1 L7 0 L8 -0.3 L9 0.2 L10 0")
	for _, tolerance := range []float64{0.1, 0.35, 0.5, 1.0, 10.0} {
		q, err := p.Simplify(tolerance)
		test.Error(t, err)
		test.That(t, q.Len() <= p.Len(), "anchor count must not increase")
		test.That(t, 2 <= q.Len())
		for _, a := range p.Points {
			_, d := q.Nearest(a.Pos())
			test.That(t, d <= tolerance+Epsilon, "anchor", a.Pos(), "deviates", d, "at tolerance", tolerance)
		}

		// a larger tolerance never keeps more anchors
		r, err := p.Simplify(2.0 * tolerance)
		test.Error(t, err)
		test.That(t, r.Len() <= q.Len())
	}
}

func TestPathSimplifyErrors(t *testing.T) {
	_, err := MustParsePath("M0 0 L1 1").Simplify(0.0)
	test.That(t, errors.Is(err, ErrInvalidArgument), err)
	_, err = MustParsePath("M0 0").Simplify(1.0)
	test.That(t, errors.Is(err, ErrInsufficientInput), err)
	_, err = MustParsePath("M0 0 L1 1 Z").Simplify(1.0)
	test.That(t, errors.Is(err, ErrInsufficientInput), err)
	_, err = MustParsePath("M0 0 L1 1").SimplifyVisvalingamWhyatt(-1.0)
	test.That(t, errors.Is(err, ErrInvalidArgument), err)
}

func TestPathSimplifyVisvalingamWhyatt(t *testing.T) {
	tests := []struct {
		p         string
		tolerance float64
		r         string
	}{
		// closed path
		{"M0 0L10 0L10 4L11 5L10 6L10 10L0 10z", 1.0, "M0 0L10 0L10 4L11 5L10 6L10 10L0 10z"},
		{"M0 0L10 0L10 4L11 5L10 6L10 10L0 10z", 2.0, "M0 0L10 0L10 10L0 10z"},
		{"M0 0L10 0L10 4L11 5L10 6L10 10L0 10z", 50.0, "M0 0L10 0L10 10L0 10z"},
		{"M0 0L10 0L10 4L11 5L10 6L10 10L0 10z", 51.0, ""},

		// open path
		{"M0 0L10 0L11 1L12 0L13 -5L14 0", 1.0, "M0 0L10 0L11 1L12 0L13 -5L14 0"},
		{"M0 0L10 0L11 1L12 0L13 -5L14 0", 2.0, "M0 0L12 0L13 -5L14 0"},
		{"M0 0L10 0L11 1L12 0L13 -5L14 0", 6.0, "M0 0L14 0"},

		// collapsing contours are dropped
		{"M0 0L1 1L2 0zM2 0L4 2L4 0zM4 0L5 1L6 0z", 2.0, "M2 0L4 2L4 0z"},
		{"M0 0L10 0", 1.0, "M0 0L10 0"},
	}
	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			q, err := MustParsePath(tt.p).SimplifyVisvalingamWhyatt(tt.tolerance)
			test.Error(t, err)
			r := &Path{}
			if tt.r != "" {
				r = MustParsePath(tt.r)
			}
			test.T(t, q, r)
		})
	}
}

func TestPathFlatten(t *testing.T) {
	p := MustParsePath("M0 0 C0 10 10 10 10 0 L10 -5 Z")
	test.String(t, p.Flatten(2).String(), "M0 0 L5 7.5 L10 0 L10 -5 Z")
	test.String(t, p.Flatten(1).String(), "M0 0 L10 0 L10 -5 Z")
	test.String(t, p.Flatten(0).String(), "M0 0 L10 0 L10 -5 Z")

	q := p.FlattenAdaptive(0.01)
	test.That(t, 8 < q.Len(), q.Len())
	for _, a := range q.Points {
		test.That(t, !a.HasHandles())
		test.That(t, p.Near(a.Pos(), 0.02), "flattened anchor off the curve", a.Pos())
	}
	test.FloatDiff(t, q.Area(), p.Area(), 2e-3)
	test.T(t, p.FlattenAdaptive(0.0).Len(), p.FlattenAdaptive(Tolerance).Len())
}

func TestPathGridsnap(t *testing.T) {
	p := MustParsePath("M0.4 0.6 L9.7 0.2 C9.8 3.3 7.1 5.9 4.9 6.2")
	test.String(t, p.Gridsnap(1.0).String(), "M0 1 L10 0 C10 3 7 6 5 6")
	test.String(t, p.Gridsnap(0.5).String(), "M0.5 0.5 L9.5 0 C10 3.5 7 6 5 6")
	test.String(t, p.Gridsnap(0.0).String(), p.String())
}
