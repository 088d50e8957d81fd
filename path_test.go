package vecpath

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())
	test.T(t, p.Len(), 0)
	test.T(t, len(p.Subpaths()), 1)
	test.String(t, p.String(), "")

	p = MustParsePath("M10 10")
	test.That(t, !p.Empty())
	test.T(t, p.Len(), 1)
}

func TestPathEquals(t *testing.T) {
	test.That(t, MustParsePath("M0 0 L10 0 L10 10 Z").Equals(MustParsePath("M0 0 L10 0 L10 10 L0 0 Z")))
	test.That(t, !MustParsePath("M0 0 L10 0 L10 10 Z").Equals(MustParsePath("M0 0 L10 0 L10 10")))
	test.That(t, !MustParsePath("M0 0 L10 0 L10 10 Z").Equals(MustParsePath("M0 0 L10 0 L10 10 Z M1 1 L2 2")))
}

func TestCommandsToPath(t *testing.T) {
	p := MustParsePath("M0 0 C0 10 10 10 10 0 L10 -5")
	test.T(t, p.Len(), 3)
	test.That(t, !p.Closed)
	test.T(t, *p.Points[0].Out, Point{0.0, 10.0})
	test.That(t, p.Points[0].In == nil)
	test.T(t, *p.Points[1].In, Point{0.0, 10.0})
	test.That(t, p.Points[1].Out == nil)
	test.That(t, !p.Points[2].HasHandles())

	// closing anchor is folded into the first one
	p = MustParsePath("M0 0 C0 10 10 10 10 0 C10 -10 0 -10 0 0 Z")
	test.T(t, p.Len(), 2)
	test.That(t, p.Closed)
	test.T(t, *p.Points[0].In, Point{0.0, -10.0})
	test.T(t, p.Points[0].Kind, Symmetric)
	test.T(t, p.Points[1].Kind, Symmetric)

	// compound paths
	p = MustParsePath("M0 0 L10 0 L10 10 Z M2 2 L2 8 L8 8 Z M20 20 L30 30")
	test.T(t, len(p.Subpaths()), 3)
	test.T(t, p.Len(), 8)
	test.That(t, p.Compound[0].Closed)
	test.That(t, !p.Compound[1].Closed)
	test.T(t, p.Fill, DefaultFill)
	test.That(t, p.Transform.IsIdentity())
}

func TestFromPoints(t *testing.T) {
	points := []Anchor{
		Pt(0.0, 0.0),
		{X: 10.0, Y: 0.0, In: handle(-5.0, 0.0), Out: handle(5.0, 0.0)},
		Pt(10.0, 10.0),
	}
	test.String(t, FromPoints(points, false).String(), "M0 0 C0 0 5 0 10 0 C15 0 10 10 10 10")
	test.String(t, FromPoints(points, true).String(), "M0 0 C0 0 5 0 10 0 C15 0 10 10 10 10 Z")

	points[0].In = handle(0.0, 5.0)
	test.String(t, FromPoints(points, true).String(), "M0 0 C0 0 5 0 10 0 C15 0 10 10 10 10 C10 10 0 5 0 0 Z")
	test.String(t, FromPoints(points, false).String(), "M0 0 C0 0 5 0 10 0 C15 0 10 10 10 10")
	test.T(t, len(FromPoints(nil, true)), 0)
	test.String(t, FromPoints([]Anchor{Pt(1.0, 1.0)}, true).String(), "M1 1 Z")
}

func TestPathEditing(t *testing.T) {
	p := MustParsePath("M0 0 L10 0 L10 10 Z")
	orig := p.String()

	tests := []struct {
		name string
		f    func() (*Path, error)
		r    string
	}{
		{"AddPoint", func() (*Path, error) { return p.AddPoint(3, Pt(0.0, 10.0)) }, "M0 0 L10 0 L10 10 L0 10 Z"},
		{"AddPointFront", func() (*Path, error) { return p.AddPoint(0, Pt(-5.0, 0.0)) }, "M-5 0 L0 0 L10 0 L10 10 Z"},
		{"RemovePoint", func() (*Path, error) { return p.RemovePoint(1) }, "M0 0 L10 10 Z"},
		{"MovePoint", func() (*Path, error) { return p.MovePoint(2, 20.0, 20.0) }, "M0 0 L10 0 L20 20 Z"},
		{"SetHandles", func() (*Path, error) { return p.SetHandles(1, handle(-5.0, 0.0), handle(5.0, 0.0)) }, "M0 0 C0 0 5 0 10 0 C15 0 10 10 10 10 Z"},
		{"SetHandlesNil", func() (*Path, error) { return p.SetHandles(1, nil, nil) }, "M0 0 L10 0 L10 10 Z"},
		{"SetKind", func() (*Path, error) { return p.SetKind(1, Corner) }, "M0 0 L10 0 L10 10 Z"},
		{"SetCornerRadius", func() (*Path, error) { return p.SetCornerRadius(1, 2.0) }, "M0 0 L10 0 L10 10 Z"},
		{"SetClosed", func() (*Path, error) { return p.SetClosed(false), nil }, "M0 0 L10 0 L10 10"},
		{"Reverse", func() (*Path, error) { return p.Reverse(), nil }, "M0 0 L10 10 L10 0 Z"},
		{"Translate", func() (*Path, error) { return p.Translate(1.0, -1.0), nil }, "M1 -1 L11 -1 L11 9 Z"},
		{"Transformed", func() (*Path, error) { return p.Transformed(Identity.Scale(2.0, 0.5)), nil }, "M0 0 L20 0 L20 5 Z"},
		{"Append", func() (*Path, error) { return p.Append(MustParsePath("M1 1 L2 2")), nil }, "M0 0 L10 0 L10 10 Z M1 1 L2 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := tt.f()
			test.Error(t, err)
			test.String(t, q.String(), tt.r)
			test.String(t, p.String(), orig, "receiver must not change")
		})
	}

	q, err := p.SetHandles(1, handle(-5.0, 0.0), handle(5.0, 0.0))
	test.Error(t, err)
	test.T(t, q.Points[1].Kind, Symmetric)
	q, err = q.SetKind(1, Corner)
	test.Error(t, err)
	test.T(t, q, p)

	q, err = p.SetCornerRadius(1, 2.0)
	test.Error(t, err)
	test.Float(t, q.Points[1].CornerRadius, 2.0)
	test.Float(t, p.Points[1].CornerRadius, 0.0)
}

func TestPathEditingErrors(t *testing.T) {
	p := MustParsePath("M0 0 L10 0 L10 10 Z")
	errs := []error{}
	_, err := p.AddPoint(4, Pt(0.0, 0.0))
	errs = append(errs, err)
	_, err = p.AddPoint(-1, Pt(0.0, 0.0))
	errs = append(errs, err)
	_, err = p.RemovePoint(3)
	errs = append(errs, err)
	_, err = p.MovePoint(-1, 0.0, 0.0)
	errs = append(errs, err)
	_, err = p.SetHandles(5, nil, nil)
	errs = append(errs, err)
	_, err = p.SetKind(0, PointKind(7))
	errs = append(errs, err)
	_, err = p.SetCornerRadius(0, -1.0)
	errs = append(errs, err)
	for i, err := range errs {
		test.That(t, errors.Is(err, ErrInvalidArgument), i, err)
	}
}

func TestPathReverse(t *testing.T) {
	p := MustParsePath("M0 0 L10 0 C15 0 20 5 20 10")
	test.String(t, p.Reverse().String(), "M20 10 C20 5 15 0 10 0 L0 0")
	test.T(t, p.Reverse().Reverse(), p)

	p = MustParsePath("M0 0 C0 10 10 10 10 0 L10 -10 Z")
	test.String(t, p.Reverse().String(), "M0 0 L10 -10 L10 0 C10 10 0 10 0 0 Z")
}

func TestPathBaked(t *testing.T) {
	p := MustParsePath("M0 0 L10 0 C10 5 5 10 0 10 Z")
	p.Transform = Identity.Translate(5.0, 0.0).Scale(2.0, 2.0)
	q := p.Baked()
	test.String(t, q.String(), "M5 0 L25 0 C25 10 15 20 5 20 Z")
	test.That(t, q.Transform.IsIdentity())
	test.That(t, !p.Transform.IsIdentity())
}

func TestFromPolygon(t *testing.T) {
	p := FromPolygon(true, Point{0.0, 0.0}, Point{4.0, 0.0}, Point{4.0, 3.0})
	test.String(t, p.String(), "M0 0 L4 0 L4 3 Z")
	test.T(t, p.Stroke, DefaultStroke)
}

func TestPathJSON(t *testing.T) {
	p := MustParsePath("M0 0 C0 10 10 10 10 0 Z M2 2 L3 3")
	p.Fill.Rule = EvenOdd
	p.Stroke.Color = RGB(255, 0, 0)
	p.Stroke.Join = RoundJoin
	p.Stroke.DashArray = []float64{2.0, 1.0}
	p.Transform = Identity.Translate(1.0, 2.0)

	b, err := json.Marshal(p)
	test.Error(t, err)

	q := &Path{}
	test.Error(t, json.Unmarshal(b, q))
	test.T(t, q, p)
	test.T(t, q.Fill, p.Fill)
	test.T(t, q.Stroke.Color, p.Stroke.Color)
	test.T(t, q.Stroke.Join, RoundJoin)
	test.T(t, q.Stroke.DashArray, []float64{2.0, 1.0})
	test.T(t, q.Transform, p.Transform)
	test.T(t, q.Points[1].In, p.Points[1].In)
}
