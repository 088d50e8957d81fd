package vecpath

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func handle(x, y float64) *Point {
	return &Point{x, y}
}

func TestAnchorKind(t *testing.T) {
	tests := []struct {
		in, out *Point
		kind    PointKind
	}{
		{nil, nil, Corner},
		{nil, handle(1.0, 0.0), Corner},
		{handle(0.0, 0.0), handle(1.0, 0.0), Corner},
		{handle(-1.0, 0.0), handle(1.0, 0.0), Symmetric},
		{handle(-1.0, -1.0), handle(2.0, 2.0), Smooth},
		{handle(0.0, 1.0), handle(1.0, 0.0), Disconnected},
		{handle(1.0, 0.0), handle(1.0, 0.0), Disconnected},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			a := Anchor{X: 5.0, Y: 5.0, In: tt.in, Out: tt.out}
			test.T(t, a.inferKind(), tt.kind)
		})
	}
}

func TestAnchorWithKind(t *testing.T) {
	a := Anchor{X: 1.0, Y: 1.0, In: handle(0.0, 1.0), Out: handle(2.0, 0.0)}

	b := a.withKind(Corner)
	test.That(t, b.In == nil && b.Out == nil)
	test.That(t, !b.HasHandles())

	b = a.withKind(Smooth)
	test.T(t, *b.In, Point{-1.0, 0.0})
	test.T(t, *b.Out, Point{2.0, 0.0})
	test.T(t, b.inferKind(), Smooth)

	b = a.withKind(Symmetric)
	test.T(t, *b.In, Point{-2.0, 0.0})
	test.T(t, b.inferKind(), Symmetric)

	b = Anchor{In: handle(0.0, 3.0)}.withKind(Symmetric)
	test.T(t, *b.Out, Point{0.0, -3.0})

	// the original keeps its handles
	test.T(t, *a.In, Point{0.0, 1.0})
}

func TestAnchor(t *testing.T) {
	a := Anchor{X: 1.0, Y: 2.0, In: handle(-1.0, 0.0), Out: handle(1.0, 1.0)}
	test.T(t, a.Pos(), Point{1.0, 2.0})
	test.T(t, a.InPos(), Point{0.0, 2.0})
	test.T(t, a.OutPos(), Point{2.0, 3.0})
	test.T(t, Pt(1.0, 2.0).OutPos(), Point{1.0, 2.0})

	c := a.Clone()
	c.In.X = 5.0
	test.T(t, a.In.X, -1.0)

	test.That(t, Pt(1.0, 2.0).Equals(Anchor{X: 1.0, Y: 2.0, In: handle(0.0, 0.0)}), "zero handle equals no handle")
	test.That(t, !a.Equals(Pt(1.0, 2.0)))

	m := Identity.Translate(10.0, 0.0).Scale(2.0, 2.0)
	b := a.Transform(m)
	test.T(t, b.Pos(), Point{12.0, 4.0})
	test.T(t, *b.In, Point{-2.0, 0.0})
	test.T(t, *b.Out, Point{2.0, 2.0})
}

func TestAnchorJSON(t *testing.T) {
	b, err := json.Marshal(Pt(1.0, 2.0))
	test.Error(t, err)
	test.String(t, string(b), `{"x":1,"y":2,"kind":"corner"}`)

	a := Anchor{X: 1.0, Y: 2.0, In: handle(-1.0, 0.0), Out: handle(1.0, 0.0), Kind: Symmetric, CornerRadius: 4.0}
	b, err = json.Marshal(a)
	test.Error(t, err)
	test.String(t, string(b), `{"x":1,"y":2,"handleIn":{"x":-1,"y":0},"handleOut":{"x":1,"y":0},"kind":"symmetric","cornerRadius":4}`)

	var a2 Anchor
	test.Error(t, json.Unmarshal(b, &a2))
	test.T(t, a2, a)

	test.That(t, json.Unmarshal([]byte(`{"x":1,"y":2,"kind":"pointy"}`), &a2) != nil)
	var a3 Anchor
	test.Error(t, json.Unmarshal([]byte(`{"x":1,"y":2}`), &a3))
	test.T(t, a3, Pt(1.0, 2.0))
}
