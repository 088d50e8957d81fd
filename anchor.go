package vecpath

import (
	"fmt"
	"math"
)

// PointKind describes how the handles of an anchor relate to each other. It is advisory for editing tools, geometry functions do not enforce it.
type PointKind int

// see PointKind
const (
	Corner       PointKind = iota // no or independent handles
	Smooth                        // handles collinear through the anchor
	Symmetric                     // handles collinear and of equal length
	Disconnected                  // both handles present but not collinear
)

func (k PointKind) String() string {
	switch k {
	case Corner:
		return "corner"
	case Smooth:
		return "smooth"
	case Symmetric:
		return "symmetric"
	case Disconnected:
		return "disconnected"
	}
	return fmt.Sprintf("PointKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k PointKind) MarshalText() ([]byte, error) {
	if k < Corner || Disconnected < k {
		return nil, invalidArgumentf("bad point kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PointKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "corner", "":
		*k = Corner
	case "smooth":
		*k = Smooth
	case "symmetric":
		*k = Symmetric
	case "disconnected":
		*k = Disconnected
	default:
		return invalidArgumentf("bad point kind %q", string(b))
	}
	return nil
}

// Anchor is a vertex of a path. Its handles are stored as offsets relative to the anchor and are nil when absent.
type Anchor struct {
	X            float64   `json:"x"`
	Y            float64   `json:"y"`
	In           *Point    `json:"handleIn,omitempty"`
	Out          *Point    `json:"handleOut,omitempty"`
	Kind         PointKind `json:"kind"`
	CornerRadius float64   `json:"cornerRadius,omitempty"`
}

// Pt returns an anchor without handles.
func Pt(x, y float64) Anchor {
	return Anchor{X: x, Y: y}
}

// Pos returns the anchor position.
func (a Anchor) Pos() Point {
	return Point{a.X, a.Y}
}

// InPos returns the absolute position of the incoming handle, or the anchor position if it has none.
func (a Anchor) InPos() Point {
	if a.In == nil {
		return a.Pos()
	}
	return a.Pos().Add(*a.In)
}

// OutPos returns the absolute position of the outgoing handle, or the anchor position if it has none.
func (a Anchor) OutPos() Point {
	if a.Out == nil {
		return a.Pos()
	}
	return a.Pos().Add(*a.Out)
}

// HasHandles returns true if the anchor has a non-zero handle.
func (a Anchor) HasHandles() bool {
	return a.In != nil && !a.In.IsZero() || a.Out != nil && !a.Out.IsZero()
}

// Clone returns a copy that does not share handles with a.
func (a Anchor) Clone() Anchor {
	if a.In != nil {
		in := *a.In
		a.In = &in
	}
	if a.Out != nil {
		out := *a.Out
		a.Out = &out
	}
	return a
}

// Equals returns true if both anchors have the same position, handles, and kind with tolerance Epsilon.
func (a Anchor) Equals(b Anchor) bool {
	return a.Pos().Equals(b.Pos()) && handleEquals(a.In, b.In) && handleEquals(a.Out, b.Out) && a.Kind == b.Kind && equal(a.CornerRadius, b.CornerRadius)
}

func handleEquals(a, b *Point) bool {
	if a == nil || b == nil {
		return (a == nil || a.IsZero()) && (b == nil || b.IsZero())
	}
	return a.Equals(*b)
}

// Transform returns the anchor transformed by m, where handles only undergo the linear part.
func (a Anchor) Transform(m Matrix) Anchor {
	p := m.Dot(a.Pos())
	b := a
	b.X, b.Y = p.X, p.Y
	if a.In != nil {
		in := m.DotVector(*a.In)
		b.In = &in
	}
	if a.Out != nil {
		out := m.DotVector(*a.Out)
		b.Out = &out
	}
	return b
}

// reverse swaps the incoming and outgoing handles.
func (a Anchor) reverse() Anchor {
	a.In, a.Out = a.Out, a.In
	return a
}

// inferKind classifies the handles: Symmetric or Smooth when both are collinear and opposite, Disconnected when both exist but are not, and Corner otherwise.
func (a Anchor) inferKind() PointKind {
	if a.In == nil || a.Out == nil || a.In.IsZero() || a.Out.IsZero() {
		return Corner
	}
	in, out := *a.In, *a.Out
	lin, lout := in.Length(), out.Length()
	if math.Abs(in.PerpDot(out)) <= 1e-6*lin*lout && in.Dot(out) < 0.0 {
		if math.Abs(lin-lout) <= 1e-6*math.Max(lin, lout) {
			return Symmetric
		}
		return Smooth
	}
	return Disconnected
}

// withKind returns the anchor with kind k, adjusting its handles: Corner removes them, Smooth aligns the incoming handle opposite to the outgoing one keeping its length, and Symmetric mirrors the outgoing handle. Kinds that need a handle leave an anchor without handles unchanged.
func (a Anchor) withKind(k PointKind) Anchor {
	a = a.Clone()
	a.Kind = k
	switch k {
	case Corner:
		a.In, a.Out = nil, nil
	case Smooth, Symmetric:
		if a.Out == nil && a.In == nil {
			break
		} else if a.Out == nil {
			out := a.In.Neg()
			a.Out = &out
			break
		}
		l := a.Out.Length()
		if k == Smooth && a.In != nil {
			l = a.In.Length()
		}
		in := a.Out.Neg().Norm(l)
		a.In = &in
	}
	return a
}
