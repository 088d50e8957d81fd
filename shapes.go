package vecpath

import (
	"encoding/json"
	"math"
)

// kappa is the distance of the control points from the end points, relative to the radius, for a cubic Bézier approximating a quarter circle.
var kappa = 4.0 / 3.0 * math.Tan(math.Pi/8.0)

// Shape is a parametric primitive that generates path data.
type Shape interface {
	Kind() string
	Commands() (Commands, error)
}

// ShapePath returns the editable path of the shape.
func ShapePath(s Shape) (*Path, error) {
	cs, err := s.Commands()
	if err != nil {
		return nil, err
	}
	return cs.ToPath(), nil
}

// ShapeData returns the path data of the shape with numbers at prec decimals.
func ShapeData(s Shape, prec int) (string, error) {
	cs, err := s.Commands()
	if err != nil {
		return "", err
	}
	return cs.Serialize(prec), nil
}

// DecodeShape decodes a JSON object with a "kind" field naming the shape, e.g. {"kind":"polygon","cx":0,"cy":0,"sides":6,"radius":10}.
func DecodeShape(b []byte) (Shape, error) {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, invalidArgumentf("bad shape: %v", err)
	}
	var s Shape
	switch head.Kind {
	case "rect":
		s = &RectShape{}
	case "ellipse":
		s = &EllipseShape{}
	case "polygon":
		s = &PolygonShape{}
	case "star":
		s = &StarShape{}
	case "arrow":
		s = &ArrowShape{}
	case "arc":
		s = &ArcShape{}
	case "spiral":
		s = &SpiralShape{}
	default:
		return nil, invalidArgumentf("unknown shape kind %q", head.Kind)
	}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, invalidArgumentf("bad %s shape: %v", head.Kind, err)
	}
	return s, nil
}

// EncodeShape encodes the shape as a JSON object with a "kind" field, the inverse of DecodeShape.
func EncodeShape(s Shape) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	kind, _ := json.Marshal(s.Kind())
	fields["kind"] = kind
	return json.Marshal(fields)
}

////////////////////////////////////////////////////////////////

// RectShape is a rectangle with its top-left corner at (X,Y) in a y-down coordinate system and per corner radii in the order top-left, top-right, bottom-right, bottom-left. Radii are clamped to half the shorter side.
type RectShape struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	W     float64    `json:"width"`
	H     float64    `json:"height"`
	Radii [4]float64 `json:"radii"`
}

// Kind implements Shape.
func (s RectShape) Kind() string { return "rect" }

// Commands implements Shape.
func (s RectShape) Commands() (Commands, error) {
	if !(0.0 < s.W) || !(0.0 < s.H) {
		return nil, invalidArgumentf("rectangle size must be positive, got %gx%g", s.W, s.H)
	}
	var r [4]float64
	for i, ri := range s.Radii {
		if ri < 0.0 || math.IsNaN(ri) {
			return nil, invalidArgumentf("corner radius must not be negative, got %g", ri)
		}
		r[i] = math.Min(ri, math.Min(s.W, s.H)/2.0)
	}
	x0, y0, x1, y1 := s.X, s.Y, s.X+s.W, s.Y+s.H

	cs := Commands{MoveTo(x0+r[0], y0)}
	lineTo := func(x, y float64) {
		if last := cs[len(cs)-1]; !equal(last.X, x) || !equal(last.Y, y) {
			cs = append(cs, LineTo(x, y))
		}
	}
	// corner from the tangent point (sx,sy) around the corner (cx,cy) to the tangent point (ex,ey)
	cornerTo := func(radius, cx, cy, ex, ey float64) {
		if radius == 0.0 {
			return
		}
		last := cs[len(cs)-1]
		start, corner, end := Point{last.X, last.Y}, Point{cx, cy}, Point{ex, ey}
		cp1 := start.Interpolate(corner, kappa)
		cp2 := end.Interpolate(corner, kappa)
		cs = append(cs, CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y))
	}
	lineTo(x1-r[1], y0)
	cornerTo(r[1], x1, y0, x1, y0+r[1])
	lineTo(x1, y1-r[2])
	cornerTo(r[2], x1, y1, x1-r[2], y1)
	lineTo(x0+r[3], y1)
	cornerTo(r[3], x0, y1, x0, y1-r[3])
	lineTo(x0, y0+r[0])
	cornerTo(r[0], x0, y0, x0+r[0], y0)
	if last := cs[len(cs)-1]; last.Cmd == LineToCmd && equal(last.X, x0+r[0]) && equal(last.Y, y0) {
		cs = cs[:len(cs)-1]
	}
	return append(cs, Close()), nil
}

// EllipseShape is an ellipse centered at (Cx,Cy) with radii Rx and Ry.
type EllipseShape struct {
	Cx float64 `json:"cx"`
	Cy float64 `json:"cy"`
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
}

// Kind implements Shape.
func (s EllipseShape) Kind() string { return "ellipse" }

// Commands implements Shape. The ellipse is made of four cubic Béziers starting at the rightmost point.
func (s EllipseShape) Commands() (Commands, error) {
	if !(0.0 < s.Rx) || !(0.0 < s.Ry) {
		return nil, invalidArgumentf("ellipse radii must be positive, got %g and %g", s.Rx, s.Ry)
	}
	kx, ky := kappa*s.Rx, kappa*s.Ry
	cx, cy, rx, ry := s.Cx, s.Cy, s.Rx, s.Ry
	return Commands{
		MoveTo(cx+rx, cy),
		CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry),
		CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy),
		CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry),
		CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy),
		Close(),
	}, nil
}

// PolygonShape is a regular polygon centered at (Cx,Cy) with the given circumradius. Vertex i lies at angle 2π·i/Sides − π/2, so the first vertex points up in a y-down coordinate system.
type PolygonShape struct {
	Cx     float64 `json:"cx"`
	Cy     float64 `json:"cy"`
	Sides  int     `json:"sides"`
	Radius float64 `json:"radius"`
}

// Kind implements Shape.
func (s PolygonShape) Kind() string { return "polygon" }

// Commands implements Shape.
func (s PolygonShape) Commands() (Commands, error) {
	if s.Sides < 3 {
		return nil, invalidArgumentf("polygon needs at least 3 sides, got %d", s.Sides)
	} else if !(0.0 < s.Radius) {
		return nil, invalidArgumentf("polygon radius must be positive, got %g", s.Radius)
	}
	cs := make(Commands, 0, s.Sides+1)
	for i := 0; i < s.Sides; i++ {
		theta := 2.0*math.Pi*float64(i)/float64(s.Sides) - math.Pi/2.0
		sintheta, costheta := math.Sincos(theta)
		x, y := s.Cx+s.Radius*costheta, s.Cy+s.Radius*sintheta
		if i == 0 {
			cs = append(cs, MoveTo(x, y))
		} else {
			cs = append(cs, LineTo(x, y))
		}
	}
	return append(cs, Close()), nil
}

// StarShape is a star centered at (Cx,Cy) with the given number of points, alternating between the Outer and Inner radius. The first outer point points up in a y-down coordinate system.
type StarShape struct {
	Cx     float64 `json:"cx"`
	Cy     float64 `json:"cy"`
	Points int     `json:"points"`
	Inner  float64 `json:"inner"`
	Outer  float64 `json:"outer"`
}

// Kind implements Shape.
func (s StarShape) Kind() string { return "star" }

// Commands implements Shape.
func (s StarShape) Commands() (Commands, error) {
	if s.Points < 2 {
		return nil, invalidArgumentf("star needs at least 2 points, got %d", s.Points)
	} else if !(0.0 < s.Inner) || !(0.0 < s.Outer) {
		return nil, invalidArgumentf("star radii must be positive, got %g and %g", s.Inner, s.Outer)
	}
	n := 2 * s.Points
	cs := make(Commands, 0, n+1)
	for i := 0; i < n; i++ {
		r := s.Outer
		if i%2 == 1 {
			r = s.Inner
		}
		theta := math.Pi*float64(i)/float64(s.Points) - math.Pi/2.0
		sintheta, costheta := math.Sincos(theta)
		x, y := s.Cx+r*costheta, s.Cy+r*sintheta
		if i == 0 {
			cs = append(cs, MoveTo(x, y))
		} else {
			cs = append(cs, LineTo(x, y))
		}
	}
	return append(cs, Close()), nil
}

// ArrowShape is an arrow from its tail (X1,Y1) to its tip (X2,Y2) with a rectangular shaft and a triangular head. The head length is clamped to the arrow length.
type ArrowShape struct {
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	ShaftWidth float64 `json:"shaftWidth"`
	HeadWidth  float64 `json:"headWidth"`
	HeadLength float64 `json:"headLength"`
}

// Kind implements Shape.
func (s ArrowShape) Kind() string { return "arrow" }

// Commands implements Shape.
func (s ArrowShape) Commands() (Commands, error) {
	tail, tip := Point{s.X1, s.Y1}, Point{s.X2, s.Y2}
	length := Distance(tail, tip)
	if equal(length, 0.0) {
		return nil, invalidArgumentf("arrow has zero length")
	} else if !(0.0 < s.ShaftWidth) || !(0.0 < s.HeadWidth) || !(0.0 < s.HeadLength) {
		return nil, invalidArgumentf("arrow widths and head length must be positive")
	}
	u := tip.Sub(tail).Div(length)
	n := u.Rot90CCW()
	neck := tip.Sub(u.Mul(math.Min(s.HeadLength, length)))
	sw, hw := s.ShaftWidth/2.0, s.HeadWidth/2.0

	ps := []Point{
		tail.Add(n.Mul(sw)),
		neck.Add(n.Mul(sw)),
		neck.Add(n.Mul(hw)),
		tip,
		neck.Sub(n.Mul(hw)),
		neck.Sub(n.Mul(sw)),
		tail.Sub(n.Mul(sw)),
	}
	cs := Commands{MoveTo(ps[0].X, ps[0].Y)}
	for _, q := range ps[1:] {
		cs = append(cs, LineTo(q.X, q.Y))
	}
	return append(cs, Close()), nil
}

// ArcShape is an open circular arc centered at (Cx,Cy) running from the Start to the End angle in degrees, where positive angles run from the x-axis towards the y-axis. The arc is a single ArcTo command with the large arc flag set for sweeps over 180 degrees, a full turn is made of two half arcs.
type ArcShape struct {
	Cx     float64 `json:"cx"`
	Cy     float64 `json:"cy"`
	Radius float64 `json:"radius"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// Kind implements Shape.
func (s ArcShape) Kind() string { return "arc" }

// Commands implements Shape.
func (s ArcShape) Commands() (Commands, error) {
	if !(0.0 < s.Radius) {
		return nil, invalidArgumentf("arc radius must be positive, got %g", s.Radius)
	}
	sweep := s.End - s.Start
	if equal(sweep, 0.0) || math.IsNaN(sweep) {
		return nil, invalidArgumentf("arc sweep must not be zero")
	}
	sweep = math.Max(-360.0, math.Min(360.0, sweep))
	at := func(deg float64) Point {
		sintheta, costheta := math.Sincos(deg * math.Pi / 180.0)
		return Point{s.Cx + s.Radius*costheta, s.Cy + s.Radius*sintheta}
	}

	start := at(s.Start)
	cs := Commands{MoveTo(start.X, start.Y)}
	if 360.0 <= math.Abs(sweep) {
		mid := at(s.Start + sweep/2.0)
		cs = append(cs,
			ArcTo(s.Radius, s.Radius, 0.0, false, 0.0 < sweep, mid.X, mid.Y),
			ArcTo(s.Radius, s.Radius, 0.0, false, 0.0 < sweep, start.X, start.Y),
		)
		return cs, nil
	}
	end := at(s.Start + sweep)
	return append(cs, ArcTo(s.Radius, s.Radius, 0.0, 180.0 < math.Abs(sweep), 0.0 < sweep, end.X, end.Y)), nil
}

// SpiralShape is an Archimedean spiral centered at (Cx,Cy) whose radius grows linearly from StartRadius to EndRadius over the given number of turns. It is a smooth cubic spline through SamplesPerTurn points per turn, 32 if zero.
type SpiralShape struct {
	Cx             float64 `json:"cx"`
	Cy             float64 `json:"cy"`
	Turns          float64 `json:"turns"`
	StartRadius    float64 `json:"startRadius"`
	EndRadius      float64 `json:"endRadius"`
	SamplesPerTurn int     `json:"samplesPerTurn,omitempty"`
}

// Kind implements Shape.
func (s SpiralShape) Kind() string { return "spiral" }

// Commands implements Shape.
func (s SpiralShape) Commands() (Commands, error) {
	samplesPerTurn := s.SamplesPerTurn
	if samplesPerTurn == 0 {
		samplesPerTurn = 32
	}
	if !(0.0 < s.Turns) || math.IsInf(s.Turns, 0) {
		return nil, invalidArgumentf("spiral turns must be positive, got %g", s.Turns)
	} else if s.StartRadius < 0.0 || !(0.0 < s.EndRadius) {
		return nil, invalidArgumentf("spiral radii must be positive, got %g and %g", s.StartRadius, s.EndRadius)
	} else if samplesPerTurn < 4 {
		return nil, invalidArgumentf("spiral needs at least 4 samples per turn, got %d", samplesPerTurn)
	}

	n := int(math.Ceil(s.Turns * float64(samplesPerTurn)))
	pl := Polyline{Points: make([]Point, 0, n+1)}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		r := s.StartRadius + t*(s.EndRadius-s.StartRadius)
		sintheta, costheta := math.Sincos(2.0 * math.Pi * s.Turns * t)
		pl.Points = append(pl.Points, Point{s.Cx + r*costheta, s.Cy + r*sintheta})
	}
	return pl.Smoothen().Commands(), nil
}

////////////////////////////////////////////////////////////////

// Rectangle returns the path data of a rectangle with per corner radii, see RectShape.
func Rectangle(x, y, w, h float64, radii [4]float64) (string, error) {
	return ShapeData(RectShape{x, y, w, h, radii}, DefaultPrecision)
}

// Ellipse returns the path data of an ellipse, see EllipseShape.
func Ellipse(cx, cy, rx, ry float64) (string, error) {
	return ShapeData(EllipseShape{cx, cy, rx, ry}, DefaultPrecision)
}

// RegularPolygon returns the path data of a regular polygon centered at the origin with its first vertex pointing up, see PolygonShape.
func RegularPolygon(sides int, radius float64) (string, error) {
	return ShapeData(PolygonShape{Sides: sides, Radius: radius}, DefaultPrecision)
}

// Star returns the path data of a star centered at the origin, see StarShape.
func Star(points int, inner, outer float64) (string, error) {
	return ShapeData(StarShape{Points: points, Inner: inner, Outer: outer}, DefaultPrecision)
}

// Arrow returns the path data of an arrow, see ArrowShape.
func Arrow(x1, y1, x2, y2, shaftWidth, headWidth, headLength float64) (string, error) {
	return ShapeData(ArrowShape{x1, y1, x2, y2, shaftWidth, headWidth, headLength}, DefaultPrecision)
}

// Arc returns the path data of a circular arc centered at the origin with angles in degrees, see ArcShape.
func Arc(radius, start, end float64) (string, error) {
	return ShapeData(ArcShape{Radius: radius, Start: start, End: end}, DefaultPrecision)
}

// Spiral returns the path data of a spiral centered at the origin, see SpiralShape.
func Spiral(turns, startRadius, endRadius float64, samplesPerTurn int) (string, error) {
	return ShapeData(SpiralShape{Turns: turns, StartRadius: startRadius, EndRadius: endRadius, SamplesPerTurn: samplesPerTurn}, DefaultPrecision)
}
