package vecpath

import (
	"math"
)

// JoinStyle is the shape of offset and stroke corners.
type JoinStyle int

// see JoinStyle
const (
	MiterJoin JoinStyle = iota
	RoundJoin
	BevelJoin
)

func (join JoinStyle) String() string {
	switch join {
	case MiterJoin:
		return "miter"
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return "invalid"
}

// MarshalText implements encoding.TextMarshaler.
func (join JoinStyle) MarshalText() ([]byte, error) {
	if _, err := join.joiner(); err != nil {
		return nil, err
	}
	return []byte(join.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (join *JoinStyle) UnmarshalText(b []byte) error {
	switch string(b) {
	case "miter", "":
		*join = MiterJoin
	case "round":
		*join = RoundJoin
	case "bevel":
		*join = BevelJoin
	default:
		return invalidArgumentf("bad join style %q", string(b))
	}
	return nil
}

func (join JoinStyle) joiner() (Joiner, error) {
	switch join {
	case MiterJoin:
		return MiterJoiner, nil
	case RoundJoin:
		return RoundJoiner, nil
	case BevelJoin:
		return BevelJoiner, nil
	}
	return nil, invalidArgumentf("bad join style %d", int(join))
}

// CapStyle is the shape of the ends of open stroked contours.
type CapStyle int

// see CapStyle
const (
	ButtCap CapStyle = iota
	RoundCap
	SquareCap
)

func (cap CapStyle) String() string {
	switch cap {
	case ButtCap:
		return "butt"
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "invalid"
}

// MarshalText implements encoding.TextMarshaler.
func (cap CapStyle) MarshalText() ([]byte, error) {
	if _, err := cap.capper(); err != nil {
		return nil, err
	}
	return []byte(cap.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cap *CapStyle) UnmarshalText(b []byte) error {
	switch string(b) {
	case "butt", "":
		*cap = ButtCap
	case "round":
		*cap = RoundCap
	case "square":
		*cap = SquareCap
	default:
		return invalidArgumentf("bad cap style %q", string(b))
	}
	return nil
}

func (cap CapStyle) capper() (Capper, error) {
	switch cap {
	case ButtCap:
		return ButtCapper, nil
	case RoundCap:
		return RoundCapper, nil
	case SquareCap:
		return SquareCapper, nil
	}
	return nil, invalidArgumentf("bad cap style %d", int(cap))
}

////////////////////////////////////////////////////////////////

// appendCubic appends the cubic Bézier b to the contour, whose last anchor must be at b[0].
func (sp *Subpath) appendCubic(b Bezier) {
	last := &sp.Points[len(sp.Points)-1]
	if out := b[1].Sub(b[0]); !out.IsZero() {
		last.Out = &out
	}
	a := Pt(b[3].X, b[3].Y)
	if in := b[2].Sub(b[3]); !in.IsZero() {
		a.In = &in
	}
	sp.Points = append(sp.Points, a)
}

// appendArc appends a circular arc around center with radius r from angle theta0 to theta1, starting at the last anchor.
func (sp *Subpath) appendArc(center Point, r, theta0, theta1 float64) {
	for _, b := range ArcToBezier(center.X, center.Y, r, r, theta0, theta1) {
		sp.appendCubic(b)
	}
}

// Capper implements Cap, with sp the contour to append to, halfWidth the half width of the stroke, pivot the end point of the stroked contour, and n0 the normal at the end on the side the outline arrives from. The length of n0 is equal to halfWidth. The cap must end at pivot-n0.
type Capper interface {
	Cap(*Subpath, float64, Point, Point)
}

// CapperFunc is a function that implements the Capper interface.
type CapperFunc func(*Subpath, float64, Point, Point)

// Cap adds a cap to the contour.
func (f CapperFunc) Cap(sp *Subpath, halfWidth float64, pivot, n0 Point) {
	f(sp, halfWidth, pivot, n0)
}

// RoundCapper caps the start or end of a contour by a half circle.
var RoundCapper Capper = CapperFunc(roundCapper)

func roundCapper(sp *Subpath, halfWidth float64, pivot, n0 Point) {
	theta := n0.Angle()
	sp.appendArc(pivot, halfWidth, theta, theta+math.Pi)
}

// ButtCapper caps the start or end of a contour by a butt cap.
var ButtCapper Capper = CapperFunc(buttCapper)

func buttCapper(sp *Subpath, halfWidth float64, pivot, n0 Point) {
	end := pivot.Sub(n0)
	sp.Points = append(sp.Points, Pt(end.X, end.Y))
}

// SquareCapper caps the start or end of a contour by a square cap extending halfWidth beyond the end point.
var SquareCapper Capper = CapperFunc(squareCapper)

func squareCapper(sp *Subpath, halfWidth float64, pivot, n0 Point) {
	e := n0.Rot90CCW()
	corner1 := pivot.Add(e).Add(n0)
	corner2 := pivot.Add(e).Sub(n0)
	end := pivot.Sub(n0)
	sp.Points = append(sp.Points, Pt(corner1.X, corner1.Y), Pt(corner2.X, corner2.Y), Pt(end.X, end.Y))
}

////////////////

// Joiner implements Join, with sp the contour to append the offset anchors of a convex corner to, pivot the original corner, n0 and n1 the offset vectors of the incoming and outgoing segments, and miterLimit the maximum ratio of the miter length to the offset distance. The length of n0 and n1 is equal to the offset distance.
type Joiner interface {
	Join(*Subpath, Point, Point, Point, float64)
}

// JoinerFunc is a function that implements the Joiner interface.
type JoinerFunc func(*Subpath, Point, Point, Point, float64)

// Join adds a join to the contour.
func (f JoinerFunc) Join(sp *Subpath, pivot, n0, n1 Point, miterLimit float64) {
	f(sp, pivot, n0, n1, miterLimit)
}

// BevelJoiner connects two offset segments by a straight line.
var BevelJoiner Joiner = JoinerFunc(bevelJoiner)

func bevelJoiner(sp *Subpath, pivot, n0, n1 Point, miterLimit float64) {
	p0, p1 := pivot.Add(n0), pivot.Add(n1)
	sp.Points = append(sp.Points, Pt(p0.X, p0.Y))
	if !p0.Equals(p1) {
		sp.Points = append(sp.Points, Pt(p1.X, p1.Y))
	}
}

// RoundJoiner connects two offset segments by a circular arc around the corner.
var RoundJoiner Joiner = JoinerFunc(roundJoiner)

func roundJoiner(sp *Subpath, pivot, n0, n1 Point, miterLimit float64) {
	p0 := pivot.Add(n0)
	sp.Points = append(sp.Points, Pt(p0.X, p0.Y))
	if n0.Equals(n1) {
		return
	}
	theta0 := n0.Angle()
	sp.appendArc(pivot, n0.Length(), theta0, theta0+n0.AngleBetween(n1))
}

// MiterJoiner connects two offset segments by extending them to their intersection. When the miter length exceeds miterLimit times the offset distance it falls back to a bevel.
var MiterJoiner Joiner = JoinerFunc(miterJoiner)

func miterJoiner(sp *Subpath, pivot, n0, n1 Point, miterLimit float64) {
	if p, ok := miterPoint(pivot, n0, n1); ok && Distance(pivot, p) <= miterLimit*n0.Length()*(1.0+1e-9) {
		sp.Points = append(sp.Points, Pt(p.X, p.Y))
		return
	}
	bevelJoiner(sp, pivot, n0, n1, miterLimit)
}

// miterPoint returns the intersection of the offset lines through pivot+n0 and pivot+n1, i.e. the corner moved along the averaged normal by the miter corrected distance.
func miterPoint(pivot, n0, n1 Point) (Point, bool) {
	m := n0.Add(n1)
	if m.IsZero() {
		return Point{}, false
	}
	d := n0.Length()
	cosHalf := n0.Div(d).Dot(m.Norm(1.0))
	if cosHalf < 1e-6 {
		return Point{}, false
	}
	return pivot.Add(m.Norm(d / cosHalf)), true
}

////////////////////////////////////////////////////////////////

// startTangent returns the unit direction in which the segment leaves its start, skipping coinciding control points.
func startTangent(b Bezier) Point {
	for _, q := range b[1:] {
		if v := q.Sub(b[0]); Epsilon < v.Length() {
			return v.Norm(1.0)
		}
	}
	return Point{}
}

// endTangent returns the unit direction in which the segment arrives at its end, skipping coinciding control points.
func endTangent(b Bezier) Point {
	for _, q := range []Point{b[2], b[1], b[0]} {
		if v := b[3].Sub(q); Epsilon < v.Length() {
			return v.Norm(1.0)
		}
	}
	return Point{}
}

// offsetSegments returns the segments of the contour, one per anchor for closed contours so that segment i runs from anchor i to anchor i+1.
func (sp Subpath) offsetSegments() []Bezier {
	n := len(sp.Points)
	m := n - 1
	if sp.Closed {
		m = n
	}
	segs := make([]Bezier, m)
	for k := 0; k < m; k++ {
		a, b := sp.Points[k], sp.Points[(k+1)%n]
		segs[k] = Bezier{a.Pos(), a.OutPos(), b.InPos(), b.Pos()}
	}
	return segs
}

// offsetSubpath moves every anchor by d to the right of the direction of travel, d negative moves to the left. Concave corners move to the miter point, convex corners are joined by joiner. Handles are scaled by the ratio of the new and old chord lengths of their segment.
func (sp Subpath) offsetSubpath(d float64, joiner Joiner, miterLimit float64) Subpath {
	n := len(sp.Points)
	segs := sp.offsetSegments()
	m := len(segs)

	groups := make([][]Anchor, n)
	for i, a := range sp.Points {
		pivot := a.Pos()
		var tIn, tOut Point
		if sp.Closed || 0 < i {
			tIn = endTangent(segs[(i+m-1)%m])
		}
		if sp.Closed || i < n-1 {
			tOut = startTangent(segs[i])
		}
		if tIn.IsZero() != tOut.IsZero() && (sp.Closed || 0 < i && i < n-1) {
			Logger().Debug("offset with zero-length tangent, using straight join", "index", i)
		}
		if tIn.IsZero() {
			tIn = tOut
		} else if tOut.IsZero() {
			tOut = tIn
		}
		if tIn.IsZero() {
			groups[i] = []Anchor{Pt(pivot.X, pivot.Y)}
			continue
		}

		n0 := tIn.Rot90CW().Mul(d)
		n1 := tOut.Rot90CW().Mul(d)
		cross := tIn.PerpDot(tOut)
		if math.Abs(cross) < 1e-9 && 0.0 < tIn.Dot(tOut) {
			p := pivot.Add(n0.Add(n1).Mul(0.5))
			groups[i] = []Anchor{Pt(p.X, p.Y)}
		} else if 0.0 < cross*d || math.Abs(cross) < 1e-9 {
			group := Subpath{}
			joiner.Join(&group, pivot, n0, n1, miterLimit)
			groups[i] = group.Points
		} else if p, ok := miterPoint(pivot, n0, n1); ok {
			groups[i] = []Anchor{Pt(p.X, p.Y)}
		} else {
			group := Subpath{}
			bevelJoiner(&group, pivot, n0, n1, miterLimit)
			groups[i] = group.Points
		}
	}

	for k := 0; k < m; k++ {
		a, b := sp.Points[k], sp.Points[(k+1)%n]
		if isStraight(a, b) {
			continue
		}
		g0, g1 := groups[k], groups[(k+1)%n]
		start, end := &g0[len(g0)-1], &g1[0]
		ratio := 1.0
		if chord := Distance(a.Pos(), b.Pos()); Epsilon < chord {
			ratio = Distance(start.Pos(), end.Pos()) / chord
		}
		if a.Out != nil {
			out := a.Out.Mul(ratio)
			start.Out = &out
		}
		if b.In != nil {
			in := b.In.Mul(ratio)
			end.In = &in
		}
	}

	out := Subpath{Closed: sp.Closed}
	for _, g := range groups {
		out.Points = append(out.Points, g...)
	}
	for i := range out.Points {
		out.Points[i].Kind = out.Points[i].inferKind()
	}
	return out
}

// Offset returns the path with every contour moved by offset along its normals. A positive offset expands closed contours regardless of the direction they run in, contours running opposite to the largest contour are holes and shrink. For open contours a positive offset moves to the right of the direction of travel in a y-up coordinate system. Convex corners are joined by join, where MiterJoin falls back to a bevel when the miter length exceeds miterLimit times the offset; concave corners always use the miter point. Results are not cleaned of self-intersections, so offsetting by d and then by -d only approximately restores the path. Open contours need at least 2 anchors and closed contours 3.
func (p *Path) Offset(offset float64, join JoinStyle, miterLimit float64) (*Path, error) {
	joiner, err := join.joiner()
	if err != nil {
		return nil, err
	} else if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, invalidArgumentf("bad offset %g", offset)
	} else if join == MiterJoin && !(1.0 <= miterLimit) {
		return nil, invalidArgumentf("miter limit must be at least 1, got %g", miterLimit)
	}

	subs := p.Subpaths()
	refCCW, refArea := true, -1.0
	for _, sp := range subs {
		if err := sp.checkLen(2, 3); err != nil {
			return nil, err
		}
		if area := sp.SignedArea(); sp.Closed && refArea < math.Abs(area) {
			refCCW, refArea = 0.0 <= area, math.Abs(area)
		}
	}
	if offset == 0.0 {
		return p.Clone(), nil
	}

	out := make([]Subpath, len(subs))
	for i, sp := range subs {
		d := offset
		if sp.Closed && !refCCW {
			d = -d
		}
		out[i] = sp.offsetSubpath(d, joiner, miterLimit)
	}
	return p.withSubpaths(out), nil
}

// Outline returns the filled outline of the path stroked with the given width. Closed contours give an outer contour and a reversed inner contour, open contours give a single contour with caps at both ends. The result is filled with the nonzero rule and is not cleaned of self-intersections, so an open contour that turns back on itself gives a contour that covers the overlapping band twice.
func (p *Path) Outline(width float64, cap CapStyle, join JoinStyle, miterLimit float64) (*Path, error) {
	joiner, err := join.joiner()
	if err != nil {
		return nil, err
	}
	capper, err := cap.capper()
	if err != nil {
		return nil, err
	} else if !(0.0 < width) || math.IsInf(width, 0) {
		return nil, invalidArgumentf("stroke width must be positive, got %g", width)
	} else if join == MiterJoin && !(1.0 <= miterLimit) {
		return nil, invalidArgumentf("miter limit must be at least 1, got %g", miterLimit)
	}

	hw := width / 2.0
	var out []Subpath
	for _, sp := range p.Subpaths() {
		if err := sp.checkLen(2, 3); err != nil {
			return nil, err
		}
		if sp.Closed {
			sign := 1.0
			if !sp.CCW() {
				sign = -1.0
			}
			outer := sp.offsetSubpath(sign*hw, joiner, miterLimit)
			inner := sp.offsetSubpath(-sign*hw, joiner, miterLimit).Reverse()
			out = append(out, outer, inner)
		} else {
			out = append(out, sp.outlineOpen(hw, capper, joiner, miterLimit))
		}
	}
	q := p.withSubpaths(out)
	q.Fill.Rule = NonZero
	return q, nil
}

// outlineOpen returns the outline of an open contour: its right side, the end cap, its left side backwards, and the start cap.
func (sp Subpath) outlineOpen(hw float64, capper Capper, joiner Joiner, miterLimit float64) Subpath {
	segs := sp.offsetSegments()
	right := sp.offsetSubpath(hw, joiner, miterLimit)
	left := sp.offsetSubpath(-hw, joiner, miterLimit).Reverse()

	contour := Subpath{Points: right.Points, Closed: true}
	end := sp.Points[len(sp.Points)-1].Pos()
	capper.Cap(&contour, hw, end, endTangent(segs[len(segs)-1]).Rot90CW().Mul(hw))
	last := &contour.Points[len(contour.Points)-1]
	last.Out = left.Points[0].Out
	contour.Points = append(contour.Points, left.Points[1:]...)

	start := sp.Points[0].Pos()
	capper.Cap(&contour, hw, start, startTangent(segs[0]).Rot90CCW().Mul(hw))
	n := len(contour.Points)
	contour.Points[0].In = contour.Points[n-1].In
	contour.Points = contour.Points[:n-1]
	for i := range contour.Points {
		contour.Points[i].Kind = contour.Points[i].inferKind()
	}
	return contour
}

// OutlineStroke returns the filled outline of the path's own stroke, dashed first when the stroke has a dash array. The result is filled with the stroke color and has no stroke.
func (p *Path) OutlineStroke() (*Path, error) {
	q := p
	if 0 < len(p.Stroke.DashArray) {
		var err error
		if q, err = p.Dash(p.Stroke.DashOffset, p.Stroke.DashArray...); err != nil {
			return nil, err
		}
	}
	miterLimit := p.Stroke.MiterLimit
	if p.Stroke.Join != MiterJoin {
		miterLimit = 1.0
	}
	out, err := q.Outline(p.Stroke.Width, p.Stroke.Cap, p.Stroke.Join, miterLimit)
	if err != nil {
		return nil, err
	}
	out.Fill = Fill{Color: p.Stroke.Color, Opacity: p.Fill.Opacity, Rule: NonZero}
	out.Stroke = DefaultStroke
	return out, nil
}
