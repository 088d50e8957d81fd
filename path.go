package vecpath

// FillRule determines which regions of a self-overlapping path are inside.
type FillRule int

// see FillRule
const (
	NonZero FillRule = iota
	EvenOdd
)

// Fills returns true if a point with the given winding number is inside.
func (fillRule FillRule) Fills(windings int) bool {
	if fillRule == NonZero {
		return windings != 0
	}
	return windings%2 != 0
}

func (fillRule FillRule) String() string {
	if fillRule == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// MarshalText implements encoding.TextMarshaler.
func (fillRule FillRule) MarshalText() ([]byte, error) {
	return []byte(fillRule.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (fillRule *FillRule) UnmarshalText(b []byte) error {
	switch string(b) {
	case "nonzero", "":
		*fillRule = NonZero
	case "evenodd":
		*fillRule = EvenOdd
	default:
		return invalidArgumentf("bad fill rule %q", string(b))
	}
	return nil
}

// Fill is the fill paint of a path.
type Fill struct {
	Color   Color    `json:"color"`
	Opacity float64  `json:"opacity"`
	Rule    FillRule `json:"rule"`
}

// Stroke is the stroke paint of a path.
type Stroke struct {
	Color      Color     `json:"color"`
	Width      float64   `json:"width"`
	Cap        CapStyle  `json:"cap"`
	Join       JoinStyle `json:"join"`
	MiterLimit float64   `json:"miterLimit"`
	DashArray  []float64 `json:"dashArray,omitempty"`
	DashOffset float64   `json:"dashOffset,omitempty"`
}

// DefaultFill is an opaque black nonzero fill.
var DefaultFill = Fill{Color: Black, Opacity: 1.0, Rule: NonZero}

// DefaultStroke is a transparent stroke of width 1 with butt caps and miter joins.
var DefaultStroke = Stroke{Color: Transparent, Width: 1.0, Cap: ButtCap, Join: MiterJoin, MiterLimit: 4.0}

////////////////////////////////////////////////////////////////

// Subpath is a single contour of anchors.
type Subpath struct {
	Points []Anchor `json:"points"`
	Closed bool     `json:"closed"`
}

// Clone returns a deep copy.
func (sp Subpath) Clone() Subpath {
	points := make([]Anchor, len(sp.Points))
	for i, a := range sp.Points {
		points[i] = a.Clone()
	}
	return Subpath{points, sp.Closed}
}

// Commands returns the drawing commands of the subpath.
func (sp Subpath) Commands() Commands {
	return FromPoints(sp.Points, sp.Closed)
}

// Reverse returns the subpath running in the opposite direction. Closed subpaths keep their first anchor.
func (sp Subpath) Reverse() Subpath {
	n := len(sp.Points)
	points := make([]Anchor, n)
	for i, a := range sp.Points {
		j := n - 1 - i
		if sp.Closed {
			j = (n - i) % n
		}
		points[j] = a.Clone().reverse()
	}
	return Subpath{points, sp.Closed}
}

// segments returns the cubic segments of the subpath, including the closing segment of closed subpaths when it has non-zero length or handles.
func (sp Subpath) segments() []Bezier {
	n := len(sp.Points)
	if n < 2 {
		return nil
	}
	m := n - 1
	if sp.Closed {
		m = n
	}
	segs := make([]Bezier, 0, m)
	for i := 0; i < m; i++ {
		a, b := sp.Points[i], sp.Points[(i+1)%n]
		if i == n-1 && a.Pos().Equals(b.Pos()) && a.Out == nil && b.In == nil {
			break
		}
		segs = append(segs, Bezier{a.Pos(), a.OutPos(), b.InPos(), b.Pos()})
	}
	return segs
}

// isStraight returns true if the segment from a to b has no handles.
func isStraight(a, b Anchor) bool {
	return (a.Out == nil || a.Out.IsZero()) && (b.In == nil || b.In.IsZero())
}

// positions returns the anchor positions.
func (sp Subpath) positions() []Point {
	ps := make([]Point, len(sp.Points))
	for i, a := range sp.Points {
		ps[i] = a.Pos()
	}
	return ps
}

////////////////////////////////////////////////////////////////

// Path is an editable vector path. The primary contour is embedded, further contours such as holes are held in Compound. Editing operations return a new path and never modify their receiver, so a path is safe for concurrent read-only use.
type Path struct {
	Subpath
	Compound  []Subpath `json:"compound,omitempty"`
	Fill      Fill      `json:"fill"`
	Stroke    Stroke    `json:"stroke"`
	Transform Matrix    `json:"transform"`
}

// NewPath returns a path with the given anchors and default paint.
func NewPath(points []Anchor, closed bool) *Path {
	p := &Path{
		Subpath:   Subpath{Points: points, Closed: closed},
		Fill:      DefaultFill,
		Stroke:    DefaultStroke,
		Transform: Identity,
	}
	for i := range p.Points {
		p.Points[i].Kind = p.Points[i].inferKind()
	}
	return p
}

// FromPolygon returns a path through the given points without handles.
func FromPolygon(closed bool, ps ...Point) *Path {
	points := make([]Anchor, len(ps))
	for i, q := range ps {
		points[i] = Pt(q.X, q.Y)
	}
	return NewPath(points, closed)
}

// Empty returns true if the path has no anchors.
func (p *Path) Empty() bool {
	for _, sp := range p.Subpaths() {
		if 0 < len(sp.Points) {
			return false
		}
	}
	return true
}

// Len returns the number of anchors in all subpaths.
func (p *Path) Len() int {
	n := 0
	for _, sp := range p.Subpaths() {
		n += len(sp.Points)
	}
	return n
}

// Subpaths returns the primary contour followed by the compound contours.
func (p *Path) Subpaths() []Subpath {
	subs := make([]Subpath, 0, 1+len(p.Compound))
	if 0 < len(p.Points) || len(p.Compound) == 0 {
		subs = append(subs, p.Subpath)
	}
	return append(subs, p.Compound...)
}

// withSubpaths returns a path with the paint and transform of p and the given contours.
func (p *Path) withSubpaths(subs []Subpath) *Path {
	q := &Path{
		Fill:      p.Fill,
		Stroke:    p.Stroke,
		Transform: p.Transform,
	}
	q.Stroke.DashArray = append([]float64(nil), p.Stroke.DashArray...)
	if 0 < len(subs) {
		q.Subpath = subs[0]
		if 1 < len(subs) {
			q.Compound = subs[1:]
		}
	}
	return q
}

// mapSubpaths returns a path with f applied to every contour.
func (p *Path) mapSubpaths(f func(Subpath) Subpath) *Path {
	subs := p.Subpaths()
	out := make([]Subpath, len(subs))
	for i, sp := range subs {
		out[i] = f(sp)
	}
	return p.withSubpaths(out)
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	return p.mapSubpaths(Subpath.Clone)
}

// Equals returns true if both paths have the same contours with tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	ps, qs := p.Subpaths(), q.Subpaths()
	if len(ps) != len(qs) {
		return false
	}
	for i := range ps {
		if ps[i].Closed != qs[i].Closed || len(ps[i].Points) != len(qs[i].Points) {
			return false
		}
		for j := range ps[i].Points {
			if !ps[i].Points[j].Equals(qs[i].Points[j]) {
				return false
			}
		}
	}
	return true
}

// Commands returns the drawing commands of all contours.
func (p *Path) Commands() Commands {
	var cs Commands
	for _, sp := range p.Subpaths() {
		cs = append(cs, sp.Commands()...)
	}
	return cs
}

// Data returns the path data with numbers at prec decimals.
func (p *Path) Data(prec int) string {
	return p.Commands().Serialize(prec)
}

func (p *Path) String() string {
	return p.Data(DefaultPrecision)
}

// Append returns a path holding the contours of p followed by those of q, keeping the paint of p.
func (p *Path) Append(q *Path) *Path {
	subs := p.Clone().Subpaths()
	for _, sp := range q.Subpaths() {
		if 0 < len(sp.Points) {
			subs = append(subs, sp.Clone())
		}
	}
	return p.withSubpaths(subs)
}

////////////////////////////////////////////////////////////////

// FromPoints returns the drawing commands for a contour of anchors. Segments between anchors without handles become LineTo and all others CubeTo. A closed contour ends with a ClosePath, preceded by the closing segment when it is curved.
func FromPoints(points []Anchor, closed bool) Commands {
	if len(points) == 0 {
		return Commands{}
	}
	cs := make(Commands, 0, len(points)+2)
	cs = append(cs, MoveTo(points[0].X, points[0].Y))
	segment := func(a, b Anchor) {
		if isStraight(a, b) {
			cs = append(cs, LineTo(b.X, b.Y))
			return
		}
		cp1, cp2 := a.OutPos(), b.InPos()
		cs = append(cs, CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, b.X, b.Y))
	}
	for i := 1; i < len(points); i++ {
		segment(points[i-1], points[i])
	}
	if closed {
		last, first := points[len(points)-1], points[0]
		if 1 < len(points) && !isStraight(last, first) {
			segment(last, first)
		}
		cs = append(cs, Close())
	}
	return cs
}

// ToPath converts the commands into a path of anchors. CubeTo sets the outgoing handle of the previous anchor and the incoming handle of the new anchor, QuadTo is raised to a cubic, and ArcTo is expanded into cubic segments. A contour whose last anchor coincides with its first when closed has both folded into one anchor. Each MoveTo starts a new contour.
func (cs Commands) ToPath() *Path {
	var subs []Subpath
	var cur Subpath
	var start Point
	flush := func() {
		if 0 < len(cur.Points) {
			subs = append(subs, cur)
		}
		cur = Subpath{}
	}
	last := func() *Anchor {
		if len(cur.Points) == 0 {
			// drawing after ClosePath continues from the subpath start
			cur.Points = append(cur.Points, Pt(start.X, start.Y))
		}
		return &cur.Points[len(cur.Points)-1]
	}
	cubeTo := func(cp1, cp2, end Point) {
		prev := last()
		if out := cp1.Sub(prev.Pos()); !out.IsZero() {
			prev.Out = &out
		}
		a := Pt(end.X, end.Y)
		if in := cp2.Sub(end); !in.IsZero() {
			a.In = &in
		}
		cur.Points = append(cur.Points, a)
	}

	for _, c := range cs.ToAbsolute() {
		end := Point{c.X, c.Y}
		switch c.Cmd {
		case MoveToCmd:
			flush()
			start = end
			cur.Points = append(cur.Points, Pt(end.X, end.Y))
		case LineToCmd:
			last()
			cur.Points = append(cur.Points, Pt(end.X, end.Y))
		case QuadToCmd:
			p0 := last().Pos()
			cp1, cp2 := QuadraticToCubic(p0, Point{c.X1, c.Y1}, end)
			cubeTo(cp1, cp2, end)
		case CubeToCmd:
			cubeTo(Point{c.X1, c.Y1}, Point{c.X2, c.Y2}, end)
		case ArcToCmd:
			p0 := last().Pos()
			beziers := EllipticalArcToBezier(p0, c.Rx, c.Ry, c.Rot, c.Large, c.Sweep, end)
			if len(beziers) == 0 && !p0.Equals(end) {
				beziers = []Bezier{lineToBezier(p0, end)}
			}
			for _, b := range beziers {
				if b.Straight() {
					cubeTo(b[0], b[3], b[3])
				} else {
					cubeTo(b[1], b[2], b[3])
				}
			}
		case CloseCmd:
			if len(cur.Points) == 0 {
				continue
			}
			cur.Closed = true
			if n := len(cur.Points); 1 < n && cur.Points[n-1].Pos().Equals(cur.Points[0].Pos()) {
				cur.Points[0].In = cur.Points[n-1].In
				cur.Points = cur.Points[:n-1]
			}
			flush()
		}
	}
	flush()

	p := &Path{Fill: DefaultFill, Stroke: DefaultStroke, Transform: Identity}
	for i := range subs {
		for j := range subs[i].Points {
			subs[i].Points[j].Kind = subs[i].Points[j].inferKind()
		}
	}
	if 0 < len(subs) {
		p.Subpath = subs[0]
		if 1 < len(subs) {
			p.Compound = subs[1:]
		}
	}
	return p
}

////////////////////////////////////////////////////////////////

func (p *Path) checkIndex(index int) error {
	if index < 0 || len(p.Points) <= index {
		return invalidArgumentf("point index %d out of range [0,%d)", index, len(p.Points))
	}
	return nil
}

// AddPoint returns a path with the anchor inserted at index of the primary contour, an index equal to the number of anchors appends.
func (p *Path) AddPoint(index int, a Anchor) (*Path, error) {
	if index < 0 || len(p.Points) < index {
		return nil, invalidArgumentf("point index %d out of range [0,%d]", index, len(p.Points))
	}
	q := p.Clone()
	q.Points = append(q.Points[:index], append([]Anchor{a.Clone()}, q.Points[index:]...)...)
	return q, nil
}

// RemovePoint returns a path without the anchor at index of the primary contour.
func (p *Path) RemovePoint(index int) (*Path, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	q := p.Clone()
	q.Points = append(q.Points[:index], q.Points[index+1:]...)
	return q, nil
}

// MovePoint returns a path with the anchor at index of the primary contour moved to (x,y). Its handles move along.
func (p *Path) MovePoint(index int, x, y float64) (*Path, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	q := p.Clone()
	q.Points[index].X, q.Points[index].Y = x, y
	return q, nil
}

// SetHandles returns a path with the handles of the anchor at index of the primary contour replaced, with nil removing a handle. The kind is inferred from the new handles.
func (p *Path) SetHandles(index int, in, out *Point) (*Path, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	q := p.Clone()
	a := &q.Points[index]
	a.In, a.Out = nil, nil
	if in != nil {
		h := *in
		a.In = &h
	}
	if out != nil {
		h := *out
		a.Out = &h
	}
	a.Kind = a.inferKind()
	return q, nil
}

// SetKind returns a path with the anchor at index of the primary contour converted to kind k. Corner removes the handles, Smooth and Symmetric align the incoming handle with the outgoing one.
func (p *Path) SetKind(index int, k PointKind) (*Path, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	} else if k < Corner || Disconnected < k {
		return nil, invalidArgumentf("bad point kind %d", int(k))
	}
	q := p.Clone()
	q.Points[index] = q.Points[index].withKind(k)
	return q, nil
}

// SetCornerRadius returns a path with the corner radius of the anchor at index of the primary contour set, to be applied by ApplyCornerRadii.
func (p *Path) SetCornerRadius(index int, radius float64) (*Path, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	} else if radius < 0.0 {
		return nil, invalidArgumentf("negative corner radius %g", radius)
	}
	q := p.Clone()
	q.Points[index].CornerRadius = radius
	return q, nil
}

// SetClosed returns a path with the primary contour opened or closed.
func (p *Path) SetClosed(closed bool) *Path {
	q := p.Clone()
	q.Closed = closed
	return q
}

// Reverse returns the path with all contours running in the opposite direction.
func (p *Path) Reverse() *Path {
	return p.mapSubpaths(Subpath.Reverse)
}

// Translate returns the path with its geometry moved by (dx,dy).
func (p *Path) Translate(dx, dy float64) *Path {
	return p.Transformed(Identity.Translate(dx, dy))
}

// Transformed returns the path with its geometry transformed by m. The Transform field is left as is.
func (p *Path) Transformed(m Matrix) *Path {
	return p.mapSubpaths(func(sp Subpath) Subpath {
		q := Subpath{make([]Anchor, len(sp.Points)), sp.Closed}
		for i, a := range sp.Points {
			q.Points[i] = a.Transform(m)
		}
		return q
	})
}

// Baked returns the path with its Transform applied to the geometry and reset to the identity.
func (p *Path) Baked() *Path {
	if p.Transform.IsIdentity() {
		q := p.Clone()
		q.Transform = Identity
		return q
	}
	q := p.Transformed(p.Transform)
	q.Transform = Identity
	return q
}
