package vecpath

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// BooleanOp is a boolean operation on filled areas.
type BooleanOp int

// see BooleanOp
const (
	UnionOp     BooleanOp = iota // area covered by any path
	SubtractOp                   // area of the first path not covered by any other
	IntersectOp                  // area covered by all paths
	ExcludeOp                    // area covered by an odd number of paths
)

func (op BooleanOp) String() string {
	switch op {
	case UnionOp:
		return "union"
	case SubtractOp:
		return "subtract"
	case IntersectOp:
		return "intersect"
	case ExcludeOp:
		return "exclude"
	}
	return "invalid"
}

// MarshalText implements encoding.TextMarshaler.
func (op BooleanOp) MarshalText() ([]byte, error) {
	if op < UnionOp || ExcludeOp < op {
		return nil, invalidArgumentf("bad boolean operation %d", int(op))
	}
	return []byte(op.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *BooleanOp) UnmarshalText(b []byte) error {
	switch string(b) {
	case "union":
		*op = UnionOp
	case "subtract":
		*op = SubtractOp
	case "intersect":
		*op = IntersectOp
	case "exclude":
		*op = ExcludeOp
	default:
		return invalidArgumentf("bad boolean operation %q", string(b))
	}
	return nil
}

// fills returns true if a point is in the result, given whether it is filled by each input.
func (op BooleanOp) fills(inside []bool) bool {
	switch op {
	case UnionOp:
		for _, in := range inside {
			if in {
				return true
			}
		}
		return false
	case SubtractOp:
		if !inside[0] {
			return false
		}
		for _, in := range inside[1:] {
			if in {
				return false
			}
		}
		return true
	case IntersectOp:
		for _, in := range inside {
			if !in {
				return false
			}
		}
		return true
	case ExcludeOp:
		n := 0
		for _, in := range inside {
			if in {
				n++
			}
		}
		return n%2 == 1
	}
	return false
}

// BooleanResult holds the paths resulting from a boolean operation, there may be any number of them.
type BooleanResult struct {
	Paths []*Path `json:"paths"`
}

// Area returns the summed area of all result paths.
func (r BooleanResult) Area() float64 {
	a := 0.0
	for _, p := range r.Paths {
		a += p.Area()
	}
	return a
}

// Union returns the area covered by any of the paths.
func Union(paths ...*Path) (BooleanResult, error) {
	return Combine(UnionOp, paths...)
}

// Subtract returns the area of the first path not covered by any of the others.
func Subtract(paths ...*Path) (BooleanResult, error) {
	return Combine(SubtractOp, paths...)
}

// Intersect returns the area covered by all paths.
func Intersect(paths ...*Path) (BooleanResult, error) {
	return Combine(IntersectOp, paths...)
}

// Exclude returns the area covered by an odd number of paths.
func Exclude(paths ...*Path) (BooleanResult, error) {
	return Combine(ExcludeOp, paths...)
}

// Combine applies the boolean operation to the filled areas of two or more paths. Each path is evaluated with its own transform and fill rule, and open contours are implicitly closed. Curves are flattened, so the result consists of polygons. Each resulting path is one counter clockwise outer contour with its clockwise holes as compound contours, filled with the nonzero rule and painted like the first path.
func Combine(op BooleanOp, paths ...*Path) (BooleanResult, error) {
	if op < UnionOp || ExcludeOp < op {
		return BooleanResult{}, invalidArgumentf("bad boolean operation %d", int(op))
	} else if len(paths) < 2 {
		return BooleanResult{}, insufficientInputf("boolean %v needs at least 2 paths, got %d", op, len(paths))
	}
	for i, p := range paths {
		if p == nil {
			return BooleanResult{}, invalidArgumentf("path %d is nil", i)
		}
	}

	baked := make([]*Path, len(paths))
	var bounds Rect
	first := true
	for i, p := range paths {
		baked[i] = p.Baked()
		if !baked[i].Empty() {
			if r := baked[i].FastBounds(); first {
				bounds, first = r, false
			} else {
				bounds = bounds.Add(r)
			}
		}
	}
	scale := math.Max(bounds.W, bounds.H)
	if first || scale == 0.0 {
		return BooleanResult{}, nil
	}

	// powers of two keep integer and dyadic coordinates on the grid
	b := &booleanBuilder{
		op:    op,
		grid:  math.Exp2(math.Floor(math.Log2(scale * 1e-9))),
		delta: math.Exp2(math.Floor(math.Log2(scale * 1e-7))),
	}
	tolerance := math.Min(Tolerance, scale*1e-4)
	for _, p := range baked {
		b.addInput(p, tolerance)
	}
	b.splitEdges()
	b.classify()
	rings := b.chain()
	return BooleanResult{b.assemble(rings, paths[0])}, nil
}

// CombineBatch applies the boolean operation to every group of paths in parallel. It returns the results in the order of the groups, or the first error encountered.
func CombineBatch(ctx context.Context, op BooleanOp, groups [][]*Path) ([]BooleanResult, error) {
	results := make([]BooleanResult, len(groups))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Combine(op, group...)
			if err != nil {
				return fmt.Errorf("group %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

////////////////////////////////////////////////////////////////

type booleanInput struct {
	rings    []Polyline
	fillRule FillRule
}

type booleanEdge struct {
	a, b   Point
	splits []Point
}

type booleanBuilder struct {
	op          BooleanOp
	grid, delta float64

	inputs []booleanInput
	edges  []booleanEdge // input edges
	result [][2]Point    // boundary edges oriented with the result on the left
}

func (b *booleanBuilder) snap(p Point) Point {
	return Point{snap(p.X, b.grid), snap(p.Y, b.grid)}
}

func (b *booleanBuilder) addInput(p *Path, tolerance float64) {
	in := booleanInput{fillRule: p.Fill.Rule}
	for _, pl := range p.polylines(tolerance) {
		ring := Polyline{Closed: true}
		for _, q := range pl.Points {
			q = b.snap(q)
			if len(ring.Points) == 0 || ring.Points[len(ring.Points)-1] != q {
				ring.Points = append(ring.Points, q)
			}
		}
		for 1 < len(ring.Points) && ring.Points[0] == ring.Points[len(ring.Points)-1] {
			ring.Points = ring.Points[:len(ring.Points)-1]
		}
		if len(ring.Points) < 3 {
			Logger().Debug("boolean input contour dropped, too few points", "points", len(ring.Points))
			continue
		}
		in.rings = append(in.rings, ring)
		n := len(ring.Points)
		for i := 0; i < n; i++ {
			b.edges = append(b.edges, booleanEdge{a: ring.Points[i], b: ring.Points[(i+1)%n]})
		}
	}
	b.inputs = append(b.inputs, in)
}

// splitEdges records the intersections between all input edges as split points, using a sweep over x to prune pairs.
func (b *booleanBuilder) splitEdges() {
	sort.SliceStable(b.edges, func(i, j int) bool {
		return math.Min(b.edges[i].a.X, b.edges[i].b.X) < math.Min(b.edges[j].a.X, b.edges[j].b.X)
	})
	for i := range b.edges {
		ei := &b.edges[i]
		maxX := math.Max(ei.a.X, ei.b.X)
		minY, maxY := math.Min(ei.a.Y, ei.b.Y), math.Max(ei.a.Y, ei.b.Y)
		for j := i + 1; j < len(b.edges); j++ {
			ej := &b.edges[j]
			if maxX < math.Min(ej.a.X, ej.b.X) {
				break
			} else if math.Max(ej.a.Y, ej.b.Y) < minY || maxY < math.Min(ej.a.Y, ej.b.Y) {
				continue
			}
			b.intersect(ei, ej)
		}
	}
}

func (b *booleanBuilder) intersect(e, f *booleanEdge) {
	de, df := e.b.Sub(e.a), f.b.Sub(f.a)
	le, lf := de.Length(), df.Length()
	if math.Abs(de.PerpDot(df)) <= 1e-12*le*lf {
		// parallel, split at the end points of the other edge if collinear and overlapping
		if b.grid < distanceToLine(f.a, e.a, e.b) {
			return
		}
		e.addSplit(f.a)
		e.addSplit(f.b)
		f.addSplit(e.a)
		f.addSplit(e.b)
		return
	}

	te, tf, _ := intersectionSegmentSegment(e.a, e.b, f.a, f.b)
	const eps = 1e-9
	if te < -eps || 1.0+eps < te || tf < -eps || 1.0+eps < tf {
		return
	}
	q := b.snap(e.a.Add(de.Mul(te)))
	e.addSplit(q)
	f.addSplit(q)
}

// addSplit adds q as a split point if it lies strictly inside the edge.
func (e *booleanEdge) addSplit(q Point) {
	if q == e.a || q == e.b {
		return
	}
	d := e.b.Sub(e.a)
	t := q.Sub(e.a).Dot(d) / d.Dot(d)
	if t <= 0.0 || 1.0 <= t {
		return
	}
	e.splits = append(e.splits, q)
}

// classify splits the input edges into sub-edges, removes duplicates, and keeps those separating the result from its complement.
func (b *booleanBuilder) classify() {
	type key struct{ a, b Point }
	seen := map[key]bool{}
	inside := make([]bool, len(b.inputs))
	for _, e := range b.edges {
		d := e.b.Sub(e.a)
		sort.Slice(e.splits, func(i, j int) bool {
			return e.splits[i].Sub(e.a).Dot(d) < e.splits[j].Sub(e.a).Dot(d)
		})
		pts := append(append([]Point{e.a}, e.splits...), e.b)
		for k := 1; k < len(pts); k++ {
			p0, p1 := pts[k-1], pts[k]
			if p0 == p1 {
				continue
			}
			k0 := key{p0, p1}
			if p1.X < p0.X || p1.X == p0.X && p1.Y < p0.Y {
				k0 = key{p1, p0}
			}
			if seen[k0] {
				continue
			}
			seen[k0] = true

			dir := p1.Sub(p0)
			mid := p0.Interpolate(p1, 0.5)
			offset := dir.Rot90CCW().Norm(math.Min(b.delta, dir.Length()/4.0))
			inLeft := b.op.fills(b.insideAt(mid.Add(offset), inside))
			inRight := b.op.fills(b.insideAt(mid.Sub(offset), inside))
			if inLeft == inRight {
				continue
			} else if inLeft {
				b.result = append(b.result, [2]Point{p0, p1})
			} else {
				b.result = append(b.result, [2]Point{p1, p0})
			}
		}
	}
}

// insideAt fills inside with whether each input fills the test point.
func (b *booleanBuilder) insideAt(test Point, inside []bool) []bool {
	for i, in := range b.inputs {
		winding := 0
		for _, ring := range in.rings {
			winding += ring.Winding(test)
		}
		inside[i] = in.fillRule.Fills(winding)
	}
	return inside
}

// chain links the boundary edges into closed rings, taking the sharpest left turn at shared vertices so that rings touching at a vertex stay separate.
func (b *booleanBuilder) chain() []Polyline {
	outgoing := map[Point][]int{}
	for i, e := range b.result {
		outgoing[e[0]] = append(outgoing[e[0]], i)
	}
	used := make([]bool, len(b.result))

	var rings []Polyline
	for start := range b.result {
		if used[start] {
			continue
		}
		ring := Polyline{Closed: true}
		cur := start
		ok := true
		for {
			used[cur] = true
			e := b.result[cur]
			ring.Points = append(ring.Points, e[0])
			dirIn := e[1].Sub(e[0])

			next, bestAngle := -1, math.Inf(-1)
			for _, k := range outgoing[e[1]] {
				if used[k] && k != start {
					continue
				}
				dirOut := b.result[k][1].Sub(b.result[k][0])
				if angle := dirIn.AngleBetween(dirOut); bestAngle < angle {
					next, bestAngle = k, angle
				}
			}
			if next == -1 {
				ok = false
				break
			} else if next == start {
				break
			}
			cur = next
		}
		if !ok {
			Logger().Debug("boolean result ring dropped, open chain", "points", len(ring.Points))
			continue
		}
		ring = b.simplifyRing(ring)
		if len(ring.Points) < 3 || math.Abs(ring.SignedArea()) <= b.grid*b.grid {
			continue
		}
		rings = append(rings, ring)
	}
	return rings
}

// simplifyRing removes vertices lying on the line through their neighbours, which are left by edge splitting.
func (b *booleanBuilder) simplifyRing(ring Polyline) Polyline {
	pts := ring.Points
	for changed := true; changed && 3 <= len(pts); {
		changed = false
		for i := 0; i < len(pts) && 3 <= len(pts); i++ {
			n := len(pts)
			prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
			if distanceToLine(cur, prev, next) <= b.grid && 0.0 <= cur.Sub(prev).Dot(next.Sub(cur)) {
				pts = append(pts[:i:i], pts[i+1:]...)
				changed = true
				i--
			}
		}
	}
	ring.Points = pts
	return ring
}

// assemble attaches every hole to the smallest outer ring containing it, each outer ring with its holes becomes one path.
func (b *booleanBuilder) assemble(rings []Polyline, style *Path) []*Path {
	var outers, holes []int
	area := make([]float64, len(rings))
	for i, ring := range rings {
		area[i] = ring.SignedArea()
		if 0.0 < area[i] {
			outers = append(outers, i)
		} else {
			holes = append(holes, i)
		}
	}

	children := make(map[int][]int, len(outers))
	for _, h := range holes {
		ring := rings[h]
		p0, p1 := ring.Points[0], ring.Points[1]
		dir := p1.Sub(p0)
		test := p0.Interpolate(p1, 0.5).Add(dir.Rot90CCW().Norm(math.Min(b.delta, dir.Length()/4.0)))
		parent := -1
		for _, o := range outers {
			if rings[o].Winding(test) != 0 && (parent == -1 || area[o] < area[parent]) {
				parent = o
			}
		}
		if parent == -1 {
			Logger().Debug("boolean result hole dropped, no enclosing contour", "points", len(ring.Points))
			continue
		}
		children[parent] = append(children[parent], h)
	}

	paths := make([]*Path, 0, len(outers))
	for _, o := range outers {
		subs := []Subpath{rings[o].ToPath().Subpath}
		for _, h := range children[o] {
			subs = append(subs, rings[h].ToPath().Subpath)
		}
		p := style.withSubpaths(subs)
		p.Fill.Rule = NonZero
		p.Transform = Identity
		paths = append(paths, p)
	}
	sort.SliceStable(paths, func(i, j int) bool {
		ri, rj := paths[i].Bounds(), paths[j].Bounds()
		if ri.X != rj.X {
			return ri.X < rj.X
		}
		return ri.Y < rj.Y
	})
	return paths
}
