package vecpath

import (
	"math"
)

// Simplify reduces the number of anchors of every contour with the Ramer-Douglas-Peucker algorithm. Curved segments are flattened only to measure their deviation, so the result keeps a subset of the anchors and retains the handles of segments that are kept whole. Every removed anchor, and every point of a replaced curve, lies within tolerance of the chord replacing it. Closed contours are split at the first anchor and the anchor farthest from it. Open contours need at least 2 anchors and closed contours 3.
func (p *Path) Simplify(tolerance float64) (*Path, error) {
	if !(0.0 < tolerance) {
		return nil, invalidArgumentf("tolerance must be positive, got %g", tolerance)
	}
	subs := p.Subpaths()
	out := make([]Subpath, len(subs))
	for i, sp := range subs {
		if err := sp.checkLen(2, 3); err != nil {
			return nil, err
		}
		out[i] = sp.simplifyRDP(tolerance)
	}
	return p.withSubpaths(out), nil
}

// checkLen returns an ErrInsufficientInput if the contour has fewer anchors than required.
func (sp Subpath) checkLen(open, closed int) error {
	if !sp.Closed && len(sp.Points) < open {
		return insufficientInputf("open contour needs at least %d points, got %d", open, len(sp.Points))
	} else if sp.Closed && len(sp.Points) < closed {
		return insufficientInputf("closed contour needs at least %d points, got %d", closed, len(sp.Points))
	}
	return nil
}

func (sp Subpath) simplifyRDP(tolerance float64) Subpath {
	n := len(sp.Points)
	m := n - 1 // number of segments
	if sp.Closed {
		m = n
	}

	// samples[k] holds the flattened interior points of segment k
	samples := make([][]Point, m)
	for k := 0; k < m; k++ {
		a, b := sp.Points[k], sp.Points[(k+1)%n]
		if !isStraight(a, b) {
			pts := flattenCubicBezier(nil, Bezier{a.Pos(), a.OutPos(), b.InPos(), b.Pos()}, tolerance/10.0)
			samples[k] = pts[:len(pts)-1]
		}
	}
	pos := func(i int) Point {
		return sp.Points[i%n].Pos()
	}

	keep := make([]bool, m+1)
	keep[0], keep[m] = true, true
	type span struct{ i, j int }
	var stack []span
	if sp.Closed {
		far, farDist := 0, -1.0
		for i := 1; i < n; i++ {
			if d := Distance(pos(0), pos(i)); farDist < d {
				far, farDist = i, d
			}
		}
		keep[far] = true
		stack = append(stack, span{0, far}, span{far, m})
	} else {
		stack = append(stack, span{0, m})
	}

	for 0 < len(stack) {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.j-s.i < 2 {
			continue
		}
		a, b := pos(s.i), pos(s.j)
		dev := 0.0
		for k := s.i; k < s.j; k++ {
			if s.i < k {
				dev = math.Max(dev, distanceFromChord(pos(k), a, b))
			}
			for _, q := range samples[k] {
				dev = math.Max(dev, distanceFromChord(q, a, b))
			}
		}
		if dev <= tolerance {
			continue
		}
		split, splitDist := s.i+1, -1.0
		for k := s.i + 1; k < s.j; k++ {
			if d := distanceFromChord(pos(k), a, b); splitDist < d {
				split, splitDist = k, d
			}
		}
		keep[split] = true
		stack = append(stack, span{s.i, split}, span{split, s.j})
	}

	// rebuild, whole segments keep their handles and replaced runs become straight
	var idx []int
	for i := 0; i < n; i++ {
		if keep[i] {
			idx = append(idx, i)
		}
	}
	out := Subpath{make([]Anchor, len(idx)), sp.Closed}
	for k, i := range idx {
		out.Points[k] = sp.Points[i].Clone()
	}
	for k := range idx {
		if !sp.Closed && k == len(idx)-1 {
			break
		}
		i := idx[k]
		j := m
		if k+1 < len(idx) {
			j = idx[k+1]
		}
		if j-i != 1 {
			out.Points[k].Out = nil
			out.Points[(k+1)%len(idx)].In = nil
		}
	}
	for k := range out.Points {
		out.Points[k].Kind = out.Points[k].inferKind()
	}
	return out
}

// distanceFromChord returns the distance from q to the chord a-b.
func distanceFromChord(q, a, b Point) float64 {
	d, _ := distanceToSegment(q, a, b)
	return d
}

// Flatten returns the path with every curved segment replaced by segmentsPerCurve straight segments, evaluated at i/segmentsPerCurve. The result has no handles.
func (p *Path) Flatten(segmentsPerCurve int) *Path {
	if segmentsPerCurve < 1 {
		segmentsPerCurve = 1
	}
	return p.mapSubpaths(func(sp Subpath) Subpath {
		pl := Polyline{Closed: sp.Closed}
		if 0 < len(sp.Points) {
			pl.Points = append(pl.Points, sp.Points[0].Pos())
		}
		for _, b := range sp.segments() {
			if b.Straight() {
				pl.Points = append(pl.Points, b[3])
				continue
			}
			for i := 1; i < segmentsPerCurve; i++ {
				pl.Points = append(pl.Points, b.Point(float64(i)/float64(segmentsPerCurve)))
			}
			pl.Points = append(pl.Points, b[3])
		}
		if sp.Closed && 1 < len(pl.Points) && pl.Points[0].Equals(pl.Points[len(pl.Points)-1]) {
			pl.Points = pl.Points[:len(pl.Points)-1]
		}
		return pl.ToPath().Subpath
	})
}

// FlattenAdaptive returns the path with every curved segment recursively subdivided until it deviates at most tolerance from its chords. A non-positive tolerance uses Tolerance. The result has no handles.
func (p *Path) FlattenAdaptive(tolerance float64) *Path {
	if !(0.0 < tolerance) {
		tolerance = Tolerance
	}
	return p.mapSubpaths(func(sp Subpath) Subpath {
		return sp.polyline(tolerance).ToPath().Subpath
	})
}

// Gridsnap returns the path with all anchors and handles snapped to a grid with the given spacing. Snapping reduces numerical issues in e.g. boolean operations.
func (p *Path) Gridsnap(spacing float64) *Path {
	if !(0.0 < spacing) {
		return p.Clone()
	}
	snapPoint := func(q Point) Point {
		return Point{snap(q.X, spacing), snap(q.Y, spacing)}
	}
	return p.mapSubpaths(func(sp Subpath) Subpath {
		q := sp.Clone()
		for i, a := range q.Points {
			pos := snapPoint(a.Pos())
			if a.In != nil {
				in := snapPoint(a.InPos()).Sub(pos)
				q.Points[i].In = &in
			}
			if a.Out != nil {
				out := snapPoint(a.OutPos()).Sub(pos)
				q.Points[i].Out = &out
			}
			q.Points[i].X, q.Points[i].Y = pos.X, pos.Y
		}
		return q
	})
}

////////////////////////////////////////////////////////////////

// SimplifyVisvalingamWhyatt flattens the path and removes points whose triangle with their neighbours has an area below tolerance, smallest areas first. Contours that collapse are dropped.
func (p *Path) SimplifyVisvalingamWhyatt(tolerance float64) (*Path, error) {
	if !(0.0 < tolerance) {
		return nil, invalidArgumentf("tolerance must be positive, got %g", tolerance)
	}
	s := &visvalingamWhyatt{}
	var out []Subpath
	for _, pl := range p.polylines(Tolerance) {
		if q, ok := s.simplify(pl, tolerance); ok {
			out = append(out, q.ToPath().Subpath)
		}
	}
	return p.withSubpaths(out), nil
}

type itemVW struct {
	Point
	area       float64
	prev, next int32 // indices into items
	heapIdx    int32
}

type visvalingamWhyatt struct {
	heap  heapVW
	items []itemVW
}

func (s *visvalingamWhyatt) simplify(pl Polyline, tolerance float64) (Polyline, bool) {
	computeArea := func(a, b, c Point) float64 {
		return math.Abs(a.PerpDot(b) + b.PerpDot(c) + c.PerpDot(a))
	}
	tolerance *= 2.0 // save on 0.5 multiply in computeArea

	n := len(pl.Points)
	closed := pl.Closed
	if !closed && n < 3 {
		return pl, 2 <= n
	} else if closed && n < 3 {
		return pl, false
	}

	s.items = s.items[:0]
	s.heap.Reset(n)
	for i, cur := range pl.Points {
		idxPrev, idxNext := int32(i-1), int32(i+1)
		if closed {
			idxPrev, idxNext = int32((i+n-1)%n), int32((i+1)%n)
		} else if i == n-1 {
			idxNext = -1
		}
		area := math.NaN()
		if closed || 0 < i && i < n-1 {
			area = computeArea(pl.Points[idxPrev], cur, pl.Points[idxNext])
		}
		s.items = append(s.items, itemVW{
			Point: cur,
			area:  area,
			prev:  idxPrev,
			next:  idxNext,
		})
	}
	for i := range s.items {
		if !math.IsNaN(s.items[i].area) {
			s.heap.Append(&s.items[i])
		}
	}
	s.heap.Init()

	first := int32(0)
	for 0 < len(s.heap) {
		item := s.heap.Pop()
		if tolerance <= item.area {
			break
		} else if closed && s.items[item.prev].prev == item.next {
			// fewer than 3 points left
			return Polyline{}, false
		}

		// remove current point from linked list, this invalidates those items in the queue
		s.items[item.prev].next = item.next
		s.items[item.next].prev = item.prev
		if item == &s.items[first] {
			first = item.next
		}

		// update previous point
		if prev := &s.items[item.prev]; prev.prev != -1 && !math.IsNaN(prev.area) {
			prev.area = computeArea(s.items[prev.prev].Point, prev.Point, s.items[prev.next].Point)
			s.heap.Fix(int(prev.heapIdx))
		}

		// update next point
		if next := &s.items[item.next]; next.next != -1 && !math.IsNaN(next.area) {
			next.area = computeArea(s.items[next.prev].Point, next.Point, s.items[next.next].Point)
			s.heap.Fix(int(next.heapIdx))
		}
	}

	q := Polyline{Closed: closed}
	q.Points = append(q.Points, s.items[first].Point)
	for i := s.items[first].next; i != -1 && i != first; i = s.items[i].next {
		q.Points = append(q.Points, s.items[i].Point)
	}
	return q, true
}

type heapVW []*itemVW

func (q *heapVW) Reset(capacity int) {
	if cap(*q) < capacity {
		*q = heapVW(make([]*itemVW, 0, capacity))
	} else {
		*q = (*q)[:0]
	}
}

func (q heapVW) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *heapVW) Append(item *itemVW) {
	item.heapIdx = int32(len(*q))
	*q = append(*q, item)
}

func (q *heapVW) Pop() *itemVW {
	n := len(*q) - 1
	q.swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	(*q) = (*q)[:n]
	return item
}

func (q heapVW) Fix(i int) {
	if !q.down(i, len(q)) {
		q.up(i)
	}
}

func (q heapVW) less(i, j int) bool {
	return q[i].area < q[j].area
}

func (q heapVW) swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIdx, q[j].heapIdx = int32(i), int32(j)
}

// from container/heap
func (q heapVW) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q heapVW) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
	return i0 < i
}
