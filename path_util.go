package vecpath

import (
	"math"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// Lerp linearly interpolates between a (t=0) and b (t=1).
func Lerp(a, b Point, t float64) Point {
	return a.Interpolate(b, t)
}

// Normalize returns v scaled to unit length, or the zero vector if v has zero length.
func Normalize(v Point) Point {
	return v.Norm(1.0)
}

// Perpendicular returns v rotated by 90 degrees counter clockwise.
func Perpendicular(v Point) Point {
	return v.Rot90CCW()
}

// RotatePoint rotates p by theta radians counter clockwise around center.
func RotatePoint(p, center Point, theta float64) Point {
	return p.Rot(theta, center)
}

////////////////////////////////////////////////////////////////

// Bezier is a cubic Bézier segment given by its start point, two control points, and end point.
type Bezier [4]Point

// Point evaluates the curve at t ∈ [0,1].
func (b Bezier) Point(t float64) Point {
	return BezierPoint(b[0], b[1], b[2], b[3], t)
}

// Derivative evaluates the first derivative of the curve at t ∈ [0,1].
func (b Bezier) Derivative(t float64) Point {
	return BezierDerivative(b[0], b[1], b[2], b[3], t)
}

// Split splits the curve at t into two full cubic segments.
func (b Bezier) Split(t float64) (Bezier, Bezier) {
	return SplitBezier(b[0], b[1], b[2], b[3], t)
}

// Reverse returns the same curve running in the opposite direction.
func (b Bezier) Reverse() Bezier {
	return Bezier{b[3], b[2], b[1], b[0]}
}

// Straight returns true if the control points lie on the chord, i.e. the curve is a line.
func (b Bezier) Straight() bool {
	d := b[3].Sub(b[0])
	if d.IsZero() {
		return b[1].Equals(b[0]) && b[2].Equals(b[0])
	}
	return equal(d.PerpDot(b[1].Sub(b[0])), 0.0) && equal(d.PerpDot(b[2].Sub(b[0])), 0.0)
}

// BezierPoint evaluates the cubic Bézier p0,p1,p2,p3 at t using the Bernstein polynomials.
func BezierPoint(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3.0 * mt * mt * t
	c := 3.0 * mt * t * t
	d := t * t * t
	return Point{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// BezierDerivative evaluates the first derivative of the cubic Bézier p0,p1,p2,p3 at t.
func BezierDerivative(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1.0 - t
	a := 3.0 * mt * mt
	b := 6.0 * mt * t
	c := 3.0 * t * t
	return p1.Sub(p0).Mul(a).Add(p2.Sub(p1).Mul(b)).Add(p3.Sub(p2).Mul(c))
}

// SplitBezier splits the cubic Bézier at t using de Casteljau's algorithm, the first segment runs over [0,t] and the second over [t,1].
func SplitBezier(p0, p1, p2, p3 Point, t float64) (Bezier, Bezier) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return Bezier{q0, q1, q2, q3}, Bezier{r0, r1, r2, r3}
}

// QuadraticToCubic returns the control points of the cubic Bézier equal to the quadratic Bézier p0,p1,p2, using the 2/3 rule.
func QuadraticToCubic(p0, p1, p2 Point) (Point, Point) {
	c1 := p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	c2 := p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	return c1, c2
}

// lineToBezier returns a straight cubic from p0 to p1.
func lineToBezier(p0, p1 Point) Bezier {
	return Bezier{p0, p0.Interpolate(p1, 1.0/3.0), p0.Interpolate(p1, 2.0/3.0), p1}
}

// ArcToBezier approximates the elliptical arc with center (cx,cy) and radii rx and ry running from angle theta0 to theta1 (radians, positive is from the x-axis towards the y-axis) by cubic Béziers. The arc is split into pieces of at most 90 degrees, each using the control point distance k = 4/3*tan(Δ/4).
func ArcToBezier(cx, cy, rx, ry, theta0, theta1 float64) []Bezier {
	return ellipseToBeziers(Point{cx, cy}, rx, ry, 0.0, theta0, theta1)
}

func ellipseToBeziers(c Point, rx, ry, phi, theta0, theta1 float64) []Bezier {
	dtheta := theta1 - theta0
	if equal(dtheta, 0.0) || math.IsNaN(dtheta) {
		return nil
	}
	n := int(math.Ceil(math.Abs(dtheta)/(math.Pi/2.0) - 1e-9))
	if n < 1 {
		n = 1
	}
	delta := dtheta / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4.0)

	sinphi, cosphi := math.Sincos(phi)
	pos := func(theta float64) Point {
		sintheta, costheta := math.Sincos(theta)
		x, y := rx*costheta, ry*sintheta
		return Point{c.X + cosphi*x - sinphi*y, c.Y + sinphi*x + cosphi*y}
	}
	deriv := func(theta float64) Point {
		sintheta, costheta := math.Sincos(theta)
		x, y := -rx*sintheta, ry*costheta
		return Point{cosphi*x - sinphi*y, sinphi*x + cosphi*y}
	}

	beziers := make([]Bezier, 0, n)
	start := pos(theta0)
	for i := 0; i < n; i++ {
		a0 := theta0 + float64(i)*delta
		a1 := a0 + delta
		if i == n-1 {
			a1 = theta1
		}
		end := pos(a1)
		cp1 := start.Add(deriv(a0).Mul(k))
		cp2 := end.Sub(deriv(a1).Mul(k))
		beziers = append(beziers, Bezier{start, cp1, cp2, end})
		start = end
	}
	return beziers
}

// EllipticalArcToBezier approximates the SVG arc from start to end with radii rx and ry, x-axis rotation rot in degrees, and the large-arc and sweep flags by cubic Béziers. Radii that are too small are scaled up, and zero radii give a straight segment as the SVG specification prescribes.
func EllipticalArcToBezier(start Point, rx, ry, rot float64, large, sweep bool, end Point) []Bezier {
	if start.Equals(end) {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if equal(rx, 0.0) || equal(ry, 0.0) {
		return []Bezier{lineToBezier(start, end)}
	}
	phi := rot * math.Pi / 180.0
	cx, cy, rx, ry, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)
	beziers := ellipseToBeziers(Point{cx, cy}, rx, ry, phi, theta0, theta1)
	if 0 < len(beziers) {
		// pin the end points to avoid drift from the trigonometric round trip
		beziers[0][0] = start
		beziers[len(beziers)-1][3] = end
	}
	return beziers
}

// arcToCenter changes between the SVG arc format to the center and angles format, phi is in radians and so are the returned angles. The radii are returned corrected if they were too small to span the end points.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// reduce rounding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Atan2(uy, ux)
	delta := angleNorm(math.Atan2(vy, vx) - theta)
	if !sweep && 0.0 < delta {
		delta -= 2.0 * math.Pi
	}
	if sweep && equal(delta, 0.0) {
		delta = 2.0 * math.Pi
	}
	return cx, cy, rx, ry, theta, theta + delta
}

////////////////////////////////////////////////////////////////

// cubicBezierExtrema returns the parameters in (0,1) where the derivative of one axis vanishes, given the axis coordinates of the four points. Missing extrema are NaN.
func cubicBezierExtrema(p0, p1, p2, p3 float64) (float64, float64) {
	a := -p0 + 3.0*p1 - 3.0*p2 + p3
	b := 2.0 * (p0 - 2.0*p1 + p2)
	c := p1 - p0
	t1, t2 := solveQuadraticFormula(a, b, c)
	if !(0.0 < t1 && t1 < 1.0) {
		t1 = math.NaN()
	}
	if !(0.0 < t2 && t2 < 1.0) {
		t2 = math.NaN()
	}
	return t1, t2
}

// cubicBezierBounds returns the exact bounding box of the cubic Bézier.
func cubicBezierBounds(p0, p1, p2, p3 Point) Rect {
	xmin, xmax := math.Min(p0.X, p3.X), math.Max(p0.X, p3.X)
	ymin, ymax := math.Min(p0.Y, p3.Y), math.Max(p0.Y, p3.Y)
	tx1, tx2 := cubicBezierExtrema(p0.X, p1.X, p2.X, p3.X)
	ty1, ty2 := cubicBezierExtrema(p0.Y, p1.Y, p2.Y, p3.Y)
	for _, t := range []float64{tx1, tx2} {
		if !math.IsNaN(t) {
			x := BezierPoint(p0, p1, p2, p3, t).X
			xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		}
	}
	for _, t := range []float64{ty1, ty2} {
		if !math.IsNaN(t) {
			y := BezierPoint(p0, p1, p2, p3, t).Y
			ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		}
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// cubicBezierLength returns the arc length by adaptive subdivision until the chord and control polygon lengths agree within tolerance.
func cubicBezierLength(p0, p1, p2, p3 Point, tolerance float64) float64 {
	return cubicBezierLengthDepth(Bezier{p0, p1, p2, p3}, tolerance, 0)
}

func cubicBezierLengthDepth(b Bezier, tolerance float64, depth int) float64 {
	chord := Distance(b[0], b[3])
	polygon := Distance(b[0], b[1]) + Distance(b[1], b[2]) + Distance(b[2], b[3])
	if polygon-chord <= tolerance || 16 <= depth {
		return (chord + polygon) / 2.0
	}
	b1, b2 := b.Split(0.5)
	return cubicBezierLengthDepth(b1, tolerance/2.0, depth+1) + cubicBezierLengthDepth(b2, tolerance/2.0, depth+1)
}

// cubicBezierArea returns the signed area between the curve and the origin, summing these over a closed contour gives its area. It integrates (x*dy - y*dx)/2 over the curve.
func cubicBezierArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6.0*p1.Y+3.0*p2.Y+p3.Y) +
		3.0*p1.X*(-2.0*p0.Y+p2.Y+p3.Y) +
		3.0*p2.X*(-p0.Y-p1.Y+2.0*p3.Y) +
		p3.X*(-p0.Y-3.0*p1.Y-6.0*p2.Y)) / 20.0
}

// lineArea returns the signed area between the line and the origin.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * p0.PerpDot(p1)
}

// cubicBezierFlatness returns the maximum distance of the control points from the chord, which bounds the deviation of the curve from its chord.
func cubicBezierFlatness(b Bezier) float64 {
	return math.Max(distanceToLine(b[1], b[0], b[3]), distanceToLine(b[2], b[0], b[3]))
}

// flattenCubicBezier appends points approximating the curve within tolerance to dst, excluding the start point.
func flattenCubicBezier(dst []Point, b Bezier, tolerance float64) []Point {
	return flattenCubicBezierDepth(dst, b, tolerance, 0)
}

func flattenCubicBezierDepth(dst []Point, b Bezier, tolerance float64, depth int) []Point {
	if cubicBezierFlatness(b) <= tolerance || 16 <= depth {
		return append(dst, b[3])
	}
	b1, b2 := b.Split(0.5)
	dst = flattenCubicBezierDepth(dst, b1, tolerance, depth+1)
	return flattenCubicBezierDepth(dst, b2, tolerance, depth+1)
}

// distanceToLine returns the perpendicular distance from p to the infinite line through a and b, or the distance to a if a equals b.
func distanceToLine(p, a, b Point) float64 {
	d := b.Sub(a)
	length := d.Length()
	if equal(length, 0.0) {
		return Distance(p, a)
	}
	return math.Abs(d.PerpDot(p.Sub(a))) / length
}

// distanceToSegment returns the distance from p to the line segment ab, and the closest point on it.
func distanceToSegment(p, a, b Point) (float64, Point) {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0.0 {
		return Distance(p, a), a
	}
	t := math.Max(0.0, math.Min(1.0, p.Sub(a).Dot(d)/l2))
	q := a.Add(d.Mul(t))
	return Distance(p, q), q
}

// intersectionSegmentSegment returns the parameters along a0-a1 and b0-b1 of the intersection of both segments, including the end points. It returns false for parallel segments.
func intersectionSegmentSegment(a0, a1, b0, b1 Point) (float64, float64, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if div == 0.0 {
		return 0.0, 0.0, false
	}
	ab := b0.Sub(a0)
	ta := ab.PerpDot(db) / div
	tb := ab.PerpDot(da) / div
	if ta < 0.0 || 1.0 < ta || tb < 0.0 || 1.0 < tb {
		return ta, tb, false
	}
	return ta, tb, true
}

// intersectionLineLine returns the intersection of the infinite lines through a0-a1 and b0-b1, and false if they are parallel.
func intersectionLineLine(a0, a1, b0, b1 Point) (Point, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if equal(div, 0.0) {
		return Point{}, false
	}
	ta := b0.Sub(a0).PerpDot(db) / div
	return a0.Add(da.Mul(ta)), true
}
