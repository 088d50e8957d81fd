package vecpath

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Epsilon is the smallest number below which we assume the value to be zero. This is to avoid numerical floating point issues.
var Epsilon = 1e-10

// Tolerance is the maximum deviation from the original path in path units when e.g. flattening.
var Tolerance = 0.01

// DefaultPrecision is the number of decimals used when serializing path data.
const DefaultPrecision = 3

// equal returns true if a and b are equal within an absolute tolerance of Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

// snap rounds val to the nearest multiple of spacing.
func snap(val, spacing float64) float64 {
	return math.Round(val/spacing) * spacing
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Rot90CW rotates the line OP by 90 degrees CW.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Rot rotates the line OP by phi radians CCW around p0.
func (p Point) Rot(phi float64, p0 Point) Point {
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		p0.X + cosphi*(p.X-p0.X) - sinphi*(p.Y-p0.Y),
		p0.Y + sinphi*(p.X-p0.X) + cosphi*(p.Y-p0.Y),
	}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle between the x-axis and OP.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// AngleBetween returns the signed angle between OP and OQ.
func (p Point) AngleBetween(q Point) float64 {
	return math.Atan2(p.PerpDot(q), p.Dot(q))
}

// Norm normalizes OP to be of certain length. A zero vector stays zero.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is a rectangle in 2D defined by a position and its width and height.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Equals returns true if rectangles are equal with tolerance Epsilon.
func (r Rect) Equals(q Rect) bool {
	return equal(r.X, q.X) && equal(r.Y, q.Y) && equal(r.W, q.W) && equal(r.H, q.H)
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return equal(r.W, 0.0) || equal(r.H, 0.0)
}

// Add returns a rect that encompasses both the current rect and the given rect.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// AddPoint returns a rect that encompasses both the current rect and the given point.
func (r Rect) AddPoint(p Point) Rect {
	x0 := math.Min(r.X, p.X)
	y0 := math.Min(r.Y, p.Y)
	x1 := math.Max(r.X+r.W, p.X)
	y1 := math.Max(r.Y+r.H, p.Y)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Overlaps returns true if both rectangles overlap, touching edges included.
func (r Rect) Overlaps(q Rect) bool {
	return q.X <= r.X+r.W && r.X <= q.X+q.W && q.Y <= r.Y+r.H && r.Y <= q.Y+q.H
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations, stored row-major as [a b c; d e f] so that x' = a*x + b*y + c and y' = d*x + e*y + f. Be aware that concatenating transformation functions will be evaluated right-to-left! So in Identity.Rotate(30).Translate(20,0) will first translate 20 points horizontally and then rotate 30 degrees counter clockwise.
type Matrix f64.Aff3

// Identity is the identity affine transformation matrix, i.e. transforms any point to itself.
var Identity = Matrix{
	1.0, 0.0, 0.0,
	0.0, 1.0, 0.0,
}

// Aff3 returns the matrix in the layout used by golang.org/x/image.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3(m)
}

// Mul multiplies the current matrix by the given matrix, i.e. combine transformations.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{
		m[0]*q[0] + m[1]*q[3],
		m[0]*q[1] + m[1]*q[4],
		m[0]*q[2] + m[1]*q[5] + m[2],
		m[3]*q[0] + m[4]*q[3],
		m[3]*q[1] + m[4]*q[4],
		m[3]*q[2] + m[4]*q[5] + m[5],
	}
}

// Dot returns the dot product between the matrix and the given point, i.e. applying the transformation.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0]*p.X + m[1]*p.Y + m[2],
		m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// DotVector applies only the linear part of the transformation, as used for relative handle offsets.
func (m Matrix) DotVector(p Point) Point {
	return Point{
		m[0]*p.X + m[1]*p.Y,
		m[3]*p.X + m[4]*p.Y,
	}
}

// Translate adds a translation in x and y.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		1.0, 0.0, x,
		0.0, 1.0, y,
	})
}

// Rotate adds a rotation transformation with rot in degrees counter clockwise.
func (m Matrix) Rotate(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		costheta, -sintheta, 0.0,
		sintheta, costheta, 0.0,
	})
}

// RotateAbout adds a rotation transformation around (x,y) with rot in degrees counter clockwise.
func (m Matrix) RotateAbout(rot, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(rot).Translate(-x, -y)
}

// Scale adds a scaling transformation in sx and sy. When scale is negative it will flip those axes.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		sx, 0.0, 0.0,
		0.0, sy, 0.0,
	})
}

// Shear adds a shear transformation with sx the horizontal shear and sy the vertical shear.
func (m Matrix) Shear(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		1.0, sx, 0.0,
		sy, 1.0, 0.0,
	})
}

// Det returns the matrix determinant.
func (m Matrix) Det() float64 {
	return m[0]*m[4] - m[1]*m[3]
}

// Inv returns the matrix inverse and false if the matrix is singular.
func (m Matrix) Inv() (Matrix, bool) {
	det := m.Det()
	if equal(det, 0.0) {
		return Matrix{}, false
	}
	return Matrix{
		m[4] / det,
		-m[1] / det,
		-(m[4]*m[2] - m[1]*m[5]) / det,
		-m[3] / det,
		m[0] / det,
		-(-m[3]*m[2] + m[0]*m[5]) / det,
	}, true
}

// IsIdentity is true if the matrix is the identity matrix. The zero value is treated as identity too, so that an unset transform on a decoded path means "no transform".
func (m Matrix) IsIdentity() bool {
	if m == (Matrix{}) {
		return true
	}
	return equal(m[0], 1.0) && equal(m[1], 0.0) && equal(m[2], 0.0) && equal(m[3], 0.0) && equal(m[4], 1.0) && equal(m[5], 0.0)
}

// Equals returns true if both matrices are equal with a tolerance of Epsilon.
func (m Matrix) Equals(q Matrix) bool {
	for i := range m {
		if !equal(m[i], q[i]) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5])
}

////////////////////////////////////////////////////////////////

// solveQuadraticFormula returns the roots of a*x^2 + b*x + c = 0 in the numerically stable form, the lowest root is returned first. Missing roots are NaN.
// see https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			return math.NaN(), math.NaN()
		}
		return -c / b, math.NaN()
	}
	if c == 0.0 {
		if b == 0.0 {
			return 0.0, math.NaN()
		}
		x := -b / a
		if x < 0.0 {
			return x, 0.0
		}
		return 0.0, x
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation, which occurs when we subtract two nearly equal numbers and causes a large error.
	// This can be the case when 4*a*c is small so that sqrt(discriminant) -> b, and the sign of b and in front of the radical are the same.
	// Instead, we calculate x where b and the radical have different signs, and then use this result in the analytical equivalent
	// of the formula, called the Citardauq Formula.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		// apply sign of b
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}
