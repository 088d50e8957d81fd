package vecpath

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// PathCmd is the kind of a path command.
type PathCmd byte

// Path command kinds, with the letter they use in path data.
const (
	MoveToCmd       PathCmd = 'M'
	LineToCmd       PathCmd = 'L'
	HLineToCmd      PathCmd = 'H'
	VLineToCmd      PathCmd = 'V'
	CubeToCmd       PathCmd = 'C'
	SmoothCubeToCmd PathCmd = 'S'
	QuadToCmd       PathCmd = 'Q'
	SmoothQuadToCmd PathCmd = 'T'
	ArcToCmd        PathCmd = 'A'
	CloseCmd        PathCmd = 'Z'
)

// cmdLen is the number of parameters each command takes.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd, SmoothQuadToCmd:
		return 2
	case HLineToCmd, VLineToCmd:
		return 1
	case CubeToCmd:
		return 6
	case SmoothCubeToCmd, QuadToCmd:
		return 4
	case ArcToCmd:
		return 7
	}
	return 0
}

func (cmd PathCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case HLineToCmd:
		return "HLineTo"
	case VLineToCmd:
		return "VLineTo"
	case CubeToCmd:
		return "CubeTo"
	case SmoothCubeToCmd:
		return "SmoothCubeTo"
	case QuadToCmd:
		return "QuadTo"
	case SmoothQuadToCmd:
		return "SmoothQuadTo"
	case ArcToCmd:
		return "ArcTo"
	case CloseCmd:
		return "Close"
	}
	return "Invalid"
}

// Command is a single path drawing command. Only the fields used by its kind are set: X1,Y1 is the first control point (CubeTo, QuadTo) and X2,Y2 the second (CubeTo, SmoothCubeTo), Rx,Ry,Rot,Large,Sweep are the arc parameters with Rot in degrees, and X,Y is the end point. HLineTo only uses X and VLineTo only Y. Rel marks coordinates relative to the current pen position.
type Command struct {
	Cmd   PathCmd
	Rel   bool
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Rx    float64
	Ry    float64
	Rot   float64
	Large bool
	Sweep bool
	X     float64
	Y     float64
}

// MoveTo returns an absolute MoveTo command.
func MoveTo(x, y float64) Command {
	return Command{Cmd: MoveToCmd, X: x, Y: y}
}

// LineTo returns an absolute LineTo command.
func LineTo(x, y float64) Command {
	return Command{Cmd: LineToCmd, X: x, Y: y}
}

// QuadTo returns an absolute quadratic Bézier command with control point (x1,y1).
func QuadTo(x1, y1, x, y float64) Command {
	return Command{Cmd: QuadToCmd, X1: x1, Y1: y1, X: x, Y: y}
}

// CubeTo returns an absolute cubic Bézier command with control points (x1,y1) and (x2,y2).
func CubeTo(x1, y1, x2, y2, x, y float64) Command {
	return Command{Cmd: CubeToCmd, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y}
}

// ArcTo returns an absolute elliptical arc command, rot is in degrees.
func ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) Command {
	return Command{Cmd: ArcToCmd, Rx: rx, Ry: ry, Rot: rot, Large: large, Sweep: sweep, X: x, Y: y}
}

// Close returns a ClosePath command.
func Close() Command {
	return Command{Cmd: CloseCmd}
}

// End returns the end point of an absolute command.
func (c Command) End() Point {
	return Point{c.X, c.Y}
}

// Equals returns true if both commands are of the same kind and their parameters are equal with tolerance Epsilon.
func (c Command) Equals(q Command) bool {
	if c.Cmd != q.Cmd || c.Rel != q.Rel {
		return false
	}
	switch c.Cmd {
	case CloseCmd:
		return true
	case HLineToCmd:
		return equal(c.X, q.X)
	case VLineToCmd:
		return equal(c.Y, q.Y)
	case ArcToCmd:
		return equal(c.Rx, q.Rx) && equal(c.Ry, q.Ry) && equal(c.Rot, q.Rot) && c.Large == q.Large && c.Sweep == q.Sweep && equal(c.X, q.X) && equal(c.Y, q.Y)
	}
	return equal(c.X1, q.X1) && equal(c.Y1, q.Y1) && equal(c.X2, q.X2) && equal(c.Y2, q.Y2) && equal(c.X, q.X) && equal(c.Y, q.Y)
}

func (c Command) String() string {
	return string(c.appendTo(nil, DefaultPrecision))
}

// appendTo appends the command letter and its parameters, numbers are formatted with at most prec decimals.
func (c Command) appendTo(b []byte, prec int) []byte {
	letter := byte(c.Cmd)
	if c.Rel {
		letter += 'a' - 'A'
	}
	b = append(b, letter)
	num := func(f float64) {
		if b[len(b)-1] != letter {
			b = append(b, ' ')
		}
		// AppendDecimal loses the sign of small negative numbers such as -0.05
		if pow := math.Pow10(prec); math.Round(f*pow) < 0.0 {
			b = append(b, '-')
			f = -f
		}
		b = strconv.AppendDecimal(b, f, prec)
	}
	flag := func(v bool) {
		b = append(b, ' ')
		if v {
			b = append(b, '1')
		} else {
			b = append(b, '0')
		}
	}
	switch c.Cmd {
	case MoveToCmd, LineToCmd, SmoothQuadToCmd:
		num(c.X)
		num(c.Y)
	case HLineToCmd:
		num(c.X)
	case VLineToCmd:
		num(c.Y)
	case CubeToCmd:
		num(c.X1)
		num(c.Y1)
		num(c.X2)
		num(c.Y2)
		num(c.X)
		num(c.Y)
	case SmoothCubeToCmd:
		num(c.X2)
		num(c.Y2)
		num(c.X)
		num(c.Y)
	case QuadToCmd:
		num(c.X1)
		num(c.Y1)
		num(c.X)
		num(c.Y)
	case ArcToCmd:
		num(c.Rx)
		num(c.Ry)
		num(c.Rot)
		flag(c.Large)
		flag(c.Sweep)
		num(c.X)
		num(c.Y)
	}
	return b
}

////////////////////////////////////////////////////////////////

// Commands is a sequence of path commands.
type Commands []Command

// Equals returns true if both sequences have equal commands with tolerance Epsilon.
func (cs Commands) Equals(q Commands) bool {
	if len(cs) != len(q) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(q[i]) {
			return false
		}
	}
	return true
}

// IsAbsolute returns true if all commands are absolute and only MoveTo, LineTo, CubeTo, QuadTo, ArcTo, and Close are used.
func (cs Commands) IsAbsolute() bool {
	for _, c := range cs {
		if c.Rel {
			return false
		}
		switch c.Cmd {
		case HLineToCmd, VLineToCmd, SmoothCubeToCmd, SmoothQuadToCmd:
			return false
		}
	}
	return true
}

// ToAbsolute converts relative commands to absolute ones by tracking the pen position. HLineTo and VLineTo become LineTo, and SmoothCubeTo and SmoothQuadTo become CubeTo and QuadTo with the reflection of the previous control point. Close moves the pen back to the start of the subpath, i.e. the most recent MoveTo.
func (cs Commands) ToAbsolute() Commands {
	abs := make(Commands, 0, len(cs))
	var pen, start, ctrl Point // ctrl is the last control point
	prev := CloseCmd
	for _, c := range cs {
		var off Point
		if c.Rel {
			off = pen
		}
		switch c.Cmd {
		case MoveToCmd:
			pen = Point{c.X, c.Y}.Add(off)
			start = pen
			abs = append(abs, MoveTo(pen.X, pen.Y))
		case LineToCmd:
			pen = Point{c.X, c.Y}.Add(off)
			abs = append(abs, LineTo(pen.X, pen.Y))
		case HLineToCmd:
			pen.X = c.X + off.X
			abs = append(abs, LineTo(pen.X, pen.Y))
		case VLineToCmd:
			pen.Y = c.Y + off.Y
			abs = append(abs, LineTo(pen.X, pen.Y))
		case CubeToCmd, SmoothCubeToCmd:
			cp1 := pen
			if c.Cmd == CubeToCmd {
				cp1 = Point{c.X1, c.Y1}.Add(off)
			} else if prev == CubeToCmd || prev == SmoothCubeToCmd {
				cp1 = pen.Mul(2.0).Sub(ctrl)
			}
			cp2 := Point{c.X2, c.Y2}.Add(off)
			pen = Point{c.X, c.Y}.Add(off)
			ctrl = cp2
			abs = append(abs, CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, pen.X, pen.Y))
		case QuadToCmd, SmoothQuadToCmd:
			cp := pen
			if c.Cmd == QuadToCmd {
				cp = Point{c.X1, c.Y1}.Add(off)
			} else if prev == QuadToCmd || prev == SmoothQuadToCmd {
				cp = pen.Mul(2.0).Sub(ctrl)
			}
			pen = Point{c.X, c.Y}.Add(off)
			ctrl = cp
			abs = append(abs, QuadTo(cp.X, cp.Y, pen.X, pen.Y))
		case ArcToCmd:
			pen = Point{c.X, c.Y}.Add(off)
			abs = append(abs, ArcTo(c.Rx, c.Ry, c.Rot, c.Large, c.Sweep, pen.X, pen.Y))
		case CloseCmd:
			pen = start
			abs = append(abs, Close())
		}
		prev = c.Cmd
	}
	return abs
}

// Serialize converts the commands to absolute and returns the path data with numbers at prec decimals, trailing zeros trimmed.
func (cs Commands) Serialize(prec int) string {
	if prec < 0 {
		prec = DefaultPrecision
	}
	b := []byte{}
	for i, c := range cs.ToAbsolute() {
		if 0 < i {
			b = append(b, ' ')
		}
		b = c.appendTo(b, prec)
	}
	return string(b)
}

// String returns the absolute path data at DefaultPrecision.
func (cs Commands) String() string {
	return cs.Serialize(DefaultPrecision)
}

// Transform returns the absolute commands transformed by m. Arcs are converted to cubic Béziers first.
func (cs Commands) Transform(m Matrix) Commands {
	abs := cs.ToAbsolute()
	out := make(Commands, 0, len(abs))
	var pen, start Point
	for _, c := range abs {
		end := m.Dot(Point{c.X, c.Y})
		switch c.Cmd {
		case MoveToCmd, LineToCmd:
			out = append(out, Command{Cmd: c.Cmd, X: end.X, Y: end.Y})
		case CubeToCmd:
			cp1, cp2 := m.Dot(Point{c.X1, c.Y1}), m.Dot(Point{c.X2, c.Y2})
			out = append(out, CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y))
		case QuadToCmd:
			cp := m.Dot(Point{c.X1, c.Y1})
			out = append(out, QuadTo(cp.X, cp.Y, end.X, end.Y))
		case ArcToCmd:
			for _, bz := range EllipticalArcToBezier(pen, c.Rx, c.Ry, c.Rot, c.Large, c.Sweep, Point{c.X, c.Y}) {
				cp1, cp2, p := m.Dot(bz[1]), m.Dot(bz[2]), m.Dot(bz[3])
				out = append(out, CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y))
			}
		case CloseCmd:
			out = append(out, Close())
		}
		if c.Cmd == CloseCmd {
			pen = start
		} else {
			pen = Point{c.X, c.Y}
			if c.Cmd == MoveToCmd {
				start = pen
			}
		}
	}
	return out
}
