package vecpath

import (
	"github.com/tdewolff/parse/v2/strconv"
)

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (isWhitespace(path[i]) || path[i] == ',') {
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// ParseCommands parses SVG path data into commands, keeping relative and shorthand commands as they are. A command letter may be followed by any number of parameter groups, where groups after the first repeat the command and those following a MoveTo are LineTo commands. Arc flags may be written without separators, as in a1 1 0 00 1 1. It returns a *ParseError for empty input, an unknown command letter, a path not starting with MoveTo, a parameter count that is not a multiple of the command's arity, or invalid arc flags.
func ParseCommands(s string) (Commands, error) {
	path := []byte(s)
	cs := Commands{}

	i := skipCommaWhitespace(path)
	if i == len(path) {
		return nil, parseErrorf(0, "empty path")
	}
	for i < len(path) {
		start := i
		c := path[i]
		if !isCommandLetter(c) {
			if isLetter(c) {
				return nil, parseErrorf(i, "unknown command '%c'", c)
			} else if len(cs) == 0 {
				return nil, parseErrorf(i, "path must start with a MoveTo command")
			}
			return nil, parseErrorf(i, "unexpected character '%c'", c)
		}
		i++

		cmd := PathCmd(c)
		rel := 'a' <= c
		if rel {
			cmd = PathCmd(c - ('a' - 'A'))
		}
		if len(cs) == 0 && cmd != MoveToCmd {
			return nil, parseErrorf(start, "path must start with a MoveTo command")
		}

		// collect all parameters up to the next command letter
		var nums []float64
		n := cmdLen(cmd)
		for {
			i += skipCommaWhitespace(path[i:])
			if len(path) <= i || isLetter(path[i]) {
				break
			}
			if cmd == ArcToCmd && (len(nums)%7 == 3 || len(nums)%7 == 4) {
				if path[i] != '0' && path[i] != '1' {
					return nil, parseErrorf(i, "invalid arc flag '%c'", path[i])
				}
				nums = append(nums, float64(path[i]-'0'))
				i++
				continue
			} else if n == 0 {
				return nil, parseErrorf(i, "unexpected parameter for %v", cmd)
			}
			f, m := strconv.ParseFloat(path[i:])
			if m == 0 {
				return nil, parseErrorf(i, "invalid number")
			}
			nums = append(nums, f)
			i += m
		}
		if n == 0 {
			cs = append(cs, Command{Cmd: cmd, Rel: rel})
			continue
		} else if len(nums) == 0 || len(nums)%n != 0 {
			return nil, parseErrorf(start, "%v takes a multiple of %d parameters, got %d", cmd, n, len(nums))
		}

		for j := 0; j < len(nums); j += n {
			cur := cmd
			if cmd == MoveToCmd && 0 < j {
				cur = LineToCmd
			}
			cs = append(cs, newCommand(cur, rel, nums[j:j+n]))
		}
	}
	return cs, nil
}

func newCommand(cmd PathCmd, rel bool, a []float64) Command {
	c := Command{Cmd: cmd, Rel: rel}
	switch cmd {
	case MoveToCmd, LineToCmd, SmoothQuadToCmd:
		c.X, c.Y = a[0], a[1]
	case HLineToCmd:
		c.X = a[0]
	case VLineToCmd:
		c.Y = a[0]
	case CubeToCmd:
		c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y = a[0], a[1], a[2], a[3], a[4], a[5]
	case SmoothCubeToCmd:
		c.X2, c.Y2, c.X, c.Y = a[0], a[1], a[2], a[3]
	case QuadToCmd:
		c.X1, c.Y1, c.X, c.Y = a[0], a[1], a[2], a[3]
	case ArcToCmd:
		c.Rx, c.Ry, c.Rot = a[0], a[1], a[2]
		c.Large, c.Sweep = a[3] == 1.0, a[4] == 1.0
		c.X, c.Y = a[5], a[6]
	}
	return c
}

// MustParseCommands parses path data and panics on error. It is meant for literals and tests.
func MustParseCommands(s string) Commands {
	cs, err := ParseCommands(s)
	if err != nil {
		panic(err)
	}
	return cs
}

// ParsePath parses path data into an editable path of anchors.
func ParsePath(s string) (*Path, error) {
	cs, err := ParseCommands(s)
	if err != nil {
		return nil, err
	}
	return cs.ToPath(), nil
}

// MustParsePath parses path data into a path and panics on error. It is meant for literals and tests.
func MustParsePath(s string) *Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}
