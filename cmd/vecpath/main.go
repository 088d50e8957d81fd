package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/inkframe/vecpath"
	"github.com/tdewolff/argp"
	"golang.org/x/image/math/f64"
)

// output writes paths to a file or stdout as path data, JSON, or SVG.
type output struct {
	Format    string
	Precision int
	Filename  string
}

type Normalize struct {
	Format    string `short:"f" default:"d" desc:"Output format: d, json, or svg"`
	Precision int    `short:"p" default:"3" desc:"Number of decimals in path data"`
	Output    string `short:"o" default:"-" desc:"Output file"`
	Verbose   bool   `short:"v" desc:"Log geometry fallbacks to stderr"`
	Input     string `index:"0" default:"-" desc:"Input file with one path per line"`
}

type Simplify struct {
	Format    string  `short:"f" default:"d" desc:"Output format: d, json, or svg"`
	Precision int     `short:"p" default:"3" desc:"Number of decimals in path data"`
	Output    string  `short:"o" default:"-" desc:"Output file"`
	Verbose   bool    `short:"v" desc:"Log geometry fallbacks to stderr"`
	Tolerance float64 `short:"t" default:"0.5" desc:"Maximum deviation"`
	Area      bool    `desc:"Use Visvalingam-Whyatt instead of Ramer-Douglas-Peucker"`
	Input     string  `index:"0" default:"-" desc:"Input file with one path per line"`
}

type Round struct {
	Format    string  `short:"f" default:"d" desc:"Output format: d, json, or svg"`
	Precision int     `short:"p" default:"3" desc:"Number of decimals in path data"`
	Output    string  `short:"o" default:"-" desc:"Output file"`
	Verbose   bool    `short:"v" desc:"Log geometry fallbacks to stderr"`
	Radius    float64 `short:"r" default:"5" desc:"Corner radius"`
	Input     string  `index:"0" default:"-" desc:"Input file with one path per line"`
}

type Offset struct {
	Format     string  `short:"f" default:"d" desc:"Output format: d, json, or svg"`
	Precision  int     `short:"p" default:"3" desc:"Number of decimals in path data"`
	Output     string  `short:"o" default:"-" desc:"Output file"`
	Verbose    bool    `short:"v" desc:"Log geometry fallbacks to stderr"`
	Distance   float64 `short:"d" default:"1" desc:"Offset distance, negative to shrink"`
	Join       string  `short:"j" default:"miter" desc:"Join style: miter, round, or bevel"`
	MiterLimit float64 `default:"4" desc:"Miter limit"`
	Input      string  `index:"0" default:"-" desc:"Input file with one path per line"`
}

type Outline struct {
	Format     string  `short:"f" default:"d" desc:"Output format: d, json, or svg"`
	Precision  int     `short:"p" default:"3" desc:"Number of decimals in path data"`
	Output     string  `short:"o" default:"-" desc:"Output file"`
	Verbose    bool    `short:"v" desc:"Log geometry fallbacks to stderr"`
	Width      float64 `short:"w" default:"1" desc:"Stroke width"`
	Cap        string  `short:"c" default:"butt" desc:"Cap style: butt, round, or square"`
	Join       string  `short:"j" default:"miter" desc:"Join style: miter, round, or bevel"`
	MiterLimit float64 `default:"4" desc:"Miter limit"`
	Input      string  `index:"0" default:"-" desc:"Input file with one path per line"`
}

type Bool struct {
	Format    string `short:"f" default:"d" desc:"Output format: d, json, or svg"`
	Precision int    `short:"p" default:"3" desc:"Number of decimals in path data"`
	Output    string `short:"o" default:"-" desc:"Output file"`
	Verbose   bool   `short:"v" desc:"Log geometry fallbacks to stderr"`
	Op        string `default:"union" desc:"Operation: union, subtract, intersect, or exclude"`
	Input     string `index:"0" default:"-" desc:"Input file with one path per line"`
}

type Shape struct {
	Format    string `short:"f" default:"d" desc:"Output format: d, json, or svg"`
	Precision int    `short:"p" default:"3" desc:"Number of decimals in path data"`
	Output    string `short:"o" default:"-" desc:"Output file"`
	Verbose   bool   `short:"v" desc:"Log geometry fallbacks to stderr"`
	Input     string `index:"0" default:"-" desc:"Input file with a shape JSON object"`
}

type Transform struct {
	Format    string `short:"f" default:"d" desc:"Output format: d, json, or svg"`
	Precision int    `short:"p" default:"3" desc:"Number of decimals in path data"`
	Output    string `short:"o" default:"-" desc:"Output file"`
	Verbose   bool   `short:"v" desc:"Log geometry fallbacks to stderr"`
	Matrix    string `short:"m" default:"1,0,0,0,1,0" desc:"Affine matrix a,b,c,d,e,f with x' = a*x + b*y + c and y' = d*x + e*y + f"`
	Input     string `index:"0" default:"-" desc:"Input file with one path per line"`
}

type Info struct {
	Verbose bool   `short:"v" desc:"Log geometry fallbacks to stderr"`
	Input   string `index:"0" default:"-" desc:"Input file with one path per line"`
}

func main() {
	root := argp.New("Vector path geometry toolkit")
	root.AddCmd(&Normalize{}, "normalize", "Convert paths to absolute commands")
	root.AddCmd(&Simplify{}, "simplify", "Simplify paths")
	root.AddCmd(&Round{}, "round", "Round the corners of paths")
	root.AddCmd(&Offset{}, "offset", "Offset paths")
	root.AddCmd(&Outline{}, "outline", "Convert paths to stroke outlines")
	root.AddCmd(&Bool{}, "bool", "Combine paths with a boolean operation")
	root.AddCmd(&Shape{}, "shape", "Generate a path from a shape")
	root.AddCmd(&Transform{}, "transform", "Apply an affine transformation to paths")
	root.AddCmd(&Info{}, "info", "Print path measurements")
	root.Parse()
	root.PrintHelp()
}

func setVerbose(verbose bool) {
	if verbose {
		vecpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func (cmd *Normalize) Run() error {
	setVerbose(cmd.Verbose)
	ps, err := readPaths(cmd.Input)
	if err != nil {
		return err
	}
	return output{cmd.Format, cmd.Precision, cmd.Output}.write(ps)
}

func (cmd *Simplify) Run() error {
	setVerbose(cmd.Verbose)
	ps, err := readPaths(cmd.Input)
	if err != nil {
		return err
	}
	for i, p := range ps {
		if cmd.Area {
			ps[i], err = p.SimplifyVisvalingamWhyatt(cmd.Tolerance)
		} else {
			ps[i], err = p.Simplify(cmd.Tolerance)
		}
		if err != nil {
			return fmt.Errorf("path %d: %w", i+1, err)
		}
	}
	return output{cmd.Format, cmd.Precision, cmd.Output}.write(ps)
}

func (cmd *Round) Run() error {
	setVerbose(cmd.Verbose)
	ps, err := readPaths(cmd.Input)
	if err != nil {
		return err
	}
	for i, p := range ps {
		radii := make([]float64, p.Len())
		for j := range radii {
			radii[j] = cmd.Radius
		}
		if ps[i], err = p.RoundCorners(radii); err != nil {
			return fmt.Errorf("path %d: %w", i+1, err)
		}
	}
	return output{cmd.Format, cmd.Precision, cmd.Output}.write(ps)
}

func (cmd *Offset) Run() error {
	setVerbose(cmd.Verbose)
	var join vecpath.JoinStyle
	if err := join.UnmarshalText([]byte(cmd.Join)); err != nil {
		return err
	}
	ps, err := readPaths(cmd.Input)
	if err != nil {
		return err
	}
	for i, p := range ps {
		if ps[i], err = p.Offset(cmd.Distance, join, cmd.MiterLimit); err != nil {
			return fmt.Errorf("path %d: %w", i+1, err)
		}
	}
	return output{cmd.Format, cmd.Precision, cmd.Output}.write(ps)
}

func (cmd *Outline) Run() error {
	setVerbose(cmd.Verbose)
	var join vecpath.JoinStyle
	if err := join.UnmarshalText([]byte(cmd.Join)); err != nil {
		return err
	}
	var capStyle vecpath.CapStyle
	if err := capStyle.UnmarshalText([]byte(cmd.Cap)); err != nil {
		return err
	}
	ps, err := readPaths(cmd.Input)
	if err != nil {
		return err
	}
	for i, p := range ps {
		if ps[i], err = p.Outline(cmd.Width, capStyle, join, cmd.MiterLimit); err != nil {
			return fmt.Errorf("path %d: %w", i+1, err)
		}
	}
	return output{cmd.Format, cmd.Precision, cmd.Output}.write(ps)
}

func (cmd *Bool) Run() error {
	setVerbose(cmd.Verbose)
	var op vecpath.BooleanOp
	if err := op.UnmarshalText([]byte(cmd.Op)); err != nil {
		return err
	}
	ps, err := readPaths(cmd.Input)
	if err != nil {
		return err
	}
	res, err := vecpath.Combine(op, ps...)
	if err != nil {
		return err
	}
	return output{cmd.Format, cmd.Precision, cmd.Output}.write(res.Paths)
}

func (cmd *Shape) Run() error {
	setVerbose(cmd.Verbose)
	b, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	s, err := vecpath.DecodeShape(b)
	if err != nil {
		return err
	}
	p, err := vecpath.ShapePath(s)
	if err != nil {
		return err
	}
	return output{cmd.Format, cmd.Precision, cmd.Output}.write([]*vecpath.Path{p})
}

func (cmd *Transform) Run() error {
	setVerbose(cmd.Verbose)
	aff, err := parseAff3(cmd.Matrix)
	if err != nil {
		return err
	}
	ps, err := readPaths(cmd.Input)
	if err != nil {
		return err
	}
	for i, p := range ps {
		ps[i] = p.Transformed(vecpath.Matrix(aff))
	}
	return output{cmd.Format, cmd.Precision, cmd.Output}.write(ps)
}

// parseAff3 parses six comma or space separated numbers in row-major order.
func parseAff3(s string) (f64.Aff3, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) != 6 {
		return f64.Aff3{}, fmt.Errorf("matrix needs 6 numbers, got %d", len(fields))
	}
	var aff f64.Aff3
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return f64.Aff3{}, fmt.Errorf("matrix: %w", err)
		}
		aff[i] = f
	}
	return aff, nil
}

func (cmd *Info) Run() error {
	setVerbose(cmd.Verbose)
	ps, err := readPaths(cmd.Input)
	if err != nil {
		return err
	}
	for i, p := range ps {
		fmt.Printf("Path %d:\n", i+1)
		fmt.Printf("  Anchors:  %d in %d subpaths\n", p.Len(), len(p.Subpaths()))
		fmt.Printf("  Bounds:   %v\n", p.Bounds())
		fmt.Printf("  Length:   %.6g\n", p.Length())
		fmt.Printf("  Area:     %.6g\n", p.Area())
		fmt.Printf("  Centroid: %v\n", p.Centroid())
	}
	return nil
}

func (o output) write(ps []*vecpath.Path) error {
	var w io.Writer = os.Stdout
	if o.Filename != "" && o.Filename != "-" {
		f, err := os.Create(o.Filename)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch o.Format {
	case "d":
		for _, p := range ps {
			if _, err := fmt.Fprintln(w, p.Data(o.Precision)); err != nil {
				return err
			}
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ps)
	case "svg":
		doc, err := svgDocument(ps, o.Precision)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, doc)
		return err
	default:
		return fmt.Errorf("unknown output format %q", o.Format)
	}
	return nil
}

func readInput(filename string) ([]byte, error) {
	if filename == "" || filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

func readPaths(filename string) ([]*vecpath.Path, error) {
	b, err := readInput(filename)
	if err != nil {
		return nil, err
	}
	return parsePaths(string(b))
}

// parsePaths parses one path per non-empty line, lines starting with # are skipped.
func parsePaths(s string) ([]*vecpath.Path, error) {
	ps := []*vecpath.Path{}
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Buffer(nil, 1<<24)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		p, err := vecpath.ParsePath(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ps = append(ps, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("no paths in input")
	}
	return ps, nil
}
