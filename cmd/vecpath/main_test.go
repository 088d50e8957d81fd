package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/inkframe/vecpath"
	"github.com/tdewolff/test"
	"golang.org/x/image/math/f64"
)

func TestParsePaths(t *testing.T) {
	ps, err := parsePaths("# squares\nM0 0 L10 0 L10 10 Z\n\n  m20 0 h10 v10 z  \n")
	test.Error(t, err)
	test.T(t, len(ps), 2)
	test.String(t, ps[0].String(), "M0 0 L10 0 L10 10 Z")
	test.String(t, ps[1].String(), "M20 0 L30 0 L30 10 Z")

	_, err = parsePaths("M0 0 L10 0\nM0 0 X5\n")
	test.That(t, errors.Is(err, vecpath.ErrParse), err)
	test.That(t, strings.HasPrefix(err.Error(), "line 2: "), err)

	_, err = parsePaths("# nothing\n\n")
	test.That(t, err != nil)
}

func TestSVGDocument(t *testing.T) {
	ps, err := parsePaths("M0 0 L10 0 L10 10 Z\nM20 0 L30 0 L30 10 Z")
	test.Error(t, err)
	ps[1].Stroke.Color = vecpath.RGB(0xff, 0x00, 0x00)

	doc, err := svgDocument(ps, 3)
	test.Error(t, err)
	test.That(t, strings.HasPrefix(doc, "<svg"), doc)
	test.T(t, strings.Count(doc, "<path"), 2, doc)
	test.That(t, strings.Contains(doc, "viewBox"), doc)
	test.That(t, strings.Contains(doc, "stroke"), doc)
	test.That(t, strings.HasSuffix(doc, "</svg>"), doc)
}

func TestOutputFormat(t *testing.T) {
	ps, err := parsePaths("M0 0 L10 0")
	test.Error(t, err)
	err = output{"png", 3, "-"}.write(ps)
	test.That(t, err != nil)
}

func TestParseAff3(t *testing.T) {
	aff, err := parseAff3("1,0,5, 0,-1,2")
	test.Error(t, err)
	test.T(t, aff, f64.Aff3{1.0, 0.0, 5.0, 0.0, -1.0, 2.0})
	test.T(t, vecpath.Matrix(aff).Dot(vecpath.Point{X: 1.0, Y: 1.0}), vecpath.Point{X: 6.0, Y: 1.0})

	_, err = parseAff3("1 0 0 1")
	test.That(t, err != nil)
	_, err = parseAff3("1,0,0,0,1,x")
	test.That(t, err != nil)
}

func TestTransformPaths(t *testing.T) {
	ps, err := parsePaths("M0 0 L10 0 L10 10 Z")
	test.Error(t, err)
	aff, err := parseAff3("2 0 1 0 2 0")
	test.Error(t, err)
	test.String(t, ps[0].Transformed(vecpath.Matrix(aff)).String(), "M1 0 L21 0 L21 20 Z")
}

func TestSVGTransform(t *testing.T) {
	test.String(t, svgTransform(vecpath.Identity.Scale(1.0, -1.0).Aff3()), "matrix(1 0 0 -1 0 0)")
	test.String(t, svgTransform(vecpath.Identity.Translate(3.0, 4.0).Aff3()), "matrix(1 0 0 1 3 4)")
}
