package main

import (
	"fmt"
	"strings"

	"github.com/inkframe/vecpath"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
	"golang.org/x/image/math/f64"
)

const svgMimetype = "image/svg+xml"

// svgDocument returns a minified standalone SVG document showing the paths in a y-up coordinate system.
func svgDocument(ps []*vecpath.Path, prec int) (string, error) {
	baked := make([]*vecpath.Path, len(ps))
	bounds := vecpath.Rect{}
	for i, p := range ps {
		baked[i] = p.Baked()
		if i == 0 {
			bounds = baked[i].Bounds()
		} else {
			bounds = bounds.Add(baked[i].Bounds())
		}
	}
	margin := 0.05 * max(bounds.W, bounds.H, 1.0)
	x, y := bounds.X-margin, bounds.Y-margin
	w, h := bounds.W+2.0*margin, bounds.H+2.0*margin

	sb := strings.Builder{}
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%g" height="%g" viewBox="%g %g %g %g">`, w, h, x, -y-h, w, h)
	fmt.Fprintf(&sb, `<g transform="%s">`, svgTransform(vecpath.Identity.Scale(1.0, -1.0).Aff3()))
	for _, p := range baked {
		fillRule := "nonzero"
		if p.Fill.Rule == vecpath.EvenOdd {
			fillRule = "evenodd"
		}
		fmt.Fprintf(&sb, `<path d="%s" fill="%v" fill-opacity="%g" fill-rule="%s"`, p.Data(prec), p.Fill.Color, p.Fill.Opacity, fillRule)
		if p.Stroke.Color.A != 0 && 0.0 < p.Stroke.Width {
			fmt.Fprintf(&sb, ` stroke="%v" stroke-width="%g" stroke-linecap="%v" stroke-linejoin="%v"`, p.Stroke.Color, p.Stroke.Width, p.Stroke.Cap, p.Stroke.Join)
		}
		sb.WriteString(`/>`)
	}
	sb.WriteString(`</g></svg>`)

	m := minify.New()
	m.AddFunc(svgMimetype, svg.Minify)
	return m.String(svgMimetype, sb.String())
}

// svgTransform formats a row-major affine matrix as an SVG matrix(a b c d e f), which is column-major.
func svgTransform(m f64.Aff3) string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", m[0], m[3], m[1], m[4], m[2], m[5])
}
