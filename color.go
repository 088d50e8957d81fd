package vecpath

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a paint color with non alpha premultiplied components. It marshals to a CSS hexadecimal color.
type Color color.RGBA

// Common paint colors.
var (
	Transparent = Color{0x00, 0x00, 0x00, 0x00}
	Black       = Color{0x00, 0x00, 0x00, 0xff}
	White       = Color{0xff, 0xff, 0xff, 0xff}
)

// namedColors holds the CSS basic color keywords.
var namedColors = map[string]Color{
	"transparent": Transparent,
	"none":        Transparent,
	"black":       Black,
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"white":       White,
	"maroon":      {0x80, 0x00, 0x00, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"purple":      {0x80, 0x00, 0x80, 0xff},
	"fuchsia":     {0xff, 0x00, 0xff, 0xff},
	"magenta":     {0xff, 0x00, 0xff, 0xff},
	"green":       {0x00, 0x80, 0x00, 0xff},
	"lime":        {0x00, 0xff, 0x00, 0xff},
	"olive":       {0x80, 0x80, 0x00, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"teal":        {0x00, 0x80, 0x80, 0xff},
	"aqua":        {0x00, 0xff, 0xff, 0xff},
	"cyan":        {0x00, 0xff, 0xff, 0xff},
	"orange":      {0xff, 0xa5, 0x00, 0xff},
}

// RGB returns an opaque color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 0xff}
}

// RGBA returns a color given by red, green, and blue ∈ [0,255] and alpha ∈ [0,1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{r, g, b, uint8(a*255.0 + 0.5)}
}

// ParseColor parses a CSS hexadecimal color such as #ff0000, #F00, or #ff000080, or a basic CSS color keyword.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	} else if len(s) == 0 || s[0] != '#' {
		return Color{}, invalidArgumentf("bad color %q", s)
	}
	s = s[1:]
	h := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if '0' <= c && c <= '9' {
			h[i] = c - '0'
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + c - 'a'
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + c - 'A'
		} else {
			return Color{}, invalidArgumentf("bad color %q", "#"+s)
		}
	}
	switch len(s) {
	case 3:
		return Color{h[0]*16 + h[0], h[1]*16 + h[1], h[2]*16 + h[2], 0xff}, nil
	case 4:
		return Color{h[0]*16 + h[0], h[1]*16 + h[1], h[2]*16 + h[2], h[3]*16 + h[3]}, nil
	case 6:
		return Color{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], 0xff}, nil
	case 8:
		return Color{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], h[6]*16 + h[7]}, nil
	}
	return Color{}, invalidArgumentf("bad color %q", "#"+s)
}

// Premultiplied returns the color as an alpha premultiplied color.RGBA.
func (c Color) Premultiplied() color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		uint8(uint32(c.R) * a / 0xff),
		uint8(uint32(c.G) * a / 0xff),
		uint8(uint32(c.B) * a / 0xff),
		c.A,
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return c.Premultiplied().RGBA()
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	col, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = col
	return nil
}
