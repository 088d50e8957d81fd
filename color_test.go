package vecpath

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		s string
		c Color
	}{
		{"#ff0000", Color{0xff, 0x00, 0x00, 0xff}},
		{"#F00", Color{0xff, 0x00, 0x00, 0xff}},
		{"#f008", Color{0xff, 0x00, 0x00, 0x88}},
		{"#12345678", Color{0x12, 0x34, 0x56, 0x78}},
		{" #abcdef ", Color{0xab, 0xcd, 0xef, 0xff}},
		{"red", Color{0xff, 0x00, 0x00, 0xff}},
		{"Navy", Color{0x00, 0x00, 0x80, 0xff}},
		{"none", Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			c, err := ParseColor(tt.s)
			test.Error(t, err)
			test.T(t, c, tt.c)
		})
	}

	for _, s := range []string{"", "#", "#12", "#12345", "#gg0000", "rouge", "ff0000"} {
		_, err := ParseColor(s)
		test.That(t, errors.Is(err, ErrInvalidArgument), s, err)
	}
}

func TestColor(t *testing.T) {
	test.T(t, RGB(1, 2, 3), Color{1, 2, 3, 0xff})
	test.T(t, RGBA(1, 2, 3, 0.5), Color{1, 2, 3, 0x80})
	test.String(t, RGB(0xff, 0x80, 0x00).String(), "#ff8000")
	test.String(t, RGBA(0xff, 0x80, 0x00, 0.0).String(), "#ff800000")

	test.T(t, RGBA(0xff, 0x80, 0x00, 0.5).Premultiplied(), color.RGBA{0x80, 0x40, 0x00, 0x80})
	r, g, b, a := RGB(0xff, 0x00, 0x00).RGBA()
	test.T(t, []uint32{r, g, b, a}, []uint32{0xffff, 0, 0, 0xffff})

	var c Color
	test.Error(t, json.Unmarshal([]byte(`"#00ff00"`), &c))
	test.T(t, c, RGB(0x00, 0xff, 0x00))
	bs, err := json.Marshal(RGBA(0x00, 0xff, 0x00, 0.0))
	test.Error(t, err)
	test.String(t, string(bs), `"#00ff0000"`)
	test.That(t, json.Unmarshal([]byte(`"#xyz"`), &c) != nil)
}
