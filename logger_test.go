package vecpath

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLogger(t *testing.T) {
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	square := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	_, err := Union(square, MustParsePath("M20 0 L30 0"), MustParsePath("M0 20 L5 20 L5 25 Z"))
	test.Error(t, err)
	test.That(t, strings.Contains(buf.String(), "boolean input contour dropped"), buf.String())

	buf.Reset()
	_, err = Union(square, MustParsePath("M5 5 L15 5 L15 15 L5 15 Z"))
	test.Error(t, err)
	test.String(t, buf.String(), "")

	SetLogger(nil)
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError))
}
