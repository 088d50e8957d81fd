package vecpath

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned for malformed path data.
	ErrParse = errors.New("invalid path data")

	// ErrDegenerateGeometry is returned when geometry collapses, e.g. zero-length tangents or zero area where area is required.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrInsufficientInput is returned when an operation receives too few paths or points.
	ErrInsufficientInput = errors.New("insufficient input")

	// ErrInvalidArgument is returned for out-of-range parameters such as non-positive radii or tolerances.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ParseError is returned by ParseCommands and reports the byte offset at which parsing failed.
type ParseError struct {
	Pos int
	Msg string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%v at position %d: %s", ErrParse, err.Pos, err.Msg)
}

// Unwrap makes errors.Is(err, ErrParse) true.
func (err *ParseError) Unwrap() error {
	return ErrParse
}

func parseErrorf(pos int, format string, args ...any) error {
	return &ParseError{pos, fmt.Sprintf(format, args...)}
}

func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func insufficientInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientInput, fmt.Sprintf(format, args...))
}
