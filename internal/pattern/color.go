package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/pixgen/internal/apperror"
)

// Color is one pixel value with 8-bit red, green and blue channels.
// The canonical in-memory channel order everywhere in this package is RGB.
type Color struct {
	R, G, B uint8
}

var (
	White   = Color{255, 255, 255}
	Black   = Color{0, 0, 0}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
)

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" (or "rrggbb") color string.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, apperror.WrapWithMessage(
			fmt.Errorf("got %q", s),
			apperror.ErrInvalidParameter,
			fmt.Sprintf("invalid color %q: expected 6-char hex like #ff8000", s),
		)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, apperror.WrapWithMessage(
			err,
			apperror.ErrInvalidParameter,
			fmt.Sprintf("invalid color %q: %v", s, err),
		)
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
