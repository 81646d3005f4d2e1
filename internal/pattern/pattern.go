// Package pattern generates deterministic raster test patterns as raw
// RGB scanlines. It knows nothing about file formats or channel order
// on disk; encoders consume its rows and do their own byte shuffling.
package pattern

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/pixgen/internal/apperror"
)

// Kind identifies one of the supported test patterns. The zero value is
// not a valid pattern.
type Kind int

const (
	Solid Kind = iota + 1
	Stripes
	Checkerboard
	GradientVertical
	GradientHorizontal
	ColorBars
	GrayscaleBars
)

func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Stripes:
		return "rgb-stripes"
	case Checkerboard:
		return "checkerboard"
	case GradientVertical:
		return "vertical-gradient"
	case GradientHorizontal:
		return "horizontal-gradient"
	case ColorBars:
		return "color-bars"
	case GrayscaleBars:
		return "grayscale-bars"
	default:
		return fmt.Sprintf("pattern(%d)", int(k))
	}
}

// CheckerTile is the edge length in pixels of one checkerboard tile.
const CheckerTile = 16

// barPalette is the fixed color-bar sequence, left to right.
var barPalette = [8]Color{White, Yellow, Cyan, Green, Magenta, Red, Blue, Black}

// Pattern is a pattern kind together with its color parameters. Build
// one with the New* constructors so that unused parameters stay at
// their variant defaults; the zero value is invalid.
type Pattern struct {
	kind       Kind
	c1, c2, c3 Color
}

// NewSolid fills the whole frame with a single color.
func NewSolid(c Color) Pattern {
	return Pattern{kind: Solid, c1: c}
}

// NewStripes draws three vertical bands of equal width. Band edges fall
// at width/3 and 2*(width/3); any remainder widens the third band.
func NewStripes(c1, c2, c3 Color) Pattern {
	return Pattern{kind: Stripes, c1: c1, c2: c2, c3: c3}
}

// NewCheckerboard alternates 16x16 tiles of two colors, with c1 in the
// top-left tile.
func NewCheckerboard(c1, c2 Color) Pattern {
	return Pattern{kind: Checkerboard, c1: c1, c2: c2}
}

// NewGradientVertical blends from the top row color to the bottom row
// color. A single-row frame is entirely the end color.
func NewGradientVertical(from, to Color) Pattern {
	return Pattern{kind: GradientVertical, c1: from, c2: to}
}

// NewGradientHorizontal blends from the leftmost column color to the
// rightmost. A single-column frame is entirely the end color.
func NewGradientHorizontal(from, to Color) Pattern {
	return Pattern{kind: GradientHorizontal, c1: from, c2: to}
}

// NewColorBars draws the fixed 8-bar sequence white, yellow, cyan,
// green, magenta, red, blue, black.
func NewColorBars() Pattern {
	return Pattern{kind: ColorBars}
}

// NewGrayscaleBars draws 8 bars stepping down from white to black.
func NewGrayscaleBars() Pattern {
	return Pattern{kind: GrayscaleBars}
}

// Default returns the pattern kind with its built-in parameter colors:
// white for solid, red/green/blue stripes, white/black checkerboard,
// black-to-white gradients.
func Default(k Kind) Pattern {
	switch k {
	case Solid:
		return NewSolid(White)
	case Stripes:
		return NewStripes(Red, Green, Blue)
	case Checkerboard:
		return NewCheckerboard(White, Black)
	case GradientVertical:
		return NewGradientVertical(Black, White)
	case GradientHorizontal:
		return NewGradientHorizontal(Black, White)
	case ColorBars:
		return NewColorBars()
	case GrayscaleBars:
		return NewGrayscaleBars()
	default:
		return Pattern{}
	}
}

func (p Pattern) Kind() Kind {
	return p.kind
}

// Valid reports whether the pattern was built by one of the
// constructors.
func (p Pattern) Valid() bool {
	return p.kind >= Solid && p.kind <= GrayscaleBars
}

func (p Pattern) String() string {
	return p.kind.String()
}

// Kinds lists every supported pattern kind in display order.
func Kinds() []Kind {
	return []Kind{
		Solid,
		Stripes,
		Checkerboard,
		GradientVertical,
		GradientHorizontal,
		ColorBars,
		GrayscaleBars,
	}
}

// ParseKind maps a user-supplied pattern name to its Kind. Matching is
// case-insensitive and treats spaces and underscores as hyphens, so
// "RGB Stripes" and "rgb_stripes" both parse.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "-", "_", "-").Replace(n)

	switch n {
	case "solid", "solid-color":
		return Solid, nil
	case "stripes", "rgb-stripes":
		return Stripes, nil
	case "checkerboard", "checker":
		return Checkerboard, nil
	case "vertical-gradient", "gradient-v":
		return GradientVertical, nil
	case "horizontal-gradient", "gradient-h":
		return GradientHorizontal, nil
	case "color-bars", "bars":
		return ColorBars, nil
	case "grayscale-bars", "grayscale":
		return GrayscaleBars, nil
	}

	return 0, apperror.WrapWithMessage(
		fmt.Errorf("got %q", name),
		apperror.ErrInvalidParameter,
		fmt.Sprintf("unknown pattern %q: valid patterns are %s", name, strings.Join(KindNames(), ", ")),
	)
}

// KindNames lists the canonical pattern names accepted by ParseKind.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
