package pattern

import (
	"fmt"
	"iter"

	"github.com/abdul-hamid-achik/pixgen/internal/apperror"
)

// Frame binds a pattern to concrete dimensions and produces scanlines.
// It is immutable and restartable: the same frame always yields the
// same rows. Rows are produced lazily so peak memory stays at one row
// regardless of height.
type Frame struct {
	width   int
	height  int
	pattern Pattern
}

// NewFrame validates dimensions and pattern before any row can be
// produced. Width and height must both be at least 1.
func NewFrame(width, height int, p Pattern) (*Frame, error) {
	if width < 1 || height < 1 {
		return nil, apperror.WrapWithMessage(
			fmt.Errorf("got %dx%d", width, height),
			apperror.ErrInvalidParameter,
			"width and height must be positive integers",
		)
	}
	if !p.Valid() {
		return nil, apperror.WrapWithMessage(
			fmt.Errorf("got %v", p),
			apperror.ErrInvalidParameter,
			"pattern is not one of the supported kinds",
		)
	}
	return &Frame{width: width, height: height, pattern: p}, nil
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// RowBytes is the unpadded byte length of one scanline: width * 3.
func (f *Frame) RowBytes() int {
	return f.width * 3
}

// ColorAt returns the pattern color for pixel (x, y). Coordinates are
// zero-based with (0, 0) the top-left pixel.
func (f *Frame) ColorAt(x, y int) Color {
	p := f.pattern
	switch p.kind {
	case Solid:
		return p.c1
	case Stripes:
		switch {
		case x < f.width/3:
			return p.c1
		case x < 2*(f.width/3):
			return p.c2
		default:
			return p.c3
		}
	case Checkerboard:
		if (x/CheckerTile+y/CheckerTile)%2 == 0 {
			return p.c1
		}
		return p.c2
	case GradientVertical:
		return lerp(p.c1, p.c2, ratio(y, f.height))
	case GradientHorizontal:
		return lerp(p.c1, p.c2, ratio(x, f.width))
	case ColorBars:
		return barPalette[f.barIndex(x)]
	case GrayscaleBars:
		v := uint8(255 - int(float64(f.barIndex(x))*255.0/7.0))
		return Color{v, v, v}
	}
	return Color{}
}

// RowAt fills dst with scanline y in RGB order. dst must hold at least
// RowBytes bytes; the filled prefix is returned.
func (f *Frame) RowAt(dst []byte, y int) []byte {
	row := dst[:f.RowBytes()]

	// Patterns with no horizontal variation fill from a single color.
	switch f.pattern.kind {
	case Solid, GradientVertical:
		c := f.ColorAt(0, y)
		for x := 0; x < f.width; x++ {
			row[x*3] = c.R
			row[x*3+1] = c.G
			row[x*3+2] = c.B
		}
		return row
	}

	for x := 0; x < f.width; x++ {
		c := f.ColorAt(x, y)
		row[x*3] = c.R
		row[x*3+1] = c.G
		row[x*3+2] = c.B
	}
	return row
}

// Rows yields the frame's scanlines top-first, exactly Height of them.
// The yielded slice is reused between iterations; callers that keep a
// row must copy it.
func (f *Frame) Rows() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		row := make([]byte, f.RowBytes())
		for y := 0; y < f.height; y++ {
			if !yield(f.RowAt(row, y)) {
				return
			}
		}
	}
}

// barIndex places column x into one of 8 equal bars using a
// real-valued bar width, clamped so rounding never walks past the
// last bar.
func (f *Frame) barIndex(x int) int {
	i := int(float64(x) / (float64(f.width) / 8))
	if i > 7 {
		i = 7
	}
	return i
}

// ratio is the interpolation position of index i in a run of n. Runs
// of length 1 sit at the end of the gradient, not the middle.
func ratio(i, n int) float64 {
	if n <= 1 {
		return 1.0
	}
	return float64(i) / float64(n-1)
}

// lerp blends two colors channel-wise. The float result is truncated
// toward zero, matching the 8-bit channel math used throughout.
func lerp(from, to Color, t float64) Color {
	return Color{
		R: uint8(float64(from.R)*(1-t) + float64(to.R)*t),
		G: uint8(float64(from.G)*(1-t) + float64(to.G)*t),
		B: uint8(float64(from.B)*(1-t) + float64(to.B)*t),
	}
}
