// Package preview renders pattern rows as text for interactive
// inspection. Output is always canonical RGB with no padding and no
// channel transform; it never goes through the BMP encoder.
package preview

import (
	"iter"
	"strings"

	"github.com/abdul-hamid-achik/pixgen/internal/pattern"
)

// Renderer formats one frame's scanlines as space-separated
// "(r,g,b)" tuples, one line per row.
type Renderer struct {
	frame *pattern.Frame
}

// New validates dimensions and pattern with the same rules as the
// encoder and returns a renderer over them.
func New(width, height int, p pattern.Pattern) (*Renderer, error) {
	frame, err := pattern.NewFrame(width, height, p)
	if err != nil {
		return nil, err
	}
	return &Renderer{frame: frame}, nil
}

// Frame exposes the underlying row producer, for callers that render
// pixels themselves (color swatches) instead of tuples.
func (r *Renderer) Frame() *pattern.Frame {
	return r.frame
}

// Line formats scanline y.
func (r *Renderer) Line(y int) string {
	var b strings.Builder
	for x := 0; x < r.frame.Width(); x++ {
		if x > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.frame.ColorAt(x, y).String())
	}
	return b.String()
}

// Lines yields every row top-first, computed lazily so callers can
// stop after a screenful.
func (r *Renderer) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for y := 0; y < r.frame.Height(); y++ {
			if !yield(r.Line(y)) {
				return
			}
		}
	}
}
