package cli

import (
	"strings"

	"github.com/abdul-hamid-achik/pixgen/internal/pattern"
)

var namedColors = map[string]pattern.Color{
	"white":   pattern.White,
	"black":   pattern.Black,
	"red":     pattern.Red,
	"green":   pattern.Green,
	"blue":    pattern.Blue,
	"yellow":  pattern.Yellow,
	"cyan":    pattern.Cyan,
	"magenta": pattern.Magenta,
}

// resolveColor turns a flag value into a Color. Accepts the built-in
// names above, names from the user config's colors map, and "#rrggbb"
// hex. An empty value falls back to def.
func resolveColor(s string, def pattern.Color) (pattern.Color, error) {
	if s == "" {
		return def, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if hex, ok := cfg.ResolveColor(s); ok {
		return pattern.ParseHex(hex)
	}
	return pattern.ParseHex(s)
}

// colorArgs carries the raw color flag values; which ones matter
// depends on the pattern kind.
type colorArgs struct {
	color  string // solid, first stripe, first checker tile
	color2 string // second stripe, second checker tile
	color3 string // third stripe
	from   string // gradient start
	to     string // gradient end
}

// buildPattern constructs the pattern variant for kind, applying the
// variant's built-in defaults for any color not supplied.
func buildPattern(kind pattern.Kind, a colorArgs) (pattern.Pattern, error) {
	switch kind {
	case pattern.Solid:
		c, err := resolveColor(a.color, pattern.White)
		if err != nil {
			return pattern.Pattern{}, err
		}
		return pattern.NewSolid(c), nil

	case pattern.Stripes:
		c1, err := resolveColor(a.color, pattern.Red)
		if err != nil {
			return pattern.Pattern{}, err
		}
		c2, err := resolveColor(a.color2, pattern.Green)
		if err != nil {
			return pattern.Pattern{}, err
		}
		c3, err := resolveColor(a.color3, pattern.Blue)
		if err != nil {
			return pattern.Pattern{}, err
		}
		return pattern.NewStripes(c1, c2, c3), nil

	case pattern.Checkerboard:
		c1, err := resolveColor(a.color, pattern.White)
		if err != nil {
			return pattern.Pattern{}, err
		}
		c2, err := resolveColor(a.color2, pattern.Black)
		if err != nil {
			return pattern.Pattern{}, err
		}
		return pattern.NewCheckerboard(c1, c2), nil

	case pattern.GradientVertical, pattern.GradientHorizontal:
		from, err := resolveColor(a.from, pattern.Black)
		if err != nil {
			return pattern.Pattern{}, err
		}
		to, err := resolveColor(a.to, pattern.White)
		if err != nil {
			return pattern.Pattern{}, err
		}
		if kind == pattern.GradientVertical {
			return pattern.NewGradientVertical(from, to), nil
		}
		return pattern.NewGradientHorizontal(from, to), nil

	default:
		return pattern.Default(kind), nil
	}
}
