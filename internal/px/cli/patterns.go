package cli

import (
	"github.com/abdul-hamid-achik/pixgen/internal/pattern"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List available test patterns",
	RunE:  runPatterns,
}

var patternHints = map[pattern.Kind]string{
	pattern.Solid:              "single color fill (--color, default white)",
	pattern.Stripes:            "three vertical bands (--color/--color2/--color3, default red/green/blue)",
	pattern.Checkerboard:       "16x16 tiles (--color/--color2, default white/black)",
	pattern.GradientVertical:   "top-to-bottom blend (--from/--to, default black/white)",
	pattern.GradientHorizontal: "left-to-right blend (--from/--to, default black/white)",
	pattern.ColorBars:          "8 bars: white yellow cyan green magenta red blue black",
	pattern.GrayscaleBars:      "8 bars stepping white down to black",
}

func runPatterns(cmd *cobra.Command, args []string) error {
	if printer.IsJSON() {
		return printer.JSON(map[string]interface{}{
			"patterns": pattern.KindNames(),
		})
	}

	printer.Println("Available patterns:")
	for _, k := range pattern.Kinds() {
		printer.KeyValue(k.String(), patternHints[k])
	}
	return nil
}
