package cli

import (
	"fmt"

	"github.com/abdul-hamid-achik/pixgen/internal/pattern"
	"github.com/abdul-hamid-achik/pixgen/internal/preview"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print pattern rows as text without writing a file",
	Long: `Preview renders the pattern's scanlines as (r,g,b) tuples in
canonical RGB order, top row first, with no padding and no channel
swap. With --swatch each pixel is shown as a colored block instead
(requires a truecolor terminal).

Examples:
  px preview -W 9 -H 3 -p rgb-stripes
  px preview -W 32 -H 8 -p checkerboard --swatch`,
	RunE: runPreview,
}

var (
	prevWidth   int
	prevHeight  int
	prevPattern string
	prevColor   string
	prevColor2  string
	prevColor3  string
	prevFrom    string
	prevTo      string
	prevSwatch  bool
	prevRows    int
)

func init() {
	previewCmd.Flags().IntVarP(&prevWidth, "width", "W", 8, "Preview width in pixels")
	previewCmd.Flags().IntVarP(&prevHeight, "height", "H", 4, "Preview height in pixels")
	previewCmd.Flags().StringVarP(&prevPattern, "pattern", "p", "rgb-stripes", "Pattern name (see 'px patterns')")
	previewCmd.Flags().StringVarP(&prevColor, "color", "c", "", "Primary color (name or #rrggbb)")
	previewCmd.Flags().StringVar(&prevColor2, "color2", "", "Secondary color")
	previewCmd.Flags().StringVar(&prevColor3, "color3", "", "Tertiary color")
	previewCmd.Flags().StringVar(&prevFrom, "from", "", "Gradient start color")
	previewCmd.Flags().StringVar(&prevTo, "to", "", "Gradient end color")
	previewCmd.Flags().BoolVar(&prevSwatch, "swatch", false, "Render pixels as colored blocks")
	previewCmd.Flags().IntVar(&prevRows, "rows", 0, "Limit output to the first N rows (0 = all)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	kind, err := pattern.ParseKind(prevPattern)
	if err != nil {
		return err
	}
	pat, err := buildPattern(kind, colorArgs{
		color:  prevColor,
		color2: prevColor2,
		color3: prevColor3,
		from:   prevFrom,
		to:     prevTo,
	})
	if err != nil {
		return err
	}

	r, err := preview.New(prevWidth, prevHeight, pat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if printer.IsJSON() {
		rows := make([]string, 0, prevHeight)
		for line := range r.Lines() {
			rows = append(rows, line)
			if prevRows > 0 && len(rows) >= prevRows {
				break
			}
		}
		return printer.JSON(map[string]interface{}{
			"pattern": kind.String(),
			"width":   prevWidth,
			"height":  prevHeight,
			"rows":    rows,
		})
	}

	if prevSwatch && !color.NoColor {
		frame := r.Frame()
		limit := frame.Height()
		if prevRows > 0 && prevRows < limit {
			limit = prevRows
		}
		for y := 0; y < limit; y++ {
			for x := 0; x < frame.Width(); x++ {
				c := frame.ColorAt(x, y)
				fmt.Fprintf(out, "\x1b[38;2;%d;%d;%dm██\x1b[0m", c.R, c.G, c.B)
			}
			fmt.Fprintln(out)
		}
		return nil
	}

	n := 0
	for line := range r.Lines() {
		fmt.Fprintln(out, line)
		n++
		if prevRows > 0 && n >= prevRows {
			break
		}
	}
	return nil
}
