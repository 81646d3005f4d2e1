package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/pixgen/internal/apperror"
	"github.com/abdul-hamid-achik/pixgen/internal/bmp"
	"github.com/abdul-hamid-achik/pixgen/internal/pattern"
	"github.com/abdul-hamid-achik/pixgen/internal/px/output"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [output.bmp]",
	Short: "Generate a BMP test pattern file",
	Long: `Generate writes one test pattern as an uncompressed 24-bit BMP.

When no output file is given, the name is derived from the parameters,
e.g. color_bars_1920x1080_BGR.bmp.

Examples:
  px generate -p color-bars -W 1920 -H 1080
  px generate wall.bmp -p solid -c '#ff8000'
  px generate -p vertical-gradient --from black --to '#00ff80'
  px generate -p rgb-stripes -o rgb        # literal RGB bytes, non-standard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	genWidth    int
	genHeight   int
	genPattern  string
	genOrder    string
	genColor    string
	genColor2   string
	genColor3   string
	genFrom     string
	genTo       string
	genProgress bool
)

func init() {
	generateCmd.Flags().IntVarP(&genWidth, "width", "W", 0, "Image width in pixels")
	generateCmd.Flags().IntVarP(&genHeight, "height", "H", 0, "Image height in pixels")
	generateCmd.Flags().StringVarP(&genPattern, "pattern", "p", "rgb-stripes", "Pattern name (see 'px patterns')")
	generateCmd.Flags().StringVarP(&genOrder, "order", "o", "", "Pixel byte order: bgr (standard) or rgb")
	generateCmd.Flags().StringVarP(&genColor, "color", "c", "", "Primary color (name or #rrggbb)")
	generateCmd.Flags().StringVar(&genColor2, "color2", "", "Secondary color")
	generateCmd.Flags().StringVar(&genColor3, "color3", "", "Tertiary color")
	generateCmd.Flags().StringVar(&genFrom, "from", "", "Gradient start color")
	generateCmd.Flags().StringVar(&genTo, "to", "", "Gradient end color")
	generateCmd.Flags().BoolVar(&genProgress, "progress", true, "Show a progress bar while writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	width, height := genWidth, genHeight
	if width == 0 {
		width = cfg.Width
	}
	if height == 0 {
		height = cfg.Height
	}
	orderName := genOrder
	if orderName == "" {
		orderName = cfg.Order
	}

	kind, err := pattern.ParseKind(genPattern)
	if err != nil {
		return err
	}
	order, err := bmp.ParseChannelOrder(orderName)
	if err != nil {
		return err
	}
	pat, err := buildPattern(kind, colorArgs{
		color:  genColor,
		color2: genColor2,
		color3: genColor3,
		from:   genFrom,
		to:     genTo,
	})
	if err != nil {
		return err
	}

	// Reject bad dimensions before the destination exists.
	if _, err := pattern.NewFrame(width, height, pat); err != nil {
		return err
	}

	out := defaultFilename(kind, width, height, order)
	if len(args) == 1 {
		out = args[0]
	}

	f, err := os.Create(out)
	if err != nil {
		return apperror.WrapWithMessage(err, apperror.ErrIOFailure,
			fmt.Sprintf("create %s: %v", out, err))
	}

	total := int64(bmp.FileSize(width, height))
	bar := output.NewByteProgress(total, "writing "+out,
		!genProgress || printer.IsQuiet() || printer.IsJSON())

	err = bmp.Encode(io.MultiWriter(f, bar), width, height, pat, order)
	bar.Finish()
	if cerr := f.Close(); cerr != nil && err == nil {
		err = apperror.WrapWithMessage(cerr, apperror.ErrIOFailure,
			fmt.Sprintf("close %s: %v", out, cerr))
	}
	if err != nil {
		return err
	}

	printer.Success("%s", out)
	printer.KeyValue("pattern", kind.String())
	printer.KeyValue("size", fmt.Sprintf("%dx%d", width, height))
	printer.KeyValue("order", order.String())
	printer.KeyValue("bytes", fmt.Sprintf("%d", total))
	if order == bmp.RGB {
		printer.Warn("RGB order is non-standard: conformant viewers will show swapped channels")
	}

	if printer.IsJSON() {
		return printer.JSON(map[string]interface{}{
			"file":    out,
			"pattern": kind.String(),
			"width":   width,
			"height":  height,
			"order":   order.String(),
			"bytes":   total,
		})
	}
	return nil
}

// defaultFilename mirrors the suggested name the interactive tool
// always used: <pattern>_<W>x<H>_<ORDER>.bmp with underscores.
func defaultFilename(kind pattern.Kind, width, height int, order bmp.ChannelOrder) string {
	name := strings.ReplaceAll(kind.String(), "-", "_")
	return fmt.Sprintf("%s_%dx%d_%s.bmp", name, width, height, order)
}
