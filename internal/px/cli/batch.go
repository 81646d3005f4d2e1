package cli

import (
	"fmt"

	"github.com/abdul-hamid-achik/pixgen/internal/bmp"
	"github.com/abdul-hamid-achik/pixgen/internal/pattern"
	"github.com/abdul-hamid-achik/pixgen/internal/px/config"
	"github.com/abdul-hamid-achik/pixgen/internal/px/output"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Generate a suite of test patterns from a YAML manifest",
	Long: `Batch reads a manifest and generates every listed file.

Manifest format:
  defaults:
    width: 1920
    height: 1080
    order: bgr
  outputs:
    - file: bars.bmp
      pattern: color-bars
    - file: warm.bmp
      pattern: solid
      color: "#ff8000"
    - file: fade.bmp
      pattern: vertical-gradient
      from: "#000000"
      to: "#00ff80"`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest, err := config.LoadManifest(args[0])
	if err != nil {
		return err
	}

	bar := output.NewProgress(len(manifest.Outputs), "generating",
		output.ProgressWithQuiet(printer.IsQuiet() || printer.IsJSON()))

	var successful, failed int
	var results []map[string]interface{}

	for _, o := range manifest.Outputs {
		o = o.Merged(manifest.Defaults, cfg)

		err := generateOutput(o)
		bar.Increment()

		if err != nil {
			printer.FileFailed(o.File, err)
			results = append(results, map[string]interface{}{
				"file":  o.File,
				"error": err.Error(),
			})
			failed++
			continue
		}

		results = append(results, map[string]interface{}{
			"file":    o.File,
			"pattern": o.Pattern,
			"width":   o.Width,
			"height":  o.Height,
		})
		successful++
	}
	bar.Finish()

	if printer.IsJSON() {
		return printer.JSON(map[string]interface{}{
			"results":    results,
			"total":      len(manifest.Outputs),
			"successful": successful,
			"failed":     failed,
		})
	}

	printer.Summary(successful, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d outputs failed", failed, len(manifest.Outputs))
	}
	return nil
}

func generateOutput(o config.ManifestOutput) error {
	if o.File == "" {
		return fmt.Errorf("output entry has no file")
	}

	kind, err := pattern.ParseKind(o.Pattern)
	if err != nil {
		return err
	}
	order, err := bmp.ParseChannelOrder(o.Order)
	if err != nil {
		return err
	}
	pat, err := buildPattern(kind, colorArgs{
		color:  o.Color,
		color2: o.Color2,
		color3: o.Color3,
		from:   o.From,
		to:     o.To,
	})
	if err != nil {
		return err
	}

	return bmp.EncodeFile(o.File, o.Width, o.Height, pat, order)
}
