package cli

import (
	"github.com/abdul-hamid-achik/pixgen/internal/px/config"
	"github.com/abdul-hamid-achik/pixgen/internal/px/output"
	"github.com/abdul-hamid-achik/pixgen/internal/px/version"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	quietMode  bool
	noColor    bool
	cfg        *config.Config
	printer    *output.Printer
)

var rootCmd = &cobra.Command{
	Use:   "px",
	Short: "px - deterministic BMP test pattern generator",
	Long: `px generates synthetic raster test images (solid colors, stripes,
gradients, checkerboards, color bars) as uncompressed 24-bit BMP files
with known, byte-exact pixel values for display and device testing.

Get started:
  px patterns                        # List available patterns
  px generate -p color-bars          # Write color_bars_640x480_BGR.bmp
  px preview -W 8 -H 4 -p stripes    # Inspect rows without writing a file`,
	Version: version.Full(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		printer = output.New(
			output.WithJSON(jsonOutput),
			output.WithQuiet(quietMode),
			output.WithNoColor(noColor),
		)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON (for scripting)")
	rootCmd.PersistentFlags().BoolVar(&quietMode, "quiet", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate("px version {{.Version}}\n")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(batchCmd)
}
