package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manualpress/manualpress/preview"
)

var (
	flagCoverOutput string
	flagCoverFind   string
	flagCoverPage   int
	flagCoverZoom   float64
	flagCoverScale  float64
	flagCoverCircle bool
	flagCoverShadow bool
	flagCoverJPEG   bool
)

var coverCmd = &cobra.Command{
	Use:   "cover [flags] [file.pdf]",
	Short: "Extract one page as a cover image",
	Long: `Render a single page to an image, typically the first page as a product
photo or thumbnail. The --circle flag crops the page to a centered
circle and --shadow adds a soft drop shadow behind it.`,
	Example: `  manualpress cover manual.pdf
  manualpress cover --circle --shadow --scale 0.5 manual.pdf
  manualpress cover --page 2 --jpeg --find "mixer"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCover,
}

func init() {
	coverCmd.Flags().StringVarP(&flagCoverOutput, "output", "o", "", "output file (default <input>_cover.png)")
	coverCmd.Flags().StringVar(&flagCoverFind, "find", "", "search configured folders for the input")
	coverCmd.Flags().IntVar(&flagCoverPage, "page", 1, "page to extract, 1-based")
	coverCmd.Flags().Float64Var(&flagCoverZoom, "zoom", preview.DefaultZoom, "resolution multiplier over 72 DPI")
	coverCmd.Flags().Float64Var(&flagCoverScale, "scale", 1, "shrink factor applied after rendering")
	coverCmd.Flags().BoolVar(&flagCoverCircle, "circle", false, "crop to a centered circle")
	coverCmd.Flags().BoolVar(&flagCoverShadow, "shadow", false, "add a drop shadow (implies --circle)")
	coverCmd.Flags().BoolVar(&flagCoverJPEG, "jpeg", false, "write a plain JPEG preview instead of PNG")
	rootCmd.AddCommand(coverCmd)
}

func runCover(cmd *cobra.Command, args []string) error {
	inputs, err := resolveInputs(args, flagCoverFind)
	if err != nil {
		return err
	}
	input := inputs[0]

	if flagCoverJPEG {
		out, err := preview.SaveJPEG(input, flagCoverPage-1, filepath.Dir(input))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	data, err := preview.CoverPNG(input, flagCoverPage-1, preview.CoverOptions{
		Zoom:   flagCoverZoom,
		Circle: flagCoverCircle || flagCoverShadow,
		Shadow: flagCoverShadow,
		Scale:  flagCoverScale,
	})
	if err != nil {
		return err
	}

	out := flagCoverOutput
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "_cover.png"
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
