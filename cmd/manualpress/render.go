package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manualpress/manualpress/preview"
)

var (
	flagRenderZoom float64
	flagRenderFind string
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [file.pdf]",
	Short: "Rasterize every page to PNG images",
	Long: `Render each page of a PDF to a PNG file in a sibling directory named
<input>_png. The zoom factor multiplies the 72 DPI base resolution, so
--zoom 3 renders at 216 DPI.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := resolveInputs(args, flagRenderFind)
		if err != nil {
			return err
		}
		dir, err := preview.RenderAll(inputs[0], flagRenderZoom)
		if err != nil {
			return err
		}
		n, err := preview.PageCount(inputs[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d pages rendered to %s\n", n, dir)
		return nil
	},
}

func init() {
	renderCmd.Flags().Float64Var(&flagRenderZoom, "zoom", preview.DefaultZoom, "resolution multiplier over 72 DPI")
	renderCmd.Flags().StringVar(&flagRenderFind, "find", "", "search configured folders for the input")
	rootCmd.AddCommand(renderCmd)
}
