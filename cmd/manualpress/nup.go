package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/manualpress/manualpress"
)

var (
	flagNupOutput      string
	flagNupFind        string
	flagNupMode        int
	flagNupSheet       string
	flagNupOrientation string
	flagNupMargin      float64
	flagNupGutter      float64
	flagNupZoom        float64
	flagNupAlign       string
	flagNupStack       string
	flagNupDuplicate   int
	flagNupInterleave  bool
	flagNupStop        string
)

var nupCmd = &cobra.Command{
	Use:   "nup [flags] <file.pdf>...",
	Short: "Compose pages 2-up or 4-up onto print sheets",
	Long: `Compose the pages of one or more PDFs onto larger sheets, two or four
source pages per sheet, preserving vector content.

With one input, pages flow in reading order. With several inputs and
--interleave, sheets alternate between the sources. With --duplicate N,
each page is repeated N times, which fills a sheet with copies for
cut-apart booklets.`,
	Example: `  manualpress nup manual.pdf
  manualpress nup --mode 4 --sheet a4 manual.pdf
  manualpress nup --find "router" --duplicate 2
  manualpress nup --interleave front.pdf back.pdf`,
	RunE: runNup,
}

func init() {
	nupCmd.Flags().StringVarP(&flagNupOutput, "output", "o", "", "output file (default <input>_<mode>up.pdf)")
	nupCmd.Flags().StringVar(&flagNupFind, "find", "", "search configured folders for the input instead of naming it")
	nupCmd.Flags().IntVar(&flagNupMode, "mode", 2, "pages per sheet, 2 or 4")
	nupCmd.Flags().StringVar(&flagNupSheet, "sheet", "letter", "sheet size: letter, legal, tabloid, a3, a4, a5")
	nupCmd.Flags().StringVar(&flagNupOrientation, "orientation", "portrait", "sheet orientation: portrait or landscape")
	nupCmd.Flags().Float64Var(&flagNupMargin, "margin", 0, "outer margin in points")
	nupCmd.Flags().Float64Var(&flagNupGutter, "gutter", 0, "gutter between cells in points")
	nupCmd.Flags().Float64Var(&flagNupZoom, "zoom", 1, "scale factor relative to best fit, capped at best fit")
	nupCmd.Flags().StringVar(&flagNupAlign, "align", "center", "vertical alignment in a cell: center, top or bottom")
	nupCmd.Flags().StringVar(&flagNupStack, "stack", "auto", "2-up cell stacking: auto, columns or rows")
	nupCmd.Flags().IntVar(&flagNupDuplicate, "duplicate", 1, "repeat each page N times")
	nupCmd.Flags().BoolVar(&flagNupInterleave, "interleave", false, "alternate pages from multiple inputs")
	nupCmd.Flags().StringVar(&flagNupStop, "stop", "longest", "interleave end: longest pads with blanks, shortest truncates")
	rootCmd.AddCommand(nupCmd)
}

func nupLayoutSpec() (manualpress.LayoutSpec, error) {
	sheet, ok := manualpress.SheetSizeByName(flagNupSheet)
	if !ok {
		return manualpress.LayoutSpec{}, fmt.Errorf("unknown sheet size %q", flagNupSheet)
	}
	orientation, err := parseOrientation(flagNupOrientation)
	if err != nil {
		return manualpress.LayoutSpec{}, err
	}
	align, err := parseAlign(flagNupAlign)
	if err != nil {
		return manualpress.LayoutSpec{}, err
	}
	stacking, err := parseStacking(flagNupStack)
	if err != nil {
		return manualpress.LayoutSpec{}, err
	}
	return manualpress.LayoutSpec{
		PerSheet:    flagNupMode,
		Sheet:       sheet,
		Orientation: orientation,
		MarginOuter: flagNupMargin,
		GutterX:     flagNupGutter,
		GutterY:     flagNupGutter,
		Stacking:    stacking,
		Zoom:        flagNupZoom,
		Align:       align,
	}, nil
}

func runNup(cmd *cobra.Command, args []string) error {
	inputs, err := resolveInputs(args, flagNupFind)
	if err != nil {
		return err
	}
	spec, err := nupLayoutSpec()
	if err != nil {
		return err
	}

	var sources [][]manualpress.Page
	for _, path := range inputs {
		var pages []manualpress.Page
		if manualpress.IsImagePath(path) {
			p, err := manualpress.OpenImage(path)
			if err != nil {
				return err
			}
			pages = []manualpress.Page{p}
		} else {
			doc, err := manualpress.OpenDocument(path)
			if err != nil {
				return err
			}
			pages = doc.Pages()
		}
		logrus.WithFields(logrus.Fields{
			"file":  path,
			"pages": len(pages),
		}).Debug("opened source")
		sources = append(sources, pages)
	}

	var pages []manualpress.Page
	switch {
	case flagNupInterleave:
		stop := manualpress.StopLongest
		if strings.EqualFold(flagNupStop, "shortest") {
			stop = manualpress.StopShortest
		} else if !strings.EqualFold(flagNupStop, "longest") {
			return fmt.Errorf("unknown stop mode %q (longest or shortest)", flagNupStop)
		}
		pages = manualpress.Interleave(sources, stop)
	case len(sources) == 1:
		pages = sources[0]
	default:
		for _, s := range sources {
			pages = append(pages, s...)
		}
	}
	if flagNupDuplicate > 1 {
		pages = manualpress.DuplicatePages(pages, flagNupDuplicate)
	}

	comp, err := manualpress.Compose(pages, spec)
	if err != nil {
		return err
	}
	res, err := manualpress.RenderPDF(comp, pages)
	if err != nil {
		return err
	}

	out := flagNupOutput
	if out == "" {
		out = nupOutputName(inputs, flagNupMode, flagNupInterleave)
	}
	if err := res.WriteToFile(out, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d pages on %d sheets\n", out, len(pages), comp.PageCount())
	return nil
}

// nupOutputName derives the output file name from the first input.
func nupOutputName(inputs []string, mode int, interleaved bool) string {
	base := strings.TrimSuffix(inputs[0], filepath.Ext(inputs[0]))
	if interleaved || len(inputs) > 1 {
		return fmt.Sprintf("%s_mix_%dup.pdf", base, mode)
	}
	return fmt.Sprintf("%s_%dup.pdf", base, mode)
}
