package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manualpress/manualpress"
	"github.com/manualpress/manualpress/printer"
)

var (
	flagPrintFind    string
	flagPrintPreset  string
	flagPrintPrinter string
	flagPrintDuplex  bool
	flagPrintColor   bool
	flagPrintCopies  int
	flagPrintPages   string
)

var printCmd = &cobra.Command{
	Use:   "print [flags] [file.pdf]",
	Short: "Spool a PDF to a printer",
	Long: `Send a PDF to the system print spooler through lp (or lpr). Options come
from a preset, explicit flags, or the "printer" key in the config file,
in that order of precedence for each value.`,
	Example: `  manualpress print manual_2up.pdf
  manualpress print --preset booklet --find "router"
  manualpress print --duplex --copies 2 --pages 1-4 manual.pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVar(&flagPrintFind, "find", "", "search configured folders for the input")
	printCmd.Flags().StringVar(&flagPrintPreset, "preset", "", "apply printer options from a preset")
	printCmd.Flags().StringVar(&flagPrintPrinter, "printer", "", "destination printer queue")
	printCmd.Flags().BoolVar(&flagPrintDuplex, "duplex", false, "two-sided printing")
	printCmd.Flags().BoolVar(&flagPrintColor, "color", false, "color output")
	printCmd.Flags().IntVar(&flagPrintCopies, "copies", 1, "number of copies")
	printCmd.Flags().StringVar(&flagPrintPages, "pages", "", "page selection, e.g. 1-4,7")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	inputs, err := resolveInputs(args, flagPrintFind)
	if err != nil {
		return err
	}
	input := inputs[0]

	opts := printer.Options{
		Printer: viper.GetString("printer"),
		Duplex:  flagPrintDuplex,
		Color:   flagPrintColor,
		Copies:  flagPrintCopies,
		Pages:   flagPrintPages,
	}
	if flagPrintPreset != "" {
		store, err := openPresets()
		if err != nil {
			return err
		}
		p, ok := store.Get(flagPrintPreset)
		if !ok {
			return fmt.Errorf("no preset named %q", flagPrintPreset)
		}
		if p.Printer != "" {
			opts.Printer = p.Printer
		}
		opts.Duplex = p.Duplex
		opts.Color = p.Color
		if p.Copies > 0 {
			opts.Copies = p.Copies
		}
		if p.Pages != "" && opts.Pages == "" {
			opts.Pages = p.Pages
		}
	}
	if flagPrintPrinter != "" {
		opts.Printer = flagPrintPrinter
	}

	if opts.Pages != "" {
		doc, err := manualpress.OpenDocument(input)
		if err != nil {
			return err
		}
		if _, err := parsePageRange(opts.Pages, doc.PageCount()); err != nil {
			return fmt.Errorf("invalid page range %q: %w", opts.Pages, err)
		}
	}

	if err := printer.Print(cmd.Context(), input, opts); err != nil {
		return err
	}
	fmt.Printf("spooled %s\n", input)
	return nil
}

// runPrintFile spools path with the configured default printer.
func runPrintFile(cmd *cobra.Command, path string) error {
	opts := printer.Options{Printer: viper.GetString("printer"), Copies: 1}
	if err := printer.Print(cmd.Context(), path, opts); err != nil {
		return err
	}
	fmt.Printf("spooled %s\n", path)
	return nil
}
