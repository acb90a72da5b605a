package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manualpress/manualpress/preset"
)

var (
	flagPresetSheet       string
	flagPresetPerSheet    int
	flagPresetOrientation string
	flagPresetMargin      float64
	flagPresetGutter      float64
	flagPresetPrinter     string
	flagPresetDuplex      bool
	flagPresetColor       bool
	flagPresetCopies      int
	flagPresetPages       string
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage named print presets",
	Long: `A preset bundles a sheet layout with printer options under a name, so a
recurring job like "a5 booklet on the office duplexer" is one flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Usage()
	},
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List preset names",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openPresets()
		if err != nil {
			return err
		}
		for _, name := range store.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openPresets()
		if err != nil {
			return err
		}
		p, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("no preset named %q", args[0])
		}
		fmt.Printf("sheet:       %s\n", p.Sheet)
		fmt.Printf("per_sheet:   %d\n", p.PerSheet)
		fmt.Printf("orientation: %s\n", p.Orientation)
		fmt.Printf("margin:      %.1f pt\n", p.MarginOuter)
		fmt.Printf("gutter:      %.1f pt\n", p.Gutter)
		fmt.Printf("printer:     %s\n", p.Printer)
		fmt.Printf("duplex:      %v\n", p.Duplex)
		fmt.Printf("color:       %v\n", p.Color)
		fmt.Printf("copies:      %d\n", p.Copies)
		fmt.Printf("pages:       %s\n", p.Pages)
		return nil
	},
}

var presetSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or replace a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openPresets()
		if err != nil {
			return err
		}
		p := preset.Preset{
			Sheet:       flagPresetSheet,
			PerSheet:    flagPresetPerSheet,
			Orientation: flagPresetOrientation,
			MarginOuter: flagPresetMargin,
			Gutter:      flagPresetGutter,
			Printer:     flagPresetPrinter,
			Duplex:      flagPresetDuplex,
			Color:       flagPresetColor,
			Copies:      flagPresetCopies,
			Pages:       flagPresetPages,
		}
		if _, err := p.LayoutSpec(); err != nil {
			return err
		}
		return store.Set(args[0], p)
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openPresets()
		if err != nil {
			return err
		}
		return store.Delete(args[0])
	},
}

func init() {
	presetSetCmd.Flags().StringVar(&flagPresetSheet, "sheet", "letter", "sheet size name")
	presetSetCmd.Flags().IntVar(&flagPresetPerSheet, "mode", 2, "pages per sheet, 2 or 4")
	presetSetCmd.Flags().StringVar(&flagPresetOrientation, "orientation", "portrait", "portrait or landscape")
	presetSetCmd.Flags().Float64Var(&flagPresetMargin, "margin", 0, "outer margin in points")
	presetSetCmd.Flags().Float64Var(&flagPresetGutter, "gutter", 0, "gutter between cells in points")
	presetSetCmd.Flags().StringVar(&flagPresetPrinter, "printer", "", "destination printer queue")
	presetSetCmd.Flags().BoolVar(&flagPresetDuplex, "duplex", false, "two-sided printing")
	presetSetCmd.Flags().BoolVar(&flagPresetColor, "color", false, "color output")
	presetSetCmd.Flags().IntVar(&flagPresetCopies, "copies", 1, "number of copies")
	presetSetCmd.Flags().StringVar(&flagPresetPages, "pages", "", "page selection, e.g. 1-4,7")

	presetCmd.AddCommand(presetListCmd, presetShowCmd, presetSetCmd, presetDeleteCmd)
	rootCmd.AddCommand(presetCmd)
}

func openPresets() (*preset.Store, error) {
	path := viper.GetString("presets")
	if path == "" {
		path = preset.DefaultPath()
	}
	return preset.Open(path)
}
