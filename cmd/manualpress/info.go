package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manualpress/manualpress"
)

var flagInfoFind string

var infoCmd = &cobra.Command{
	Use:   "info [file.pdf]",
	Short: "Show page count and per-page dimensions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := resolveInputs(args, flagInfoFind)
		if err != nil {
			return err
		}
		doc, err := manualpress.OpenDocument(inputs[0])
		if err != nil {
			return err
		}

		fmt.Printf("File:  %s\n", doc.Path())
		fmt.Printf("Pages: %d\n", doc.PageCount())
		fmt.Println()
		for i, p := range doc.Pages() {
			fmt.Printf("  Page %d: %.0f x %.0f pt", i+1, p.Width, p.Height)
			if p.Rotation != 0 {
				fmt.Printf(" (rotated %d)", p.Rotation)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&flagInfoFind, "find", "", "search configured folders for the input")
	rootCmd.AddCommand(infoCmd)
}
