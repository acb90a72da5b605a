package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manualpress/manualpress/search"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search the configured folders for PDFs",
	Long: `List PDFs in the configured search folders whose file name contains the
query, matched case-insensitively.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folders := searchFolders()
		if len(folders) == 0 {
			return fmt.Errorf("no search folders configured; set \"folders\" in the config file")
		}
		matches, err := search.NewFinder(folders).Find(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no PDF matching %q", args[0])
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
