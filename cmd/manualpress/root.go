package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manualpress/manualpress"
	"github.com/manualpress/manualpress/search"
)

var (
	cfgFile     string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "manualpress",
	Short: "manualpress prepares PDF manuals for printing",
	Long: `manualpress composes PDF manuals into 2-up and 4-up print sheets,
extracts cover and preview images, manages printer presets, spools jobs,
and prints shipping labels for open eBay orders.

Configuration is read from ~/.manualpress.yaml:

    folders:
      - ~/manuals
      - ~/Downloads
    printer: office
    presets: ~/.manualpress-presets.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Usage()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.manualpress.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func setup() error {
	if flagVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".manualpress")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("manualpress")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	logrus.WithField("file", viper.ConfigFileUsed()).Debug("loaded config")
	return nil
}

// searchFolders returns the configured search folders with ~ expanded.
func searchFolders() []string {
	folders := viper.GetStringSlice("folders")
	home, err := os.UserHomeDir()
	if err != nil {
		return folders
	}
	out := make([]string, 0, len(folders))
	for _, f := range folders {
		if strings.HasPrefix(f, "~/") {
			f = filepath.Join(home, f[2:])
		}
		out = append(out, f)
	}
	return out
}

// findInput resolves a search query to exactly one PDF path, printing
// the other candidates when the match is ambiguous.
func findInput(query string) (string, error) {
	folders := searchFolders()
	if len(folders) == 0 {
		return "", fmt.Errorf("no search folders configured; set \"folders\" in the config file")
	}
	path, all, err := search.NewFinder(folders).FindOne(query)
	if err != nil {
		return "", err
	}
	if len(all) > 1 {
		fmt.Fprintf(os.Stderr, "%d matches for %q, using %s\n", len(all), query, path)
	}
	return path, nil
}

// resolveInputs turns positional arguments or a --find query into PDF
// paths.
func resolveInputs(args []string, findQuery string) ([]string, error) {
	if findQuery != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("give input files or --find, not both")
		}
		path, err := findInput(findQuery)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no input files given")
	}
	return args, nil
}

func parseOrientation(s string) (manualpress.Orientation, error) {
	switch strings.ToLower(s) {
	case "", "portrait":
		return manualpress.Portrait, nil
	case "landscape":
		return manualpress.Landscape, nil
	}
	return manualpress.Portrait, fmt.Errorf("unknown orientation %q (portrait or landscape)", s)
}

func parseAlign(s string) (manualpress.Align, error) {
	switch strings.ToLower(s) {
	case "", "center":
		return manualpress.AlignCenter, nil
	case "top":
		return manualpress.AlignTop, nil
	case "bottom":
		return manualpress.AlignBottom, nil
	}
	return manualpress.AlignCenter, fmt.Errorf("unknown alignment %q (center, top or bottom)", s)
}

func parseStacking(s string) (manualpress.Stacking, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return manualpress.StackAuto, nil
	case "columns", "cols":
		return manualpress.StackColumns, nil
	case "rows":
		return manualpress.StackRows, nil
	}
	return manualpress.StackAuto, fmt.Errorf("unknown stacking %q (auto, columns or rows)", s)
}
