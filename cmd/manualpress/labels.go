package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/manualpress/manualpress/ebay"
	"github.com/manualpress/manualpress/labels"
)

var (
	flagLabelsOutput       string
	flagLabelsChrome       string
	flagLabelsTimeout      time.Duration
	flagLabelsNoSandbox    bool
	flagLabelsAutoDownload bool
	flagLabelsPrint        bool
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Generate shipping labels for unshipped eBay orders",
	Long: `Fetch unshipped orders and render one 4x6 inch address label per order
into a single PDF, ready for a thermal label printer. Rendering uses a
headless Chrome; pass --download to fetch a private Chromium build when
no browser is installed.`,
	RunE: runLabels,
}

func init() {
	labelsCmd.Flags().StringVarP(&flagLabelsOutput, "output", "o", "labels.pdf", "output PDF file")
	labelsCmd.Flags().StringVar(&flagLabelsChrome, "chrome", "", "path to the Chrome or Chromium executable")
	labelsCmd.Flags().DurationVar(&flagLabelsTimeout, "timeout", 30*time.Second, "render timeout")
	labelsCmd.Flags().BoolVar(&flagLabelsNoSandbox, "no-sandbox", false, "disable the Chrome sandbox (needed as root)")
	labelsCmd.Flags().BoolVar(&flagLabelsAutoDownload, "download", false, "download a Chromium build if no browser is found")
	labelsCmd.Flags().BoolVar(&flagLabelsPrint, "print", false, "spool the labels after rendering")
	rootCmd.AddCommand(labelsCmd)
}

func runLabels(cmd *cobra.Command, args []string) error {
	token, err := ebay.LoadToken()
	if err != nil {
		return err
	}
	orders, err := ebay.NewClient(token).UnshippedOrders(cmd.Context())
	if err != nil {
		return err
	}
	ls := labels.FromOrders(orders)
	if len(ls) == 0 {
		fmt.Println("no orders with shipping addresses")
		return nil
	}

	opts := []labels.Option{labels.WithTimeout(flagLabelsTimeout)}
	if flagLabelsChrome != "" {
		opts = append(opts, labels.WithChromePath(flagLabelsChrome))
	}
	if flagLabelsNoSandbox {
		opts = append(opts, labels.WithNoSandbox())
	}
	if flagLabelsAutoDownload {
		opts = append(opts, labels.WithAutoDownload())
	}

	res, err := labels.Render(cmd.Context(), ls, opts...)
	if err != nil {
		return err
	}
	if err := res.WriteToFile(flagLabelsOutput, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d labels\n", flagLabelsOutput, len(ls))

	if flagLabelsPrint {
		return runPrintFile(cmd, flagLabelsOutput)
	}
	return nil
}
