// manualpress prepares PDF manuals for printing: 2-up and 4-up page
// composition, cover image extraction, printer presets, spooling, and
// eBay shipping labels.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
