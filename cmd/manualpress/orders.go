package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manualpress/manualpress/ebay"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List unshipped eBay orders",
	Long: `List orders from the eBay account that have not fully shipped, with
buyer, items and shipping address. The user access token is read from
the EBAY_USER_TOKEN environment variable or ` + ebay.TokenFile + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := ebay.LoadToken()
		if err != nil {
			return err
		}
		orders, err := ebay.NewClient(token).UnshippedOrders(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%d unshipped or partially shipped orders\n", len(orders))
		for i := range orders {
			o := &orders[i]
			fmt.Println(strings.Repeat("-", 60))
			fmt.Printf("Order:  %s (%s)\n", o.OrderID, o.OrderFulfillmentStatus)
			fmt.Printf("Buyer:  %s\n", o.Buyer.Username)
			for _, item := range o.LineItems {
				fmt.Printf("Item:   %dx %s\n", item.Quantity, item.Title)
			}
			if st, ok := o.ShipToAddress(); ok {
				fmt.Println("Ship to:")
				for _, line := range st.Lines() {
					fmt.Printf("  %s\n", line)
				}
			} else {
				fmt.Println("Ship to: (not provided)")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)
}
