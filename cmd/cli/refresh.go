package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// refreshCmd reloads every collection in one go, the panel's "reload
// everything" button.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload promotions, coupons, click counters and accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := adminPanel.RefreshAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Loaded %d promotions, %d coupons, %d accounts\n",
			len(store.Promotions()), len(store.Coupons()), len(store.Admins()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
