package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promoshop/storefront/internal/stats"
)

var statsTop int

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	Long: `Shows the dashboard headline numbers: how many promotions are live, how many
clicks the storefront has forwarded and which promotion draws the most
traffic.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntVar(&statsTop, "top", 5, "How many promotions to rank by clicks")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := store.RefreshPromotions(ctx); err != nil {
		return err
	}
	if err := store.RefreshClickStats(ctx); err != nil {
		return err
	}

	promotions := store.Promotions()
	clickStats := store.ClickStats()
	summary := stats.Summarize(promotions, clickStats)

	fmt.Printf("Promotions:  %d\n", summary.TotalPromotions)
	fmt.Printf("Clicks:      %d\n", summary.TotalClicks)
	if summary.MostClicked != "" {
		fmt.Printf("Top seller:  %s\n", summary.MostClicked)
	}

	ranked := stats.TopClicked(promotions, clickStats, statsTop)
	if len(ranked) == 0 {
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CLICKS\tTITLE\tSTORE")
	fmt.Fprintln(w, "------\t-----\t-----")
	for _, r := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.Clicks, r.Promotion.Title, r.Promotion.Store)
	}
	return w.Flush()
}
