package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/promoshop/storefront/internal/catalog"
	"github.com/promoshop/storefront/internal/viewmodel"
)

// catalogCmd shows the public storefront view with the same filters the
// storefront exposes.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the public catalog, optionally filtered",
	Example: `  promoshop catalog
  promoshop catalog --categoria eletronicos --preco-max 200
  promoshop catalog --loja techshop --q fone`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

var catalogFlags struct {
	text     string
	category string
	store    string
	minPrice float64
	maxPrice float64
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	f := catalogCmd.Flags()
	f.StringVar(&catalogFlags.text, "q", "", "Title search text")
	f.StringVar(&catalogFlags.category, "categoria", "", `Category ("todas" or empty matches all)`)
	f.StringVar(&catalogFlags.store, "loja", "", `Store ("todas" or empty matches all)`)
	f.Float64Var(&catalogFlags.minPrice, "preco-min", 0, "Minimum promotional price")
	f.Float64Var(&catalogFlags.maxPrice, "preco-max", 0, "Maximum promotional price (0 means no cap)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := store.RefreshPromotions(ctx); err != nil {
		return err
	}
	if err := store.RefreshCoupons(ctx); err != nil {
		return err
	}

	criteria := catalog.Criteria{
		Text:     catalogFlags.text,
		Category: catalogFlags.category,
		Store:    catalogFlags.store,
		MinPrice: catalogFlags.minPrice,
		MaxPrice: catalogFlags.maxPrice,
	}

	now := time.Now()
	promotions := catalog.Filter(store.Promotions(), criteria)
	if len(promotions) == 0 {
		fmt.Println("No promotions match")
		return nil
	}

	index := catalog.BuildIndex(store.Coupons(), now)
	cards := viewmodel.BuildCatalog(promotions, index, now)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TITLE\tSTORE\tPRICE\tWAS\tBADGE\tCOUPONS")
	fmt.Fprintln(w, "-----\t-----\t-----\t---\t-----\t-------")
	for _, card := range cards {
		was := "-"
		if card.ShowOld {
			was = card.OldPrice
		}
		badge := card.Badge
		if badge == "" {
			badge = "-"
		}
		codes := "-"
		if len(card.Coupons) > 0 {
			codes = ""
			for i, c := range card.Coupons {
				if i > 0 {
					codes += ", "
				}
				codes += c.Code
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			card.Title, card.Store, card.NewPrice, was, badge, codes)
	}
	return w.Flush()
}
