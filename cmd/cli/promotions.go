package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promoshop/storefront/internal/api"
	"github.com/promoshop/storefront/internal/pricing"
	"github.com/promoshop/storefront/internal/viewmodel"
)

// discountColumn renders the discount the way the storefront badge does.
func discountColumn(oldPrice, newPrice float64) string {
	d := pricing.Compute(oldPrice, newPrice)
	switch d.Kind {
	case pricing.Percent:
		return fmt.Sprintf("-%d%%", d.Percent)
	case pricing.Zero:
		return "0%"
	default:
		return "-"
	}
}

// promotionsCmd groups the promotion management subcommands
var promotionsCmd = &cobra.Command{
	Use:     "promotions",
	Aliases: []string{"promos"},
	Short:   "Manage promotions",
}

var promotionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all promotions",
	Args:  cobra.NoArgs,
	RunE:  runPromotionsList,
}

var promotionsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a promotion, or update one when --id is given",
	Long: `Creates a new promotion from the flags, or updates an existing one when --id
is set. On update, flags you do not pass keep their current value.`,
	Example: `  promoshop promotions save --titulo "Fone Bluetooth" --categoria eletronicos \
      --preco-antigo 200 --preco-novo 150 --loja TechShop --link https://shop.example/p1
  promoshop promotions save --id 66a1f0 --preco-novo 129.90`,
	Args: cobra.NoArgs,
	RunE: runPromotionsSave,
}

var promotionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a promotion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminPanel.DeletePromotion(cmd.Context(), args[0])
	},
}

var promoFlags struct {
	id          string
	title       string
	category    string
	description string
	oldPrice    float64
	newPrice    float64
	store       string
	image       string
	link        string
	coupons     []string
}

func init() {
	rootCmd.AddCommand(promotionsCmd)
	promotionsCmd.AddCommand(promotionsListCmd)
	promotionsCmd.AddCommand(promotionsSaveCmd)
	promotionsCmd.AddCommand(promotionsDeleteCmd)

	f := promotionsSaveCmd.Flags()
	f.StringVar(&promoFlags.id, "id", "", "Promotion id; empty creates a new record")
	f.StringVar(&promoFlags.title, "titulo", "", "Title")
	f.StringVar(&promoFlags.category, "categoria", "", "Category")
	f.StringVar(&promoFlags.description, "descricao", "", "Description")
	f.Float64Var(&promoFlags.oldPrice, "preco-antigo", 0, "Original price")
	f.Float64Var(&promoFlags.newPrice, "preco-novo", 0, "Promotional price")
	f.StringVar(&promoFlags.store, "loja", "", "Store name")
	f.StringVar(&promoFlags.image, "imagem", "", "Image URL")
	f.StringVar(&promoFlags.link, "link", "", "Merchant link")
	f.StringSliceVar(&promoFlags.coupons, "cupons", nil, "Related coupon ids")
}

func runPromotionsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := store.RefreshPromotions(ctx); err != nil {
		return err
	}

	promotions := store.Promotions()
	if len(promotions) == 0 {
		fmt.Println("No promotions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSTORE\tOLD\tNEW\tDISCOUNT")
	fmt.Fprintln(w, "--\t-----\t--------\t-----\t---\t---\t--------")
	for _, p := range promotions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Category, p.Store,
			viewmodel.FormatPrice(p.OldPrice),
			viewmodel.FormatPrice(p.NewPrice),
			discountColumn(p.OldPrice, p.NewPrice))
	}
	return w.Flush()
}

func runPromotionsSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	in := api.PromotionInput{
		Title:          promoFlags.title,
		Category:       promoFlags.category,
		Description:    promoFlags.description,
		OldPrice:       promoFlags.oldPrice,
		NewPrice:       promoFlags.newPrice,
		Store:          promoFlags.store,
		Image:          promoFlags.image,
		Link:           promoFlags.link,
		RelatedCoupons: promoFlags.coupons,
	}

	// On update, start from the existing record and overlay only the flags
	// that were actually set, so a partial edit does not blank fields.
	if promoFlags.id != "" {
		if err := store.RefreshPromotions(ctx); err != nil {
			return err
		}
		existing, ok := store.Promotion(promoFlags.id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Promotion %s not found\n", promoFlags.id)
			return fmt.Errorf("promotion %s not found", promoFlags.id)
		}
		in = overlayPromotion(api.PromotionInputFrom(existing), cmd)
	}

	return adminPanel.SavePromotion(ctx, promoFlags.id, in)
}

func overlayPromotion(in api.PromotionInput, cmd *cobra.Command) api.PromotionInput {
	f := cmd.Flags()
	if f.Changed("titulo") {
		in.Title = promoFlags.title
	}
	if f.Changed("categoria") {
		in.Category = promoFlags.category
	}
	if f.Changed("descricao") {
		in.Description = promoFlags.description
	}
	if f.Changed("preco-antigo") {
		in.OldPrice = promoFlags.oldPrice
	}
	if f.Changed("preco-novo") {
		in.NewPrice = promoFlags.newPrice
	}
	if f.Changed("loja") {
		in.Store = promoFlags.store
	}
	if f.Changed("imagem") {
		in.Image = promoFlags.image
	}
	if f.Changed("link") {
		in.Link = promoFlags.link
	}
	if f.Changed("cupons") {
		in.RelatedCoupons = promoFlags.coupons
	}
	return in
}
