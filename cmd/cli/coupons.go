package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/promoshop/storefront/internal/api"
	"github.com/promoshop/storefront/internal/catalog"
	"github.com/promoshop/storefront/internal/validity"
)

// couponsCmd groups the coupon management subcommands
var couponsCmd = &cobra.Command{
	Use:     "coupons",
	Aliases: []string{"cupons"},
	Short:   "Manage coupons",
}

var couponsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all coupons, expired ones included",
	Args:  cobra.NoArgs,
	RunE:  runCouponsList,
}

var couponsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a coupon, or update one when --id is given",
	Example: `  promoshop coupons save --codigo PROMO10 --loja TechShop --validade 2026-12-31
  promoshop coupons save --id 77b2e1 --validade 2027-01-31`,
	Args: cobra.NoArgs,
	RunE: runCouponsSave,
}

var couponsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a coupon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminPanel.DeleteCoupon(cmd.Context(), args[0])
	},
}

var couponFlags struct {
	id          string
	code        string
	description string
	store       string
	link        string
	validity    string
}

func init() {
	rootCmd.AddCommand(couponsCmd)
	couponsCmd.AddCommand(couponsListCmd)
	couponsCmd.AddCommand(couponsSaveCmd)
	couponsCmd.AddCommand(couponsDeleteCmd)

	f := couponsSaveCmd.Flags()
	f.StringVar(&couponFlags.id, "id", "", "Coupon id; empty creates a new record")
	f.StringVar(&couponFlags.code, "codigo", "", "Coupon code")
	f.StringVar(&couponFlags.description, "descricao", "", "Description")
	f.StringVar(&couponFlags.store, "loja", "", "Store name")
	f.StringVar(&couponFlags.link, "link", "", "Merchant link")
	f.StringVar(&couponFlags.validity, "validade", "", "Expiry date (format: YYYY-MM-DD)")
}

func runCouponsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := store.RefreshAllCoupons(ctx); err != nil {
		return err
	}

	coupons := store.Coupons()
	if len(coupons) == 0 {
		fmt.Println("No coupons")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tSTORE\tVALID UNTIL\tSTATUS")
	fmt.Fprintln(w, "--\t----\t-----\t-----------\t------")
	for _, c := range coupons {
		status := validity.Classify(c.Validity.Time, now)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Code, c.Store,
			c.Validity.UTC().Format("2006-01-02"),
			status.Countdown())
	}
	return w.Flush()
}

func runCouponsSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	in := api.CouponInput{
		Code:        couponFlags.code,
		Description: couponFlags.description,
		Store:       couponFlags.store,
		Link:        couponFlags.link,
	}
	if couponFlags.validity != "" {
		t, err := time.Parse("2006-01-02", couponFlags.validity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid --validade %q, expected YYYY-MM-DD\n", couponFlags.validity)
			return err
		}
		in.Validity = catalog.ValidityDate{Time: t}
	}

	if couponFlags.id != "" {
		if err := store.RefreshAllCoupons(ctx); err != nil {
			return err
		}
		existing, ok := findCoupon(store.Coupons(), couponFlags.id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Coupon %s not found\n", couponFlags.id)
			return fmt.Errorf("coupon %s not found", couponFlags.id)
		}
		in = overlayCoupon(existing, in, cmd)
	}

	return adminPanel.SaveCoupon(ctx, couponFlags.id, in)
}

func findCoupon(coupons []catalog.Coupon, id string) (catalog.Coupon, bool) {
	for _, c := range coupons {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Coupon{}, false
}

func overlayCoupon(existing catalog.Coupon, in api.CouponInput, cmd *cobra.Command) api.CouponInput {
	out := api.CouponInput{
		Code:        existing.Code,
		Description: existing.Description,
		Store:       existing.Store,
		Link:        existing.Link,
		Validity:    existing.Validity,
	}
	f := cmd.Flags()
	if f.Changed("codigo") {
		out.Code = in.Code
	}
	if f.Changed("descricao") {
		out.Description = in.Description
	}
	if f.Changed("loja") {
		out.Store = in.Store
	}
	if f.Changed("link") {
		out.Link = in.Link
	}
	if f.Changed("validade") {
		out.Validity = in.Validity
	}
	return out
}
