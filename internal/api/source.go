package api

import (
	"context"

	"github.com/promoshop/storefront/internal/catalog"
)

// ClickStatSource reads the locally maintained click counters. The click
// tracker is the production implementation.
type ClickStatSource interface {
	Stats() map[string]catalog.ClickStat
}

// StoreSource adapts the backend client plus the local click storage into
// the catalog store's Source.
type StoreSource struct {
	Client *Client
	Clicks ClickStatSource
}

func (s StoreSource) FetchPromotions(ctx context.Context) ([]catalog.Promotion, error) {
	return s.Client.Promotions(ctx)
}

func (s StoreSource) FetchActiveCoupons(ctx context.Context) ([]catalog.Coupon, error) {
	return s.Client.ActiveCoupons(ctx)
}

func (s StoreSource) FetchAllCoupons(ctx context.Context) ([]catalog.Coupon, error) {
	return s.Client.AllCoupons(ctx)
}

func (s StoreSource) FetchClickStats(ctx context.Context) (map[string]catalog.ClickStat, error) {
	if s.Clicks == nil {
		return map[string]catalog.ClickStat{}, nil
	}
	return s.Clicks.Stats(), nil
}

func (s StoreSource) FetchAdmins(ctx context.Context) ([]catalog.Admin, error) {
	return s.Client.Admins(ctx)
}
