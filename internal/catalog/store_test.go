package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	promotions []Promotion
	coupons    []Coupon
	allCoupons []Coupon
	clicks     map[string]ClickStat
	admins     []Admin
	err        error

	promotionCalls int
}

func (f *fakeSource) FetchPromotions(ctx context.Context) ([]Promotion, error) {
	f.promotionCalls++
	return f.promotions, f.err
}

func (f *fakeSource) FetchActiveCoupons(ctx context.Context) ([]Coupon, error) {
	return f.coupons, f.err
}

func (f *fakeSource) FetchAllCoupons(ctx context.Context) ([]Coupon, error) {
	return f.allCoupons, f.err
}

func (f *fakeSource) FetchClickStats(ctx context.Context) (map[string]ClickStat, error) {
	return f.clicks, f.err
}

func (f *fakeSource) FetchAdmins(ctx context.Context) ([]Admin, error) {
	return f.admins, f.err
}

func TestStoreRefreshReplacesList(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{promotions: sampleCatalog()}
	store := NewStore(src)

	require.NoError(t, store.RefreshPromotions(ctx))
	assert.Len(t, store.Promotions(), 3)

	src.promotions = src.promotions[:1]
	require.NoError(t, store.RefreshPromotions(ctx))
	assert.Len(t, store.Promotions(), 1)
}

func TestStoreKeepsStaleDataOnRefreshFailure(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{promotions: sampleCatalog()}
	store := NewStore(src)

	require.NoError(t, store.RefreshPromotions(ctx))

	src.err = errors.New("connection refused")
	err := store.RefreshPromotions(ctx)
	require.Error(t, err)

	// Prior state survives the failed refresh.
	assert.Len(t, store.Promotions(), 3)
}

func TestStoreGetAllDoesNotRefetch(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{promotions: sampleCatalog()}
	store := NewStore(src)

	require.NoError(t, store.RefreshPromotions(ctx))
	calls := src.promotionCalls

	store.Promotions()
	store.Promotions()
	_, _ = store.Promotion("p1")

	assert.Equal(t, calls, src.promotionCalls, "reads must not hit the source")
}

func TestStoreGettersReturnSnapshots(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{promotions: sampleCatalog()}
	store := NewStore(src)
	require.NoError(t, store.RefreshPromotions(ctx))

	snapshot := store.Promotions()
	snapshot[0].Title = "mutated"

	assert.Equal(t, "Fone Bluetooth", store.Promotions()[0].Title)
}

func TestStoreCouponViews(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	active := []Coupon{{ID: "c1", Validity: validUntil(now, 5)}}
	all := append(active, Coupon{ID: "c2", Validity: validUntil(now, -5)})
	src := &fakeSource{coupons: active, allCoupons: all}
	store := NewStore(src)

	require.NoError(t, store.RefreshCoupons(ctx))
	assert.Len(t, store.Coupons(), 1)

	require.NoError(t, store.RefreshAllCoupons(ctx))
	assert.Len(t, store.Coupons(), 2)
}

func TestStorePromotionLookup(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{promotions: sampleCatalog()}
	store := NewStore(src)
	require.NoError(t, store.RefreshPromotions(ctx))

	p, ok := store.Promotion("p2")
	require.True(t, ok)
	assert.Equal(t, "Smart TV 50\"", p.Title)

	_, ok = store.Promotion("missing")
	assert.False(t, ok)
}
