package viewmodel

import (
	"testing"
	"time"

	"github.com/promoshop/storefront/internal/catalog"
	"github.com/promoshop/storefront/internal/validity"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{49.9, "R$ 49,90"},
		{150, "R$ 150,00"},
		{0, "R$ 0,00"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.input); got != tt.expected {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildPromotionCardDiscountBadge(t *testing.T) {
	p := catalog.Promotion{ID: "p1", Title: "Fone", OldPrice: 100, NewPrice: 50}
	card := BuildPromotionCard(p, catalog.Index{}, now)

	if card.Badge != "-50%" {
		t.Errorf("Badge = %q, want -50%%", card.Badge)
	}
	if !card.ShowOld || card.OldPrice != "R$ 100,00" {
		t.Errorf("old price display = %v %q, want shown as R$ 100,00", card.ShowOld, card.OldPrice)
	}
}

func TestBuildPromotionCardSuppressesMissingReference(t *testing.T) {
	// No old price on record: no badge, no struck-through price.
	p := catalog.Promotion{ID: "p1", Title: "Fone", OldPrice: 0, NewPrice: 50}
	card := BuildPromotionCard(p, catalog.Index{}, now)

	if card.Badge != "" {
		t.Errorf("Badge = %q, want suppressed", card.Badge)
	}
	if card.ShowOld || card.OldPrice != "" {
		t.Errorf("old price must be suppressed, got %v %q", card.ShowOld, card.OldPrice)
	}
}

func TestBuildPromotionCardZeroDiscount(t *testing.T) {
	p := catalog.Promotion{ID: "p1", Title: "Fone", OldPrice: 50, NewPrice: 50}
	card := BuildPromotionCard(p, catalog.Index{}, now)

	if card.Badge != "0%" {
		t.Errorf("Badge = %q, want 0%%", card.Badge)
	}
	if !card.ShowOld {
		t.Error("zero discount must still show the old price")
	}
}

func TestBuildPromotionCardResolvesCoupons(t *testing.T) {
	coupons := []catalog.Coupon{
		{ID: "c1", Code: "TECH10", Validity: catalog.ValidityDate{Time: now.AddDate(0, 0, 3)}},
		{ID: "c2", Code: "DEAD", Validity: catalog.ValidityDate{Time: now.AddDate(0, 0, -3)}},
	}
	idx := catalog.BuildIndex(coupons, now)

	p := catalog.Promotion{ID: "p1", NewPrice: 10, RelatedCoupons: []string{"c1", "c2"}}
	card := BuildPromotionCard(p, idx, now)

	if len(card.Coupons) != 1 {
		t.Fatalf("card has %d coupons, want 1 (expired reference dropped)", len(card.Coupons))
	}
	got := card.Coupons[0]
	if got.Code != "TECH10" || got.Label != validity.LabelExpiresSoon || got.DaysRemaining != 3 {
		t.Errorf("coupon card = %+v, want TECH10 expiring soon in 3 days", got)
	}
}

func TestBuildCouponList(t *testing.T) {
	coupons := []catalog.Coupon{
		{ID: "c1", Code: "NOW", Validity: catalog.ValidityDate{Time: now}},
		{ID: "c2", Code: "LATER", Validity: catalog.ValidityDate{Time: now.AddDate(0, 0, 30)}},
	}

	cards := BuildCouponList(coupons, now)
	if len(cards) != 2 {
		t.Fatalf("len = %d, want 2", len(cards))
	}
	if cards[0].Label != validity.LabelExpiresToday || cards[0].Countdown != "expires today" {
		t.Errorf("cards[0] = %+v, want expires today", cards[0])
	}
	if cards[1].Label != validity.LabelActive {
		t.Errorf("cards[1].Label = %q, want active", cards[1].Label)
	}
	if cards[1].Validity != now.AddDate(0, 0, 30).Format("2006-01-02") {
		t.Errorf("cards[1].Validity = %q", cards[1].Validity)
	}
}
