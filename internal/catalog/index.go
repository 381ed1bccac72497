package catalog

import (
	"time"

	"github.com/promoshop/storefront/internal/validity"
)

// Index maps coupon identifiers to coupons. It is a derived, throwaway
// structure: rebuild it from the current coupon list whenever that list
// changes rather than patching it incrementally.
type Index map[string]Coupon

// BuildIndex indexes the coupons that are still active at the given instant.
// Expired coupons are left out so they can never surface on the public
// catalog, even while a promotion still references them.
func BuildIndex(coupons []Coupon, now time.Time) Index {
	idx := make(Index, len(coupons))
	for _, c := range coupons {
		if validity.Classify(c.Validity.Time, now).Expired {
			continue
		}
		idx[c.ID] = c
	}
	return idx
}

// Resolve maps a promotion's related-coupon identifiers through the index.
// Identifiers absent from the index (expired or deleted coupons) are silently
// dropped; a promotion pointing at a gone coupon simply has no coupon.
func (idx Index) Resolve(p Promotion) []Coupon {
	if len(p.RelatedCoupons) == 0 {
		return nil
	}
	coupons := make([]Coupon, 0, len(p.RelatedCoupons))
	for _, id := range p.RelatedCoupons {
		if c, ok := idx[id]; ok {
			coupons = append(coupons, c)
		}
	}
	return coupons
}
