package pricing

import "math"

// Kind classifies how a discount should be rendered.
type Kind int

const (
	// None means the item has no usable reference price: no discount badge
	// and no struck-through old price are shown.
	None Kind = iota
	// Zero means a valid reference price exists but there is no saving.
	// The badge renders as "0%" and the old price is still displayed.
	Zero
	// Percent means a real saving exists; Discount.Percent carries it.
	Percent
)

// Discount is the display discount computed from an old and a new price.
type Discount struct {
	Kind    Kind
	Percent int
}

// Compute derives the display discount percentage from the two prices.
//
// An old price that is not a positive finite number yields None (the item has
// no reference to discount against). A valid old price that does not beat the
// new price yields Zero when the new price is positive, None otherwise.
// Everything else is round(((old-new)/old)*100) with round-half-up semantics.
func Compute(oldPrice, newPrice float64) Discount {
	if !isFinite(oldPrice) || !isFinite(newPrice) {
		return Discount{Kind: None}
	}
	if oldPrice <= 0 {
		return Discount{Kind: None}
	}
	if oldPrice <= newPrice {
		if newPrice > 0 {
			return Discount{Kind: Zero}
		}
		return Discount{Kind: None}
	}
	pct := ((oldPrice - newPrice) / oldPrice) * 100
	return Discount{Kind: Percent, Percent: roundHalfUp(pct)}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundHalfUp matches the rounding of the original display logic: .5 always
// rounds toward positive infinity, unlike math.Round for negative values.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
