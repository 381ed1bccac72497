package catalog

import (
	"math"
	"strings"
)

// FilterAll is the sentinel for category and store criteria meaning "do not
// filter on this field". The empty string behaves the same way, so a blank
// form submits as an unfiltered view.
const FilterAll = "todas"

// Criteria is a transient conjunction of promotion predicates. The zero value
// matches every promotion.
type Criteria struct {
	Text     string
	Category string
	Store    string
	MinPrice float64
	MaxPrice float64
}

// Matches reports whether the promotion passes every predicate.
func (c Criteria) Matches(p Promotion) bool {
	if c.Text != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(c.Text)) {
		return false
	}
	if !matchesSentinel(c.Category, p.Category) {
		return false
	}
	if !matchesSentinelFold(c.Store, p.Store) {
		return false
	}
	min, max := c.priceBounds()
	return p.NewPrice >= min && p.NewPrice <= max
}

// priceBounds defaults an unset or unusable range to [0, +Inf).
func (c Criteria) priceBounds() (float64, float64) {
	min := c.MinPrice
	if math.IsNaN(min) || min < 0 {
		min = 0
	}
	max := c.MaxPrice
	if math.IsNaN(max) || max <= 0 {
		max = math.Inf(1)
	}
	return min, max
}

func matchesSentinel(criterion, value string) bool {
	return criterion == "" || criterion == FilterAll || criterion == value
}

func matchesSentinelFold(criterion, value string) bool {
	return criterion == "" || criterion == FilterAll || strings.EqualFold(criterion, value)
}

// Filter returns the promotions matching the criteria. It is a read-only
// projection: the input slice is never mutated and the result is freshly
// allocated.
func Filter(items []Promotion, c Criteria) []Promotion {
	out := make([]Promotion, 0, len(items))
	for _, p := range items {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
