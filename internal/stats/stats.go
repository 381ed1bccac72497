// Package stats aggregates dashboard statistics over the catalog and the
// click counters. It only reads its inputs; click counters are maintained by
// the click tracker.
package stats

import (
	"sort"

	"github.com/promoshop/storefront/internal/catalog"
)

// Summary is the headline dashboard view.
type Summary struct {
	TotalPromotions  int
	ActivePromotions int
	TotalClicks      int
	MostClicked      string
}

// RankedPromotion is a promotion with its click total attached for ranking.
type RankedPromotion struct {
	Promotion catalog.Promotion
	Clicks    int
}

// Summarize computes the dashboard headline numbers. Every listed promotion
// counts as active; the most-clicked title is empty until a click exists.
func Summarize(promotions []catalog.Promotion, clicks map[string]catalog.ClickStat) Summary {
	s := Summary{
		TotalPromotions:  len(promotions),
		ActivePromotions: len(promotions),
	}
	for _, stat := range clicks {
		s.TotalClicks += stat.Total
	}

	max := 0
	for _, p := range promotions {
		if c := clicks[p.ID].Total; c > max {
			max = c
			s.MostClicked = p.Title
		}
	}
	return s
}

// TopClicked returns up to n promotions ordered by click count, descending.
// Ties keep catalog order so the ranking is stable across refreshes.
func TopClicked(promotions []catalog.Promotion, clicks map[string]catalog.ClickStat, n int) []RankedPromotion {
	ranked := make([]RankedPromotion, 0, len(promotions))
	for _, p := range promotions {
		ranked = append(ranked, RankedPromotion{Promotion: p, Clicks: clicks[p.ID].Total})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Clicks > ranked[j].Clicks
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
