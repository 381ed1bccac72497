// Package viewmodel projects catalog data into render-ready cards. Rendering
// consumers (HTTP handlers, CLI tables) only ever see these types; they never
// reach into the domain structs or apply display rules themselves.
package viewmodel

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/promoshop/storefront/internal/catalog"
	"github.com/promoshop/storefront/internal/pricing"
	"github.com/promoshop/storefront/internal/validity"
)

// ptBR localizes prices the way the storefront has always displayed them.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// PromotionCard is one promotion ready for display.
type PromotionCard struct {
	ID          string       `json:"id"`
	Title       string       `json:"titulo"`
	Category    string       `json:"categoria"`
	Description string       `json:"descricao,omitempty"`
	Store       string       `json:"loja"`
	Image       string       `json:"imagem"`
	Link        string       `json:"link"`
	NewPrice    string       `json:"precoNovo"`
	OldPrice    string       `json:"precoAntigo,omitempty"`
	ShowOld     bool         `json:"exibePrecoAntigo"`
	Badge       string       `json:"selo,omitempty"`
	Coupons     []CouponCard `json:"cupons,omitempty"`
}

// CouponCard is one coupon ready for display.
type CouponCard struct {
	ID            string `json:"id"`
	Code          string `json:"codigo"`
	Description   string `json:"descricao,omitempty"`
	Store         string `json:"loja"`
	Link          string `json:"link"`
	Validity      string `json:"validade"`
	Label         string `json:"situacao"`
	Countdown     string `json:"contagem"`
	DaysRemaining int    `json:"diasRestantes"`
	Expired       bool   `json:"expirado"`
}

// FormatPrice renders a price in Brazilian reais ("R$ 1.234,56").
func FormatPrice(v float64) string {
	return ptBR.Sprintf("R$ %.2f", v)
}

// BuildPromotionCard projects one promotion, resolving its coupons through
// the index. A None discount suppresses both the badge and the old price; a
// Zero discount shows both, the old price as its literal value.
func BuildPromotionCard(p catalog.Promotion, idx catalog.Index, now time.Time) PromotionCard {
	card := PromotionCard{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Store:       p.Store,
		Image:       p.Image,
		Link:        p.Link,
		NewPrice:    FormatPrice(p.NewPrice),
	}

	switch d := pricing.Compute(p.OldPrice, p.NewPrice); d.Kind {
	case pricing.Percent:
		card.Badge = ptBR.Sprintf("-%d%%", d.Percent)
		card.OldPrice = FormatPrice(p.OldPrice)
		card.ShowOld = true
	case pricing.Zero:
		card.Badge = "0%"
		card.OldPrice = FormatPrice(p.OldPrice)
		card.ShowOld = true
	}

	for _, c := range idx.Resolve(p) {
		card.Coupons = append(card.Coupons, BuildCouponCard(c, now))
	}
	return card
}

// BuildCouponCard projects one coupon with its expiry classification.
func BuildCouponCard(c catalog.Coupon, now time.Time) CouponCard {
	status := validity.Classify(c.Validity.Time, now)
	return CouponCard{
		ID:            c.ID,
		Code:          c.Code,
		Description:   c.Description,
		Store:         c.Store,
		Link:          c.Link,
		Validity:      c.Validity.UTC().Format("2006-01-02"),
		Label:         status.Label,
		Countdown:     status.Countdown(),
		DaysRemaining: status.DaysRemaining,
		Expired:       status.Expired,
	}
}

// BuildCatalog projects a promotion list into cards.
func BuildCatalog(promotions []catalog.Promotion, idx catalog.Index, now time.Time) []PromotionCard {
	cards := make([]PromotionCard, 0, len(promotions))
	for _, p := range promotions {
		cards = append(cards, BuildPromotionCard(p, idx, now))
	}
	return cards
}

// BuildCouponList projects a coupon list into cards.
func BuildCouponList(coupons []catalog.Coupon, now time.Time) []CouponCard {
	cards := make([]CouponCard, 0, len(coupons))
	for _, c := range coupons {
		cards = append(cards, BuildCouponCard(c, now))
	}
	return cards
}
