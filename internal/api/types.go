package api

import "github.com/promoshop/storefront/internal/catalog"

// PromotionInput is the request body for creating or updating a promotion.
// It never carries an identifier: the server assigns ids on create and the
// URL names the record on update.
type PromotionInput struct {
	Title          string   `json:"titulo"`
	Category       string   `json:"categoria"`
	Description    string   `json:"descricao,omitempty"`
	OldPrice       float64  `json:"precoAntigo"`
	NewPrice       float64  `json:"precoNovo"`
	Store          string   `json:"loja"`
	Image          string   `json:"imagem"`
	Link           string   `json:"link"`
	RelatedCoupons []string `json:"cuponsRelacionados,omitempty"`
}

// PromotionInputFrom builds an input from an existing record, for edits.
func PromotionInputFrom(p catalog.Promotion) PromotionInput {
	return PromotionInput{
		Title:          p.Title,
		Category:       p.Category,
		Description:    p.Description,
		OldPrice:       p.OldPrice,
		NewPrice:       p.NewPrice,
		Store:          p.Store,
		Image:          p.Image,
		Link:           p.Link,
		RelatedCoupons: p.RelatedCoupons,
	}
}

// CouponInput is the request body for creating or updating a coupon.
type CouponInput struct {
	Code        string               `json:"codigo"`
	Description string               `json:"descricao"`
	Store       string               `json:"loja"`
	Link        string               `json:"link"`
	Validity    catalog.ValidityDate `json:"validade"`
}

// RegisterInput is the request body for registering an administrator.
type RegisterInput struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminUpdateInput is the request body for the authenticated self-update.
// NewPassword is omitted entirely when the admin keeps the current one.
type AdminUpdateInput struct {
	Name            string `json:"nome"`
	Email           string `json:"email"`
	CurrentPassword string `json:"senhaAtual"`
	NewPassword     string `json:"senhaNova,omitempty"`
}
