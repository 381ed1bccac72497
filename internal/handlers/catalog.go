package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/promoshop/storefront/internal/catalog"
	"github.com/promoshop/storefront/internal/viewmodel"
)

// CatalogResponse is the filtered storefront page payload.
type CatalogResponse struct {
	Promotions []viewmodel.PromotionCard `json:"promocoes"`
	Total      int                       `json:"total"`
}

// Catalog returns the promotion cards matching the query filters.
// GET /api/catalog?q=...&categoria=...&loja=...&precoMin=...&precoMax=...
//
// Filters are applied to the in-memory snapshot, so clearing them never
// triggers a refetch. Unparseable price bounds degrade to the open range.
func (s *Server) Catalog(c *gin.Context) {
	criteria := catalog.Criteria{
		Text:     c.Query("q"),
		Category: c.Query("categoria"),
		Store:    c.Query("loja"),
		MinPrice: parsePrice(c.Query("precoMin")),
		MaxPrice: parsePrice(c.Query("precoMax")),
	}

	now := s.now()
	promotions := catalog.Filter(s.store.Promotions(), criteria)
	index := catalog.BuildIndex(s.store.Coupons(), now)

	c.JSON(http.StatusOK, CatalogResponse{
		Promotions: viewmodel.BuildCatalog(promotions, index, now),
		Total:      len(promotions),
	})
}

// parsePrice maps an absent or malformed bound to 0, which Criteria treats as
// the unset value.
func parsePrice(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
