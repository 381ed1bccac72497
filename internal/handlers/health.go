package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string `json:"status"`
	Promotions int    `json:"promotions"`
	Coupons    int    `json:"coupons"`
}

// Health reports liveness plus how much catalog is loaded. An empty catalog
// still answers ok: the storefront serves stale or empty data rather than
// failing over.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "ok",
		Promotions: len(s.store.Promotions()),
		Coupons:    len(s.store.Coupons()),
	})
}
