package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promoshop/storefront/internal/stats"
)

// StatsResponse is the dashboard headline payload.
type StatsResponse struct {
	TotalPromotions int    `json:"totalPromocoes"`
	TotalClicks     int    `json:"totalCliques"`
	MostClicked     string `json:"maisClicada"`
}

// Stats returns the dashboard headline numbers.
// GET /api/stats
func (s *Server) Stats(c *gin.Context) {
	summary := stats.Summarize(s.store.Promotions(), s.store.ClickStats())
	c.JSON(http.StatusOK, StatsResponse{
		TotalPromotions: summary.TotalPromotions,
		TotalClicks:     summary.TotalClicks,
		MostClicked:     summary.MostClicked,
	})
}
