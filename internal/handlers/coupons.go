package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promoshop/storefront/internal/viewmodel"
)

// CouponsResponse is the active coupon listing payload.
type CouponsResponse struct {
	Coupons []viewmodel.CouponCard `json:"cupons"`
	Total   int                    `json:"total"`
}

// Coupons returns the active coupons with their validity labels.
// GET /api/cupons
func (s *Server) Coupons(c *gin.Context) {
	cards := viewmodel.BuildCouponList(s.store.Coupons(), s.now())
	c.JSON(http.StatusOK, CouponsResponse{
		Coupons: cards,
		Total:   len(cards),
	})
}
