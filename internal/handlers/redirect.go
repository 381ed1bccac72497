package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Redirect counts a click on the promotion and forwards the visitor to the
// merchant link.
// GET /go/:id
//
// A failed counter write is logged and swallowed; losing one click is better
// than losing the visitor.
func (s *Server) Redirect(c *gin.Context) {
	id := c.Param("id")
	promotion, ok := s.store.Promotion(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
		return
	}

	if err := s.clicks.Record(id, s.now()); err != nil {
		s.logger.Warn().Err(err).Str("promotion_id", id).Msg("Failed to persist click")
	}

	c.Redirect(http.StatusFound, promotion.Link)
}
