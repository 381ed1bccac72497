// Package handlers exposes the public storefront API: the filtered catalog,
// the active coupon list and the click-counting redirect. It serves only what
// the catalog store already holds; no request ever reaches the upstream
// backend from here.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/promoshop/storefront/internal/catalog"
	"github.com/promoshop/storefront/internal/clicks"
)

// Server bundles the handler dependencies.
type Server struct {
	store  *catalog.Store
	clicks *clicks.Tracker
	logger zerolog.Logger
	now    func() time.Time
}

// New creates a handler set over the given store and click tracker.
func New(store *catalog.Store, tracker *clicks.Tracker, logger zerolog.Logger) *Server {
	return &Server{
		store:  store,
		clicks: tracker,
		logger: logger,
		now:    time.Now,
	}
}

// Register attaches the storefront routes to the router.
func (s *Server) Register(r gin.IRouter) {
	r.GET("/health", s.Health)

	api := r.Group("/api")
	{
		api.GET("/catalog", s.Catalog)
		api.GET("/cupons", s.Coupons)
		api.GET("/stats", s.Stats)
	}

	r.GET("/go/:id", s.Redirect)
}
