// Package refresher keeps the public catalog store in sync with the backend.
// It is the storefront's initial-load routine stretched into a loop: one load
// at startup, then a periodic re-pull. Together with the panel orchestrator it
// is the only writer the catalog store has.
package refresher

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/promoshop/storefront/internal/catalog"
)

// Refresher periodically refreshes the catalog store.
type Refresher struct {
	store    *catalog.Store
	logger   *zerolog.Logger
	interval time.Duration
	stopChan chan struct{}

	// onRefresh runs after every successful full refresh, with the store
	// already holding the fresh lists.
	onRefresh func()
}

// New creates a refresher for the given store.
func New(store *catalog.Store, logger *zerolog.Logger, interval time.Duration, onRefresh func()) *Refresher {
	return &Refresher{
		store:     store,
		logger:    logger,
		interval:  interval,
		stopChan:  make(chan struct{}),
		onRefresh: onRefresh,
	}
}

// Load performs one full refresh: promotions, active coupons and click
// counters, fetched concurrently. The first error wins, but each collection
// that did load stays loaded.
func (r *Refresher) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.store.RefreshPromotions(gctx) })
	g.Go(func() error { return r.store.RefreshCoupons(gctx) })
	g.Go(func() error { return r.store.RefreshClickStats(gctx) })
	if err := g.Wait(); err != nil {
		return err
	}
	if r.onRefresh != nil {
		r.onRefresh()
	}
	return nil
}

// Start runs the periodic refresh until the context is cancelled or Stop is
// called. A failed refresh keeps the stale lists and is retried on the next
// tick; it never tears the storefront down.
func (r *Refresher) Start(ctx context.Context) {
	r.logger.Info().Dur("interval", r.interval).Msg("Starting catalog refresher")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("Catalog refresher stopping (context cancelled)")
			return
		case <-r.stopChan:
			r.logger.Info().Msg("Catalog refresher stopping (stop signal)")
			return
		case <-ticker.C:
			if err := r.Load(ctx); err != nil {
				r.logger.Error().Err(err).Msg("Catalog refresh failed, serving stale data")
			}
		}
	}
}

// Stop signals the refresher to stop.
func (r *Refresher) Stop() {
	close(r.stopChan)
}
