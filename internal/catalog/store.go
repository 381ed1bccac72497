package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Source fetches the authoritative entity lists. The REST API client is the
// production implementation; click statistics come from local storage.
type Source interface {
	FetchPromotions(ctx context.Context) ([]Promotion, error)
	FetchActiveCoupons(ctx context.Context) ([]Coupon, error)
	FetchAllCoupons(ctx context.Context) ([]Coupon, error)
	FetchClickStats(ctx context.Context) (map[string]ClickStat, error)
	FetchAdmins(ctx context.Context) ([]Admin, error)
}

// Store owns the last-fetched authoritative list for each entity type.
//
// Refresh calls replace a list wholesale from the Source and keep the prior
// list on failure (stale-but-available). Only the CRUD orchestrator and the
// refresher loop may call Refresh*; every other consumer reads the synchronous
// getters, which never trigger a fetch. Consumers whose view is empty after a
// failed refresh must render an explicit empty/error state, since there is no
// stale data to fall back on.
type Store struct {
	mu     sync.RWMutex
	src    Source
	logger zerolog.Logger

	promotions []Promotion
	coupons    []Coupon
	clicks     map[string]ClickStat
	admins     []Admin
}

// NewStore creates an empty store backed by src.
func NewStore(src Source) *Store {
	return &Store{
		src:    src,
		clicks: map[string]ClickStat{},
		logger: log.With().Str("component", "catalog_store").Logger(),
	}
}

// RefreshPromotions replaces the promotion list with the server response.
func (s *Store) RefreshPromotions(ctx context.Context) error {
	start := time.Now()
	promotions, err := s.src.FetchPromotions(ctx)
	observeRefresh("promotions", start, err)
	if err != nil {
		return fmt.Errorf("refresh promotions: %w", err)
	}

	s.mu.Lock()
	s.promotions = promotions
	s.mu.Unlock()

	s.logger.Debug().Int("count", len(promotions)).Msg("Promotions refreshed")
	return nil
}

// RefreshCoupons replaces the coupon list with the public active-only view.
func (s *Store) RefreshCoupons(ctx context.Context) error {
	return s.refreshCoupons(ctx, "coupons", s.src.FetchActiveCoupons)
}

// RefreshAllCoupons replaces the coupon list with the authenticated panel
// view, which includes expired coupons.
func (s *Store) RefreshAllCoupons(ctx context.Context) error {
	return s.refreshCoupons(ctx, "coupons_panel", s.src.FetchAllCoupons)
}

func (s *Store) refreshCoupons(ctx context.Context, entity string, fetch func(context.Context) ([]Coupon, error)) error {
	start := time.Now()
	coupons, err := fetch(ctx)
	observeRefresh(entity, start, err)
	if err != nil {
		return fmt.Errorf("refresh coupons: %w", err)
	}

	s.mu.Lock()
	s.coupons = coupons
	s.mu.Unlock()

	s.logger.Debug().Int("count", len(coupons)).Msg("Coupons refreshed")
	return nil
}

// RefreshClickStats replaces the per-promotion click counters.
func (s *Store) RefreshClickStats(ctx context.Context) error {
	start := time.Now()
	clicks, err := s.src.FetchClickStats(ctx)
	observeRefresh("clicks", start, err)
	if err != nil {
		return fmt.Errorf("refresh click stats: %w", err)
	}
	if clicks == nil {
		clicks = map[string]ClickStat{}
	}

	s.mu.Lock()
	s.clicks = clicks
	s.mu.Unlock()
	return nil
}

// RefreshAdmins replaces the administrator list. Requires a credentialed
// source; the API surfaces 401 through the refresh error.
func (s *Store) RefreshAdmins(ctx context.Context) error {
	start := time.Now()
	admins, err := s.src.FetchAdmins(ctx)
	observeRefresh("admins", start, err)
	if err != nil {
		return fmt.Errorf("refresh admins: %w", err)
	}

	s.mu.Lock()
	s.admins = admins
	s.mu.Unlock()
	return nil
}

// Promotions returns the current in-memory promotion list.
func (s *Store) Promotions() []Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Promotion(nil), s.promotions...)
}

// Coupons returns the current in-memory coupon list.
func (s *Store) Coupons() []Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Coupon(nil), s.coupons...)
}

// ClickStats returns the current click counters keyed by promotion id.
func (s *Store) ClickStats() map[string]ClickStat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]ClickStat, len(s.clicks))
	for id, stat := range s.clicks {
		out[id] = stat
	}
	return out
}

// Admins returns the current in-memory administrator list.
func (s *Store) Admins() []Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Admin(nil), s.admins...)
}

// Promotion looks a promotion up by identifier in the current list.
func (s *Store) Promotion(id string) (Promotion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.promotions {
		if p.ID == id {
			return p, true
		}
	}
	return Promotion{}, false
}
