// Package clicks maintains per-promotion click counters in a local file, the
// storefront's stand-in for the browser's click-tracking storage. The catalog
// core never writes these counters; only the click-through redirect does.
package clicks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/promoshop/storefront/internal/catalog"
)

// Tracker records outbound click-throughs keyed by promotion id and persists
// them across restarts.
type Tracker struct {
	mu     sync.Mutex
	path   string
	stats  map[string]catalog.ClickStat
	logger zerolog.Logger
}

// NewTracker loads the counters stored at path. A missing or unreadable file
// starts the tracker empty rather than failing: losing click history must
// never take the storefront down.
func NewTracker(path string) *Tracker {
	t := &Tracker{
		path:   path,
		stats:  map[string]catalog.ClickStat{},
		logger: log.With().Str("component", "click_tracker").Logger(),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	if err := json.Unmarshal(data, &t.stats); err != nil {
		t.logger.Warn().Err(err).Str("path", path).Msg("Discarding unreadable click history")
		t.stats = map[string]catalog.ClickStat{}
	}
	return t
}

// Record counts one click on the given promotion at the given instant and
// persists the updated counters.
func (t *Tracker) Record(promotionID string, at time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	stat := t.stats[promotionID]
	stat.Total++
	clicked := at
	stat.LastClick = &clicked
	t.stats[promotionID] = stat

	return t.flush()
}

// Stats returns a copy of the current counters.
func (t *Tracker) Stats() map[string]catalog.ClickStat {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]catalog.ClickStat, len(t.stats))
	for id, stat := range t.stats {
		out[id] = stat
	}
	return out
}

func (t *Tracker) flush() error {
	data, err := json.Marshal(t.stats)
	if err != nil {
		return fmt.Errorf("encode click stats: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create clicks dir: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("write click stats: %w", err)
	}
	return nil
}
