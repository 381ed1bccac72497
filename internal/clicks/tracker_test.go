package clicks

import (
	"path/filepath"
	"testing"
	"time"
)

func TestTrackerRecordAndStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clicks.json")
	tracker := NewTracker(path)

	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	if err := tracker.Record("p1", first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := tracker.Record("p1", second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := tracker.Record("p2", second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	stats := tracker.Stats()
	if stats["p1"].Total != 2 {
		t.Errorf("p1 total = %d, want 2", stats["p1"].Total)
	}
	if stats["p1"].LastClick == nil || !stats["p1"].LastClick.Equal(second) {
		t.Errorf("p1 last click = %v, want %v", stats["p1"].LastClick, second)
	}
	if stats["p2"].Total != 1 {
		t.Errorf("p2 total = %d, want 1", stats["p2"].Total)
	}
}

func TestTrackerPersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clicks.json")
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tracker := NewTracker(path)
	if err := tracker.Record("p1", at); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	reloaded := NewTracker(path)
	if got := reloaded.Stats()["p1"].Total; got != 1 {
		t.Errorf("reloaded total = %d, want 1", got)
	}
}

func TestTrackerStatsIsACopy(t *testing.T) {
	tracker := NewTracker(filepath.Join(t.TempDir(), "clicks.json"))
	if err := tracker.Record("p1", time.Now()); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	stats := tracker.Stats()
	stat := stats["p1"]
	stat.Total = 99
	stats["p1"] = stat

	if got := tracker.Stats()["p1"].Total; got != 1 {
		t.Errorf("tracker state mutated through Stats copy: total = %d", got)
	}
}
