package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func storeAt(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStoreRoundTrip(t *testing.T) {
	s := storeAt(t)

	if got := s.Token(); got != "" {
		t.Fatalf("fresh store Token() = %q, want empty", got)
	}

	if err := s.Save("tok-abc", "adm-1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := s.Token(); got != "tok-abc" {
		t.Errorf("Token() = %q, want tok-abc", got)
	}
	if got := s.AdminID(); got != "adm-1" {
		t.Errorf("AdminID() = %q, want adm-1", got)
	}
}

func TestStoreClear(t *testing.T) {
	s := storeAt(t)
	if err := s.Save("tok", "adm"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := s.Token(); got != "" {
		t.Errorf("Token() after Clear = %q, want empty", got)
	}

	// Clearing twice must not fail.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}

func TestStoreFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	s := storeAt(t)
	if err := s.Save("tok", ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0o600 {
		t.Errorf("session file mode = %o, want 600", mode)
	}
}

func TestStoreSurvivesCorruptFile(t *testing.T) {
	s := storeAt(t)
	if err := os.WriteFile(s.path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if got := s.Token(); got != "" {
		t.Errorf("Token() on corrupt file = %q, want empty", got)
	}
	if err := s.Save("tok", ""); err != nil {
		t.Errorf("Save over corrupt file failed: %v", err)
	}
}
