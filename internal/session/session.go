// Package session persists the opaque backend credential between runs, the
// way the browser front end kept its token in local storage. The token is
// never inspected or parsed here; it is the backend's to mint and reject.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a file-backed holder for the auth token and the id of the account
// it belongs to. The file is created with 0600 since it carries a credential.
type Store struct {
	mu   sync.Mutex
	path string
}

type sessionFile struct {
	AuthToken string `json:"authToken"`
	AdminID   string `json:"adminId,omitempty"`
}

// NewStore opens the session store at path. A missing file is a logged-out
// session, not an error.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the stored credential, or the empty string when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().AuthToken
}

// AdminID returns the id of the authenticated account, when known.
func (s *Store) AdminID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().AdminID
}

// Save stores the credential and the account id it authenticates.
func (s *Store) Save(token, adminID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(sessionFile{AuthToken: token, AdminID: adminID})
}

// Clear forgets the session. Clearing an already-empty session is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) read() sessionFile {
	var f sessionFile
	data, err := os.ReadFile(s.path)
	if err != nil {
		return f
	}
	// A corrupt session file reads as logged out; the next login rewrites it.
	_ = json.Unmarshal(data, &f)
	return f
}

func (s *Store) write(f sessionFile) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
