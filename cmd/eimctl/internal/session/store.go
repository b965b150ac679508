// Package session implements durable session persistence for eimctl.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

const (
	tokenFile    = "token"
	identityFile = "identity.json"
)

// FileStore implements sdk.SessionStore over two files under ~/.eimctl:
// the opaque token and the serialized identity record. Both are written
// together on every session-establishing operation and removed together on
// logout or authentication failure. Writes are best-effort: a persistence
// failure never invalidates the in-memory session.
type FileStore struct {
	dir string

	mu      sync.Mutex
	session *sdk.Session
}

var _ sdk.SessionStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at ~/.eimctl.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewFileStoreAt(filepath.Join(home, ".eimctl"))
}

// NewFileStoreAt creates a FileStore rooted at dir, creating it if needed.
func NewFileStoreAt(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Restore reads the persisted token and identity and installs them as the
// current session without asserting validity. Read failures of any kind
// behave as "no session".
func (s *FileStore) Restore() (*sdk.Session, error) {
	token, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return nil, sdk.ErrNoSession
	}
	identityData, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		return nil, sdk.ErrNoSession
	}

	var identity sdk.Identity
	if err := json.Unmarshal(identityData, &identity); err != nil {
		return nil, sdk.ErrNoSession
	}

	session := &sdk.Session{
		Token:    strings.TrimSpace(string(token)),
		Identity: identity,
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return session, nil
}

// Commit makes session current and persists token and identity as a pair.
// The in-memory session is updated even when the write fails.
func (s *FileStore) Commit(session *sdk.Session) error {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	identityData, err := json.MarshalIndent(session.Identity, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(session.Token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, identityFile), identityData, 0600); err != nil {
		return fmt.Errorf("failed to write identity: %w", err)
	}
	return nil
}

// Clear removes both persisted slots and drops the in-memory session.
// Idempotent: clearing an absent session succeeds.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	for _, name := range []string{tokenFile, identityFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

// Current returns the in-memory session or nil.
func (s *FileStore) Current() *sdk.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
