package sdk

import (
	"errors"
	"sync"
)

// NoToken is the placeholder the backend issues while a login has not yet
// resolved to a role. Dispatches never attach it as a bearer credential.
const NoToken = "no-token"

// ErrNoSession is returned by SessionStore.Restore when no persisted
// session exists (or persistence could not be read, which is treated the
// same way).
var ErrNoSession = errors.New("no session")

// Session pairs the opaque bearer token with the identity it was issued for.
type Session struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

// SessionStore holds the single process-wide session. Implementations keep
// an in-memory copy and may persist it durably; persistence failures are
// best-effort and never invalidate the in-memory session.
//
// Restore installs the persisted session as the current one without
// asserting validity — only the startup probe decides whether it is usable.
// Commit replaces the current session and persists token and identity
// together. Clear removes both and is idempotent.
type SessionStore interface {
	Restore() (*Session, error)
	Commit(session *Session) error
	Clear() error
	Current() *Session
}

// MemoryStore is a SessionStore with no durable backing. Restore always
// reports ErrNoSession, so it behaves like a fresh browser profile. It is
// the default store for programmatic SDK use and for tests.
type MemoryStore struct {
	mu      sync.Mutex
	session *Session
}

var _ SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Restore() (*Session, error) {
	return nil, ErrNoSession
}

func (s *MemoryStore) Commit(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

func (s *MemoryStore) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
