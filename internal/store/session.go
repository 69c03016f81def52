package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/persist"
)

// SessionStore holds the current authenticated identity.
//
// At most one identity is active. Login and Logout write through to the
// session storage; RestoreSession does not touch storage and exists for the
// startup path, after the caller has already read and parsed the stored
// value.
type SessionStore struct {
	mu            sync.RWMutex
	user          *models.Session
	authenticated bool
	storage       persist.SessionStorage
	logger        *log.Logger
}

// NewSessionStore creates an Anonymous session store backed by the given storage.
func NewSessionStore(storage persist.SessionStorage, logger *log.Logger) *SessionStore {
	return &SessionStore{storage: storage, logger: logger}
}

// Login unconditionally replaces the current identity and persists it along
// with the login timestamp. The store performs no validation; that is the
// caller's concern.
//
// On a storage failure the previous state is kept and the error returned.
func (s *SessionStore) Login(identity models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Save(identity, time.Now()); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.user = &identity
	s.authenticated = true
	return nil
}

// Logout clears the identity and removes the persisted copy.
func (s *SessionStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("failed to clear stored session: %w", err)
	}

	s.user = nil
	s.authenticated = false
	return nil
}

// RestoreSession sets the identity without touching storage.
func (s *SessionStore) RestoreSession(identity models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &identity
	s.authenticated = true
}

// Current returns the active identity and whether one is held.
func (s *SessionStore) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.Session{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether an identity is held.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}
