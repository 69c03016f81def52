package store

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/musichub/musichub/internal/persist"
	"github.com/musichub/musichub/internal/shared"
)

// Store composes the three state slices under one handle.
//
// A Store is created once at startup and passed explicitly to whatever
// needs it; there is no package-level instance.
type Store struct {
	Session   *SessionStore
	Catalog   *CatalogCache
	Playlists *PlaylistStore

	sessionStorage persist.SessionStorage
	logger         *log.Logger
}

// Options contains the dependencies for creating a [Store].
type Options struct {
	SessionStorage  persist.SessionStorage
	PlaylistStorage persist.PlaylistStorage
	Logger          *log.Logger
}

// New creates a Store, loading the playlist collection from its storage.
// The session starts Anonymous; call [Store.Restore] to pick up a persisted
// identity.
func New(opts Options) (*Store, error) {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	playlists, err := NewPlaylistStore(opts.PlaylistStorage, opts.Logger)
	if err != nil {
		return nil, err
	}

	return &Store{
		Session:        NewSessionStore(opts.SessionStorage, opts.Logger),
		Catalog:        NewCatalogCache(),
		Playlists:      playlists,
		sessionStorage: opts.SessionStorage,
		logger:         opts.Logger,
	}, nil
}

// Restore reloads a previously persisted identity, if any.
//
// A malformed stored value is discarded and the session left Anonymous;
// restore never fails the startup path.
func (s *Store) Restore() {
	session, _, err := s.sessionStorage.Load()
	if err != nil {
		if !errors.Is(err, shared.ErrNoStoredSession) {
			s.logger.Warn("discarding unreadable stored session", "err", err)
			if clearErr := s.sessionStorage.Clear(); clearErr != nil {
				s.logger.Error("failed to clear stored session", "err", clearErr)
			}
		}
		return
	}

	s.Session.RestoreSession(session)
}
