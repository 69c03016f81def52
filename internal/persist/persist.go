package persist

import (
	"time"

	"github.com/musichub/musichub/internal/models"
)

// Storage keys. File backends use them as file names, the SQLite backend as
// row keys in its storage table.
const (
	KeyUser      = "user"
	KeyLastLogin = "lastLogin"
	KeyPlaylists = "playlists"
)

// SessionStorage persists the authenticated identity for the lifetime of a
// login session.
type SessionStorage interface {
	// Save writes the identity and its login timestamp.
	Save(session models.Session, lastLogin time.Time) error

	// Load reads the stored identity. Returns shared.ErrNoStoredSession
	// when nothing is stored; a corrupt stored value surfaces as a
	// parse error so the caller can discard it.
	Load() (models.Session, time.Time, error)

	// Clear removes the stored identity and timestamp.
	Clear() error
}

// PlaylistStorage persists the full playlist collection.
type PlaylistStorage interface {
	// Load reads the stored collection. An absent store yields an empty
	// collection, not an error.
	Load() ([]models.Playlist, error)

	// Save replaces the stored collection with the given one.
	Save(playlists []models.Playlist) error
}
