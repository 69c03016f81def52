package persist

import (
	"time"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
)

// MemorySessionStorage keeps the identity in process memory. Used by tests
// and by commands that run without a configured session directory.
type MemorySessionStorage struct {
	session   *models.Session
	lastLogin time.Time
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{}
}

func (m *MemorySessionStorage) Save(session models.Session, lastLogin time.Time) error {
	m.session = &session
	m.lastLogin = lastLogin
	return nil
}

func (m *MemorySessionStorage) Load() (models.Session, time.Time, error) {
	if m.session == nil {
		return models.Session{}, time.Time{}, shared.ErrNoStoredSession
	}
	return *m.session, m.lastLogin, nil
}

func (m *MemorySessionStorage) Clear() error {
	m.session = nil
	m.lastLogin = time.Time{}
	return nil
}

// MemoryPlaylistStorage keeps the collection in process memory.
type MemoryPlaylistStorage struct {
	playlists []models.Playlist
}

func NewMemoryPlaylistStorage() *MemoryPlaylistStorage {
	return &MemoryPlaylistStorage{}
}

func (m *MemoryPlaylistStorage) Load() ([]models.Playlist, error) {
	out := make([]models.Playlist, len(m.playlists))
	copy(out, m.playlists)
	return out, nil
}

func (m *MemoryPlaylistStorage) Save(playlists []models.Playlist) error {
	m.playlists = make([]models.Playlist, len(playlists))
	copy(m.playlists, playlists)
	return nil
}
