package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/persist"
	"github.com/musichub/musichub/internal/shared"
)

// PlaylistStore holds the durable collection of playlists for all users.
//
// The collection is multi-tenant: playlists for every user live together,
// and every operation takes the acting user's id. A mutation whose target
// belongs to a different user is a silent no-op, the same taxonomy as a
// mutation targeting an absent id.
//
// Every successful mutation writes the entire collection through to storage
// as one unit. When the write fails, the in-memory state is left unchanged
// and the error returned, so memory and the persisted copy never diverge.
type PlaylistStore struct {
	mu        sync.Mutex
	playlists []models.Playlist
	storage   persist.PlaylistStorage
	logger    *log.Logger
}

// NewPlaylistStore creates a playlist store, loading the persisted
// collection from storage.
func NewPlaylistStore(storage persist.PlaylistStorage, logger *log.Logger) (*PlaylistStore, error) {
	playlists, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load playlists: %w", err)
	}

	return &PlaylistStore{playlists: playlists, storage: storage, logger: logger}, nil
}

// AddPlaylist creates a playlist with a fresh id and creation timestamp and
// appends it to the collection. Called without a name or owner it is a
// silent no-op; the store trusts its caller for anything beyond presence.
func (s *PlaylistStore) AddPlaylist(name, userID string, songs []models.Track) (models.Playlist, error) {
	if name == "" || userID == "" {
		return models.Playlist{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	playlist := models.Playlist{
		ID:        shared.GenerateID(),
		Name:      name,
		UserID:    userID,
		Songs:     append([]models.Track{}, songs...),
		CreatedAt: time.Now(),
	}

	next := clonePlaylists(s.playlists)
	next = append(next, playlist)

	if err := s.commit(next); err != nil {
		return models.Playlist{}, err
	}
	return playlist, nil
}

// UpdatePlaylist replaces the stored playlist with a matching id in place,
// preserving its position in the collection. The owner and creation
// timestamp of the stored playlist are kept. No-op when the id is absent or
// owned by someone else.
func (s *PlaylistStore) UpdatePlaylist(userID string, playlist models.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, stored := range s.playlists {
		if stored.ID != playlist.ID || stored.UserID != userID {
			continue
		}

		playlist.UserID = stored.UserID
		playlist.CreatedAt = stored.CreatedAt

		next := clonePlaylists(s.playlists)
		next[i] = playlist
		return s.commit(next)
	}

	return nil
}

// DeletePlaylist removes the playlist with the given id. No-op when absent
// or owned by someone else.
func (s *PlaylistStore) DeletePlaylist(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Playlist, 0, len(s.playlists))
	removed := false
	for _, p := range s.playlists {
		if p.ID == id && p.UserID == userID {
			removed = true
			continue
		}
		next = append(next, clonePlaylist(p))
	}

	if !removed {
		return nil
	}
	return s.commit(next)
}

// AddSongToPlaylist appends the song to the target playlist unless a track
// with the same id is already present; the duplicate insert is an
// idempotent no-op that keeps the first insertion's fields. No-op when the
// playlist is absent or owned by someone else.
func (s *PlaylistStore) AddSongToPlaylist(userID, playlistID string, song models.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, stored := range s.playlists {
		if stored.ID != playlistID || stored.UserID != userID {
			continue
		}
		if stored.ContainsSong(song.ID) {
			return nil
		}

		next := clonePlaylists(s.playlists)
		next[i].Songs = append(next[i].Songs, song)
		return s.commit(next)
	}

	return nil
}

// RemoveSongFromPlaylist removes all tracks with the given id from the
// target playlist. No-op when the playlist is absent or owned by someone
// else.
func (s *PlaylistStore) RemoveSongFromPlaylist(userID, playlistID, songID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, stored := range s.playlists {
		if stored.ID != playlistID || stored.UserID != userID {
			continue
		}

		next := clonePlaylists(s.playlists)
		songs := make([]models.Track, 0, len(next[i].Songs))
		for _, song := range next[i].Songs {
			if song.ID != songID {
				songs = append(songs, song)
			}
		}
		next[i].Songs = songs
		return s.commit(next)
	}

	return nil
}

// Playlists returns a copy of the playlists owned by the given user, in
// collection order.
func (s *PlaylistStore) Playlists(userID string) []models.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Playlist{}
	for _, p := range s.playlists {
		if p.UserID == userID {
			out = append(out, clonePlaylist(p))
		}
	}
	return out
}

// Get returns a copy of the playlist with the given id when it exists and
// is owned by the given user.
func (s *PlaylistStore) Get(userID, id string) (models.Playlist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.playlists {
		if p.ID == id && p.UserID == userID {
			return clonePlaylist(p), true
		}
	}
	return models.Playlist{}, false
}

// commit persists the candidate collection and adopts it on success. The
// caller holds the mutex.
func (s *PlaylistStore) commit(next []models.Playlist) error {
	if err := s.storage.Save(next); err != nil {
		if s.logger != nil {
			s.logger.Error("playlist save failed, state unchanged", "err", err)
		}
		return fmt.Errorf("failed to persist playlists: %w", err)
	}

	s.playlists = next
	return nil
}

func clonePlaylist(p models.Playlist) models.Playlist {
	p.Songs = append([]models.Track{}, p.Songs...)
	return p
}

func clonePlaylists(playlists []models.Playlist) []models.Playlist {
	out := make([]models.Playlist, len(playlists))
	for i, p := range playlists {
		out[i] = clonePlaylist(p)
	}
	return out
}
