package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
)

// FileSessionStorage stores the identity as JSON under dir/user and the
// login timestamp as RFC 3339 text under dir/lastLogin.
type FileSessionStorage struct {
	dir string
}

// NewFileSessionStorage creates session storage rooted at dir, creating it
// if needed. An empty dir falls back to a per-user directory under the OS
// temp dir, which matches the short-lived lifetime sessions are expected
// to have.
func NewFileSessionStorage(dir string) (*FileSessionStorage, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "musichub-session")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &FileSessionStorage{dir: dir}, nil
}

func (f *FileSessionStorage) Save(session models.Session, lastLogin time.Time) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(filepath.Join(f.dir, KeyUser), data, 0600); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}
	if err := os.WriteFile(filepath.Join(f.dir, KeyLastLogin), []byte(lastLogin.Format(time.RFC3339)), 0600); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	return nil
}

func (f *FileSessionStorage) Load() (models.Session, time.Time, error) {
	var session models.Session

	data, err := os.ReadFile(filepath.Join(f.dir, KeyUser))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return session, time.Time{}, shared.ErrNoStoredSession
		}
		return session, time.Time{}, fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, time.Time{}, fmt.Errorf("failed to parse stored session: %w", err)
	}
	if session.ID == "" || session.Email == "" {
		return models.Session{}, time.Time{}, fmt.Errorf("failed to parse stored session: missing id or email")
	}

	// lastLogin is advisory; a missing or unreadable timestamp does not
	// invalidate the identity.
	var lastLogin time.Time
	if raw, err := os.ReadFile(filepath.Join(f.dir, KeyLastLogin)); err == nil {
		if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(string(raw))); err == nil {
			lastLogin = ts
		}
	}

	return session, lastLogin, nil
}

func (f *FileSessionStorage) Clear() error {
	for _, key := range []string{KeyUser, KeyLastLogin} {
		if err := os.Remove(filepath.Join(f.dir, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %v", shared.ErrStorage, err)
		}
	}
	return nil
}

// FilePlaylistStorage stores the playlist collection as a single JSON
// document at dir/playlists.
type FilePlaylistStorage struct {
	dir string
}

// NewFilePlaylistStorage creates playlist storage rooted at dir, creating
// it if needed.
func NewFilePlaylistStorage(dir string) (*FilePlaylistStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FilePlaylistStorage{dir: dir}, nil
}

func (f *FilePlaylistStorage) path() string {
	return filepath.Join(f.dir, KeyPlaylists)
}

func (f *FilePlaylistStorage) Load() ([]models.Playlist, error) {
	data, err := os.ReadFile(f.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Playlist{}, nil
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	var playlists []models.Playlist
	if err := json.Unmarshal(data, &playlists); err != nil {
		return nil, fmt.Errorf("failed to parse stored playlists: %w", err)
	}

	return playlists, nil
}

func (f *FilePlaylistStorage) Save(playlists []models.Playlist) error {
	data, err := json.MarshalIndent(playlists, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode playlists: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn document.
	tmp := f.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}
	if err := os.Rename(tmp, f.path()); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	return nil
}
