package persist

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
)

// SQLitePlaylistStorage stores the playlist collection as one JSON document
// in the storage key/value table, under the playlists key.
//
// Visually different from the file backend, semantically identical: the
// collection is still saved and loaded as a single unit.
type SQLitePlaylistStorage struct {
	db *sql.DB
}

// NewSQLitePlaylistStorage creates SQLite-backed playlist storage on the
// given connection. The storage table must exist; run shared.RunMigrations
// first.
func NewSQLitePlaylistStorage(db *sql.DB) *SQLitePlaylistStorage {
	return &SQLitePlaylistStorage{db: db}
}

func (s *SQLitePlaylistStorage) Load() ([]models.Playlist, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM storage WHERE key = ?", KeyPlaylists).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Playlist{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	var playlists []models.Playlist
	if err := json.Unmarshal([]byte(value), &playlists); err != nil {
		return nil, fmt.Errorf("failed to parse stored playlists: %w", err)
	}

	return playlists, nil
}

func (s *SQLitePlaylistStorage) Save(playlists []models.Playlist) error {
	data, err := json.Marshal(playlists)
	if err != nil {
		return fmt.Errorf("failed to encode playlists: %w", err)
	}

	query := `
		INSERT INTO storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, KeyPlaylists, string(data), time.Now()); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	return nil
}
