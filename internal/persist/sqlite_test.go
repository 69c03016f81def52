package persist

import (
	"testing"
	"time"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
)

func newSQLiteStorage(t *testing.T) *SQLitePlaylistStorage {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewSQLitePlaylistStorage(db)
}

func TestSQLitePlaylistStorage(t *testing.T) {
	playlists := []models.Playlist{
		{
			ID:        "p1",
			Name:      "Mix",
			UserID:    "u1",
			Songs:     []models.Track{{ID: "t1", Name: "A", Artist: "X"}},
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		},
		{ID: "p2", Name: "Empty", UserID: "u2", Songs: []models.Track{}},
	}

	t.Run("Empty Store Loads Empty Collection", func(t *testing.T) {
		storage := newSQLiteStorage(t)

		got, err := storage.Load()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty collection, got %v", got)
		}
	})

	t.Run("Save Load Roundtrip", func(t *testing.T) {
		storage := newSQLiteStorage(t)

		if err := storage.Save(playlists); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		got, err := storage.Load()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 playlists, got %d", len(got))
		}
		if got[0].ID != "p1" || got[0].Songs[0].Name != "A" {
			t.Errorf("unexpected first playlist: %+v", got[0])
		}
	})

	t.Run("Consecutive Saves Overwrite", func(t *testing.T) {
		storage := newSQLiteStorage(t)
		storage.Save(playlists)

		if err := storage.Save(playlists[:1]); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		got, _ := storage.Load()
		if len(got) != 1 {
			t.Errorf("expected 1 playlist after overwrite, got %d", len(got))
		}
	})
}
