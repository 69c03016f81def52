package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
)

func TestFileSessionStorage(t *testing.T) {
	identity := models.Session{ID: "u1", Email: "user@example.com"}

	t.Run("Save Load Roundtrip", func(t *testing.T) {
		storage, err := NewFileSessionStorage(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create storage: %v", err)
		}

		loginTime := time.Now().Truncate(time.Second)
		if err := storage.Save(identity, loginTime); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		got, gotLogin, err := storage.Load()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if got != identity {
			t.Errorf("expected %+v, got %+v", identity, got)
		}
		if !gotLogin.Equal(loginTime) {
			t.Errorf("expected login time %v, got %v", loginTime, gotLogin)
		}
	})

	t.Run("Load Without Stored Session", func(t *testing.T) {
		storage, _ := NewFileSessionStorage(t.TempDir())

		if _, _, err := storage.Load(); !errors.Is(err, shared.ErrNoStoredSession) {
			t.Errorf("expected ErrNoStoredSession, got %v", err)
		}
	})

	t.Run("Corrupt Stored Value Is A Parse Error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, KeyUser), []byte("garbage"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		storage, _ := NewFileSessionStorage(dir)
		_, _, err := storage.Load()
		if err == nil {
			t.Fatal("expected parse error")
		}
		if errors.Is(err, shared.ErrNoStoredSession) {
			t.Error("corrupt value must not look like an absent one")
		}
	})

	t.Run("Missing Fields Are A Parse Error", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, KeyUser), []byte(`{"id":"","email":""}`), 0600)

		storage, _ := NewFileSessionStorage(dir)
		if _, _, err := storage.Load(); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("Clear Removes Both Keys", func(t *testing.T) {
		dir := t.TempDir()
		storage, _ := NewFileSessionStorage(dir)
		storage.Save(identity, time.Now())

		if err := storage.Clear(); err != nil {
			t.Fatalf("clear failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, KeyUser)); !errors.Is(err, os.ErrNotExist) {
			t.Error("expected user key removed")
		}
		if _, err := os.Stat(filepath.Join(dir, KeyLastLogin)); !errors.Is(err, os.ErrNotExist) {
			t.Error("expected lastLogin key removed")
		}

		t.Run("Clear Is Idempotent", func(t *testing.T) {
			if err := storage.Clear(); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	})
}

func TestFilePlaylistStorage(t *testing.T) {
	playlists := []models.Playlist{
		{
			ID:        "p1",
			Name:      "Mix",
			UserID:    "u1",
			Songs:     []models.Track{{ID: "t1", Name: "A", Artist: "X"}},
			CreatedAt: time.Now().Truncate(time.Second),
		},
	}

	t.Run("Empty Store Loads Empty Collection", func(t *testing.T) {
		storage, err := NewFilePlaylistStorage(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create storage: %v", err)
		}

		got, err := storage.Load()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty collection, got %v", got)
		}
	})

	t.Run("Save Load Roundtrip", func(t *testing.T) {
		storage, _ := NewFilePlaylistStorage(t.TempDir())

		if err := storage.Save(playlists); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		got, err := storage.Load()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p1" || len(got[0].Songs) != 1 {
			t.Errorf("unexpected collection: %+v", got)
		}
	})

	t.Run("Save Replaces The Whole Document", func(t *testing.T) {
		storage, _ := NewFilePlaylistStorage(t.TempDir())
		storage.Save(playlists)

		if err := storage.Save([]models.Playlist{}); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		got, _ := storage.Load()
		if len(got) != 0 {
			t.Errorf("expected empty collection, got %+v", got)
		}
	})

	t.Run("Corrupt Document Is An Error", func(t *testing.T) {
		dir := t.TempDir()
		storage, _ := NewFilePlaylistStorage(dir)
		os.WriteFile(filepath.Join(dir, KeyPlaylists), []byte("nope"), 0644)

		if _, err := storage.Load(); err == nil {
			t.Fatal("expected parse error")
		}
	})
}
