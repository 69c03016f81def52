package store

import (
	"strings"
	"testing"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/persist"
	th "github.com/musichub/musichub/internal/testing"
)

func newPlaylistStore(t *testing.T) (*PlaylistStore, *persist.MemoryPlaylistStorage) {
	t.Helper()

	storage := persist.NewMemoryPlaylistStorage()
	s, err := NewPlaylistStore(storage, nil)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s, storage
}

func TestPlaylistStore(t *testing.T) {
	t.Run("AddPlaylist", func(t *testing.T) {
		t.Run("Generates ID And Timestamp", func(t *testing.T) {
			s, _ := newPlaylistStore(t)

			playlist, err := s.AddPlaylist("Road Trip", "u1", nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if playlist.ID == "" {
				t.Error("expected generated id")
			}
			if playlist.CreatedAt.IsZero() {
				t.Error("expected creation timestamp")
			}
			if len(s.Playlists("u1")) != 1 {
				t.Error("expected playlist in collection")
			}
		})

		t.Run("Missing Fields Is A No-Op", func(t *testing.T) {
			s, _ := newPlaylistStore(t)

			if _, err := s.AddPlaylist("", "u1", nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if _, err := s.AddPlaylist("Mix", "", nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(s.Playlists("u1")) != 0 {
				t.Error("expected empty collection")
			}
		})

		t.Run("Persists Whole Collection", func(t *testing.T) {
			s, storage := newPlaylistStore(t)

			s.AddPlaylist("One", "u1", nil)
			s.AddPlaylist("Two", "u1", nil)

			stored, err := storage.Load()
			if err != nil {
				t.Fatalf("failed to load: %v", err)
			}
			if len(stored) != 2 {
				t.Errorf("expected 2 stored playlists, got %d", len(stored))
			}
		})
	})

	t.Run("AddSongToPlaylist", func(t *testing.T) {
		song := models.Track{ID: "t1", Name: "Song A", Artist: "X"}

		t.Run("Duplicate ID Keeps First Insertion", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			playlist, _ := s.AddPlaylist("Road Trip", "u1", nil)

			if err := s.AddSongToPlaylist("u1", playlist.ID, song); err != nil {
				t.Fatalf("first add failed: %v", err)
			}
			different := models.Track{ID: "t1", Name: "Song A (Remaster)", Artist: "Y", Genre: "rock"}
			if err := s.AddSongToPlaylist("u1", playlist.ID, different); err != nil {
				t.Fatalf("duplicate add failed: %v", err)
			}

			got, _ := s.Get("u1", playlist.ID)
			if len(got.Songs) != 1 {
				t.Fatalf("expected exactly one track, got %d", len(got.Songs))
			}
			if got.Songs[0].Name != "Song A" || got.Songs[0].Artist != "X" {
				t.Errorf("expected first insertion's fields, got %+v", got.Songs[0])
			}
		})

		t.Run("Absent Playlist Is A No-Op", func(t *testing.T) {
			s, _ := newPlaylistStore(t)

			if err := s.AddSongToPlaylist("u1", "missing", song); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Foreign Playlist Is A No-Op", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			playlist, _ := s.AddPlaylist("Theirs", "u2", nil)

			if err := s.AddSongToPlaylist("u1", playlist.ID, song); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			got, _ := s.Get("u2", playlist.ID)
			if len(got.Songs) != 0 {
				t.Error("expected foreign playlist untouched")
			}
		})
	})

	t.Run("RemoveSongFromPlaylist", func(t *testing.T) {
		t.Run("Remove Then Re-Add Restores Track At End", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			playlist, _ := s.AddPlaylist("Mix", "u1", []models.Track{
				{ID: "t1", Name: "A", Artist: "X"},
				{ID: "t2", Name: "B", Artist: "Y"},
			})

			if err := s.RemoveSongFromPlaylist("u1", playlist.ID, "t1"); err != nil {
				t.Fatalf("remove failed: %v", err)
			}
			got, _ := s.Get("u1", playlist.ID)
			if len(got.Songs) != 1 || got.Songs[0].ID != "t2" {
				t.Fatalf("unexpected songs after remove: %+v", got.Songs)
			}

			if err := s.AddSongToPlaylist("u1", playlist.ID, models.Track{ID: "t1", Name: "A", Artist: "X"}); err != nil {
				t.Fatalf("re-add failed: %v", err)
			}
			got, _ = s.Get("u1", playlist.ID)
			if len(got.Songs) != 2 || got.Songs[1].ID != "t1" {
				t.Errorf("expected t1 restored at end, got %+v", got.Songs)
			}
		})

		t.Run("Absent Playlist Is A No-Op", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			if err := s.RemoveSongFromPlaylist("u1", "missing", "t1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	})

	t.Run("UpdatePlaylist", func(t *testing.T) {
		t.Run("Preserves Position And Siblings", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			first, _ := s.AddPlaylist("First", "u1", nil)
			second, _ := s.AddPlaylist("Second", "u1", nil)
			third, _ := s.AddPlaylist("Third", "u1", nil)

			second.Name = "Renamed"
			if err := s.UpdatePlaylist("u1", second); err != nil {
				t.Fatalf("update failed: %v", err)
			}

			playlists := s.Playlists("u1")
			if len(playlists) != 3 {
				t.Fatalf("expected 3 playlists, got %d", len(playlists))
			}
			if playlists[0].ID != first.ID || playlists[1].ID != second.ID || playlists[2].ID != third.ID {
				t.Error("expected collection order preserved")
			}
			if playlists[1].Name != "Renamed" {
				t.Errorf("expected renamed playlist, got %q", playlists[1].Name)
			}
			if playlists[0].Name != "First" || playlists[2].Name != "Third" {
				t.Error("expected siblings unaltered")
			}
		})

		t.Run("Keeps Owner And Creation Time", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			playlist, _ := s.AddPlaylist("Mine", "u1", nil)

			update := playlist
			update.UserID = "u2"
			if err := s.UpdatePlaylist("u1", update); err != nil {
				t.Fatalf("update failed: %v", err)
			}

			got, ok := s.Get("u1", playlist.ID)
			if !ok {
				t.Fatal("expected playlist still owned by u1")
			}
			if !got.CreatedAt.Equal(playlist.CreatedAt) {
				t.Error("expected creation time preserved")
			}
		})

		t.Run("Absent ID Is A No-Op", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			if err := s.UpdatePlaylist("u1", models.Playlist{ID: "missing", Name: "X"}); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	})

	t.Run("DeletePlaylist", func(t *testing.T) {
		t.Run("Removes Matching Playlist", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			playlist, _ := s.AddPlaylist("Gone", "u1", nil)

			if err := s.DeletePlaylist("u1", playlist.ID); err != nil {
				t.Fatalf("delete failed: %v", err)
			}
			if len(s.Playlists("u1")) != 0 {
				t.Error("expected empty collection")
			}
		})

		t.Run("Foreign Playlist Is A No-Op", func(t *testing.T) {
			s, _ := newPlaylistStore(t)
			playlist, _ := s.AddPlaylist("Theirs", "u2", nil)

			if err := s.DeletePlaylist("u1", playlist.ID); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if _, ok := s.Get("u2", playlist.ID); !ok {
				t.Error("expected foreign playlist untouched")
			}
		})
	})

	t.Run("Persistence Failure Rolls Back", func(t *testing.T) {
		storage := &th.FailingPlaylistStorage{Inner: persist.NewMemoryPlaylistStorage(), MaxSaves: 1}
		s, err := NewPlaylistStore(storage, nil)
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		playlist, err := s.AddPlaylist("Kept", "u1", nil)
		if err != nil {
			t.Fatalf("first add should succeed: %v", err)
		}

		if _, err := s.AddPlaylist("Lost", "u1", nil); err == nil {
			t.Fatal("expected error from failed save")
		} else if !strings.Contains(err.Error(), "persist") {
			t.Errorf("unexpected error: %v", err)
		}

		playlists := s.Playlists("u1")
		if len(playlists) != 1 || playlists[0].ID != playlist.ID {
			t.Errorf("expected in-memory state unchanged, got %+v", playlists)
		}
	})

	t.Run("Restart Reloads Persisted Collection", func(t *testing.T) {
		storage := persist.NewMemoryPlaylistStorage()
		s, _ := NewPlaylistStore(storage, nil)
		playlist, _ := s.AddPlaylist("Durable", "u1", []models.Track{{ID: "t1", Name: "A", Artist: "X"}})

		reloaded, err := NewPlaylistStore(storage, nil)
		if err != nil {
			t.Fatalf("failed to reload: %v", err)
		}

		got, ok := reloaded.Get("u1", playlist.ID)
		if !ok {
			t.Fatal("expected playlist after reload")
		}
		if len(got.Songs) != 1 || got.Songs[0].ID != "t1" {
			t.Errorf("unexpected songs after reload: %+v", got.Songs)
		}
	})
}
