package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/musichub/musichub/internal/models"
)

func testPlaylist() *models.Playlist {
	return &models.Playlist{
		ID:        "p1",
		Name:      "Road Trip",
		UserID:    "u1",
		CreatedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Songs: []models.Track{
			{ID: "t1", Name: "Yellow", Artist: "Coldplay", Album: "Parachutes", Genre: "Rock", Year: "2000"},
			{ID: "t2", Name: "Clocks", Artist: "Coldplay"},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	out, err := ExportToCSV(testPlaylist())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Name,Artist,Album,Genre,Year" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Yellow") || !strings.Contains(lines[1], "Parachutes") {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestExportToMarkdown(t *testing.T) {
	out, err := ExportToMarkdown(testPlaylist())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	text := string(out)
	if !strings.HasPrefix(text, "# Road Trip") {
		t.Errorf("expected title heading, got %q", text)
	}
	if !strings.Contains(text, "**Tracks**: 2") {
		t.Error("expected track count")
	}
	if !strings.Contains(text, "1. Coldplay - Yellow (Parachutes)") {
		t.Errorf("expected numbered track with album, got %q", text)
	}
	if !strings.Contains(text, "2. Coldplay - Clocks\n") {
		t.Error("expected album-less track without parens")
	}
}

func TestExportToText(t *testing.T) {
	out, err := ExportToText(testPlaylist())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "Playlist: Road Trip") {
		t.Error("expected playlist name")
	}
	if !strings.Contains(text, "2. Coldplay - Clocks") {
		t.Error("expected numbered tracks")
	}
}
