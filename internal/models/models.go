package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Unknown is the sentinel used when an endpoint omits a descriptive field.
const Unknown = "Unknown"

// Track represents one song as surfaced by the catalog.
//
// ID is unique within a single result set but not globally across
// endpoints. Fields beyond ID, Name and Artist are populated only by some
// endpoints and stay zero otherwise.
type Track struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	Album     string `json:"album,omitempty"`
	Genre     string `json:"genre"`
	Year      string `json:"year"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Type      string `json:"type,omitempty"`
	ArtistID  string `json:"idArtist,omitempty"`
	AlbumID   string `json:"idAlbum,omitempty"`
}

// Playlist represents a named, user-owned ordered collection of tracks.
//
// Songs preserves insertion order and never holds two tracks with the same
// ID; the playlist store enforces that on insert.
type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	Songs     []Track   `json:"songs"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContainsSong reports whether the playlist already holds a track with the given ID.
func (p *Playlist) ContainsSong(songID string) bool {
	for _, s := range p.Songs {
		if s.ID == songID {
			return true
		}
	}
	return false
}

// Session represents an authenticated identity.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ValidateEmail checks that the given address parses as an email.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}
	return nil
}

// ValidatePlaylistName checks that the playlist name is non-empty.
func ValidatePlaylistName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("playlist name is required")
	}
	return nil
}
