package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/musichub/musichub/internal/models"
)

var (
	_ list.Item = trackItem{}
	_ list.Item = playlistItem{}
)

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track models.Track
}

func (i trackItem) FilterValue() string { return i.track.Name }
func (i trackItem) Title() string       { return i.track.Name }
func (i trackItem) Description() string {
	desc := i.track.Artist
	if i.track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album)
	}
	if i.track.Genre != "" && i.track.Genre != models.Unknown {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Genre)
	}
	return desc
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	return fmt.Sprintf("%d tracks", len(i.playlist.Songs))
}

func trackItems(tracks []models.Track) []list.Item {
	items := make([]list.Item, 0, len(tracks))
	for _, t := range tracks {
		items = append(items, trackItem{track: t})
	}
	return items
}

func playlistItems(playlists []models.Playlist) []list.Item {
	items := make([]list.Item, 0, len(playlists))
	for _, p := range playlists {
		items = append(items, playlistItem{playlist: p})
	}
	return items
}
