package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/musichub/musichub/internal/audiodb"
	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/store"
)

// ViewState represents the current view in the browser.
type ViewState int

const (
	TrackListView ViewState = iota
	PlaylistPickView
)

// tracksMsg carries a completed catalog fetch.
type tracksMsg struct {
	tracks []models.Track
}

// Model represents the browser state.
type Model struct {
	ctx    context.Context
	st     *store.Store
	client *audiodb.Client
	query  string

	view          ViewState
	width         int
	height        int
	trackList     list.Model
	playlistList  list.Model
	selectedTrack *models.Track
	status        string
	help          help.Model
	keys          keyMap
}

// NewModel creates a browser over the given store and client. An empty
// query browses the built-in example catalog instead of searching.
func NewModel(ctx context.Context, st *store.Store, client *audiodb.Client, query string) Model {
	trackList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	trackList.Title = "Tracks"
	trackList.SetShowHelp(false)

	playlistList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	playlistList.Title = "Add to playlist"
	playlistList.SetShowHelp(false)

	return Model{
		ctx:          ctx,
		st:           st,
		client:       client,
		query:        query,
		trackList:    trackList,
		playlistList: playlistList,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init kicks off the catalog fetch.
func (m Model) Init() tea.Cmd {
	return m.fetchTracks
}

// fetchTracks runs the gateway call and records the result in the catalog
// cache before handing it to the view.
func (m Model) fetchTracks() tea.Msg {
	m.st.Catalog.SetLoading(true)

	var tracks []models.Track
	if m.query == "" {
		tracks = m.client.GetExampleSongs(m.ctx)
	} else {
		tracks = m.client.SearchTrack(m.ctx, m.query)
	}
	m.st.Catalog.SetSearchResults(tracks)

	return tracksMsg{tracks: tracks}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		m.trackList.SetSize(msg.Width-h, msg.Height-v-2)
		m.playlistList.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case tracksMsg:
		m.trackList.SetItems(trackItems(msg.tracks))
		if len(msg.tracks) == 0 {
			m.status = "no results"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.back):
			if m.view == PlaylistPickView {
				m.view = TrackListView
				m.selectedTrack = nil
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.enter):
			return m.handleSelect()
		}
	}

	var cmd tea.Cmd
	switch m.view {
	case TrackListView:
		m.trackList, cmd = m.trackList.Update(msg)
	case PlaylistPickView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	}
	return m, cmd
}

func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case TrackListView:
		item, ok := m.trackList.SelectedItem().(trackItem)
		if !ok {
			return m, nil
		}

		user, ok := m.st.Session.Current()
		if !ok {
			m.status = "log in to add tracks to playlists"
			return m, nil
		}

		playlists := m.st.Playlists.Playlists(user.ID)
		if len(playlists) == 0 {
			m.status = "no playlists yet; create one first"
			return m, nil
		}

		track := item.track
		m.selectedTrack = &track
		m.playlistList.SetItems(playlistItems(playlists))
		m.view = PlaylistPickView
		return m, nil

	case PlaylistPickView:
		item, ok := m.playlistList.SelectedItem().(playlistItem)
		if !ok || m.selectedTrack == nil {
			return m, nil
		}

		user, _ := m.st.Session.Current()
		if err := m.st.Playlists.AddSongToPlaylist(user.ID, item.playlist.ID, *m.selectedTrack); err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("failed to save: %v", err))
		} else {
			m.status = statusStyle.Render(fmt.Sprintf("added %q to %q", m.selectedTrack.Name, item.playlist.Name))
		}

		m.selectedTrack = nil
		m.view = TrackListView
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.view {
	case TrackListView:
		title := "Example songs"
		if m.query != "" {
			title = fmt.Sprintf("Results for %q", m.query)
		}
		body = titleStyle.Render(title) + "\n" + m.trackList.View()
	case PlaylistPickView:
		body = titleStyle.Render("Pick a playlist") + "\n" + m.playlistList.View()
	}

	if m.status != "" {
		body += "\n" + m.status
	}
	body += "\n" + m.help.View(m.keys)

	return docStyle.Render(body)
}
