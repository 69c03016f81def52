// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/persist"
)

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// JSONResponse builds a 200 response carrying the given body.
func JSONResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

// FailingPlaylistStorage wraps a [persist.PlaylistStorage] and fails saves
// after a configurable number of successes.
type FailingPlaylistStorage struct {
	Inner    persist.PlaylistStorage
	MaxSaves int
	saves    int
}

func (f *FailingPlaylistStorage) Load() ([]models.Playlist, error) {
	return f.Inner.Load()
}

func (f *FailingPlaylistStorage) Save(playlists []models.Playlist) error {
	if f.saves >= f.MaxSaves {
		return errors.New("save limit exceeded")
	}
	f.saves++
	return f.Inner.Save(playlists)
}
