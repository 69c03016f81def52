package audiodb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public TheAudioDB endpoint root; the API key is
	// appended as a path segment.
	DefaultBaseURL = "https://www.theaudiodb.com/api/v1/json"

	// DefaultKey is the free-tier test key.
	DefaultKey = "123"

	searchResultLimit = 10
)

// lovedTrack is the record shape of mostloved.php responses.
type lovedTrack struct {
	IDTrack       string `json:"idTrack"`
	StrTrack      string `json:"strTrack"`
	StrArtist     string `json:"strArtist"`
	StrGenre      string `json:"strGenre"`
	IntYear       string `json:"intYearReleased"`
	StrTrackThumb string `json:"strTrackThumb"`
}

// chartTrack is the record shape shared by trending.php and searchtrack.php
// responses.
type chartTrack struct {
	IDArtist      string `json:"idArtist"`
	IDAlbum       string `json:"idAlbum"`
	IDTrack       string `json:"idTrack"`
	StrArtist     string `json:"strArtist"`
	StrAlbum      string `json:"strAlbum"`
	StrTrack      string `json:"strTrack"`
	StrTrackThumb string `json:"strTrackThumb"`
	StrType       string `json:"strType"`
}

func (t lovedTrack) toTrack() models.Track {
	track := models.Track{
		ID:        t.IDTrack,
		Name:      t.StrTrack,
		Artist:    t.StrArtist,
		Genre:     t.StrGenre,
		Year:      t.IntYear,
		Thumbnail: t.StrTrackThumb,
	}
	if track.Genre == "" {
		track.Genre = models.Unknown
	}
	if track.Year == "" {
		track.Year = models.Unknown
	}
	return track
}

func (t chartTrack) toTrack() models.Track {
	// Chart records carry no genre/year; those stay explicitly empty
	// rather than picking up the Unknown sentinel.
	return models.Track{
		ID:        t.IDTrack,
		Name:      t.StrTrack,
		Artist:    t.StrArtist,
		Album:     t.StrAlbum,
		Thumbnail: t.StrTrackThumb,
		Type:      t.StrType,
		ArtistID:  t.IDArtist,
		AlbumID:   t.IDAlbum,
	}
}

// Client is the TheAudioDB API client.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewClient creates a client from the given API configuration. A nil
// httpClient falls back to one with the configured timeout.
func NewClient(cfg shared.APIConfig, httpClient *http.Client, logger *log.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 2
	}
	if httpClient == nil {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		key:        cfg.Key,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		logger:     logger,
	}
}

// getJSON performs a rate-limited GET against the given endpoint and
// decodes the body into result.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.key, endpoint, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("audiodb API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SearchTrack looks up tracks by free-text query and returns at most the
// first 10 matches. Failures are logged and surface as an empty list.
func (c *Client) SearchTrack(ctx context.Context, query string) []models.Track {
	var payload struct {
		Track []lovedTrack `json:"track"`
	}

	params := url.Values{}
	params.Set("format", query)

	if err := c.getJSON(ctx, "mostloved.php", params, &payload); err != nil {
		c.logger.Warn("track search failed", "query", query, "err", err)
		return []models.Track{}
	}

	// An absent track field means no results, not an error.
	records := payload.Track
	if len(records) > searchResultLimit {
		records = records[:searchResultLimit]
	}

	tracks := make([]models.Track, 0, len(records))
	for _, record := range records {
		tracks = append(tracks, record.toTrack())
	}
	return tracks
}

// GetPopularSongs returns the trending singles chart for the given region
// code. Failures are logged and surface as an empty list.
func (c *Client) GetPopularSongs(ctx context.Context, region string) []models.Track {
	var payload struct {
		Trending []chartTrack `json:"trending"`
	}

	params := url.Values{}
	params.Set("country", region)
	params.Set("type", "itunes")
	params.Set("format", "singles")

	if err := c.getJSON(ctx, "trending.php", params, &payload); err != nil {
		c.logger.Warn("trending lookup failed", "region", region, "err", err)
		return []models.Track{}
	}

	tracks := make([]models.Track, 0, len(payload.Trending))
	for _, record := range payload.Trending {
		tracks = append(tracks, record.toTrack())
	}
	return tracks
}
