package audiodb

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/musichub/musichub/internal/models"
)

//go:embed catalog.json
var catalogJSON []byte

// exampleCatalog maps artist slugs to track slugs for the built-in showcase
// lookups.
func exampleCatalog() (map[string][]string, error) {
	var catalog map[string][]string
	if err := json.Unmarshal(catalogJSON, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return catalog, nil
}

// GetExampleSongs fans out one searchtrack.php lookup per artist/track pair
// in the embedded catalog and concatenates the results.
//
// Each request runs under independent failure capture: a failed or empty
// lookup drops only its own records, never the batch. Results keep catalog
// order regardless of response order.
func (c *Client) GetExampleSongs(ctx context.Context) []models.Track {
	catalog, err := exampleCatalog()
	if err != nil {
		c.logger.Error("example songs unavailable", "err", err)
		return []models.Track{}
	}

	type lookup struct {
		artist string
		track  string
	}

	var lookups []lookup
	artists := make([]string, 0, len(catalog))
	for artist := range catalog {
		artists = append(artists, artist)
	}
	sort.Strings(artists)
	for _, artist := range artists {
		for _, track := range catalog[artist] {
			lookups = append(lookups, lookup{artist: artist, track: track})
		}
	}

	results := make([][]chartTrack, len(lookups))
	var wg sync.WaitGroup
	for i, l := range lookups {
		wg.Add(1)
		go func(i int, l lookup) {
			defer wg.Done()

			var payload struct {
				Track []chartTrack `json:"track"`
			}

			params := url.Values{}
			params.Set("s", l.artist)
			params.Set("t", l.track)

			if err := c.getJSON(ctx, "searchtrack.php", params, &payload); err != nil {
				c.logger.Warn("example lookup failed", "artist", l.artist, "track", l.track, "err", err)
				return
			}
			results[i] = payload.Track
		}(i, l)
	}
	wg.Wait()

	var tracks []models.Track
	for _, records := range results {
		for _, record := range records {
			tracks = append(tracks, record.toTrack())
		}
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks
}
