package store

import (
	"sync"

	"github.com/musichub/musichub/internal/models"
)

// CatalogSnapshot is a point-in-time copy of the catalog cache.
type CatalogSnapshot struct {
	SearchResults []models.Track
	PopularSongs  map[string][]models.Track
	Loading       bool
	Err           string
}

// CatalogCache buffers the last-fetched search results and per-region
// trending lists. It is a presentation buffer, not a source of truth: every
// setter is a full replace, nothing is merged or de-duplicated, and nothing
// is persisted.
type CatalogCache struct {
	mu            sync.RWMutex
	searchResults []models.Track
	popularSongs  map[string][]models.Track
	loading       bool
	err           string
}

// NewCatalogCache creates an empty catalog cache.
func NewCatalogCache() *CatalogCache {
	return &CatalogCache{popularSongs: map[string][]models.Track{}}
}

// SetLoading sets the loading flag without clearing existing results.
func (c *CatalogCache) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

// SetSearchResults replaces the search-result list and clears loading and error.
func (c *CatalogCache) SetSearchResults(results []models.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchResults = results
	c.loading = false
	c.err = ""
}

// SetPopularSongs replaces the entire region to track-list mapping and
// clears loading and error.
func (c *CatalogCache) SetPopularSongs(songs map[string][]models.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if songs == nil {
		songs = map[string][]models.Track{}
	}
	c.popularSongs = songs
	c.loading = false
	c.err = ""
}

// SetError records an error message and clears loading. Results are kept.
func (c *CatalogCache) SetError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = msg
	c.loading = false
}

// ClearSearchResults empties the search-result list only.
func (c *CatalogCache) ClearSearchResults() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchResults = nil
}

// Snapshot returns a copy of the whole cache state.
func (c *CatalogCache) Snapshot() CatalogSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := CatalogSnapshot{
		SearchResults: make([]models.Track, len(c.searchResults)),
		PopularSongs:  make(map[string][]models.Track, len(c.popularSongs)),
		Loading:       c.loading,
		Err:           c.err,
	}
	copy(snap.SearchResults, c.searchResults)
	for region, tracks := range c.popularSongs {
		list := make([]models.Track, len(tracks))
		copy(list, tracks)
		snap.PopularSongs[region] = list
	}

	return snap
}
