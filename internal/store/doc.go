// Package store holds the application state for MusicHub.
//
// State is split into three independent slices composed under one [Store]
// handle that is passed explicitly through the CLI and TUI layers:
//
//   - [SessionStore] : the authenticated identity, write-through to
//     session-scoped storage
//   - [CatalogCache] : the last search results and trending lists, purely
//     in-memory, rebuilt on every fetch
//   - [PlaylistStore] : the durable playlist collection, write-through to
//     durable storage
//
// All mutations are synchronous and atomic with respect to each other.
// The playlist store is the only slice with cross-cutting invariants
// (ownership, per-playlist song de-duplication).
package store
