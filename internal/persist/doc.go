// Package persist implements local storage for sessions and playlists.
//
// Stores talk to storage through the [SessionStorage] and [PlaylistStorage]
// ports, so the mechanism is swappable without touching store logic.
//
// Key Implementations:
//   - [FileSessionStorage] : identity + last-login under a session-scoped directory
//   - [FilePlaylistStorage] : the whole playlist collection as one JSON document
//   - [SQLitePlaylistStorage] : the same document in a SQLite key/value table
//   - [MemoryPlaylistStorage] / [MemorySessionStorage] : in-process, for tests
//
// Playlist storage is whole-collection-at-a-time: every save rewrites the
// entire list as one unit, so the persisted copy is always internally
// consistent. Concurrent writers from other processes are last-writer-wins.
package persist
