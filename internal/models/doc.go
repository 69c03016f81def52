// Package models defines the domain entities for MusicHub.
//
// The package contains three categories of types:
//
// 1. Catalog data: [Track], the normalized song metadata shape produced by
// the TheAudioDB gateway. Different endpoints populate different subsets
// of its fields, so everything beyond ID/Name/Artist is optional.
//
// 2. User data: [Playlist], a named ordered collection of tracks owned by
// a user, and [Session], the currently authenticated identity.
//
// 3. Input validation helpers used by the CLI layer before dispatching
// mutations; the stores themselves trust their callers.
package models
