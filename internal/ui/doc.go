// Package ui implements the interactive catalog browser.
//
// The browser fetches tracks through the audiodb client into the catalog
// cache, renders them with bubbles/list, and lets the user file a selected
// track into one of their playlists.
package ui
