package main

import (
	"context"
	"fmt"

	"github.com/musichub/musichub/internal/formatter"
	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
	"github.com/urfave/cli/v3"
)

// playlistCommand handles playlist operations
func playlistCommand(r *Runner) *cli.Command {
	idFlag := func() *cli.StringFlag {
		return &cli.StringFlag{
			Name:     "id",
			Usage:    "Playlist ID",
			Required: true,
		}
	}

	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Manage playlists",
		Commands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create an empty playlist",
				ArgsUsage: "<name>",
				Action:    r.PlaylistCreate,
			},
			{
				Name:   "list",
				Usage:  "List your playlists",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json"}},
				Action: r.PlaylistList,
			},
			{
				Name:  "show",
				Usage: "Show one playlist",
				Flags: []cli.Flag{
					idFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, csv, markdown, json",
						Value:   "text",
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:      "rename",
				Usage:     "Rename a playlist",
				ArgsUsage: "<new-name>",
				Flags:     []cli.Flag{idFlag()},
				Action:    r.PlaylistRename,
			},
			{
				Name:   "delete",
				Usage:  "Delete a playlist",
				Flags:  []cli.Flag{idFlag()},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "add",
				Usage: "Add a track to a playlist",
				Flags: []cli.Flag{
					idFlag(),
					&cli.StringFlag{Name: "track-id", Usage: "Track ID", Required: true},
					&cli.StringFlag{Name: "name", Usage: "Track name", Required: true},
					&cli.StringFlag{Name: "artist", Usage: "Artist name", Required: true},
					&cli.StringFlag{Name: "album", Usage: "Album name"},
					&cli.StringFlag{Name: "genre", Usage: "Genre"},
					&cli.StringFlag{Name: "year", Usage: "Release year"},
					&cli.StringFlag{Name: "thumbnail", Usage: "Thumbnail URL"},
				},
				Action: r.PlaylistAddSong,
			},
			{
				Name:  "remove",
				Usage: "Remove a track from a playlist",
				Flags: []cli.Flag{
					idFlag(),
					&cli.StringFlag{Name: "track-id", Usage: "Track ID", Required: true},
				},
				Action: r.PlaylistRemoveSong,
			},
		},
	}
}

// PlaylistCreate creates an empty playlist owned by the current user.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	name := cmd.Args().First()
	if err := models.ValidatePlaylistName(name); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	playlist, err := r.store.Playlists.AddPlaylist(name, user.ID, nil)
	if err != nil {
		return err
	}

	r.printf("created playlist %q (%s)\n", playlist.Name, playlist.ID)
	return nil
}

// PlaylistList prints the current user's playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	playlists := r.store.Playlists.Playlists(user.ID)
	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	if len(playlists) == 0 {
		r.printf("no playlists\n")
		return nil
	}
	for _, p := range playlists {
		r.printf("%s  %s (%d tracks)\n", p.ID, p.Name, len(p.Songs))
	}
	return nil
}

// PlaylistShow prints one playlist in the requested format.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	playlist, ok := r.store.Playlists.Get(user.ID, cmd.String("id"))
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, cmd.String("id"))
	}

	var out []byte
	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(playlist, true)
	case "csv":
		out, err = formatter.ExportToCSV(&playlist)
	case "markdown", "md":
		out, err = formatter.ExportToMarkdown(&playlist)
	case "text":
		out, err = formatter.ExportToText(&playlist)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	_, err = r.output.Write(out)
	return err
}

// PlaylistRename replaces the playlist's name, keeping its position and songs.
func (r *Runner) PlaylistRename(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	name := cmd.Args().First()
	if err := models.ValidatePlaylistName(name); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	playlist, ok := r.store.Playlists.Get(user.ID, cmd.String("id"))
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, cmd.String("id"))
	}

	playlist.Name = name
	if err := r.store.Playlists.UpdatePlaylist(user.ID, playlist); err != nil {
		return err
	}

	r.printf("renamed playlist %s to %q\n", playlist.ID, name)
	return nil
}

// PlaylistDelete removes a playlist.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	if err := r.store.Playlists.DeletePlaylist(user.ID, cmd.String("id")); err != nil {
		return err
	}

	r.printf("deleted playlist %s\n", cmd.String("id"))
	return nil
}

// PlaylistAddSong appends a track to a playlist. Adding a track that is
// already present is a no-op.
func (r *Runner) PlaylistAddSong(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	track := models.Track{
		ID:        cmd.String("track-id"),
		Name:      cmd.String("name"),
		Artist:    cmd.String("artist"),
		Album:     cmd.String("album"),
		Genre:     cmd.String("genre"),
		Year:      cmd.String("year"),
		Thumbnail: cmd.String("thumbnail"),
	}

	if err := r.store.Playlists.AddSongToPlaylist(user.ID, cmd.String("id"), track); err != nil {
		return err
	}

	r.printf("added %q to playlist %s\n", track.Name, cmd.String("id"))
	return nil
}

// PlaylistRemoveSong removes a track from a playlist.
func (r *Runner) PlaylistRemoveSong(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	if err := r.store.Playlists.RemoveSongFromPlaylist(user.ID, cmd.String("id"), cmd.String("track-id")); err != nil {
		return err
	}

	r.printf("removed track %s from playlist %s\n", cmd.String("track-id"), cmd.String("id"))
	return nil
}
