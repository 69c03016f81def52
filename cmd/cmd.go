// submodule cmd contains command definitions
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
	"github.com/urfave/cli/v3"
)

// searchCommand looks up tracks by free-text query
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the catalog for tracks",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
			&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
		},
		Action: r.Search,
	}
}

// trendingCommand fetches per-region trending charts
func trendingCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "trending",
		Usage: "Show trending singles by region",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "regions",
				Aliases: []string{"r"},
				Usage:   "Comma-separated region codes",
				Value:   "us",
			},
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
		},
		Action: r.Trending,
	}
}

// examplesCommand fetches the built-in showcase catalog
func examplesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "examples",
		Usage: "Show example songs from well-known artists",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
		},
		Action: r.Examples,
	}
}

// Search fetches tracks matching the query into the catalog cache and prints them.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(cmd.Args().First())
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	cache := r.store.Catalog
	cache.SetLoading(true)
	tracks := r.client.SearchTrack(ctx, query)
	cache.SetSearchResults(tracks)

	if cmd.Bool("json") {
		return r.writeJSON(cache.Snapshot().SearchResults, cmd.Bool("pretty"))
	}

	r.printTracks(cache.Snapshot().SearchResults)
	return nil
}

// Trending fetches the trending chart for each requested region into the
// catalog cache and prints them grouped by region.
func (r *Runner) Trending(ctx context.Context, cmd *cli.Command) error {
	regions := strings.Split(cmd.String("regions"), ",")

	cache := r.store.Catalog
	cache.SetLoading(true)

	popular := map[string][]models.Track{}
	for _, region := range regions {
		region = strings.TrimSpace(strings.ToLower(region))
		if region == "" {
			continue
		}
		popular[region] = r.client.GetPopularSongs(ctx, region)
	}
	cache.SetPopularSongs(popular)

	snap := cache.Snapshot()
	if cmd.Bool("json") {
		return r.writeJSON(snap.PopularSongs, true)
	}

	for region, tracks := range snap.PopularSongs {
		r.printf("── %s ──\n", strings.ToUpper(region))
		r.printTracks(tracks)
	}
	return nil
}

// Examples fetches the built-in example catalog into the catalog cache and prints it.
func (r *Runner) Examples(ctx context.Context, cmd *cli.Command) error {
	cache := r.store.Catalog
	cache.SetLoading(true)
	tracks := r.client.GetExampleSongs(ctx)
	cache.SetSearchResults(tracks)

	if cmd.Bool("json") {
		return r.writeJSON(cache.Snapshot().SearchResults, true)
	}

	r.printTracks(cache.Snapshot().SearchResults)
	return nil
}
