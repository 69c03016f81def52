package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/musichub/musichub/internal/persist"
	"github.com/musichub/musichub/internal/shared"
	"github.com/musichub/musichub/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	st, err := buildStore(config, logger)
	if err != nil {
		logger.Fatalf("failed to initialize storage: %v", err)
	}

	// Pick up a persisted identity; a corrupt one is discarded and the
	// session starts Anonymous.
	st.Restore()

	runner := NewRunner(RunnerOpts{
		Config: config,
		Store:  st,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "musichub",
		Usage:    "Browse the music catalog and organize playlists",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// buildStore wires the configured storage backends into a state store.
func buildStore(config *shared.Config, logger *log.Logger) (*store.Store, error) {
	sessionStorage, err := persist.NewFileSessionStorage(config.Storage.SessionDir)
	if err != nil {
		return nil, err
	}

	var playlistStorage persist.PlaylistStorage
	switch config.Storage.Engine {
	case "sqlite":
		db, err := shared.NewDatabase(config.Database.Path)
		if err != nil {
			return nil, err
		}
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err != nil {
			return nil, err
		}
		playlistStorage = persist.NewSQLitePlaylistStorage(db)
	case "", "file":
		playlistStorage, err = persist.NewFilePlaylistStorage(config.Storage.Dir)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown storage engine %q", shared.ErrInvalidConfig, config.Storage.Engine)
	}

	return store.New(store.Options{
		SessionStorage:  sessionStorage,
		PlaylistStorage: playlistStorage,
		Logger:          logger,
	})
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, searchCommand, trendingCommand, examplesCommand, playlistCommand, browseCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Write a starter config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("config")
			if err := shared.CreateConfigFile(path); err != nil {
				return err
			}
			r.printf("wrote %s\n", path)
			return nil
		},
	}
}
