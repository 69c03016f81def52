package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/musichub/musichub/internal/shared"
	"github.com/musichub/musichub/internal/ui"
	"github.com/urfave/cli/v3"
)

// browseCommand launches the interactive catalog browser
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "Browse the catalog interactively",
		ArgsUsage: "[query]",
		Action:    r.Browse,
	}
}

// Browse launches the interactive TUI over search results, or the example
// catalog when no query is given.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/musichub-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.store, r.client, cmd.Args().First())
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
