package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/musichub/musichub/internal/audiodb"
	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
	"github.com/musichub/musichub/internal/store"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	store      *store.Store
	client     *audiodb.Client
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Store      *store.Store
	Client     *audiodb.Client
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Client == nil {
		opts.Client = audiodb.NewClient(opts.Config.API, opts.HTTPClient, opts.Logger)
	}

	return &Runner{
		config:     opts.Config,
		store:      opts.Store,
		client:     opts.Client,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// currentUser returns the active identity or ErrNotAuthenticated.
func (r *Runner) currentUser() (models.Session, error) {
	user, ok := r.store.Session.Current()
	if !ok {
		return models.Session{}, fmt.Errorf("%w: log in first", shared.ErrNotAuthenticated)
	}
	return user, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.output, format, args...)
}

// printTracks writes a numbered track listing.
func (r *Runner) printTracks(tracks []models.Track) {
	if len(tracks) == 0 {
		r.printf("no results\n")
		return
	}

	for i, track := range tracks {
		line := fmt.Sprintf("%2d. %s - %s", i+1, track.Artist, track.Name)
		if track.Album != "" {
			line += fmt.Sprintf(" (%s)", track.Album)
		}
		if track.Genre != "" && track.Genre != models.Unknown {
			line += fmt.Sprintf(" [%s]", track.Genre)
		}
		r.printf("%s\n", line)
	}
}
