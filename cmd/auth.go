package main

import (
	"context"
	"fmt"

	"github.com/musichub/musichub/internal/models"
	"github.com/musichub/musichub/internal/shared"
	"github.com/urfave/cli/v3"
)

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Session operations",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Start a session with the given email",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address to log in with",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Password (checked locally, never stored)",
					},
				},
				Action: r.Login,
			},
			{
				Name:   "logout",
				Usage:  "End the current session",
				Action: r.Logout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the current session",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "json"}},
				Action: r.Whoami,
			},
		},
	}
}

// Login validates the credentials and replaces the current identity.
//
// Validation lives here, not in the store: a rejected input means the
// mutation is never attempted.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	if err := models.ValidateEmail(email); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	if password := cmd.String("password"); password != "" && len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", shared.ErrInvalidInput)
	}

	identity := models.Session{ID: shared.GenerateID(), Email: email}
	if err := r.store.Session.Login(identity); err != nil {
		return err
	}

	r.printf("logged in as %s\n", email)
	return nil
}

// Logout clears the identity and the persisted session.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	if err := r.store.Session.Logout(); err != nil {
		return err
	}

	r.printf("logged out\n")
	return nil
}

// Whoami reports the active session, if any.
func (r *Runner) Whoami(ctx context.Context, cmd *cli.Command) error {
	user, ok := r.store.Session.Current()
	if !ok {
		r.printf("not logged in\n")
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, true)
	}

	r.printf("%s (%s)\n", user.Email, user.ID)
	return nil
}
