// Package main implements the todo API server. It serves the task routes
// by default and exposes goose migrations through the migrate command.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "todo-server: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newRootCommand builds the server command tree. Running it without a
// subcommand starts the HTTP server.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "todo-server",
		Short:         "Todo list HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		newMigrateCommand(),
	)
	return root
}

// runServe loads configuration, connects to the database, and serves until
// ctx is canceled.
func runServe(ctx context.Context) error {
	cfg, logger, err := initializeApp()
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return err
	}

	return app.Run(ctx)
}
