package main

import (
	"context"
	"fmt"
	"io"

	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/spf13/cobra"
)

// migrationCommands lists the goose commands exposed by the migrate command.
var migrationCommands = []struct {
	name  string
	short string
}{
	{migrate.CommandUp, "Apply all pending migrations"},
	{migrate.CommandDown, "Roll back the most recent migration"},
	{migrate.CommandReset, "Roll back all migrations"},
	{migrate.CommandStatus, "Show the status of each migration"},
	{migrate.CommandVersion, "Print the current schema version"},
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	for _, mc := range migrationCommands {
		command := mc.name
		cmd.AddCommand(&cobra.Command{
			Use:   command,
			Short: mc.short,
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				return handleMigrations(c.Context(), command, c.OutOrStdout())
			},
		})
	}
	return cmd
}

// handleMigrations runs a single goose command against the configured
// database. Migrations are never applied implicitly here.
func handleMigrations(ctx context.Context, command string, out io.Writer) error {
	cfg, logger, err := initializeApp()
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	logger.Info("Executing migrations", "command", command)
	if err := migrate.Run(ctx, db, cfg.Database.Driver, command, logger); err != nil {
		return err
	}

	if command == migrate.CommandVersion || command == migrate.CommandUp {
		version, err := migrate.CurrentVersion(ctx, db, cfg.Database.Driver)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		fmt.Fprintf(out, "schema version: %d\n", version)
	}
	return nil
}
