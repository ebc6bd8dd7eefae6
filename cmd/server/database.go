package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/phrazzld/todo-api/internal/store"
)

const connectTimeout = 10 * time.Second

// openDatabase opens the configured database without running migrations.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(ctx, cfg)
	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// setupAppDatabase opens the database and applies pending migrations when
// database.migrate_on_start is set.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if err := migrate.Up(ctx, db, cfg.Database.Driver, logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	logger.Info("Database connection established", "driver", cfg.Database.Driver)
	return db, nil
}

// newTaskStore returns the TaskStore implementation for the configured driver.
func newTaskStore(driver string, db *sql.DB, logger *slog.Logger) (store.TaskStore, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.NewPostgresTaskStore(db, logger), nil
	case config.DriverSQLite:
		return sqlite.NewSQLiteTaskStore(db, logger), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
