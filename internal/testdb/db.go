package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

const setupTimeout = 30 * time.Second

// OpenSQLite returns a migrated in-memory SQLite database that is closed
// when the test ends. Each call yields an independent, empty database.
func OpenSQLite(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	db, err := sqlite.Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, URL: ":memory:"})
	require.NoError(t, err, "failed to open in-memory sqlite")
	t.Cleanup(func() { CleanupDB(t, db) })

	require.NoError(t, migrate.Up(ctx, db, config.DriverSQLite, nil), "failed to migrate sqlite")
	return db
}

// GetTestDBWithT returns a migrated PostgreSQL connection, or skips the test
// when no test database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip(EnvTestDatabaseURL + " not set - skipping PostgreSQL test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		URL:          dbURL,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(func() { CleanupDB(t, db) })

	require.NoError(t, migrate.Up(ctx, db, config.DriverPostgres, nil), "failed to migrate test database")
	return db
}

// WithTx runs fn in a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")
	defer AssertRollbackNoError(t, tx)

	fn(t, tx)
}

// AssertRollbackNoError rolls back tx, ignoring an already finished transaction.
func AssertRollbackNoError(t *testing.T, tx *sql.Tx) {
	t.Helper()

	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		t.Errorf("failed to roll back transaction: %v", err)
	}
}

// CleanupDB closes db and reports any error on t.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()

	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		t.Errorf("failed to close database: %v", err)
	}
}
