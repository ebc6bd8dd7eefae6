package postgres

import (
	"log/slog"

	"github.com/phrazzld/todo-api/internal/platform/sqlstore"
	"github.com/phrazzld/todo-api/internal/store"
)

// Dialect is the PostgreSQL statement set and error mapping.
var Dialect = sqlstore.Dialect{
	Name:        "postgres",
	ListQuery:   `SELECT id, description FROM task ORDER BY id`,
	CreateQuery: `INSERT INTO task (description) VALUES ($1) RETURNING id, description`,
	DeleteQuery: `DELETE FROM task WHERE id = $1 RETURNING id`,
	MapError:    MapError,
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	*sqlstore.TaskStore
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that is managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	return &PostgresTaskStore{TaskStore: sqlstore.NewTaskStore(db, Dialect, logger)}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)
