package sqlite

import (
	"log/slog"

	"github.com/phrazzld/todo-api/internal/platform/sqlstore"
	"github.com/phrazzld/todo-api/internal/store"
)

// Dialect is the SQLite statement set and error mapping.
var Dialect = sqlstore.Dialect{
	Name:        DriverName,
	ListQuery:   `SELECT id, description FROM task ORDER BY id`,
	CreateQuery: `INSERT INTO task (description) VALUES (?) RETURNING id, description`,
	DeleteQuery: `DELETE FROM task WHERE id = ? RETURNING id`,
	MapError:    MapError,
}

// SQLiteTaskStore implements store.TaskStore on top of SQLite.
type SQLiteTaskStore struct {
	*sqlstore.TaskStore
}

// NewSQLiteTaskStore creates a TaskStore backed by the given SQLite handle.
// If logger is nil, the default logger is used.
func NewSQLiteTaskStore(db store.DBTX, logger *slog.Logger) *SQLiteTaskStore {
	return &SQLiteTaskStore{TaskStore: sqlstore.NewTaskStore(db, Dialect, logger)}
}

var _ store.TaskStore = (*SQLiteTaskStore)(nil)
