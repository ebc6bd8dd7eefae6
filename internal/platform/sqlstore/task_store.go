package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// Dialect describes one database driver.
type Dialect struct {
	// Name is attached to every log line as "driver".
	Name string

	// ListQuery selects id and description of every task, ordered by id.
	ListQuery string
	// CreateQuery inserts one description and returns id and description.
	CreateQuery string
	// DeleteQuery deletes by id and returns the deleted id.
	DeleteQuery string

	// MapError translates driver errors into store sentinels.
	MapError func(error) error
}

// TaskStore implements store.TaskStore for any Dialect.
type TaskStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewTaskStore creates a TaskStore over db. If logger is nil, the default
// logger is used.
func NewTaskStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *TaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if dialect.MapError == nil {
		dialect.MapError = func(err error) error { return err }
	}

	return &TaskStore{
		db:      db,
		dialect: dialect,
		logger: logger.With(
			slog.String("component", "task_store"),
			slog.String("driver", dialect.Name),
		),
	}
}

var _ store.TaskStore = (*TaskStore)(nil)

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, s.dialect.ListQuery)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "query failed", s.dialect.MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Description); err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "row iteration failed", s.dialect.MapError(err))
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Create implements store.TaskStore.Create
// The task's ID is replaced with the one generated by the database.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx, s.dialect.CreateQuery, task.Description).
		Scan(&task.ID, &task.Description)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "insert failed", s.dialect.MapError(err))
	}

	log.Info("task created", slog.Int64("task_id", task.ID))
	return nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if no row has the given ID.
func (s *TaskStore) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deletedID int64
	err := s.db.QueryRowContext(ctx, s.dialect.DeleteQuery, id).Scan(&deletedID)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("task not found for delete", slog.Int64("task_id", id))
		return 0, store.ErrTaskNotFound
	}
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return 0, store.NewStoreError("task", "delete", "delete failed", s.dialect.MapError(err))
	}

	log.Info("task deleted", slog.Int64("task_id", deletedID))
	return deletedID, nil
}
