package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskService provides the task use cases exposed over HTTP.
type TaskService interface {
	// ListTasks returns every stored task. An empty store yields an empty slice.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask stores a new task and returns it with its assigned ID.
	// The description is stored as given; an empty string is accepted.
	CreateTask(ctx context.Context, description string) (*domain.Task, error)

	// DeleteTask removes the task and returns its ID.
	// Returns ErrTaskNotFound if no task has that ID.
	DeleteTask(ctx context.Context, id int64) (int64, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the store is nil.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "task store cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, description string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task := domain.NewTask(description)
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, NewTaskServiceError("create_task", "failed to create task", err)
	}

	// A store that returns without assigning an ID breaks the contract with clients.
	if err := task.Validate(); err != nil {
		log.Error("store returned task without ID")
		return nil, NewTaskServiceError("create_task", "store did not assign an ID", err)
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deletedID, err := s.tasks.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task to delete not found", slog.Int64("task_id", id))
		}
		return 0, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	return deletedID, nil
}
