package store

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// List returns every task in the store's natural order.
	// Returns an empty slice, never nil, when the table is empty.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create inserts the task and sets its ID to the value assigned by the store.
	Create(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID and returns the deleted ID.
	// Returns ErrTaskNotFound if no row matched.
	Delete(ctx context.Context, id int64) (int64, error)
}
