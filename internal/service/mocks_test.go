package service

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// mockTaskStore is a function-field implementation of store.TaskStore.
type mockTaskStore struct {
	ListFn   func(ctx context.Context) ([]*domain.Task, error)
	CreateFn func(ctx context.Context, task *domain.Task) error
	DeleteFn func(ctx context.Context, id int64) (int64, error)
}

func (m *mockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return id, nil
}
