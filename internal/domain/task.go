package domain

import "errors"

// Validation errors for Task
var (
	ErrEmptyTaskID = errors.New("task ID cannot be empty")
)

// Task is a single todo item. The ID is assigned by the store when the task
// is created and never changes afterwards.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// NewTask creates a Task that has not been persisted yet.
// An empty description is allowed.
func NewTask(description string) *Task {
	return &Task{Description: description}
}

// IsPersisted reports whether the store has assigned an ID to the task.
func (t *Task) IsPersisted() bool {
	return t.ID > 0
}

// Validate checks that a task read back from the store carries an ID.
func (t *Task) Validate() error {
	if !t.IsPersisted() {
		return ErrEmptyTaskID
	}
	return nil
}
