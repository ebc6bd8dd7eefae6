package api

import "github.com/phrazzld/todo-api/internal/domain"

// TaskNotFoundMessage is the body message returned when a task is missing.
const TaskNotFoundMessage = "Task not found"

// CreateTaskRequest is the payload for POST /new.
// A missing description is treated as the empty string.
type CreateTaskRequest struct {
	Description string `json:"description"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// DeleteTaskResponse is returned by DELETE /delete/{id}.
type DeleteTaskResponse struct {
	ID int64 `json:"id"`
}

// MessageResponse carries a plain message, used for the not-found reply.
type MessageResponse struct {
	Message string `json:"message"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
