package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrTaskNotFound is returned by DeleteTask when the server has no such task.
var ErrTaskNotFound = errors.New("task not found")

// taskNotFoundMessage is the message the server sends with a missing-task 404.
const taskNotFoundMessage = "Task not found"

// NetworkError reports a failure to reach the server or read its response.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that could not be decoded.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: failed to decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the server. Message is taken from the
// body's "error" or "message" field when present.
type APIError struct {
	StatusCode int
	Message    string
	TraceID    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) isTaskNotFound() bool {
	return e.StatusCode == http.StatusNotFound && e.Message == taskNotFoundMessage
}
