package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phrazzld/todo-api/internal/client"
	"github.com/phrazzld/todo-api/internal/domain"
)

// Prompt is printed when the binder is ready for the next line.
const Prompt = "> "

// TaskClient is the subset of *client.Client used by the binder.
type TaskClient interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	AddTask(ctx context.Context, description string) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) (int64, error)
	Tasks() []domain.Task
}

var _ TaskClient = (*client.Client)(nil)

// Binder connects a line-oriented terminal to a TaskClient. Every
// non-empty line becomes a new task, except the slash commands:
//
//	/list          show the cached tasks
//	/delete <id>   delete a task
//	/quit          exit
//
// Any other line starting with "/" is rejected as an unknown command. A
// leading "//" adds the rest of the line with one slash removed, so
// "//list" adds the task "/list".
type Binder struct {
	client TaskClient
	in     io.Reader
	out    io.Writer
}

// NewBinder creates a Binder reading from in and writing to out.
func NewBinder(c TaskClient, in io.Reader, out io.Writer) *Binder {
	return &Binder{client: c, in: in, out: out}
}

// Run loads the task list, renders it, and then processes input lines
// until EOF, /quit, or ctx is done. No input is read before the initial
// list has been rendered.
func (b *Binder) Run(ctx context.Context) error {
	tasks, err := b.client.ListTasks(ctx)
	if err != nil {
		b.printf("Error loading tasks: %s\n", errorMessage(err))
	} else {
		b.renderAll(tasks)
	}

	scanner := bufio.NewScanner(b.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.printf("%s", Prompt)
		if !scanner.Scan() {
			b.printf("\n")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := b.handleLine(ctx, line); quit {
			return nil
		}
	}
}

// handleLine processes one trimmed, non-empty line and reports whether the
// binder should exit.
func (b *Binder) handleLine(ctx context.Context, line string) bool {
	switch {
	case line == "/quit":
		return true

	case line == "/list":
		b.renderAll(b.client.Tasks())

	case line == "/delete" || strings.HasPrefix(line, "/delete "):
		arg := strings.TrimSpace(strings.TrimPrefix(line, "/delete"))
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			b.printf("Usage: /delete <id>\n")
			return false
		}
		if _, err := b.client.DeleteTask(ctx, id); err != nil {
			b.printf("Error deleting task: %s\n", errorMessage(err))
			return false
		}
		b.printf("Deleted task %d\n", id)

	case strings.HasPrefix(line, "//"):
		b.add(ctx, line[1:])

	case strings.HasPrefix(line, "/"):
		b.printf("Unknown command: %s\n", strings.Fields(line)[0])

	default:
		b.add(ctx, line)
	}
	return false
}

func (b *Binder) add(ctx context.Context, description string) {
	task, err := b.client.AddTask(ctx, description)
	if err != nil {
		b.printf("Error saving task: %s\n", errorMessage(err))
		return
	}
	b.render(task)
}

func (b *Binder) renderAll(tasks []domain.Task) {
	if len(tasks) == 0 {
		b.printf("No tasks yet.\n")
		return
	}
	for _, t := range tasks {
		b.render(t)
	}
}

func (b *Binder) render(t domain.Task) {
	b.printf("%s\n", FormatTask(t))
}

func (b *Binder) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(b.out, format, args...)
}

// FormatTask renders a task as a list line.
func FormatTask(t domain.Task) string {
	return fmt.Sprintf("- [%d] %s", t.ID, t.Description)
}

// errorMessage returns the text shown to users for err.
func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, client.ErrTaskNotFound) {
		return "Task not found"
	}
	return err.Error()
}
