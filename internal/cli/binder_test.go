package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/phrazzld/todo-api/internal/client"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is a function-field TaskClient with an in-memory cache.
type fakeClient struct {
	listFn   func(ctx context.Context) ([]domain.Task, error)
	addFn    func(ctx context.Context, description string) (domain.Task, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
	cache    []domain.Task
}

func (f *fakeClient) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if f.listFn == nil {
		return f.cache, nil
	}
	tasks, err := f.listFn(ctx)
	if err == nil {
		f.cache = tasks
	}
	return tasks, err
}

func (f *fakeClient) AddTask(ctx context.Context, description string) (domain.Task, error) {
	var task domain.Task
	var err error
	if f.addFn != nil {
		task, err = f.addFn(ctx, description)
	} else {
		task = domain.Task{ID: int64(len(f.cache) + 1), Description: description}
	}
	if err == nil {
		f.cache = append(f.cache, task)
	}
	return task, err
}

func (f *fakeClient) DeleteTask(ctx context.Context, id int64) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return id, nil
}

func (f *fakeClient) Tasks() []domain.Task {
	return append([]domain.Task(nil), f.cache...)
}

func runBinder(t *testing.T, c TaskClient, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := NewBinder(c, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestBinder_RendersInitialList(t *testing.T) {
	c := &fakeClient{cache: []domain.Task{{ID: 1, Description: "buy milk"}, {ID: 2, Description: "walk dog"}}}

	out := runBinder(t, c, "")

	assert.Equal(t, "- [1] buy milk\n- [2] walk dog\n> \n", out)
}

func TestBinder_EmptyList(t *testing.T) {
	out := runBinder(t, &fakeClient{}, "")

	assert.True(t, strings.HasPrefix(out, "No tasks yet.\n> "))
}

// gatedReader fails the test if it is read before ready is set.
type gatedReader struct {
	t     *testing.T
	ready *bool
	r     io.Reader
}

func (g *gatedReader) Read(p []byte) (int, error) {
	if !*g.ready {
		g.t.Error("input read before initial list completed")
	}
	return g.r.Read(p)
}

func TestBinder_ReadinessGate(t *testing.T) {
	ready := false
	c := &fakeClient{
		listFn: func(ctx context.Context) ([]domain.Task, error) {
			ready = true
			return nil, nil
		},
	}
	var out bytes.Buffer

	err := NewBinder(c, &gatedReader{t: t, ready: &ready, r: strings.NewReader("x\n")}, &out).Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "- [1] x")
}

func TestBinder_AddsTrimmedLines(t *testing.T) {
	var added []string
	c := &fakeClient{
		addFn: func(ctx context.Context, description string) (domain.Task, error) {
			added = append(added, description)
			return domain.Task{ID: int64(len(added)), Description: description}, nil
		},
	}

	out := runBinder(t, c, "  buy milk  \n\n   \nwalk dog\n")

	assert.Equal(t, []string{"buy milk", "walk dog"}, added)
	assert.Contains(t, out, "- [1] buy milk\n")
	assert.Contains(t, out, "- [2] walk dog\n")
}

func TestBinder_AddFailureContinues(t *testing.T) {
	calls := 0
	c := &fakeClient{
		addFn: func(ctx context.Context, description string) (domain.Task, error) {
			calls++
			if calls == 1 {
				return domain.Task{}, &client.APIError{StatusCode: 500, Message: "Failed to create task"}
			}
			return domain.Task{ID: 9, Description: description}, nil
		},
	}

	out := runBinder(t, c, "first\nsecond\n")

	assert.Contains(t, out, "Error saving task: Failed to create task\n")
	assert.Contains(t, out, "- [9] second\n")
	assert.Equal(t, []domain.Task{{ID: 9, Description: "second"}}, c.Tasks())
}

func TestBinder_SlashLines(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantAdded []string
		want      string
	}{
		{name: "unknown command", input: "/lst\n", want: "Unknown command: /lst\n"},
		{name: "unknown command with args", input: "/remove 3\n", want: "Unknown command: /remove\n"},
		{name: "escaped command text", input: "//list\n", wantAdded: []string{"/list"}, want: "- [1] /list\n"},
		{name: "escaped slash text", input: "// hello\n", wantAdded: []string{"/ hello"}, want: "- [1] / hello\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var added []string
			c := &fakeClient{
				addFn: func(ctx context.Context, description string) (domain.Task, error) {
					added = append(added, description)
					return domain.Task{ID: int64(len(added)), Description: description}, nil
				},
			}

			out := runBinder(t, c, tc.input)

			assert.Equal(t, tc.wantAdded, added)
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestBinder_ListLoadFailure(t *testing.T) {
	c := &fakeClient{
		listFn: func(ctx context.Context) ([]domain.Task, error) {
			return nil, &client.NetworkError{Op: "GET", URL: "http://localhost:3001/", Err: errors.New("connection refused")}
		},
	}

	out := runBinder(t, c, "")

	assert.Contains(t, out, "Error loading tasks: GET http://localhost:3001/: network error: connection refused\n")
	assert.Contains(t, out, Prompt)
}

func TestBinder_Commands(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		deleteFn func(ctx context.Context, id int64) (int64, error)
		want     []string
		notWant  []string
	}{
		{
			name:  "delete",
			input: "/delete 3\n",
			want:  []string{"Deleted task 3\n"},
		},
		{
			name:  "delete usage",
			input: "/delete abc\n/delete\n",
			want:  []string{"Usage: /delete <id>\n"},
		},
		{
			name:  "delete not found",
			input: "/delete 3\n",
			deleteFn: func(ctx context.Context, id int64) (int64, error) {
				return 0, client.ErrTaskNotFound
			},
			want: []string{"Error deleting task: Task not found\n"},
		},
		{
			name:    "quit stops reading",
			input:   "/quit\nnever added\n",
			notWant: []string{"never added"},
		},
		{
			name:  "list re-renders cache",
			input: "a\n/list\n",
			want:  []string{"- [1] a\n> - [1] a\n"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &fakeClient{deleteFn: tc.deleteFn}

			out := runBinder(t, c, tc.input)

			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tc.notWant {
				assert.NotContains(t, out, nw)
			}
		})
	}
}

func TestBinder_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewBinder(&fakeClient{}, strings.NewReader("x\n"), io.Discard).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatTask(t *testing.T) {
	assert.Equal(t, "- [12] buy milk", FormatTask(domain.Task{ID: 12, Description: "buy milk"}))
	assert.Equal(t, "- [1] ", FormatTask(domain.Task{ID: 1}))
}
