package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/todo-api/internal/client"
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// EnvBackendURL overrides the default backend URL.
const EnvBackendURL = "TODO_BACKEND_URL"

// NewClientFunc builds the TaskClient used by the commands.
type NewClientFunc func(baseURL string, timeout time.Duration) (TaskClient, error)

// EnvLogLevel sets the level of the client's log output on stderr.
const EnvLogLevel = "TODO_LOG_LEVEL"

const defaultLogLevel = "warn"

// NewLogger returns the JSON logger used by the todo binary, set up the same
// way as the server's. The level comes from TODO_LOG_LEVEL and defaults to warn.
func NewLogger(w io.Writer) (*slog.Logger, error) {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = defaultLogLevel
	}
	return logger.SetupWithWriter(config.ServerConfig{LogLevel: level}, w)
}

// DefaultNewClient creates a *client.Client that logs to stderr.
func DefaultNewClient(baseURL string, timeout time.Duration) (TaskClient, error) {
	log, err := NewLogger(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	c, err := client.New(baseURL, client.WithTimeout(timeout), client.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return c, nil
}

type rootOptions struct {
	backendURL string
	timeout    time.Duration
	newClient  NewClientFunc
}

func (o *rootOptions) client() (TaskClient, error) {
	return o.newClient(o.backendURL, o.timeout)
}

// NewRootCommand returns the todo command tree. Running it without a
// subcommand starts the interactive shell.
func NewRootCommand(newClient NewClientFunc) *cobra.Command {
	if newClient == nil {
		newClient = DefaultNewClient
	}
	opts := &rootOptions{newClient: newClient}

	defaultURL := os.Getenv(EnvBackendURL)
	if defaultURL == "" {
		defaultURL = client.DefaultBaseURL
	}

	root := &cobra.Command{
		Use:           "todo",
		Short:         "Manage a todo list served by the todo API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.backendURL, "backend", defaultURL,
		"backend base URL (env "+EnvBackendURL+")")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "per-request timeout")

	root.AddCommand(
		newListCommand(opts),
		newAddCommand(opts),
		newDeleteCommand(opts),
		newShellCommand(opts),
	)
	return root
}

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			tasks, err := c.ListTasks(cmd.Context())
			if err != nil {
				return fmt.Errorf("error loading tasks: %s", errorMessage(err))
			}
			out := cmd.OutOrStdout()
			for _, t := range tasks {
				fmt.Fprintln(out, FormatTask(t))
			}
			return nil
		},
	}
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description...>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(strings.Join(args, " "))
			if description == "" {
				return fmt.Errorf("description cannot be empty")
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			task, err := c.AddTask(cmd.Context(), description)
			if err != nil {
				return fmt.Errorf("error saving task: %s", errorMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), FormatTask(task))
			return nil
		},
	}
}

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			deletedID, err := c.DeleteTask(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error deleting task: %s", errorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", deletedID)
			return nil
		},
	}
}

func newShellCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	c, err := opts.client()
	if err != nil {
		return err
	}
	return NewBinder(c, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
