package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setSQLiteEnv points config.Load at a fresh SQLite file.
func setSQLiteEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TODO_DATABASE_DRIVER", "sqlite")
	t.Setenv("TODO_DATABASE_URL", filepath.Join(t.TempDir(), "todo.db"))
	t.Setenv("TODO_SERVER_LOG_LEVEL", "error")
	t.Setenv("DATABASE_URL", "")
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateCommands(t *testing.T) {
	setSQLiteEnv(t)

	out, err := runRoot(t, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "schema version: 0\n", out)

	out, err = runRoot(t, "migrate", "up")
	require.NoError(t, err)
	assert.Equal(t, "schema version: 1\n", out)

	_, err = runRoot(t, "migrate", "status")
	require.NoError(t, err)

	_, err = runRoot(t, "migrate", "down")
	require.NoError(t, err)

	out, err = runRoot(t, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "schema version: 0\n", out)
}

func TestMigrateCommand_RejectsArgs(t *testing.T) {
	setSQLiteEnv(t)

	_, err := runRoot(t, "migrate", "up", "extra")

	assert.Error(t, err)
}

func TestInitializeApp_InvalidConfig(t *testing.T) {
	setSQLiteEnv(t)
	t.Setenv("TODO_SERVER_LOG_LEVEL", "verbose")

	_, _, err := initializeApp()

	assert.ErrorContains(t, err, "validation failed")
}

func TestServeCommand_InvalidPort(t *testing.T) {
	setSQLiteEnv(t)
	t.Setenv("TODO_SERVER_PORT", "0")

	_, err := runRoot(t, "serve")

	assert.ErrorContains(t, err, "validation failed")
}
