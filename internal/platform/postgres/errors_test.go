package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "task",
		ColumnName:     "description",
		ConstraintName: "task_pkey",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	generic := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no rows", err: sql.ErrNoRows, expected: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505"), expected: store.ErrDuplicate},
		{name: "foreign key violation", err: newPgError("23503"), expected: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError("23514"), expected: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), expected: store.ErrInvalidEntity},
		{
			name:     "wrapped not null violation",
			err:      fmt.Errorf("insert: %w", newPgError("23502")),
			expected: store.ErrInvalidEntity,
		},
		{name: "unmapped error", err: generic, expected: generic},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, postgres.MapError(tc.err), tc.expected)
		})
	}

	assert.NoError(t, postgres.MapError(nil))
}

func TestMapErrorKeepsPgError(t *testing.T) {
	t.Parallel()

	mapped := postgres.MapError(newPgError("23505"))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(mapped, &pgErr), "original PgError should remain in the chain")
	assert.Equal(t, "23505", pgErr.Code)
}

func TestViolationHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23502")))
	assert.False(t, postgres.IsUniqueViolation(nil))

	assert.True(t, postgres.IsNotNullViolation(newPgError("23502")))
	assert.False(t, postgres.IsNotNullViolation(errors.New("generic error")))
}
