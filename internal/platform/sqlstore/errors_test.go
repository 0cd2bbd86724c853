package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/phrazzld/taskwell-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"pg unique", &pgconn.PgError{Code: uniqueViolationCode}, store.ErrDuplicate},
		{"pg foreign key", &pgconn.PgError{Code: foreignKeyViolationCode}, store.ErrInvalidEntity},
		{"pg check", &pgconn.PgError{Code: checkViolationCode}, store.ErrInvalidEntity},
		{"pg not null", &pgconn.PgError{Code: notNullViolationCode}, store.ErrInvalidEntity},
		{
			"sqlite unique",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			store.ErrDuplicate,
		},
		{
			"sqlite foreign key",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey},
			store.ErrInvalidEntity,
		},
		{
			"wrapped pg unique",
			fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode}),
			store.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, MapError(tc.err), tc.want)
		})
	}

	assert.NoError(t, MapError(nil))

	plain := errors.New("connection reset")
	assert.Same(t, plain, MapError(plain))
}

func TestViolationHelpers(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, IsUniqueViolation(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))

	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.True(t, IsForeignKeyViolation(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	}))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "app.db?"+sqliteParams, sqliteDSN("app.db"))
	assert.Equal(t, "file:app.db?mode=rwc&"+sqliteParams, sqliteDSN("file:app.db?mode=rwc"))
}
