package sqlstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/platform/logger"
	"github.com/phrazzld/taskwell-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated SQLite database in a temp dir.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, path, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log, _ := logger.GetTestLogger(t)
	require.NoError(t, sqlstore.Migrate(ctx, db, sqlstore.DriverSQLite, log))
	return db
}

func createUser(t *testing.T, users *sqlstore.UserStore, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Ada", "Lovelace", email, "s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func createTask(
	t *testing.T,
	tasks *sqlstore.TaskStore,
	userID uuid.UUID,
	rank int,
	due string,
) *domain.Task {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, due)
	require.NoError(t, err)
	task, err := domain.NewTask(userID, rank, "", d)
	require.NoError(t, err)
	require.NoError(t, tasks.Create(context.Background(), task))
	return task
}
