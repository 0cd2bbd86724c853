package service_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/mocks"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func seedUser(t *testing.T, users *mocks.MockUserStore, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Test", "User", email, "password123")
	require.NoError(t, err)
	users.Users = append(users.Users, u)
	return u
}

func seedTask(t *testing.T, tasks *mocks.MockTaskStore, userID uuid.UUID, rank int, due string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(userID, rank, "", mustDate(t, due))
	require.NoError(t, err)
	tasks.Tasks = append(tasks.Tasks, task)
	return task
}
