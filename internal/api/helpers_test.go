package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskwell-api/internal/api"
	"github.com/phrazzld/taskwell-api/internal/api/middleware"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/mocks"
	"github.com/phrazzld/taskwell-api/internal/service"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 4, 5, 6, 7, 8, 0, time.UTC)

// testEnv wires real services over in-memory mock stores behind a chi router.
type testEnv struct {
	users        *mocks.MockUserStore
	tasks        *mocks.MockTaskStore
	descriptions *mocks.MockTaskDescriptionStore
	reflections  *mocks.MockReflectionStore
	logs         *mocks.MockErrorLogStore
	router       http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return fixedNow }

	env := &testEnv{
		users:        mocks.NewMockUserStore(),
		descriptions: mocks.NewMockTaskDescriptionStore(),
		reflections:  mocks.NewMockReflectionStore(),
		logs:         mocks.NewMockErrorLogStore(),
	}
	env.tasks = mocks.NewMockTaskStore(env.users)

	resolver := service.NewTaskOwnershipResolver(env.tasks)
	errorLogs := service.NewErrorLogService(env.logs, time.Second, clock, log)
	reporter := api.NewErrorReporter(errorLogs)

	handlers := &api.Handlers{
		Users: api.NewUserHandler(service.NewUserService(env.users, log), reporter, log),
		Tasks: api.NewTaskHandler(service.NewTaskService(env.tasks, env.users, log), reporter, log),
		TaskDescriptions: api.NewTaskDescriptionHandler(
			service.NewTaskDescriptionService(env.descriptions, env.tasks, resolver, log), reporter),
		Reflections: api.NewReflectionHandler(
			service.NewReflectionService(env.reflections, env.tasks, resolver, clock, log), reporter),
		ErrorLogs: api.NewErrorLogHandler(errorLogs, reporter),
	}

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(log))
	r.Use(middleware.NewRecoverMiddleware(reporter.HandleAPIError, log))
	handlers.Mount(r)
	env.router = r

	return env
}

func (e *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func (e *testEnv) seedUser(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Test", "User", email, "password123")
	require.NoError(t, err)
	e.users.Users = append(e.users.Users, u)
	return u
}

func (e *testEnv) seedTask(t *testing.T, owner *domain.User, rank int, due string) *domain.Task {
	t.Helper()
	d, err := domain.ParseDueDate(due)
	require.NoError(t, err)
	task, err := domain.NewTask(owner.ID, rank, "", d)
	require.NoError(t, err)
	e.tasks.Tasks = append(e.tasks.Tasks, task)
	return task
}

func (e *testEnv) seedDescription(t *testing.T, task *domain.Task, title string) {
	t.Helper()
	td, err := domain.NewTaskDescription(task.ID, title, "", nil)
	require.NoError(t, err)
	e.descriptions.Descriptions = append(e.descriptions.Descriptions, td)
}

// requireOneErrorLog asserts exactly one audit entry was recorded and
// returns it.
func (e *testEnv) requireOneErrorLog(t *testing.T) *domain.ErrorLog {
	t.Helper()
	entries := e.logs.Snapshot()
	require.Len(t, entries, 1)
	return entries[0]
}
