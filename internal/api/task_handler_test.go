package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask(t *testing.T) {
	t.Run("defaults status", func(t *testing.T) {
		env := newTestEnv(t)
		owner := env.seedUser(t, "ada@example.com")

		w := env.do(t, http.MethodPost, "/api/add_task",
			fmt.Sprintf(`{"user_id":%q,"rank":2,"due_date":"2025-06-01"}`, owner.ID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, "Task added successfully", body["message"])
		require.Len(t, env.tasks.Tasks, 1)
		assert.Equal(t, body["task_id"], env.tasks.Tasks[0].ID.String())
		assert.Equal(t, domain.TaskStatusNotComplete, env.tasks.Tasks[0].Status)
	})

	t.Run("timestamp due date is truncated", func(t *testing.T) {
		env := newTestEnv(t)
		owner := env.seedUser(t, "ada@example.com")

		w := env.do(t, http.MethodPost, "/api/add_task",
			fmt.Sprintf(`{"user_id":%q,"rank":1,"due_date":"2025-06-01T18:30:00Z","status":"missed"}`, owner.ID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = env.do(t, http.MethodGet, "/api/user_tasks?user_id="+owner.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		tasks := decodeBody(t, w)["tasks"].([]interface{})
		require.Len(t, tasks, 1)
		task := tasks[0].(map[string]interface{})
		assert.Equal(t, "2025-06-01", task["due_date"])
		assert.Equal(t, "missed", task["status"])
	})

	tests := []struct {
		name       string
		body       func(owner uuid.UUID) string
		wantStatus int
		wantType   domain.ErrorType
	}{
		{
			name:       "rank zero",
			body:       func(o uuid.UUID) string { return fmt.Sprintf(`{"user_id":%q,"rank":0,"due_date":"2025-06-01"}`, o) },
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeValidation,
		},
		{
			name:       "rank five",
			body:       func(o uuid.UUID) string { return fmt.Sprintf(`{"user_id":%q,"rank":5,"due_date":"2025-06-01"}`, o) },
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeValidation,
		},
		{
			name:       "missing rank",
			body:       func(o uuid.UUID) string { return fmt.Sprintf(`{"user_id":%q,"due_date":"2025-06-01"}`, o) },
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeValidation,
		},
		{
			name: "unknown status",
			body: func(o uuid.UUID) string {
				return fmt.Sprintf(`{"user_id":%q,"rank":1,"due_date":"2025-06-01","status":"done"}`, o)
			},
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeValidation,
		},
		{
			name:       "bad due date",
			body:       func(o uuid.UUID) string { return fmt.Sprintf(`{"user_id":%q,"rank":1,"due_date":"June 1st"}`, o) },
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeValidation,
		},
		{
			name:       "malformed user id",
			body:       func(uuid.UUID) string { return `{"user_id":"42","rank":1,"due_date":"2025-06-01"}` },
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeValidation,
		},
		{
			name: "unknown user",
			body: func(uuid.UUID) string {
				return fmt.Sprintf(`{"user_id":%q,"rank":1,"due_date":"2025-06-01"}`, uuid.New())
			},
			wantStatus: http.StatusNotFound,
			wantType:   domain.ErrorTypeNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			owner := env.seedUser(t, "ada@example.com")

			w := env.do(t, http.MethodPost, "/api/add_task", tc.body(owner.ID))
			assert.Equal(t, tc.wantStatus, w.Code, w.Body.String())
			assert.Empty(t, env.tasks.Tasks)

			entry := env.requireOneErrorLog(t)
			assert.Equal(t, tc.wantType, entry.ErrorType)
			assert.Equal(t, "/api/add_task", entry.Endpoint)
		})
	}
}

func TestListUserTasks(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "ada@example.com")
	other := env.seedUser(t, "grace@example.com")

	late := env.seedTask(t, owner, 1, "2025-07-01")
	low := env.seedTask(t, owner, 3, "2025-01-01")
	early := env.seedTask(t, owner, 1, "2025-02-01")
	env.seedTask(t, other, 1, "2025-01-01")

	w := env.do(t, http.MethodGet, "/api/user_tasks?user_id="+owner.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	tasks := decodeBody(t, w)["tasks"].([]interface{})
	require.Len(t, tasks, 3)
	var ids []string
	for _, raw := range tasks {
		ids = append(ids, raw.(map[string]interface{})["task_id"].(string))
	}
	assert.Equal(t, []string{early.ID.String(), late.ID.String(), low.ID.String()}, ids)

	t.Run("user without tasks", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/user_tasks?user_id="+uuid.NewString(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tasks":[]}`, w.Body.String())
	})

	t.Run("missing user id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/user_tasks", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "user_id is required", decodeBody(t, w)["error"])
	})
}

func TestListTasks(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "ada@example.com")
	task := env.seedTask(t, owner, 2, "2025-03-04")

	orphan, err := domain.NewTask(uuid.New(), 4, domain.TaskStatusMissed, task.DueDate)
	require.NoError(t, err)
	env.tasks.Tasks = append(env.tasks.Tasks, orphan)

	w := env.do(t, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)

	tasks := decodeBody(t, w)["tasks"].([]interface{})
	require.Len(t, tasks, 2)

	byID := map[string]map[string]interface{}{}
	for _, raw := range tasks {
		row := raw.(map[string]interface{})
		byID[row["task_id"].(string)] = row
	}

	owned := byID[task.ID.String()]
	assert.Equal(t, "ada@example.com", owned["email"])
	assert.Equal(t, "Test", owned["first_name"])
	assert.Equal(t, "2025-03-04", owned["due_date"])
	assert.EqualValues(t, 2, owned["rank"])

	unowned := byID[orphan.ID.String()]
	require.Contains(t, unowned, "email")
	assert.Nil(t, unowned["email"])
	assert.Nil(t, unowned["first_name"])
	assert.Nil(t, unowned["last_name"])
}
