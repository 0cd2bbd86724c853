package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUser(t *testing.T) {
	t.Run("created and findable by id", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/add_user",
			`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"pw"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "User added successfully", body["message"])
		userID, _ := body["user_id"].(string)
		_, err := uuid.Parse(userID)
		require.NoError(t, err)

		w = env.do(t, http.MethodGet, "/api/find_user?user_id="+userID, "")
		require.Equal(t, http.StatusOK, w.Code)
		user := decodeBody(t, w)["user"].(map[string]interface{})
		assert.Equal(t, "ada@example.com", user["email"])
		assert.Equal(t, userID, user["user_id"])
		assert.NotContains(t, user, "password")

		assert.Empty(t, env.logs.Snapshot())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "ada@example.com")

		w := env.do(t, http.MethodPost, "/api/add_user",
			`{"first_name":"Other","last_name":"Person","email":"ada@example.com","password":"different"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Email already exists", decodeBody(t, w)["error"])

		entry := env.requireOneErrorLog(t)
		assert.Equal(t, "/api/add_user", entry.Endpoint)
		assert.Equal(t, domain.ErrorTypeConflict, entry.ErrorType)
	})

	t.Run("missing field", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/add_user",
			`{"last_name":"Lovelace","email":"ada@example.com","password":"pw"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "first_name is required", body["error"])
		assert.NotEmpty(t, body["trace_id"])

		entry := env.requireOneErrorLog(t)
		assert.Equal(t, domain.ErrorTypeValidation, entry.ErrorType)
		assert.Equal(t, "first_name is required", entry.ErrorMessage)
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/add_user", `{"first_name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env.requireOneErrorLog(t)
	})
}

func TestFindUser(t *testing.T) {
	env := newTestEnv(t)
	ada := env.seedUser(t, "ada@example.com")
	grace := env.seedUser(t, "grace@example.com")

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantID     uuid.UUID
	}{
		{"by email", "?email=ada@example.com", http.StatusOK, ada.ID},
		{"by id", "?user_id=" + grace.ID.String(), http.StatusOK, grace.ID},
		{"email checked first", "?email=ada@example.com&user_id=" + grace.ID.String(), http.StatusOK, ada.ID},
		{"no params", "", http.StatusBadRequest, uuid.Nil},
		{"malformed id", "?user_id=abc", http.StatusBadRequest, uuid.Nil},
		{"unknown id", "?user_id=" + uuid.NewString(), http.StatusNotFound, uuid.Nil},
		{"unknown email", "?email=nobody@example.com", http.StatusNotFound, uuid.Nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/api/find_user"+tc.query, "")
			require.Equal(t, tc.wantStatus, w.Code, w.Body.String())

			body := decodeBody(t, w)
			if tc.wantStatus == http.StatusOK {
				user := body["user"].(map[string]interface{})
				assert.Equal(t, tc.wantID.String(), user["user_id"])
				return
			}
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":[]}`, w.Body.String())

	env.seedUser(t, "ada@example.com")
	w = env.do(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	users := decodeBody(t, w)["users"].([]interface{})
	require.Len(t, users, 1)
	user := users[0].(map[string]interface{})
	assert.ElementsMatch(t, []string{"user_id", "first_name", "last_name", "email"}, keys(user))

	env.users.ListFn = func(ctx context.Context) ([]*domain.User, error) {
		return nil, errors.New("pq: relation \"users\" does not exist")
	}
	w = env.do(t, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An unexpected error occurred", decodeBody(t, w)["error"])
	assert.NotContains(t, w.Body.String(), "relation")

	entry := env.requireOneErrorLog(t)
	assert.Equal(t, domain.ErrorTypeStore, entry.ErrorType)
	assert.Equal(t, "/api/users", entry.Endpoint)
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
