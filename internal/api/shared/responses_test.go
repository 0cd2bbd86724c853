package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskwell-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(w, r, http.StatusCreated, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), TraceIDKey, "trace-123"))

	RespondWithError(w, r, http.StatusNotFound, "User not found")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", body.Error)
	assert.Equal(t, "trace-123", body.TraceID)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	log, buf := logger.GetTestLogger(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	r = r.WithContext(logger.WithContext(r.Context(), log))

	cause := errors.New("dial postgres://admin:hunter2@db:5432/app: refused")
	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred", cause)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "dial")

	logger.AssertLogContains(t, buf, "API error response")
	assert.NotContains(t, buf.String(), "hunter2")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "ERROR", entries[len(entries)-1]["level"])
}
