package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
)

// getQueryUUID reads a required UUID from the query string.
func getQueryUUID(r *http.Request, name string) (uuid.UUID, error) {
	return parseUUIDField(name, r.URL.Query().Get(name))
}

// parseUUIDField parses a required UUID input field. Missing and malformed
// values are both validation errors.
func parseUUIDField(name, value string) (uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.Nil, domain.NewValidationError(name, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID", domain.ErrInvalidID)
	}
	return id, nil
}
