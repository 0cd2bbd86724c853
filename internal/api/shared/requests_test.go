package shared

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	Rank      *int   `json:"rank"       validate:"required"`
	Note      string `json:"note"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"valid", `{"first_name":"Ada","rank":2}`, ""},
		{"zero rank is present", `{"first_name":"Ada","rank":0}`, ""},
		{"missing first_name", `{"rank":1}`, "first_name"},
		{"missing rank", `{"first_name":"Ada"}`, "rank"},
		{"malformed", `{"first_name":`, "request body"},
		{"empty body", ``, "request body"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			var req sampleRequest
			err := DecodeAndValidate(r, &req)

			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantField, vErr.Field)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestValidateRequest_Message(t *testing.T) {
	err := ValidateRequest(&sampleRequest{})
	require.Error(t, err)
	assert.Equal(t, "first_name is required", err.Error())
}
