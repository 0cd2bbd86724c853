package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskwell-api/internal/domain"
)

// Global validator instance for reuse. Field errors report JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates v with struct tags. The first failing field is
// returned as a *domain.ValidationError.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return domain.NewValidationError(fe.Field(), tagMessage(fe.Tag()), nil)
		}
		return domain.NewValidationError("", "invalid request", nil)
	}
	return nil
}

// DecodeAndValidate decodes a JSON body and validates it. Malformed JSON is
// reported as a validation error on the body.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return domain.NewValidationError("request body", "must be a valid JSON object", nil)
	}
	return ValidateRequest(v)
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "has an invalid value"
	case "min":
		return "is too small"
	case "max":
		return "is too large"
	default:
		return "is invalid"
	}
}
