package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/pledger/internal/http/response"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// ErrInvalid is returned when the body decodes but fails shape validation.
var ErrInvalid = errors.New("invalid request")

// InvalidError lists the fields that failed shape validation.
type InvalidError struct {
	Fields []response.FieldError
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("%d invalid fields", len(e.Fields))
}

func (e *InvalidError) Unwrap() error {
	return ErrInvalid
}

// Decode reads a JSON body into dst and validates its struct tags.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating body: %w", err)
		}

		fields := make([]response.FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = response.FieldError{Field: fieldPath(fe), Message: message(fe)}
		}

		return &InvalidError{Fields: fields}
	}

	return nil
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// WriteError maps a Decode failure onto a 400 response.
func WriteError(w http.ResponseWriter, err error) {
	var invalid *InvalidError
	if errors.As(err, &invalid) {
		response.Fields(w, http.StatusBadRequest, response.CodeValidationFailed, "validation failed", invalid.Fields)
		return
	}

	response.Error(w, http.StatusBadRequest, response.CodeInvalidRequestBody, "request body is not valid JSON")
}
