package pledge

import (
	"errors"
	"strings"
)

var (
	ErrInvalidAmount          = errors.New("amount below minimum")
	ErrInvalidSubmission      = errors.New("invalid submission")
	ErrInitiativeNotAvailable = errors.New("initiative not available for pledges")
	ErrDuplicateSubmission    = errors.New("already pledged to this initiative")
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned before any write when a submission is
// malformed. Kind is ErrInvalidAmount when any amount is below the minimum and
// ErrInvalidSubmission otherwise.
type ValidationError struct {
	Kind   error
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}

	return e.Kind.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
