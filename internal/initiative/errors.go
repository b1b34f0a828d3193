package initiative

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("initiative not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidError lists the problems found with initiative input, keyed by field.
type InvalidError struct {
	Problems map[string]string
}

func (e *InvalidError) Error() string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + e.Problems[field]
	}

	return "invalid initiative: " + strings.Join(parts, "; ")
}
