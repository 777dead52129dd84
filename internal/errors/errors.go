package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	NotFound         = errors.New("not found")
	OperationFailed  = errors.New("operation failed")
	ValidationFailed = errors.New("validation failed")
	Unauthorized     = errors.New("unauthorized")
)

// ValidationError carries per-field messages and matches ValidationFailed with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return ValidationError{Fields: fields}
}

func (e ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s: %s", ValidationFailed, strings.Join(parts, "; "))
}

func (e ValidationError) Unwrap() error {
	return ValidationFailed
}
