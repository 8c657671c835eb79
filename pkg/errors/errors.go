package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnauthorized            = errors.New("unauthorized access")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrInvalidToken            = errors.New("invalid or expired token")

	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable wraps every store failure on the query and
	// insert paths so callers can distinguish infrastructure faults from
	// business errors.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationErrors collects per-field validation messages. It never leaves
// the handler layer as anything other than a field-keyed payload; the zero
// value is usable.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

func (v ValidationErrors) Merge(other ValidationErrors) {
	for field, message := range other {
		v.Add(field, message)
	}
}

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}
