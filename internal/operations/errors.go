package operations

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-analytics/internal/schema"
)

var (
	ErrMissingRowKey        = errors.New("missing row key")
	ErrUnknownColumn        = schema.ErrUnknownColumn
	ErrEmptyInsert          = errors.New("no attributes to insert")
	ErrEmptyProjection      = errors.New("empty projection")
	ErrDuplicateColumn      = errors.New("duplicate column")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrInvalidNumber        = errors.New("number must be finite")
	ErrColumnFamilyMismatch = errors.New("column does not belong to family")
)

// Error wraps a sentinel error with additional context
type Error struct {
	err     error  // The underlying sentinel error
	context string // Additional error context
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.context == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Error(), e.context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.err
}

// newError creates a new operations error with context
func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		err:     err,
		context: fmt.Sprintf(format, args...),
	}
}

// IsInvalidArgument reports whether err was caused by bad caller input rather than by the
// engine itself.
func IsInvalidArgument(err error) bool {
	for _, target := range []error{
		ErrMissingRowKey,
		ErrUnknownColumn,
		ErrEmptyInsert,
		ErrEmptyProjection,
		ErrDuplicateColumn,
		ErrTypeMismatch,
		ErrInvalidNumber,
		ErrColumnFamilyMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
