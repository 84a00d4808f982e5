// Package apperrors defines the error taxonomy shared by the store,
// services and handler layers.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies the category of error.
type Type string

const (
	// TypeValidation indicates a write with missing or empty required fields.
	TypeValidation Type = "validation"

	// TypeNotFound indicates a lookup by natural key with no match.
	TypeNotFound Type = "not_found"

	// TypeInternal indicates unexpected malformed state encountered
	// during a read. Never exposes stored record contents to the caller.
	TypeInternal Type = "internal"
)

// Error carries the error category plus the context each category needs:
// the missing field names for validation failures, the requested key for
// not-found lookups.
type Error struct {
	Type    Type
	Message string
	Fields  []string
	Key     string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Validation builds a validation error naming every missing required field.
func Validation(missing ...string) *Error {
	return &Error{
		Type:    TypeValidation,
		Message: fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
		Fields:  missing,
	}
}

// NotFound builds a not-found error echoing the requested key.
func NotFound(kind, key string) *Error {
	return &Error{
		Type:    TypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", kind, key),
		Key:     key,
	}
}

// Internal wraps an unexpected failure. The message is safe to surface;
// the cause is for server-side logs only.
func Internal(message string, cause error) *Error {
	return &Error{
		Type:    TypeInternal,
		Message: message,
		Cause:   cause,
	}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, t Type) bool {
	e, ok := As(err)
	return ok && e.Type == t
}
