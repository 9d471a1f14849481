package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes a single schema violation, addressed to the field
// that caused it so the UI can attach it to the right input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field-level problem found in an input.
// It is always recoverable by the caller.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError signals that an operation targeted an id (or slug) that does
// not exist. Never retried.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// MalformedReferenceError means a stored image column could not be decoded.
// Read paths treat it as "no image" so one corrupt record cannot take a
// whole listing page down.
type MalformedReferenceError struct {
	Raw   string
	Cause error
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed image reference %q: %v", e.Raw, e.Cause)
}

func (e *MalformedReferenceError) Unwrap() error { return e.Cause }

// RepositoryError wraps an opaque persistence failure (connectivity,
// constraint violations the schema validation cannot catch).
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
