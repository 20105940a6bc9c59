package aggregen

import (
	"errors"
	"fmt"
)

// Sentinel errors of the error taxonomy. Every structured error in the module
// matches exactly one of them through errors.Is.
var (
	// ErrStructural is matched by internal-consistency failures of a graph
	// (duplicate ids, dangling edges). They indicate a builder bug.
	ErrStructural = errors.New("aggregen: structural error")

	// ErrInvalidSchema is matched by user-input problems found while building
	// the aggregate graph from declarations.
	ErrInvalidSchema = errors.New("aggregen: invalid schema")

	// ErrUsage is matched when a caller narrows a node to a payload kind it
	// does not have.
	ErrUsage = errors.New("aggregen: usage error")

	// ErrInvalidConfig is matched by configuration option errors.
	ErrInvalidConfig = errors.New("aggregen: invalid configuration")

	// ErrEmit is matched by failures reported by downstream emitters.
	ErrEmit = errors.New("aggregen: emit failed")

	// ErrNotFound is returned when a requested aggregate or member does not exist.
	ErrNotFound = errors.New("aggregen: not found")
)

// NotFoundError represents an error when a named element is not found.
type NotFoundError struct {
	kind string
	name string
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("aggregen: %s %q not found", e.kind, e.name)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Kind returns the kind of the element that was looked up (e.g. "aggregate").
func (e *NotFoundError) Kind() string {
	return e.kind
}

// Name returns the name that was looked up.
func (e *NotFoundError) Name() string {
	return e.name
}

// NewNotFoundError returns a new NotFoundError for the given element kind and name.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{kind: kind, name: name}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// IsStructural reports whether err (or any error in its tree) is a structural error.
func IsStructural(err error) bool {
	return err != nil && errors.Is(err, ErrStructural)
}

// IsInvalidSchema reports whether err (or any error in its tree) is a
// schema validation error.
func IsInvalidSchema(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidSchema)
}

// IsUsage reports whether err (or any error in its tree) is a usage error.
func IsUsage(err error) bool {
	return err != nil && errors.Is(err, ErrUsage)
}
