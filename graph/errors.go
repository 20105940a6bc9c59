package graph

import (
	"fmt"
	"strings"

	"github.com/syssam/aggregen"
)

// StructuralKind classifies a StructuralError.
type StructuralKind string

// Structural error kinds reported by New.
const (
	EmptyID          StructuralKind = "empty vertex id"
	DuplicateVertex  StructuralKind = "duplicate vertex"
	DanglingInitial  StructuralKind = "dangling initial vertex"
	DanglingTerminal StructuralKind = "dangling terminal vertex"
	DuplicateEdge    StructuralKind = "duplicate edge"
	EmptyRelation    StructuralKind = "empty relation name"
)

// StructuralError reports an internally inconsistent graph. It is never
// caused by user input when the graph was produced by a correct builder.
type StructuralError struct {
	Kind StructuralKind
	// ID is the offending vertex id, or the missing endpoint for dangling edges.
	ID ID
	// Edge is set for edge-related violations.
	Edge    *Edge
	Message string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString("aggregen: structural error: ")
	b.WriteString(string(e.Kind))
	if !e.ID.IsZero() {
		fmt.Fprintf(&b, " %q", e.ID.String())
	}
	if e.Edge != nil {
		fmt.Fprintf(&b, " on edge %s", e.Edge)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for StructuralError.
func (e *StructuralError) Is(target error) bool {
	return target == aggregen.ErrStructural
}

// StructuralErrors is the complete list of violations found by New.
type StructuralErrors []*StructuralError

// Error implements the error interface.
func (errs StructuralErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap returns the individual errors.
func (errs StructuralErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err
	}
	return out
}

// UsageError is returned when a view is narrowed to a payload type it does
// not hold.
type UsageError struct {
	ID   ID
	Want string
	Got  string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("aggregen: usage error: vertex %q holds %s, not %s", e.ID.String(), e.Got, e.Want)
}

// Is reports whether the target matches the sentinel error for UsageError.
func (e *UsageError) Is(target error) bool {
	return target == aggregen.ErrUsage
}
