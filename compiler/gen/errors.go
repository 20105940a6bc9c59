package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/aggregen"
	"github.com/syssam/aggregen/compiler/load"
)

// Rule names the schema rule a SchemaValidationError violates.
type Rule string

// Schema rules.
const (
	RuleInvalidName   Rule = "invalid-name"
	RuleDepth         Rule = "depth"
	RuleUnknownParent Rule = "unknown-parent"
	RuleDuplicateName Rule = "duplicate-name"
	RuleRootType      Rule = "root-type"
	RuleUnknownType   Rule = "unknown-type"
	RuleShadowedType  Rule = "shadowed-type"
	RuleUnresolvedRef Rule = "unresolved-reference"
	RuleAmbiguousRef  Rule = "ambiguous-reference"
	RuleFlag          Rule = "flag"
	RuleAttribute     Rule = "attribute"
	RuleModelKind     Rule = "model-kind"
	RuleMissingKey    Rule = "missing-key"
	RuleVariation     Rule = "variation"
	RuleNesting       Rule = "nesting"
	RuleEnumValue     Rule = "enum-value"
	RuleMemberType    Rule = "member-type"
)

// SchemaValidationError reports one violated rule. It always names the
// offending declaration.
type SchemaValidationError struct {
	// Path is the full path of the declaration, e.g. "Product/Category".
	Path string
	// Name is the local name of the declaration.
	Name    string
	Rule    Rule
	Message string
	Pos     load.Position
	Cause   error
}

// Error implements the error interface.
func (e *SchemaValidationError) Error() string {
	var b strings.Builder
	b.WriteString("aggregen: invalid schema")
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	} else if e.Name != "" {
		b.WriteString(": ")
		b.WriteString(e.Name)
	}
	if e.Pos.IsValid() {
		fmt.Fprintf(&b, " (%s)", e.Pos)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaValidationError.
func (e *SchemaValidationError) Is(target error) bool {
	return target == aggregen.ErrInvalidSchema
}

// Diagnostics is the complete list of violations found by NewGraph.
type Diagnostics []*SchemaValidationError

// Error implements the error interface.
func (d Diagnostics) Error() string {
	if len(d) == 1 {
		return d[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "aggregen: %d schema errors:", len(d))
	for _, e := range d {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap returns the individual errors.
func (d Diagnostics) Unwrap() []error {
	errs := make([]error, len(d))
	for i, e := range d {
		errs[i] = e
	}
	return errs
}

// ByRule returns the diagnostics violating the given rule.
func (d Diagnostics) ByRule(r Rule) Diagnostics {
	var out Diagnostics
	for _, e := range d {
		if e.Rule == r {
			out = append(out, e)
		}
	}
	return out
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("aggregen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("aggregen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == aggregen.ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// EmitError reports a failure of a downstream emitter.
type EmitError struct {
	Emitter string
	// Aggregate is set when the failure is specific to one aggregate.
	Aggregate string
	Cause     error
}

// Error implements the error interface.
func (e *EmitError) Error() string {
	var b strings.Builder
	b.WriteString("aggregen: emitter ")
	b.WriteString(e.Emitter)
	if e.Aggregate != "" {
		b.WriteString(" on aggregate ")
		b.WriteString(e.Aggregate)
	}
	b.WriteString(" failed")
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *EmitError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for EmitError.
func (e *EmitError) Is(target error) bool {
	return target == aggregen.ErrEmit
}

// IsSchemaValidationError reports whether the error is, or wraps, a
// SchemaValidationError.
func IsSchemaValidationError(err error) bool {
	var schemaErr *SchemaValidationError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsEmitError reports whether the error is an EmitError.
func IsEmitError(err error) bool {
	var emitErr *EmitError
	return errors.As(err, &emitErr)
}
