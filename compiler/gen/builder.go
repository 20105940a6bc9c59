package gen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/syssam/aggregen/compiler/load"
	"github.com/syssam/aggregen/schema"
	"github.com/syssam/aggregen/schema/field"
)

// Type tags of non-root declarations that are not member type names.
const (
	TagChild         = "child"
	TagChildren      = "children"
	TagVariation     = "variation"
	TagVariationItem = "variation-item"
	TagRefPrefix     = "ref-to:"
)

// entry is a declaration placed in its tree. Entries are only used while
// building; the graph holds Aggregates and Members.
type entry struct {
	decl     *load.Declaration
	segments []string
	depth    int
	parent   *entry
	children []*entry
	root     *entry

	// Set by classify.
	model schema.ModelKind // roots only
	kind  MemberKind       // MemberInvalid for roots
	// typ is the member type of value members. typeRoot is set when the
	// type is a static-enum or value-object root.
	typ      field.MemberType
	typeRoot *entry
	refPath  string
	// bad entries failed classification; their subtrees are not checked
	// any further.
	bad bool

	// Set by resolve.
	target *entry
}

// path returns the full path of the entry.
func (e *entry) path() string { return strings.Join(e.segments, "/") }

// isRoot reports whether the entry starts a tree.
func (e *entry) isRoot() bool { return e.parent == nil }

// isAggregate reports whether the entry becomes an Aggregate.
func (e *entry) isAggregate() bool {
	return e.isRoot() || e.kind.Ownership()
}

// errorf returns a diagnostic naming the entry.
func (e *entry) errorf(rule Rule, format string, args ...any) *SchemaValidationError {
	return &SchemaValidationError{
		Path:    e.path(),
		Name:    e.decl.Name,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Pos:     e.decl.Pos,
	}
}

// walk calls f for e and its descendants in pre-order. Descendants of
// entries for which f returns false are skipped.
func (e *entry) walk(f func(*entry) bool) {
	if !f(e) {
		return
	}
	for _, c := range e.children {
		c.walk(f)
	}
}

// declError returns a diagnostic for a declaration that could not be
// placed in a tree.
func declError(d *load.Declaration, rule Rule, format string, args ...any) *SchemaValidationError {
	return &SchemaValidationError{
		Name:    d.Name,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Pos:     d.Pos,
	}
}

// checkName reports why a name cannot be used, or returns nil.
func checkName(name string) error {
	switch {
	case name == "":
		return errors.New("name is empty")
	case strings.Contains(name, "/"):
		return fmt.Errorf("name %q must not contain '/'", name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("name %q must not start with '.'", name)
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return fmt.Errorf("name %q is not a valid identifier", name)
	}
	return nil
}

// partition places every declaration in a tree. A declaration starts a
// tree when its depth is 0 and it has no explicit parent. Otherwise its
// parent is the entry whose path equals Parent, or the nearest preceding
// entry at depth-1. Declarations that cannot be placed are reported once;
// their nested declarations are dropped silently.
func partition(decls []*load.Declaration) ([]*entry, []*SchemaValidationError) {
	var (
		roots  []*entry
		errs   []*SchemaValidationError
		stack  []*entry
		byPath = make(map[string]*entry)
		// skip is the depth below which dropped subtrees extend, or -1.
		skip = -1
	)
	drop := func(depth int) {
		skip = depth
		if depth >= 0 && depth < len(stack) {
			stack = stack[:depth]
		}
	}
	for i, d := range decls {
		if d == nil {
			errs = append(errs, &SchemaValidationError{
				Name:    fmt.Sprintf("#%d", i),
				Rule:    RuleInvalidName,
				Message: "declaration is nil",
			})
			continue
		}
		if skip >= 0 && d.Parent == "" && d.Depth > skip {
			continue
		}
		skip = -1
		if err := checkName(d.Name); err != nil {
			errs = append(errs, declError(d, RuleInvalidName, "%v", err))
			drop(d.Depth)
			continue
		}
		e := &entry{decl: d}
		switch {
		case d.Parent != "":
			p, ok := byPath[d.Parent]
			if !ok {
				errs = append(errs, declError(d, RuleUnknownParent, "parent %q of %q is not declared before it", d.Parent, d.Name))
				drop(-1)
				continue
			}
			e.parent = p
			e.depth = p.depth + 1
		case d.Depth == 0:
		case d.Depth < 0:
			errs = append(errs, declError(d, RuleDepth, "negative depth %d", d.Depth))
			continue
		case d.Depth > len(stack):
			errs = append(errs, declError(d, RuleDepth, "depth %d skips a level: no enclosing declaration at depth %d", d.Depth, d.Depth-1))
			drop(d.Depth)
			continue
		default:
			e.parent = stack[d.Depth-1]
			e.depth = d.Depth
		}
		if e.parent == nil {
			e.root = e
			e.segments = []string{d.Name}
		} else {
			e.root = e.parent.root
			e.segments = append(append(make([]string, 0, len(e.parent.segments)+1), e.parent.segments...), d.Name)
		}
		if prev, ok := byPath[e.path()]; ok {
			err := e.errorf(RuleDuplicateName, "duplicate name %q", d.Name)
			if prev.decl.Pos.IsValid() {
				err.Message += ", first declared at " + prev.decl.Pos.String()
			}
			errs = append(errs, err)
			drop(e.depth)
			continue
		}
		byPath[e.path()] = e
		if e.parent == nil {
			roots = append(roots, e)
		} else {
			e.parent.children = append(e.parent.children, e)
		}
		// Rebuild the stack as the ancestor chain of e, so that an entry
		// with an explicit parent is followed by its own nested entries.
		stack = stack[:0]
		for a := e; a != nil; a = a.parent {
			stack = append(stack, a)
		}
		slices.Reverse(stack)
	}
	return roots, errs
}
