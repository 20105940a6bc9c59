package field

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

// Registry is an immutable set of member types keyed by name.
type Registry struct {
	types map[string]MemberType
}

// NewRegistry returns a registry holding the given types. Nil types, empty
// names and duplicate names are reported together.
func NewRegistry(types ...MemberType) (*Registry, error) {
	r := &Registry{types: make(map[string]MemberType, len(types))}
	if err := r.add(types); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(types ...MemberType) *Registry {
	r, err := NewRegistry(types...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNewRegistry(Builtins()...)
})

// Default returns the registry of built-in types.
func Default() *Registry {
	return defaultRegistry()
}

// With returns a new registry holding the types of r plus the given ones.
// r itself is not modified.
func (r *Registry) With(types ...MemberType) (*Registry, error) {
	c := &Registry{types: maps.Clone(r.types)}
	if err := c.add(types); err != nil {
		return nil, err
	}
	return c, nil
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (MemberType, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.types))
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

func (r *Registry) add(types []MemberType) error {
	var errs []error
	for _, t := range types {
		switch {
		case t == nil:
			errs = append(errs, &RegistryError{Message: "nil member type"})
		case t.Name() == "":
			errs = append(errs, &RegistryError{Message: "empty type name"})
		default:
			if _, dup := r.types[t.Name()]; dup {
				errs = append(errs, &RegistryError{Name: t.Name(), Message: "registered twice"})
				continue
			}
			r.types[t.Name()] = t
		}
	}
	return errors.Join(errs...)
}
