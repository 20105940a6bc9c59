package gen

import (
	"math/rand/v2"
	"strings"

	"github.com/syssam/aggregen/compiler/load"
	"github.com/syssam/aggregen/graph"
	"github.com/syssam/aggregen/schema"
)

// Aggregate is one business entity or type of the schema: a root
// declaration or an aggregate nested under one.
type Aggregate struct {
	cfg  *Config
	decl *load.Declaration
	// Name is the local name of the aggregate.
	Name string
	// ID is the graph identifier, built from the path segments.
	ID graph.ID
	// Model is the model kind of the tree the aggregate belongs to.
	Model schema.ModelKind
	// Members holds the declared members in declaration order. Variation
	// items are listed under their variation member.
	Members []*Member
	members map[string]*Member
	// Owner is the member nesting this aggregate, nil for roots.
	Owner *Member
	root  *Aggregate
}

// Path returns the full path of the aggregate, e.g. "Order/Lines".
func (a *Aggregate) Path() string {
	return strings.Join(a.ID.Segments(), "/")
}

// Position returns the source position of the declaration.
func (a *Aggregate) Position() load.Position { return a.decl.Pos }

// Declaration returns the declaration the aggregate was built from.
func (a *Aggregate) Declaration() *load.Declaration { return a.decl }

// IsRoot reports whether the aggregate starts a tree.
func (a *Aggregate) IsRoot() bool { return a.Owner == nil }

// Root returns the root of the tree the aggregate belongs to.
func (a *Aggregate) Root() *Aggregate { return a.root }

// Parent returns the owning aggregate, or nil for roots.
func (a *Aggregate) Parent() *Aggregate {
	if a.Owner == nil {
		return nil
	}
	return a.Owner.Owner
}

// ParentMember returns the implicit member leading back to the owner, or
// nil for roots.
func (a *Aggregate) ParentMember() *Member {
	if a.Owner == nil {
		return nil
	}
	return &Member{
		Name:   "Parent",
		Kind:   MemberParent,
		Owner:  a,
		Target: a.Parent(),
	}
}

// Member returns the member with the given name.
func (a *Aggregate) Member(name string) (*Member, bool) {
	m, ok := a.members[name]
	return m, ok
}

// Keys returns the key members.
func (a *Aggregate) Keys() []*Member {
	return a.filter(func(m *Member) bool { return m.Key })
}

// DisplayNames returns the members flagged as display names.
func (a *Aggregate) DisplayNames() []*Member {
	return a.filter(func(m *Member) bool { return m.DisplayName })
}

// Values returns the scalar value members.
func (a *Aggregate) Values() []*Member {
	return a.filter((*Member).IsValue)
}

// Refs returns the reference members.
func (a *Aggregate) Refs() []*Member {
	return a.filter((*Member).IsRef)
}

// Nested returns the members owning a nested aggregate, variation items
// included.
func (a *Aggregate) Nested() []*Member {
	var nested []*Member
	for _, m := range a.Members {
		switch m.Kind {
		case MemberChild, MemberChildren:
			nested = append(nested, m)
		case MemberVariation:
			nested = append(nested, m.Items...)
		}
	}
	return nested
}

func (a *Aggregate) filter(f func(*Member) bool) []*Member {
	var ms []*Member
	for _, m := range a.Members {
		if f(m) {
			ms = append(ms, m)
		}
	}
	return ms
}

// Label returns the snake_case name of the aggregate.
func (a *Aggregate) Label() string { return snake(a.Name) }

// Title returns a human readable name of the aggregate.
func (a *Aggregate) Title() string { return title(a.Name) }

// PluralName returns the plural PascalCase name of the aggregate.
//
//	Category  => Categories
//	OrderLine => OrderLines
func (a *Aggregate) PluralName() string { return plural(pascal(snake(a.Name))) }

// DummyValues returns one dummy value per value member for the index-th
// instance of the aggregate. A nil r draws from a source seeded with the
// configured seed and the index.
func (a *Aggregate) DummyValues(index int, r *rand.Rand) map[string]any {
	if r == nil {
		var seed uint64 = 1
		if a.cfg != nil {
			seed = a.cfg.Seed
		}
		r = rand.New(rand.NewPCG(seed, uint64(index)))
	}
	values := make(map[string]any)
	for _, m := range a.Members {
		if m.Kind == MemberValue {
			values[m.Name] = m.Dummy(index, r)
		}
	}
	return values
}

// String returns the path of the aggregate.
func (a *Aggregate) String() string { return a.Path() }
