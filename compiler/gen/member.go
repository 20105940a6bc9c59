package gen

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/syssam/aggregen/compiler/load"
	"github.com/syssam/aggregen/querylanguage"
	"github.com/syssam/aggregen/schema/edge"
	"github.com/syssam/aggregen/schema/field"
)

// MemberKind is the kind of a member.
type MemberKind uint8

// Member kinds.
const (
	MemberInvalid MemberKind = iota
	// MemberValue is a scalar member with a resolved field.MemberType.
	MemberValue
	// MemberParent points from a nested aggregate back to its owner. It is
	// never declared and never listed in Aggregate.Members.
	MemberParent
	// MemberChild owns a single nested aggregate.
	MemberChild
	// MemberChildren owns a repeated nested aggregate.
	MemberChildren
	// MemberRef references an aggregate without owning it.
	MemberRef
	// MemberVariation is the discriminator of a tagged union. Its arms are
	// listed in Member.Items.
	MemberVariation
	// MemberVariationItem is one arm of a variation.
	MemberVariationItem
	// MemberEnumValue is one value of a static-enum aggregate.
	MemberEnumValue
)

var memberKindNames = [...]string{
	MemberInvalid:       "MemberInvalid",
	MemberValue:         "MemberValue",
	MemberParent:        "MemberParent",
	MemberChild:         "MemberChild",
	MemberChildren:      "MemberChildren",
	MemberRef:           "MemberRef",
	MemberVariation:     "MemberVariation",
	MemberVariationItem: "MemberVariationItem",
	MemberEnumValue:     "MemberEnumValue",
}

// String returns the name of the kind.
func (k MemberKind) String() string {
	if int(k) < len(memberKindNames) {
		return memberKindNames[k]
	}
	return fmt.Sprintf("MemberKind(%d)", k)
}

// Ownership reports whether members of this kind nest an aggregate under
// their owner.
func (k MemberKind) Ownership() bool {
	return k == MemberChild || k == MemberChildren || k == MemberVariationItem
}

// edgeKind returns the relation kind of the edge produced by the kind.
func (k MemberKind) edgeKind() edge.Kind {
	switch k {
	case MemberChild:
		return edge.Child
	case MemberChildren:
		return edge.Children
	case MemberVariationItem:
		return edge.Variation
	case MemberRef:
		return edge.Ref
	case MemberValue:
		return edge.TypeOf
	default:
		return ""
	}
}

// Member is one element of an aggregate.
type Member struct {
	decl *load.Declaration
	// Name is the local name of the member.
	Name string
	Kind MemberKind
	// Owner is the declaring aggregate. For variation items it is the
	// aggregate holding the variation.
	Owner *Aggregate
	// Key, Required and DisplayName are the flags of value members.
	Key         bool
	Required    bool
	DisplayName bool
	// Attrs holds the declared attributes.
	Attrs map[string]string
	// Type is the resolved member type of value members.
	Type field.MemberType
	// Target is the aggregate the member leads to: the nested aggregate of
	// child, children and variation items, the referenced aggregate of refs,
	// the owner of parent members and the type aggregate of enum- or
	// value-object-typed value members.
	Target *Aggregate
	// Items are the arms of a variation.
	Items []*Member
	// Group is the variation an item belongs to.
	Group *Member
	// VariationKey is the discriminator value of a variation item.
	VariationKey int
	// EnumValue is the optional integer code of an enum value.
	EnumValue    int
	HasEnumValue bool
}

// Path returns the full path of the member, e.g. "Product/Category".
func (m *Member) Path() string {
	if m.Kind == MemberVariationItem && m.Group != nil {
		return m.Group.Path() + "/" + m.Name
	}
	if m.Owner == nil {
		return m.Name
	}
	return m.Owner.Path() + "/" + m.Name
}

// Position returns the source position of the declaration.
func (m *Member) Position() load.Position {
	if m.decl == nil {
		return load.Position{}
	}
	return m.decl.Pos
}

// Declaration returns the declaration the member was built from. It is nil
// for parent members.
func (m *Member) Declaration() *load.Declaration { return m.decl }

// IsValue reports whether the member is a scalar value member.
func (m *Member) IsValue() bool { return m.Kind == MemberValue }

// IsRef reports whether the member is a reference.
func (m *Member) IsRef() bool { return m.Kind == MemberRef }

// IsEnum reports whether the member is typed by a static enum.
func (m *Member) IsEnum() bool {
	return m.Kind == MemberValue && m.Target != nil && m.Type.Primitive() == field.PrimitiveEnum
}

// Relation returns the relation name of the graph edge produced by the
// member, or "" for members that produce none.
func (m *Member) Relation() string {
	switch {
	case m.Kind == MemberValue && m.Target == nil:
		return ""
	case m.Kind.edgeKind() == "":
		return ""
	default:
		return m.Name
	}
}

// RefPath returns the relation-name history from the root of the owner to
// the member. Two members reaching the same aggregate along different
// routes have different histories.
func (m *Member) RefPath() []string {
	var rels []string
	for a := m.Owner; a != nil && a.Owner != nil; a = a.Owner.Owner {
		rels = append(rels, a.Owner.Name)
	}
	slices.Reverse(rels)
	return append(rels, m.Name)
}

// Label returns the snake_case name of the member.
func (m *Member) Label() string { return snake(m.Name) }

// JSONName returns the camelCase name used for the member in serialized
// aggregates.
func (m *Member) JSONName() string { return camel(snake(m.Name)) }

// Title returns a human readable name of the member.
func (m *Member) Title() string { return title(m.Name) }

// PluralName returns the plural PascalCase name of the member.
func (m *Member) PluralName() string { return plural(pascal(snake(m.Name))) }

// Searchable reports whether the member type supports searching.
func (m *Member) Searchable() bool {
	return m.Kind == MemberValue && m.Type != nil && m.Type.Search() != nil
}

// Search turns a filter value into a predicate on the member. A nil
// predicate means the filter imposes no condition.
func (m *Member) Search(filter any) (querylanguage.P, error) {
	if !m.Searchable() {
		return nil, fmt.Errorf("gen: member %q is not searchable", m.Path())
	}
	fielder, err := m.Type.Search().Predicate(filter)
	if err != nil {
		return nil, fmt.Errorf("gen: search %q: %w", m.Path(), err)
	}
	if fielder == nil {
		return nil, nil
	}
	return fielder.Field(m.Name), nil
}

// Dummy returns a dummy value for the index-th instance of the owner. Key
// members get values unique per index; other members draw from r.
func (m *Member) Dummy(index int, r *rand.Rand) any {
	if m.Kind != MemberValue || m.Type == nil {
		return nil
	}
	return m.Type.Dummy(field.DummyRequest{
		Member: m.Name,
		Key:    m.Key,
		Index:  index,
		Rand:   r,
		Attrs:  m.Attrs,
	})
}

// String returns the path and kind of the member.
func (m *Member) String() string {
	var b strings.Builder
	b.WriteString(m.Path())
	b.WriteString(" (")
	b.WriteString(m.Kind.String())
	switch {
	case m.Type != nil:
		b.WriteString(" ")
		b.WriteString(m.Type.Name())
	case m.Target != nil:
		b.WriteString(" -> ")
		b.WriteString(m.Target.Path())
	}
	b.WriteString(")")
	return b.String()
}
