package edge

import (
	"fmt"
	"strconv"
)

// Kind is the relation kind of an edge.
type Kind string

// Relation kinds.
const (
	Child     Kind = "child"
	Children  Kind = "children"
	Variation Kind = "variation"
	Ref       Kind = "ref"
	TypeOf    Kind = "type-of"
)

// Attribute names used on edges.
const (
	AttrKind  = "kind"
	AttrGroup = "group"
	AttrKey   = "key"
)

// Ownership reports whether the kind nests the terminal aggregate under the
// initial one.
func (k Kind) Ownership() bool {
	switch k {
	case Child, Children, Variation:
		return true
	default:
		return false
	}
}

// Repeated reports whether the owner holds many instances of the target.
func (k Kind) Repeated() bool { return k == Children }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case Child, Children, Variation, Ref, TypeOf:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// KindOf returns the kind recorded in an edge attribute bag.
func KindOf(attrs map[string]string) Kind {
	return Kind(attrs[AttrKind])
}

// Attrs returns the attribute bag of an edge of the given kind.
func Attrs(k Kind) map[string]string {
	return map[string]string{AttrKind: string(k)}
}

// VariationAttrs returns the attribute bag of a variation edge: the group
// member that discriminates the union and the item key.
func VariationAttrs(group string, key int) map[string]string {
	return map[string]string{
		AttrKind:  string(Variation),
		AttrGroup: group,
		AttrKey:   strconv.Itoa(key),
	}
}

// VariationKey returns the discriminator key of a variation edge.
func VariationKey(attrs map[string]string) (int, error) {
	if KindOf(attrs) != Variation {
		return 0, fmt.Errorf("edge: %q is not a variation edge", attrs[AttrKind])
	}
	return strconv.Atoi(attrs[AttrKey])
}
