package field

import (
	"math/rand/v2"

	"github.com/syssam/aggregen/querylanguage"
	"github.com/syssam/aggregen/schema"
)

// MemberType is the behavior of one scalar type. Implementations must be
// stateless: a single value is shared by every member of that type and may
// be used from several goroutines.
type MemberType interface {
	// Name is the type tag selecting this type in a declaration.
	Name() string
	// Primitive is the storage-level representation.
	Primitive() Primitive
	// Domain is the domain type name emitters map the member to.
	Domain() string
	// Search describes how the member can be filtered. A nil Search means
	// the member is not searchable.
	Search() *Search
	// Dummy returns a sample value for the member.
	Dummy(DummyRequest) any
	// Validate checks how the type is used by a declaration.
	Validate(Usage) []error
}

// Usage describes a value member declared with a given type.
type Usage struct {
	Member   string
	Model    schema.ModelKind
	Key      bool
	Required bool
	Attrs    map[string]string
}

// DummyRequest asks for a dummy value of a member. Key members must get
// deterministic values that are unique per Index; other members draw from
// Rand.
type DummyRequest struct {
	Member string
	Key    bool
	Index  int
	Rand   *rand.Rand
	Attrs  map[string]string
}

// FilterShape is the shape of the filter value a search hook accepts.
type FilterShape uint8

// Filter shapes.
const (
	// ShapeText accepts a string matched as a substring.
	ShapeText FilterShape = iota + 1
	// ShapeRange accepts a Range.
	ShapeRange
	// ShapeFlag accepts a Flag.
	ShapeFlag
	// ShapeSelect accepts a []string of allowed values.
	ShapeSelect
	// ShapeExact accepts a string matched exactly.
	ShapeExact
)

var shapeNames = [...]string{
	ShapeText:   "text",
	ShapeRange:  "range",
	ShapeFlag:   "flag",
	ShapeSelect: "select",
	ShapeExact:  "exact",
}

// String returns the name of the shape.
func (s FilterShape) String() string {
	if s > 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "invalid"
}

// Search describes the search behavior of a member type.
type Search struct {
	Shape FilterShape
	// Predicate turns a filter value into an unbound predicate. A nil
	// Fielder means the filter imposes no condition.
	Predicate func(filter any) (querylanguage.Fielder, error)
}

// Range is the filter of ShapeRange searches. A nil bound is open.
type Range struct {
	From any
	To   any
}

// Flag is the filter of ShapeFlag searches. Selecting both or neither
// imposes no condition.
type Flag struct {
	True  bool
	False bool
}
