// Package field provides the member types of aggregen: the pluggable
// behavior attached to every scalar member of an aggregate.
//
// A MemberType is selected by the type tag of a declaration:
//
//	Price:    decimal      # field.TypeDecimal
//	Name:     word         # field.TypeWord
//	Status:   OrderStatus  # an Enum generated from a static-enum root
//
// Each type supplies
//
//   - a primitive and a domain type name for emitters,
//   - an optional search descriptor (filter shape and a hook turning a
//     filter value into a querylanguage predicate),
//   - a dummy-value policy that distinguishes key and non-key members, and
//   - declaration-time validation of the member's flags and attributes.
//
// # Registry
//
// Types are looked up by name in an immutable Registry. Default returns the
// built-in types; With derives a registry with additional types:
//
//	reg, err := field.Default().With(money{})
//
// # Custom types
//
// Any value implementing MemberType can be registered:
//
//	type money struct{}
//
//	func (money) Name() string                  { return "money" }
//	func (money) Primitive() field.Primitive    { return field.PrimitiveDecimal }
//	func (money) Domain() string                { return "Money" }
//	func (money) Search() *field.Search         { return nil }
//	func (money) Dummy(field.DummyRequest) any  { return 0.0 }
//	func (money) Validate(field.Usage) []error  { return nil }
package field
