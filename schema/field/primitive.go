package field

// A Primitive is the storage-level representation of a member type.
type Primitive uint8

// List of primitives.
const (
	PrimitiveInvalid Primitive = iota
	PrimitiveString
	PrimitiveText
	PrimitiveInt
	PrimitiveDecimal
	PrimitiveDate
	PrimitiveTime
	PrimitiveBool
	PrimitiveBytes
	PrimitiveUUID
	PrimitiveEnum
	PrimitiveStruct
	endPrimitives
)

var primitiveNames = [...]string{
	PrimitiveInvalid: "invalid",
	PrimitiveString:  "string",
	PrimitiveText:    "text",
	PrimitiveInt:     "int",
	PrimitiveDecimal: "decimal",
	PrimitiveDate:    "date",
	PrimitiveTime:    "time",
	PrimitiveBool:    "bool",
	PrimitiveBytes:   "bytes",
	PrimitiveUUID:    "uuid",
	PrimitiveEnum:    "enum",
	PrimitiveStruct:  "struct",
}

// String returns the string representation of a primitive.
func (p Primitive) String() string {
	if p < endPrimitives {
		return primitiveNames[p]
	}
	return primitiveNames[PrimitiveInvalid]
}

// Numeric reports if the primitive is a numeric type.
func (p Primitive) Numeric() bool {
	return p == PrimitiveInt || p == PrimitiveDecimal
}

// Temporal reports if the primitive holds a point in time.
func (p Primitive) Temporal() bool {
	return p == PrimitiveDate || p == PrimitiveTime
}

// Valid reports if the given primitive is known.
func (p Primitive) Valid() bool {
	return p > PrimitiveInvalid && p < endPrimitives
}

// Comparable reports if values of the primitive can be used as keys.
func (p Primitive) Comparable() bool {
	switch p {
	case PrimitiveText, PrimitiveBool, PrimitiveBytes, PrimitiveStruct, PrimitiveInvalid:
		return false
	default:
		return p.Valid()
	}
}
