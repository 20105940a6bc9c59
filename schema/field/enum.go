package field

// EnumValue is one value of an enum type.
type EnumValue struct {
	Name string
	// Value is the optional integer code of the value.
	Value    int
	HasValue bool
}

// Enum returns the member type of a static-enum root. A zero-value enum is
// legal and denotes an opaque type.
func Enum(name string, values ...EnumValue) MemberType {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Name
	}
	s := &scalar{
		name:      name,
		primitive: PrimitiveEnum,
		domain:    name,
		dummy: func(req DummyRequest) any {
			if len(names) == 0 {
				return ""
			}
			if req.Key {
				return names[req.Index%len(names)]
			}
			return names[rng(req).IntN(len(names))]
		},
	}
	if len(names) > 0 {
		s.search = selectSearch(names)
	}
	return &enumType{scalar: s, values: values}
}

type enumType struct {
	*scalar
	values []EnumValue
}

// Values returns the values of an enum type, or nil if t is not an enum.
func Values(t MemberType) []EnumValue {
	if e, ok := t.(*enumType); ok {
		return append([]EnumValue(nil), e.values...)
	}
	return nil
}

// ValueObject returns the member type of a value-object root. Value
// objects are composite and can be neither keys nor searched.
func ValueObject(name string) MemberType {
	return &scalar{
		name:      name,
		primitive: PrimitiveStruct,
		domain:    name,
		dummy:     func(DummyRequest) any { return map[string]any{} },
		rules:     []func(Usage) error{notKey("a value object")},
	}
}
