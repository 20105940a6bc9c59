package schema

import "fmt"

// ModelKind is the model kind of a root aggregate. Every aggregate of a
// tree inherits the kind of its root.
type ModelKind uint8

// Model kinds.
const (
	ModelInvalid ModelKind = iota
	DataModel
	QueryModel
	CommandModel
	StaticEnum
	ValueObject
)

var modelTags = [...]string{
	DataModel:    "data-model",
	QueryModel:   "query-model",
	CommandModel: "command-model",
	StaticEnum:   "static-enum",
	ValueObject:  "value-object",
}

var modelNames = [...]string{
	ModelInvalid: "Invalid",
	DataModel:    "DataModel",
	QueryModel:   "QueryModel",
	CommandModel: "CommandModel",
	StaticEnum:   "StaticEnum",
	ValueObject:  "ValueObject",
}

// ParseModelKind returns the model kind selected by a root type tag.
func ParseModelKind(tag string) (ModelKind, bool) {
	for k, t := range modelTags {
		if t != "" && t == tag {
			return ModelKind(k), true
		}
	}
	return ModelInvalid, false
}

// ModelKinds returns all valid model kinds.
func ModelKinds() []ModelKind {
	return []ModelKind{DataModel, QueryModel, CommandModel, StaticEnum, ValueObject}
}

// String returns the Go-style name of the kind, e.g. "DataModel".
func (k ModelKind) String() string {
	if int(k) < len(modelNames) {
		return modelNames[k]
	}
	return fmt.Sprintf("ModelKind(%d)", k)
}

// Tag returns the declaration type tag of the kind, e.g. "data-model".
func (k ModelKind) Tag() string {
	if k != ModelInvalid && int(k) < len(modelTags) {
		return modelTags[k]
	}
	return ""
}

// Valid reports whether k is one of the defined kinds.
func (k ModelKind) Valid() bool {
	return k > ModelInvalid && int(k) < len(modelTags)
}

// RefTarget reports whether aggregates of this kind may be referenced.
func (k ModelKind) RefTarget() bool {
	return k == DataModel || k == QueryModel
}

// AllowsRefs reports whether trees of this kind may declare Ref members.
func (k ModelKind) AllowsRefs() bool {
	return k != StaticEnum && k != ValueObject
}

// Persistent reports whether the kind is stored, which allows binary and
// sequence members.
func (k ModelKind) Persistent() bool {
	return k == DataModel
}

// IsType reports whether roots of this kind can be used as the type of a
// value member.
func (k ModelKind) IsType() bool {
	return k == StaticEnum || k == ValueObject
}

// MarshalText implements encoding.TextMarshaler.
func (k ModelKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("schema: invalid model kind %d", k)
	}
	return []byte(k.Tag()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ModelKind) UnmarshalText(text []byte) error {
	v, ok := ParseModelKind(string(text))
	if !ok {
		return fmt.Errorf("schema: unknown model kind %q", text)
	}
	*k = v
	return nil
}
