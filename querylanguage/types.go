package querylanguage

import "time"

// Fielder is a predicate whose field name is bound later, so that the same
// condition can be applied to any member of a matching type.
type Fielder interface {
	Field(name string) P
}

// TypedP is a Fielder over values of type V. Binding is pure: every call
// to Field returns a fresh predicate.
type TypedP[V any] struct {
	bind func(name string) P
}

// Field binds the predicate to the named field.
func (t TypedP[V]) Field(name string) P {
	return t.bind(name)
}

// Typed predicates for the member primitives.
type (
	StringP  = TypedP[string]
	IntP     = TypedP[int]
	Int64P   = TypedP[int64]
	Float64P = TypedP[float64]
	BoolP    = TypedP[bool]
	TimeP    = TypedP[time.Time]
)

var _ Fielder = StringP{}

func typedOp[V any](op Op, v any) TypedP[V] {
	return TypedP[V]{bind: func(name string) P {
		return &BinaryExpr{Op: op, X: F(name), Y: &Value{V: v}}
	}}
}

func typedCall[V any](fn Func, v any) TypedP[V] {
	return TypedP[V]{bind: func(name string) P {
		return &CallExpr{Func: fn, Args: []Expr{F(name), &Value{V: v}}}
	}}
}

func typedNil[V any]() TypedP[V] {
	return TypedP[V]{bind: FieldNil}
}

func typedNotNil[V any]() TypedP[V] {
	return TypedP[V]{bind: FieldNotNil}
}

func typedAnd[V any](x, y TypedP[V], z []TypedP[V]) TypedP[V] {
	return TypedP[V]{bind: func(name string) P {
		return And(x.Field(name), y.Field(name), bindAll(name, z)...)
	}}
}

func typedOr[V any](x, y TypedP[V], z []TypedP[V]) TypedP[V] {
	return TypedP[V]{bind: func(name string) P {
		return Or(x.Field(name), y.Field(name), bindAll(name, z)...)
	}}
}

func typedNot[V any](x TypedP[V]) TypedP[V] {
	return TypedP[V]{bind: func(name string) P {
		return Not(x.Field(name))
	}}
}

func bindAll[V any](name string, ps []TypedP[V]) []P {
	out := make([]P, len(ps))
	for i := range ps {
		out[i] = ps[i].Field(name)
	}
	return out
}

// StringNil applies the Nil operation on a string field.
func StringNil() StringP { return typedNil[string]() }

// StringNotNil applies the NotNil operation on a string field.
func StringNotNil() StringP { return typedNotNil[string]() }

// StringEQ applies the EQ operation on the given value.
func StringEQ(v string) StringP { return typedOp[string](OpEQ, v) }

// StringNEQ applies the NEQ operation on the given value.
func StringNEQ(v string) StringP { return typedOp[string](OpNEQ, v) }

// StringLT applies the LT operation on the given value.
func StringLT(v string) StringP { return typedOp[string](OpLT, v) }

// StringLTE applies the LTE operation on the given value.
func StringLTE(v string) StringP { return typedOp[string](OpLTE, v) }

// StringGT applies the GT operation on the given value.
func StringGT(v string) StringP { return typedOp[string](OpGT, v) }

// StringGTE applies the GTE operation on the given value.
func StringGTE(v string) StringP { return typedOp[string](OpGTE, v) }

// StringIn applies the In operation on the given values.
func StringIn(vs ...string) StringP { return typedOp[string](OpIn, vs) }

// StringContains applies the contains function on the given value.
func StringContains(v string) StringP { return typedCall[string](FuncContains, v) }

// StringContainsFold applies the contains_fold function on the given value.
func StringContainsFold(v string) StringP { return typedCall[string](FuncContainsFold, v) }

// StringEqualFold applies the equal_fold function on the given value.
func StringEqualFold(v string) StringP { return typedCall[string](FuncEqualFold, v) }

// StringHasPrefix applies the has_prefix function on the given value.
func StringHasPrefix(v string) StringP { return typedCall[string](FuncHasPrefix, v) }

// StringHasSuffix applies the has_suffix function on the given value.
func StringHasSuffix(v string) StringP { return typedCall[string](FuncHasSuffix, v) }

// StringAnd groups list of predicates with the AND operator between them.
func StringAnd(x, y StringP, z ...StringP) StringP { return typedAnd(x, y, z) }

// StringOr groups list of predicates with the OR operator between them.
func StringOr(x, y StringP, z ...StringP) StringP { return typedOr(x, y, z) }

// StringNot applies the not operator on the given predicate.
func StringNot(x StringP) StringP { return typedNot(x) }

// IntNil applies the Nil operation on an int field.
func IntNil() IntP { return typedNil[int]() }

// IntNotNil applies the NotNil operation on an int field.
func IntNotNil() IntP { return typedNotNil[int]() }

// IntEQ applies the EQ operation on the given value.
func IntEQ(v int) IntP { return typedOp[int](OpEQ, v) }

// IntNEQ applies the NEQ operation on the given value.
func IntNEQ(v int) IntP { return typedOp[int](OpNEQ, v) }

// IntLT applies the LT operation on the given value.
func IntLT(v int) IntP { return typedOp[int](OpLT, v) }

// IntLTE applies the LTE operation on the given value.
func IntLTE(v int) IntP { return typedOp[int](OpLTE, v) }

// IntGT applies the GT operation on the given value.
func IntGT(v int) IntP { return typedOp[int](OpGT, v) }

// IntGTE applies the GTE operation on the given value.
func IntGTE(v int) IntP { return typedOp[int](OpGTE, v) }

// IntIn applies the In operation on the given values.
func IntIn(vs ...int) IntP { return typedOp[int](OpIn, vs) }

// IntAnd groups list of predicates with the AND operator between them.
func IntAnd(x, y IntP, z ...IntP) IntP { return typedAnd(x, y, z) }

// IntOr groups list of predicates with the OR operator between them.
func IntOr(x, y IntP, z ...IntP) IntP { return typedOr(x, y, z) }

// IntNot applies the not operator on the given predicate.
func IntNot(x IntP) IntP { return typedNot(x) }

// Int64Nil applies the Nil operation on an int64 field.
func Int64Nil() Int64P { return typedNil[int64]() }

// Int64NotNil applies the NotNil operation on an int64 field.
func Int64NotNil() Int64P { return typedNotNil[int64]() }

// Int64EQ applies the EQ operation on the given value.
func Int64EQ(v int64) Int64P { return typedOp[int64](OpEQ, v) }

// Int64NEQ applies the NEQ operation on the given value.
func Int64NEQ(v int64) Int64P { return typedOp[int64](OpNEQ, v) }

// Int64LT applies the LT operation on the given value.
func Int64LT(v int64) Int64P { return typedOp[int64](OpLT, v) }

// Int64LTE applies the LTE operation on the given value.
func Int64LTE(v int64) Int64P { return typedOp[int64](OpLTE, v) }

// Int64GT applies the GT operation on the given value.
func Int64GT(v int64) Int64P { return typedOp[int64](OpGT, v) }

// Int64GTE applies the GTE operation on the given value.
func Int64GTE(v int64) Int64P { return typedOp[int64](OpGTE, v) }

// Int64And groups list of predicates with the AND operator between them.
func Int64And(x, y Int64P, z ...Int64P) Int64P { return typedAnd(x, y, z) }

// Int64Or groups list of predicates with the OR operator between them.
func Int64Or(x, y Int64P, z ...Int64P) Int64P { return typedOr(x, y, z) }

// Int64Not applies the not operator on the given predicate.
func Int64Not(x Int64P) Int64P { return typedNot(x) }

// Float64Nil applies the Nil operation on a float64 field.
func Float64Nil() Float64P { return typedNil[float64]() }

// Float64NotNil applies the NotNil operation on a float64 field.
func Float64NotNil() Float64P { return typedNotNil[float64]() }

// Float64EQ applies the EQ operation on the given value.
func Float64EQ(v float64) Float64P { return typedOp[float64](OpEQ, v) }

// Float64NEQ applies the NEQ operation on the given value.
func Float64NEQ(v float64) Float64P { return typedOp[float64](OpNEQ, v) }

// Float64LT applies the LT operation on the given value.
func Float64LT(v float64) Float64P { return typedOp[float64](OpLT, v) }

// Float64LTE applies the LTE operation on the given value.
func Float64LTE(v float64) Float64P { return typedOp[float64](OpLTE, v) }

// Float64GT applies the GT operation on the given value.
func Float64GT(v float64) Float64P { return typedOp[float64](OpGT, v) }

// Float64GTE applies the GTE operation on the given value.
func Float64GTE(v float64) Float64P { return typedOp[float64](OpGTE, v) }

// Float64And groups list of predicates with the AND operator between them.
func Float64And(x, y Float64P, z ...Float64P) Float64P { return typedAnd(x, y, z) }

// Float64Or groups list of predicates with the OR operator between them.
func Float64Or(x, y Float64P, z ...Float64P) Float64P { return typedOr(x, y, z) }

// Float64Not applies the not operator on the given predicate.
func Float64Not(x Float64P) Float64P { return typedNot(x) }

// BoolNil applies the Nil operation on a bool field.
func BoolNil() BoolP { return typedNil[bool]() }

// BoolNotNil applies the NotNil operation on a bool field.
func BoolNotNil() BoolP { return typedNotNil[bool]() }

// BoolEQ applies the EQ operation on the given value.
func BoolEQ(v bool) BoolP { return typedOp[bool](OpEQ, v) }

// BoolNEQ applies the NEQ operation on the given value.
func BoolNEQ(v bool) BoolP { return typedOp[bool](OpNEQ, v) }

// BoolAnd groups list of predicates with the AND operator between them.
func BoolAnd(x, y BoolP, z ...BoolP) BoolP { return typedAnd(x, y, z) }

// BoolOr groups list of predicates with the OR operator between them.
func BoolOr(x, y BoolP, z ...BoolP) BoolP { return typedOr(x, y, z) }

// BoolNot applies the not operator on the given predicate.
func BoolNot(x BoolP) BoolP { return typedNot(x) }

// TimeNil applies the Nil operation on a time field.
func TimeNil() TimeP { return typedNil[time.Time]() }

// TimeNotNil applies the NotNil operation on a time field.
func TimeNotNil() TimeP { return typedNotNil[time.Time]() }

// TimeEQ applies the EQ operation on the given value.
func TimeEQ(v time.Time) TimeP { return typedOp[time.Time](OpEQ, v) }

// TimeNEQ applies the NEQ operation on the given value.
func TimeNEQ(v time.Time) TimeP { return typedOp[time.Time](OpNEQ, v) }

// TimeLT applies the LT operation on the given value.
func TimeLT(v time.Time) TimeP { return typedOp[time.Time](OpLT, v) }

// TimeLTE applies the LTE operation on the given value.
func TimeLTE(v time.Time) TimeP { return typedOp[time.Time](OpLTE, v) }

// TimeGT applies the GT operation on the given value.
func TimeGT(v time.Time) TimeP { return typedOp[time.Time](OpGT, v) }

// TimeGTE applies the GTE operation on the given value.
func TimeGTE(v time.Time) TimeP { return typedOp[time.Time](OpGTE, v) }

// TimeAnd groups list of predicates with the AND operator between them.
func TimeAnd(x, y TimeP, z ...TimeP) TimeP { return typedAnd(x, y, z) }

// TimeOr groups list of predicates with the OR operator between them.
func TimeOr(x, y TimeP, z ...TimeP) TimeP { return typedOr(x, y, z) }

// TimeNot applies the not operator on the given predicate.
func TimeNot(x TimeP) TimeP { return typedNot(x) }
