package querylanguage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// An Op represents an operator.
type Op int

// Operators.
const (
	OpAnd   Op = iota // logical and.
	OpOr              // logical or.
	OpNot             // logical not.
	OpEQ              // ==
	OpNEQ             // !=
	OpGT              // >
	OpGTE             // >=
	OpLT              // <
	OpLTE             // <=
	OpIn              // in
	OpNotIn           // not in
)

var ops = [...]string{
	OpAnd:   "&&",
	OpOr:    "||",
	OpNot:   "!",
	OpEQ:    "==",
	OpNEQ:   "!=",
	OpGT:    ">",
	OpGTE:   ">=",
	OpLT:    "<",
	OpLTE:   "<=",
	OpIn:    "in",
	OpNotIn: "not in",
}

// String returns the text representation of the operator.
func (o Op) String() string {
	if int(o) < len(ops) {
		return ops[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// Func represents a function expression.
type Func string

// Functions.
const (
	FuncEqualFold    Func = "equal_fold"
	FuncContains     Func = "contains"
	FuncContainsFold Func = "contains_fold"
	FuncHasPrefix    Func = "has_prefix"
	FuncHasSuffix    Func = "has_suffix"
	FuncHasEdge      Func = "has_edge"
)

type (
	// Expr represents a node of the AST.
	Expr interface {
		fmt.Stringer
		expr()
	}

	// P is a predicate expression.
	P interface {
		Expr
		Negate() P
	}

	// UnaryExpr is a unary expression, e.g. !(x).
	UnaryExpr struct {
		Op Op
		X  Expr
	}

	// BinaryExpr is a binary expression, e.g. x == y.
	BinaryExpr struct {
		Op   Op
		X, Y Expr
	}

	// NaryExpr joins three or more expressions with one operator.
	NaryExpr struct {
		Op Op
		Xs []Expr
	}

	// CallExpr is a function call, e.g. contains(name, "a").
	CallExpr struct {
		Func Func
		Args []Expr
	}

	// Field is a reference to a member of the current aggregate.
	Field struct {
		Name string
	}

	// Edge is a reference to a relation of the current aggregate.
	Edge struct {
		Name string
	}

	// Value is a literal.
	Value struct {
		V any
	}
)

// Not returns the negation of x.
func Not(x P) P {
	return &UnaryExpr{Op: OpNot, X: x}
}

// And joins predicates with the && operator.
func And(x, y P, z ...P) P {
	if len(z) == 0 {
		return &BinaryExpr{Op: OpAnd, X: x, Y: y}
	}
	return &NaryExpr{Op: OpAnd, Xs: append([]Expr{x, y}, p2expr(z)...)}
}

// Or joins predicates with the || operator.
func Or(x, y P, z ...P) P {
	if len(z) == 0 {
		return &BinaryExpr{Op: OpOr, X: x, Y: y}
	}
	return &NaryExpr{Op: OpOr, Xs: append([]Expr{x, y}, p2expr(z)...)}
}

// F returns a field expression for the given name.
func F(name string) *Field {
	return &Field{Name: name}
}

// EQ returns a predicate checking that x equals y.
func EQ(x, y Expr) P { return &BinaryExpr{Op: OpEQ, X: x, Y: y} }

// NEQ returns a predicate checking that x does not equal y.
func NEQ(x, y Expr) P { return &BinaryExpr{Op: OpNEQ, X: x, Y: y} }

// GT returns a predicate checking that x is greater than y.
func GT(x, y Expr) P { return &BinaryExpr{Op: OpGT, X: x, Y: y} }

// GTE returns a predicate checking that x is greater than or equal to y.
func GTE(x, y Expr) P { return &BinaryExpr{Op: OpGTE, X: x, Y: y} }

// LT returns a predicate checking that x is less than y.
func LT(x, y Expr) P { return &BinaryExpr{Op: OpLT, X: x, Y: y} }

// LTE returns a predicate checking that x is less than or equal to y.
func LTE(x, y Expr) P { return &BinaryExpr{Op: OpLTE, X: x, Y: y} }

// FieldEQ returns a predicate checking that a field equals v.
func FieldEQ(name string, v any) P { return EQ(F(name), &Value{V: v}) }

// FieldNEQ returns a predicate checking that a field does not equal v.
func FieldNEQ(name string, v any) P { return NEQ(F(name), &Value{V: v}) }

// FieldGT returns a predicate checking that a field is greater than v.
func FieldGT(name string, v any) P { return GT(F(name), &Value{V: v}) }

// FieldGTE returns a predicate checking that a field is greater than or equal to v.
func FieldGTE(name string, v any) P { return GTE(F(name), &Value{V: v}) }

// FieldLT returns a predicate checking that a field is less than v.
func FieldLT(name string, v any) P { return LT(F(name), &Value{V: v}) }

// FieldLTE returns a predicate checking that a field is less than or equal to v.
func FieldLTE(name string, v any) P { return LTE(F(name), &Value{V: v}) }

// FieldIn returns a predicate checking that a field is one of vs.
func FieldIn(name string, vs ...any) P {
	return &BinaryExpr{Op: OpIn, X: F(name), Y: &Value{V: vs}}
}

// FieldNotIn returns a predicate checking that a field is none of vs.
func FieldNotIn(name string, vs ...any) P {
	return &BinaryExpr{Op: OpNotIn, X: F(name), Y: &Value{V: vs}}
}

// FieldNil returns a predicate checking that a field is nil.
func FieldNil(name string) P { return EQ(F(name), (*Value)(nil)) }

// FieldNotNil returns a predicate checking that a field is not nil.
func FieldNotNil(name string) P { return NEQ(F(name), (*Value)(nil)) }

// FieldContains returns a predicate checking that a field contains substr.
func FieldContains(name, substr string) P {
	return &CallExpr{Func: FuncContains, Args: []Expr{F(name), &Value{V: substr}}}
}

// FieldContainsFold is like FieldContains but case-insensitive.
func FieldContainsFold(name, substr string) P {
	return &CallExpr{Func: FuncContainsFold, Args: []Expr{F(name), &Value{V: substr}}}
}

// FieldEqualFold returns a predicate checking that a field equals v under
// case-folding.
func FieldEqualFold(name, v string) P {
	return &CallExpr{Func: FuncEqualFold, Args: []Expr{F(name), &Value{V: v}}}
}

// FieldHasPrefix returns a predicate checking that a field starts with prefix.
func FieldHasPrefix(name, prefix string) P {
	return &CallExpr{Func: FuncHasPrefix, Args: []Expr{F(name), &Value{V: prefix}}}
}

// FieldHasSuffix returns a predicate checking that a field ends with suffix.
func FieldHasSuffix(name, suffix string) P {
	return &CallExpr{Func: FuncHasSuffix, Args: []Expr{F(name), &Value{V: suffix}}}
}

// HasEdge returns a predicate checking that the relation is set.
func HasEdge(name string) P {
	return &CallExpr{Func: FuncHasEdge, Args: []Expr{&Edge{Name: name}}}
}

// HasEdgeWith returns a predicate checking that the relation is set and
// its target satisfies all given predicates.
func HasEdgeWith(name string, ps ...P) P {
	return &CallExpr{Func: FuncHasEdge, Args: append([]Expr{&Edge{Name: name}}, p2expr(ps)...)}
}

// Negate negates the predicate.
func (e *UnaryExpr) Negate() P { return Not(e) }

// Negate negates the predicate.
func (e *BinaryExpr) Negate() P { return Not(e) }

// Negate negates the predicate.
func (e *NaryExpr) Negate() P { return Not(e) }

// Negate negates the predicate.
func (e *CallExpr) Negate() P { return Not(e) }

// String returns the text representation of a unary expression.
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("%s(%s)", e.Op, e.X)
}

// String returns the text representation of a binary expression.
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.X, e.Op, e.Y)
}

// String returns the text representation of an n-ary expression.
func (e *NaryExpr) String() string {
	var s strings.Builder
	s.WriteByte('(')
	for i, x := range e.Xs {
		if i > 0 {
			s.WriteString(" " + e.Op.String() + " ")
		}
		s.WriteString(x.String())
	}
	s.WriteByte(')')
	return s.String()
}

// String returns the text representation of a call expression.
func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Func, strings.Join(args, ", "))
}

// String returns the field name.
func (f *Field) String() string { return f.Name }

// String returns the relation name.
func (e *Edge) String() string { return e.Name }

// String returns the JSON form of the value, or "nil".
func (v *Value) String() string {
	if v == nil {
		return "nil"
	}
	buf, err := json.Marshal(v.V)
	if err != nil {
		return fmt.Sprint(v.V)
	}
	return string(buf)
}

func p2expr(ps []P) []Expr {
	expr := make([]Expr, len(ps))
	for i := range ps {
		expr[i] = ps[i]
	}
	return expr
}

func (*UnaryExpr) expr()  {}
func (*BinaryExpr) expr() {}
func (*NaryExpr) expr()   {}
func (*CallExpr) expr()   {}
func (*Field) expr()      {}
func (*Edge) expr()       {}
func (*Value) expr()      {}
