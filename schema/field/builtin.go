package field

import (
	"errors"
	"fmt"
	"time"
)

// Names of the built-in member types.
const (
	TypeWord      = "word"
	TypeSentence  = "sentence"
	TypeInt       = "int"
	TypeDecimal   = "decimal"
	TypeDate      = "date"
	TypeDateTime  = "datetime"
	TypeYearMonth = "year-month"
	TypeYear      = "year"
	TypeBool      = "bool"
	TypeBytes     = "bytes"
	TypeUUID      = "uuid"
	TypeSequence  = "sequence"
)

// scalar is a MemberType assembled from its parts.
type scalar struct {
	name      string
	primitive Primitive
	domain    string
	search    *Search
	dummy     func(DummyRequest) any
	rules     []func(Usage) error
}

func (s *scalar) Name() string { return s.name }
func (s *scalar) Primitive() Primitive { return s.primitive }
func (s *scalar) Domain() string { return s.domain }
func (s *scalar) Search() *Search { return s.search }
func (s *scalar) Dummy(req DummyRequest) any { return s.dummy(req) }

func (s *scalar) Validate(u Usage) []error {
	var errs []error
	for _, rule := range s.rules {
		if err := rule(u); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Builtins returns the built-in member types, in a stable order.
func Builtins() []MemberType {
	return []MemberType{
		&scalar{
			name: TypeWord, primitive: PrimitiveString, domain: "string",
			search: textSearch(false), dummy: dummyWord,
			rules: []func(Usage) error{positiveAttr(AttrMaxLength)},
		},
		&scalar{
			name: TypeSentence, primitive: PrimitiveText, domain: "string",
			search: textSearch(true), dummy: dummySentence,
			rules: []func(Usage) error{notKey("multi-line text"), positiveAttr(AttrMaxLength)},
		},
		&scalar{
			name: TypeInt, primitive: PrimitiveInt, domain: "int",
			search: intSearch(), dummy: dummyInt,
		},
		&scalar{
			name: TypeDecimal, primitive: PrimitiveDecimal, domain: "decimal",
			search: decimalSearch(), dummy: dummyDecimal,
			rules: []func(Usage) error{positiveAttr(AttrDigits), decimalScale},
		},
		&scalar{
			name: TypeDate, primitive: PrimitiveDate, domain: "date",
			search: timeSearch(DateLayout), dummy: dummyDate,
		},
		&scalar{
			name: TypeDateTime, primitive: PrimitiveTime, domain: "datetime",
			search: timeSearch(time.RFC3339), dummy: dummyDateTime,
		},
		&scalar{
			name: TypeYearMonth, primitive: PrimitiveDate, domain: "year-month",
			search: timeSearch(YearMonthLayout), dummy: dummyYearMonth,
		},
		&scalar{
			name: TypeYear, primitive: PrimitiveInt, domain: "year",
			search: intSearch(), dummy: dummyYear,
		},
		&scalar{
			name: TypeBool, primitive: PrimitiveBool, domain: "bool",
			search: flagSearch(), dummy: dummyBool,
			rules: []func(Usage) error{notKey("a boolean")},
		},
		&scalar{
			name: TypeBytes, primitive: PrimitiveBytes, domain: "bytes",
			dummy: dummyBytes,
			rules: []func(Usage) error{notKey("binary data"), persistentOnly(TypeBytes)},
		},
		&scalar{
			name: TypeUUID, primitive: PrimitiveUUID, domain: "uuid",
			search: exactSearch(parseUUID), dummy: dummyUUID,
		},
		&scalar{
			name: TypeSequence, primitive: PrimitiveInt, domain: "sequence",
			search: intSearch(), dummy: dummySequence,
			rules: []func(Usage) error{persistentOnly(TypeSequence), notRequired("a sequence is assigned on insert")},
		},
	}
}

func notKey(what string) func(Usage) error {
	return func(u Usage) error {
		if u.Key {
			return fmt.Errorf("%s cannot be a key", what)
		}
		return nil
	}
}

func notRequired(why string) func(Usage) error {
	return func(u Usage) error {
		if u.Required {
			return fmt.Errorf("cannot be required: %s", why)
		}
		return nil
	}
}

func persistentOnly(name string) func(Usage) error {
	return func(u Usage) error {
		if !u.Model.Persistent() {
			return fmt.Errorf("type %q is only allowed in a data-model, not in a %s", name, u.Model.Tag())
		}
		return nil
	}
}

func positiveAttr(attr string) func(Usage) error {
	return func(u Usage) error {
		n, ok, err := IntAttr(u.Attrs, attr)
		switch {
		case err != nil:
			return err
		case ok && n <= 0:
			return fmt.Errorf("attribute %q must be a positive integer, got %d", attr, n)
		}
		return nil
	}
}

func decimalScale(u Usage) error {
	scale, ok, err := IntAttr(u.Attrs, AttrScale)
	if err != nil || !ok {
		return err
	}
	if scale < 0 {
		return errors.New(`attribute "scale" must not be negative`)
	}
	if digits, ok, err := IntAttr(u.Attrs, AttrDigits); err == nil && ok && scale > digits {
		return fmt.Errorf(`attribute "scale" (%d) exceeds "digits" (%d)`, scale, digits)
	}
	return nil
}
