package gen

import (
	"github.com/syssam/aggregen/schema"
	"github.com/syssam/aggregen/schema/field"
)

// flags are the attributes only value members may carry.
var flags = []string{field.AttrKey, field.AttrRequired, field.AttrDisplayName}

// validate applies the model-kind legality rules to classified trees.
func validate(roots []*entry) []*SchemaValidationError {
	var errs []*SchemaValidationError
	for _, r := range roots {
		r.walk(func(e *entry) bool {
			if e.bad {
				return false
			}
			errs = append(errs, check(e)...)
			return e.isAggregate() || e.kind == MemberVariation
		})
	}
	return errs
}

// check returns the violations of a single entry.
func check(e *entry) []*SchemaValidationError {
	var (
		errs  []*SchemaValidationError
		model = e.root.model
	)
	if e.kind != MemberValue {
		for _, f := range flags {
			// The key of a variation item is its discriminator value.
			if f == field.AttrKey && e.kind == MemberVariationItem {
				continue
			}
			if _, ok := e.decl.Attrs[f]; ok {
				errs = append(errs, e.errorf(RuleFlag, "%q is only allowed on value members, not on %s %q", f, describe(e), e.decl.Name))
			}
		}
	}
	switch e.kind {
	case MemberInvalid:
		if !e.isRoot() {
			break
		}
		switch model {
		case schema.DataModel:
			errs = append(errs, needKey(e)...)
		case schema.StaticEnum:
			errs = append(errs, enumValues(e)...)
		}
	case MemberValue:
		errs = append(errs, checkValue(e)...)
	case MemberChild, MemberChildren, MemberVariation:
		if model == schema.ValueObject {
			errs = append(errs, e.errorf(RuleModelKind, "%s %q is not allowed in a %s", describe(e), e.decl.Name, model.Tag()))
		}
		if e.kind == MemberChildren && model == schema.DataModel {
			errs = append(errs, needKey(e)...)
		}
		if e.kind == MemberVariation {
			errs = append(errs, variationItems(e)...)
		}
	case MemberRef:
		if !model.AllowsRefs() {
			errs = append(errs, e.errorf(RuleModelKind, "reference %q is not allowed in a %s", e.decl.Name, model.Tag()))
		}
		if t := e.target; t != nil && !t.root.model.RefTarget() {
			errs = append(errs, e.errorf(RuleModelKind, "reference %q targets %q, a %s; only %s and %s aggregates can be referenced",
				e.decl.Name, t.path(), t.root.model.Tag(), schema.DataModel.Tag(), schema.QueryModel.Tag()))
		}
	case MemberEnumValue:
		if e.decl.Type != "" {
			errs = append(errs, e.errorf(RuleEnumValue, "enum value %q must not have a type, got %q", e.decl.Name, e.decl.Type))
		}
		if _, _, err := field.IntAttr(e.decl.Attrs, field.AttrValue); err != nil {
			errs = append(errs, withCause(e.errorf(RuleEnumValue, "enum value %q has an invalid value", e.decl.Name), err))
		}
	}
	switch e.kind {
	case MemberValue, MemberRef, MemberEnumValue:
		if len(e.children) > 0 {
			errs = append(errs, e.errorf(RuleNesting, "%s %q cannot have nested declarations", describe(e), e.decl.Name))
		}
	}
	return errs
}

func checkValue(e *entry) []*SchemaValidationError {
	var (
		errs  []*SchemaValidationError
		model = e.root.model
		u     = field.Usage{Member: e.decl.Name, Model: model, Attrs: e.decl.Attrs}
	)
	for _, f := range flags {
		v, err := field.BoolAttr(e.decl.Attrs, f)
		if err != nil {
			errs = append(errs, withCause(e.errorf(RuleAttribute, "member %q has an invalid flag", e.decl.Name), err))
			continue
		}
		switch f {
		case field.AttrKey:
			u.Key = v
		case field.AttrRequired:
			u.Required = v
		}
	}
	if model == schema.ValueObject && e.typeRoot != nil && e.typeRoot.model == schema.ValueObject {
		errs = append(errs, e.errorf(RuleModelKind, "member %q of a %s cannot be typed by value object %q",
			e.decl.Name, model.Tag(), e.typeRoot.decl.Name))
	}
	for _, err := range e.typ.Validate(u) {
		errs = append(errs, withCause(e.errorf(RuleMemberType, "member %q of type %q", e.decl.Name, e.typ.Name()), err))
	}
	return errs
}

// needKey reports a data-model aggregate without key members. A key flag on
// a member that failed classification counts, as that member already has
// its own diagnostic.
func needKey(e *entry) []*SchemaValidationError {
	for _, c := range e.children {
		if c.kind != MemberValue && !c.bad {
			continue
		}
		if key, err := field.BoolAttr(c.decl.Attrs, field.AttrKey); err == nil && key {
			return nil
		}
	}
	return []*SchemaValidationError{
		e.errorf(RuleMissingKey, "%s aggregate %q needs at least one key member", schema.DataModel.Tag(), e.decl.Name),
	}
}

// enumValues reports enum values sharing an integer value.
func enumValues(root *entry) []*SchemaValidationError {
	var (
		errs []*SchemaValidationError
		seen = make(map[int]*entry)
	)
	for _, v := range root.children {
		n, ok, err := field.IntAttr(v.decl.Attrs, field.AttrValue)
		if err != nil || !ok {
			continue
		}
		if prev, ok := seen[n]; ok {
			errs = append(errs, v.errorf(RuleEnumValue, "enum value %q repeats value %d of %q", v.decl.Name, n, prev.decl.Name))
			continue
		}
		seen[n] = v
	}
	return errs
}

// variationItems checks that a variation has items with unique integer
// keys.
func variationItems(group *entry) []*SchemaValidationError {
	if len(group.children) == 0 {
		return []*SchemaValidationError{group.errorf(RuleVariation, "variation %q has no items", group.decl.Name)}
	}
	var (
		errs []*SchemaValidationError
		seen = make(map[int]*entry)
	)
	for _, item := range group.children {
		if item.bad {
			continue
		}
		key, ok, err := field.IntAttr(item.decl.Attrs, field.AttrKey)
		switch {
		case err != nil:
			errs = append(errs, withCause(item.errorf(RuleVariation, "variation item %q has an invalid key", item.decl.Name), err))
		case !ok:
			errs = append(errs, item.errorf(RuleVariation, "variation item %q needs an integer %q attribute", item.decl.Name, field.AttrKey))
		default:
			if prev, dup := seen[key]; dup {
				errs = append(errs, item.errorf(RuleVariation, "variation item %q repeats key %d of %q", item.decl.Name, key, prev.decl.Name))
				continue
			}
			seen[key] = item
		}
	}
	return errs
}

// describe returns what an entry is, for messages.
func describe(e *entry) string {
	switch e.kind {
	case MemberInvalid:
		return e.model.Tag() + " root"
	case MemberValue:
		return "value member"
	case MemberChild:
		return "child"
	case MemberChildren:
		return "children"
	case MemberRef:
		return "reference"
	case MemberVariation:
		return "variation"
	case MemberVariationItem:
		return "variation item"
	case MemberEnumValue:
		return "enum value"
	default:
		return "member"
	}
}

func withCause(err *SchemaValidationError, cause error) *SchemaValidationError {
	err.Cause = cause
	return err
}
