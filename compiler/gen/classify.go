package gen

import (
	"strings"

	"github.com/syssam/aggregen/schema"
	"github.com/syssam/aggregen/schema/field"
)

// classifier assigns model kinds to roots and member kinds to the entries
// nested under them.
type classifier struct {
	types *field.Registry
	// typeRoots maps static-enum and value-object roots by name.
	typeRoots map[string]*entry
	// typeOf holds the member type generated for each type root.
	typeOf map[*entry]field.MemberType
}

func newClassifier(types *field.Registry) *classifier {
	return &classifier{
		types:     types,
		typeRoots: make(map[string]*entry),
		typeOf:    make(map[*entry]field.MemberType),
	}
}

// classify runs over every tree. Roots are classified first so members can
// be typed by a static-enum or value-object root declared later in the list.
func (c *classifier) classify(roots []*entry) []*SchemaValidationError {
	var errs []*SchemaValidationError
	for _, r := range roots {
		errs = append(errs, c.root(r)...)
	}
	for _, r := range roots {
		if r.bad || r.model == schema.StaticEnum {
			continue
		}
		errs = append(errs, c.members(r)...)
	}
	return errs
}

func (c *classifier) root(e *entry) []*SchemaValidationError {
	model, ok := schema.ParseModelKind(strings.TrimSpace(e.decl.Type))
	if !ok {
		e.bad = true
		tags := make([]string, 0, len(schema.ModelKinds()))
		for _, k := range schema.ModelKinds() {
			tags = append(tags, k.Tag())
		}
		return []*SchemaValidationError{
			e.errorf(RuleRootType, "root %q has type %q, want one of %s", e.decl.Name, e.decl.Type, strings.Join(tags, ", ")),
		}
	}
	e.model = model
	if !model.IsType() {
		return nil
	}
	if _, ok := c.types.Lookup(e.decl.Name); ok {
		e.bad = true
		return []*SchemaValidationError{
			e.errorf(RuleShadowedType, "%s %q shadows the member type of the same name", model.Tag(), e.decl.Name),
		}
	}
	c.typeRoots[e.decl.Name] = e
	switch model {
	case schema.StaticEnum:
		values := make([]field.EnumValue, 0, len(e.children))
		for _, v := range e.children {
			v.kind = MemberEnumValue
			ev := field.EnumValue{Name: v.decl.Name}
			if n, ok, err := field.IntAttr(v.decl.Attrs, field.AttrValue); err == nil && ok {
				ev.Value, ev.HasValue = n, true
			}
			values = append(values, ev)
		}
		c.typeOf[e] = field.Enum(e.decl.Name, values...)
	case schema.ValueObject:
		c.typeOf[e] = field.ValueObject(e.decl.Name)
	}
	return nil
}

// members classifies the entries nested under an aggregate entry.
func (c *classifier) members(owner *entry) []*SchemaValidationError {
	var errs []*SchemaValidationError
	for _, m := range owner.children {
		errs = append(errs, c.member(m)...)
	}
	return errs
}

func (c *classifier) member(e *entry) []*SchemaValidationError {
	tag := strings.TrimSpace(e.decl.Type)
	switch {
	case tag == "":
		e.bad = true
		return []*SchemaValidationError{e.errorf(RuleUnknownType, "member %q has no type", e.decl.Name)}
	case tag == TagChild:
		e.kind = MemberChild
		return c.members(e)
	case tag == TagChildren:
		e.kind = MemberChildren
		return c.members(e)
	case tag == TagVariation:
		e.kind = MemberVariation
		var errs []*SchemaValidationError
		for _, item := range e.children {
			errs = append(errs, c.item(e, item)...)
		}
		return errs
	case tag == TagVariationItem:
		e.bad = true
		return []*SchemaValidationError{
			e.errorf(RuleNesting, "variation item %q must be nested under a variation", e.decl.Name),
		}
	case strings.HasPrefix(tag, TagRefPrefix):
		e.kind = MemberRef
		e.refPath = strings.Trim(strings.TrimSpace(strings.TrimPrefix(tag, TagRefPrefix)), "/")
		if e.refPath == "" {
			e.bad = true
			return []*SchemaValidationError{
				e.errorf(RuleUnresolvedRef, "reference %q has an empty target path", e.decl.Name),
			}
		}
		return nil
	}
	if t, ok := c.types.Lookup(tag); ok {
		e.kind, e.typ = MemberValue, t
		return nil
	}
	if r, ok := c.typeRoots[tag]; ok {
		e.kind, e.typ, e.typeRoot = MemberValue, c.typeOf[r], r
		return nil
	}
	e.bad = true
	return []*SchemaValidationError{
		e.errorf(RuleUnknownType, "member %q has unknown type %q", e.decl.Name, tag),
	}
}

// item classifies an entry nested under a variation. Only variation items
// may appear there; the tag may be omitted.
func (c *classifier) item(group, e *entry) []*SchemaValidationError {
	switch tag := strings.TrimSpace(e.decl.Type); tag {
	case "", TagVariationItem:
		e.kind = MemberVariationItem
		return c.members(e)
	default:
		e.bad = true
		return []*SchemaValidationError{
			e.errorf(RuleNesting, "only variation items can be nested under variation %q, got %q of type %q", group.decl.Name, e.decl.Name, tag),
		}
	}
}
