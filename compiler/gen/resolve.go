package gen

import (
	"slices"
	"strings"
)

// resolve binds every reference to its target aggregate. A reference path
// equal to the full path of an aggregate wins; otherwise every aggregate
// whose path ends with the reference path segments is a candidate, and
// exactly one candidate must exist.
func resolve(roots []*entry) []*SchemaValidationError {
	var (
		errs   []*SchemaValidationError
		aggs   []*entry
		refs   []*entry
		byPath = make(map[string]*entry)
	)
	for _, r := range roots {
		r.walk(func(e *entry) bool {
			switch {
			case e.bad:
				return false
			case e.isAggregate():
				aggs = append(aggs, e)
				byPath[e.path()] = e
			case e.kind == MemberRef:
				refs = append(refs, e)
			}
			return true
		})
	}
	for _, e := range refs {
		if t, ok := byPath[e.refPath]; ok {
			e.target = t
			continue
		}
		want := strings.Split(e.refPath, "/")
		var found []*entry
		for _, a := range aggs {
			if hasSuffix(a.segments, want) {
				found = append(found, a)
			}
		}
		switch len(found) {
		case 0:
			errs = append(errs, e.errorf(RuleUnresolvedRef, "reference %q points to %q, which matches no aggregate", e.decl.Name, e.refPath))
		case 1:
			e.target = found[0]
		default:
			paths := make([]string, len(found))
			for i, a := range found {
				paths[i] = a.path()
			}
			slices.Sort(paths)
			errs = append(errs, e.errorf(RuleAmbiguousRef, "reference %q to %q is ambiguous: %s", e.decl.Name, e.refPath, strings.Join(paths, ", ")))
		}
	}
	return errs
}

// hasSuffix reports whether the path segments end with suffix.
func hasSuffix(segments, suffix []string) bool {
	if len(suffix) == 0 || len(suffix) > len(segments) {
		return false
	}
	return slices.Equal(segments[len(segments)-len(suffix):], suffix)
}
