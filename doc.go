// Package aggregen is the semantic-model core of a schema-driven source
// generator.
//
// A flat, ordered list of nested declarations describing business-domain
// aggregates is resolved into an immutable, validated graph which downstream
// emitters read concurrently:
//
//	decls, err := load.ParseYAML(src)
//	if err != nil {
//	    return err
//	}
//	g, err := gen.NewGraph(gen.MustNewConfig(), decls...)
//	if err != nil {
//	    // gen.Diagnostics lists every violated rule.
//	    return err
//	}
//	for _, a := range g.Aggregates {
//	    fmt.Println(a.ID, a.Model)
//	}
//
// The root package holds the sentinel errors every structured error of the
// module matches:
//
//   - ErrStructural: graph internal-consistency failures (builder bugs)
//   - ErrInvalidSchema: user-input problems, accumulated per build
//   - ErrUsage: a view was narrowed to a payload kind it does not have
//
// Sub-packages:
//
//   - graph: identifiers, the directed graph engine and path-aware views
//   - schema, schema/edge: model kinds and relation kinds
//   - schema/field: the member type registry
//   - querylanguage: predicate fragments produced by search hooks
//   - compiler/load: the declaration input model
//   - compiler/gen: the aggregate schema builder and path utilities
package aggregen
