// Package gen builds the aggregate graph from declarations.
//
// # Pipeline
//
// NewGraph runs four steps over the declaration list. Each step returns its
// own diagnostics and all of them are concatenated:
//
//	declarations
//	     ↓ partition   place every declaration in a tree (depth or parent path)
//	     ↓ classify    model kinds of roots, member kinds of nested entries
//	     ↓ resolve     bind ref-to:<path> members to their target aggregate
//	     ↓ validate    model-kind legality and member type rules
//	Graph | Diagnostics
//
// A build either returns a Graph or the complete Diagnostics, never both.
//
// # Key Types
//
//   - Graph: the validated aggregates and the underlying graph.Graph
//   - Aggregate: a root or nested business entity with its members
//   - Member: a value, ownership, reference, variation or enum value member
//   - Config: member type registry, logger, worker limit and dummy seed
//
// # Graph Shape
//
// Every aggregate is a vertex identified by its path. Nested aggregates are
// linked to their owner by ownership edges (kind child, children or
// variation); references produce ref edges, and value members typed by a
// static enum or value object produce type-of edges. Ownership edges form a
// forest; ref edges may form cycles.
//
// Views returned by Graph.Entry and Graph.Enumerate remember the path they
// were reached by. Ancestors, Descendants, Flatten, Depth and Parent work
// on views, and SearchPredicate uses the path to build route-specific
// predicates.
//
// # Error Handling
//
// Schema problems are reported as *SchemaValidationError values collected in
// Diagnostics. Both match aggregen.ErrInvalidSchema:
//
//	g, err := gen.NewGraph(cfg, decls...)
//	if errors.Is(err, aggregen.ErrInvalidSchema) {
//	    var diags gen.Diagnostics
//	    errors.As(err, &diags)
//	    for _, d := range diags {
//	        log.Println(d.Path, d.Rule, d.Message)
//	    }
//	}
//
// Option errors are *ConfigError values and emitter failures are
// *EmitError values.
package gen
