// Package graph provides the generic directed graph used to represent
// aggregate schemas.
//
// A Graph stores vertices (ID → payload) and edges (initial ID, terminal ID,
// relation name, attribute bag). Both are validated once in New and never
// mutated afterwards, so a Graph is safe for concurrent readers.
//
// # Identifiers
//
// An ID is an immutable, comparable, path-like key:
//
//	id := graph.NewID("Product", "Lines")   // "Product/Lines"
//	id.Parent()                             // "Product", true
//	id.Child("Discount")                    // "Product/Lines/Discount"
//
// # Construction
//
// New accumulates every violation before failing, so callers always see the
// complete list:
//
//	g, err := graph.New(vertices, edges)
//	if err != nil {
//	    var errs graph.StructuralErrors
//	    errors.As(err, &errs) // duplicate ids, dangling edges, ...
//	}
//
// # Views
//
// Node and EdgeView are cursor values bundling the graph, an index and the
// traversal path that led to them. The same vertex reached through two
// different routes yields two views that are not Equal but share an ID:
//
//	for n := range g.Enumerate() {       // every vertex as its own entry
//	    for _, e := range n.Out() {
//	        next := e.Terminal()         // path grows by one step
//	        next.PathFromEntry().Relations()
//	    }
//	}
//
// Views are values; they carry no mutable state. Adjacency lists are computed
// in New and shared by every view.
//
// # Narrowing
//
// As narrows the payload of a view without altering its identity or path:
//
//	typed, err := graph.As[*Order](n)   // *UsageError on mismatch
package graph
