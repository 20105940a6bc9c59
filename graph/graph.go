package graph

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Vertex is a graph vertex: an identifier and its payload. Identity is the
// ID alone; the payload takes no part in equality.
type Vertex[T any] struct {
	ID    ID
	Value T
}

// Edge connects the Initial vertex to the Terminal vertex under a relation
// name. Edges form a set keyed by all four fields.
type Edge struct {
	Initial  ID
	Terminal ID
	Relation string
	Attrs    map[string]string
}

// Attr returns the value of the named attribute, or "".
func (e Edge) Attr(name string) string {
	return e.Attrs[name]
}

// String returns a readable form of the edge, e.g. "a -[rel kind=child]-> b".
func (e Edge) String() string {
	var b strings.Builder
	b.WriteString(e.Initial.String())
	b.WriteString(" -[")
	b.WriteString(e.Relation)
	for _, k := range slices.Sorted(maps.Keys(e.Attrs)) {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(e.Attrs[k])
	}
	b.WriteString("]-> ")
	b.WriteString(e.Terminal.String())
	return b.String()
}

// key is the set identity of the edge.
func (e Edge) key() string {
	var b strings.Builder
	b.WriteString(e.Initial.String())
	b.WriteByte(0)
	b.WriteString(e.Terminal.String())
	b.WriteByte(0)
	b.WriteString(e.Relation)
	for _, k := range slices.Sorted(maps.Keys(e.Attrs)) {
		b.WriteByte(0)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(e.Attrs[k])
	}
	return b.String()
}

func (e Edge) clone() Edge {
	e.Attrs = maps.Clone(e.Attrs)
	return e
}

// Graph is an immutable directed graph over payloads of type T. Vertices
// and edges are stored in arenas addressed by index; adjacency lists for
// both directions are computed once by New.
type Graph[T any] struct {
	vertices []Vertex[T]
	index    map[ID]int
	edges    []Edge
	// from and to hold the vertex index of each edge's endpoints.
	from, to []int
	out, in  [][]int
}

// New validates the given vertices and edges and returns the graph. Every
// violation is collected; on failure the returned error is StructuralErrors
// and the graph is nil.
func New[T any](vertices []Vertex[T], edges []Edge) (*Graph[T], error) {
	var errs StructuralErrors
	g := &Graph[T]{
		vertices: make([]Vertex[T], 0, len(vertices)),
		index:    make(map[ID]int, len(vertices)),
	}
	for _, v := range vertices {
		switch _, dup := g.index[v.ID]; {
		case v.ID.IsZero():
			errs = append(errs, &StructuralError{Kind: EmptyID})
		case dup:
			errs = append(errs, &StructuralError{Kind: DuplicateVertex, ID: v.ID})
		default:
			g.index[v.ID] = len(g.vertices)
			g.vertices = append(g.vertices, v)
		}
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		e := e.clone()
		from, okFrom := g.index[e.Initial]
		to, okTo := g.index[e.Terminal]
		if !okFrom {
			errs = append(errs, &StructuralError{Kind: DanglingInitial, ID: e.Initial, Edge: &e})
		}
		if !okTo {
			errs = append(errs, &StructuralError{Kind: DanglingTerminal, ID: e.Terminal, Edge: &e})
		}
		if e.Relation == "" {
			errs = append(errs, &StructuralError{Kind: EmptyRelation, Edge: &e})
		}
		k := e.key()
		if _, dup := seen[k]; dup {
			errs = append(errs, &StructuralError{Kind: DuplicateEdge, Edge: &e})
			continue
		}
		seen[k] = struct{}{}
		if !okFrom || !okTo || e.Relation == "" {
			continue
		}
		g.edges = append(g.edges, e)
		g.from = append(g.from, from)
		g.to = append(g.to, to)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	g.out = make([][]int, len(g.vertices))
	g.in = make([][]int, len(g.vertices))
	for i := range g.edges {
		g.out[g.from[i]] = append(g.out[g.from[i]], i)
		g.in[g.to[i]] = append(g.in[g.to[i]], i)
	}
	return g, nil
}

// Len returns the number of vertices.
func (g *Graph[T]) Len() int { return len(g.vertices) }

// Has reports whether a vertex with the given id exists.
func (g *Graph[T]) Has(id ID) bool {
	_, ok := g.index[id]
	return ok
}

// Value returns the payload of the vertex with the given id.
func (g *Graph[T]) Value(id ID) (T, bool) {
	i, ok := g.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return g.vertices[i].Value, true
}

// Vertices returns the vertices in insertion order.
func (g *Graph[T]) Vertices() []Vertex[T] {
	return slices.Clone(g.vertices)
}

// Edges returns the edge set in insertion order.
func (g *Graph[T]) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.clone()
	}
	return out
}

// Entry returns the vertex with the given id as an entry view, that is,
// a view with an empty traversal path.
func (g *Graph[T]) Entry(id ID) (Node[T], bool) {
	i, ok := g.index[id]
	if !ok {
		return Node[T]{}, false
	}
	return Node[T]{g: g, idx: i}, true
}

// Enumerate yields one entry view per vertex, in insertion order.
func (g *Graph[T]) Enumerate() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for i := range g.vertices {
			if !yield(Node[T]{g: g, idx: i}) {
				return
			}
		}
	}
}
