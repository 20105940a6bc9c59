package graph

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// step is one traversal: an edge index and the direction it was walked in.
type step struct {
	edge    int
	reverse bool
}

// Node is a path-aware view of a vertex: the vertex plus the traversal
// that reached it from its entry. Two nodes are equal when they belong to
// the same graph, address the same vertex and were reached along the same
// path. Nodes are values and never modify the graph.
type Node[T any] struct {
	g    *Graph[T]
	idx  int
	path []step
}

// Graph returns the graph the view belongs to.
func (n Node[T]) Graph() *Graph[T] { return n.g }

// ID returns the identifier of the underlying vertex.
func (n Node[T]) ID() ID { return n.g.vertices[n.idx].ID }

// Value returns the payload of the underlying vertex.
func (n Node[T]) Value() T { return n.g.vertices[n.idx].Value }

// IsEntry reports whether the view has no traversal context.
func (n Node[T]) IsEntry() bool { return len(n.path) == 0 }

// Out returns the edges leaving the vertex. Following one of them extends
// the path with a forward step.
func (n Node[T]) Out() []EdgeView[T] {
	edges := n.g.out[n.idx]
	views := make([]EdgeView[T], len(edges))
	for i, e := range edges {
		views[i] = EdgeView[T]{origin: n, edge: e}
	}
	return views
}

// In returns the edges entering the vertex. Following one of them extends
// the path with a reverse step.
func (n Node[T]) In() []EdgeView[T] {
	edges := n.g.in[n.idx]
	views := make([]EdgeView[T], len(edges))
	for i, e := range edges {
		views[i] = EdgeView[T]{origin: n, edge: e, reverse: true}
	}
	return views
}

// Source returns the edge that was traversed to reach this view. It
// returns false for entry views.
func (n Node[T]) Source() (EdgeView[T], bool) {
	if len(n.path) == 0 {
		return EdgeView[T]{}, false
	}
	last := n.path[len(n.path)-1]
	origin := Node[T]{g: n.g, idx: n.g.near(last), path: n.path[:len(n.path)-1:len(n.path)-1]}
	return EdgeView[T]{origin: origin, edge: last.edge, reverse: last.reverse}, true
}

// Entry returns the view the traversal started from.
func (n Node[T]) Entry() Node[T] {
	if len(n.path) == 0 {
		return n
	}
	return Node[T]{g: n.g, idx: n.g.near(n.path[0])}
}

// PathFromEntry returns the ordered edges from the entry to this view.
func (n Node[T]) PathFromEntry() Path[T] {
	return Path[T]{g: n.g, entry: n.Entry().idx, steps: n.path}
}

// Equal reports whether both views address the same vertex of the same
// graph along the same path.
func (n Node[T]) Equal(o Node[T]) bool {
	return n.g == o.g && n.idx == o.idx && slices.Equal(n.path, o.path)
}

// Key returns a string that is equal for two views if and only if they are
// Equal within one graph. It is suitable as a map key.
func (n Node[T]) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(n.idx))
	for _, s := range n.path {
		if s.reverse {
			b.WriteString("<")
		} else {
			b.WriteString(">")
		}
		b.WriteString(strconv.Itoa(s.edge))
	}
	return b.String()
}

// String returns the path from the entry ending at this view.
func (n Node[T]) String() string {
	return n.PathFromEntry().String()
}

func (n Node[T]) extend(s step, idx int) Node[T] {
	path := make([]step, len(n.path)+1)
	copy(path, n.path)
	path[len(n.path)] = s
	return Node[T]{g: n.g, idx: idx, path: path}
}

// near returns the vertex a step starts from.
func (g *Graph[T]) near(s step) int {
	if s.reverse {
		return g.to[s.edge]
	}
	return g.from[s.edge]
}

// far returns the vertex a step arrives at.
func (g *Graph[T]) far(s step) int {
	if s.reverse {
		return g.from[s.edge]
	}
	return g.to[s.edge]
}

// EdgeView is an edge seen from the view it was reached from.
type EdgeView[T any] struct {
	origin  Node[T]
	edge    int
	reverse bool
}

// Edge returns a copy of the underlying edge.
func (e EdgeView[T]) Edge() Edge { return e.origin.g.edges[e.edge].clone() }

// Relation returns the relation name of the edge.
func (e EdgeView[T]) Relation() string { return e.origin.g.edges[e.edge].Relation }

// Attr returns the value of the named edge attribute, or "".
func (e EdgeView[T]) Attr(name string) string { return e.origin.g.edges[e.edge].Attrs[name] }

// Attrs returns a copy of the edge attributes.
func (e EdgeView[T]) Attrs() map[string]string {
	return maps.Clone(e.origin.g.edges[e.edge].Attrs)
}

// IsReverse reports whether the edge is walked from its terminal to its
// initial vertex.
func (e EdgeView[T]) IsReverse() bool { return e.reverse }

// Origin returns the view the edge was reached from.
func (e EdgeView[T]) Origin() Node[T] { return e.origin }

// Target returns the far endpoint, with the path extended by this edge.
func (e EdgeView[T]) Target() Node[T] {
	s := step{edge: e.edge, reverse: e.reverse}
	return e.origin.extend(s, e.origin.g.far(s))
}

// Initial returns the initial vertex of the edge. For reverse edges this
// is the far endpoint and its path is extended.
func (e EdgeView[T]) Initial() Node[T] {
	if e.reverse {
		return e.Target()
	}
	return e.origin
}

// Terminal returns the terminal vertex of the edge. For forward edges this
// is the far endpoint and its path is extended.
func (e EdgeView[T]) Terminal() Node[T] {
	if e.reverse {
		return e.origin
	}
	return e.Target()
}

// String implements fmt.Stringer.
func (e EdgeView[T]) String() string {
	return e.origin.g.edges[e.edge].String()
}

// Typed is a view whose payload has been narrowed to U. The embedded node
// keeps its identity and path.
type Typed[U, T any] struct {
	Node[T]
	Payload U
}

// As narrows the payload of n to U. It returns a *UsageError when the
// payload is not a U.
func As[U, T any](n Node[T]) (Typed[U, T], error) {
	v := n.Value()
	u, ok := any(v).(U)
	if !ok {
		return Typed[U, T]{}, &UsageError{
			ID:   n.ID(),
			Want: reflect.TypeFor[U]().String(),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return Typed[U, T]{Node: n, Payload: u}, nil
}

// MustAs is like As but panics on error.
func MustAs[U, T any](n Node[T]) Typed[U, T] {
	t, err := As[U](n)
	if err != nil {
		panic(err)
	}
	return t
}
