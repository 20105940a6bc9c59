package gen

import (
	"iter"
	"slices"

	"github.com/syssam/aggregen/schema/edge"
)

// IsOwnership reports whether the edge nests its terminal aggregate under
// its initial one.
func IsOwnership(e EdgeView) bool {
	return edge.Kind(e.Attr(edge.AttrKind)).Ownership()
}

// Ancestors returns the views the traversal passed through to reach v,
// entry first. It is empty for entry views.
func Ancestors(v Node) []Node {
	var nodes []Node
	for src, ok := v.Source(); ok; src, ok = src.Origin().Source() {
		nodes = append(nodes, src.Origin())
	}
	slices.Reverse(nodes)
	return nodes
}

// Depth returns the number of ancestors of v.
func Depth(v Node) int {
	return len(Ancestors(v))
}

// Parent returns the owner of v, reached by walking the ownership edge
// backwards. It returns false for roots.
func Parent(v Node) (Node, bool) {
	for _, e := range v.In() {
		if IsOwnership(e) {
			return e.Target(), true
		}
	}
	return Node{}, false
}

// Descendants yields the aggregates nested under v in depth-first
// pre-order, following ownership edges only. v itself is not yielded.
func Descendants(v Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		descend(v, yield)
	}
}

// Flatten yields v followed by its descendants.
func Flatten(v Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if yield(v) {
			descend(v, yield)
		}
	}
}

func descend(v Node, yield func(Node) bool) bool {
	for _, e := range v.Out() {
		if !IsOwnership(e) {
			continue
		}
		n := e.Target()
		if !yield(n) || !descend(n, yield) {
			return false
		}
	}
	return true
}
