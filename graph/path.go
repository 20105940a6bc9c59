package graph

import "strings"

// Path is the ordered list of edges walked from an entry, earliest first.
// The zero Path is not usable; paths are obtained from Node.PathFromEntry.
type Path[T any] struct {
	g     *Graph[T]
	entry int
	steps []step
}

// Len returns the number of edges.
func (p Path[T]) Len() int { return len(p.steps) }

// Entry returns the first node of the path.
func (p Path[T]) Entry() Node[T] { return Node[T]{g: p.g, idx: p.entry} }

// Last returns the node the path ends at.
func (p Path[T]) Last() Node[T] {
	nodes := p.Nodes()
	return nodes[len(nodes)-1]
}

// Nodes returns the views visited by the path, from the entry to the last
// node. Its length is Len()+1.
func (p Path[T]) Nodes() []Node[T] {
	nodes := make([]Node[T], 0, len(p.steps)+1)
	n := p.Entry()
	nodes = append(nodes, n)
	for _, s := range p.steps {
		n = n.extend(s, p.g.far(s))
		nodes = append(nodes, n)
	}
	return nodes
}

// Edges returns the traversed edges, each seen from the node it was
// walked from.
func (p Path[T]) Edges() []EdgeView[T] {
	nodes := p.Nodes()
	edges := make([]EdgeView[T], len(p.steps))
	for i, s := range p.steps {
		edges[i] = EdgeView[T]{origin: nodes[i], edge: s.edge, reverse: s.reverse}
	}
	return edges
}

// Relations returns the relation names of the traversed edges. It is the
// relation-name history used to tell apart routes to the same vertex.
func (p Path[T]) Relations() []string {
	rels := make([]string, len(p.steps))
	for i, s := range p.steps {
		rels[i] = p.g.edges[s.edge].Relation
	}
	return rels
}

// Since returns the part of the path after the first visit of waypoint.
// If the path never visits waypoint, the result is empty and anchored at
// the last node.
func (p Path[T]) Since(waypoint ID) Path[T] {
	for i, n := range p.Nodes() {
		if n.ID() == waypoint {
			return Path[T]{g: p.g, entry: n.idx, steps: p.steps[i:]}
		}
	}
	return Path[T]{g: p.g, entry: p.Last().idx}
}

// Until returns the part of the path up to and including the first arrival
// at waypoint. If the path never visits waypoint, the whole path is returned.
func (p Path[T]) Until(waypoint ID) Path[T] {
	for i, n := range p.Nodes() {
		if n.ID() == waypoint {
			return Path[T]{g: p.g, entry: p.entry, steps: p.steps[:i:i]}
		}
	}
	return p
}

// String returns the path as "entry -rel-> next <-rel- prev".
func (p Path[T]) String() string {
	var b strings.Builder
	b.WriteString(p.g.vertices[p.entry].ID.String())
	for _, s := range p.steps {
		rel := p.g.edges[s.edge].Relation
		if s.reverse {
			b.WriteString(" <-" + rel + "- ")
		} else {
			b.WriteString(" -" + rel + "-> ")
		}
		b.WriteString(p.g.vertices[p.g.far(s)].ID.String())
	}
	return b.String()
}
