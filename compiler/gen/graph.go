package gen

import (
	"iter"
	"maps"
	"slices"

	"github.com/syssam/aggregen"
	"github.com/syssam/aggregen/compiler/load"
	"github.com/syssam/aggregen/graph"
	"github.com/syssam/aggregen/schema/edge"
	"github.com/syssam/aggregen/schema/field"
)

// Views over the aggregate graph.
type (
	Node     = graph.Node[*Aggregate]
	EdgeView = graph.EdgeView[*Aggregate]
	Path     = graph.Path[*Aggregate]
)

// Graph is the validated aggregate schema. It is immutable and safe for
// concurrent use.
type Graph struct {
	*Config
	// Roots holds the root aggregates in declaration order.
	Roots []*Aggregate
	// Aggregates holds every aggregate in pre-order: each root followed by
	// the aggregates nested under it.
	Aggregates []*Aggregate
	dag        *graph.Graph[*Aggregate]
	byPath     map[string]*Aggregate
}

// NewGraph builds the aggregate graph from an ordered declaration list. It
// returns either the graph or the complete Diagnostics of the list, never
// both. A nil Config uses the defaults of NewConfig.
func NewGraph(c *Config, decls ...*load.Declaration) (*Graph, error) {
	if c == nil {
		c = defaultConfig()
	}
	log := c.logger()
	roots, errs := partition(decls)
	log.Debug("partitioned declarations", "declarations", len(decls), "trees", len(roots), "errors", len(errs))
	cerrs := newClassifier(c.types()).classify(roots)
	log.Debug("classified declarations", "errors", len(cerrs))
	rerrs := resolve(roots)
	log.Debug("resolved references", "errors", len(rerrs))
	verrs := validate(roots)
	if diags := slices.Concat(errs, cerrs, rerrs, verrs); len(diags) > 0 {
		log.Warn("invalid schema", "errors", len(diags))
		return nil, Diagnostics(diags)
	}
	g, err := assemble(c, roots)
	if err != nil {
		log.Error("inconsistent aggregate graph", "error", err)
		return nil, err
	}
	log.Debug("built aggregate graph", "aggregates", len(g.Aggregates), "edges", len(g.dag.Edges()))
	return g, nil
}

// MustNewGraph is like NewGraph but panics on error.
func MustNewGraph(c *Config, decls ...*load.Declaration) *Graph {
	g, err := NewGraph(c, decls...)
	if err != nil {
		panic(err)
	}
	return g
}

// assemble turns validated entries into aggregates, members and the
// underlying graph.
func assemble(c *Config, roots []*entry) (*Graph, error) {
	var (
		g = &Graph{
			Config: c,
			byPath: make(map[string]*Aggregate),
		}
		entries []*entry
		aggs    = make(map[*entry]*Aggregate)
	)
	for _, r := range roots {
		r.walk(func(e *entry) bool {
			if !e.isAggregate() {
				return e.kind == MemberVariation
			}
			a := &Aggregate{
				cfg:     c,
				decl:    e.decl,
				Name:    e.decl.Name,
				ID:      graph.NewID(e.segments...),
				Model:   e.root.model,
				members: make(map[string]*Member),
			}
			if e.isRoot() {
				a.root = a
				g.Roots = append(g.Roots, a)
			} else {
				a.root = aggs[e.root]
			}
			aggs[e] = a
			entries = append(entries, e)
			g.Aggregates = append(g.Aggregates, a)
			g.byPath[e.path()] = a
			return true
		})
	}
	var (
		vertices = make([]graph.Vertex[*Aggregate], 0, len(g.Aggregates))
		edges    []graph.Edge
	)
	for i, e := range entries {
		a := g.Aggregates[i]
		vertices = append(vertices, graph.Vertex[*Aggregate]{ID: a.ID, Value: a})
		for _, child := range e.children {
			m := newMember(child, a, aggs)
			a.Members = append(a.Members, m)
			a.members[m.Name] = m
			if m.Kind == MemberVariation {
				for _, it := range child.children {
					item := newMember(it, a, aggs)
					item.Group = m
					m.Items = append(m.Items, item)
				}
			}
		}
		for _, m := range a.Members {
			switch {
			case m.Kind == MemberVariation:
				for _, item := range m.Items {
					item.Target.Owner = item
					edges = append(edges, graph.Edge{
						Initial:  a.ID,
						Terminal: item.Target.ID,
						Relation: item.Name,
						Attrs:    edge.VariationAttrs(m.Name, item.VariationKey),
					})
				}
			case m.Relation() != "":
				if m.Kind.Ownership() {
					m.Target.Owner = m
				}
				edges = append(edges, graph.Edge{
					Initial:  a.ID,
					Terminal: m.Target.ID,
					Relation: m.Relation(),
					Attrs:    edge.Attrs(m.Kind.edgeKind()),
				})
			}
		}
	}
	dag, err := graph.New(vertices, edges)
	if err != nil {
		return nil, err
	}
	g.dag = dag
	return g, nil
}

// newMember returns the member built from a classified entry.
func newMember(e *entry, owner *Aggregate, aggs map[*entry]*Aggregate) *Member {
	m := &Member{
		decl:  e.decl,
		Name:  e.decl.Name,
		Kind:  e.kind,
		Owner: owner,
		Attrs: maps.Clone(e.decl.Attrs),
	}
	switch e.kind {
	case MemberValue:
		m.Key, _ = field.BoolAttr(e.decl.Attrs, field.AttrKey)
		m.Required, _ = field.BoolAttr(e.decl.Attrs, field.AttrRequired)
		m.DisplayName, _ = field.BoolAttr(e.decl.Attrs, field.AttrDisplayName)
		m.Type = e.typ
		if e.typeRoot != nil {
			m.Target = aggs[e.typeRoot]
		}
	case MemberChild, MemberChildren, MemberVariationItem:
		m.Target = aggs[e]
	case MemberRef:
		m.Target = aggs[e.target]
	case MemberEnumValue:
		m.EnumValue, m.HasEnumValue, _ = field.IntAttr(e.decl.Attrs, field.AttrValue)
	}
	if e.kind == MemberVariationItem {
		m.VariationKey, _, _ = field.IntAttr(e.decl.Attrs, field.AttrKey)
	}
	return m
}

// Lookup returns the aggregate with the given full path.
func (g *Graph) Lookup(path string) (*Aggregate, error) {
	if a, ok := g.byPath[path]; ok {
		return a, nil
	}
	return nil, aggregen.NewNotFoundError("aggregate", path)
}

// DAG returns the underlying graph. Ownership edges form a forest; ref and
// type-of edges may form cycles.
func (g *Graph) DAG() *graph.Graph[*Aggregate] { return g.dag }

// Entry returns the entry view of an aggregate.
func (g *Graph) Entry(a *Aggregate) (Node, bool) {
	if a == nil {
		return Node{}, false
	}
	return g.dag.Entry(a.ID)
}

// Enumerate yields one entry view per aggregate, in pre-order.
func (g *Graph) Enumerate() iter.Seq[Node] {
	return g.dag.Enumerate()
}

// Members yields every member of every aggregate, variation items
// included, in declaration order.
func (g *Graph) Members() iter.Seq[*Member] {
	return func(yield func(*Member) bool) {
		for _, a := range g.Aggregates {
			for _, m := range a.Members {
				if !yield(m) {
					return
				}
				for _, item := range m.Items {
					if !yield(item) {
						return
					}
				}
			}
		}
	}
}
