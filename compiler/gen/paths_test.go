package gen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// follow walks the outgoing edge with the given relation.
func follow(t *testing.T, v Node, relation string) Node {
	t.Helper()
	for _, e := range v.Out() {
		if e.Relation() == relation {
			return e.Target()
		}
	}
	require.Failf(t, "no such edge", "%s has no %q edge", v, relation)
	return Node{}
}

func entryOf(t *testing.T, g *Graph, path string) Node {
	t.Helper()
	v, ok := g.Entry(mustLookup(t, g, path))
	require.True(t, ok)
	return v
}

func ids(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID().String()
	}
	return out
}

func TestAncestors(t *testing.T) {
	g := mustBuild(t, orderDecls()...)
	order := entryOf(t, g, "Order")
	lines := follow(t, order, "Lines")
	detail := follow(t, lines, "Detail")

	assert.Empty(t, Ancestors(order))
	assert.Equal(t, 0, Depth(order))

	anc := Ancestors(detail)
	assert.Equal(t, []string{"Order", "Order/Lines"}, ids(anc))
	src, ok := detail.Source()
	require.True(t, ok)
	assert.True(t, anc[len(anc)-1].Equal(src.Origin()))
	assert.Equal(t, len(anc), Depth(detail))
	assert.True(t, anc[0].IsEntry())

	// The same aggregate reached from a nearer entry has fewer ancestors.
	fromLines := follow(t, entryOf(t, g, "Order/Lines"), "Detail")
	assert.Equal(t, 1, Depth(fromLines))
	assert.Equal(t, detail.ID(), fromLines.ID())
	assert.False(t, detail.Equal(fromLines))

	// Ref edges count as steps too.
	product := follow(t, lines, "Product")
	assert.Equal(t, []string{"Order", "Order/Lines"}, ids(Ancestors(product)))
}

func TestParent(t *testing.T) {
	g := mustBuild(t, orderDecls()...)
	detail := entryOf(t, g, "Order/Lines/Detail")

	lines, ok := Parent(detail)
	require.True(t, ok)
	assert.Equal(t, "Order/Lines", lines.ID().String())
	assert.Equal(t, 1, lines.PathFromEntry().Len())

	order, ok := Parent(lines)
	require.True(t, ok)
	assert.Equal(t, "Order", order.ID().String())
	assert.Equal(t, 2, Depth(order))
	assert.Equal(t, []string{"Detail", "Lines"}, order.PathFromEntry().Relations())

	_, ok = Parent(order)
	assert.False(t, ok)

	// Customer is only referenced, never owned.
	_, ok = Parent(entryOf(t, g, "Customer"))
	assert.False(t, ok)
}

func TestDescendantsAndFlatten(t *testing.T) {
	g := mustBuild(t, orderDecls()...)
	order := entryOf(t, g, "Order")

	desc := slices.Collect(Descendants(order))
	assert.Equal(t, []string{"Order/Lines", "Order/Lines/Detail"}, ids(desc))

	flat := slices.Collect(Flatten(order))
	assert.Equal(t, []string{"Order", "Order/Lines", "Order/Lines/Detail"}, ids(flat))
	assert.True(t, flat[0].Equal(order))
	assert.Equal(t, 2, Depth(flat[2]))

	seen := make(map[string]int)
	for _, n := range flat {
		seen[n.Key()]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, k)
	}

	t.Run("restartable", func(t *testing.T) {
		seq := Flatten(order)
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("early stop", func(t *testing.T) {
		var got []string
		for n := range Flatten(order) {
			got = append(got, n.ID().String())
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"Order", "Order/Lines"}, got)
	})

	t.Run("leaf", func(t *testing.T) {
		customer := entryOf(t, g, "Customer")
		assert.Empty(t, slices.Collect(Descendants(customer)))
		assert.Len(t, slices.Collect(Flatten(customer)), 1)
	})

	t.Run("matches the aggregate pre-order", func(t *testing.T) {
		var want []string
		for _, a := range g.Aggregates {
			if a.Root().Name == "Order" {
				want = append(want, a.Path())
			}
		}
		assert.Equal(t, want, ids(flat))
	})
}

func TestDescendants_Variation(t *testing.T) {
	g := mustBuild(t,
		decl(0, "Payment", "query-model"),
		decl(1, "Method", "variation"),
		decl(2, "Card", "", "key=1"),
		decl(3, "Holder", "child"),
		decl(2, "Cash", "", "key=2"),
	)
	got := slices.Collect(Flatten(entryOf(t, g, "Payment")))
	assert.Equal(t, []string{"Payment", "Payment/Method/Card", "Payment/Method/Card/Holder", "Payment/Method/Cash"}, ids(got))
}

func TestRefRoutes(t *testing.T) {
	g := mustBuild(t, orderDecls()...)
	order := entryOf(t, g, "Order")
	buyer := follow(t, order, "Buyer")
	seller := follow(t, order, "Seller")

	assert.Equal(t, buyer.ID(), seller.ID())
	assert.Same(t, buyer.Value(), seller.Value())
	assert.False(t, buyer.Equal(seller))
	assert.NotEqual(t, buyer.Key(), seller.Key())
	assert.Equal(t, []string{"Buyer"}, buyer.PathFromEntry().Relations())
	assert.Equal(t, []string{"Seller"}, seller.PathFromEntry().Relations())

	for _, e := range order.Out() {
		if e.Relation() == "Buyer" {
			assert.False(t, IsOwnership(e))
		}
		if e.Relation() == "Lines" {
			assert.True(t, IsOwnership(e))
		}
	}
}
