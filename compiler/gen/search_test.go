package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/aggregen/schema/field"
)

func TestSearchPredicate(t *testing.T) {
	g := mustBuild(t, orderDecls()...)
	order := entryOf(t, g, "Order")
	customer := mustLookup(t, g, "Customer")
	name, _ := customer.Member("Name")

	t.Run("entry view", func(t *testing.T) {
		p, err := SearchPredicate(entryOf(t, g, "Customer"), name, "ann")
		require.NoError(t, err)
		assert.Equal(t, `contains(Name, "ann")`, p.String())
	})

	t.Run("routes yield different predicates", func(t *testing.T) {
		p, err := SearchPredicate(follow(t, order, "Buyer"), name, "ann")
		require.NoError(t, err)
		assert.Equal(t, `has_edge(Buyer, contains(Name, "ann"))`, p.String())

		p, err = SearchPredicate(follow(t, order, "Seller"), name, "ann")
		require.NoError(t, err)
		assert.Equal(t, `has_edge(Seller, contains(Name, "ann"))`, p.String())
	})

	t.Run("nested route", func(t *testing.T) {
		product := follow(t, follow(t, order, "Lines"), "Product")
		code, _ := product.Value().Member("Code")
		p, err := SearchPredicate(product, code, "A-1")
		require.NoError(t, err)
		assert.Equal(t, `has_edge(Lines, has_edge(Product, contains(Code, "A-1")))`, p.String())
	})

	t.Run("reverse ownership", func(t *testing.T) {
		lines, ok := Parent(entryOf(t, g, "Order/Lines/Detail"))
		require.True(t, ok)
		no, _ := lines.Value().Member("No")
		p, err := SearchPredicate(lines, no, field.Range{From: 1})
		require.NoError(t, err)
		assert.Equal(t, `has_edge(Parent, No >= 1)`, p.String())
	})

	t.Run("empty filter", func(t *testing.T) {
		p, err := SearchPredicate(follow(t, order, "Buyer"), name, "")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("member of another aggregate", func(t *testing.T) {
		_, err := SearchPredicate(order, name, "ann")
		require.Error(t, err)
	})

	t.Run("wrong filter shape", func(t *testing.T) {
		_, err := SearchPredicate(entryOf(t, g, "Customer"), name, 42)
		require.Error(t, err)
	})

	t.Run("not searchable", func(t *testing.T) {
		lines := mustLookup(t, g, "Order/Lines")
		ref, _ := lines.Member("Product")
		assert.False(t, ref.Searchable())
		_, err := SearchPredicate(entryOf(t, g, "Order/Lines"), ref, "x")
		require.Error(t, err)
	})
}
