package gen

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/aggregen"
	"github.com/syssam/aggregen/compiler/load"
	"github.com/syssam/aggregen/schema"
	"github.com/syssam/aggregen/schema/edge"
	"github.com/syssam/aggregen/schema/field"
)

// decl returns a declaration. Attributes are given as "name=value" or
// "name" for flags.
func decl(depth int, name, typ string, attrs ...string) *load.Declaration {
	d := &load.Declaration{Name: name, Depth: depth, Type: typ}
	for _, a := range attrs {
		if d.Attrs == nil {
			d.Attrs = make(map[string]string)
		}
		k, v, _ := strings.Cut(a, "=")
		d.Attrs[k] = v
	}
	return d
}

func shopDecls() []*load.Declaration {
	return []*load.Declaration{
		decl(0, "Product", "data-model"),
		decl(1, "Id", "word", "key"),
		decl(1, "Name", "word", "display-name"),
		decl(1, "Category", "ref-to:CategoryMaster"),
		decl(0, "CategoryMaster", "data-model"),
		decl(1, "Id", "word", "key"),
		decl(1, "Title", "word"),
	}
}

func orderDecls() []*load.Declaration {
	return []*load.Declaration{
		decl(0, "Order", "data-model"),
		decl(1, "Id", "int", "key"),
		decl(1, "Lines", "children"),
		decl(2, "No", "int", "key"),
		decl(2, "Product", "ref-to:Product"),
		decl(2, "Detail", "child"),
		decl(3, "Note", "sentence"),
		decl(1, "Buyer", "ref-to:Customer"),
		decl(1, "Seller", "ref-to:Customer"),
		decl(0, "Customer", "data-model"),
		decl(1, "Id", "uuid", "key"),
		decl(1, "Name", "word", "display-name", "required"),
		decl(0, "Product", "data-model"),
		decl(1, "Code", "word", "key", "max-length=20"),
		decl(1, "Status", "ProductStatus"),
		decl(0, "ProductStatus", "static-enum"),
		decl(1, "Open", "", "value=1"),
		decl(1, "Closed", "", "value=2"),
	}
}

func mustBuild(t *testing.T, decls ...*load.Declaration) *Graph {
	t.Helper()
	g, err := NewGraph(nil, decls...)
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

func buildErr(t *testing.T, decls ...*load.Declaration) Diagnostics {
	t.Helper()
	g, err := NewGraph(nil, decls...)
	require.Error(t, err)
	assert.Nil(t, g)
	var diags Diagnostics
	require.True(t, errors.As(err, &diags), "want Diagnostics, got %T", err)
	return diags
}

func mustLookup(t *testing.T, g *Graph, path string) *Aggregate {
	t.Helper()
	a, err := g.Lookup(path)
	require.NoError(t, err)
	return a
}

func TestNewGraph_RefScenario(t *testing.T) {
	t.Run("ref resolves to another root", func(t *testing.T) {
		g := mustBuild(t, shopDecls()...)
		require.Len(t, g.Roots, 2)

		product := mustLookup(t, g, "Product")
		master := mustLookup(t, g, "CategoryMaster")
		assert.Equal(t, schema.DataModel, product.Model)
		require.Len(t, product.Refs(), 1)
		ref := product.Refs()[0]
		assert.Equal(t, "Category", ref.Name)
		assert.Equal(t, MemberRef, ref.Kind)
		assert.Same(t, master, ref.Target)
		assert.Same(t, product, ref.Owner)
		assert.Equal(t, []string{"Category"}, ref.RefPath())

		edges := g.DAG().Edges()
		require.Len(t, edges, 1)
		assert.Equal(t, product.ID, edges[0].Initial)
		assert.Equal(t, master.ID, edges[0].Terminal)
		assert.Equal(t, "Category", edges[0].Relation)
		assert.Equal(t, edge.Ref, edge.KindOf(edges[0].Attrs))
	})

	t.Run("missing target is exactly one error naming the member", func(t *testing.T) {
		diags := buildErr(t, shopDecls()[:4]...)
		require.Len(t, diags, 1)
		assert.Equal(t, "Category", diags[0].Name)
		assert.Equal(t, "Product/Category", diags[0].Path)
		assert.Equal(t, RuleUnresolvedRef, diags[0].Rule)
		assert.Contains(t, diags[0].Error(), "Category")
		assert.True(t, aggregen.IsInvalidSchema(diags))
	})
}

func TestNewGraph_EmptyStaticEnum(t *testing.T) {
	g := mustBuild(t, decl(0, "Status", "static-enum"))
	status := mustLookup(t, g, "Status")
	assert.Equal(t, schema.StaticEnum, status.Model)
	assert.Empty(t, status.Members)
	assert.True(t, status.IsRoot())
}

func TestNewGraph_UnknownType(t *testing.T) {
	diags := buildErr(t,
		decl(0, "Product", "data-model"),
		decl(1, "Id", "word", "key"),
		decl(1, "Weight", "frobnicate"),
	)
	require.Len(t, diags, 1)
	assert.Equal(t, RuleUnknownType, diags[0].Rule)
	assert.Equal(t, "Weight", diags[0].Name)
	assert.Contains(t, diags[0].Error(), "Weight")
	assert.Contains(t, diags[0].Error(), "frobnicate")
}

func TestNewGraph_UnknownKeyType(t *testing.T) {
	diags := buildErr(t,
		decl(0, "Product", "data-model"),
		decl(1, "Id", "frobnicate", "key"),
	)
	require.Len(t, diags, 1)
	assert.Equal(t, RuleUnknownType, diags[0].Rule)
	assert.Equal(t, "Id", diags[0].Name)
}

func TestNewGraph_AccumulatesUnresolvedRefs(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		decls := []*load.Declaration{
			decl(0, "Report", "query-model"),
		}
		for i := range n {
			decls = append(decls, decl(1, "Ref"+string(rune('A'+i)), "ref-to:Missing"+string(rune('A'+i))))
		}
		diags := buildErr(t, decls...)
		assert.Len(t, diags, n)
		assert.Len(t, diags.ByRule(RuleUnresolvedRef), n)
	}
}

func TestNewGraph_Determinism(t *testing.T) {
	g1 := mustBuild(t, orderDecls()...)
	g2 := mustBuild(t, orderDecls()...)

	ids := func(g *Graph) []string {
		var out []string
		for _, v := range g.DAG().Vertices() {
			out = append(out, v.ID.String())
		}
		return out
	}
	assert.Equal(t, ids(g1), ids(g2))
	assert.Equal(t, g1.DAG().Edges(), g2.DAG().Edges())

	f1, err := g1.Snapshot().Fingerprint()
	require.NoError(t, err)
	f2, err := g2.Snapshot().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

func TestNewGraph_WellFormed(t *testing.T) {
	g := mustBuild(t, orderDecls()...)
	dag := g.DAG()
	assert.Equal(t, len(g.Aggregates), dag.Len())
	for _, e := range dag.Edges() {
		assert.True(t, dag.Has(e.Initial), e.String())
		assert.True(t, dag.Has(e.Terminal), e.String())
	}
	for _, a := range g.Aggregates {
		v, ok := dag.Value(a.ID)
		require.True(t, ok)
		assert.Same(t, a, v)
	}
}

func TestNewGraph_Shape(t *testing.T) {
	g := mustBuild(t, orderDecls()...)

	var paths []string
	for _, a := range g.Aggregates {
		paths = append(paths, a.Path())
	}
	assert.Equal(t, []string{"Order", "Order/Lines", "Order/Lines/Detail", "Customer", "Product", "ProductStatus"}, paths)

	var rels []string
	for _, e := range g.DAG().Edges() {
		rels = append(rels, e.Relation+":"+e.Attrs[edge.AttrKind])
	}
	assert.Equal(t, []string{
		"Lines:children", "Buyer:ref", "Seller:ref",
		"Product:ref", "Detail:child",
		"Status:type-of",
	}, rels)

	lines := mustLookup(t, g, "Order/Lines")
	order := mustLookup(t, g, "Order")
	assert.False(t, lines.IsRoot())
	assert.Same(t, order, lines.Parent())
	assert.Same(t, order, lines.Root())
	assert.Equal(t, MemberChildren, lines.Owner.Kind)
	assert.Equal(t, schema.DataModel, lines.Model)

	detail := mustLookup(t, g, "Order/Lines/Detail")
	assert.Same(t, order, detail.Root())
	pm := detail.ParentMember()
	require.NotNil(t, pm)
	assert.Equal(t, MemberParent, pm.Kind)
	assert.Same(t, lines, pm.Target)
	assert.Nil(t, order.ParentMember())
	assert.Nil(t, order.Parent())

	product, ok := lines.Member("Product")
	require.True(t, ok)
	assert.Equal(t, []string{"Lines", "Product"}, product.RefPath())
	assert.Equal(t, "Order/Lines/Product", product.Path())

	customer := mustLookup(t, g, "Customer")
	require.Len(t, customer.Keys(), 1)
	assert.Equal(t, "Id", customer.Keys()[0].Name)
	require.Len(t, customer.DisplayNames(), 1)
	name := customer.DisplayNames()[0]
	assert.True(t, name.Required)
	assert.Equal(t, field.TypeWord, name.Type.Name())

	_, err := g.Lookup("Order/Missing")
	require.Error(t, err)
	assert.True(t, aggregen.IsNotFound(err))
}

func TestNewGraph_EnumTypedMember(t *testing.T) {
	g := mustBuild(t, orderDecls()...)
	product := mustLookup(t, g, "Product")
	enum := mustLookup(t, g, "ProductStatus")

	status, ok := product.Member("Status")
	require.True(t, ok)
	assert.Equal(t, MemberValue, status.Kind)
	assert.True(t, status.IsEnum())
	assert.Same(t, enum, status.Target)
	assert.Equal(t, "ProductStatus", status.Type.Name())
	assert.Equal(t, []field.EnumValue{
		{Name: "Open", Value: 1, HasValue: true},
		{Name: "Closed", Value: 2, HasValue: true},
	}, field.Values(status.Type))

	require.Len(t, enum.Members, 2)
	assert.Equal(t, MemberEnumValue, enum.Members[0].Kind)
	assert.Equal(t, 2, enum.Members[1].EnumValue)
	assert.True(t, enum.Members[1].HasEnumValue)

	p, err := status.Search([]string{"Open"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Contains(t, p.String(), "Status")
}

func TestNewGraph_Variation(t *testing.T) {
	g := mustBuild(t,
		decl(0, "Payment", "data-model"),
		decl(1, "Id", "sequence", "key"),
		decl(1, "Method", "variation"),
		decl(2, "Card", "", "key=1"),
		decl(3, "Number", "word"),
		decl(2, "Cash", "variation-item", "key=2"),
	)
	payment := mustLookup(t, g, "Payment")
	method, ok := payment.Member("Method")
	require.True(t, ok)
	assert.Equal(t, MemberVariation, method.Kind)
	require.Len(t, method.Items, 2)

	card := method.Items[0]
	assert.Equal(t, MemberVariationItem, card.Kind)
	assert.Equal(t, 1, card.VariationKey)
	assert.Same(t, method, card.Group)
	assert.Equal(t, "Payment/Method/Card", card.Path())
	assert.Equal(t, "Payment/Method/Card", card.Target.Path())
	assert.Same(t, payment, card.Target.Parent())
	assert.Equal(t, 2, method.Items[1].VariationKey)

	_, ok = card.Target.Member("Number")
	assert.True(t, ok)
	assert.Len(t, payment.Nested(), 2)

	edges := g.DAG().Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "Card", edges[0].Relation)
	assert.Equal(t, "Method", edges[0].Attrs[edge.AttrGroup])
	key, err := edge.VariationKey(edges[1].Attrs)
	require.NoError(t, err)
	assert.Equal(t, 2, key)

	var members []string
	for m := range g.Members() {
		members = append(members, m.Path())
	}
	assert.Equal(t, []string{
		"Payment/Id", "Payment/Method", "Payment/Method/Card", "Payment/Method/Cash",
		"Payment/Method/Card/Number",
	}, members)
}

func TestNewGraph_Partition(t *testing.T) {
	t.Run("explicit parent", func(t *testing.T) {
		g := mustBuild(t,
			decl(0, "Order", "data-model"),
			decl(1, "Id", "int", "key"),
			decl(0, "Customer", "data-model"),
			decl(1, "Id", "int", "key"),
			&load.Declaration{Name: "Notes", Parent: "Order", Type: "child"},
			decl(2, "Text", "sentence"),
		)
		order := mustLookup(t, g, "Order")
		require.Len(t, order.Members, 2)
		notes := mustLookup(t, g, "Order/Notes")
		_, ok := notes.Member("Text")
		assert.True(t, ok)
		assert.Len(t, mustLookup(t, g, "Customer").Members, 1)
	})

	tests := []struct {
		name  string
		decls []*load.Declaration
		rules []Rule
	}{
		{
			name: "depth gap drops the subtree",
			decls: []*load.Declaration{
				decl(0, "Order", "data-model"),
				decl(1, "Id", "int", "key"),
				decl(3, "Lost", "child"),
				decl(4, "AlsoLost", "frobnicate"),
				decl(1, "Note", "word"),
			},
			rules: []Rule{RuleDepth},
		},
		{
			name: "nested entry before any root",
			decls: []*load.Declaration{
				decl(1, "Orphan", "word"),
				decl(0, "Order", "data-model"),
				decl(1, "Id", "int", "key"),
			},
			rules: []Rule{RuleDepth},
		},
		{
			name: "negative depth",
			decls: []*load.Declaration{
				decl(0, "Order", "data-model"),
				decl(1, "Id", "int", "key"),
				decl(-1, "Odd", "word"),
			},
			rules: []Rule{RuleDepth},
		},
		{
			name: "unknown parent",
			decls: []*load.Declaration{
				decl(0, "Order", "data-model"),
				decl(1, "Id", "int", "key"),
				{Name: "Notes", Parent: "Order/Missing", Type: "word"},
			},
			rules: []Rule{RuleUnknownParent},
		},
		{
			name: "duplicate sibling names",
			decls: []*load.Declaration{
				decl(0, "Order", "data-model"),
				decl(1, "Id", "int", "key"),
				decl(1, "Id", "word"),
				decl(0, "Order", "query-model"),
				decl(1, "Skipped", "frobnicate"),
			},
			rules: []Rule{RuleDuplicateName, RuleDuplicateName},
		},
		{
			name: "invalid names",
			decls: []*load.Declaration{
				decl(0, "Order", "data-model"),
				decl(1, "Id", "int", "key"),
				decl(1, "", "word"),
				decl(1, "a/b", "word"),
				decl(1, ".hidden", "word"),
				decl(1, "9lives", "word"),
				decl(1, "with space", "word"),
			},
			rules: []Rule{RuleInvalidName, RuleInvalidName, RuleInvalidName, RuleInvalidName, RuleInvalidName},
		},
		{
			name: "nil declaration",
			decls: []*load.Declaration{
				decl(0, "Status", "static-enum"),
				nil,
			},
			rules: []Rule{RuleInvalidName},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := buildErr(t, tt.decls...)
			var rules []Rule
			for _, d := range diags {
				rules = append(rules, d.Rule)
			}
			assert.Equal(t, tt.rules, rules, diags.Error())
		})
	}
}

func TestNewGraph_Classify(t *testing.T) {
	tests := []struct {
		name    string
		decls   []*load.Declaration
		rule    Rule
		path    string
		message string
	}{
		{
			name:    "unknown root type",
			decls:   []*load.Declaration{decl(0, "Order", "entity"), decl(1, "Id", "frobnicate")},
			rule:    RuleRootType,
			path:    "Order",
			message: `root "Order" has type "entity"`,
		},
		{
			name:    "type root shadows a member type",
			decls:   []*load.Declaration{decl(0, "word", "value-object")},
			rule:    RuleShadowedType,
			path:    "word",
			message: "shadows",
		},
		{
			name: "missing member type",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Note", ""),
			},
			rule:    RuleUnknownType,
			path:    "Order/Note",
			message: "has no type",
		},
		{
			name: "variation item outside a variation",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Card", "variation-item", "key=1"),
			},
			rule: RuleNesting,
			path: "Order/Card",
		},
		{
			name: "non-item under a variation",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Method", "variation"),
				decl(2, "Card", "", "key=1"),
				decl(2, "Note", "word"),
			},
			rule:    RuleNesting,
			path:    "Order/Method/Note",
			message: `only variation items can be nested under variation "Method"`,
		},
		{
			name: "empty reference path",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Owner", "ref-to:"),
			},
			rule: RuleUnresolvedRef,
			path: "Order/Owner",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := buildErr(t, tt.decls...)
			require.Len(t, diags, 1, diags.Error())
			assert.Equal(t, tt.rule, diags[0].Rule)
			assert.Equal(t, tt.path, diags[0].Path)
			assert.Contains(t, diags[0].Message, tt.message)
		})
	}
}

func TestNewGraph_Resolve(t *testing.T) {
	trees := []*load.Declaration{
		decl(0, "Order", "data-model"),
		decl(1, "Id", "int", "key"),
		decl(1, "Lines", "children"),
		decl(2, "No", "int", "key"),
		decl(0, "Invoice", "data-model"),
		decl(1, "Id", "int", "key"),
		decl(1, "Lines", "children"),
		decl(2, "No", "int", "key"),
	}

	t.Run("suffix match", func(t *testing.T) {
		g := mustBuild(t, append(trees[:4:4],
			decl(0, "Report", "query-model"),
			decl(1, "Line", "ref-to:Lines"),
		)...)
		report := mustLookup(t, g, "Report")
		line, ok := report.Member("Line")
		require.True(t, ok)
		assert.Equal(t, "Order/Lines", line.Target.Path())
	})

	t.Run("full path", func(t *testing.T) {
		g := mustBuild(t, append(trees[:len(trees):len(trees)],
			decl(0, "Report", "query-model"),
			decl(1, "Line", "ref-to:Invoice/Lines"),
		)...)
		line, _ := mustLookup(t, g, "Report").Member("Line")
		assert.Equal(t, "Invoice/Lines", line.Target.Path())
	})

	t.Run("exact match wins over suffix", func(t *testing.T) {
		g := mustBuild(t, append(trees[:4:4],
			decl(0, "Lines", "query-model"),
			decl(1, "Total", "int"),
			decl(0, "Report", "query-model"),
			decl(1, "Line", "ref-to:Lines"),
		)...)
		line, _ := mustLookup(t, g, "Report").Member("Line")
		assert.Equal(t, "Lines", line.Target.Path())
	})

	t.Run("ambiguous", func(t *testing.T) {
		diags := buildErr(t, append(trees[:len(trees):len(trees)],
			decl(0, "Report", "query-model"),
			decl(1, "Line", "ref-to:Lines"),
		)...)
		require.Len(t, diags, 1)
		assert.Equal(t, RuleAmbiguousRef, diags[0].Rule)
		assert.Contains(t, diags[0].Message, "Invoice/Lines, Order/Lines")
	})

	t.Run("self reference", func(t *testing.T) {
		g := mustBuild(t,
			decl(0, "Employee", "data-model"),
			decl(1, "Id", "int", "key"),
			decl(1, "Manager", "ref-to:Employee"),
		)
		emp := mustLookup(t, g, "Employee")
		m, _ := emp.Member("Manager")
		assert.Same(t, emp, m.Target)
	})
}

func TestNewGraph_Legality(t *testing.T) {
	tests := []struct {
		name  string
		decls []*load.Declaration
		rules []Rule
	}{
		{
			name: "flag on a child",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Detail", "child", "required"),
			},
			rules: []Rule{RuleFlag},
		},
		{
			name: "flag on a root",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model", "key"),
			},
			rules: []Rule{RuleFlag},
		},
		{
			name: "invalid flag value",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Name", "word", "required=maybe"),
			},
			rules: []Rule{RuleAttribute},
		},
		{
			name: "bytes outside a data-model",
			decls: []*load.Declaration{
				decl(0, "Upload", "command-model"),
				decl(1, "Blob", "bytes"),
			},
			rules: []Rule{RuleMemberType},
		},
		{
			name: "boolean key",
			decls: []*load.Declaration{
				decl(0, "Order", "data-model"),
				decl(1, "Id", "int", "key"),
				decl(1, "Active", "bool", "key"),
			},
			rules: []Rule{RuleMemberType},
		},
		{
			name: "non-positive max-length",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Name", "word", "max-length=0"),
			},
			rules: []Rule{RuleMemberType},
		},
		{
			name: "reference inside a value-object",
			decls: []*load.Declaration{
				decl(0, "Customer", "data-model"),
				decl(1, "Id", "int", "key"),
				decl(0, "Address", "value-object"),
				decl(1, "Owner", "ref-to:Customer"),
			},
			rules: []Rule{RuleModelKind},
		},
		{
			name: "reference to a command-model",
			decls: []*load.Declaration{
				decl(0, "Upload", "command-model"),
				decl(1, "Name", "word"),
				decl(0, "Report", "query-model"),
				decl(1, "Source", "ref-to:Upload"),
			},
			rules: []Rule{RuleModelKind},
		},
		{
			name: "nested aggregate in a value-object",
			decls: []*load.Declaration{
				decl(0, "Address", "value-object"),
				decl(1, "Lines", "children"),
				decl(2, "Text", "word"),
			},
			rules: []Rule{RuleModelKind},
		},
		{
			name: "value-object typed by a value-object",
			decls: []*load.Declaration{
				decl(0, "Point", "value-object"),
				decl(1, "X", "int"),
				decl(0, "Address", "value-object"),
				decl(1, "Location", "Point"),
			},
			rules: []Rule{RuleModelKind},
		},
		{
			name: "value-object as a key",
			decls: []*load.Declaration{
				decl(0, "Point", "value-object"),
				decl(0, "Place", "data-model"),
				decl(1, "Location", "Point", "key"),
			},
			rules: []Rule{RuleMemberType},
		},
		{
			name: "enum value with a type",
			decls: []*load.Declaration{
				decl(0, "Status", "static-enum"),
				decl(1, "Open", "word"),
			},
			rules: []Rule{RuleEnumValue},
		},
		{
			name: "enum values sharing a value",
			decls: []*load.Declaration{
				decl(0, "Status", "static-enum"),
				decl(1, "Open", "", "value=1"),
				decl(1, "Closed", "", "value=1"),
				decl(1, "Broken", "", "value=x"),
			},
			rules: []Rule{RuleEnumValue, RuleEnumValue},
		},
		{
			name: "nested enum value",
			decls: []*load.Declaration{
				decl(0, "Status", "static-enum"),
				decl(1, "Open", ""),
				decl(2, "Sub", ""),
			},
			rules: []Rule{RuleNesting},
		},
		{
			name: "data-model root without key",
			decls: []*load.Declaration{
				decl(0, "Order", "data-model"),
				decl(1, "Name", "word"),
			},
			rules: []Rule{RuleMissingKey},
		},
		{
			name: "data-model children without key",
			decls: []*load.Declaration{
				decl(0, "Order", "data-model"),
				decl(1, "Id", "int", "key"),
				decl(1, "Lines", "children"),
				decl(2, "Text", "word"),
			},
			rules: []Rule{RuleMissingKey},
		},
		{
			name: "variation without items",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Method", "variation"),
			},
			rules: []Rule{RuleVariation},
		},
		{
			name: "variation item keys",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Method", "variation"),
				decl(2, "Card", "", "key=1"),
				decl(2, "Cash", "", "key=1"),
				decl(2, "Check", ""),
				decl(2, "Wire", "", "key=one"),
			},
			rules: []Rule{RuleVariation, RuleVariation, RuleVariation},
		},
		{
			name: "value member with nested entries",
			decls: []*load.Declaration{
				decl(0, "Order", "query-model"),
				decl(1, "Name", "word"),
				decl(2, "First", "word"),
			},
			rules: []Rule{RuleNesting},
		},
		{
			name: "duplicate reference names",
			decls: []*load.Declaration{
				decl(0, "Customer", "data-model"),
				decl(1, "Id", "int", "key"),
				decl(0, "Order", "query-model"),
				decl(1, "Buyer", "ref-to:Customer"),
				decl(1, "Buyer", "ref-to:Customer"),
			},
			rules: []Rule{RuleDuplicateName},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := buildErr(t, tt.decls...)
			var rules []Rule
			for _, d := range diags {
				rules = append(rules, d.Rule)
			}
			assert.Equal(t, tt.rules, rules, diags.Error())
		})
	}
}

func TestNewGraph_MemberTypeCause(t *testing.T) {
	diags := buildErr(t,
		decl(0, "Order", "data-model"),
		decl(1, "Id", "int", "key"),
		decl(1, "Active", "bool", "key"),
	)
	require.Len(t, diags, 1)
	require.Error(t, diags[0].Cause)
	assert.Contains(t, diags[0].Cause.Error(), "cannot be a key")
	assert.Equal(t, "Order/Active", diags[0].Path)
}

func TestNewGraph_AllStepsAccumulate(t *testing.T) {
	diags := buildErr(t,
		decl(0, "Order", "data-model"),
		decl(1, "Name", "word"),
		decl(1, "Weight", "frobnicate"),
		decl(1, "Category", "ref-to:Nowhere"),
		decl(3, "Lost", "word"),
	)
	var rules []Rule
	for _, d := range diags {
		rules = append(rules, d.Rule)
	}
	assert.Equal(t, []Rule{RuleDepth, RuleUnknownType, RuleUnresolvedRef, RuleMissingKey}, rules)
}

func TestNewGraph_CustomMemberTypes(t *testing.T) {
	cfg := MustNewConfig(WithMemberTypes(field.ValueObject("money")))
	g, err := NewGraph(cfg,
		decl(0, "Order", "data-model"),
		decl(1, "Id", "int", "key"),
		decl(1, "Total", "money"),
	)
	require.NoError(t, err)
	total, _ := mustLookup(t, g, "Order").Member("Total")
	assert.Equal(t, "money", total.Type.Name())
	assert.Nil(t, total.Target)

	_, err = NewGraph(nil,
		decl(0, "Order", "data-model"),
		decl(1, "Id", "int", "key"),
		decl(1, "Total", "money"),
	)
	require.Error(t, err)
}

func TestNewGraph_Logging(t *testing.T) {
	var buf bytes.Buffer
	cfg := MustNewConfig(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	_, err := NewGraph(cfg, shopDecls()...)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "built aggregate graph")

	buf.Reset()
	_, err = NewGraph(cfg, shopDecls()[:4]...)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "errors=1")
}

func TestNewGraph_FromYAML(t *testing.T) {
	decls, err := load.ParseFile("../load/testdata/shop.yaml")
	require.NoError(t, err)
	g, err := NewGraph(nil, decls...)
	require.NoError(t, err)

	product := mustLookup(t, g, "Product")
	category, ok := product.Member("Category")
	require.True(t, ok)
	assert.Equal(t, "CategoryMaster", category.Target.Path())
	assert.NotEmpty(t, g.Roots)
}

func TestMustNewGraph(t *testing.T) {
	assert.NotPanics(t, func() { MustNewGraph(nil, shopDecls()...) })
	assert.Panics(t, func() { MustNewGraph(nil, shopDecls()[:4]...) })
}
