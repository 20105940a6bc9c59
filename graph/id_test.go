package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	id := NewID("Product", "Lines", "Sku")
	assert.Equal(t, "Product/Lines/Sku", id.String())
	assert.Equal(t, []string{"Product", "Lines", "Sku"}, id.Segments())
	assert.Equal(t, 3, id.Len())
	assert.Equal(t, "Sku", id.Base())
	assert.False(t, id.IsZero())
	assert.Equal(t, id, NewID("Product", "Lines").Child("Sku"))
	assert.Equal(t, id, ParseID("Product/Lines/Sku"))

	parent, ok := id.Parent()
	require.True(t, ok)
	assert.Equal(t, NewID("Product", "Lines"), parent)
	_, ok = NewID("Product").Parent()
	assert.False(t, ok)
}

func TestID_Zero(t *testing.T) {
	var id ID
	assert.True(t, id.IsZero())
	assert.Equal(t, ID{}, NewID())
	assert.Nil(t, id.Segments())
	assert.Zero(t, id.Len())
	assert.Equal(t, "", id.Base())
	assert.Equal(t, NewID("a"), id.Child("a"))
}

func TestID_Escaping(t *testing.T) {
	id := NewID("a/b", "100%")
	assert.Equal(t, 2, id.Len())
	assert.Equal(t, []string{"a/b", "100%"}, id.Segments())
	assert.Equal(t, "100%", id.Base())
	assert.Equal(t, id, ParseID(id.String()))
}

func TestID_HasPrefix(t *testing.T) {
	tests := []struct {
		id, prefix ID
		want       bool
	}{
		{NewID("a", "b"), NewID("a"), true},
		{NewID("a", "b"), NewID("a", "b"), true},
		{NewID("a", "b"), ID{}, true},
		{NewID("ab", "c"), NewID("a"), false},
		{NewID("a"), NewID("a", "b"), false},
	}
	for _, tt := range tests {
		t.Run(tt.id.String()+"|"+tt.prefix.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.HasPrefix(tt.prefix))
		})
	}
}

func TestID_MapKey(t *testing.T) {
	m := map[ID]int{NewID("a", "b"): 1}
	assert.Equal(t, 1, m[NewID("a").Child("b")])
}
