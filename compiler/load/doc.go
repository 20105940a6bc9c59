// Package load decodes declaration lists, the input of the aggregate
// schema builder.
//
// A declaration list is flat and ordered. Nesting is expressed by Depth or
// by an explicit Parent path. ParseYAML accepts the tree-shaped form
//
//	Product:
//	  type: data-model
//	  members:
//	    Id: {type: word, attrs: {key: true}}
//	    Category: ref-to:CategoryMaster
//
// and flattens it in document order. ParseJSON accepts the flat form as an
// array of Declaration objects.
package load
