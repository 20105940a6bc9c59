// Package schema defines the model kinds a root aggregate can have and the
// type tags that select them in a declaration list.
//
// Every tree of declarations starts with a root whose type tag is one of
//
//	data-model      persisted aggregate, the only kind allowed to hold bytes and sequence members
//	query-model     read-side projection, a legal Ref target
//	command-model   command payload, never a Ref target
//	static-enum     fixed set of enum values
//	value-object    opaque leaf type made of scalar members
//
// The sub-packages describe what sits below a root:
//
//   - [edge]: relation kinds and the attributes carried by graph edges
//   - [field]: member types, the pluggable per-scalar behavior
package schema
