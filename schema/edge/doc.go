// Package edge describes the relations between aggregates as they appear
// on graph edges.
//
// Every edge of an aggregate graph carries the relation name (the member
// name that introduced it) and a "kind" attribute:
//
//	child      singular nested aggregate, owned
//	children   repeated nested aggregate, owned
//	variation  one arm of a tagged union, owned; also carries "group" and "key"
//	ref        non-owning reference to an aggregate of another tree
//	type-of    value member typed by a StaticEnum or ValueObject root
//
// Ownership edges form a forest. Ref edges may form cycles.
package edge
