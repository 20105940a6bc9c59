// Package querylanguage is a small predicate language produced by member
// search hooks. A predicate renders to a readable expression such as
//
//	has_edge(lines, contains(name, "bolt") && qty >= 2)
//
// Emitters translate the AST into their own query dialect; the string form
// is used for diagnostics and tests.
package querylanguage
