// Package word implements rewriting of words over a signed generator
// alphabet, the foundation the rest of the module builds groups and
// cohomology on.
//
// A [Word] is a sequence of non-zero integers: letter i is the i-th
// generator, letter -i its inverse. A [System] is an indexed set of
// rewriting rules; [System.Reduce] rewrites any word to normal form by
// left-to-right scanning, optionally reporting every rule application to
// a [Visitor]. The visitor hook is what the cohomology solver uses for
// symbolic collection: it watches reductions and accumulates module
// contributions ("tails") without the reducer knowing anything about
// modules.
//
// # Confluence
//
// Reduce yields a unique normal form only when the system is confluent.
// [Complete] produces such a system from an arbitrary finite group
// presentation by Knuth-Bendix completion under shortlex order, erroring
// out with [ErrNoCompletion] instead of diverging. Polycyclic
// presentations are turned into confluent systems directly, without
// completion, by the grp package.
//
// # Example
//
// Free reduction with explicit cancellation rules:
//
//	sys, _ := word.NewSystem(1, []word.Rule{
//	    {LHS: word.Word{1, -1}, RHS: word.Word{}},
//	    {LHS: word.Word{-1, 1}, RHS: word.Word{}},
//	})
//	nf := sys.Reduce(word.Word{1, -1, 1, -1, 1}, nil)
//	// nf is word.Word{1}
package word
