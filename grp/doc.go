// Package grp realizes finitely presented groups through reduced
// confluent rewriting systems.
//
// # Model
//
// A [Group] holds a [word.System] whose normal forms are in bijection
// with the group elements. Multiplication is concatenate-then-reduce,
// inversion is formal inversion followed by reduction, and equality is
// syntactic equality of normal forms. Presentation generators and
// group generators coincide by construction: [Group.Gen] returns the
// reduction of the one-letter word.
//
// # Construction
//
// [FromPresentation] runs Knuth-Bendix completion on a relator list;
// [Cyclic], [Abelian], [Dihedral] and [Quaternion] wrap stock
// presentations, and [New] accepts a system obtained elsewhere, for
// instance one assembled by an extension builder.
//
// # Enumeration
//
// [Group.Elements] walks the Cayley graph breadth-first and caches the
// result. All enumeration takes a cap and reports [ErrEnumeration]
// rather than diverging on an infinite group.
package grp
