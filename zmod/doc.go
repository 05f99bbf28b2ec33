// Package zmod implements finitely generated abelian groups over
// arbitrary-precision integers, the primary module representation of
// the cohomology engine.
//
// A module is presented by n generators and integer relation rows; an
// element is a coordinate vector. All structural questions (equality,
// kernels, images, quotients, membership, preimages, cyclic
// decomposition) reduce to Smith normal form computations over the
// relation lattice, cached per module.
//
// The package implements [module.Linear]; see package module for the
// interface contract. Homomorphisms are integer matrices of generator
// images and are checked against the domain's relations at
// construction, so an inconsistent assignment fails early instead of
// silently producing a non-homomorphism.
//
// # Example
//
// The quotient of Z^2 by the diagonal is infinite cyclic:
//
//	m := zmod.Free(2)
//	q, proj, _ := m.Quotient([]module.Elem{m.Of(1, 1)})
//	// q.(* zmod.Abelian).Invariants() == [0]
//	_ = proj
package zmod
