package module

import "math/big"

// Elem is an element of some module representation. Implementations are
// concrete types owned by their representation package; operations on
// elements from a foreign representation fail the implementation's
// internal type assertions.
type Elem interface {
	// Parent returns the module the element belongs to.
	Parent() Module
}

// Module is the elementwise capability every module representation
// supports: an abelian group written additively, with multiplication by
// integers. The cochain machinery needs nothing beyond this.
type Module interface {
	// Zero returns the neutral element.
	Zero() Elem
	// Gens returns a generating sequence for the module.
	Gens() []Elem
	// Add returns a+b.
	Add(a, b Elem) Elem
	// Neg returns -a.
	Neg(a Elem) Elem
	// ZMul returns k*a for an integer k.
	ZMul(k *big.Int, a Elem) Elem
	// Equal reports whether a and b are the same element.
	Equal(a, b Elem) bool
	// IsZero reports whether a is the neutral element.
	IsZero(a Elem) bool
	// Key returns a canonical string for a, stable across equal
	// elements, usable as a memoization key.
	Key(a Elem) string
}

// Hom is a homomorphism between modules. Kernel and Image return the
// sub as a module in its own right together with its embedding;
// representations that cannot compute them (the multiplicative wrapper)
// return an error, which the solver surfaces as unsupported input.
type Hom interface {
	Domain() Module
	Codomain() Module
	// Apply maps an element of the domain.
	Apply(a Elem) Elem
	// Preimage finds some x with Apply(x) == b. The boolean is false
	// when b is not in the image; that is an expected outcome, not an
	// error.
	Preimage(b Elem) (Elem, bool)
	// Kernel returns the kernel submodule and its embedding into the
	// domain.
	Kernel() (Module, Hom, error)
	// Image returns the image submodule and its embedding into the
	// codomain.
	Image() (Module, Hom, error)
}

// Sum is the result of a direct-sum construction: the sum module
// together with one injection and one projection per summand.
type Sum struct {
	Mod Linear
	Inj []Hom
	Pro []Hom
}

// Linear extends Module with the homological operations the cohomology
// solver is generic over: building homomorphisms from generator images,
// quotients, and direct sums.
type Linear interface {
	Module
	// Hom builds the homomorphism sending the i-th generator to
	// images[i]. The codomain must use the same representation.
	Hom(codomain Module, images []Elem) (Hom, error)
	// Quotient returns the quotient by the submodule generated by
	// gens, with the projection map. The projection's Preimage lifts
	// quotient elements back.
	Quotient(gens []Elem) (Linear, Hom, error)
	// DirectSum returns the direct sum of the receiver with others,
	// all of the same representation.
	DirectSum(others ...Linear) (*Sum, error)
}

// ExponentAnnotator is implemented by representations that accept an
// exponent hint: a positive integer known to annihilate the module.
// The solver annotates cohomology quotients with the group order.
type ExponentAnnotator interface {
	AnnotateExponent(n *big.Int)
}
