// Package mulmod presents multiplicative groups through the additive
// module interface.
//
// # Why
//
// The cohomology machinery in this repository speaks additive modules:
// zero, +, -, and integer scaling. Unit groups of rings and
// multiplicative groups of fields are the same algebra written
// multiplicatively, so a thin wrapper lets them flow into coefficient
// positions without a parallel code path. [Wrap] translates Add to
// multiplication, Neg to inversion, and ZMul to powering.
//
// # Limits
//
// An opaque multiplicative group carries no linear-algebra structure,
// so a [Wrap] satisfies [module.Module] but not [module.Linear], and
// homomorphisms built with [Wrap.HomFunc] answer kernel and image
// queries with [ErrUnsupported]. Solvers that need those operations
// require a linear coefficient module instead.
//
// [Units] is the bundled concrete backing: invertible residues mod n.
package mulmod
