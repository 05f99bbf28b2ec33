// Package frmod implements the vector-space module representation over
// the BN254 scalar field, wrapping the field arithmetic of
// gnark-crypto behind the interfaces of package module.
//
// A [Space] of dimension n is (Z/r)^n as an integer module, where r is
// the prime order of the field, so it plugs into the generic cohomology
// machinery through [module.Linear] exactly like the integer
// representation in package zmod. Structural operations are Gaussian
// elimination rather than Smith normal form.
//
// Because r is a large prime, any group of order coprime to r (every
// group this engine can enumerate, in practice) has vanishing H^1 and
// H^2 with coefficients in a Space; the representation is chiefly
// useful for fixed-point (H^0) computations and as a second
// implementation exercising the representation-generic solver.
package frmod
