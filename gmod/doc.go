// Package gmod pairs a finitely presented group with a module it acts
// on.
//
// # Conventions
//
// Actions are right actions: the action of a product u*v is "act with
// u, then act with v", and homomorphism composition throughout the
// repository reads the same direction. A [GModule] is specified by one
// action per group generator; [GModule.Act] extends along normal-form
// words, with inverse letters resolved through the element order. The
// construction never verifies the relators on its own; [GModule.Check]
// does, and solvers expect it to have passed.
//
// # Combinators
//
// [GModule.DirectSum], [Restrict], [Inflate], [GModule.Quotient] and
// [Induce] assemble new coefficient modules from old ones. All but the
// restriction family need the coefficients to be [module.Linear];
// multiplicative wrappers stop at the elementwise level.
package gmod
