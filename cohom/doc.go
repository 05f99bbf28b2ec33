// Package cohom computes group cohomology in degrees 0 to 2 and
// realizes degree-2 classes as group extensions.
//
// # Method
//
// Everything runs over the group's reduced confluent rewriting system.
// H^0 is the kernel of the stacked maps act(x_i) - 1. H^1 works in
// generator-value coordinates: a crossed homomorphism is determined by
// its values on the generators, the relators cut out the cocycles, and
// single module elements supply the coboundaries.
//
// H^2 uses tail bookkeeping. An extension of the group by the module
// rewrites with the same rules, decorated by module tails; reducing an
// overlap word in its two possible orders must collect the same
// decoration, which yields one linear relation per critical pair. The
// cocycle space is the kernel of those relations in the tail space D
// (one module slot per tailed rule), and coboundaries are the tails of
// folded generator values. Degree-2 cochains convert to and from tail
// vectors, so classes, representative cocycles, and coboundary
// witnesses all stay explicit.
//
// # Extensions
//
// [Extend] decorates the group's own rules and appends module letters;
// [ExtendGeneric] assembles the lifted, module and conjugation
// relators and completes them. Both expose the injection, projection
// and splitting maps, and [Extension.Split] is the round-trip check
// that the assembled multiplication is the extension law.
//
// Solvers need [module.Linear] coefficients and return [ErrNotLinear]
// for wrappers that only carry the elementwise operations. Results on
// integral coefficients are annotated with the group order, which
// bounds the exponent of every cohomology group of a finite group.
package cohom
