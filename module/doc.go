// Package module defines the capability interfaces the cohomology
// engine is generic over, mirroring how the rest of this repository
// abstracts algebraic structures behind small interfaces with concrete
// representations in sibling packages.
//
// Three levels of capability exist:
//
//   - [Module] is the elementwise contract: an additively written
//     abelian group with integer scaling. Cochains and actions need
//     only this.
//   - [Hom] adds kernel, image and preimage. Representations that
//     cannot compute kernels (the multiplicative-group wrapper in
//     package mulmod) return errors from those methods, which callers
//     surface as "operation not supported".
//   - [Linear] adds hom construction from generator images, quotients
//     and direct sums; the cohomology solver requires this level.
//
// Concrete representations: package zmod (finitely generated abelian
// groups over arbitrary-precision integers), package frmod (vector
// spaces over the BN254 scalar field), package mulmod (additive view of
// a multiplicative group).
//
// The package also provides representation-agnostic hom combinators
// ([Identity], [Compose], [Add], [Sub], [Scale], [Tuple]) built purely
// from the interfaces: they construct the result by mapping generators,
// so they work for any Linear representation without knowing its
// internals.
package module
