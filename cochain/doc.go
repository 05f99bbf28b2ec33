// Package cochain represents cochains on G-modules in degrees 0 to 2.
//
// # Representation
//
// A degree-0 cochain is a module element; its coboundary measures how
// far it is from being fixed. A degree-1 cochain is stored by its
// generator values and evaluated along normal-form words with the
// crossed-homomorphism rule, so a crossed homomorphism costs one
// module element per generator no matter the group order. A degree-2
// cochain is a memoized pair function, which is the shape both tails
// and coboundaries arrive in.
//
// # Checks
//
// [Cochain.IsCocycle] verifies the cocycle condition of the degree:
// fixedness, vanishing on relators, or the associativity-style pair
// identity. [Cochain.Coboundary] raises the degree by one.
package cochain
