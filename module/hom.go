package module

import (
	"errors"
	"fmt"
	"math/big"
)

// errNotLinear reports a hom combinator applied to a representation
// without the Linear capability.
var errNotLinear = errors.New("module: domain does not support hom construction")

// Identity returns the identity homomorphism of m.
func Identity(m Linear) Hom {
	h, err := m.Hom(m, m.Gens())
	if err != nil {
		panic(fmt.Sprintf("module: identity hom on inconsistent module: %v", err))
	}
	return h
}

// ZeroHom returns the homomorphism sending everything in dom to zero.
func ZeroHom(dom Linear, cod Module) Hom {
	images := make([]Elem, len(dom.Gens()))
	for i := range images {
		images[i] = cod.Zero()
	}
	h, err := dom.Hom(cod, images)
	if err != nil {
		panic(fmt.Sprintf("module: zero hom construction failed: %v", err))
	}
	return h
}

// Compose returns the homomorphism "f then g" (g after f). The domains
// must chain: g's domain is f's codomain.
func Compose(f, g Hom) (Hom, error) {
	dom, ok := f.Domain().(Linear)
	if !ok {
		return nil, errNotLinear
	}
	gens := dom.Gens()
	images := make([]Elem, len(gens))
	for i, x := range gens {
		images[i] = g.Apply(f.Apply(x))
	}
	return dom.Hom(g.Codomain(), images)
}

// Add returns the pointwise sum of two homomorphisms with equal domain
// and codomain.
func Add(f, g Hom) (Hom, error) {
	dom, ok := f.Domain().(Linear)
	if !ok {
		return nil, errNotLinear
	}
	cod := f.Codomain()
	gens := dom.Gens()
	images := make([]Elem, len(gens))
	for i, x := range gens {
		images[i] = cod.Add(f.Apply(x), g.Apply(x))
	}
	return dom.Hom(cod, images)
}

// Sub returns the pointwise difference f - g.
func Sub(f, g Hom) (Hom, error) {
	dom, ok := f.Domain().(Linear)
	if !ok {
		return nil, errNotLinear
	}
	cod := f.Codomain()
	gens := dom.Gens()
	images := make([]Elem, len(gens))
	for i, x := range gens {
		images[i] = cod.Add(f.Apply(x), cod.Neg(g.Apply(x)))
	}
	return dom.Hom(cod, images)
}

// Neg returns the pointwise negation of f.
func Neg(f Hom) (Hom, error) {
	dom, ok := f.Domain().(Linear)
	if !ok {
		return nil, errNotLinear
	}
	cod := f.Codomain()
	gens := dom.Gens()
	images := make([]Elem, len(gens))
	for i, x := range gens {
		images[i] = cod.Neg(f.Apply(x))
	}
	return dom.Hom(cod, images)
}

// Scale returns the pointwise integer multiple k*f.
func Scale(k *big.Int, f Hom) (Hom, error) {
	dom, ok := f.Domain().(Linear)
	if !ok {
		return nil, errNotLinear
	}
	cod := f.Codomain()
	gens := dom.Gens()
	images := make([]Elem, len(gens))
	for i, x := range gens {
		images[i] = cod.ZMul(k, f.Apply(x))
	}
	return dom.Hom(cod, images)
}

// Tuple stacks homomorphisms with a common domain into a single map
// into the direct sum of their codomains. It returns the stacked hom
// and the sum (whose projections recover the components). All codomains
// must be Linear and of one representation. An empty hom list is not
// allowed; use a direct sum of zero summands explicitly instead.
func Tuple(homs []Hom) (Hom, *Sum, error) {
	if len(homs) == 0 {
		return nil, nil, errors.New("module: Tuple needs at least one hom")
	}
	dom, ok := homs[0].Domain().(Linear)
	if !ok {
		return nil, nil, errNotLinear
	}
	cods := make([]Linear, len(homs))
	for i, h := range homs {
		c, ok := h.Codomain().(Linear)
		if !ok {
			return nil, nil, errNotLinear
		}
		cods[i] = c
	}
	sum, err := cods[0].DirectSum(cods[1:]...)
	if err != nil {
		return nil, nil, err
	}
	gens := dom.Gens()
	images := make([]Elem, len(gens))
	for i, x := range gens {
		acc := sum.Mod.Zero()
		for t, h := range homs {
			acc = sum.Mod.Add(acc, sum.Inj[t].Apply(h.Apply(x)))
		}
		images[i] = acc
	}
	stacked, err := dom.Hom(sum.Mod, images)
	if err != nil {
		return nil, nil, err
	}
	return stacked, sum, nil
}
