package frmod

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/coh/module"
)

// Space is a finite-dimensional vector space over the BN254 scalar
// field, implementing [module.Linear]. As a module over the integers it
// is (Z/r)^dim for the field's prime order r, so the generic cohomology
// machinery applies unchanged; kernels and quotients reduce to Gaussian
// elimination instead of Smith normal form.
type Space struct {
	dim int
}

// NewSpace returns the vector space of the given dimension.
func NewSpace(dim int) *Space {
	if dim < 0 {
		panic("frmod: negative dimension")
	}
	return &Space{dim: dim}
}

// Dim returns the dimension.
func (s *Space) Dim() int { return s.dim }

// Elem is a coordinate vector in a [Space].
type Elem struct {
	s *Space
	v []fr.Element
}

// Parent returns the owning space.
func (e *Elem) Parent() module.Module { return e.s }

// String renders the coordinates.
func (e *Elem) String() string {
	parts := make([]string, len(e.v))
	for i := range e.v {
		parts[i] = e.v[i].String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Of builds an element from int64 coordinates.
func (s *Space) Of(coords ...int64) *Elem {
	if len(coords) != s.dim {
		panic(fmt.Sprintf("frmod: element has %d coordinates, want %d", len(coords), s.dim))
	}
	v := make([]fr.Element, s.dim)
	for i, x := range coords {
		v[i].SetInt64(x)
	}
	return &Elem{s: s, v: v}
}

func (s *Space) own(a module.Elem) *Elem {
	e := a.(*Elem)
	if e.s != s {
		panic("frmod: element belongs to a different space")
	}
	return e
}

// Zero returns the zero vector.
func (s *Space) Zero() module.Elem {
	return &Elem{s: s, v: make([]fr.Element, s.dim)}
}

// Gens returns the standard basis.
func (s *Space) Gens() []module.Elem {
	out := make([]module.Elem, s.dim)
	for i := 0; i < s.dim; i++ {
		v := make([]fr.Element, s.dim)
		v[i].SetOne()
		out[i] = &Elem{s: s, v: v}
	}
	return out
}

// Add returns a+b.
func (s *Space) Add(a, b module.Elem) module.Elem {
	av, bv := s.own(a).v, s.own(b).v
	v := make([]fr.Element, s.dim)
	for i := range v {
		v[i].Add(&av[i], &bv[i])
	}
	return &Elem{s: s, v: v}
}

// Neg returns -a.
func (s *Space) Neg(a module.Elem) module.Elem {
	av := s.own(a).v
	v := make([]fr.Element, s.dim)
	for i := range v {
		v[i].Neg(&av[i])
	}
	return &Elem{s: s, v: v}
}

// ZMul returns k*a, reducing k into the field first.
func (s *Space) ZMul(k *big.Int, a module.Elem) module.Elem {
	var scalar fr.Element
	scalar.SetBigInt(new(big.Int).Mod(k, fr.Modulus()))
	av := s.own(a).v
	v := make([]fr.Element, s.dim)
	for i := range v {
		v[i].Mul(&scalar, &av[i])
	}
	return &Elem{s: s, v: v}
}

// Equal reports coordinate-wise equality.
func (s *Space) Equal(a, b module.Elem) bool {
	av, bv := s.own(a).v, s.own(b).v
	for i := range av {
		if !av[i].Equal(&bv[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether a is the zero vector.
func (s *Space) IsZero(a module.Elem) bool {
	for i := range s.own(a).v {
		if !s.own(a).v[i].IsZero() {
			return false
		}
	}
	return true
}

// Key returns the canonical coordinate string.
func (s *Space) Key(a module.Elem) string {
	parts := make([]string, s.dim)
	for i := range s.own(a).v {
		parts[i] = s.own(a).v[i].String()
	}
	return strings.Join(parts, ",")
}
