package mulmod

import (
	"errors"
	"math/big"

	"github.com/f3rmion/coh/module"
)

// ErrUnsupported is returned by structural operations (kernels, images)
// that an opaque multiplicative group cannot provide.
var ErrUnsupported = errors.New("mulmod: operation not supported by a multiplicative wrapper")

// Value is an opaque element of the wrapped multiplicative group.
type Value interface{}

// Group is the multiplicative collaborator contract: a group written
// multiplicatively, with no further structure assumed.
type Group interface {
	// One returns the neutral element.
	One() Value
	// Mul returns a*b.
	Mul(a, b Value) Value
	// Inv returns a^-1.
	Inv(a Value) Value
	// Equal reports whether a and b are the same element.
	Equal(a, b Value) bool
	// Gens returns a generating set.
	Gens() []Value
	// Key returns a canonical string for a.
	Key(a Value) string
}

// Wrap presents a multiplicative group through the additive
// [module.Module] interface: + is multiplication, - is inversion, and
// integer scaling is powering. This is what lets unit groups and local
// multiplicative groups flow into machinery written for additive
// modules.
//
// Wrap implements only the elementwise level; kernels and images are
// not computable against an opaque group, so homomorphisms built by
// [Wrap.HomFunc] return [ErrUnsupported] from the structural methods.
type Wrap struct {
	g Group
}

// NewWrap wraps a multiplicative group.
func NewWrap(g Group) *Wrap { return &Wrap{g: g} }

// Underlying returns the wrapped group.
func (w *Wrap) Underlying() Group { return w.g }

// Elem is an element of a [Wrap].
type Elem struct {
	w *Wrap
	v Value
}

// Parent returns the owning wrapper.
func (e *Elem) Parent() module.Module { return e.w }

// Value returns the underlying multiplicative element.
func (e *Elem) Value() Value { return e.v }

// Of wraps a group element.
func (w *Wrap) Of(v Value) *Elem { return &Elem{w: w, v: v} }

func (w *Wrap) own(a module.Elem) *Elem {
	e := a.(*Elem)
	if e.w != w {
		panic("mulmod: element belongs to a different wrapper")
	}
	return e
}

// Zero returns the wrapped identity.
func (w *Wrap) Zero() module.Elem { return &Elem{w: w, v: w.g.One()} }

// Gens returns the wrapped generating set.
func (w *Wrap) Gens() []module.Elem {
	gs := w.g.Gens()
	out := make([]module.Elem, len(gs))
	for i, g := range gs {
		out[i] = &Elem{w: w, v: g}
	}
	return out
}

// Add returns the wrapped product.
func (w *Wrap) Add(a, b module.Elem) module.Elem {
	return &Elem{w: w, v: w.g.Mul(w.own(a).v, w.own(b).v)}
}

// Neg returns the wrapped inverse.
func (w *Wrap) Neg(a module.Elem) module.Elem {
	return &Elem{w: w, v: w.g.Inv(w.own(a).v)}
}

// ZMul returns the wrapped k-th power, by square and multiply.
func (w *Wrap) ZMul(k *big.Int, a module.Elem) module.Elem {
	base := w.own(a).v
	if k.Sign() < 0 {
		base = w.g.Inv(base)
	}
	acc := w.g.One()
	sq := base
	e := new(big.Int).Abs(k)
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			acc = w.g.Mul(acc, sq)
		}
		sq = w.g.Mul(sq, sq)
	}
	return &Elem{w: w, v: acc}
}

// Equal reports whether two wrapped elements coincide.
func (w *Wrap) Equal(a, b module.Elem) bool {
	return w.g.Equal(w.own(a).v, w.own(b).v)
}

// IsZero reports whether a wraps the identity.
func (w *Wrap) IsZero(a module.Elem) bool {
	return w.g.Equal(w.own(a).v, w.g.One())
}

// Key returns the underlying group's canonical string.
func (w *Wrap) Key(a module.Elem) string { return w.g.Key(w.own(a).v) }

// Hom is a homomorphism between wrappers, backed by a function on the
// underlying groups. Structural operations are unsupported.
type Hom struct {
	dom *Wrap
	cod *Wrap
	f   func(Value) Value
}

// HomFunc builds a wrapper homomorphism from a multiplicative map.
// The function is trusted to be a homomorphism.
func (w *Wrap) HomFunc(cod *Wrap, f func(Value) Value) *Hom {
	return &Hom{dom: w, cod: cod, f: f}
}

// Domain returns the source wrapper.
func (h *Hom) Domain() module.Module { return h.dom }

// Codomain returns the target wrapper.
func (h *Hom) Codomain() module.Module { return h.cod }

// Apply maps a wrapped element.
func (h *Hom) Apply(a module.Elem) module.Elem {
	return &Elem{w: h.cod, v: h.f(h.dom.own(a).v)}
}

// Preimage is not computable against an opaque group.
func (h *Hom) Preimage(module.Elem) (module.Elem, bool) { return nil, false }

// Kernel is not computable against an opaque group.
func (h *Hom) Kernel() (module.Module, module.Hom, error) {
	return nil, nil, ErrUnsupported
}

// Image is not computable against an opaque group.
func (h *Hom) Image() (module.Module, module.Hom, error) {
	return nil, nil, ErrUnsupported
}

var (
	_ module.Module = (*Wrap)(nil)
	_ module.Hom    = (*Hom)(nil)
	_ module.Elem   = (*Elem)(nil)
)
