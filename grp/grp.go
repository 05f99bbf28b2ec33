package grp

import (
	"errors"
	"fmt"

	"github.com/f3rmion/coh/word"
)

// ErrEnumeration is returned when element enumeration exceeds its cap
// before closing, which usually means the group is infinite or the
// limit was set too low.
var ErrEnumeration = errors.New("grp: element enumeration exceeded limit")

// DefaultMaxElements caps breadth-first element enumeration.
const DefaultMaxElements = 1 << 16

// Group is a finitely presented group carried by a reduced confluent
// rewriting system. Every element has a unique normal-form word, so
// equality is word equality and multiplication is concatenate-reduce.
type Group struct {
	sys *word.System
	els []El
}

// New wraps a rewriting system as a group. The system must be reduced;
// confluence is the caller's responsibility (the constructors in this
// package obtain it from Knuth-Bendix completion).
func New(sys *word.System) (*Group, error) {
	if !sys.IsReduced() {
		return nil, errors.New("grp: rewriting system is not reduced")
	}
	return &Group{sys: sys}, nil
}

// FromPresentation completes the presentation ⟨x_1..x_ngens | relators⟩
// into a confluent system and wraps it. maxRules <= 0 selects
// [word.DefaultMaxRules].
func FromPresentation(ngens int, relators []word.Word, maxRules int) (*Group, error) {
	sys, err := word.Complete(ngens, relators, maxRules)
	if err != nil {
		return nil, err
	}
	return New(sys)
}

// Trivial returns the group with no generators.
func Trivial() *Group {
	sys, err := word.Complete(0, nil, 0)
	if err != nil {
		panic(err)
	}
	g, err := New(sys)
	if err != nil {
		panic(err)
	}
	return g
}

// Cyclic returns the cyclic group of order n on one generator.
func Cyclic(n int) (*Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("grp: cyclic order %d out of range", n)
	}
	return FromPresentation(1, []word.Word{word.Word{1}.Pow(n)}, 0)
}

// Abelian returns the direct product of cyclic groups of the given
// orders, one generator each, in order.
func Abelian(orders ...int) (*Group, error) {
	var rels []word.Word
	for i, n := range orders {
		if n < 1 {
			return nil, fmt.Errorf("grp: cyclic order %d out of range", n)
		}
		rels = append(rels, word.Word{i + 1}.Pow(n))
	}
	for j := 2; j <= len(orders); j++ {
		for i := 1; i < j; i++ {
			rels = append(rels, word.Word{j, i, -j, -i})
		}
	}
	return FromPresentation(len(orders), rels, 0)
}

// Dihedral returns the dihedral group of order 2n, generated by a
// rotation x_1 of order n and a reflection x_2.
func Dihedral(n int) (*Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("grp: dihedral parameter %d out of range", n)
	}
	rels := []word.Word{
		word.Word{1}.Pow(n),
		{2, 2},
		{2, 1, 2, 1},
	}
	return FromPresentation(2, rels, 0)
}

// Sym3 returns the symmetric group on three points as a polycyclic
// group: x_1 is a transposition, x_2 a three-cycle, and conjugation by
// x_1 inverts x_2.
func Sym3() (*Group, error) {
	return Polycyclic(
		[]int{2, 3},
		nil,
		map[[2]int]word.Word{{2, 1}: {2, 2}},
	)
}

// Quaternion returns the quaternion group of order 8 on generators
// i = x_1, j = x_2.
func Quaternion() (*Group, error) {
	rels := []word.Word{
		{1, 1, 1, 1},
		{1, 1, -2, -2},
		{-2, 1, 2, 1},
	}
	return FromPresentation(2, rels, 0)
}

// System exposes the underlying rewriting system.
func (g *Group) System() *word.System { return g.sys }

// NGens returns the number of generators.
func (g *Group) NGens() int { return g.sys.NGens() }

// El is a group element held in normal form.
type El struct {
	g *Group
	w word.Word
}

// Word returns the normal-form word of e.
func (e El) Word() word.Word { return e.w.Clone() }

// Key returns a canonical string for e, fit for map keys.
func (e El) Key() string { return e.w.Key() }

// String renders e in generator notation.
func (e El) String() string { return e.w.String() }

func (g *Group) own(e El) El {
	if e.g != g {
		panic("grp: element belongs to a different group")
	}
	return e
}

// Id returns the identity element.
func (g *Group) Id() El { return El{g: g, w: nil} }

// Gen returns the i-th generator, 1-based.
func (g *Group) Gen(i int) El {
	if i < 1 || i > g.sys.NGens() {
		panic(fmt.Sprintf("grp: generator index %d out of range", i))
	}
	return El{g: g, w: word.Word{i}}
}

// Of reduces an arbitrary word to its element.
func (g *Group) Of(w word.Word) El {
	return El{g: g, w: g.sys.Reduce(w, nil)}
}

// Mul returns a*b.
func (g *Group) Mul(a, b El) El {
	return El{g: g, w: g.sys.Reduce(g.own(a).w.Concat(g.own(b).w), nil)}
}

// Inv returns a^-1.
func (g *Group) Inv(a El) El {
	return El{g: g, w: g.sys.Reduce(g.own(a).w.Inverse(), nil)}
}

// Conj returns b^-1 * a * b.
func (g *Group) Conj(a, b El) El {
	return g.Mul(g.Mul(g.Inv(b), a), b)
}

// Equal reports whether a and b are the same element.
func (g *Group) Equal(a, b El) bool {
	return g.own(a).w.Equal(g.own(b).w)
}

// IsId reports whether a is the identity.
func (g *Group) IsId(a El) bool { return len(g.own(a).w) == 0 }

// Relators returns one relator L·R^-1 per rewriting rule. Each relator
// reduces to the identity, and together they present the group.
func (g *Group) Relators() []word.Word {
	rules := g.sys.Rules()
	out := make([]word.Word, len(rules))
	for i, r := range rules {
		out[i] = r.LHS.Concat(r.RHS.Inverse())
	}
	return out
}

// Elements enumerates the group breadth-first from the identity.
// max <= 0 selects [DefaultMaxElements]; [ErrEnumeration] is returned
// if the orbit does not close within the cap. The result is cached.
func (g *Group) Elements(max int) ([]El, error) {
	if g.els != nil {
		return g.els, nil
	}
	if max <= 0 {
		max = DefaultMaxElements
	}
	seen := map[string]bool{"": true}
	out := []El{g.Id()}
	for i := 0; i < len(out); i++ {
		for j := 1; j <= g.sys.NGens(); j++ {
			for _, step := range []El{g.Gen(j), g.Inv(g.Gen(j))} {
				next := g.Mul(out[i], step)
				if seen[next.Key()] {
					continue
				}
				if len(out) >= max {
					return nil, ErrEnumeration
				}
				seen[next.Key()] = true
				out = append(out, next)
			}
		}
	}
	g.els = out
	return out, nil
}

// Order returns |G|, enumerating if needed.
func (g *Group) Order(max int) (int, error) {
	els, err := g.Elements(max)
	if err != nil {
		return 0, err
	}
	return len(els), nil
}

// ElOrder returns the order of a single element.
func (g *Group) ElOrder(a El, max int) (int, error) {
	if max <= 0 {
		max = DefaultMaxElements
	}
	acc := g.own(a)
	for n := 1; n <= max; n++ {
		if g.IsId(acc) {
			return n, nil
		}
		acc = g.Mul(acc, a)
	}
	return 0, ErrEnumeration
}
