package cohom

import (
	"errors"
	"fmt"

	"github.com/f3rmion/coh/cochain"
	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/grp"
	"github.com/f3rmion/coh/module"
	"github.com/f3rmion/coh/word"
)

// ErrNotLinear reports coefficients that stop at the elementwise
// level: the solvers need kernels, images and quotients.
var ErrNotLinear = errors.New("cohom: coefficient module does not support linear algebra")

// layout fixes, for one G-module, the tail coordinates of the degree-2
// machinery: which rewriting rules carry a free tail, the tail space D
// (one coefficient-module slot per such rule), and the generator-value
// space B used for coboundaries.
//
// A rule carries no tail when its left side is a single letter (it
// defines that letter) or when it is a free cancellation x x^-1 -> 1
// (its tail is normalized away by the choice of inverse lifts). In a
// reduced system those rules never occur inside other rules, so the
// remaining tails are independent coordinates.
type layout struct {
	gm  *gmod.GModule
	lin module.Linear
	sys *word.System

	tailed []int       // rule indices owning a slot, in rule order
	slots  map[int]int // rule index -> slot
	single map[int]int // letter -> defining rule index
	d      *module.Sum // M^len(tailed)
	b      *module.Sum // M^ngens
}

func newLayout(gm *gmod.GModule) (*layout, error) {
	lin, ok := gm.Module().(module.Linear)
	if !ok {
		return nil, ErrNotLinear
	}
	ly := &layout{
		gm:     gm,
		lin:    lin,
		sys:    gm.Group().System(),
		slots:  map[int]int{},
		single: map[int]int{},
	}
	for q, r := range ly.sys.Rules() {
		if len(r.LHS) == 1 {
			ly.single[r.LHS[0]] = q
			continue
		}
		if r.IsCancellation() {
			continue
		}
		ly.slots[q] = len(ly.tailed)
		ly.tailed = append(ly.tailed, q)
	}
	var err error
	if ly.d, err = power(lin, len(ly.tailed)); err != nil {
		return nil, err
	}
	if ly.b, err = power(lin, gm.Group().NGens()); err != nil {
		return nil, err
	}
	return ly, nil
}

// power is the direct sum of k copies of lin; k = 0 yields the trivial
// module of the same representation (the quotient by everything).
func power(lin module.Linear, k int) (*module.Sum, error) {
	if k == 0 {
		t, _, err := lin.Quotient(lin.Gens())
		if err != nil {
			return nil, err
		}
		return &module.Sum{Mod: t}, nil
	}
	others := make([]module.Linear, k-1)
	for i := range others {
		others[i] = lin
	}
	return lin.DirectSum(others...)
}

// collect reduces w, accumulating the tail homomorphism D -> M that a
// decorated word picks up: each application of a tailed rule
// contributes its slot projection pushed through the action of the
// suffix left standing after the match.
func (ly *layout) collect(w word.Word) (word.Word, module.Hom, error) {
	acc := module.ZeroHom(ly.d.Mod, ly.lin)
	rules := ly.sys.Rules()
	var visitErr error
	nf := ly.sys.Reduce(w, func(cur word.Word, rule, pos int) {
		if visitErr != nil {
			return
		}
		s, ok := ly.slots[rule]
		if !ok {
			return
		}
		suffix := cur[pos+len(rules[rule].LHS):].Clone()
		ah, err := ly.gm.ActWord(suffix)
		if err != nil {
			visitErr = err
			return
		}
		term, err := module.Compose(ly.d.Pro[s], ah)
		if err == nil {
			acc, err = module.Add(acc, term)
		}
		if err != nil {
			visitErr = err
		}
	})
	if visitErr != nil {
		return nil, nil, visitErr
	}
	return nf, acc, nil
}

// tailOf extracts the tail vector of a degree-2 cochain: per tailed
// rule, the decorated values of the two sides must differ by exactly
// the tail.
func (ly *layout) tailOf(c *cochain.Cochain) (module.Elem, error) {
	if c.Degree() != 2 {
		return nil, fmt.Errorf("cohom: tail of a degree-%d cochain", c.Degree())
	}
	rules := ly.sys.Rules()
	t := ly.d.Mod.Zero()
	for _, q := range ly.tailed {
		vl, err := ly.decorated(c, rules[q].LHS)
		if err != nil {
			return nil, err
		}
		vr, err := ly.decorated(c, rules[q].RHS)
		if err != nil {
			return nil, err
		}
		tq := ly.lin.Add(vl, ly.lin.Neg(vr))
		t = ly.d.Mod.Add(t, ly.d.Inj[ly.slots[q]].Apply(tq))
	}
	return t, nil
}

// decorated evaluates the module part of a word whose letters are
// lifted with zero decoration, except negative letters outside the
// single-letter rules, whose lift is the inverse of the positive lift
// and so carries -c(x, x^-1).
func (ly *layout) decorated(c *cochain.Cochain, w word.Word) (module.Elem, error) {
	g := ly.gm.Group()
	acc := ly.lin.Zero()
	for i, l := range w {
		suf, err := ly.gm.ActWord(w[i+1:])
		if err != nil {
			return nil, err
		}
		if i > 0 {
			v, err := c.AtPair(g.Of(w[:i]), g.Of(word.Word{l}))
			if err != nil {
				return nil, err
			}
			acc = ly.lin.Add(acc, suf.Apply(v))
		}
		if l < 0 {
			if _, defined := ly.single[l]; !defined {
				gen := g.Gen(-l)
				v, err := c.AtPair(gen, g.Inv(gen))
				if err != nil {
					return nil, err
				}
				acc = ly.lin.Add(acc, suf.Apply(ly.lin.Neg(v)))
			}
		}
	}
	return acc, nil
}

// cochainOf realizes a tail vector as a degree-2 cochain: the value on
// a pair is the tail contribution collected while multiplying the two
// normal forms.
func (ly *layout) cochainOf(t module.Elem) *cochain.Cochain {
	return cochain.FromFunc(ly.gm, func(g, h grp.El) (module.Elem, error) {
		_, hom, err := ly.collect(g.Word().Concat(h.Word()))
		if err != nil {
			return nil, err
		}
		return hom.Apply(t), nil
	})
}

// bval is the generator-value hom B -> M of a single letter, in the
// tail gauge: letters defined by a single-letter rule inherit the
// folded value of their definition.
func (ly *layout) bval(l int, seen map[int]bool) (module.Hom, error) {
	if q, ok := ly.single[l]; ok {
		if seen[l] {
			return nil, errors.New("cohom: cyclic single-letter definitions")
		}
		seen[l] = true
		defer delete(seen, l)
		return ly.xbWord(ly.sys.Rules()[q].RHS, seen)
	}
	if l > 0 {
		return ly.b.Pro[l-1], nil
	}
	inv, err := ly.gm.ActWord(word.Word{l})
	if err != nil {
		return nil, err
	}
	h, err := module.Compose(ly.b.Pro[-l-1], inv)
	if err != nil {
		return nil, err
	}
	return module.Neg(h)
}

// xbWord folds generator values along a word with the crossed-hom
// rule, as a hom B -> M.
func (ly *layout) xbWord(w word.Word, seen map[int]bool) (module.Hom, error) {
	acc := module.ZeroHom(ly.b.Mod, ly.lin)
	for _, l := range w {
		step, err := ly.gm.ActWord(word.Word{l})
		if err != nil {
			return nil, err
		}
		acted, err := module.Compose(acc, step)
		if err != nil {
			return nil, err
		}
		bv, err := ly.bval(l, seen)
		if err != nil {
			return nil, err
		}
		if acc, err = module.Add(acted, bv); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
