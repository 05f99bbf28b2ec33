package cohom

import (
	"errors"
	"fmt"

	"github.com/f3rmion/coh/cochain"
	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/module"
)

// H2Result is H^2 in tail coordinates: cocycles are tail vectors
// satisfying one relation per critical pair of the rewriting system,
// and coboundaries are tails of folded generator values.
type H2Result struct {
	gm    *gmod.GModule
	ly    *layout
	e     module.Module // E = Z^2 in tail coordinates
	emb   module.Hom    // E -> D
	h     module.Linear
	proj  module.Hom // E -> H
	delta module.Hom // B -> D
}

// H2 computes second cohomology by tail bookkeeping on the group's
// confluent rewriting system: both reduction orders of every overlap
// word must collect the same tail contribution, which cuts the cocycle
// space out of D; coboundaries arrive by folding generator values over
// each rule's two sides. The result is annotated with the group order
// when the group is finite.
func H2(gm *gmod.GModule) (*H2Result, error) {
	ly, err := newLayout(gm)
	if err != nil {
		return nil, err
	}
	r := &H2Result{gm: gm, ly: ly}

	var rels []module.Hom
	for _, o := range ly.sys.Overlaps() {
		rel, err := r.overlapRelation(o.R, o.S, o.K)
		if err != nil {
			return nil, err
		}
		rels = append(rels, rel)
	}
	if len(rels) == 0 {
		r.e = ly.d.Mod
		r.emb = module.Identity(ly.d.Mod)
	} else {
		stacked, _, err := module.Tuple(rels)
		if err != nil {
			return nil, err
		}
		if r.e, r.emb, err = stacked.Kernel(); err != nil {
			return nil, err
		}
	}

	if r.delta, err = r.coboundaryHom(); err != nil {
		return nil, err
	}

	elin, ok := r.e.(module.Linear)
	if !ok {
		return nil, ErrNotLinear
	}
	bgens := ly.b.Mod.Gens()
	qgens := make([]module.Elem, len(bgens))
	for i, bg := range bgens {
		lift, ok := r.emb.Preimage(r.delta.Apply(bg))
		if !ok {
			return nil, errors.New("cohom: coboundary tail violates an overlap relation; action is inconsistent")
		}
		qgens[i] = lift
	}
	if r.h, r.proj, err = elin.Quotient(qgens); err != nil {
		return nil, err
	}
	if order, err := gm.Group().Order(0); err == nil {
		annotateOrder(r.h, order)
	}
	return r, nil
}

// overlapRelation builds the hom D -> M that must vanish on cocycle
// tails: the difference of the tails collected along the two reduction
// orders of the overlap word of rules rr and ss sharing k letters.
func (r *H2Result) overlapRelation(rr, ss, k int) (module.Hom, error) {
	ly := r.ly
	rules := ly.sys.Rules()
	lr, ls := rules[rr].LHS, rules[ss].LHS
	head := lr[:len(lr)-k]
	tailW := ls[k:]

	// First order: rr fires at the left edge, with tailW standing
	// after it.
	first := module.ZeroHom(ly.d.Mod, ly.lin)
	if s, ok := ly.slots[rr]; ok {
		ah, err := ly.gm.ActWord(tailW)
		if err != nil {
			return nil, err
		}
		if first, err = module.Compose(ly.d.Pro[s], ah); err != nil {
			return nil, err
		}
	}
	nf1, t1, err := ly.collect(rules[rr].RHS.Concat(tailW))
	if err != nil {
		return nil, err
	}
	if first, err = module.Add(first, t1); err != nil {
		return nil, err
	}

	// Second order: ss fires at the right edge, nothing after it.
	second := module.ZeroHom(ly.d.Mod, ly.lin)
	if s, ok := ly.slots[ss]; ok {
		second = ly.d.Pro[s]
	}
	nf2, t2, err := ly.collect(head.Concat(rules[ss].RHS))
	if err != nil {
		return nil, err
	}
	if second, err = module.Add(second, t2); err != nil {
		return nil, err
	}

	if !nf1.Equal(nf2) {
		return nil, fmt.Errorf("cohom: rewriting system is not confluent at rules %d, %d", rr, ss)
	}
	return module.Sub(first, second)
}

// coboundaryHom assembles delta: B -> D, whose slot for a rule is the
// folded generator value of the left side minus that of the right.
func (r *H2Result) coboundaryHom() (module.Hom, error) {
	ly := r.ly
	acc := module.ZeroHom(ly.b.Mod, ly.d.Mod)
	rules := ly.sys.Rules()
	for _, q := range ly.tailed {
		xl, err := ly.xbWord(rules[q].LHS, map[int]bool{})
		if err != nil {
			return nil, err
		}
		xr, err := ly.xbWord(rules[q].RHS, map[int]bool{})
		if err != nil {
			return nil, err
		}
		comp, err := module.Sub(xl, xr)
		if err != nil {
			return nil, err
		}
		term, err := module.Compose(comp, ly.d.Inj[ly.slots[q]])
		if err != nil {
			return nil, err
		}
		if acc, err = module.Add(acc, term); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Module returns the cohomology module.
func (r *H2Result) Module() module.Linear { return r.h }

// ClassOf maps a degree-2 cocycle to its class. The cochain must
// satisfy the cocycle identity; one that merely fails the overlap
// relations is reported.
func (r *H2Result) ClassOf(c *cochain.Cochain) (module.Elem, error) {
	t, err := r.ly.tailOf(c)
	if err != nil {
		return nil, err
	}
	lift, ok := r.emb.Preimage(t)
	if !ok {
		return nil, errors.New("cohom: cochain is not a cocycle")
	}
	return r.proj.Apply(lift), nil
}

// CochainOf returns a representative cocycle for a class, as a
// memoized pair function.
func (r *H2Result) CochainOf(cls module.Elem) (*cochain.Cochain, error) {
	rep, ok := r.proj.Preimage(cls)
	if !ok {
		return nil, errors.New("cohom: element is not an H2 class")
	}
	return r.ly.cochainOf(r.emb.Apply(rep)), nil
}

// IsCoboundary reports whether a cocycle is a coboundary, returning
// the degree-1 witness with c = Coboundary(witness) when it is.
func (r *H2Result) IsCoboundary(c *cochain.Cochain) (*cochain.Cochain, bool, error) {
	t, err := r.ly.tailOf(c)
	if err != nil {
		return nil, false, err
	}
	b, ok := r.delta.Preimage(t)
	if !ok {
		return nil, false, nil
	}
	images := make([]module.Elem, len(r.ly.b.Pro))
	for i, p := range r.ly.b.Pro {
		images[i] = p.Apply(b)
	}
	w, err := cochain.FromGenImages(r.gm, images)
	if err != nil {
		return nil, false, err
	}
	return w, true, nil
}
