package cohom

import (
	"errors"

	"github.com/f3rmion/coh/cochain"
	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/module"
	"github.com/f3rmion/coh/word"
)

// H1Result is H^1 = Z^1 / B^1 in generator-value coordinates: a
// crossed homomorphism is a point of B = M^ngens cut out by the
// relator conditions, and principal ones come from single module
// elements.
type H1Result struct {
	gm   *gmod.GModule
	b    *module.Sum
	z    module.Module // Z^1, inside B
	emb  module.Hom    // Z^1 -> B
	h    module.Linear
	proj module.Hom // Z^1 -> H
	cob  module.Hom // M -> B, m -> (act(x_i)(m) - m)_i
}

// H1 computes first cohomology: generator values that vanish when
// folded along every relator, modulo coboundaries. The result is
// annotated with the group order when the group is finite.
func H1(gm *gmod.GModule) (*H1Result, error) {
	lin, ok := gm.Module().(module.Linear)
	if !ok {
		return nil, ErrNotLinear
	}
	n := gm.Group().NGens()
	b, err := power(lin, n)
	if err != nil {
		return nil, err
	}
	r := &H1Result{gm: gm, b: b}

	var conds []module.Hom
	for _, rel := range gm.Group().Relators() {
		h, err := r.crossedFold(rel)
		if err != nil {
			return nil, err
		}
		conds = append(conds, h)
	}
	if len(conds) == 0 {
		r.z = b.Mod
		r.emb = module.Identity(b.Mod)
	} else {
		stacked, _, err := module.Tuple(conds)
		if err != nil {
			return nil, err
		}
		if r.z, r.emb, err = stacked.Kernel(); err != nil {
			return nil, err
		}
	}

	// Coboundaries: delta(m) assigns act(x_i)(m) - m to x_i.
	gens := lin.Gens()
	images := make([]module.Elem, len(gens))
	for t, x := range gens {
		acc := b.Mod.Zero()
		for i := 1; i <= n; i++ {
			v := lin.Add(gm.GenAct(i).Apply(x), lin.Neg(x))
			acc = b.Mod.Add(acc, b.Inj[i-1].Apply(v))
		}
		images[t] = acc
	}
	if r.cob, err = lin.Hom(b.Mod, images); err != nil {
		return nil, err
	}

	zlin, ok := r.z.(module.Linear)
	if !ok {
		return nil, ErrNotLinear
	}
	qgens := make([]module.Elem, len(gens))
	for i := range gens {
		lift, ok := r.emb.Preimage(r.cob.Apply(gens[i]))
		if !ok {
			return nil, errors.New("cohom: principal crossed hom violates a relator; action is inconsistent")
		}
		qgens[i] = lift
	}
	if r.h, r.proj, err = zlin.Quotient(qgens); err != nil {
		return nil, err
	}
	if order, err := gm.Group().Order(0); err == nil {
		annotateOrder(r.h, order)
	}
	return r, nil
}

// crossedFold folds the crossed-hom generator values along a word,
// producing the condition hom B -> M that the word imposes when it is
// a relator.
func (r *H1Result) crossedFold(w word.Word) (module.Hom, error) {
	lin := r.gm.Module().(module.Linear)
	acc := module.ZeroHom(r.b.Mod, lin)
	for _, l := range w {
		step, err := r.gm.ActWord(word.Word{l})
		if err != nil {
			return nil, err
		}
		acted, err := module.Compose(acc, step)
		if err != nil {
			return nil, err
		}
		var bv module.Hom
		if l > 0 {
			bv = r.b.Pro[l-1]
		} else {
			h, err := module.Compose(r.b.Pro[-l-1], step)
			if err != nil {
				return nil, err
			}
			if bv, err = module.Neg(h); err != nil {
				return nil, err
			}
		}
		if acc, err = module.Add(acted, bv); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Module returns the cohomology module.
func (r *H1Result) Module() module.Linear { return r.h }

// ClassOf maps a degree-1 cocycle to its class. A cochain that is not
// a cocycle is reported, not guessed at.
func (r *H1Result) ClassOf(c *cochain.Cochain) (module.Elem, error) {
	if c.Degree() != 1 {
		return nil, errors.New("cohom: H1 class of a cochain of wrong degree")
	}
	images := c.GenImages()
	v := r.b.Mod.Zero()
	for i, x := range images {
		v = r.b.Mod.Add(v, r.b.Inj[i].Apply(x))
	}
	lift, ok := r.emb.Preimage(v)
	if !ok {
		return nil, errors.New("cohom: cochain is not a cocycle")
	}
	return r.proj.Apply(lift), nil
}

// CochainOf returns a crossed homomorphism representing a class.
func (r *H1Result) CochainOf(cls module.Elem) (*cochain.Cochain, error) {
	rep, ok := r.proj.Preimage(cls)
	if !ok {
		return nil, errors.New("cohom: element is not an H1 class")
	}
	v := r.emb.Apply(rep)
	images := make([]module.Elem, len(r.b.Pro))
	for i, p := range r.b.Pro {
		images[i] = p.Apply(v)
	}
	return cochain.FromGenImages(r.gm, images)
}

// IsCoboundary reports whether a cocycle is principal, returning the
// degree-0 witness with c = Coboundary(witness) when it is.
func (r *H1Result) IsCoboundary(c *cochain.Cochain) (*cochain.Cochain, bool, error) {
	if c.Degree() != 1 {
		return nil, false, errors.New("cohom: H1 coboundary test on wrong degree")
	}
	images := c.GenImages()
	v := r.b.Mod.Zero()
	for i, x := range images {
		v = r.b.Mod.Add(v, r.b.Inj[i].Apply(x))
	}
	m, ok := r.cob.Preimage(v)
	if !ok {
		return nil, false, nil
	}
	return cochain.FromValue(r.gm, m), true, nil
}
