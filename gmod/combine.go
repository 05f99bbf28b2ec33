package gmod

import (
	"errors"
	"fmt"

	"github.com/f3rmion/coh/grp"
	"github.com/f3rmion/coh/module"
)

var errNotLinear = errors.New("gmod: coefficient module does not support linear algebra")

func (gm *GModule) linear() (module.Linear, error) {
	lin, ok := gm.m.(module.Linear)
	if !ok {
		return nil, errNotLinear
	}
	return lin, nil
}

// DirectSum returns the G-module M ⊕ N with the diagonal action, for
// two modules over the same group, together with the sum structure.
func (gm *GModule) DirectSum(other *GModule) (*GModule, *module.Sum, error) {
	if other.g != gm.g {
		return nil, nil, errors.New("gmod: direct sum over different groups")
	}
	la, err := gm.linear()
	if err != nil {
		return nil, nil, err
	}
	lb, err := other.linear()
	if err != nil {
		return nil, nil, err
	}
	sum, err := la.DirectSum(lb)
	if err != nil {
		return nil, nil, err
	}
	acts := make([]module.Hom, gm.g.NGens())
	for i := range acts {
		left, err := chain(sum.Pro[0], gm.acts[i], sum.Inj[0])
		if err != nil {
			return nil, nil, err
		}
		right, err := chain(sum.Pro[1], other.acts[i], sum.Inj[1])
		if err != nil {
			return nil, nil, err
		}
		acts[i], err = module.Add(left, right)
		if err != nil {
			return nil, nil, err
		}
	}
	out, err := New(gm.g, sum.Mod, acts)
	if err != nil {
		return nil, nil, err
	}
	return out, sum, nil
}

// Restrict pulls the module back along an inclusion of a subgroup:
// emb must map into the acting group, and the result is a module over
// emb's domain where each generator acts as its image does.
func Restrict(gm *GModule, emb *grp.Morphism) (*GModule, error) {
	if emb.Codomain() != gm.g {
		return nil, errors.New("gmod: restriction morphism does not land in the acting group")
	}
	h := emb.Domain()
	acts := make([]module.Hom, h.NGens())
	for i := range acts {
		a, err := gm.Act(emb.Apply(h.Gen(i + 1)))
		if err != nil {
			return nil, err
		}
		acts[i] = a
	}
	return New(h, gm.m, acts)
}

// Inflate pulls the module back along a quotient map pi: G -> Q, for a
// module over Q. Generators of G act through their images in Q.
func Inflate(gm *GModule, pi *grp.Morphism) (*GModule, error) {
	if pi.Codomain() != gm.g {
		return nil, errors.New("gmod: inflation morphism does not land in the acting group")
	}
	// Same pullback as restriction; only the intent differs.
	return Restrict(gm, pi)
}

// Quotient returns M/N for the submodule N generated by gens, with the
// induced action and the projection. gens must span a G-stable
// submodule; a non-stable one surfaces as an ill-defined induced
// action and is rejected.
func (gm *GModule) Quotient(gens []module.Elem) (*GModule, module.Hom, error) {
	lin, err := gm.linear()
	if err != nil {
		return nil, nil, err
	}
	q, proj, err := lin.Quotient(gens)
	if err != nil {
		return nil, nil, err
	}
	acts := make([]module.Hom, len(gm.acts))
	for i, a := range gm.acts {
		qgens := q.Gens()
		images := make([]module.Elem, len(qgens))
		for t, x := range qgens {
			lift, ok := proj.Preimage(x)
			if !ok {
				return nil, nil, errors.New("gmod: projection failed to lift a quotient generator")
			}
			images[t] = proj.Apply(a.Apply(lift))
		}
		acts[i], err = q.Hom(q, images)
		if err != nil {
			return nil, nil, fmt.Errorf("gmod: submodule is not stable under generator %d: %w", i+1, err)
		}
	}
	out, err := New(gm.g, q, acts)
	if err != nil {
		return nil, nil, err
	}
	return out, proj, nil
}

// Induce builds the induced module Ind_H^G M for a module over H and
// an inclusion emb: H -> G: one copy of M per right coset of the image
// of H, permuted and twisted by the H-parts of the coset action. The
// identity coset's injection and projection are the first entries of
// the returned sum.
func Induce(gm *GModule, emb *grp.Morphism) (*GModule, *module.Sum, error) {
	if emb.Domain() != gm.g {
		return nil, nil, errors.New("gmod: induction morphism does not start at the acting group")
	}
	lin, err := gm.linear()
	if err != nil {
		return nil, nil, err
	}
	g := emb.Codomain()

	hEls, err := gm.g.Elements(0)
	if err != nil {
		return nil, nil, err
	}
	pre := make(map[string]grp.El, len(hEls))
	imEls := make([]grp.El, len(hEls))
	for i, h := range hEls {
		im := emb.Apply(h)
		if _, dup := pre[im.Key()]; dup {
			return nil, nil, errors.New("gmod: induction inclusion is not injective")
		}
		pre[im.Key()] = h
		imEls[i] = im
	}

	trans, err := g.RightTransversal(imEls, 0)
	if err != nil {
		return nil, nil, err
	}
	k := len(trans)

	parts := make([]module.Linear, k-1)
	for i := range parts {
		parts[i] = lin
	}
	sum, err := lin.DirectSum(parts...)
	if err != nil {
		return nil, nil, err
	}

	acts := make([]module.Hom, g.NGens())
	for l := 1; l <= g.NGens(); l++ {
		var act module.Hom
		for i := 0; i < k; i++ {
			x := g.Mul(trans[i], g.Gen(l))
			term, err := gm.cosetTerm(g, sum, trans, pre, x, i)
			if err != nil {
				return nil, nil, err
			}
			if act == nil {
				act = term
			} else {
				act, err = module.Add(act, term)
				if err != nil {
					return nil, nil, err
				}
			}
		}
		acts[l-1] = act
	}

	out, err := New(g, sum.Mod, acts)
	if err != nil {
		return nil, nil, err
	}
	return out, sum, nil
}

// cosetTerm locates the coset of x, splits off its H-part, and routes
// slot i of the sum to the located slot through that part's action.
func (gm *GModule) cosetTerm(g *grp.Group, sum *module.Sum, trans []grp.El, pre map[string]grp.El, x grp.El, i int) (module.Hom, error) {
	for j := range trans {
		h, ok := pre[g.Mul(x, g.Inv(trans[j])).Key()]
		if !ok {
			continue
		}
		a, err := gm.Act(h)
		if err != nil {
			return nil, err
		}
		return chain(sum.Pro[i], a, sum.Inj[j])
	}
	return nil, errors.New("gmod: transversal does not cover a coset")
}

// chain composes homs left to right.
func chain(homs ...module.Hom) (module.Hom, error) {
	acc := homs[0]
	var err error
	for _, h := range homs[1:] {
		acc, err = module.Compose(acc, h)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
