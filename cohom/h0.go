package cohom

import (
	"errors"
	"math/big"

	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/module"
)

var errNormOutsideFixed = errors.New("cohom: norm image escaped the fixed points; action is inconsistent")

// H0Result is the fixed-point module M^G together with its embedding
// into M.
type H0Result struct {
	gm    *gmod.GModule
	fixed module.Module
	emb   module.Hom
}

// H0 computes the fixed points: the kernel of the stacked maps
// m -> act(x_i)(m) - m over the generators.
func H0(gm *gmod.GModule) (*H0Result, error) {
	lin, ok := gm.Module().(module.Linear)
	if !ok {
		return nil, ErrNotLinear
	}
	n := gm.Group().NGens()
	if n == 0 {
		return &H0Result{gm: gm, fixed: lin, emb: module.Identity(lin)}, nil
	}
	homs := make([]module.Hom, n)
	for i := 1; i <= n; i++ {
		h, err := module.Sub(gm.GenAct(i), module.Identity(lin))
		if err != nil {
			return nil, err
		}
		homs[i-1] = h
	}
	stacked, _, err := module.Tuple(homs)
	if err != nil {
		return nil, err
	}
	fixed, emb, err := stacked.Kernel()
	if err != nil {
		return nil, err
	}
	return &H0Result{gm: gm, fixed: fixed, emb: emb}, nil
}

// Module returns M^G.
func (r *H0Result) Module() module.Module { return r.fixed }

// Embedding returns the inclusion M^G -> M.
func (r *H0Result) Embedding() module.Hom { return r.emb }

// IsFixed reports whether a module element is G-invariant, returning
// its preimage in the fixed-point module when it is.
func (r *H0Result) IsFixed(a module.Elem) (module.Elem, bool) {
	return r.emb.Preimage(a)
}

// TateResult is the Tate quotient in degree 0: fixed points modulo the
// image of the norm.
type TateResult struct {
	gm   *gmod.GModule
	h    module.Linear
	proj module.Hom // M^G -> H
	norm module.Hom // M -> M
	h0   *H0Result
}

// H0Tate computes M^G / N(M) for the norm N(m) = sum over the whole
// group of act(g)(m). The group is enumerated, so it must be finite,
// and the result is annotated with the group order as an exponent
// hint.
func H0Tate(gm *gmod.GModule) (*TateResult, error) {
	lin, ok := gm.Module().(module.Linear)
	if !ok {
		return nil, ErrNotLinear
	}
	h0, err := H0(gm)
	if err != nil {
		return nil, err
	}
	els, err := gm.Group().Elements(0)
	if err != nil {
		return nil, err
	}

	gens := lin.Gens()
	images := make([]module.Elem, len(gens))
	for i, x := range gens {
		acc := lin.Zero()
		for _, g := range els {
			v, err := gm.Apply(g, x)
			if err != nil {
				return nil, err
			}
			acc = lin.Add(acc, v)
		}
		images[i] = acc
	}
	norm, err := lin.Hom(lin, images)
	if err != nil {
		return nil, err
	}

	fixedLin, ok := h0.fixed.(module.Linear)
	if !ok {
		return nil, ErrNotLinear
	}
	qgens := make([]module.Elem, len(gens))
	for i := range gens {
		lift, ok := h0.emb.Preimage(images[i])
		if !ok {
			return nil, errNormOutsideFixed
		}
		qgens[i] = lift
	}
	h, proj, err := fixedLin.Quotient(qgens)
	if err != nil {
		return nil, err
	}
	annotateOrder(h, len(els))
	return &TateResult{gm: gm, h: h, proj: proj, norm: norm, h0: h0}, nil
}

// Module returns the Tate quotient.
func (r *TateResult) Module() module.Linear { return r.h }

// Norm returns the norm map M -> M.
func (r *TateResult) Norm() module.Hom { return r.norm }

// ClassOf maps a fixed element of M to its Tate class.
func (r *TateResult) ClassOf(a module.Elem) (module.Elem, bool) {
	lift, ok := r.h0.emb.Preimage(a)
	if !ok {
		return nil, false
	}
	return r.proj.Apply(lift), true
}

func annotateOrder(m module.Module, order int) {
	if ann, ok := m.(module.ExponentAnnotator); ok {
		ann.AnnotateExponent(big.NewInt(int64(order)))
	}
}
