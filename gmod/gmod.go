package gmod

import (
	"errors"
	"fmt"

	"github.com/f3rmion/coh/grp"
	"github.com/f3rmion/coh/module"
	"github.com/f3rmion/coh/word"
)

// GModule is a right G-module: a module together with one invertible
// action homomorphism per group generator. The action of an arbitrary
// element is the left-to-right composite over its normal-form word, so
// Act(u*v) is "Act(u) then Act(v)".
type GModule struct {
	g    *grp.Group
	m    module.Module
	acts []module.Hom

	inv     []module.Hom          // lazy per-generator inverse actions
	actMemo map[string]module.Hom // normal-form key -> action
	memo    map[string]any        // solver-owned caches
}

// New builds a G-module over g from per-generator actions. acts[i] is
// the action of the (i+1)-th generator and must be an endomorphism of
// m. Whether the actions satisfy the relators of g is not checked
// here; call [GModule.Check] for that.
func New(g *grp.Group, m module.Module, acts []module.Hom) (*GModule, error) {
	if len(acts) != g.NGens() {
		return nil, fmt.Errorf("gmod: need %d generator actions, got %d", g.NGens(), len(acts))
	}
	for i, a := range acts {
		if a.Domain() != m || a.Codomain() != m {
			return nil, fmt.Errorf("gmod: action of generator %d is not an endomorphism of the module", i+1)
		}
	}
	return &GModule{
		g:       g,
		m:       m,
		acts:    acts,
		inv:     make([]module.Hom, len(acts)),
		actMemo: map[string]module.Hom{},
		memo:    map[string]any{},
	}, nil
}

// Trivial builds the G-module with every generator acting as the
// identity.
func Trivial(g *grp.Group, m module.Module) *GModule {
	acts := make([]module.Hom, g.NGens())
	for i := range acts {
		acts[i] = &seqHom{m: m}
	}
	gm, err := New(g, m, acts)
	if err != nil {
		panic(err)
	}
	return gm
}

// Group returns the acting group.
func (gm *GModule) Group() *grp.Group { return gm.g }

// Module returns the coefficient module.
func (gm *GModule) Module() module.Module { return gm.m }

// GenAct returns the action of the i-th generator, 1-based.
func (gm *GModule) GenAct(i int) module.Hom { return gm.acts[i-1] }

// Memo returns the solver cache slot for key.
func (gm *GModule) Memo(key string) (any, bool) {
	v, ok := gm.memo[key]
	return v, ok
}

// SetMemo stores a solver result under key.
func (gm *GModule) SetMemo(key string, v any) { gm.memo[key] = v }

// letterAct resolves the action of a single signed letter.
func (gm *GModule) letterAct(l int) (module.Hom, error) {
	if l > 0 {
		return gm.acts[l-1], nil
	}
	i := -l
	if gm.inv[i-1] != nil {
		return gm.inv[i-1], nil
	}
	h, err := gm.invert(i)
	if err != nil {
		return nil, err
	}
	gm.inv[i-1] = h
	return h, nil
}

// invert computes the action of x_i^-1. For linear coefficients the
// inverse hom is read off from generator preimages, so it works even
// when x_i has infinite order. Otherwise the action of x_i is raised
// to ord(x_i)-1, which needs the order to be finite.
func (gm *GModule) invert(i int) (module.Hom, error) {
	if lin, ok := gm.m.(module.Linear); ok {
		gens := lin.Gens()
		images := make([]module.Elem, len(gens))
		for j, x := range gens {
			y, ok := gm.acts[i-1].Preimage(x)
			if !ok {
				return nil, fmt.Errorf("gmod: action of generator %d is not invertible", i)
			}
			images[j] = y
		}
		return lin.Hom(gm.m, images)
	}
	n, err := gm.g.ElOrder(gm.g.Gen(i), 0)
	if err != nil {
		return nil, err
	}
	steps := make([]module.Hom, n-1)
	for j := range steps {
		steps[j] = gm.acts[i-1]
	}
	return gm.materialize(steps)
}

// materialize turns a composition chain into a single hom: a native
// generator-image hom when the module is linear, a lazy sequential hom
// otherwise.
func (gm *GModule) materialize(steps []module.Hom) (module.Hom, error) {
	lin, ok := gm.m.(module.Linear)
	if !ok {
		return &seqHom{m: gm.m, steps: steps}, nil
	}
	gens := lin.Gens()
	images := make([]module.Elem, len(gens))
	for i, x := range gens {
		for _, s := range steps {
			x = s.Apply(x)
		}
		images[i] = x
	}
	return lin.Hom(gm.m, images)
}

// ActWord returns the action of an arbitrary word, signed letters
// composed left to right.
func (gm *GModule) ActWord(w word.Word) (module.Hom, error) {
	steps := make([]module.Hom, len(w))
	for i, l := range w {
		h, err := gm.letterAct(l)
		if err != nil {
			return nil, err
		}
		steps[i] = h
	}
	return gm.materialize(steps)
}

// Act returns the action of a group element, memoized on its normal
// form.
func (gm *GModule) Act(e grp.El) (module.Hom, error) {
	key := e.Key()
	if h, ok := gm.actMemo[key]; ok {
		return h, nil
	}
	h, err := gm.ActWord(e.Word())
	if err != nil {
		return nil, err
	}
	gm.actMemo[key] = h
	return h, nil
}

// Apply acts with e on a module element.
func (gm *GModule) Apply(e grp.El, a module.Elem) (module.Elem, error) {
	h, err := gm.Act(e)
	if err != nil {
		return nil, err
	}
	return h.Apply(a), nil
}

// Check verifies that the generator actions respect every relator of
// the group, on the module's generators. A failure means the input did
// not describe a G-module at all.
func (gm *GModule) Check() error {
	for _, rel := range gm.g.Relators() {
		h, err := gm.ActWord(rel)
		if err != nil {
			return err
		}
		for _, x := range gm.m.Gens() {
			if !gm.m.Equal(h.Apply(x), x) {
				return fmt.Errorf("gmod: relator %v does not act trivially", rel)
			}
		}
	}
	return nil
}

// seqHom composes homs left to right without assuming linear
// structure. An empty chain is the identity.
type seqHom struct {
	m     module.Module
	steps []module.Hom
}

func (s *seqHom) Domain() module.Module   { return s.m }
func (s *seqHom) Codomain() module.Module { return s.m }

func (s *seqHom) Apply(a module.Elem) module.Elem {
	for _, h := range s.steps {
		a = h.Apply(a)
	}
	return a
}

func (s *seqHom) Preimage(b module.Elem) (module.Elem, bool) {
	for i := len(s.steps) - 1; i >= 0; i-- {
		var ok bool
		b, ok = s.steps[i].Preimage(b)
		if !ok {
			return nil, false
		}
	}
	return b, true
}

func (s *seqHom) Kernel() (module.Module, module.Hom, error) {
	return nil, nil, errors.New("gmod: kernel of a lazy action chain")
}

func (s *seqHom) Image() (module.Module, module.Hom, error) {
	return nil, nil, errors.New("gmod: image of a lazy action chain")
}

var _ module.Hom = (*seqHom)(nil)
