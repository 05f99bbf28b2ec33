package cohom

import (
	"errors"
	"fmt"

	"github.com/f3rmion/coh/cochain"
	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/grp"
	"github.com/f3rmion/coh/module"
	"github.com/f3rmion/coh/word"
	"github.com/f3rmion/coh/zmod"
)

// Extension is the group extension of G by M determined by a
// normalized 2-cocycle: elements multiply by
//
//	(g1, m1)(g2, m2) = (g1 g2, act(g2)(m1) + m2 + c(g1, g2)).
//
// The extension is realized as a rewriting-system group over the G
// letters followed by one letter per cyclic factor of M.
type Extension struct {
	gm  *gmod.GModule
	c   *cochain.Cochain
	e   *grp.Group
	r   int
	dec *zmod.Decomposition
	prj *grp.Morphism
}

// Extend builds the extension directly on the group's own confluent
// rules: every rule's right side is decorated by the module word its
// tail demands, and module letters collect to the right of the group
// letters. The coefficient module must be finite integral; for a free
// part use [ExtendGeneric].
func Extend(gm *gmod.GModule, c *cochain.Cochain) (*Extension, error) {
	x, err := newExtension(gm, c)
	if err != nil {
		return nil, err
	}
	for _, o := range x.dec.Orders {
		if o.Sign() == 0 {
			return nil, errors.New("cohom: direct extension needs finite coefficients")
		}
	}

	var rules []word.Rule
	for _, rule := range gm.Group().System().Rules() {
		tw, err := x.tailWord(rule)
		if err != nil {
			return nil, err
		}
		rules = append(rules, word.Rule{LHS: rule.LHS.Clone(), RHS: rule.RHS.Concat(tw)})
	}
	rules = append(rules, x.moduleRules()...)
	cj, err := x.conjugationRules()
	if err != nil {
		return nil, err
	}
	rules = append(rules, cj...)

	sys, err := word.NewSystem(x.r+len(x.dec.Gens), rules)
	if err != nil {
		return nil, err
	}
	if x.e, err = grp.New(sys); err != nil {
		return nil, err
	}
	return x, x.finish()
}

// ExtendGeneric builds the extension from a presentation: the lifted
// group relators, the module relators, and the conjugation relators,
// completed with Knuth-Bendix. Slower than [Extend] but indifferent to
// the shape of the input system and to free coefficient factors.
// maxRules <= 0 selects [word.DefaultMaxRules].
func ExtendGeneric(gm *gmod.GModule, c *cochain.Cochain, maxRules int) (*Extension, error) {
	x, err := newExtension(gm, c)
	if err != nil {
		return nil, err
	}
	var relators []word.Word
	for _, rule := range gm.Group().System().Rules() {
		tw, err := x.tailWord(rule)
		if err != nil {
			return nil, err
		}
		relators = append(relators, rule.LHS.Concat(rule.RHS.Concat(tw).Inverse()))
	}
	for j, o := range x.dec.Orders {
		if o.Sign() != 0 {
			relators = append(relators, word.Word{x.r + 1 + j}.Pow(int(o.Int64())))
		}
		for k := j + 1; k < len(x.dec.Orders); k++ {
			relators = append(relators, word.Word{x.r + 1 + k, x.r + 1 + j, -(x.r + 1 + k), -(x.r + 1 + j)})
		}
	}
	for j := range x.dec.Gens {
		for i := 1; i <= x.r; i++ {
			img, err := x.gm.Apply(x.gm.Group().Gen(i), x.dec.Gens[j])
			if err != nil {
				return nil, err
			}
			rhs := word.Word{i}.Concat(x.mword(img))
			relators = append(relators, word.Word{x.r + 1 + j, i}.Concat(rhs.Inverse()))
		}
	}
	if x.e, err = grp.FromPresentation(x.r+len(x.dec.Gens), relators, maxRules); err != nil {
		return nil, err
	}
	return x, x.finish()
}

func newExtension(gm *gmod.GModule, c *cochain.Cochain) (*Extension, error) {
	if c.Degree() != 2 {
		return nil, fmt.Errorf("cohom: extension from a degree-%d cochain", c.Degree())
	}
	m, ok := gm.Module().(*zmod.Abelian)
	if !ok {
		return nil, errors.New("cohom: extension builder needs integral coefficients")
	}
	return &Extension{
		gm:  gm,
		c:   c,
		r:   gm.Group().NGens(),
		dec: m.CyclicDecomposition(),
	}, nil
}

// finish wires the projection morphism, which doubles as a relator
// check on the assembled group.
func (x *Extension) finish() error {
	g := x.gm.Group()
	images := make([]grp.El, x.r+len(x.dec.Gens))
	for i := 1; i <= x.r; i++ {
		images[i-1] = g.Gen(i)
	}
	for j := range x.dec.Gens {
		images[x.r+j] = g.Id()
	}
	prj, err := grp.NewMorphism(x.e, g, images)
	if err != nil {
		return fmt.Errorf("cohom: assembled extension is inconsistent: %w", err)
	}
	x.prj = prj
	return nil
}

// tailWord computes the module word a group rule must append: the
// difference of the decorated values of its two sides under the
// extension law.
func (x *Extension) tailWord(rule word.Rule) (word.Word, error) {
	m := x.gm.Module()
	gl, vl, err := x.foldG(rule.LHS)
	if err != nil {
		return nil, err
	}
	gr, vr, err := x.foldG(rule.RHS)
	if err != nil {
		return nil, err
	}
	if !x.gm.Group().Equal(gl, gr) {
		return nil, errors.New("cohom: rewriting rule does not hold in the group")
	}
	return x.mword(m.Add(vl, m.Neg(vr))), nil
}

// foldG multiplies out a word over the group letters in the extension,
// lifting each generator with zero decoration and each inverse letter
// with the decoration the extension law forces on it.
func (x *Extension) foldG(w word.Word) (grp.El, module.Elem, error) {
	g := x.gm.Group()
	m := x.gm.Module()
	cg, v := g.Id(), m.Zero()
	for _, l := range w {
		if l > x.r || l < -x.r {
			return grp.El{}, nil, errors.New("cohom: module letter in a group word")
		}
		var err error
		if cg, v, err = x.foldLetter(cg, v, l); err != nil {
			return grp.El{}, nil, err
		}
	}
	return cg, v, nil
}

func (x *Extension) foldLetter(cg grp.El, v module.Elem, l int) (grp.El, module.Elem, error) {
	g := x.gm.Group()
	m := x.gm.Module()
	switch {
	case l >= 1 && l <= x.r:
		gl := g.Gen(l)
		av, err := x.gm.Apply(gl, v)
		if err != nil {
			return grp.El{}, nil, err
		}
		cv, err := x.c.AtPair(cg, gl)
		if err != nil {
			return grp.El{}, nil, err
		}
		return g.Mul(cg, gl), m.Add(av, cv), nil
	case l <= -1 && l >= -x.r:
		gi := g.Gen(-l)
		ginv := g.Inv(gi)
		av, err := x.gm.Apply(ginv, v)
		if err != nil {
			return grp.El{}, nil, err
		}
		// (x, 0)^-1 = (x^-1, -c(x, x^-1)).
		uv, err := x.c.AtPair(gi, ginv)
		if err != nil {
			return grp.El{}, nil, err
		}
		cv, err := x.c.AtPair(cg, ginv)
		if err != nil {
			return grp.El{}, nil, err
		}
		return g.Mul(cg, ginv), m.Add(m.Add(av, m.Neg(uv)), cv), nil
	case l > x.r:
		return cg, m.Add(v, x.dec.Gens[l-x.r-1]), nil
	default:
		return cg, m.Add(v, m.Neg(x.dec.Gens[-l-x.r-1])), nil
	}
}

// mword renders a module element as a canonical word in the module
// letters.
func (x *Extension) mword(a module.Elem) word.Word {
	var w word.Word
	for j, cj := range x.dec.Coords(a) {
		letter := x.r + 1 + j
		n := cj.Int64()
		if n < 0 {
			letter, n = -letter, -n
		}
		for t := int64(0); t < n; t++ {
			w = append(w, letter)
		}
	}
	return w
}

// moduleRules are the power, inverse and commuting rules of the module
// letters for the direct assembly.
func (x *Extension) moduleRules() []word.Rule {
	var rules []word.Rule
	for j, o := range x.dec.Orders {
		letter := x.r + 1 + j
		n := int(o.Int64())
		rules = append(rules,
			word.Rule{LHS: word.Word{letter}.Pow(n)},
			word.Rule{LHS: word.Word{-letter}, RHS: word.Word{letter}.Pow(n - 1)},
		)
		for k := 0; k < j; k++ {
			low := x.r + 1 + k
			rules = append(rules, word.Rule{LHS: word.Word{letter, low}, RHS: word.Word{low, letter}})
		}
	}
	return rules
}

// conjugationRules move module letters rightward past group letters,
// twisting by the action. Letters eliminated by a single-letter group
// rule get no rule of their own; reduction removes them first.
func (x *Extension) conjugationRules() ([]word.Rule, error) {
	single := map[int]bool{}
	for _, rule := range x.gm.Group().System().Rules() {
		if len(rule.LHS) == 1 {
			single[rule.LHS[0]] = true
		}
	}
	var rules []word.Rule
	for j := range x.dec.Gens {
		letter := x.r + 1 + j
		for i := 1; i <= x.r; i++ {
			for _, l := range []int{i, -i} {
				if single[l] {
					continue
				}
				h, err := x.gm.ActWord(word.Word{l})
				if err != nil {
					return nil, err
				}
				rhs := word.Word{l}.Concat(x.mword(h.Apply(x.dec.Gens[j])))
				rules = append(rules, word.Rule{LHS: word.Word{letter, l}, RHS: rhs})
			}
		}
	}
	return rules, nil
}

// Group returns the extension group.
func (x *Extension) Group() *grp.Group { return x.e }

// Pair returns the extension element (g, m).
func (x *Extension) Pair(g grp.El, m module.Elem) grp.El {
	return x.e.Of(g.Word().Concat(x.mword(m)))
}

// Inject embeds a module element as (1, m).
func (x *Extension) Inject(m module.Elem) grp.El {
	return x.e.Of(x.mword(m))
}

// Project maps an extension element onto its G-part.
func (x *Extension) Project(e grp.El) grp.El { return x.prj.Apply(e) }

// Split decomposes an extension element into its (g, m) pair by
// folding the extension law over its word.
func (x *Extension) Split(e grp.El) (grp.El, module.Elem, error) {
	cg, v := x.gm.Group().Id(), x.gm.Module().Zero()
	for _, l := range e.Word() {
		var err error
		if cg, v, err = x.foldLetter(cg, v, l); err != nil {
			return grp.El{}, nil, err
		}
	}
	return cg, v, nil
}
