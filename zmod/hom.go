package zmod

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/coh/module"
)

// Hom is a homomorphism between two Abelian modules, stored as the
// matrix of generator images (row i is the image of the i-th domain
// generator, in codomain coordinates).
type Hom struct {
	dom *Abelian
	cod *Abelian
	m   mat
}

// Hom builds the homomorphism sending the i-th generator of m to
// images[i]. It verifies that the relations of m map to zero, so the
// assignment is well defined; a violating assignment is an error.
func (m *Abelian) Hom(codomain module.Module, images []module.Elem) (module.Hom, error) {
	cod, ok := codomain.(*Abelian)
	if !ok {
		return nil, errors.New("zmod: codomain uses a different representation")
	}
	if len(images) != m.n {
		return nil, fmt.Errorf("zmod: got %d generator images, want %d", len(images), m.n)
	}
	mm := make(mat, m.n)
	for i, img := range images {
		e, ok := img.(*Elem)
		if !ok || e.m != cod {
			return nil, fmt.Errorf("zmod: image %d does not belong to the codomain", i)
		}
		mm[i] = cloneVec(e.c)
	}
	h := &Hom{dom: m, cod: cod, m: mm}
	for i, rel := range m.rels {
		img := vecMat(rel, mm, cod.n)
		if !isZeroVec(cod.canonical(img)) {
			return nil, fmt.Errorf("zmod: generator images violate relation %d", i)
		}
	}
	return h, nil
}

// MatrixHom builds a homomorphism directly from int64 rows, mostly for
// tests. rows[i] is the image of generator i in codomain coordinates.
func MatrixHom(dom, cod *Abelian, rows [][]int64) (module.Hom, error) {
	images := make([]module.Elem, len(rows))
	for i, r := range rows {
		images[i] = cod.Of(r...)
	}
	return dom.Hom(cod, images)
}

// Domain returns the source module.
func (h *Hom) Domain() module.Module { return h.dom }

// Codomain returns the target module.
func (h *Hom) Codomain() module.Module { return h.cod }

// Apply maps an element of the domain.
func (h *Hom) Apply(a module.Elem) module.Elem {
	e := h.dom.own(a)
	return &Elem{m: h.cod, c: vecMat(e.c, h.m, h.cod.n)}
}

// Preimage finds some x with h(x) == b. Solutions are sought modulo the
// codomain's relations; ok is false when b is not in the image.
func (h *Hom) Preimage(b module.Elem) (module.Elem, bool) {
	e := h.cod.own(b)
	a := stack(h.m, h.cod.rels)
	x, ok := solveLeft(a, h.cod.n, e.c)
	if !ok {
		return nil, false
	}
	return &Elem{m: h.dom, c: cloneVec(x[:h.dom.n])}, true
}

// Kernel computes the kernel of h as a module with an embedding into
// the domain.
func (h *Hom) Kernel() (module.Module, module.Hom, error) {
	full := leftKernel(stack(h.m, h.cod.rels), h.cod.n)
	var gens mat
	for _, row := range full {
		g := row[:h.dom.n]
		if !isZeroVec(g) {
			gens = append(gens, cloneVec(g))
		}
	}
	return h.dom.submodule(gens)
}

// Image computes the image of h as a module with an embedding into the
// codomain.
func (h *Hom) Image() (module.Module, module.Hom, error) {
	return h.cod.submodule(cloneMat(h.m))
}

// submodule builds the subgroup of m generated by the given coordinate
// rows, as an Abelian of its own with an embedding hom into m.
func (m *Abelian) submodule(gens mat) (module.Module, module.Hom, error) {
	g := len(gens)
	var rels mat
	for _, row := range leftKernel(stack(gens, m.rels), m.n) {
		r := row[:g]
		if !isZeroVec(r) {
			rels = append(rels, cloneVec(r))
		}
	}
	sub := newBig(g, rels)
	emb := &Hom{dom: sub, cod: m, m: cloneMat(gens)}
	return sub, emb, nil
}

// Sub returns the submodule of m generated by the given elements,
// together with its embedding.
func (m *Abelian) Sub(gens []module.Elem) (module.Module, module.Hom, error) {
	rows := make(mat, len(gens))
	for i, g := range gens {
		rows[i] = cloneVec(m.own(g).c)
	}
	return m.submodule(rows)
}

// Contains reports whether a lies in the submodule generated by gens,
// returning its expression in those generators when it does.
func (m *Abelian) Contains(gens []module.Elem, a module.Elem) (module.Elem, bool) {
	_, emb, err := m.Sub(gens)
	if err != nil {
		return nil, false
	}
	return emb.Preimage(a)
}

// ensure interface compliance
var (
	_ module.Linear = (*Abelian)(nil)
	_ module.Hom    = (*Hom)(nil)
	_ module.Elem   = (*Elem)(nil)

	_ module.ExponentAnnotator = (*Abelian)(nil)
)

// Matrix returns a copy of the underlying matrix of h (rows are images
// of domain generators).
func (h *Hom) Matrix() [][]*big.Int { return cloneMat(h.m) }
