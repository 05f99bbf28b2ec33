package frmod

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/coh/module"
)

// Hom is a linear map between spaces, stored as the matrix of basis
// images (row i is the image of the i-th domain basis vector).
type Hom struct {
	dom *Space
	cod *Space
	m   [][]fr.Element
}

// Hom builds the linear map sending the i-th basis vector to images[i].
func (s *Space) Hom(codomain module.Module, images []module.Elem) (module.Hom, error) {
	cod, ok := codomain.(*Space)
	if !ok {
		return nil, errors.New("frmod: codomain uses a different representation")
	}
	if len(images) != s.dim {
		return nil, fmt.Errorf("frmod: got %d basis images, want %d", len(images), s.dim)
	}
	m := make([][]fr.Element, s.dim)
	for i, img := range images {
		e, ok := img.(*Elem)
		if !ok || e.s != cod {
			return nil, fmt.Errorf("frmod: image %d does not belong to the codomain", i)
		}
		m[i] = append([]fr.Element(nil), e.v...)
	}
	return &Hom{dom: s, cod: cod, m: m}, nil
}

// Domain returns the source space.
func (h *Hom) Domain() module.Module { return h.dom }

// Codomain returns the target space.
func (h *Hom) Codomain() module.Module { return h.cod }

// Apply maps an element of the domain.
func (h *Hom) Apply(a module.Elem) module.Elem {
	x := h.dom.own(a).v
	v := make([]fr.Element, h.cod.dim)
	var t fr.Element
	for i := range x {
		if x[i].IsZero() {
			continue
		}
		for j := 0; j < h.cod.dim; j++ {
			t.Mul(&x[i], &h.m[i][j])
			v[j].Add(&v[j], &t)
		}
	}
	return &Elem{s: h.cod, v: v}
}

// Preimage solves h(x) = b, reporting false when b is outside the
// image.
func (h *Hom) Preimage(b module.Elem) (module.Elem, bool) {
	bv := h.cod.own(b).v
	x, ok := solveLeft(h.m, h.dom.dim, h.cod.dim, bv)
	if !ok {
		return nil, false
	}
	return &Elem{s: h.dom, v: x}, true
}

// Kernel returns the null space with its embedding.
func (h *Hom) Kernel() (module.Module, module.Hom, error) {
	basis := leftNullspace(h.m, h.dom.dim, h.cod.dim)
	sub := NewSpace(len(basis))
	return sub, &Hom{dom: sub, cod: h.dom, m: basis}, nil
}

// Image returns the row space with its embedding.
func (h *Hom) Image() (module.Module, module.Hom, error) {
	basis := rowBasis(h.m, h.cod.dim)
	sub := NewSpace(len(basis))
	return sub, &Hom{dom: sub, cod: h.cod, m: basis}, nil
}

// Quotient returns the quotient by the span of gens, with the
// projection map.
func (s *Space) Quotient(gens []module.Elem) (module.Linear, module.Hom, error) {
	rows := make([][]fr.Element, len(gens))
	for i, g := range gens {
		rows[i] = append([]fr.Element(nil), s.own(g).v...)
	}
	basis := rowBasis(rows, s.dim)
	r := len(basis)

	// Complete the subspace basis to a basis of the whole space with
	// standard vectors on the non-pivot coordinates.
	pivots := make(map[int]bool, r)
	for _, row := range basis {
		for j := 0; j < s.dim; j++ {
			if !row[j].IsZero() {
				pivots[j] = true
				break
			}
		}
	}
	full := append([][]fr.Element(nil), basis...)
	for j := 0; j < s.dim; j++ {
		if !pivots[j] {
			e := make([]fr.Element, s.dim)
			e[j].SetOne()
			full = append(full, e)
		}
	}
	if len(full) != s.dim {
		return nil, nil, errors.New("frmod: basis completion failed")
	}
	inv, ok := invert(full, s.dim)
	if !ok {
		return nil, nil, errors.New("frmod: basis completion is singular")
	}
	// Quotient coordinates of v are the last dim-r entries of v*inv.
	q := NewSpace(s.dim - r)
	proj := make([][]fr.Element, s.dim)
	for i := 0; i < s.dim; i++ {
		proj[i] = append([]fr.Element(nil), inv[i][r:]...)
	}
	return q, &Hom{dom: s, cod: q, m: proj}, nil
}

// DirectSum returns the direct sum with injections and projections.
func (s *Space) DirectSum(others ...module.Linear) (*module.Sum, error) {
	parts := []*Space{s}
	for _, o := range others {
		sp, ok := o.(*Space)
		if !ok {
			return nil, errors.New("frmod: direct sum across representations")
		}
		parts = append(parts, sp)
	}
	total := 0
	for _, p := range parts {
		total += p.dim
	}
	sum := NewSpace(total)
	res := &module.Sum{Mod: sum}
	off := 0
	for _, p := range parts {
		inj := make([][]fr.Element, p.dim)
		for j := 0; j < p.dim; j++ {
			inj[j] = make([]fr.Element, total)
			inj[j][off+j].SetOne()
		}
		pro := make([][]fr.Element, total)
		for j := 0; j < total; j++ {
			pro[j] = make([]fr.Element, p.dim)
			if j >= off && j < off+p.dim {
				pro[j][j-off].SetOne()
			}
		}
		res.Inj = append(res.Inj, &Hom{dom: p, cod: sum, m: inj})
		res.Pro = append(res.Pro, &Hom{dom: sum, cod: p, m: pro})
		off += p.dim
	}
	return res, nil
}

var (
	_ module.Linear = (*Space)(nil)
	_ module.Hom    = (*Hom)(nil)
	_ module.Elem   = (*Elem)(nil)
)
