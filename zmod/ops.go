package zmod

import (
	"errors"
	"math/big"

	"github.com/f3rmion/coh/module"
)

// Quotient returns the quotient of m by the submodule generated by
// gens, with the projection map. Quotient generators correspond to
// those of m, so the projection matrix is the identity and its
// Preimage lifts representatives for free.
func (m *Abelian) Quotient(gens []module.Elem) (module.Linear, module.Hom, error) {
	rels := cloneMat(m.rels)
	for _, g := range gens {
		rels = append(rels, cloneVec(m.own(g).c))
	}
	q := newBig(m.n, rels)
	proj := &Hom{dom: m, cod: q, m: eye(m.n)}
	return q, proj, nil
}

// DirectSum returns the direct sum of m with others, with injections
// and projections per summand.
func (m *Abelian) DirectSum(others ...module.Linear) (*module.Sum, error) {
	parts := make([]*Abelian, 0, len(others)+1)
	parts = append(parts, m)
	for _, o := range others {
		a, ok := o.(*Abelian)
		if !ok {
			return nil, errors.New("zmod: direct sum across representations")
		}
		parts = append(parts, a)
	}
	total := 0
	for _, p := range parts {
		total += p.n
	}
	var rels mat
	off := 0
	for _, p := range parts {
		for _, row := range p.rels {
			r := zeroVec(total)
			for j, x := range row {
				r[off+j].Set(x)
			}
			rels = append(rels, r)
		}
		off += p.n
	}
	sum := newBig(total, rels)
	res := &module.Sum{Mod: sum}
	off = 0
	for _, p := range parts {
		inj := newMat(p.n, total)
		pro := newMat(total, p.n)
		for j := 0; j < p.n; j++ {
			inj[j][off+j].SetInt64(1)
			pro[off+j][j].SetInt64(1)
		}
		res.Inj = append(res.Inj, &Hom{dom: p, cod: sum, m: inj})
		res.Pro = append(res.Pro, &Hom{dom: sum, cod: p, m: pro})
		off += p.n
	}
	return res, nil
}

// Power returns the direct sum of k copies of m. For k = 0 the result
// is the trivial module with no generators and identity-free maps.
func (m *Abelian) Power(k int) (*module.Sum, error) {
	if k == 0 {
		return &module.Sum{Mod: Free(0)}, nil
	}
	others := make([]module.Linear, k-1)
	for i := range others {
		others[i] = m
	}
	return m.DirectSum(others...)
}

// Decomposition describes a module as a direct sum of cyclic groups:
// Gens[i] is an element of the original module of order Orders[i]
// (0 meaning infinite), the generators are independent, and Coords
// expresses any element in them.
type Decomposition struct {
	Gens   []*Elem
	Orders []*big.Int
	mod    *Abelian
	keep   []int // smith-basis indices of the kept factors
}

// CyclicDecomposition computes the invariant-factor decomposition of m.
// This is the "simplify" operation: the decomposition generators and
// orders give a canonical presentation of the module.
func (m *Abelian) CyclicDecomposition() *Decomposition {
	s := m.smithRels()
	d := &Decomposition{mod: m}
	one := big.NewInt(1)
	for i := 0; i < m.n; i++ {
		var ord *big.Int
		if i < len(s.d) && i < s.rank {
			if s.d[i].Cmp(one) == 0 {
				continue
			}
			ord = new(big.Int).Set(s.d[i])
		} else {
			ord = new(big.Int)
		}
		d.keep = append(d.keep, i)
		d.Orders = append(d.Orders, ord)
		d.Gens = append(d.Gens, &Elem{m: m, c: cloneVec(s.Vinv[i])})
	}
	return d
}

// Coords expresses a in the decomposition generators, torsion
// coordinates reduced into [0, order).
func (d *Decomposition) Coords(a module.Elem) []*big.Int {
	y := d.mod.canonical(d.mod.own(a).c)
	out := make([]*big.Int, len(d.keep))
	for t, i := range d.keep {
		out[t] = new(big.Int).Set(y[i])
	}
	return out
}
