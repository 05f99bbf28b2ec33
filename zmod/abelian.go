package zmod

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/f3rmion/coh/module"
)

// Abelian is a finitely generated abelian group, presented by n
// generators and a list of integer relation rows. Elements carry
// coordinates in the generators; equality is decided modulo the
// relation lattice through a cached Smith normal form.
//
// Abelian implements [module.Linear]. It is the workhorse module
// representation of the cohomology engine.
type Abelian struct {
	n    int
	rels mat
	exp  *big.Int
	sm   *smith
}

// New creates the abelian group with n generators and the given
// relations, each relation a row of n coefficients.
func New(n int, rels [][]int64) *Abelian {
	m := make(mat, len(rels))
	for i, row := range rels {
		if len(row) != n {
			panic(fmt.Sprintf("zmod: relation %d has %d entries, want %d", i, len(row), n))
		}
		m[i] = make([]*big.Int, n)
		for j, x := range row {
			m[i][j] = big.NewInt(x)
		}
	}
	return &Abelian{n: n, rels: m}
}

// newBig builds an Abelian from prepared big-integer relation rows.
// The rows are owned by the new module.
func newBig(n int, rels mat) *Abelian {
	return &Abelian{n: n, rels: rels}
}

// Free returns the free abelian group of the given rank.
func Free(rank int) *Abelian { return New(rank, nil) }

// Z returns the infinite cyclic group.
func Z() *Abelian { return Free(1) }

// Cyclic returns the cyclic group of order d (d = 0 gives Z).
func Cyclic(d int64) *Abelian {
	if d == 0 {
		return Z()
	}
	return New(1, [][]int64{{d}})
}

// NGens returns the number of generators of the presentation.
func (m *Abelian) NGens() int { return m.n }

func (m *Abelian) smithRels() *smith {
	if m.sm == nil {
		m.sm = snf(m.rels, m.n)
	}
	return m.sm
}

// canonical returns the canonical coordinate vector of c in the Smith
// basis: torsion coordinates reduced into [0, d), free coordinates
// unchanged.
func (m *Abelian) canonical(c []*big.Int) []*big.Int {
	s := m.smithRels()
	y := vecMat(c, s.V, m.n)
	for i := 0; i < s.rank; i++ {
		y[i].Mod(y[i], s.d[i])
	}
	return y
}

// Elem is an element of an [Abelian], stored as generator coordinates.
type Elem struct {
	m *Abelian
	c []*big.Int
}

// Parent returns the owning module.
func (e *Elem) Parent() module.Module { return e.m }

// Coords returns a copy of the element's generator coordinates.
func (e *Elem) Coords() []*big.Int { return cloneVec(e.c) }

// String renders the coordinates.
func (e *Elem) String() string {
	parts := make([]string, len(e.c))
	for i, x := range e.c {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Of builds the element with the given generator coordinates.
func (m *Abelian) Of(coords ...int64) *Elem {
	if len(coords) != m.n {
		panic(fmt.Sprintf("zmod: element has %d coordinates, want %d", len(coords), m.n))
	}
	c := make([]*big.Int, m.n)
	for i, x := range coords {
		c[i] = big.NewInt(x)
	}
	return &Elem{m: m, c: c}
}

// OfBig builds the element with the given big-integer coordinates,
// copying them.
func (m *Abelian) OfBig(coords []*big.Int) *Elem {
	if len(coords) != m.n {
		panic(fmt.Sprintf("zmod: element has %d coordinates, want %d", len(coords), m.n))
	}
	return &Elem{m: m, c: cloneVec(coords)}
}

// Zero returns the neutral element.
func (m *Abelian) Zero() module.Elem { return &Elem{m: m, c: zeroVec(m.n)} }

// Gens returns the presentation generators as elements.
func (m *Abelian) Gens() []module.Elem {
	out := make([]module.Elem, m.n)
	for i := 0; i < m.n; i++ {
		c := zeroVec(m.n)
		c[i].SetInt64(1)
		out[i] = &Elem{m: m, c: c}
	}
	return out
}

func (m *Abelian) own(a module.Elem) *Elem {
	e := a.(*Elem)
	if e.m != m {
		panic("zmod: element belongs to a different module")
	}
	return e
}

// Add returns a+b.
func (m *Abelian) Add(a, b module.Elem) module.Elem {
	return &Elem{m: m, c: addVec(m.own(a).c, m.own(b).c)}
}

// Neg returns -a.
func (m *Abelian) Neg(a module.Elem) module.Elem {
	return &Elem{m: m, c: negVec(m.own(a).c)}
}

// ZMul returns k*a.
func (m *Abelian) ZMul(k *big.Int, a module.Elem) module.Elem {
	return &Elem{m: m, c: scaleVec(k, m.own(a).c)}
}

// Equal reports whether a and b differ by a relation.
func (m *Abelian) Equal(a, b module.Elem) bool {
	diff := addVec(m.own(a).c, negVec(m.own(b).c))
	return isZeroVec(m.canonical(diff))
}

// IsZero reports whether a is the neutral element.
func (m *Abelian) IsZero(a module.Elem) bool {
	return isZeroVec(m.canonical(m.own(a).c))
}

// Key returns the canonical coordinate string of a.
func (m *Abelian) Key(a module.Elem) string {
	y := m.canonical(m.own(a).c)
	parts := make([]string, len(y))
	for i, x := range y {
		parts[i] = x.String()
	}
	return strings.Join(parts, ",")
}

// AnnotateExponent records a positive integer known to annihilate the
// module. It is a performance and bookkeeping hint only.
func (m *Abelian) AnnotateExponent(n *big.Int) {
	m.exp = new(big.Int).Set(n)
}

// Exponent returns the annotated exponent, or nil.
func (m *Abelian) Exponent() *big.Int { return m.exp }

// Invariants returns the orders of the cyclic factors of the module in
// divisibility order, 0 standing for an infinite factor. Trivial
// factors are omitted; the trivial module returns an empty slice.
func (m *Abelian) Invariants() []*big.Int {
	s := m.smithRels()
	var out []*big.Int
	one := big.NewInt(1)
	for i := 0; i < s.rank; i++ {
		if s.d[i].Cmp(one) != 0 {
			out = append(out, new(big.Int).Set(s.d[i]))
		}
	}
	for i := len(s.d); i < m.n; i++ {
		out = append(out, new(big.Int))
	}
	for i := s.rank; i < len(s.d); i++ {
		out = append(out, new(big.Int))
	}
	return out
}

// IsTrivial reports whether the module has no nonzero element.
func (m *Abelian) IsTrivial() bool { return len(m.Invariants()) == 0 }

// Order returns the number of elements, with ok false when the module
// is infinite.
func (m *Abelian) Order() (*big.Int, bool) {
	ord := big.NewInt(1)
	for _, d := range m.Invariants() {
		if d.Sign() == 0 {
			return nil, false
		}
		ord.Mul(ord, d)
	}
	return ord, true
}
