package grp

import (
	"errors"
	"testing"

	"github.com/f3rmion/coh/word"
)

// mustGroup adapts a constructor's (group, error) pair so call sites
// can wrap the constructor call directly.
func mustGroup(t *testing.T) func(*Group, error) *Group {
	return func(g *Group, err error) *Group {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
}

func TestCyclic(t *testing.T) {
	g := mustGroup(t)(Cyclic(5))

	n, err := g.Order(0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("order = %d, want 5", n)
	}

	x := g.Gen(1)
	acc := g.Id()
	for i := 0; i < 5; i++ {
		acc = g.Mul(acc, x)
	}
	if !g.IsId(acc) {
		t.Fatalf("x^5 = %v, want identity", acc)
	}
	if !g.Equal(g.Inv(x), g.Of(word.Word{1}.Pow(4))) {
		t.Fatal("x^-1 != x^4")
	}
}

func TestTrivial(t *testing.T) {
	g := Trivial()
	n, err := g.Order(0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("order = %d, want 1", n)
	}
	if len(g.Relators()) != 0 {
		t.Fatalf("trivial group has %d relators", len(g.Relators()))
	}
}

func TestDihedral(t *testing.T) {
	g := mustGroup(t)(Dihedral(4))

	n, err := g.Order(0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("order = %d, want 8", n)
	}

	r, s := g.Gen(1), g.Gen(2)
	// s r s = r^-1
	if !g.Equal(g.Conj(r, s), g.Inv(r)) {
		t.Fatal("reflection does not invert the rotation")
	}
	ord, err := g.ElOrder(g.Mul(r, s), 0)
	if err != nil {
		t.Fatal(err)
	}
	if ord != 2 {
		t.Fatalf("|rs| = %d, want 2", ord)
	}
}

func TestQuaternion(t *testing.T) {
	g := mustGroup(t)(Quaternion())

	n, err := g.Order(0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("order = %d, want 8", n)
	}

	i, j := g.Gen(1), g.Gen(2)
	ii := g.Mul(i, i)
	if !g.Equal(ii, g.Mul(j, j)) {
		t.Fatal("i^2 != j^2")
	}
	if g.IsId(ii) {
		t.Fatal("i^2 is the identity; group collapsed")
	}
	if !g.IsId(g.Mul(ii, ii)) {
		t.Fatal("i^4 != 1")
	}
}

func TestAbelianRelators(t *testing.T) {
	g := mustGroup(t)(Abelian(2, 3))

	n, err := g.Order(0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("order = %d, want 6", n)
	}
	a, b := g.Gen(1), g.Gen(2)
	if !g.Equal(g.Mul(a, b), g.Mul(b, a)) {
		t.Fatal("generators do not commute")
	}
	for _, rel := range g.Relators() {
		if !g.IsId(g.Of(rel)) {
			t.Fatalf("relator %v does not reduce to identity", rel)
		}
	}
}

func TestEnumerationCap(t *testing.T) {
	// Free group on one generator: infinite.
	sys, err := word.Complete(1, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	g, err := New(sys)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Elements(32); !errors.Is(err, ErrEnumeration) {
		t.Fatalf("err = %v, want ErrEnumeration", err)
	}
}

func TestMorphism(t *testing.T) {
	c4 := mustGroup(t)(Cyclic(4))
	c2 := mustGroup(t)(Cyclic(2))

	t.Run("valid quotient map", func(t *testing.T) {
		m, err := NewMorphism(c4, c2, []El{c2.Gen(1)})
		if err != nil {
			t.Fatal(err)
		}
		sq := m.Apply(c4.Mul(c4.Gen(1), c4.Gen(1)))
		if !c2.IsId(sq) {
			t.Fatalf("x^2 maps to %v, want identity", sq)
		}
	})

	t.Run("invalid assignment rejected", func(t *testing.T) {
		if _, err := NewMorphism(c2, c4, []El{c4.Gen(1)}); err == nil {
			t.Fatal("C2 -> C4, x -> y accepted; y^2 != 1")
		}
	})
}

func TestPolycyclic(t *testing.T) {
	// S3 as C3 . C2: x1 of order 2 inverting x2 of order 3.
	g, err := Polycyclic([]int{2, 3}, nil, map[[2]int]word.Word{
		{2, 1}: {2, 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	n, err := g.Order(0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("order = %d, want 6", n)
	}
	if !g.Equal(g.Conj(g.Gen(2), g.Gen(1)), g.Mul(g.Gen(2), g.Gen(2))) {
		t.Fatal("conjugation relation lost in assembly")
	}
	if !g.System().IsReduced() {
		t.Fatal("assembled system is not reduced")
	}

	t.Run("bad order rejected", func(t *testing.T) {
		if _, err := Polycyclic([]int{1}, nil, nil); err == nil {
			t.Fatal("relative order 1 accepted")
		}
	})
}

func TestSym3(t *testing.T) {
	g := mustGroup(t)(Sym3())
	n, err := g.Order(0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("order = %d, want 6", n)
	}
	if g.Equal(g.Mul(g.Gen(1), g.Gen(2)), g.Mul(g.Gen(2), g.Gen(1))) {
		t.Fatal("generators commute")
	}
}

func TestClosureAndTransversal(t *testing.T) {
	g := mustGroup(t)(Dihedral(3))

	rot, err := g.Closure([]El{g.Gen(1)}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rot) != 3 {
		t.Fatalf("|<r>| = %d, want 3", len(rot))
	}

	trans, err := g.RightTransversal(rot, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(trans) != 2 {
		t.Fatalf("got %d cosets, want 2", len(trans))
	}
	if !g.IsId(trans[0]) {
		t.Fatal("first representative is not the identity")
	}
}
