package cochain

import (
	"testing"

	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/grp"
	"github.com/f3rmion/coh/module"
	"github.com/f3rmion/coh/zmod"
)

// signC2 is C2 acting on Z by negation.
func signC2(t *testing.T) *gmod.GModule {
	t.Helper()
	g, err := grp.Cyclic(2)
	if err != nil {
		t.Fatal(err)
	}
	m := zmod.Z()
	neg, err := zmod.MatrixHom(m, m, [][]int64{{-1}})
	if err != nil {
		t.Fatal(err)
	}
	gm, err := gmod.New(g, m, []module.Hom{neg})
	if err != nil {
		t.Fatal(err)
	}
	return gm
}

func TestDegreeZero(t *testing.T) {
	gm := signC2(t)
	m := gm.Module().(*zmod.Abelian)

	t.Run("only zero is fixed under negation", func(t *testing.T) {
		c := FromValue(gm, m.Of(1))
		ok, err := c.IsCocycle()
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("1 reported fixed under negation")
		}
		z := FromValue(gm, m.Zero())
		ok, err = z.IsCocycle()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("0 reported moved")
		}
	})

	t.Run("coboundary of m is g -> act(g)m - m", func(t *testing.T) {
		c := FromValue(gm, m.Of(3))
		d, err := c.Coboundary()
		if err != nil {
			t.Fatal(err)
		}
		v, err := d.At(gm.Group().Gen(1))
		if err != nil {
			t.Fatal(err)
		}
		if !m.Equal(v, m.Of(-6)) {
			t.Fatalf("delta(3)(x) = %v, want -6", v)
		}
	})
}

func TestDegreeOneCrossedHom(t *testing.T) {
	gm := signC2(t)
	m := gm.Module().(*zmod.Abelian)
	g := gm.Group()

	// x -> 1 is a crossed hom for the sign action:
	// f(x^2) = act(x)(1) + 1 = 0.
	c, err := FromGenImages(gm, []module.Elem{m.Of(1)})
	if err != nil {
		t.Fatal(err)
	}
	ok, err := c.IsCocycle()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("x -> 1 rejected as a crossed hom")
	}

	v, err := c.At(g.Id())
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsZero(v) {
		t.Fatalf("f(1) = %v, want 0", v)
	}

	t.Run("trivial action demands genuine homs", func(t *testing.T) {
		triv := gmod.Trivial(g, zmod.Z())
		tm := triv.Module().(*zmod.Abelian)
		d, err := FromGenImages(triv, []module.Elem{tm.Of(1)})
		if err != nil {
			t.Fatal(err)
		}
		// f(x^2) = 2 != 0 in Z.
		ok, err := d.IsCocycle()
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("x -> 1 accepted as hom C2 -> Z")
		}
	})
}

func TestCoboundaryIsCocycle(t *testing.T) {
	gm := signC2(t)
	m := gm.Module().(*zmod.Abelian)

	d, err := FromGenImages(gm, []module.Elem{m.Of(5)})
	if err != nil {
		t.Fatal(err)
	}
	c, err := d.Coboundary()
	if err != nil {
		t.Fatal(err)
	}
	ok, err := c.IsCocycle()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("coboundary failed the 2-cocycle identity")
	}

	t.Run("normalization", func(t *testing.T) {
		g := gm.Group()
		v, err := c.AtPair(g.Id(), g.Gen(1))
		if err != nil {
			t.Fatal(err)
		}
		if !m.IsZero(v) {
			t.Fatalf("delta d(1, x) = %v, want 0", v)
		}
	})
}

func TestArithmetic(t *testing.T) {
	gm := signC2(t)
	m := gm.Module().(*zmod.Abelian)

	a, err := FromGenImages(gm, []module.Elem{m.Of(2)})
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromGenImages(gm, []module.Elem{m.Of(3)})
	if err != nil {
		t.Fatal(err)
	}
	diff, err := a.Sub(b)
	if err != nil {
		t.Fatal(err)
	}
	v, err := diff.At(gm.Group().Gen(1))
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(v, m.Of(-1)) {
		t.Fatalf("(a-b)(x) = %v, want -1", v)
	}

	if _, err := a.Add(FromValue(gm, m.Zero())); err == nil {
		t.Fatal("degree mismatch accepted")
	}
}
