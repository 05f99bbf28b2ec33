package cohom

import (
	"math/big"
	"testing"

	"github.com/f3rmion/coh/cochain"
	"github.com/f3rmion/coh/frmod"
	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/grp"
	"github.com/f3rmion/coh/module"
	"github.com/f3rmion/coh/mulmod"
	"github.com/f3rmion/coh/zmod"
)

func zOverC2(t *testing.T, sign bool) *gmod.GModule {
	t.Helper()
	g, err := grp.Cyclic(2)
	if err != nil {
		t.Fatal(err)
	}
	m := zmod.Z()
	a := int64(1)
	if sign {
		a = -1
	}
	act, err := zmod.MatrixHom(m, m, [][]int64{{a}})
	if err != nil {
		t.Fatal(err)
	}
	gm, err := gmod.New(g, m, []module.Hom{act})
	if err != nil {
		t.Fatal(err)
	}
	return gm
}

func wantInvariants(t *testing.T, m module.Module, want ...int64) {
	t.Helper()
	ab, ok := m.(*zmod.Abelian)
	if !ok {
		t.Fatalf("module %T is not integral", m)
	}
	inv := ab.Invariants()
	if len(inv) != len(want) {
		t.Fatalf("invariants %v, want %v", inv, want)
	}
	for i, w := range want {
		if inv[i].Cmp(big.NewInt(w)) != 0 {
			t.Fatalf("invariants %v, want %v", inv, want)
		}
	}
}

func TestZByNegation(t *testing.T) {
	gm := zOverC2(t, true)

	t.Run("H0 vanishes", func(t *testing.T) {
		r, err := H0(gm)
		if err != nil {
			t.Fatal(err)
		}
		wantInvariants(t, r.Module())
	})

	t.Run("H1 is Z/2", func(t *testing.T) {
		r, err := H1(gm)
		if err != nil {
			t.Fatal(err)
		}
		wantInvariants(t, r.Module(), 2)
	})

	t.Run("H2 vanishes", func(t *testing.T) {
		r, err := H2(gm)
		if err != nil {
			t.Fatal(err)
		}
		wantInvariants(t, r.Module())
	})
}

func TestZTrivialC2(t *testing.T) {
	gm := zOverC2(t, false)

	t.Run("H0 is Z", func(t *testing.T) {
		r, err := H0(gm)
		if err != nil {
			t.Fatal(err)
		}
		wantInvariants(t, r.Module(), 0)
	})

	t.Run("H1 vanishes", func(t *testing.T) {
		r, err := H1(gm)
		if err != nil {
			t.Fatal(err)
		}
		wantInvariants(t, r.Module())
	})

	t.Run("H2 is Z/2", func(t *testing.T) {
		r, err := H2(gm)
		if err != nil {
			t.Fatal(err)
		}
		wantInvariants(t, r.Module(), 2)
	})

	t.Run("Tate H0 is Z/2", func(t *testing.T) {
		r, err := H0Tate(gm)
		if err != nil {
			t.Fatal(err)
		}
		wantInvariants(t, r.Module(), 2)
		m := gm.Module().(*zmod.Abelian)
		if !m.Equal(r.Norm().Apply(m.Of(1)), m.Of(2)) {
			t.Fatal("norm of 1 is not 2")
		}
	})
}

func TestZTrivialC3(t *testing.T) {
	g, err := grp.Cyclic(3)
	if err != nil {
		t.Fatal(err)
	}
	gm := gmod.Trivial(g, zmod.Z())

	r1, err := H1(gm)
	if err != nil {
		t.Fatal(err)
	}
	wantInvariants(t, r1.Module())

	r2, err := H2(gm)
	if err != nil {
		t.Fatal(err)
	}
	wantInvariants(t, r2.Module(), 3)
}

func TestTrivialGroup(t *testing.T) {
	gm := gmod.Trivial(grp.Trivial(), zmod.Cyclic(5))

	r0, err := H0(gm)
	if err != nil {
		t.Fatal(err)
	}
	wantInvariants(t, r0.Module(), 5)

	r1, err := H1(gm)
	if err != nil {
		t.Fatal(err)
	}
	if !r1.Module().(*zmod.Abelian).IsTrivial() {
		t.Fatal("H1 of the trivial group is not trivial")
	}

	r2, err := H2(gm)
	if err != nil {
		t.Fatal(err)
	}
	if !r2.Module().(*zmod.Abelian).IsTrivial() {
		t.Fatal("H2 of the trivial group is not trivial")
	}
}

func TestH1RoundTrip(t *testing.T) {
	gm := zOverC2(t, true)
	m := gm.Module().(*zmod.Abelian)
	r, err := H1(gm)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("odd values are not coboundaries", func(t *testing.T) {
		c, err := cochain.FromGenImages(gm, []module.Elem{m.Of(1)})
		if err != nil {
			t.Fatal(err)
		}
		if _, ok, err := r.IsCoboundary(c); err != nil || ok {
			t.Fatalf("x -> 1 reported principal (ok=%v err=%v)", ok, err)
		}
		cls, err := r.ClassOf(c)
		if err != nil {
			t.Fatal(err)
		}
		if r.Module().IsZero(cls) {
			t.Fatal("class of x -> 1 is zero")
		}
	})

	t.Run("even values are coboundaries with witness", func(t *testing.T) {
		c, err := cochain.FromGenImages(gm, []module.Elem{m.Of(2)})
		if err != nil {
			t.Fatal(err)
		}
		w, ok, err := r.IsCoboundary(c)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("x -> 2 not recognized as principal")
		}
		d, err := w.Coboundary()
		if err != nil {
			t.Fatal(err)
		}
		v, err := d.At(gm.Group().Gen(1))
		if err != nil {
			t.Fatal(err)
		}
		if !m.Equal(v, m.Of(2)) {
			t.Fatalf("witness coboundary sends x to %v, want 2", v)
		}
	})

	t.Run("class representative", func(t *testing.T) {
		cls := r.Module().Gens()[0]
		c, err := r.CochainOf(cls)
		if err != nil {
			t.Fatal(err)
		}
		ok, err := c.IsCocycle()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("representative is not a cocycle")
		}
		back, err := r.ClassOf(c)
		if err != nil {
			t.Fatal(err)
		}
		if !r.Module().Equal(back, cls) {
			t.Fatal("class did not round-trip")
		}
	})
}

func TestH2RoundTrip(t *testing.T) {
	gm := zOverC2(t, false)
	r, err := H2(gm)
	if err != nil {
		t.Fatal(err)
	}
	cls := r.Module().Gens()[0]
	if r.Module().IsZero(cls) {
		t.Fatal("H2 generator is zero")
	}

	c, err := r.CochainOf(cls)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := c.IsCocycle()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("representative fails the cocycle identity")
	}
	back, err := r.ClassOf(c)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Module().Equal(back, cls) {
		t.Fatal("class did not round-trip")
	}
	if _, ok, err := r.IsCoboundary(c); err != nil || ok {
		t.Fatalf("nontrivial class reported as coboundary (ok=%v err=%v)", ok, err)
	}
}

func TestH2CoboundaryWitness(t *testing.T) {
	gm := zOverC2(t, true)
	m := gm.Module().(*zmod.Abelian)
	g := gm.Group()
	r, err := H2(gm)
	if err != nil {
		t.Fatal(err)
	}

	d, err := cochain.FromGenImages(gm, []module.Elem{m.Of(1)})
	if err != nil {
		t.Fatal(err)
	}
	c, err := d.Coboundary()
	if err != nil {
		t.Fatal(err)
	}
	w, ok, err := r.IsCoboundary(c)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("an explicit coboundary was not recognized")
	}

	wc, err := w.Coboundary()
	if err != nil {
		t.Fatal(err)
	}
	els, err := g.Elements(0)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range els {
		for _, b := range els {
			want, err := c.AtPair(a, b)
			if err != nil {
				t.Fatal(err)
			}
			got, err := wc.AtPair(a, b)
			if err != nil {
				t.Fatal(err)
			}
			if !m.Equal(got, want) {
				t.Fatalf("witness coboundary disagrees at (%v, %v): %v != %v", a, b, got, want)
			}
		}
	}
}

func TestPrimeFieldCoefficients(t *testing.T) {
	g, err := grp.Cyclic(2)
	if err != nil {
		t.Fatal(err)
	}
	gm := gmod.Trivial(g, frmod.NewSpace(1))

	// The field characteristic is an odd prime, so both groups vanish
	// for a group of order 2.
	r1, err := H1(gm)
	if err != nil {
		t.Fatal(err)
	}
	if dim := r1.Module().(*frmod.Space).Dim(); dim != 0 {
		t.Fatalf("H1 dimension = %d, want 0", dim)
	}
	r2, err := H2(gm)
	if err != nil {
		t.Fatal(err)
	}
	if dim := r2.Module().(*frmod.Space).Dim(); dim != 0 {
		t.Fatalf("H2 dimension = %d, want 0", dim)
	}
}

func TestMultiplicativeCoefficientsRejected(t *testing.T) {
	g, err := grp.Cyclic(2)
	if err != nil {
		t.Fatal(err)
	}
	u, err := mulmod.NewUnits(7, 3)
	if err != nil {
		t.Fatal(err)
	}
	gm := gmod.Trivial(g, mulmod.NewWrap(u))
	if _, err := H0(gm); err != ErrNotLinear {
		t.Fatalf("H0 error = %v, want ErrNotLinear", err)
	}
	if _, err := H1(gm); err != ErrNotLinear {
		t.Fatalf("H1 error = %v, want ErrNotLinear", err)
	}
	if _, err := H2(gm); err != ErrNotLinear {
		t.Fatalf("H2 error = %v, want ErrNotLinear", err)
	}
}
