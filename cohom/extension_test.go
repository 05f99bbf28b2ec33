package cohom

import (
	"testing"

	"github.com/f3rmion/coh/cochain"
	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/grp"
	"github.com/f3rmion/coh/module"
	"github.com/f3rmion/coh/zmod"
)

// z2OverC2 is C2 acting trivially on Z/2; its H2 is Z/2, and the two
// classes are the Klein four group and the cyclic group of order 4.
func z2OverC2(t *testing.T) *gmod.GModule {
	t.Helper()
	g, err := grp.Cyclic(2)
	if err != nil {
		t.Fatal(err)
	}
	return gmod.Trivial(g, zmod.Cyclic(2))
}

func maxElOrder(t *testing.T, g *grp.Group) int {
	t.Helper()
	els, err := g.Elements(0)
	if err != nil {
		t.Fatal(err)
	}
	max := 0
	for _, e := range els {
		n, err := g.ElOrder(e, 0)
		if err != nil {
			t.Fatal(err)
		}
		if n > max {
			max = n
		}
	}
	return max
}

func TestExtensionClasses(t *testing.T) {
	gm := z2OverC2(t)
	r, err := H2(gm)
	if err != nil {
		t.Fatal(err)
	}
	wantInvariants(t, r.Module(), 2)

	build := map[string]func(*gmod.GModule, *cochain.Cochain) (*Extension, error){
		"direct": Extend,
		"generic": func(gm *gmod.GModule, c *cochain.Cochain) (*Extension, error) {
			return ExtendGeneric(gm, c, 0)
		},
	}

	for name, builder := range build {
		t.Run(name, func(t *testing.T) {
			t.Run("zero class gives Klein four", func(t *testing.T) {
				c, err := cochain.Zero(gm, 2)
				if err != nil {
					t.Fatal(err)
				}
				x, err := builder(gm, c)
				if err != nil {
					t.Fatal(err)
				}
				n, err := x.Group().Order(0)
				if err != nil {
					t.Fatal(err)
				}
				if n != 4 {
					t.Fatalf("order = %d, want 4", n)
				}
				if got := maxElOrder(t, x.Group()); got != 2 {
					t.Fatalf("largest element order = %d, want 2", got)
				}
			})

			t.Run("nonzero class gives C4", func(t *testing.T) {
				c, err := r.CochainOf(r.Module().Gens()[0])
				if err != nil {
					t.Fatal(err)
				}
				x, err := builder(gm, c)
				if err != nil {
					t.Fatal(err)
				}
				n, err := x.Group().Order(0)
				if err != nil {
					t.Fatal(err)
				}
				if n != 4 {
					t.Fatalf("order = %d, want 4", n)
				}
				if got := maxElOrder(t, x.Group()); got != 4 {
					t.Fatalf("largest element order = %d, want 4", got)
				}
			})
		})
	}
}

func TestExtensionMaps(t *testing.T) {
	gm := z2OverC2(t)
	m := gm.Module().(*zmod.Abelian)
	g := gm.Group()
	r, err := H2(gm)
	if err != nil {
		t.Fatal(err)
	}
	c, err := r.CochainOf(r.Module().Gens()[0])
	if err != nil {
		t.Fatal(err)
	}
	x, err := Extend(gm, c)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("split undoes pair", func(t *testing.T) {
		for _, gEl := range []grp.El{g.Id(), g.Gen(1)} {
			for _, mEl := range []module.Elem{m.Zero(), m.Of(1)} {
				e := x.Pair(gEl, mEl)
				gBack, mBack, err := x.Split(e)
				if err != nil {
					t.Fatal(err)
				}
				if !g.Equal(gBack, gEl) || !m.Equal(mBack, mEl) {
					t.Fatalf("Split(Pair(%v, %v)) = (%v, %v)", gEl, mEl, gBack, mBack)
				}
			}
		}
	})

	t.Run("projection kills the injected module", func(t *testing.T) {
		e := x.Inject(m.Of(1))
		if x.Group().IsId(e) {
			t.Fatal("injection collapsed the module generator")
		}
		if !g.IsId(x.Project(e)) {
			t.Fatal("projection of an injected element is not the identity")
		}
		if !g.Equal(x.Project(x.Pair(g.Gen(1), m.Of(1))), g.Gen(1)) {
			t.Fatal("projection lost the group part")
		}
	})

	t.Run("multiplication follows the extension law", func(t *testing.T) {
		// (x, 0)(x, 0) = (1, c(x, x)), and c represents the nonzero
		// class, so the product injects the module generator.
		e := x.Group().Mul(x.Pair(g.Gen(1), m.Zero()), x.Pair(g.Gen(1), m.Zero()))
		gPart, mPart, err := x.Split(e)
		if err != nil {
			t.Fatal(err)
		}
		if !g.IsId(gPart) {
			t.Fatalf("x*x projects to %v, want identity", gPart)
		}
		cxx, err := c.AtPair(g.Gen(1), g.Gen(1))
		if err != nil {
			t.Fatal(err)
		}
		if !m.Equal(mPart, cxx) {
			t.Fatalf("module part of x*x = %v, want c(x,x) = %v", mPart, cxx)
		}
	})
}

func TestExtendRejectsFreeCoefficients(t *testing.T) {
	g, err := grp.Cyclic(2)
	if err != nil {
		t.Fatal(err)
	}
	gm := gmod.Trivial(g, zmod.Z())
	c, err := cochain.Zero(gm, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Extend(gm, c); err == nil {
		t.Fatal("direct assembly accepted an infinite module")
	}
}
