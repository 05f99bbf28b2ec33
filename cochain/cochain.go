package cochain

import (
	"errors"
	"fmt"

	"github.com/f3rmion/coh/gmod"
	"github.com/f3rmion/coh/grp"
	"github.com/f3rmion/coh/module"
)

// Cochain is a cochain on a G-module in degree 0, 1 or 2.
//
// Degree 0 is a single module element. Degree 1 is determined by its
// values on the group generators and extended along normal-form words
// by the crossed-homomorphism rule f(u*v) = act(v)(f(u)) + f(v); the
// extension is always a well-defined function, and [Cochain.IsCocycle]
// tells whether it is a genuine crossed homomorphism. Degree 2 is a
// function on pairs of group elements, memoized per pair.
type Cochain struct {
	gm  *gmod.GModule
	deg int

	val    module.Elem   // degree 0
	images []module.Elem // degree 1
	memo1  map[string]module.Elem

	eval  func(g, h grp.El) (module.Elem, error) // degree 2
	memo2 map[string]module.Elem
}

// FromValue builds a degree-0 cochain.
func FromValue(gm *gmod.GModule, v module.Elem) *Cochain {
	return &Cochain{gm: gm, deg: 0, val: v}
}

// FromGenImages builds a degree-1 cochain from its generator values.
func FromGenImages(gm *gmod.GModule, images []module.Elem) (*Cochain, error) {
	if len(images) != gm.Group().NGens() {
		return nil, fmt.Errorf("cochain: need %d generator values, got %d", gm.Group().NGens(), len(images))
	}
	return &Cochain{gm: gm, deg: 1, images: images, memo1: map[string]module.Elem{}}, nil
}

// FromFunc builds a degree-2 cochain from a pair function.
func FromFunc(gm *gmod.GModule, eval func(g, h grp.El) (module.Elem, error)) *Cochain {
	return &Cochain{gm: gm, deg: 2, eval: eval, memo2: map[string]module.Elem{}}
}

// Zero builds the zero cochain in the given degree.
func Zero(gm *gmod.GModule, deg int) (*Cochain, error) {
	m := gm.Module()
	switch deg {
	case 0:
		return FromValue(gm, m.Zero()), nil
	case 1:
		images := make([]module.Elem, gm.Group().NGens())
		for i := range images {
			images[i] = m.Zero()
		}
		return FromGenImages(gm, images)
	case 2:
		return FromFunc(gm, func(grp.El, grp.El) (module.Elem, error) {
			return m.Zero(), nil
		}), nil
	}
	return nil, fmt.Errorf("cochain: degree %d out of range", deg)
}

// Degree returns 0, 1 or 2.
func (c *Cochain) Degree() int { return c.deg }

// Over returns the underlying G-module.
func (c *Cochain) Over() *gmod.GModule { return c.gm }

// Value returns the element of a degree-0 cochain.
func (c *Cochain) Value() module.Elem {
	c.need(0)
	return c.val
}

// GenImages returns the generator values of a degree-1 cochain.
func (c *Cochain) GenImages() []module.Elem {
	c.need(1)
	out := make([]module.Elem, len(c.images))
	copy(out, c.images)
	return out
}

func (c *Cochain) need(deg int) {
	if c.deg != deg {
		panic(fmt.Sprintf("cochain: degree-%d operation on a degree-%d cochain", deg, c.deg))
	}
}

// At evaluates a degree-1 cochain on a group element by folding its
// normal form.
func (c *Cochain) At(e grp.El) (module.Elem, error) {
	c.need(1)
	key := e.Key()
	if v, ok := c.memo1[key]; ok {
		return v, nil
	}
	acc, err := c.atWord(e.Word())
	if err != nil {
		return nil, err
	}
	c.memo1[key] = acc
	return acc, nil
}

// AtPair evaluates a degree-2 cochain.
func (c *Cochain) AtPair(g, h grp.El) (module.Elem, error) {
	c.need(2)
	key := g.Key() + "|" + h.Key()
	if v, ok := c.memo2[key]; ok {
		return v, nil
	}
	v, err := c.eval(g, h)
	if err != nil {
		return nil, err
	}
	c.memo2[key] = v
	return v, nil
}

// Add returns the pointwise sum of two cochains of equal degree over
// the same module.
func (c *Cochain) Add(d *Cochain) (*Cochain, error) {
	if c.gm != d.gm || c.deg != d.deg {
		return nil, errors.New("cochain: sum across degrees or modules")
	}
	m := c.gm.Module()
	switch c.deg {
	case 0:
		return FromValue(c.gm, m.Add(c.val, d.val)), nil
	case 1:
		images := make([]module.Elem, len(c.images))
		for i := range images {
			images[i] = m.Add(c.images[i], d.images[i])
		}
		return FromGenImages(c.gm, images)
	default:
		return FromFunc(c.gm, func(g, h grp.El) (module.Elem, error) {
			a, err := c.AtPair(g, h)
			if err != nil {
				return nil, err
			}
			b, err := d.AtPair(g, h)
			if err != nil {
				return nil, err
			}
			return m.Add(a, b), nil
		}), nil
	}
}

// Neg returns the pointwise negation.
func (c *Cochain) Neg() *Cochain {
	m := c.gm.Module()
	switch c.deg {
	case 0:
		return FromValue(c.gm, m.Neg(c.val))
	case 1:
		images := make([]module.Elem, len(c.images))
		for i := range images {
			images[i] = m.Neg(c.images[i])
		}
		out, err := FromGenImages(c.gm, images)
		if err != nil {
			panic(err)
		}
		return out
	default:
		return FromFunc(c.gm, func(g, h grp.El) (module.Elem, error) {
			v, err := c.AtPair(g, h)
			if err != nil {
				return nil, err
			}
			return m.Neg(v), nil
		})
	}
}

// Sub returns the pointwise difference c - d.
func (c *Cochain) Sub(d *Cochain) (*Cochain, error) {
	return c.Add(d.Neg())
}
