package grp

import "fmt"

// Morphism is a group homomorphism determined by generator images.
type Morphism struct {
	dom    *Group
	cod    *Group
	images []El
}

// NewMorphism builds the homomorphism sending the i-th generator of
// dom to images[i]. Every relator of dom must map to the identity;
// otherwise the assignment does not extend and an error is returned.
func NewMorphism(dom, cod *Group, images []El) (*Morphism, error) {
	if len(images) != dom.NGens() {
		return nil, fmt.Errorf("grp: morphism needs %d generator images, got %d", dom.NGens(), len(images))
	}
	for _, im := range images {
		cod.own(im)
	}
	m := &Morphism{dom: dom, cod: cod, images: images}
	for _, rel := range dom.Relators() {
		if !cod.IsId(m.applyWord(rel)) {
			return nil, fmt.Errorf("grp: relator %v does not map to the identity", rel)
		}
	}
	return m, nil
}

// Domain returns the source group.
func (m *Morphism) Domain() *Group { return m.dom }

// Codomain returns the target group.
func (m *Morphism) Codomain() *Group { return m.cod }

func (m *Morphism) applyWord(w []int) El {
	acc := m.cod.Id()
	for _, l := range w {
		if l > 0 {
			acc = m.cod.Mul(acc, m.images[l-1])
		} else {
			acc = m.cod.Mul(acc, m.cod.Inv(m.images[-l-1]))
		}
	}
	return acc
}

// Apply maps an element through the morphism.
func (m *Morphism) Apply(a El) El {
	return m.applyWord(m.dom.own(a).w)
}
