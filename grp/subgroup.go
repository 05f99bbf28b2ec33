package grp

// Closure returns the subgroup generated by gens as an element list,
// breadth-first from the identity. max <= 0 selects
// [DefaultMaxElements].
func (g *Group) Closure(gens []El, max int) ([]El, error) {
	if max <= 0 {
		max = DefaultMaxElements
	}
	for _, h := range gens {
		g.own(h)
	}
	seen := map[string]bool{"": true}
	out := []El{g.Id()}
	for i := 0; i < len(out); i++ {
		for _, h := range gens {
			for _, step := range []El{h, g.Inv(h)} {
				next := g.Mul(out[i], step)
				if seen[next.Key()] {
					continue
				}
				if len(out) >= max {
					return nil, ErrEnumeration
				}
				seen[next.Key()] = true
				out = append(out, next)
			}
		}
	}
	return out, nil
}

// RightTransversal returns representatives of the right cosets H\G for
// the subgroup given by its element list, with the identity coset
// first. max <= 0 selects [DefaultMaxElements].
func (g *Group) RightTransversal(sub []El, max int) ([]El, error) {
	els, err := g.Elements(max)
	if err != nil {
		return nil, err
	}
	inSub := make(map[string]bool, len(sub))
	for _, h := range sub {
		inSub[g.own(h).Key()] = true
	}
	covered := map[string]bool{}
	trans := []El{g.Id()}
	for _, h := range sub {
		covered[h.Key()] = true
	}
	for _, x := range els {
		if covered[x.Key()] {
			continue
		}
		trans = append(trans, x)
		for _, h := range sub {
			covered[g.Mul(h, x).Key()] = true
		}
	}
	return trans, nil
}
