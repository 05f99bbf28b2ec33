package word

// Overlap records a critical pair of rules: the last K letters of rule
// R's left side equal the first K letters of rule S's left side. The
// overlap word is LHS(R) followed by the remainder of LHS(S); applying R
// first or S first yields two reductions that must agree.
type Overlap struct {
	R, S, K int
}

// Word returns the overlap word of o within s.
func (s *System) OverlapWord(o Overlap) Word {
	return s.rules[o.R].LHS.Concat(s.rules[o.S].LHS[o.K:])
}

// Overlaps enumerates every critical pair of s in a fixed order (by R,
// then S, then overlap length). For a reduced confluent system this is
// the complete set of consistency conditions on rule tails.
func (s *System) Overlaps() []Overlap {
	var out []Overlap
	for i, ri := range s.rules {
		for j, rj := range s.rules {
			maxK := len(ri.LHS)
			if len(rj.LHS) < maxK {
				maxK = len(rj.LHS)
			}
			for k := 1; k < maxK; k++ {
				if suffixEqualsPrefix(ri.LHS, rj.LHS, k) {
					out = append(out, Overlap{R: i, S: j, K: k})
				}
			}
		}
	}
	return out
}
