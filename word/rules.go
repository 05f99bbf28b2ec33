package word

import (
	"fmt"
	"sort"
)

// Rule is a single rewriting rule: any occurrence of LHS is replaced by RHS.
type Rule struct {
	LHS Word
	RHS Word
}

// IsCancellation reports whether r has the trivial-cancellation shape
// [a, -a] -> [], for a signed letter a.
func (r Rule) IsCancellation() bool {
	return len(r.LHS) == 2 && len(r.RHS) == 0 && r.LHS[0] == -r.LHS[1]
}

// Visitor observes rule applications during reduction. It is called with
// the word as it stands immediately before the substitution, the index of
// the rule about to be applied, and the position of the match. The word
// slice is reused between calls and must not be retained.
type Visitor func(w Word, rule, pos int)

// System is a set of rewriting rules for a fixed signed alphabet,
// indexed for left-to-right reduction. Rules with a one-letter left side
// are reached through a per-letter index; longer rules are reached
// through a two-letter prefix index whose buckets are sorted so that the
// shortlex-smallest left side is tried first.
type System struct {
	ngens  int
	rules  []Rule
	single map[int]int
	pairs  map[[2]int][]int
	maxLHS int
}

// NewSystem builds an indexed system over ngens generators. Rules with
// empty left sides, out-of-range letters, or duplicate one-letter left
// sides are rejected.
func NewSystem(ngens int, rules []Rule) (*System, error) {
	s := &System{
		ngens:  ngens,
		rules:  rules,
		single: make(map[int]int),
		pairs:  make(map[[2]int][]int),
	}
	for i, r := range rules {
		if len(r.LHS) == 0 {
			return nil, fmt.Errorf("rule %d has empty left side", i)
		}
		for _, l := range append(r.LHS.Clone(), r.RHS...) {
			if l == 0 || l > ngens || l < -ngens {
				return nil, fmt.Errorf("rule %d uses letter %d outside alphabet of %d generators", i, l, ngens)
			}
		}
		if len(r.LHS) > s.maxLHS {
			s.maxLHS = len(r.LHS)
		}
		if len(r.LHS) == 1 {
			if _, dup := s.single[r.LHS[0]]; dup {
				return nil, fmt.Errorf("duplicate one-letter rule for letter %d", r.LHS[0])
			}
			s.single[r.LHS[0]] = i
		} else {
			k := [2]int{r.LHS[0], r.LHS[1]}
			s.pairs[k] = append(s.pairs[k], i)
		}
	}
	for k := range s.pairs {
		bucket := s.pairs[k]
		sort.Slice(bucket, func(a, b int) bool {
			return rules[bucket[a]].LHS.Less(rules[bucket[b]].LHS)
		})
	}
	return s, nil
}

// NGens returns the number of generators of the alphabet.
func (s *System) NGens() int { return s.ngens }

// Rules returns the rule list in index order. The slice is shared; do
// not modify it.
func (s *System) Rules() []Rule { return s.rules }

// matchAt reports whether lhs occurs in w starting at position i.
func matchAt(w Word, i int, lhs Word) bool {
	if i+len(lhs) > len(w) {
		return false
	}
	for j, l := range lhs {
		if w[i+j] != l {
			return false
		}
	}
	return true
}

// Reduce rewrites w to its normal form under s. The input is not
// modified. If visit is non-nil it is invoked before every substitution.
//
// The scan moves a cursor left to right. At each position the one-letter
// index is consulted first, then the two-letter prefix index; the first
// matching rule is applied and the cursor backs up far enough that any
// newly created match is seen again. Termination relies on the system
// being constructed from a length-reducing (confluent) presentation.
func (s *System) Reduce(w Word, visit Visitor) Word {
	buf := w.Clone()
	i := 0
	for i < len(buf) {
		ri, ok := s.ruleAt(buf, i)
		if !ok {
			i++
			continue
		}
		if visit != nil {
			visit(buf, ri, i)
		}
		r := s.rules[ri]
		buf = splice(buf, i, len(r.LHS), r.RHS)
		i -= s.maxLHS - 1
		if i < 0 {
			i = 0
		}
	}
	return buf
}

// ruleAt returns the index of the first applicable rule at position i.
func (s *System) ruleAt(buf Word, i int) (int, bool) {
	if ri, ok := s.single[buf[i]]; ok {
		return ri, true
	}
	if i+1 < len(buf) {
		for _, ri := range s.pairs[[2]int{buf[i], buf[i+1]}] {
			if matchAt(buf, i, s.rules[ri].LHS) {
				return ri, true
			}
		}
	}
	return 0, false
}

// splice replaces w[i:i+n] by repl, in place where capacity allows.
func splice(w Word, i, n int, repl Word) Word {
	tail := w[i+n:]
	out := make(Word, 0, i+len(repl)+len(tail))
	out = append(out, w[:i]...)
	out = append(out, repl...)
	out = append(out, tail...)
	return out
}

// IsReduced reports whether no rule's left side properly contains
// another rule's left side as a subword. The tail bookkeeping used by
// the two-cohomology machinery is only valid for reduced systems.
func (s *System) IsReduced() bool {
	for i, r := range s.rules {
		for j, q := range s.rules {
			if i == j {
				continue
			}
			for p := 0; p+len(q.LHS) <= len(r.LHS); p++ {
				if matchAt(r.LHS, p, q.LHS) {
					return false
				}
			}
		}
	}
	return true
}
