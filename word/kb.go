package word

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoCompletion is returned when completion does not reach a confluent
// system within the rule budget. Presentations of infinite groups, or
// pathological generator orderings, can run forever; the budget turns
// that into an explicit unsupported-input result.
var ErrNoCompletion = errors.New("word: rewriting system did not complete within budget")

// DefaultMaxRules bounds the number of rules Complete may accumulate.
const DefaultMaxRules = 4096

// reduceWith rewrites w to some irreducible form under an unindexed rule
// list. Used during completion, before the final system exists.
func reduceWith(rules []Rule, w Word) Word {
	buf := w.Clone()
	i := 0
	maxLHS := 1
	for _, r := range rules {
		if len(r.LHS) > maxLHS {
			maxLHS = len(r.LHS)
		}
	}
	for i < len(buf) {
		applied := false
		for _, r := range rules {
			if matchAt(buf, i, r.LHS) {
				buf = splice(buf, i, len(r.LHS), r.RHS)
				i -= maxLHS - 1
				if i < 0 {
					i = 0
				}
				applied = true
				break
			}
		}
		if !applied {
			i++
		}
	}
	return buf
}

// orient turns the identity u = v into a shortlex-decreasing rule, or
// reports that the identity is trivial.
func orient(u, v Word) (Rule, bool) {
	if u.Equal(v) {
		return Rule{}, false
	}
	if u.Less(v) {
		return Rule{LHS: v, RHS: u}, true
	}
	return Rule{LHS: u, RHS: v}, true
}

// Complete runs Knuth-Bendix completion on a group presentation over
// ngens generators, with the free-cancellation rules always included.
// Each relator is read as "relator = identity". The completed system is
// inter-reduced, so left sides contain no other left side as a subword,
// and its rules are sorted by shortlex on the left side. maxRules <= 0
// selects DefaultMaxRules.
func Complete(ngens int, relators []Word, maxRules int) (*System, error) {
	if maxRules <= 0 {
		maxRules = DefaultMaxRules
	}
	var rules []Rule
	for g := 1; g <= ngens; g++ {
		rules = append(rules,
			Rule{LHS: Word{g, -g}, RHS: Word{}},
			Rule{LHS: Word{-g, g}, RHS: Word{}},
		)
	}
	for _, rel := range relators {
		if r, ok := orient(reduceWith(rules, rel), Word{}); ok {
			rules = append(rules, r)
		}
	}

	for pass := 0; ; pass++ {
		if pass > maxRules {
			return nil, ErrNoCompletion
		}
		changed := false

		// Resolve all critical pairs against the current rule list.
		for i := 0; i < len(rules) && !changed; i++ {
			for j := 0; j < len(rules) && !changed; j++ {
				li, lj := rules[i].LHS, rules[j].LHS
				maxK := len(li)
				if len(lj) < maxK {
					maxK = len(lj)
				}
				for k := 1; k < maxK; k++ {
					if !suffixEqualsPrefix(li, lj, k) {
						continue
					}
					// Overlap word: li followed by the rest of lj.
					w1 := rules[i].RHS.Concat(lj[k:])
					w2 := li[:len(li)-k].Concat(rules[j].RHS)
					n1 := reduceWith(rules, w1)
					n2 := reduceWith(rules, w2)
					if r, ok := orient(n1, n2); ok {
						rules = append(rules, r)
						if len(rules) > maxRules {
							return nil, ErrNoCompletion
						}
						changed = true
						break
					}
				}
			}
		}

		// Inter-reduce: rewrite every rule with the others; drop
		// rules that become trivial.
		for i := 0; i < len(rules); i++ {
			others := make([]Rule, 0, len(rules)-1)
			others = append(others, rules[:i]...)
			others = append(others, rules[i+1:]...)
			nl := reduceWith(others, rules[i].LHS)
			nr := reduceWith(others, rules[i].RHS)
			if nl.Equal(rules[i].LHS) && nr.Equal(rules[i].RHS) {
				continue
			}
			changed = true
			rules = append(rules[:i], rules[i+1:]...)
			if r, ok := orient(reduceWith(rules, nl), reduceWith(rules, nr)); ok {
				rules = append(rules, r)
			}
			i = -1 // restart inter-reduction
		}

		if !changed {
			break
		}
	}

	sort.Slice(rules, func(a, b int) bool { return rules[a].LHS.Less(rules[b].LHS) })
	sys, err := NewSystem(ngens, rules)
	if err != nil {
		return nil, fmt.Errorf("completion produced an invalid system: %w", err)
	}
	if !sys.IsReduced() {
		return nil, errors.New("word: completion failed to inter-reduce")
	}
	return sys, nil
}

// suffixEqualsPrefix reports whether the last k letters of a equal the
// first k letters of b.
func suffixEqualsPrefix(a, b Word, k int) bool {
	for t := 0; t < k; t++ {
		if a[len(a)-k+t] != b[t] {
			return false
		}
	}
	return true
}
