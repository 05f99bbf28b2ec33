package grp

import (
	"fmt"

	"github.com/f3rmion/coh/word"
)

// Polycyclic builds a group from a consistent polycyclic presentation
// without running completion. orders[i-1] is the relative order e_i of
// the i-th generator; pows[i], when present, is the word w_i with
// x_i^e_i = w_i (in higher generators; absent means the identity);
// conjs[[2]int{j, i}] for j > i is the word for x_i^-1 x_j x_i (absent
// means the generators commute).
//
// The assembled rules are the power rules x_i^e_i -> w_i, the
// conjugation rules x_j x_i -> x_i (x_i^-1 x_j x_i), and the inverse
// eliminations x_i^-1 -> x_i^(e_i-1) w_i^-1. Consistency of the data
// is the caller's bargain; inconsistent data yields a group smaller
// than the pc order, which [Group.Order] exposes.
func Polycyclic(orders []int, pows map[int]word.Word, conjs map[[2]int]word.Word) (*Group, error) {
	n := len(orders)
	for i, e := range orders {
		if e < 2 {
			return nil, fmt.Errorf("grp: relative order %d of generator %d out of range", e, i+1)
		}
	}
	var rules []word.Rule
	for i := 1; i <= n; i++ {
		pow := pows[i]
		rules = append(rules, word.Rule{LHS: word.Word{i}.Pow(orders[i-1]), RHS: pow.Clone()})
		inv := word.Word{i}.Pow(orders[i-1] - 1).Concat(pow.Inverse())
		rules = append(rules, word.Rule{LHS: word.Word{-i}, RHS: inv})
		for j := i + 1; j <= n; j++ {
			conj, ok := conjs[[2]int{j, i}]
			if !ok {
				conj = word.Word{j}
			}
			rules = append(rules, word.Rule{LHS: word.Word{j, i}, RHS: word.Word{i}.Concat(conj)})
		}
	}
	sys, err := normalize(n, rules)
	if err != nil {
		return nil, err
	}
	return New(sys)
}

// normalize rewrites every right-hand side to normal form under the
// full rule set, iterating to a fixed point, and returns the resulting
// system.
func normalize(ngens int, rules []word.Rule) (*word.System, error) {
	for {
		sys, err := word.NewSystem(ngens, rules)
		if err != nil {
			return nil, err
		}
		changed := false
		for q := range rules {
			nf := sys.Reduce(rules[q].RHS, nil)
			if !nf.Equal(rules[q].RHS) {
				rules[q].RHS = nf
				changed = true
			}
		}
		if !changed {
			return sys, nil
		}
	}
}
