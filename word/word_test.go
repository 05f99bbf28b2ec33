package word

import (
	"testing"
)

func mustSystem(t *testing.T, ngens int, rules []Rule) *System {
	t.Helper()
	s, err := NewSystem(ngens, rules)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWordBasics(t *testing.T) {
	w := Word{1, -2, 3}
	if got := w.Inverse(); !got.Equal(Word{-3, 2, -1}) {
		t.Errorf("Inverse = %v", got)
	}
	if got := w.Concat(Word{-3}); !got.Equal(Word{1, -2, 3, -3}) {
		t.Errorf("Concat = %v", got)
	}
	if !(Word{1}).Less(Word{-1}) {
		t.Error("expected g1 < g1^-1 in shortlex")
	}
	if !(Word{-1}).Less(Word{1, 1}) {
		t.Error("expected shorter word to be smaller")
	}
	if (Word{2}).Less(Word{-1}) {
		t.Error("expected g1^-1 < g2")
	}
}

func TestFreeCancellation(t *testing.T) {
	s := mustSystem(t, 1, []Rule{
		{LHS: Word{1, -1}, RHS: Word{}},
		{LHS: Word{-1, 1}, RHS: Word{}},
	})
	nf := s.Reduce(Word{1, -1, 1, -1, 1}, nil)
	if !nf.Equal(Word{1}) {
		t.Fatalf("reduced to %v, want [1]", nf)
	}
	if nf := s.Reduce(Word{-1, 1, 1, -1}, nil); len(nf) != 0 {
		t.Fatalf("reduced to %v, want identity", nf)
	}
}

func TestVisitorSeesEveryApplication(t *testing.T) {
	s := mustSystem(t, 1, []Rule{
		{LHS: Word{1, -1}, RHS: Word{}},
		{LHS: Word{-1, 1}, RHS: Word{}},
	})
	var calls int
	s.Reduce(Word{1, -1, 1, -1, 1}, func(w Word, rule, pos int) {
		calls++
		if !matchAt(w, pos, s.rules[rule].LHS) {
			t.Errorf("visitor reported rule %d at %d but word %v does not match", rule, pos, w)
		}
	})
	if calls != 2 {
		t.Errorf("visitor called %d times, want 2", calls)
	}
}

func TestSingleLetterRule(t *testing.T) {
	// g^-1 -> g, g*g -> identity: the order-2 cyclic group.
	s := mustSystem(t, 1, []Rule{
		{LHS: Word{1, 1}, RHS: Word{}},
		{LHS: Word{-1}, RHS: Word{1}},
	})
	if nf := s.Reduce(Word{-1, -1}, nil); len(nf) != 0 {
		t.Fatalf("g^-2 reduced to %v, want identity", nf)
	}
	if nf := s.Reduce(Word{1, -1, 1}, nil); !nf.Equal(Word{1}) {
		t.Fatalf("reduced to %v, want [1]", nf)
	}
}

func TestCompleteCyclic(t *testing.T) {
	sys, err := Complete(1, []Word{{1, 1, 1}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !sys.IsReduced() {
		t.Fatal("system is not reduced")
	}
	// Normal forms of C3 under shortlex: id, g, g^-1.
	forms := map[string]bool{}
	for _, w := range []Word{{}, {1}, {1, 1}, {1, 1, 1}, {-1}, {-1, -1}, {1, -1}} {
		forms[sys.Reduce(w, nil).Key()] = true
	}
	if len(forms) != 3 {
		t.Fatalf("got %d distinct normal forms, want 3 (%v)", len(forms), forms)
	}
}

func TestCompleteSym3(t *testing.T) {
	// <a,b | a^3, b^2, (ab)^2> is the symmetric group on 3 points.
	sys, err := Complete(2, []Word{
		{1, 1, 1},
		{2, 2},
		{1, 2, 1, 2},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !sys.IsReduced() {
		t.Fatal("system is not reduced")
	}
	seen := map[string]bool{"": true}
	frontier := []Word{{}}
	for len(frontier) > 0 {
		var next []Word
		for _, w := range frontier {
			for _, g := range []int{1, 2} {
				nf := sys.Reduce(w.Concat(Word{g}), nil)
				if !seen[nf.Key()] {
					seen[nf.Key()] = true
					next = append(next, nf)
				}
			}
		}
		frontier = next
	}
	if len(seen) != 6 {
		t.Fatalf("enumerated %d elements, want 6", len(seen))
	}
}

func TestCompleteBudget(t *testing.T) {
	// No relators beyond free cancellation: the free group is infinite
	// but its cancellation system is already confluent, so completion
	// succeeds immediately.
	if _, err := Complete(2, nil, 16); err != nil {
		t.Fatalf("free group completion failed: %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	s := mustSystem(t, 1, []Rule{
		{LHS: Word{1, 1}, RHS: Word{}},
		{LHS: Word{-1}, RHS: Word{1}},
	})
	ovs := s.Overlaps()
	if len(ovs) != 1 {
		t.Fatalf("got %d overlaps, want 1: %v", len(ovs), ovs)
	}
	o := ovs[0]
	if o.R != 0 || o.S != 0 || o.K != 1 {
		t.Errorf("unexpected overlap %+v", o)
	}
	if w := s.OverlapWord(o); !w.Equal(Word{1, 1, 1}) {
		t.Errorf("overlap word %v, want [1 1 1]", w)
	}
}

func TestIsCancellation(t *testing.T) {
	if !(Rule{LHS: Word{2, -2}, RHS: Word{}}).IsCancellation() {
		t.Error("g2*g2^-1 -> id should be a cancellation rule")
	}
	if (Rule{LHS: Word{1, 1}, RHS: Word{}}).IsCancellation() {
		t.Error("g1*g1 -> id is not a cancellation rule")
	}
}
