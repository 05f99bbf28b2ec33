package word

import (
	"fmt"
	"strconv"
	"strings"
)

// Word is a word over a signed generator alphabet. A positive letter i
// stands for the i-th generator (1-based); a negative letter -i stands
// for its inverse. The empty word is the identity.
type Word []int

// Inverse returns the formal inverse of w: letters reversed and negated.
func (w Word) Inverse() Word {
	inv := make(Word, len(w))
	for i, l := range w {
		inv[len(w)-1-i] = -l
	}
	return inv
}

// Concat returns the concatenation of w and v as a new word.
func (w Word) Concat(v Word) Word {
	out := make(Word, 0, len(w)+len(v))
	out = append(out, w...)
	out = append(out, v...)
	return out
}

// Equal reports whether w and v are letter-for-letter identical.
func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// Pow returns the word w repeated n times. n must be non-negative.
func (w Word) Pow(n int) Word {
	out := make(Word, 0, len(w)*n)
	for i := 0; i < n; i++ {
		out = append(out, w...)
	}
	return out
}

// Key returns a canonical string form of w, usable as a map key.
func (w Word) Key() string {
	if len(w) == 0 {
		return ""
	}
	var b strings.Builder
	for i, l := range w {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(l))
	}
	return b.String()
}

// String renders w in generator notation, e.g. "g1*g2^-1".
func (w Word) String() string {
	if len(w) == 0 {
		return "<id>"
	}
	var b strings.Builder
	for i, l := range w {
		if i > 0 {
			b.WriteByte('*')
		}
		if l > 0 {
			fmt.Fprintf(&b, "g%d", l)
		} else {
			fmt.Fprintf(&b, "g%d^-1", -l)
		}
	}
	return b.String()
}

// letterLess orders single letters as 1 < -1 < 2 < -2 < ... so that a
// generator always precedes its inverse and lower-numbered generators
// precede higher-numbered ones.
func letterLess(a, b int) bool {
	return letterRank(a) < letterRank(b)
}

func letterRank(l int) int {
	if l > 0 {
		return 2 * (l - 1)
	}
	return 2*(-l-1) + 1
}

// Less reports whether w precedes v in shortlex order: shorter words
// first, ties broken letter by letter using the generator ordering.
func (w Word) Less(v Word) bool {
	if len(w) != len(v) {
		return len(w) < len(v)
	}
	for i := range w {
		if w[i] != v[i] {
			return letterLess(w[i], v[i])
		}
	}
	return false
}
