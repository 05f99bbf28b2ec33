package mulmod

import (
	"fmt"
	"math/big"
)

// Units is the group of invertible residues modulo n, written
// multiplicatively. It is the standard concrete backing for [Wrap] and
// the multiplicative side of Kummer-style computations.
type Units struct {
	n    *big.Int
	gens []*big.Int
}

// NewUnits builds the unit group mod n with the given generators.
// Generators must be coprime to n.
func NewUnits(n int64, gens ...int64) (*Units, error) {
	if n < 2 {
		return nil, fmt.Errorf("mulmod: modulus %d out of range", n)
	}
	u := &Units{n: big.NewInt(n)}
	for _, g := range gens {
		v := new(big.Int).Mod(big.NewInt(g), u.n)
		if new(big.Int).GCD(nil, nil, v, u.n).Cmp(big.NewInt(1)) != 0 {
			return nil, fmt.Errorf("mulmod: %d is not a unit mod %d", g, n)
		}
		u.gens = append(u.gens, v)
	}
	return u, nil
}

// Modulus returns n.
func (u *Units) Modulus() *big.Int { return new(big.Int).Set(u.n) }

func (u *Units) val(a Value) *big.Int { return a.(*big.Int) }

// One returns the residue 1.
func (u *Units) One() Value { return big.NewInt(1) }

// Mul returns a*b mod n.
func (u *Units) Mul(a, b Value) Value {
	r := new(big.Int).Mul(u.val(a), u.val(b))
	return r.Mod(r, u.n)
}

// Inv returns the modular inverse of a.
func (u *Units) Inv(a Value) Value {
	return new(big.Int).ModInverse(u.val(a), u.n)
}

// Equal reports whether a and b are the same residue.
func (u *Units) Equal(a, b Value) bool { return u.val(a).Cmp(u.val(b)) == 0 }

// Gens returns the configured generators.
func (u *Units) Gens() []Value {
	out := make([]Value, len(u.gens))
	for i, g := range u.gens {
		out[i] = new(big.Int).Set(g)
	}
	return out
}

// Key returns the decimal residue.
func (u *Units) Key(a Value) string { return u.val(a).String() }

var _ Group = (*Units)(nil)
