package mulmod

import (
	"errors"
	"math/big"
	"testing"
)

func TestWrapArithmetic(t *testing.T) {
	u, err := NewUnits(7, 3)
	if err != nil {
		t.Fatal(err)
	}
	w := NewWrap(u)

	three := w.Of(big.NewInt(3))

	t.Run("add is multiplication", func(t *testing.T) {
		got := w.Add(three, three)
		if w.Key(got) != "2" {
			t.Fatalf("3*3 mod 7 = %s, want 2", w.Key(got))
		}
	})

	t.Run("neg is inversion", func(t *testing.T) {
		got := w.Neg(three)
		if w.Key(got) != "5" {
			t.Fatalf("3^-1 mod 7 = %s, want 5", w.Key(got))
		}
		if !w.IsZero(w.Add(three, got)) {
			t.Fatal("3 * 3^-1 != 1")
		}
	})

	t.Run("zmul is powering", func(t *testing.T) {
		// 3 has order 6 mod 7.
		if !w.IsZero(w.ZMul(big.NewInt(6), three)) {
			t.Fatal("3^6 mod 7 != 1")
		}
		got := w.ZMul(big.NewInt(2), three)
		if w.Key(got) != "2" {
			t.Fatalf("3^2 mod 7 = %s, want 2", w.Key(got))
		}
		neg := w.ZMul(big.NewInt(-1), three)
		if !w.Equal(neg, w.Neg(three)) {
			t.Fatal("power -1 disagrees with Neg")
		}
	})

	t.Run("zero is identity", func(t *testing.T) {
		if w.Key(w.Zero()) != "1" {
			t.Fatalf("zero = %s, want 1", w.Key(w.Zero()))
		}
		if !w.IsZero(w.ZMul(big.NewInt(0), three)) {
			t.Fatal("0-th power is not the identity")
		}
	})
}

func TestUnitsValidation(t *testing.T) {
	if _, err := NewUnits(6, 2); err == nil {
		t.Fatal("2 mod 6 accepted as a unit")
	}
	if _, err := NewUnits(1); err == nil {
		t.Fatal("modulus 1 accepted")
	}
}

func TestHomFunc(t *testing.T) {
	u7, _ := NewUnits(7, 3)
	w := NewWrap(u7)

	// Squaring is a homomorphism on an abelian group.
	sq := w.HomFunc(w, func(v Value) Value { return u7.Mul(v, v) })

	got := sq.Apply(w.Of(big.NewInt(3)))
	if w.Key(got) != "2" {
		t.Fatalf("square of 3 = %s, want 2", w.Key(got))
	}

	if _, _, err := sq.Kernel(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Kernel error = %v, want ErrUnsupported", err)
	}
	if _, _, err := sq.Image(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Image error = %v, want ErrUnsupported", err)
	}
	if _, ok := sq.Preimage(w.Zero()); ok {
		t.Fatal("Preimage reported success on an opaque group")
	}
}
