package core

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func fields(t *testing.T) map[string]Field {
	t.Helper()
	return map[string]Field{
		"mersenne61ext": NewMersenne61ExtField(),
		"ft255":         NewFt255Field(),
	}
}

func TestFieldArithmetic(t *testing.T) {
	for name, f := range fields(t) {
		t.Run(name, func(t *testing.T) {
			a, err := f.Random(rand.Reader)
			if err != nil {
				t.Fatalf("Random: %v", err)
			}
			b, err := f.Random(rand.Reader)
			if err != nil {
				t.Fatalf("Random: %v", err)
			}

			t.Run("commutative add", func(t *testing.T) {
				if !a.Add(b).Equal(b.Add(a)) {
					t.Errorf("a+b != b+a")
				}
			})
			t.Run("commutative mul", func(t *testing.T) {
				if !a.Mul(b).Equal(b.Mul(a)) {
					t.Errorf("a*b != b*a")
				}
			})
			t.Run("additive identity", func(t *testing.T) {
				if !a.Add(f.Zero()).Equal(a) {
					t.Errorf("a+0 != a")
				}
			})
			t.Run("multiplicative identity", func(t *testing.T) {
				if !a.Mul(f.One()).Equal(a) {
					t.Errorf("a*1 != a")
				}
			})
			t.Run("additive inverse", func(t *testing.T) {
				if !a.Add(a.Neg()).IsZero() {
					t.Errorf("a+(-a) != 0")
				}
			})
			t.Run("multiplicative inverse", func(t *testing.T) {
				if a.IsZero() {
					return
				}
				inv, err := a.Inv()
				if err != nil {
					t.Fatalf("Inv: %v", err)
				}
				if !a.Mul(inv).Equal(f.One()) {
					t.Errorf("a*a^-1 != 1")
				}
			})
			t.Run("distributive", func(t *testing.T) {
				lhs := a.Mul(b.Add(f.One()))
				rhs := a.Mul(b).Add(a.Mul(f.One()))
				if !lhs.Equal(rhs) {
					t.Errorf("a*(b+1) != a*b+a*1")
				}
			})
			t.Run("invert zero fails", func(t *testing.T) {
				if _, err := f.Zero().Inv(); err == nil {
					t.Errorf("expected error inverting zero")
				}
			})
		})
	}
}

func TestFieldRootOfUnityOrder(t *testing.T) {
	for name, f := range fields(t) {
		t.Run(name, func(t *testing.T) {
			root := f.RootOfUnity()
			order := new(big.Int).Lsh(big.NewInt(1), uint(f.LogOrder()))
			if !ExpElement(f.One(), root, order).Equal(f.One()) {
				t.Errorf("root^(2^LogOrder) != 1")
			}
			half := new(big.Int).Lsh(big.NewInt(1), uint(f.LogOrder()-1))
			if ExpElement(f.One(), root, half).Equal(f.One()) {
				t.Errorf("root^(2^(LogOrder-1)) == 1, root does not have full order")
			}
		})
	}
}

func TestFieldInverse2(t *testing.T) {
	for name, f := range fields(t) {
		t.Run(name, func(t *testing.T) {
			two := f.FromInt(2)
			if !two.Mul(f.Inverse2()).Equal(f.One()) {
				t.Errorf("2 * Inverse2() != 1")
			}
		})
	}
}

func TestNewFieldRegistry(t *testing.T) {
	if _, err := NewField("mersenne61ext"); err != nil {
		t.Errorf("NewField(mersenne61ext): %v", err)
	}
	if _, err := NewField("ft255"); err != nil {
		t.Errorf("NewField(ft255): %v", err)
	}
	if _, err := NewField("bn254"); err == nil {
		t.Errorf("expected error for unknown field name")
	}
}
