package core

import "testing"

// evalUnivariate evaluates coeffs (c_0 + c_1 x + ...) at x via Horner's
// method, used as an independent check on Coset.FFT.
func evalUnivariate(field Field, coeffs []Element, x Element) Element {
	result := field.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(coeffs[i])
	}
	return result
}

func TestCosetFFTMatchesDirectEvaluation(t *testing.T) {
	field := NewMersenne61ExtField()
	coset, err := NewCoset(field, 4, field.RootOfUnity())
	if err != nil {
		t.Fatalf("NewCoset: %v", err)
	}

	coeffs := []Element{
		field.FromInt(3), field.FromInt(1), field.FromInt(4), field.FromInt(1),
		field.FromInt(5), field.FromInt(9), field.FromInt(2), field.FromInt(6),
	}

	values, err := coset.FFT(coeffs)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}
	if len(values) != coset.Size() {
		t.Fatalf("FFT returned %d values, want %d", len(values), coset.Size())
	}

	for i := 0; i < coset.Size(); i++ {
		want := evalUnivariate(field, coeffs, coset.ElementAt(i))
		if !values[i].Equal(want) {
			t.Errorf("FFT value at domain point %d does not match direct evaluation", i)
		}
	}
}

func TestCosetSquareHalvesSize(t *testing.T) {
	field := NewFt255Field()
	coset, err := NewCoset(field, 6, field.RootOfUnity())
	if err != nil {
		t.Fatalf("NewCoset: %v", err)
	}

	squared, err := coset.Square()
	if err != nil {
		t.Fatalf("Square: %v", err)
	}
	if squared.Size() != coset.Size()/2 {
		t.Errorf("Square() size = %d, want %d", squared.Size(), coset.Size()/2)
	}

	for i := 0; i < squared.Size(); i++ {
		want := coset.ElementAt(i).Mul(coset.ElementAt(i))
		if !squared.ElementAt(i).Equal(want) {
			t.Errorf("squared domain point %d does not match x^2 of original", i)
		}
	}
}

func TestCosetInverseAt(t *testing.T) {
	field := NewMersenne61ExtField()
	coset, err := NewCoset(field, 5, field.RootOfUnity())
	if err != nil {
		t.Fatalf("NewCoset: %v", err)
	}
	for i := 0; i < coset.Size(); i++ {
		if !coset.ElementAt(i).Mul(coset.InverseAt(i)).Equal(field.One()) {
			t.Errorf("element %d times its precomputed inverse != 1", i)
		}
	}
}

func TestNewCosetRejectsZeroShift(t *testing.T) {
	field := NewMersenne61ExtField()
	if _, err := NewCoset(field, 4, field.Zero()); err == nil {
		t.Errorf("expected error for zero shift")
	}
}

func TestNewCosetRejectsOversizedLog(t *testing.T) {
	field := NewMersenne61ExtField()
	if _, err := NewCoset(field, field.LogOrder()+1, field.RootOfUnity()); err == nil {
		t.Errorf("expected error for log-size exceeding field 2-adicity")
	}
}
