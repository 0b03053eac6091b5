package core

import "fmt"

// Fold performs one Reed-Solomon split-and-combine step: given the values
// of a codeword over coset C (length L, L even) and a folding challenge r,
// it returns the length-L/2 codeword over C.Square() obtained by combining
// each pair (v[i], v[i+L/2]) via
//
//	fold[i] = ((v[i]+v[i+L/2]) + r*(v[i]-v[i+L/2])*C.InverseAt(i)) * Inverse2
//
// BaseFold's codeword folding (r is a sumcheck challenge) and the batched
// scheme's function chain (r is a coordinate of the opening point) both
// call it once per round; the batched folding chain uses its own coupled
// recurrence instead.
func Fold(field Field, v []Element, r Element, c *Coset) ([]Element, error) {
	half := len(v) / 2
	if len(v) != c.Size() || len(v)%2 != 0 {
		return nil, fmt.Errorf("core: fold expects %d values over a size-%d coset, got %d", c.Size(), c.Size(), len(v))
	}
	inv2 := field.Inverse2()
	result := make([]Element, half)
	for i := 0; i < half; i++ {
		result[i] = FoldSingle(field, v[i], v[i+half], r, c.InverseAt(i), inv2)
	}
	return result, nil
}

// FoldSingle applies the fold formula to one pair (left, right) at a
// domain point whose inverse is elemInv, given the field's precomputed
// Inverse2. It is the building block Fold uses for every index, exposed
// separately because the query-phase verifier folds one opened pair at a
// time rather than a whole codeword.
func FoldSingle(field Field, left, right, r, elemInv, inv2 Element) Element {
	sum := left.Add(right)
	diff := left.Sub(right)
	scaled := r.Mul(diff).Mul(elemInv)
	return sum.Add(scaled).Mul(inv2)
}
