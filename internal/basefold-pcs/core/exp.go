package core

import "math/big"

// ExpElement raises e to the given non-negative exponent by square-and-multiply.
// It is field-agnostic: it only relies on Mul and the caller supplying `one`.
func ExpElement(one, e Element, exponent *big.Int) Element {
	result := one
	base := e
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}
