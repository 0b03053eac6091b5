package core

import (
	"fmt"
	"math/big"
)

// Coset is a multiplicative coset shift*<g> of a power-of-two subgroup <g>
// of Field, used as an evaluation domain for the Reed-Solomon codewords
// the protocols fold round by round. Successive FRI rounds work over the
// coset produced by Square: squaring every domain point halves the coset's
// size while keeping it a coset of a (now half-order) subgroup, which is
// what lets fold() and the Merkle query phase walk the domains in lockstep
// with the codeword layers.
type Coset struct {
	field     Field
	logSize   int
	size      int
	shift     Element
	generator Element
	elements  []Element
	inverses  []Element
}

// NewCoset builds the coset shift*<g> where g is the canonical generator of
// the unique order-2^logSize subgroup of field.
func NewCoset(field Field, logSize int, shift Element) (*Coset, error) {
	if logSize < 0 || logSize > field.LogOrder() {
		return nil, fmt.Errorf("core: coset log-size %d exceeds field's 2-adicity %d", logSize, field.LogOrder())
	}
	if shift.IsZero() {
		return nil, fmt.Errorf("core: coset shift must be nonzero")
	}
	size := 1 << uint(logSize)
	power := new(big.Int).Lsh(big.NewInt(1), uint(field.LogOrder()-logSize))
	generator := ExpElement(field.One(), field.RootOfUnity(), power)

	elements := make([]Element, size)
	inverses := make([]Element, size)
	cur := shift
	for i := 0; i < size; i++ {
		elements[i] = cur
		inv, err := cur.Inv()
		if err != nil {
			return nil, fmt.Errorf("core: coset element %d is not invertible: %w", i, err)
		}
		inverses[i] = inv
		cur = cur.Mul(generator)
	}
	return &Coset{
		field:     field,
		logSize:   logSize,
		size:      size,
		shift:     shift,
		generator: generator,
		elements:  elements,
		inverses:  inverses,
	}, nil
}

// Size returns 2^LogSize.
func (c *Coset) Size() int { return c.size }

// LogSize returns the base-2 logarithm of Size.
func (c *Coset) LogSize() int { return c.logSize }

// Shift returns the coset's shift element.
func (c *Coset) Shift() Element { return c.shift }

// Generator returns the generator of the order-Size subgroup underlying
// this coset.
func (c *Coset) Generator() Element { return c.generator }

// ElementAt returns the i-th domain point, shift*generator^i.
func (c *Coset) ElementAt(i int) Element { return c.elements[i] }

// InverseAt returns the multiplicative inverse of the i-th domain point,
// precomputed at construction time for the fold() hot path.
func (c *Coset) InverseAt(i int) Element { return c.inverses[i] }

// Square returns the coset {x^2 : x in c}, which is itself a coset of half
// the size: shift^2 * <generator^2>.
func (c *Coset) Square() (*Coset, error) {
	if c.logSize == 0 {
		return nil, fmt.Errorf("core: cannot square a size-1 coset")
	}
	return NewCoset(c.field, c.logSize-1, c.shift.Mul(c.shift))
}

// FFT evaluates the univariate polynomial with coefficients `coeffs`
// (zero-padded up to Size if shorter) at every point of the coset, using a
// radix-2 Cooley-Tukey NTT on the coefficients after scaling them by
// shift^j so that the unshifted NTT lands on shift*generator^i.
func (c *Coset) FFT(coeffs []Element) ([]Element, error) {
	if len(coeffs) > c.size {
		return nil, fmt.Errorf("core: %d coefficients do not fit in a size-%d coset", len(coeffs), c.size)
	}
	padded := make([]Element, c.size)
	shiftPow := c.field.One()
	for i := 0; i < c.size; i++ {
		if i < len(coeffs) {
			padded[i] = coeffs[i].Mul(shiftPow)
		} else {
			padded[i] = c.field.Zero()
		}
		shiftPow = shiftPow.Mul(c.shift)
	}
	return ntt(padded, c.generator, c.field.One()), nil
}

// ntt computes the unshifted number-theoretic transform of coeffs (whose
// length must be a power of two) at the powers of root, via the standard
// recursive radix-2 Cooley-Tukey decimation-in-time split.
func ntt(coeffs []Element, root, one Element) []Element {
	n := len(coeffs)
	if n == 1 {
		return []Element{coeffs[0]}
	}
	half := n / 2
	even := make([]Element, half)
	odd := make([]Element, half)
	for i := 0; i < half; i++ {
		even[i] = coeffs[2*i]
		odd[i] = coeffs[2*i+1]
	}
	rootSquared := root.Mul(root)
	evalEven := ntt(even, rootSquared, one)
	evalOdd := ntt(odd, rootSquared, one)

	result := make([]Element, n)
	power := one
	for i := 0; i < half; i++ {
		t := power.Mul(evalOdd[i])
		result[i] = evalEven[i].Add(t)
		result[i+half] = evalEven[i].Sub(t)
		power = power.Mul(root)
	}
	return result
}
