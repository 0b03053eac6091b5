package core

import (
	"fmt"
	"io"
)

// Multilinear is a multilinear polynomial over {0,1}^n given by its 2^n
// coefficients in the monomial-over-hypercube basis: Coefficients()[mask]
// is the coefficient of the monomial made of every variable x_j whose bit
// (n-1-j) is set in mask (variable 0 is the most significant bit). The
// commitment code Reed-Solomon encodes these coefficients with each index
// bit-reversed, so that codeword folding binds variable 0 first.
type Multilinear struct {
	field  Field
	n      int
	coeffs []Element
}

// NewMultilinear wraps a length-2^n coefficient vector.
func NewMultilinear(field Field, n int, coeffs []Element) (*Multilinear, error) {
	if len(coeffs) != 1<<uint(n) {
		return nil, fmt.Errorf("core: multilinear needs 2^%d=%d coefficients, got %d", n, 1<<uint(n), len(coeffs))
	}
	return &Multilinear{field: field, n: n, coeffs: coeffs}, nil
}

// RandomMultilinear samples a uniformly random n-variable multilinear
// polynomial, in the style of the reference prover's benchmark fixtures.
func RandomMultilinear(field Field, n int, r io.Reader) (*Multilinear, error) {
	size := 1 << uint(n)
	coeffs := make([]Element, size)
	for i := range coeffs {
		v, err := field.Random(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = v
	}
	return NewMultilinear(field, n, coeffs)
}

// NumVars returns n.
func (p *Multilinear) NumVars() int { return p.n }

// Field returns the field P is defined over.
func (p *Multilinear) Field() Field { return p.field }

// Coefficients returns a copy of the monomial-basis coefficient vector.
func (p *Multilinear) Coefficients() []Element {
	out := make([]Element, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Evaluate computes P(point) for an arbitrary point in F^n.
func (p *Multilinear) Evaluate(point []Element) (Element, error) {
	if len(point) != p.n {
		return nil, fmt.Errorf("core: evaluate expects %d coordinates, got %d", p.n, len(point))
	}
	total := p.field.Zero()
	for mask, coeff := range p.coeffs {
		if coeff.IsZero() {
			continue
		}
		term := coeff
		for j := 0; j < p.n; j++ {
			bit := p.n - 1 - j
			if mask&(1<<uint(bit)) != 0 {
				term = term.Mul(point[j])
			}
		}
		total = total.Add(term)
	}
	return total, nil
}

// EvaluateHypercube returns the 2^n evaluations of P over the boolean
// hypercube, indexed with the same bit convention as Coefficients. It is
// computed with the standard sum-over-subsets (zeta) transform in
// O(n*2^n) field operations rather than by evaluating each point from
// scratch.
func (p *Multilinear) EvaluateHypercube() []Element {
	size := len(p.coeffs)
	vals := make([]Element, size)
	copy(vals, p.coeffs)
	for bit := 0; bit < p.n; bit++ {
		mask := 1 << uint(bit)
		for x := 0; x < size; x++ {
			if x&mask != 0 {
				vals[x] = vals[x].Add(vals[x^mask])
			}
		}
	}
	return vals
}

// EqMultilinear is the multilinear polynomial equal to 1 at the boolean
// point Z and 0 everywhere else on the hypercube.
type EqMultilinear struct {
	field Field
	point []Element
}

// NewEqMultilinear builds eq(Z, .) for an opening point Z.
func NewEqMultilinear(field Field, point []Element) *EqMultilinear {
	cp := make([]Element, len(point))
	copy(cp, point)
	return &EqMultilinear{field: field, point: cp}
}

// EvaluateHypercube returns eq(Z, x) for every boolean x, using the same
// bit convention as Multilinear.EvaluateHypercube (point[0] controls the
// most significant bit), built by the standard doubling construction in
// O(2^n) field operations.
func (e *EqMultilinear) EvaluateHypercube() []Element {
	table := []Element{e.field.One()}
	for k := len(e.point) - 1; k >= 0; k-- {
		zk := e.point[k]
		oneMinusZk := e.field.One().Sub(zk)
		next := make([]Element, len(table)*2)
		for i, v := range table {
			next[i] = v.Mul(oneMinusZk)
			next[i+len(table)] = v.Mul(zk)
		}
		table = next
	}
	return table
}

// Eq evaluates eq(z, x) directly: prod_i (z_i*x_i + (1-z_i)*(1-x_i)).
func Eq(field Field, z, x []Element) (Element, error) {
	if len(z) != len(x) {
		return nil, fmt.Errorf("core: eq dimension mismatch: %d vs %d", len(z), len(x))
	}
	result := field.One()
	one := field.One()
	for i := range z {
		same := z[i].Mul(x[i]).Add(one.Sub(z[i]).Mul(one.Sub(x[i])))
		result = result.Mul(same)
	}
	return result, nil
}
