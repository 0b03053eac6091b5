// Package protocols implements the BaseFold single-polynomial PCS and the
// batched multi-polynomial PCS built on top of the core field/coset/
// Merkle/polynomial primitives and the Fiat-Shamir oracle.
package protocols

import "github.com/vybium/basefold-pcs/internal/basefold-pcs/core"

// roundPolynomial evaluates the degree-2 round polynomial s(X) = sum over
// the remaining hypercube of p_hc(X,x)*e_hc(X,x) at X=0,1,2, which is all
// the BaseFold sumcheck in this package needs each round: p_hc and e_hc
// are the two halves (low/high) of the current evaluation table, and X=2
// is reached by linear extrapolation since both factors are degree <=1 in
// X individually, making their product degree <=2.
func roundPolynomial(field core.Field, p, e []core.Element) (s0, s1, s2 core.Element) {
	half := len(p) / 2
	s0 = field.Zero()
	s1 = field.Zero()
	s2 = field.Zero()
	two := field.FromInt(2)
	for x := 0; x < half; x++ {
		p0, p1 := p[x], p[x+half]
		e0, e1 := e[x], e[x+half]
		s0 = s0.Add(p0.Mul(e0))
		s1 = s1.Add(p1.Mul(e1))
		p2 := two.Mul(p1).Sub(p0)
		e2 := two.Mul(e1).Sub(e0)
		s2 = s2.Add(p2.Mul(e2))
	}
	return s0, s1, s2
}

// foldHypercubeHalf merges the low and high halves of a hypercube
// evaluation table under challenge r: result[x] = (1-r)*table[x] +
// r*table[x+half]. This is plain multilinear partial evaluation, distinct
// from core.Fold, which additionally untwists the Reed-Solomon coset
// structure; hypercube tables carry no such structure.
func foldHypercubeHalf(field core.Field, table []core.Element, r core.Element) []core.Element {
	half := len(table) / 2
	out := make([]core.Element, half)
	one := field.One()
	oneMinusR := one.Sub(r)
	for x := 0; x < half; x++ {
		out[x] = oneMinusR.Mul(table[x]).Add(r.Mul(table[x+half]))
	}
	return out
}

// interpolateQuadratic evaluates, at point, the unique degree-2
// polynomial through (0,y0), (1,y1), (2,y2).
func interpolateQuadratic(field core.Field, y0, y1, y2, point core.Element) core.Element {
	one := field.One()
	two := field.FromInt(2)
	inv2 := field.Inverse2()

	xMinus1 := point.Sub(one)
	xMinus2 := point.Sub(two)

	term0 := y0.Mul(xMinus1).Mul(xMinus2).Mul(inv2)
	term1 := y1.Mul(point).Mul(xMinus2).Neg()
	term2 := y2.Mul(point).Mul(xMinus1).Mul(inv2)

	return term0.Add(term1).Add(term2)
}
