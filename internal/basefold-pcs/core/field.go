// Package core implements the field, coset, Merkle and polynomial
// primitives that the BaseFold and batched-PCS protocols are built on.
package core

import "io"

// Element is a single value in a Field. Implementations are immutable value
// types so that they can be freely shared across goroutines.
type Element interface {
	Add(Element) Element
	Sub(Element) Element
	Mul(Element) Element
	Neg() Element
	Inv() (Element, error)
	IsZero() bool
	Equal(Element) bool
	Bytes() []byte
	String() string
}

// Field is the capability set the core consumes: arithmetic, a canonical
// zero/one, random sampling, and a 2-adic root of unity of order 2^LogOrder.
// Two concrete fields implement it: Mersenne61Ext, a quadratic extension of
// the Mersenne prime 2^61-1, and Ft255, a 255-bit prime field.
type Field interface {
	Name() string
	LogOrder() int
	RootOfUnity() Element
	Inverse2() Element
	Zero() Element
	One() Element
	FromInt(int64) Element
	Random(r io.Reader) (Element, error)
}
