package core

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// mersenne61Modulus is the Mersenne prime 2^61-1. Its base field only has
// 2-adicity 1 (p-1 = 2*(2^60-1)), which is why the coset/FFT layer works
// over the quadratic extension instead: p+1 = 2^61 contributes 61 more
// factors of two to the extension's multiplicative order, p^2-1.
var mersenne61Modulus = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))

// mersenne61LogOrder bounds how deep the 2-adic subgroup search goes; the
// extension supports up to 2^62, but every variable count this module is
// exercised with (n<=12, small code rates) fits comfortably under 2^32.
const mersenne61LogOrder = 32

// Mersenne61ExtField is the quadratic extension F_p[i]/(i^2+1) of the
// Mersenne prime field 2^61-1. p = 2^61-1 is 3 mod 4, so -1 is a
// non-residue and i^2=-1 gives an irreducible extension.
type Mersenne61ExtField struct {
	p          *big.Int
	root       *Mersenne61ExtElement
	inverseTwo *Mersenne61ExtElement
}

// Mersenne61ExtElement is a+b*i with a,b in F_p.
type Mersenne61ExtElement struct {
	field *Mersenne61ExtField
	a, b  *big.Int
}

// NewMersenne61ExtField constructs the field and derives its root of unity
// and INVERSE_2 constant.
func NewMersenne61ExtField() *Mersenne61ExtField {
	f := &Mersenne61ExtField{p: new(big.Int).Set(mersenne61Modulus)}
	f.root = findMersenneRootOfUnity(f, mersenne61LogOrder)
	two := f.elem(big.NewInt(2), big.NewInt(0))
	invTwo, err := two.Inv()
	if err != nil {
		panic("mersenne61: 2 is never zero in this field")
	}
	f.inverseTwo = invTwo.(*Mersenne61ExtElement)
	return f
}

func (f *Mersenne61ExtField) elem(a, b *big.Int) *Mersenne61ExtElement {
	return &Mersenne61ExtElement{
		field: f,
		a:     new(big.Int).Mod(a, f.p),
		b:     new(big.Int).Mod(b, f.p),
	}
}

func (f *Mersenne61ExtField) Name() string         { return "Mersenne61Ext" }
func (f *Mersenne61ExtField) LogOrder() int        { return mersenne61LogOrder }
func (f *Mersenne61ExtField) RootOfUnity() Element { return f.root }
func (f *Mersenne61ExtField) Inverse2() Element    { return f.inverseTwo }
func (f *Mersenne61ExtField) Zero() Element        { return f.elem(big.NewInt(0), big.NewInt(0)) }
func (f *Mersenne61ExtField) One() Element         { return f.elem(big.NewInt(1), big.NewInt(0)) }
func (f *Mersenne61ExtField) FromInt(x int64) Element {
	return f.elem(big.NewInt(x), big.NewInt(0))
}

func (f *Mersenne61ExtField) Random(r io.Reader) (Element, error) {
	a, err := rand.Int(r, f.p)
	if err != nil {
		return nil, fmt.Errorf("mersenne61ext: random element: %w", err)
	}
	b, err := rand.Int(r, f.p)
	if err != nil {
		return nil, fmt.Errorf("mersenne61ext: random element: %w", err)
	}
	return f.elem(a, b), nil
}

func (e *Mersenne61ExtElement) Add(other Element) Element {
	o := other.(*Mersenne61ExtElement)
	return e.field.elem(new(big.Int).Add(e.a, o.a), new(big.Int).Add(e.b, o.b))
}

func (e *Mersenne61ExtElement) Sub(other Element) Element {
	o := other.(*Mersenne61ExtElement)
	return e.field.elem(new(big.Int).Sub(e.a, o.a), new(big.Int).Sub(e.b, o.b))
}

// Mul implements (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (e *Mersenne61ExtElement) Mul(other Element) Element {
	o := other.(*Mersenne61ExtElement)
	ac := new(big.Int).Mul(e.a, o.a)
	bd := new(big.Int).Mul(e.b, o.b)
	ad := new(big.Int).Mul(e.a, o.b)
	bc := new(big.Int).Mul(e.b, o.a)
	return e.field.elem(new(big.Int).Sub(ac, bd), new(big.Int).Add(ad, bc))
}

func (e *Mersenne61ExtElement) Neg() Element {
	return e.field.elem(new(big.Int).Neg(e.a), new(big.Int).Neg(e.b))
}

// Inv returns (a-bi)/(a^2+b^2), the extension inverse via the norm map.
func (e *Mersenne61ExtElement) Inv() (Element, error) {
	if e.IsZero() {
		return nil, fmt.Errorf("mersenne61ext: cannot invert zero")
	}
	norm := new(big.Int).Add(new(big.Int).Mul(e.a, e.a), new(big.Int).Mul(e.b, e.b))
	norm.Mod(norm, e.field.p)
	normInv := new(big.Int).ModInverse(norm, e.field.p)
	return e.field.elem(new(big.Int).Mul(e.a, normInv), new(big.Int).Mul(new(big.Int).Neg(e.b), normInv)), nil
}

func (e *Mersenne61ExtElement) IsZero() bool {
	return e.a.Sign() == 0 && e.b.Sign() == 0
}

func (e *Mersenne61ExtElement) Equal(other Element) bool {
	o, ok := other.(*Mersenne61ExtElement)
	if !ok {
		return false
	}
	return e.a.Cmp(o.a) == 0 && e.b.Cmp(o.b) == 0
}

func (e *Mersenne61ExtElement) Bytes() []byte {
	buf := make([]byte, 16)
	e.a.FillBytes(buf[:8])
	e.b.FillBytes(buf[8:])
	return buf
}

func (e *Mersenne61ExtElement) String() string {
	return fmt.Sprintf("%s+%si", e.a.String(), e.b.String())
}

// findMersenneRootOfUnity searches the extension's multiplicative group
// (order p^2-1) for a generator of its order-2^logOrder subgroup, trying
// successive candidates of the form c+i until one's order isn't a proper
// divisor of 2^logOrder.
func findMersenneRootOfUnity(f *Mersenne61ExtField, logOrder int) *Mersenne61ExtElement {
	pSquaredMinus1 := new(big.Int).Sub(new(big.Int).Mul(f.p, f.p), big.NewInt(1))
	subgroupOrder := new(big.Int).Lsh(big.NewInt(1), uint(logOrder))
	exp := new(big.Int).Div(pSquaredMinus1, subgroupOrder)
	half := new(big.Int).Lsh(big.NewInt(1), uint(logOrder-1))

	one := f.One()
	for c := int64(2); ; c++ {
		base := f.elem(big.NewInt(c), big.NewInt(1))
		candidate := ExpElement(one, base, exp)
		if candidate.IsZero() || candidate.Equal(one) {
			continue
		}
		check := ExpElement(one, candidate, half)
		if !check.Equal(one) {
			return candidate.(*Mersenne61ExtElement)
		}
	}
}
