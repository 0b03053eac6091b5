package basefoldpcs

import (
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/core"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/protocols"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/utils"
)

// Element is a single field element.
type Element = core.Element

// Field is a finite field this module can run the PCS over.
type Field = core.Field

// Polynomial is a multilinear polynomial over {0,1}^n.
type Polynomial = core.Multilinear

// Config holds the protocol's Reed-Solomon rate, target security and
// field choice.
type Config = utils.Config

// BaseFoldProof is the opening proof for a single committed polynomial.
type BaseFoldProof = protocols.BaseFoldProof

// BatchedProof is the opening proof for several committed polynomials
// opened together at the same point.
type BatchedProof = protocols.BatchedProof

// DefaultConfig returns this module's default protocol parameters.
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}

// NewField constructs "mersenne61ext" or "ft255".
func NewField(name string) (Field, error) {
	return core.NewField(name)
}

// NewPolynomial wraps a length-2^n coefficient vector as an n-variable
// multilinear polynomial.
func NewPolynomial(field Field, n int, coeffs []Element) (*Polynomial, error) {
	return core.NewMultilinear(field, n, coeffs)
}
