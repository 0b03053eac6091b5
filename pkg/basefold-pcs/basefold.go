package basefoldpcs

import (
	"io"

	"github.com/vybium/basefold-pcs/internal/basefold-pcs/core"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/oracle"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/protocols"
)

// RandomPolynomial samples a uniformly random n-variable multilinear
// polynomial over field.
func RandomPolynomial(field Field, n int, r io.Reader) (*Polynomial, error) {
	return core.RandomMultilinear(field, n, r)
}

// RandomPoint samples n uniformly random field elements, a valid opening
// point for an n-variable polynomial.
func RandomPoint(field Field, n int, r io.Reader) ([]Element, error) {
	point := make([]Element, n)
	for i := range point {
		v, err := field.Random(r)
		if err != nil {
			return nil, &Error{Code: ErrInvalidInput, Message: "sample random point", Cause: err}
		}
		point[i] = v
	}
	return point, nil
}

// RandomCombination samples m uniformly random field elements, a valid
// combination vector for opening m batched polynomials together.
func RandomCombination(field Field, m int, r io.Reader) ([]Element, error) {
	comb := make([]Element, m)
	for i := range comb {
		v, err := field.Random(r)
		if err != nil {
			return nil, &Error{Code: ErrInvalidInput, Message: "sample random combination", Cause: err}
		}
		comb[i] = v
	}
	return comb, nil
}

// BaseFoldCommitment is a committed single polynomial, ready to be opened.
type BaseFoldCommitment struct {
	inner *protocols.BaseFoldCommitment
}

// Root returns the commitment's Merkle root.
func (c *BaseFoldCommitment) Root() []byte { return c.inner.Root() }

// BaseFoldProver commits to and opens single polynomials.
type BaseFoldProver struct {
	field Field
	cfg   *Config
}

// NewBaseFoldProver builds a prover over field with the given config.
func NewBaseFoldProver(field Field, cfg *Config) (*BaseFoldProver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Code: ErrInvalidConfig, Message: "invalid config", Cause: err}
	}
	return &BaseFoldProver{field: field, cfg: cfg}, nil
}

// Commit encodes poly and commits to its codeword.
func (p *BaseFoldProver) Commit(poly *Polynomial) (*BaseFoldCommitment, error) {
	inner, err := protocols.Commit(p.field, p.cfg, poly)
	if err != nil {
		return nil, &Error{Code: ErrCommitment, Message: "commit", Cause: err}
	}
	return &BaseFoldCommitment{inner: inner}, nil
}

// Open proves that the committed polynomial evaluates to the returned
// value at point.
func (p *BaseFoldProver) Open(comm *BaseFoldCommitment, point []Element) (*BaseFoldProof, Element, error) {
	oc := oracle.New(p.field)
	proof, v, err := protocols.Open(p.field, oc, p.cfg, comm.inner, point)
	if err != nil {
		return nil, nil, &Error{Code: ErrOpening, Message: "open", Cause: err}
	}
	return proof, v, nil
}

// BaseFoldVerifier verifies single-polynomial opening proofs.
type BaseFoldVerifier struct {
	field Field
	cfg   *Config
}

// NewBaseFoldVerifier builds a verifier over field with the given config.
func NewBaseFoldVerifier(field Field, cfg *Config) (*BaseFoldVerifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Code: ErrInvalidConfig, Message: "invalid config", Cause: err}
	}
	return &BaseFoldVerifier{field: field, cfg: cfg}, nil
}

// Verify checks proof against root for the claim P(point) = value.
func (v *BaseFoldVerifier) Verify(root []byte, point []Element, value Element, proof *BaseFoldProof) (bool, error) {
	oc := oracle.New(v.field)
	ok, err := protocols.Verify(v.field, oc, v.cfg, root, point, value, proof)
	if err != nil {
		return false, &Error{Code: ErrVerification, Message: "verify", Cause: err}
	}
	return ok, nil
}
