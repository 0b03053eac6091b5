package basefoldpcs

import (
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/oracle"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/protocols"
)

// BatchedCommitment is a committed batch of equal-arity polynomials,
// ready to be opened together at one point.
type BatchedCommitment struct {
	inner *protocols.BatchedCommitment
}

// Roots returns each polynomial's individual Merkle root, in commitment
// order.
func (c *BatchedCommitment) Roots() [][]byte { return c.inner.Roots() }

// BatchedProver commits to and opens batches of polynomials.
type BatchedProver struct {
	field Field
	cfg   *Config
}

// NewBatchedProver builds a batched prover over field with the given
// config.
func NewBatchedProver(field Field, cfg *Config) (*BatchedProver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Code: ErrInvalidConfig, Message: "invalid config", Cause: err}
	}
	return &BatchedProver{field: field, cfg: cfg}, nil
}

// Commit commits to polys, which must all share the same variable count.
func (p *BatchedProver) Commit(polys []*Polynomial) (*BatchedCommitment, error) {
	inner, err := protocols.CommitBatch(p.field, p.cfg, polys)
	if err != nil {
		return nil, &Error{Code: ErrCommitment, Message: "commit batch", Cause: err}
	}
	return &BatchedCommitment{inner: inner}, nil
}

// Open proves that sum_j comb[j]*P_j(point) equals the returned
// evaluation, for every polynomial committed in comm.
func (p *BatchedProver) Open(comm *BatchedCommitment, point, comb []Element) (*BatchedProof, Element, error) {
	oc := oracle.New(p.field)
	proof, evaluation, err := protocols.Open(p.field, oc, p.cfg, comm.inner, point, comb)
	if err != nil {
		return nil, nil, &Error{Code: ErrOpening, Message: "open batch", Cause: err}
	}
	return proof, evaluation, nil
}

// BatchedVerifier verifies batched opening proofs.
type BatchedVerifier struct {
	field Field
	cfg   *Config
}

// NewBatchedVerifier builds a batched verifier over field with the given
// config.
func NewBatchedVerifier(field Field, cfg *Config) (*BatchedVerifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Code: ErrInvalidConfig, Message: "invalid config", Cause: err}
	}
	return &BatchedVerifier{field: field, cfg: cfg}, nil
}

// Verify checks proof against roots for the claim sum_j comb[j]*P_j(point)
// = evaluation.
func (v *BatchedVerifier) Verify(roots [][]byte, point, comb []Element, evaluation Element, proof *BatchedProof) (bool, error) {
	oc := oracle.New(v.field)
	ok, err := protocols.Verify(v.field, oc, v.cfg, roots, point, comb, evaluation, proof)
	if err != nil {
		return false, &Error{Code: ErrVerification, Message: "verify batch", Cause: err}
	}
	return ok, nil
}
