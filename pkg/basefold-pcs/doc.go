// Package basefoldpcs provides a multilinear polynomial commitment scheme
// in the FRI/BaseFold family.
//
// # Features
//
// - BaseFold: sumcheck interleaved with Reed-Solomon codeword folding, for
// committing to and opening a single multilinear polynomial.
// - Batched PCS: random linear combination, function-folding and
// codeword-folding for many polynomials at once, tied together by a
// single Fiat-Shamir transcript.
// - Two field choices: Mersenne61Ext (a quadratic extension of the
// Mersenne prime 2^61-1) and Ft255 (a 255-bit prime field).
//
// # Quick Start
//
// Committing to and opening a single polynomial:
//
//	field, _ := basefoldpcs.NewField("mersenne61ext")
//	cfg := basefoldpcs.DefaultConfig()
//	poly, _ := basefoldpcs.RandomPolynomial(field, 10, rand.Reader)
//
//	prover, _ := basefoldpcs.NewBaseFoldProver(field, cfg)
//	commitment, _ := prover.Commit(poly)
//
//	point, _ := basefoldpcs.RandomPoint(field, 10, rand.Reader)
//	proof, value, _ := prover.Open(commitment, point)
//
//	verifier, _ := basefoldpcs.NewBaseFoldVerifier(field, cfg)
//	ok, _ := verifier.Verify(commitment.Root(), point, value, proof)
//
// # Architecture
//
// - pkg/basefold-pcs/: public API (this package)
// - internal/basefold-pcs/: private implementation (not importable)
//
// The public API wraps the field/coset/Merkle primitives in
// internal/basefold-pcs/core, the Fiat-Shamir transcript in
// internal/basefold-pcs/oracle, and the BaseFold and batched protocols in
// internal/basefold-pcs/protocols, so the internals can be refactored
// without breaking callers.
package basefoldpcs
