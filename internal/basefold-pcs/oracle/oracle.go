// Package oracle implements the Fiat-Shamir transcript shared by the
// BaseFold and batched-PCS provers and verifiers: both sides replay the
// same Append/Challenge calls in the same order, so the "randomness" each
// protocol consumes is a deterministic hash of the transcript so far
// rather than a real interactive verifier.
package oracle

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/basefold-pcs/internal/basefold-pcs/core"
)

// RandomOracle is a running SHA3 transcript with a SHAKE256-derived
// challenge stream. Append absorbs prover messages (Merkle roots, claimed
// evaluations, round polynomials); Challenge/QueryIndices/RLCCoefficients
// squeeze verifier randomness bound to everything absorbed so far.
type RandomOracle struct {
	field   core.Field
	state   []byte
	counter uint64
}

// New starts a fresh transcript over field.
func New(field core.Field) *RandomOracle {
	return &RandomOracle{field: field, state: make([]byte, 32)}
}

// Append absorbs the given byte strings into the transcript state and
// resets the per-draw counter, so every challenge drawn afterwards depends
// on them.
func (o *RandomOracle) Append(parts ...[]byte) {
	h := sha3.New256()
	h.Write(o.state)
	for _, p := range parts {
		h.Write(p)
	}
	o.state = h.Sum(nil)
	o.counter = 0
}

// AppendElements is a convenience wrapper binding a batch of field
// elements (e.g. a round's claimed evaluations) into the transcript.
func (o *RandomOracle) AppendElements(elems ...core.Element) {
	parts := make([][]byte, len(elems))
	for i, e := range elems {
		parts[i] = e.Bytes()
	}
	o.Append(parts...)
}

// freshXOF returns a SHAKE256 stream seeded by the current transcript
// state and an internal draw counter, then advances the counter. Using a
// XOF rather than a fixed-size digest lets field.Random re-read as many
// bytes as big.Int's rejection sampling needs without ever running dry.
func (o *RandomOracle) freshXOF() sha3.ShakeHash {
	xof := sha3.NewShake256()
	xof.Write(o.state)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], o.counter)
	xof.Write(buf[:])
	o.counter++
	return xof
}

// Challenge squeezes the next field element from the transcript.
func (o *RandomOracle) Challenge() (core.Element, error) {
	v, err := o.field.Random(o.freshXOF())
	if err != nil {
		return nil, fmt.Errorf("oracle: draw challenge: %w", err)
	}
	return v, nil
}

// RLCCoefficients draws n field elements, for protocols that combine n
// inputs with a weight vector rather than a single Horner scalar.
func (o *RandomOracle) RLCCoefficients(n int) ([]core.Element, error) {
	out := make([]core.Element, n)
	for i := range out {
		v, err := o.Challenge()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// QueryIndices draws n distinct indices in [0, domainSize), sorted for a
// deterministic query order, for the query phase both protocols run
// starting from the pair indices of their first codeword layer.
func (o *RandomOracle) QueryIndices(n, domainSize int) ([]int, error) {
	if n <= 0 || domainSize <= 0 {
		return nil, fmt.Errorf("oracle: invalid query request: n=%d domainSize=%d", n, domainSize)
	}
	if n > domainSize {
		n = domainSize
	}
	seen := make(map[int]bool, n)
	indices := make([]int, 0, n)
	for len(indices) < n {
		xof := o.freshXOF()
		var buf [8]byte
		if _, err := io.ReadFull(xof, buf[:]); err != nil {
			return nil, fmt.Errorf("oracle: draw query index: %w", err)
		}
		idx := int(binary.BigEndian.Uint64(buf[:]) % uint64(domainSize))
		if !seen[idx] {
			seen[idx] = true
			indices = append(indices, idx)
		}
	}
	sort.Ints(indices)
	return indices, nil
}
