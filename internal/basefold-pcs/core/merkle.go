package core

import (
	"bytes"
	"fmt"
)

// MerkleTree commits to a codeword layer of length L (L even) using
// paired leaves: leaf i hashes together v[i] and v[i+L/2], the same pair
// that fold() combines. A single query therefore reveals both values a
// folding round needs with one authentication path, instead of the two
// separate paths an unpaired tree would require.
type MerkleTree struct {
	values []Element
	layers [][][]byte
}

// NewMerkleTree commits to values, which must have even, positive length.
func NewMerkleTree(values []Element) (*MerkleTree, error) {
	if len(values) == 0 || len(values)%2 != 0 {
		return nil, fmt.Errorf("core: merkle tree needs an even, nonzero number of values, got %d", len(values))
	}
	half := len(values) / 2
	leaves := make([][]byte, half)
	for i := 0; i < half; i++ {
		leaves[i] = HashLeaf(values[i].Bytes(), values[i+half].Bytes())
	}
	layers := [][][]byte{leaves}
	cur := leaves
	for len(cur) > 1 {
		next := make([][]byte, (len(cur)+1)/2)
		for i := range next {
			left := cur[2*i]
			right := left
			if 2*i+1 < len(cur) {
				right = cur[2*i+1]
			}
			next[i] = HashLeaf(left, right)
		}
		layers = append(layers, next)
		cur = next
	}
	return &MerkleTree{values: values, layers: layers}, nil
}

// Root returns the tree's root hash.
func (t *MerkleTree) Root() []byte {
	return t.layers[len(t.layers)-1][0]
}

// NumPairs returns the number of paired leaves (half the codeword length).
func (t *MerkleTree) NumPairs() int {
	return len(t.layers[0])
}

// QueryResult is the opening of one paired leaf: the two folded values and
// the authentication path from their leaf hash up to the root.
type QueryResult struct {
	Left  Element
	Right Element
	Path  [][]byte
}

// Query opens the leaf at pair-index i, returning v[i], v[i+L/2] and the
// sibling hashes needed to recompute the root.
func (t *MerkleTree) Query(i int) (*QueryResult, error) {
	half := len(t.values) / 2
	if i < 0 || i >= half {
		return nil, fmt.Errorf("core: merkle query index %d out of range [0,%d)", i, half)
	}
	path := make([][]byte, 0, len(t.layers)-1)
	idx := i
	for layer := 0; layer < len(t.layers)-1; layer++ {
		siblingIdx := idx ^ 1
		nodes := t.layers[layer]
		if siblingIdx >= len(nodes) {
			siblingIdx = idx
		}
		path = append(path, nodes[siblingIdx])
		idx /= 2
	}
	return &QueryResult{Left: t.values[i], Right: t.values[i+half], Path: path}, nil
}

// VerifyQuery recomputes the root implied by a QueryResult at pair-index
// index and reports whether it matches root. Callers must check this
// result explicitly: a discarded or ignored false here is exactly the kind
// of bug that lets a malicious prover's unauthenticated values through.
func VerifyQuery(root []byte, index int, qr *QueryResult) bool {
	cur := HashLeaf(qr.Left.Bytes(), qr.Right.Bytes())
	idx := index
	for _, sibling := range qr.Path {
		if idx%2 == 0 {
			cur = HashLeaf(cur, sibling)
		} else {
			cur = HashLeaf(sibling, cur)
		}
		idx /= 2
	}
	return bytes.Equal(cur, root)
}
