package core

import "golang.org/x/crypto/sha3"

// HashLeaf hashes the bytes of a Merkle leaf (a sibling pair of field
// elements, or an internal node's two children) with SHA3-256. SHA3 is
// used throughout this module's transcript and tree hashing, matching the
// hash function used for Fiat-Shamir elsewhere in the codebase.
func HashLeaf(parts ...[]byte) []byte {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
