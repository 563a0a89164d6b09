// Package paramhash derives a short, stable fingerprint of a Schnorr
// instance for display and logging — never for any protocol decision.
// It reuses the teacher package's hash choice (Blake2b-256, registered
// against the standard crypto.Hash enum by golang.org/x/crypto/blake2b)
// rather than introducing a second hash primitive into the dependency
// graph.
package paramhash

import (
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex-encoded Blake2b-256 digest of instance's
// four public values, in p, q, g, h order.
func Fingerprint(p, q, g, h *big.Int) string {
	sum := blake2b.Sum256(canonicalBytes(p, q, g, h))
	return hex.EncodeToString(sum[:])
}

// canonicalBytes concatenates each value's big-endian bytes, prefixed by
// its own length, so that no ambiguity arises from variable-width
// encodings of adjacent fields.
func canonicalBytes(values ...*big.Int) []byte {
	var out []byte
	for _, v := range values {
		b := v.Bytes()
		out = append(out, byte(len(b)>>24), byte(len(b)>>16), byte(len(b)>>8), byte(len(b)))
		out = append(out, b...)
	}
	return out
}
