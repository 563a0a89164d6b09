// Package commitment implements a Pedersen-style integer commitment
// derived from the Schnorr Σ-protocol's honest-verifier zero-knowledge
// simulator: a commitment is a simulated Schnorr transcript's initial
// message, and opening it is just replaying Check against the claimed
// value.
//
// The construction is perfectly hiding (the simulator's A is uniform
// given the instance and any value, when Z is uniform) and
// computationally binding under the hardness of discrete log in the
// Schnorr group (a second opening to a different value would yield the
// instance's discrete log).
package commitment

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/dkrypt/sigma/schnorr"
)

// Scheme commits to and verifies openings of values in [0, q) under a
// fixed Schnorr instance.
type Scheme struct {
	instance *schnorr.Instance
}

// GenParams generates a fresh Schnorr instance suitable for use as a
// commitment scheme's public parameters.
func GenParams(pBits, qBits int) (*schnorr.Instance, *big.Int, error) {
	return schnorr.Generate(pBits, qBits)
}

// CheckParams reports whether instance is valid for use as commitment
// parameters.
func CheckParams(instance *schnorr.Instance) bool {
	return instance.IsValid()
}

// New constructs a commitment scheme over instance.
func New(instance *schnorr.Instance) *Scheme {
	return &Scheme{instance: instance}
}

// Commit commits to value (interpreted as an integer in [0, q)),
// returning the commitment A and the opening response Z; the opening is
// the pair (value, Z).
func (s *Scheme) Commit(value *big.Int) (a, z *big.Int) {
	protocol := schnorr.New(s.instance, nil)
	return protocol.Simulate(value)
}

// Verify reports whether (e, z) is a valid opening of commitment a.
func (s *Scheme) Verify(a, e, z *big.Int) bool {
	protocol := schnorr.New(s.instance, nil)
	return protocol.Check(a, e, z) == nil
}

// Encode interprets the UTF-8 bytes of s as a big-endian unsigned
// integer, for use as a value to commit to.
func Encode(s string) *big.Int {
	return new(big.Int).SetBytes([]byte(s))
}

// Decode is the inverse of Encode; it fails if i's big-endian bytes are
// not valid UTF-8.
func Decode(i *big.Int) (string, error) {
	b := i.Bytes()
	if !utf8.Valid(b) {
		return "", fmt.Errorf("commitment: decoded bytes are not valid UTF-8")
	}
	return string(b), nil
}
