package or

import (
	"fmt"
	"math/big"
)

// ChallengeXorMismatchError is returned by Check when the two branch
// challenges do not XOR back to the outer challenge.
type ChallengeXorMismatchError struct {
	E0       *big.Int
	E1       *big.Int
	Expected *big.Int
}

func (e *ChallengeXorMismatchError) Error() string {
	return fmt.Sprintf("or: e0 xor e1 = %s, expected %s (e0=%s, e1=%s)",
		new(big.Int).Xor(e.E0, e.E1).Text(16), e.Expected.Text(16), e.E0.Text(16), e.E1.Text(16))
}

// SubProtocolFailureError wraps a branch's verification failure, naming
// the wire-order branch index (0 or 1, as assigned by the caller's
// witness-independent instance ordering) that rejected.
type SubProtocolFailureError struct {
	Branch int
	Err    error
}

func (e *SubProtocolFailureError) Error() string {
	return fmt.Sprintf("or: branch %d failed: %s", e.Branch, e.Err)
}

func (e *SubProtocolFailureError) Unwrap() error {
	return e.Err
}
