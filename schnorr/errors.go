package schnorr

import (
	"fmt"
	"math/big"
)

// ExpressionsNotEqualError is returned by Check when the verification
// equation g^Z == A * h^E (mod p) does not hold.
type ExpressionsNotEqualError struct {
	LHS *big.Int
	RHS *big.Int
}

func (e *ExpressionsNotEqualError) Error() string {
	return fmt.Sprintf("schnorr: verification failed: g^z = %s, a*h^e = %s", e.LHS.Text(16), e.RHS.Text(16))
}
