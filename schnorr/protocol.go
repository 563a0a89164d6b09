package schnorr

import (
	"crypto/rand"
	"math/big"

	"github.com/dkrypt/sigma/sigmaproto"
)

// Protocol is a single-use Schnorr discrete-log Σ-protocol run. Construct
// one with New per run; the ephemeral random exponent established in
// InitialMessage is consumed by ChallengeResponse and must not be reused.
type Protocol struct {
	instance *Instance
	witness  *big.Int // nil on a verifier-only / simulation-only object

	r *big.Int // ephemeral exponent from InitialMessage; nil until set
}

var _ sigmaproto.Protocol[*big.Int, *big.Int, *big.Int] = (*Protocol)(nil)

// New constructs a Schnorr protocol object over instance. witness may be
// nil; the object can still be used via Simulate and Check, but
// ChallengeResponse will panic if an honest run is attempted without one.
func New(instance *Instance, witness *big.Int) *Protocol {
	return &Protocol{instance: instance, witness: witness}
}

// InitialMessage samples r uniformly from [0, p) and returns A = g^r mod p.
func (p *Protocol) InitialMessage() *big.Int {
	r, err := rand.Int(rand.Reader, p.instance.P)
	if err != nil {
		panic("schnorr: random source is broken: " + err.Error())
	}
	p.r = r
	return new(big.Int).Exp(p.instance.G, r, p.instance.P)
}

// Challenge samples a uniform challenge from [0, 2^(bits(q)-1)), a
// fixed-length subset of [0, q) as documented for this protocol.
func (p *Protocol) Challenge() *big.Int {
	t := uint(p.instance.Q.BitLen() - 1)
	bound := new(big.Int).Lsh(big.NewInt(1), t)
	e, err := rand.Int(rand.Reader, bound)
	if err != nil {
		panic("schnorr: random source is broken: " + err.Error())
	}
	return e
}

// ChallengeResponse returns Z = (r + E*w) mod q, consuming the ephemeral
// exponent established by InitialMessage. Panics if called without a
// witness or before InitialMessage — both are programming errors.
func (p *Protocol) ChallengeResponse(e *big.Int) *big.Int {
	if p.witness == nil {
		panic("schnorr: ChallengeResponse called on a protocol with no witness")
	}
	if p.r == nil {
		panic("schnorr: ChallengeResponse called before InitialMessage")
	}

	z := new(big.Int).Mul(e, p.witness)
	z.Add(z, p.r)
	z.Mod(z, p.instance.Q)
	p.r = nil
	return z
}

// Check accepts iff g^Z mod p == (A * h^E) mod p.
func (p *Protocol) Check(a, e, z *big.Int) error {
	lhs := new(big.Int).Exp(p.instance.G, z, p.instance.P)

	rhs := new(big.Int).Exp(p.instance.H, e, p.instance.P)
	rhs.Mul(rhs, a)
	rhs.Mod(rhs, p.instance.P)

	if lhs.Cmp(rhs) != 0 {
		return &ExpressionsNotEqualError{LHS: lhs, RHS: rhs}
	}
	return nil
}

// Simulate produces a transcript (A, Z) that Check accepts for the given
// challenge, without using a witness: it samples Z uniformly from [0, p)
// and derives A = g^Z * (h^-1)^E mod p via h's modular inverse.
func (p *Protocol) Simulate(e *big.Int) (*big.Int, *big.Int) {
	z, err := rand.Int(rand.Reader, p.instance.P)
	if err != nil {
		panic("schnorr: random source is broken: " + err.Error())
	}

	hInv := new(big.Int).ModInverse(p.instance.H, p.instance.P)
	if hInv == nil {
		panic("schnorr: h has no inverse modulo p; instance is malformed")
	}

	a := new(big.Int).Exp(p.instance.G, z, p.instance.P)
	hPowNegE := new(big.Int).Exp(hInv, e, p.instance.P)
	a.Mul(a, hPowNegE)
	a.Mod(a, p.instance.P)

	return a, z
}
