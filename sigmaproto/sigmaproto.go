// Package sigmaproto defines the abstract three-move Σ-protocol contract
// that every concrete instantiation in this module (Schnorr, OR, and the
// remote transport wrappers) satisfies.
//
// A Σ-protocol object is created with an instance and, on the prover
// side, a witness; it is mutated by its three moves in strict order and
// is single-use. See the schnorr, or and remote packages for concrete
// protocols.
package sigmaproto

// Protocol is the three-move public-coin contract. A is the prover's
// initial message, E the verifier's challenge, Z the prover's response.
// Instance and witness types are specific to each instantiation and are
// handled by that package's constructor rather than by this interface.
type Protocol[A, E, Z any] interface {
	// InitialMessage is the prover's first move. It may mutate
	// ephemeral state retained for ChallengeResponse.
	InitialMessage() A

	// Challenge is the verifier's move: a uniform sample from the
	// protocol's challenge space.
	Challenge() E

	// ChallengeResponse is the prover's final move. It must be called
	// after InitialMessage; the schnorr and or implementations panic
	// otherwise.
	ChallengeResponse(e E) Z

	// Check is the verifier's accept/reject decision. A nil error
	// means accept.
	Check(a A, e E, z Z) error

	// Simulate is the honest-verifier zero-knowledge simulator: given
	// a challenge, it produces a transcript that Check accepts,
	// without using a witness.
	Simulate(e E) (A, Z)
}

// Run executes all three moves of p in the one-party local setting and
// returns the verifier's decision.
func Run[A, E, Z any](p Protocol[A, E, Z]) error {
	a := p.InitialMessage()
	e := p.Challenge()
	z := p.ChallengeResponse(e)
	return p.Check(a, e, z)
}
