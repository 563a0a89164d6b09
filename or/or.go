// Package or implements the OR-composition of two Σ-protocols sharing a
// challenge space with a bitwise-XOR self-inverse operator: a combined
// protocol that proves knowledge of a witness for at least one of two
// relations without revealing which.
package or

import (
	"fmt"
	"math/big"

	"github.com/dkrypt/sigma/sigmaproto"
)

// InitialMsg is the OR protocol's first move: one initial message per
// branch, in the same order the two sub-protocols were supplied to New.
type InitialMsg[A any] struct {
	A0 A
	A1 A
}

// Response is the OR protocol's final move: per-branch challenge and
// response pairs, in the same order the two sub-protocols were supplied
// to New.
type Response[Z any] struct {
	E0 *big.Int
	Z0 Z
	E1 *big.Int
	Z1 Z
}

// Protocol composes two sub-protocols p0, p1 — sharing a *big.Int
// challenge space with bitwise XOR as the combining operator — into a
// single Σ-protocol for their disjunction.
//
// The constructor takes an explicit witnessedBranch rather than always
// treating the first sub-protocol as the witnessed one: the original
// construction this is derived from hard-wired "witness always goes with
// branch 0", which meant the caller's choice of instance order leaked
// which branch held the witness to anyone who saw how the pair was
// assembled. Making the witnessed index an explicit argument lets callers
// keep a fixed, witness-independent public ordering of the two
// instances, closing that gap.
type Protocol[A, Z any] struct {
	protocols       [2]sigmaproto.Protocol[A, *big.Int, Z]
	witnessedBranch int

	stashed bool
	stashE  *big.Int
	stashZ  Z
}

// New composes p0 and p1, where p0/p1 are sub-protocol objects already
// constructed over their respective public instances — p0 for branch 0,
// p1 for branch 1 — with witnessedBranch (0 or 1) naming which of the
// two was constructed with a witness.
func New[A, Z any](p0, p1 sigmaproto.Protocol[A, *big.Int, Z], witnessedBranch int) (*Protocol[A, Z], error) {
	if witnessedBranch != 0 && witnessedBranch != 1 {
		return nil, fmt.Errorf("or: witnessedBranch must be 0 or 1, got %d", witnessedBranch)
	}
	return &Protocol[A, Z]{
		protocols:       [2]sigmaproto.Protocol[A, *big.Int, Z]{p0, p1},
		witnessedBranch: witnessedBranch,
	}, nil
}

// InitialMessage runs the witnessed branch honestly and simulates the
// other branch against a freshly drawn challenge, stashing that
// branch's (challenge, response) for ChallengeResponse.
func (p *Protocol[A, Z]) InitialMessage() InitialMsg[A] {
	real := p.witnessedBranch
	other := 1 - real

	aReal := p.protocols[real].InitialMessage()

	eOther := p.protocols[other].Challenge()
	aOther, zOther := p.protocols[other].Simulate(eOther)
	p.stashE, p.stashZ, p.stashed = eOther, zOther, true

	msg := InitialMsg[A]{}
	if real == 0 {
		msg.A0, msg.A1 = aReal, aOther
	} else {
		msg.A0, msg.A1 = aOther, aReal
	}
	return msg
}

// Challenge emits the outer challenge from branch 0's challenge space
// (shared by both branches by construction).
func (p *Protocol[A, Z]) Challenge() *big.Int {
	return p.protocols[0].Challenge()
}

// ChallengeResponse computes the real branch's challenge as e XOR the
// stashed simulated challenge, and its response via the real
// sub-protocol, emitting both branches' (challenge, response) pairs.
func (p *Protocol[A, Z]) ChallengeResponse(e *big.Int) Response[Z] {
	if !p.stashed {
		panic("or: ChallengeResponse called before InitialMessage")
	}

	real := p.witnessedBranch
	eReal := new(big.Int).Xor(e, p.stashE)
	zReal := p.protocols[real].ChallengeResponse(eReal)

	resp := Response[Z]{}
	if real == 0 {
		resp.E0, resp.Z0 = eReal, zReal
		resp.E1, resp.Z1 = p.stashE, p.stashZ
	} else {
		resp.E0, resp.Z0 = p.stashE, p.stashZ
		resp.E1, resp.Z1 = eReal, zReal
	}
	return resp
}

// Check rejects unless e0 XOR e1 equals the outer challenge, and
// otherwise accepts iff both branches' sub-protocols accept.
func (p *Protocol[A, Z]) Check(msg InitialMsg[A], e *big.Int, resp Response[Z]) error {
	xor := new(big.Int).Xor(resp.E0, resp.E1)
	if xor.Cmp(e) != 0 {
		return &ChallengeXorMismatchError{E0: resp.E0, E1: resp.E1, Expected: e}
	}

	if err := p.protocols[0].Check(msg.A0, resp.E0, resp.Z0); err != nil {
		return &SubProtocolFailureError{Branch: 0, Err: err}
	}
	if err := p.protocols[1].Check(msg.A1, resp.E1, resp.Z1); err != nil {
		return &SubProtocolFailureError{Branch: 1, Err: err}
	}
	return nil
}

// Simulate produces an accepted transcript for e without using either
// branch's witness: it draws e0 freely, sets e1 := e XOR e0, and
// simulates both branches.
func (p *Protocol[A, Z]) Simulate(e *big.Int) (InitialMsg[A], Response[Z]) {
	e0 := p.protocols[0].Challenge()
	e1 := new(big.Int).Xor(e, e0)

	a0, z0 := p.protocols[0].Simulate(e0)
	a1, z1 := p.protocols[1].Simulate(e1)

	return InitialMsg[A]{A0: a0, A1: a1}, Response[Z]{E0: e0, Z0: z0, E1: e1, Z1: z1}
}

// asProtocol documents (and, for any instantiation, verifies at compile
// time) that *Protocol[A, Z] satisfies sigmaproto.Protocol.
func asProtocol[A, Z any](p *Protocol[A, Z]) sigmaproto.Protocol[InitialMsg[A], *big.Int, Response[Z]] {
	return p
}
