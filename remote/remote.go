// Package remote wraps a Σ-protocol so a prover and a verifier can run
// it across a bidirectional byte stream instead of in a single process.
// Messages are framed with the length-prefixed JSON wire format: a
// 4-byte big-endian length followed by that many bytes of JSON text.
//
// RemoteVerifierSide runs on the prover's host: it produces A and Z
// locally (from the wrapped sub-protocol) and sends them, and receives E
// and the final accept/reject boolean. RemoteProverSide runs on the
// verifier's host: it receives A and Z, produces E and the accept/reject
// boolean locally, and sends them. The naming reflects which side of the
// wire protocol each wrapper *runs*, not which role it locally performs.
package remote

import (
	"io"

	"github.com/dkrypt/sigma/internal/wire"
	"github.com/dkrypt/sigma/sigmaproto"
)

// RemoteVerifierSide wraps sub so its moves are sent to / received from
// stream as the prover-facing side of a remote run.
type RemoteVerifierSide[A, E, Z any] struct {
	sub    sigmaproto.Protocol[A, E, Z]
	stream io.ReadWriter
}

var _ sigmaproto.Protocol[int, int, int] = (*RemoteVerifierSide[int, int, int])(nil)

// NewRemoteVerifierSide wraps sub to run over stream.
func NewRemoteVerifierSide[A, E, Z any](sub sigmaproto.Protocol[A, E, Z], stream io.ReadWriter) *RemoteVerifierSide[A, E, Z] {
	return &RemoteVerifierSide[A, E, Z]{sub: sub, stream: stream}
}

// InitialMessage computes A locally and sends it.
func (r *RemoteVerifierSide[A, E, Z]) InitialMessage() A {
	a := r.sub.InitialMessage()
	if err := wire.Write(r.stream, a); err != nil {
		panic(&TransportError{Op: "sending initial message", Err: err})
	}
	return a
}

// Challenge receives E from the stream.
func (r *RemoteVerifierSide[A, E, Z]) Challenge() E {
	var e E
	if err := wire.Read(r.stream, &e); err != nil {
		panic(&TransportError{Op: "receiving challenge", Err: err})
	}
	return e
}

// ChallengeResponse computes Z locally and sends it.
func (r *RemoteVerifierSide[A, E, Z]) ChallengeResponse(e E) Z {
	z := r.sub.ChallengeResponse(e)
	if err := wire.Write(r.stream, z); err != nil {
		panic(&TransportError{Op: "sending response", Err: err})
	}
	return z
}

// Check receives the peer's accept/reject boolean.
func (r *RemoteVerifierSide[A, E, Z]) Check(a A, e E, z Z) error {
	var accepted bool
	if err := wire.Read(r.stream, &accepted); err != nil {
		return &TransportError{Op: "receiving verdict", Err: err}
	}
	if !accepted {
		return &RemoteRejectedError{}
	}
	return nil
}

// Simulate delegates to the wrapped sub-protocol; it never touches the
// stream.
func (r *RemoteVerifierSide[A, E, Z]) Simulate(e E) (A, Z) {
	return r.sub.Simulate(e)
}

// RemoteProverSide wraps sub so its moves are sent to / received from
// stream as the verifier-facing side of a remote run.
type RemoteProverSide[A, E, Z any] struct {
	sub    sigmaproto.Protocol[A, E, Z]
	stream io.ReadWriter
}

var _ sigmaproto.Protocol[int, int, int] = (*RemoteProverSide[int, int, int])(nil)

// NewRemoteProverSide wraps sub to run over stream. sub should be
// constructed without a witness: this side never runs InitialMessage or
// ChallengeResponse honestly, only Challenge, Check and (if needed)
// Simulate.
func NewRemoteProverSide[A, E, Z any](sub sigmaproto.Protocol[A, E, Z], stream io.ReadWriter) *RemoteProverSide[A, E, Z] {
	return &RemoteProverSide[A, E, Z]{sub: sub, stream: stream}
}

// InitialMessage receives A from the stream.
func (r *RemoteProverSide[A, E, Z]) InitialMessage() A {
	var a A
	if err := wire.Read(r.stream, &a); err != nil {
		panic(&TransportError{Op: "receiving initial message", Err: err})
	}
	return a
}

// Challenge computes E locally and sends it.
func (r *RemoteProverSide[A, E, Z]) Challenge() E {
	e := r.sub.Challenge()
	if err := wire.Write(r.stream, e); err != nil {
		panic(&TransportError{Op: "sending challenge", Err: err})
	}
	return e
}

// ChallengeResponse receives Z from the stream.
func (r *RemoteProverSide[A, E, Z]) ChallengeResponse(e E) Z {
	var z Z
	if err := wire.Read(r.stream, &z); err != nil {
		panic(&TransportError{Op: "receiving response", Err: err})
	}
	return z
}

// Check runs the wrapped sub-protocol's Check locally and sends the
// resulting boolean to the peer.
func (r *RemoteProverSide[A, E, Z]) Check(a A, e E, z Z) error {
	err := r.sub.Check(a, e, z)

	var result error
	if err != nil {
		result = &SubProtocolFailureError{Err: err}
	}

	if werr := wire.Write(r.stream, err == nil); werr != nil {
		return &TransportError{Op: "sending verdict", Err: werr}
	}
	return result
}

// Simulate delegates to the wrapped sub-protocol; it never touches the
// stream.
func (r *RemoteProverSide[A, E, Z]) Simulate(e E) (A, Z) {
	return r.sub.Simulate(e)
}
