package remote

import "fmt"

// TransportError wraps a failure reading or writing a protocol move over
// the underlying stream. A transport failure mid-run is a fatal
// condition for the run (the core specification defines no retry or
// timeout policy), so the remote moves that do not already return an
// error (InitialMessage, Challenge, ChallengeResponse) panic with this
// type rather than silently returning a zero value. Check returns it as
// its error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote: %s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SubProtocolFailureError is returned by RemoteProverSide.Check (on the
// verifier's host) and wraps the local sub-protocol's verification
// failure, preserving the innermost cause.
type SubProtocolFailureError struct {
	Err error
}

func (e *SubProtocolFailureError) Error() string {
	return fmt.Sprintf("remote: sub-protocol rejected: %s", e.Err)
}

func (e *SubProtocolFailureError) Unwrap() error {
	return e.Err
}

// RemoteRejectedError is returned by RemoteVerifierSide.Check when the
// peer (a RemoteProverSide on the verifier's host) reports rejection.
type RemoteRejectedError struct{}

func (e *RemoteRejectedError) Error() string {
	return "remote: peer reported rejection"
}
