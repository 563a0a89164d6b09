package or

import (
	"math/big"
	"testing"

	"github.com/dkrypt/sigma/schnorr"
	"github.com/dkrypt/sigma/sigmaproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literal group from the schnorr scenarios: p = 1907, q = 953, g = 343.
func literalInstances(h1, h2 int64) (*schnorr.Instance, *schnorr.Instance) {
	p, q, g := big.NewInt(1907), big.NewInt(953), big.NewInt(343)
	i0 := schnorr.NewInstance(p, q, g, big.NewInt(h1))
	i1 := schnorr.NewInstance(p, q, g, big.NewInt(h2))
	return i0, i1
}

func TestOrHonestRunBranch0IsAccepted(t *testing.T) {
	w := big.NewInt(121)
	h1 := new(big.Int).Exp(big.NewInt(343), w, big.NewInt(1907))
	i0, i1 := literalInstances(0, 862)
	i0.H = h1

	p0 := schnorr.New(i0, w)
	p1 := schnorr.New(i1, nil)

	protocol, err := New[*big.Int, *big.Int](p0, p1, 0)
	require.NoError(t, err)

	require.NoError(t, sigmaproto.Run[InitialMsg[*big.Int], *big.Int, Response[*big.Int]](protocol))
}

func TestOrHonestRunBranch1IsAccepted(t *testing.T) {
	w := big.NewInt(121)
	h2 := new(big.Int).Exp(big.NewInt(343), w, big.NewInt(1907))
	i0, i1 := literalInstances(862, 0)
	i1.H = h2

	p0 := schnorr.New(i0, nil)
	p1 := schnorr.New(i1, w)

	protocol, err := New[*big.Int, *big.Int](p0, p1, 1)
	require.NoError(t, err)

	require.NoError(t, sigmaproto.Run[InitialMsg[*big.Int], *big.Int, Response[*big.Int]](protocol))
}

func TestOrSimulatorIsAccepted(t *testing.T) {
	w := big.NewInt(121)
	h1 := new(big.Int).Exp(big.NewInt(343), w, big.NewInt(1907))
	i0, i1 := literalInstances(0, 862)
	i0.H = h1

	p0 := schnorr.New(i0, nil)
	p1 := schnorr.New(i1, nil)

	protocol, err := New[*big.Int, *big.Int](p0, p1, 0)
	require.NoError(t, err)

	e := big.NewInt(675)
	msg, resp := protocol.Simulate(e)

	assert.NoError(t, protocol.Check(msg, e, resp))
}

func TestOrRejectsWrongBranchIndex(t *testing.T) {
	i0, i1 := literalInstances(0, 862)
	p0 := schnorr.New(i0, nil)
	p1 := schnorr.New(i1, nil)

	_, err := New[*big.Int, *big.Int](p0, p1, 2)
	assert.Error(t, err)
}

func TestOrRejectsChallengeXorMismatch(t *testing.T) {
	w := big.NewInt(121)
	h1 := new(big.Int).Exp(big.NewInt(343), w, big.NewInt(1907))
	i0, i1 := literalInstances(0, 862)
	i0.H = h1

	p0 := schnorr.New(i0, w)
	p1 := schnorr.New(i1, nil)
	protocol, err := New[*big.Int, *big.Int](p0, p1, 0)
	require.NoError(t, err)

	msg := protocol.InitialMessage()
	e := protocol.Challenge()
	resp := protocol.ChallengeResponse(e)

	resp.E1 = new(big.Int).Add(resp.E1, big.NewInt(1))
	err = protocol.Check(msg, e, resp)
	assert.Error(t, err)
	var mismatch *ChallengeXorMismatchError
	assert.ErrorAs(t, err, &mismatch)
}
