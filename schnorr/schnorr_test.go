package schnorr

import (
	"math/big"
	"testing"

	"github.com/dkrypt/sigma/sigmaproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literal group used throughout: p = 1907, q = 953, g = 343 (q prime,
// p = 2q+1 prime, g has order q modulo p).
func literalInstance(h int64) *Instance {
	return NewInstance(big.NewInt(1907), big.NewInt(953), big.NewInt(343), big.NewInt(h))
}

func TestHonestRunIsAccepted(t *testing.T) {
	w := big.NewInt(121)
	p := big.NewInt(1907)
	h := new(big.Int).Exp(big.NewInt(343), w, p)

	instance := literalInstance(0)
	instance.H = h

	protocol := New(instance, w)
	require.NoError(t, sigmaproto.Run[*big.Int, *big.Int, *big.Int](protocol))
}

func TestSimulatorIsAccepted(t *testing.T) {
	instance := literalInstance(862)
	e := big.NewInt(675)

	protocol := New(instance, nil)
	a, z := protocol.Simulate(e)

	assert.NoError(t, protocol.Check(a, e, z))
}

func TestGeneratedHonestRunIsAccepted(t *testing.T) {
	instance, w, err := Generate(256, 64)
	require.NoError(t, err)

	protocol := New(instance, w)
	require.NoError(t, sigmaproto.Run[*big.Int, *big.Int, *big.Int](protocol))
}

func TestGeneratedSimulatorIsAccepted(t *testing.T) {
	instance, _, err := Generate(256, 64)
	require.NoError(t, err)

	e := big.NewInt(675)
	protocol := New(instance, nil)
	a, z := protocol.Simulate(e)

	assert.NoError(t, protocol.Check(a, e, z))
}

func TestGenerateValidatesIsValid(t *testing.T) {
	instance, _, err := Generate(256, 64)
	require.NoError(t, err)
	assert.True(t, instance.IsValid())
}

func TestDegenerateInstanceIsInvalid(t *testing.T) {
	one := big.NewInt(1)
	instance := NewInstance(one, one, one, one)
	assert.False(t, instance.IsValid())
}

func TestChallengeResponseWithoutWitnessPanics(t *testing.T) {
	instance := literalInstance(862)
	protocol := New(instance, nil)
	protocol.InitialMessage()

	assert.Panics(t, func() {
		protocol.ChallengeResponse(big.NewInt(1))
	})
}

func TestChallengeResponseBeforeInitialMessagePanics(t *testing.T) {
	instance := literalInstance(862)
	protocol := New(instance, big.NewInt(3))

	assert.Panics(t, func() {
		protocol.ChallengeResponse(big.NewInt(1))
	})
}

func TestInstanceJSONRoundTrip(t *testing.T) {
	instance, _, err := Generate(256, 64)
	require.NoError(t, err)

	data, err := instance.MarshalJSON()
	require.NoError(t, err)

	var decoded Instance
	require.NoError(t, decoded.UnmarshalJSON(data))

	assert.Equal(t, 0, instance.P.Cmp(decoded.P))
	assert.Equal(t, 0, instance.Q.Cmp(decoded.Q))
	assert.Equal(t, 0, instance.G.Cmp(decoded.G))
	assert.Equal(t, 0, instance.H.Cmp(decoded.H))
}

func TestTamperedTranscriptIsRejected(t *testing.T) {
	instance := literalInstance(862)
	e := big.NewInt(675)

	protocol := New(instance, nil)
	a, z := protocol.Simulate(e)

	tampered := new(big.Int).Add(z, big.NewInt(1))
	assert.Error(t, protocol.Check(a, e, tampered))
}
