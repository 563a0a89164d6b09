package remote

import (
	"math/big"
	"net"
	"sync"
	"testing"

	"github.com/dkrypt/sigma/schnorr"
	"github.com/dkrypt/sigma/sigmaproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runLoopback wires a RemoteVerifierSide (prover's host, holding the
// witness) and a RemoteProverSide (verifier's host) over an in-memory
// net.Pipe and runs both concurrently, as two threads connected by a
// loopback socket would.
func runLoopback(t *testing.T, instance *schnorr.Instance, witness *big.Int) (proverErr, verifierErr error) {
	t.Helper()

	proverConn, verifierConn := net.Pipe()
	defer proverConn.Close()
	defer verifierConn.Close()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		local := schnorr.New(instance, witness)
		side := NewRemoteVerifierSide[*big.Int, *big.Int, *big.Int](local, proverConn)
		proverErr = sigmaproto.Run[*big.Int, *big.Int, *big.Int](side)
	}()

	go func() {
		defer wg.Done()
		local := schnorr.New(instance, nil)
		side := NewRemoteProverSide[*big.Int, *big.Int, *big.Int](local, verifierConn)
		verifierErr = sigmaproto.Run[*big.Int, *big.Int, *big.Int](side)
	}()

	wg.Wait()
	return proverErr, verifierErr
}

func TestRemoteLoopbackHonestRunAccepts(t *testing.T) {
	instance, w, err := schnorr.Generate(1024, 128)
	require.NoError(t, err)

	proverErr, verifierErr := runLoopback(t, instance, w)
	assert.NoError(t, proverErr)
	assert.NoError(t, verifierErr)
}

func TestRemoteLoopbackWrongWitnessRejects(t *testing.T) {
	instance, _, err := schnorr.Generate(256, 64)
	require.NoError(t, err)

	wrongWitness := new(big.Int).Add(instance.Q, big.NewInt(1))
	wrongWitness.Mod(wrongWitness, instance.Q)

	proverErr, verifierErr := runLoopback(t, instance, wrongWitness)
	assert.Error(t, proverErr)
	assert.Error(t, verifierErr)
}
