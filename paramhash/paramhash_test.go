package paramhash

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintIsStable(t *testing.T) {
	p, q, g, h := big.NewInt(1907), big.NewInt(953), big.NewInt(343), big.NewInt(862)

	first := Fingerprint(p, q, g, h)
	second := Fingerprint(p, q, g, h)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded 32-byte digest
}

func TestFingerprintDependsOnAllFields(t *testing.T) {
	base := Fingerprint(big.NewInt(1907), big.NewInt(953), big.NewInt(343), big.NewInt(862))
	changed := Fingerprint(big.NewInt(1907), big.NewInt(953), big.NewInt(343), big.NewInt(863))
	assert.NotEqual(t, base, changed)
}
