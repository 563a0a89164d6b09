package wire

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := big.NewInt(123456789)

	require.NoError(t, Write(&buf, in))

	var out big.Int
	require.NoError(t, Read(&buf, &out))

	assert.Equal(t, 0, in.Cmp(&out))
}

func TestReadRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xff, 0xff, 0xff, 0xff})

	var out big.Int
	assert.Error(t, Read(&buf, &out))
}

func TestReadRejectsTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, big.NewInt(1)))
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-1])

	var out big.Int
	assert.Error(t, Read(truncated, &out))
}
