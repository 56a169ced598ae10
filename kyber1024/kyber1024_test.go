package kyber1024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudflare/kyberkem/kem"
)

var _ kem.Scheme = Scheme()

func TestSchemeSizes(t *testing.T) {
	t.Parallel()

	sch := Scheme()
	assert.Equal(t, "Kyber1024", sch.Name())
	assert.Equal(t, 1568, sch.PublicKeySize())
	assert.Equal(t, 3168, sch.PrivateKeySize())
	assert.Equal(t, 1568, sch.CiphertextSize())
}

func TestPackageLevelRoundTrip(t *testing.T) {
	t.Parallel()

	pk, sk, err := GenerateKeyPair()
	require.NoError(t, err)

	ct, ss, err := Encapsulate(pk)
	require.NoError(t, err)

	got, err := Decapsulate(sk, ct)
	require.NoError(t, err)
	assert.Equal(t, ss, got)
}
