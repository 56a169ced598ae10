package kyber768

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
	assert.Equal(t, "Kyber768", sch.Name())
	assert.Equal(t, 1184, sch.PublicKeySize())
	assert.Equal(t, 2400, sch.PrivateKeySize())
	assert.Equal(t, 1088, sch.CiphertextSize())
	assert.Equal(t, 32, sch.SharedKeySize())
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
