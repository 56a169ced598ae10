package pke

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudflare/kyberkem/internal/kyber/params"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range []params.ParamSet{params.Kyber512, params.Kyber768, params.Kyber1024} {
		d := bytes.Repeat([]byte{0x11}, params.SeedSize)
		pk, sk := KeyGenFromSeed(p, d)
		require.Len(t, pk, p.PublicKeySize())
		require.Len(t, sk, p.CPAPrivateKeySize())

		msg := bytes.Repeat([]byte{0xAA}, params.MessageSize)
		coins := bytes.Repeat([]byte{0x22}, params.SeedSize)

		ct := Encrypt(p, pk, msg, coins)
		require.Len(t, ct, p.CiphertextSize())

		got := Decrypt(p, sk, ct)
		assert.Equal(t, msg, got, "parameter set K=%d round trip failed", p.K)
	}
}

func TestKeyGenFromSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	d := bytes.Repeat([]byte{0x03}, params.SeedSize)
	pk1, sk1 := KeyGenFromSeed(params.Kyber768, d)
	pk2, sk2 := KeyGenFromSeed(params.Kyber768, d)

	assert.Equal(t, pk1, pk2)
	assert.Equal(t, sk1, sk2)
}

func TestEncryptIsDeterministicGivenCoins(t *testing.T) {
	t.Parallel()

	p := params.Kyber512
	pk, _ := KeyGenFromSeed(p, bytes.Repeat([]byte{0x04}, params.SeedSize))
	msg := bytes.Repeat([]byte{0x55}, params.MessageSize)
	coins := bytes.Repeat([]byte{0x06}, params.SeedSize)

	ct1 := Encrypt(p, pk, msg, coins)
	ct2 := Encrypt(p, pk, msg, coins)
	assert.Equal(t, ct1, ct2)
}
