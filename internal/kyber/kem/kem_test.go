package kem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudflare/kyberkem/internal/kyber/params"
)

func TestNewRejectsUnsupportedK(t *testing.T) {
	t.Parallel()

	for _, k := range []int{0, 1, 5, 256} {
		_, err := New(k)
		require.Error(t, err)
	}
}

func TestEncapsulateDecapsulateRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range []int{2, 3, 4} {
		sch, err := New(k)
		require.NoError(t, err)

		pk, sk, err := sch.GenerateKeyPair(nil)
		require.NoError(t, err)
		require.Len(t, pk, sch.Params.PublicKeySize())
		require.Len(t, sk, sch.Params.PrivateKeySize())

		ct, ss, err := sch.Encapsulate(pk)
		require.NoError(t, err)
		require.Len(t, ct, sch.Params.CiphertextSize())
		require.Len(t, ss, params.SharedKeySize)

		got, err := sch.Decapsulate(sk, ct)
		require.NoError(t, err)
		assert.Equal(t, ss, got, "K=%d: decapsulate(encapsulate(pk)) must recover the same shared secret", k)
	}
}

func TestDecapsulateImplicitRejectionIsDeterministic(t *testing.T) {
	t.Parallel()

	sch, err := New(3)
	require.NoError(t, err)

	pk, sk, err := sch.GenerateKeyPair(nil)
	require.NoError(t, err)

	ct, ss, err := sch.Encapsulate(pk)
	require.NoError(t, err)

	corrupted := bytes.Clone(ct)
	corrupted[0] ^= 0x01

	first, err := sch.Decapsulate(sk, corrupted)
	require.NoError(t, err, "decapsulate must never return an error, even for a corrupted ciphertext")
	second, err := sch.Decapsulate(sk, corrupted)
	require.NoError(t, err)

	assert.Equal(t, first, second, "implicit rejection must be deterministic for the same corrupted ciphertext and key")
	assert.NotEqual(t, ss, first, "a corrupted ciphertext must not recover the original shared secret")
}

func TestDecapsulateRejectsWrongLengthInputs(t *testing.T) {
	t.Parallel()

	sch, err := New(2)
	require.NoError(t, err)

	pk, sk, err := sch.GenerateKeyPair(nil)
	require.NoError(t, err)
	ct, _, err := sch.Encapsulate(pk)
	require.NoError(t, err)

	_, err = sch.Decapsulate(sk[:len(sk)-1], ct)
	assert.ErrorIs(t, err, ErrInputLength)

	_, err = sch.Decapsulate(sk, ct[:len(ct)-1])
	assert.ErrorIs(t, err, ErrInputLength)
}

func TestEncapsulateFromSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	sch, err := New(4)
	require.NoError(t, err)

	pk, _, err := sch.GenerateKeyPairFromSeed(bytes.Repeat([]byte{0x00}, 32), bytes.Repeat([]byte{0x01}, 32))
	require.NoError(t, err)

	seed := bytes.Repeat([]byte{0x42}, 32)
	ct1, ss1, err := sch.EncapsulateFromSeed(pk, seed)
	require.NoError(t, err)
	ct2, ss2, err := sch.EncapsulateFromSeed(pk, seed)
	require.NoError(t, err)

	assert.Equal(t, ct1, ct2, "encapsulating twice with the same seed and public key must produce the same ciphertext")
	assert.Equal(t, ss1, ss2)
}

func TestGenerateKeyPairFromSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	sch, err := New(3)
	require.NoError(t, err)

	d := bytes.Repeat([]byte{0x00}, 32)
	z := bytes.Repeat([]byte{0x00}, 32)

	pk1, sk1, err := sch.GenerateKeyPairFromSeed(d, z)
	require.NoError(t, err)
	pk2, sk2, err := sch.GenerateKeyPairFromSeed(d, z)
	require.NoError(t, err)

	assert.Equal(t, pk1, pk2)
	assert.Equal(t, sk1, sk2)
}
