// Package facade holds the shared implementation behind the three thin
// parameter-set packages (kyber512, kyber768, kyber1024): each is a thin
// configuration shell, so all three wrap this one generic Scheme rather
// than repeating the engine three times.
package facade

import (
	"crypto/subtle"

	kemengine "github.com/cloudflare/kyberkem/internal/kyber/kem"
	"github.com/cloudflare/kyberkem/internal/kyber/params"
)

// Scheme implements the public kem.Scheme interface for one fixed K by
// delegating to the shared engine in internal/kyber/kem.
type Scheme struct {
	inner *kemengine.Scheme
}

// New builds the facade Scheme for the given K. Panics if K is not 2, 3 or
// 4: the three exported packages each call this once with a fixed literal,
// so an error here would be a programming mistake, not a runtime input.
func New(k int) *Scheme {
	s, err := kemengine.New(k)
	if err != nil {
		panic(err)
	}
	return &Scheme{inner: s}
}

func (s *Scheme) Name() string              { return s.inner.Params.Name }
func (s *Scheme) PublicKeySize() int        { return s.inner.Params.PublicKeySize() }
func (s *Scheme) PrivateKeySize() int       { return s.inner.Params.PrivateKeySize() }
func (s *Scheme) CiphertextSize() int       { return s.inner.Params.CiphertextSize() }
func (s *Scheme) SharedKeySize() int        { return params.SharedKeySize }
func (s *Scheme) K() int                    { return s.inner.Params.K }
func (s *Scheme) ParamSet() params.ParamSet { return s.inner.Params }

// GenerateKeyPair returns a fresh keypair using crypto/rand.
func (s *Scheme) GenerateKeyPair() (pk, sk []byte, err error) {
	return s.inner.GenerateKeyPair(nil)
}

// GenerateKeyPairFromSeed derives a keypair deterministically, for KAT
// tests: d and z must each be params.SeedSize bytes.
func (s *Scheme) GenerateKeyPairFromSeed(d, z []byte) (pk, sk []byte, err error) {
	return s.inner.GenerateKeyPairFromSeed(d, z)
}

// Encapsulate returns a fresh (ciphertext, shared secret) pair for pk.
func (s *Scheme) Encapsulate(pk []byte) (ct, ss []byte, err error) {
	return s.inner.Encapsulate(pk)
}

// EncapsulateFromSeed is Encapsulate with caller-supplied randomness, for
// known-answer tests and determinism checks.
func (s *Scheme) EncapsulateFromSeed(pk, seed []byte) (ct, ss []byte, err error) {
	return s.inner.EncapsulateFromSeed(pk, seed)
}

// Decapsulate recovers the shared secret ct encapsulates for sk.
func (s *Scheme) Decapsulate(sk, ct []byte) (ss []byte, err error) {
	return s.inner.Decapsulate(sk, ct)
}

// PublicKey is an opaque, length-checked public key for one Scheme.
type PublicKey struct {
	scheme *Scheme
	bytes  []byte
}

// PrivateKey is an opaque, length-checked private key for one Scheme.
type PrivateKey struct {
	scheme *Scheme
	bytes  []byte
}

// UnmarshalPublicKey validates buf's length and wraps it as a PublicKey.
func (s *Scheme) UnmarshalPublicKey(buf []byte) (*PublicKey, error) {
	if len(buf) != s.PublicKeySize() {
		return nil, kemengine.ErrInputLength
	}
	cp := append([]byte(nil), buf...)
	return &PublicKey{scheme: s, bytes: cp}, nil
}

// UnmarshalPrivateKey validates buf's length and wraps it as a PrivateKey.
func (s *Scheme) UnmarshalPrivateKey(buf []byte) (*PrivateKey, error) {
	if len(buf) != s.PrivateKeySize() {
		return nil, kemengine.ErrInputLength
	}
	cp := append([]byte(nil), buf...)
	return &PrivateKey{scheme: s, bytes: cp}, nil
}

// Bytes returns a copy of the packed public key.
func (pk *PublicKey) Bytes() []byte { return append([]byte(nil), pk.bytes...) }

// Bytes returns a copy of the packed private key.
func (sk *PrivateKey) Bytes() []byte { return append([]byte(nil), sk.bytes...) }

// Equal reports whether pk and other encode the same public key under the
// same scheme. Public keys are not secret; this need not be constant-time.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk.scheme != other.scheme {
		return false
	}
	return string(pk.bytes) == string(other.bytes)
}

// Equal reports whether sk and other encode the same private key under the
// same scheme, in constant time since private key material is secret.
func (sk *PrivateKey) Equal(other *PrivateKey) bool {
	if sk.scheme != other.scheme {
		return false
	}
	return subtle.ConstantTimeCompare(sk.bytes, other.bytes) == 1
}
