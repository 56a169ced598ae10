// Package kem implements the Fujisaki-Okamoto transform that turns the
// IND-CPA PKE in package pke into an IND-CCA2 key encapsulation mechanism.
package kem

import (
	"crypto/rand"
	"crypto/subtle"
	"io"

	"github.com/pkg/errors"

	"github.com/cloudflare/kyberkem/internal/kyber/hashing"
	"github.com/cloudflare/kyberkem/internal/kyber/params"
	"github.com/cloudflare/kyberkem/internal/kyber/pke"
)

// ErrInputLength is returned when a public key, secret key or ciphertext
// does not match the byte length its parameter set mandates.
var ErrInputLength = errors.New("kyber: input has the wrong length for this parameter set")

// ErrUnsupportedParameterSet is returned when K is not 2, 3 or 4.
var ErrUnsupportedParameterSet = errors.New("kyber: unsupported parameter set")

// Scheme is the IND-CCA2 KEM for one fixed parameter set. It holds no
// mutable state: every method is a pure function of its byte arguments.
type Scheme struct {
	Params params.ParamSet
}

// New builds the Scheme for the given K, or ErrUnsupportedParameterSet if
// K is not one of 2, 3 or 4.
func New(k int) (*Scheme, error) {
	p, err := params.ForK(k)
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedParameterSet, err.Error())
	}
	return &Scheme{Params: p}, nil
}

// GenerateKeyPair draws fresh randomness from rnd (crypto/rand.Reader if
// nil) and derives a keypair from it.
func (s *Scheme) GenerateKeyPair(rnd io.Reader) (pk, sk []byte, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	var d, z [params.SeedSize]byte
	if _, err = io.ReadFull(rnd, d[:]); err != nil {
		return nil, nil, errors.Wrap(err, "kyber: reading keygen seed")
	}
	if _, err = io.ReadFull(rnd, z[:]); err != nil {
		return nil, nil, errors.Wrap(err, "kyber: reading implicit-rejection seed")
	}
	return s.GenerateKeyPairFromSeed(d[:], z[:])
}

// GenerateKeyPairFromSeed derives a keypair deterministically from a
// 32-byte PKE seed d and a 32-byte implicit-rejection value z:
// sk = sk_cpa || pk || H(pk) || z.
func (s *Scheme) GenerateKeyPairFromSeed(d, z []byte) (pk, sk []byte, err error) {
	if len(d) != params.SeedSize || len(z) != params.SeedSize {
		return nil, nil, ErrInputLength
	}

	pkCPA, skCPA := pke.KeyGenFromSeed(s.Params, d)
	h := hashing.Sum256(pkCPA)

	sk = make([]byte, 0, s.Params.PrivateKeySize())
	sk = append(sk, skCPA...)
	sk = append(sk, pkCPA...)
	sk = append(sk, h[:]...)
	sk = append(sk, z...)
	return pkCPA, sk, nil
}

// Encapsulate draws fresh randomness from crypto/rand and produces a
// ciphertext and shared secret for pk.
func (s *Scheme) Encapsulate(pk []byte) (ct, ss []byte, err error) {
	var seed [params.SeedSize]byte
	if _, err = io.ReadFull(rand.Reader, seed[:]); err != nil {
		return nil, nil, errors.Wrap(err, "kyber: reading encapsulation seed")
	}
	return s.EncapsulateFromSeed(pk, seed[:])
}

// EncapsulateFromSeed is Encapsulate with the 32-byte randomness supplied
// by the caller.
func (s *Scheme) EncapsulateFromSeed(pk, seed []byte) (ct, ss []byte, err error) {
	if len(pk) != s.Params.PublicKeySize() {
		return nil, nil, ErrInputLength
	}
	if len(seed) != params.SeedSize {
		return nil, nil, ErrInputLength
	}

	m := hashing.Sum256(seed) // hash-then-use: domain separation from raw entropy.
	hpk := hashing.Sum256(pk)
	kr := hashing.Sum512(m[:], hpk[:])
	kBar, coins := kr[:32], kr[32:]

	ct = pke.Encrypt(s.Params, pk, m[:], coins)

	hct := hashing.Sum256(ct)
	ss = hashing.Shake256(params.SharedKeySize, kBar, hct[:])
	return ct, ss, nil
}

// Decapsulate recovers the shared secret ct encapsulates for sk. It never
// returns a decapsulation-failure error: on a failed re-encryption check it
// silently substitutes the deterministic
// implicit-rejection secret derived from z, using a constant-time
// comparison and a constant-time conditional copy so that no observable
// control flow or memory access depends on whether ct was valid.
func (s *Scheme) Decapsulate(sk, ct []byte) (ss []byte, err error) {
	if len(sk) != s.Params.PrivateKeySize() {
		return nil, ErrInputLength
	}
	if len(ct) != s.Params.CiphertextSize() {
		return nil, ErrInputLength
	}

	cpaSkSize := s.Params.CPAPrivateKeySize()
	pkSize := s.Params.PublicKeySize()
	skCPA := sk[:cpaSkSize]
	pkCPA := sk[cpaSkSize : cpaSkSize+pkSize]
	h := sk[cpaSkSize+pkSize : cpaSkSize+pkSize+params.SeedSize]
	z := sk[cpaSkSize+pkSize+params.SeedSize:]

	mp := pke.Decrypt(s.Params, skCPA, ct)
	kr := hashing.Sum512(mp, h)
	kBar, coins := kr[:32], kr[32:]

	ctP := pke.Encrypt(s.Params, pkCPA, mp, coins)

	// fail == 1 iff ct != ctP, computed without any early return.
	fail := 1 - subtle.ConstantTimeCompare(ct, ctP)

	maskedKey := make([]byte, params.SharedKeySize)
	copy(maskedKey, kBar)
	subtle.ConstantTimeCopy(fail, maskedKey, z)

	hct := hashing.Sum256(ct)
	ss = hashing.Shake256(params.SharedKeySize, maskedKey, hct[:])
	return ss, nil
}
