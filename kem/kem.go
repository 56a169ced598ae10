// Package kem defines the public Scheme interface every Kyber parameter
// set facade (kyber512, kyber768, kyber1024) implements, mirroring the
// scheme-registry idiom used by github.com/cloudflare/circl/kem and by
// github.com/katzenpost/hpqc/kem.
package kem

import "github.com/cloudflare/kyberkem/internal/kyber/params"

// Scheme is a key encapsulation mechanism: it derives keypairs, and turns a
// public key into a (ciphertext, shared secret) pair that only the matching
// private key can open back into the same shared secret.
type Scheme interface {
	// Name identifies the parameter set, e.g. "Kyber768".
	Name() string

	// PublicKeySize, PrivateKeySize, CiphertextSize and SharedKeySize give
	// the exact byte lengths this scheme's wire encodings use.
	PublicKeySize() int
	PrivateKeySize() int
	CiphertextSize() int
	SharedKeySize() int

	// ParamSet returns the resolved parameter set (K, eta1, eta2, du, dv)
	// this scheme was built from.
	ParamSet() params.ParamSet

	// GenerateKeyPair returns a fresh (public key, private key) pair using
	// crypto/rand.
	GenerateKeyPair() (pk, sk []byte, err error)

	// Encapsulate returns a fresh (ciphertext, shared secret) pair for pk
	// using crypto/rand.
	Encapsulate(pk []byte) (ct, ss []byte, err error)

	// Decapsulate recovers the shared secret ct encapsulates for sk. It
	// never reports a decapsulation failure: an invalid ciphertext yields a
	// deterministic, indistinguishable-from-random shared secret instead of
	// an error.
	Decapsulate(sk, ct []byte) (ss []byte, err error)
}
