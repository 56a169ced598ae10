// Package kyber768 is the Kyber.CCAKEM parameter set with K=3
// (eta1=2, eta2=2, du=10, dv=4). It is a thin configuration shell around
// the shared engine in internal/kyber.
package kyber768

import (
	"github.com/cloudflare/kyberkem/internal/kyber/facade"
	kempkg "github.com/cloudflare/kyberkem/kem"
)

// PublicKey and PrivateKey are this scheme's opaque key types.
type (
	PublicKey  = facade.PublicKey
	PrivateKey = facade.PrivateKey
)

var sch = facade.New(3)

// Scheme returns the kem.Scheme for Kyber768.
func Scheme() kempkg.Scheme { return sch }

// GenerateKeyPair returns a fresh keypair using crypto/rand.
func GenerateKeyPair() (pk, sk []byte, err error) { return sch.GenerateKeyPair() }

// Encapsulate returns a fresh (ciphertext, shared secret) pair for pk.
func Encapsulate(pk []byte) (ct, ss []byte, err error) { return sch.Encapsulate(pk) }

// Decapsulate recovers the shared secret ct encapsulates for sk.
func Decapsulate(sk, ct []byte) (ss []byte, err error) { return sch.Decapsulate(sk, ct) }
