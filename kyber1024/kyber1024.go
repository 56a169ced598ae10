// Package kyber1024 is the Kyber.CCAKEM parameter set with K=4
// (eta1=2, eta2=2, du=11, dv=5). It is a thin configuration shell around
// the shared engine in internal/kyber.
package kyber1024

import (
	"github.com/cloudflare/kyberkem/internal/kyber/facade"
	kempkg "github.com/cloudflare/kyberkem/kem"
)

// PublicKey and PrivateKey are this scheme's opaque key types.
type (
	PublicKey  = facade.PublicKey
	PrivateKey = facade.PrivateKey
)

var sch = facade.New(4)

// Scheme returns the kem.Scheme for Kyber1024.
func Scheme() kempkg.Scheme { return sch }

// GenerateKeyPair returns a fresh keypair using crypto/rand.
func GenerateKeyPair() (pk, sk []byte, err error) { return sch.GenerateKeyPair() }

// Encapsulate returns a fresh (ciphertext, shared secret) pair for pk.
func Encapsulate(pk []byte) (ct, ss []byte, err error) { return sch.Encapsulate(pk) }

// Decapsulate recovers the shared secret ct encapsulates for sk.
func Decapsulate(sk, ct []byte) (ss []byte, err error) { return sch.Decapsulate(sk, ct) }
