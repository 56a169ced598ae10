// Package params holds the fixed constants of the Kyber ring and the three
// parameter sets (K=2, K=3, K=4) that the KEM facades are built from.
package params

import "fmt"

const (
	// N is the degree of the ring R_q = Z_q[X]/(X^N+1).
	N = 256

	// Q is the ring modulus.
	Q = 3329

	// QInv is Q^-1 mod 2^16 (62209, since 3329*62209 = 1 mod 2^16), as a
	// value that wraps correctly in int16 arithmetic (62209 - 65536 = -3327).
	QInv = -3327

	// SeedSize is the length in bytes of the matrix seed rho, the noise
	// seed sigma's expansion source, and the implicit-rejection value z.
	SeedSize = 32

	// SharedKeySize is the length in bytes of the KEM shared secret.
	SharedKeySize = 32

	// MessageSize is the length in bytes of the encoded/decoded plaintext
	// used inside the CPA-secure PKE.
	MessageSize = N / 8
)

// ParamSet is the 5-tuple (K, Eta1, Eta2, Du, Dv) that fixes a Kyber
// parameter set, together with the byte sizes it determines. It is a plain
// value: once constructed by ForK, it never changes.
type ParamSet struct {
	Name string
	K    int
	Eta1 int
	Eta2 int
	Du   int
	Dv   int
}

// Kyber512, Kyber768 and Kyber1024 are the three supported parameter sets.
// Eta1 is used for s and e in key generation and for r in encryption; Eta2
// is used for e1 and e2 in encryption. Kyber512 has Eta1=3 and Eta2=2, an
// asymmetric split that only applies at K=2; Kyber768 and Kyber1024 use
// eta=2 for both.
var (
	Kyber512  = ParamSet{Name: "Kyber512", K: 2, Eta1: 3, Eta2: 2, Du: 10, Dv: 4}
	Kyber768  = ParamSet{Name: "Kyber768", K: 3, Eta1: 2, Eta2: 2, Du: 10, Dv: 4}
	Kyber1024 = ParamSet{Name: "Kyber1024", K: 4, Eta1: 2, Eta2: 2, Du: 11, Dv: 5}
)

// ForK returns the parameter set for the given K, or an error if K is not
// one of the three supported values.
func ForK(k int) (ParamSet, error) {
	switch k {
	case 2:
		return Kyber512, nil
	case 3:
		return Kyber768, nil
	case 4:
		return Kyber1024, nil
	default:
		return ParamSet{}, fmt.Errorf("kyber: unsupported parameter set K=%d, want 2, 3 or 4", k)
	}
}

// CompressedPolySize returns ceil(N*d/8), the number of bytes a single
// polynomial compresses to at rate d.
func CompressedPolySize(d int) int {
	return (N*d + 7) / 8
}

// PolyBytes is the size in bytes of an uncompressed, 12-bit-packed
// polynomial.
const PolyBytes = N * 12 / 8

// PolyVecBytes is the size in bytes of an uncompressed polynomial vector.
func (p ParamSet) PolyVecBytes() int { return p.K * PolyBytes }

// PublicKeySize is the size in bytes of a packed public key: encode(t-hat)
// concatenated with the 32-byte matrix seed rho.
func (p ParamSet) PublicKeySize() int { return p.PolyVecBytes() + SeedSize }

// CPAPrivateKeySize is the size in bytes of a packed IND-CPA secret key:
// encode(s-hat).
func (p ParamSet) CPAPrivateKeySize() int { return p.PolyVecBytes() }

// PrivateKeySize is the size in bytes of a packed IND-CCA2 secret key:
// sk_cpa || pk || H(pk) || z.
func (p ParamSet) PrivateKeySize() int {
	return p.CPAPrivateKeySize() + p.PublicKeySize() + SeedSize + SeedSize
}

// CiphertextSize is the size in bytes of a packed ciphertext:
// compress_u(PolyVec) || compress_v(Poly).
func (p ParamSet) CiphertextSize() int {
	return p.K*CompressedPolySize(p.Du) + CompressedPolySize(p.Dv)
}
