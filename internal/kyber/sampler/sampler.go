// Package sampler implements uniform rejection sampling of the public
// matrix A-hat via SHAKE-128, and the centered-binomial noise PRF via
// SHAKE-256.
package sampler

import (
	"github.com/cloudflare/kyberkem/internal/kyber/hashing"
	"github.com/cloudflare/kyberkem/internal/kyber/params"
	"github.com/cloudflare/kyberkem/internal/kyber/ring"
)

const shake128Rate = 168 // SHAKE-128's sponge rate in bytes.

// deriveUniformPoly samples one entry (a single polynomial) of A-hat from rho and the two
// coordinate bytes x, y: the samples produced ARE the NTT-domain
// coefficients, since A-hat is only ever used inside the NTT domain.
func deriveUniformPoly(rho [params.SeedSize]byte, x, y byte) ring.Poly {
	seed := make([]byte, 0, params.SeedSize+2)
	seed = append(seed, rho[:]...)
	seed = append(seed, x, y)
	xof := hashing.Shake128(seed)

	var p ring.Poly
	i := 0
	for i < ring.N {
		buf := xof.Squeeze(shake128Rate)
		for j := 0; j+3 <= len(buf) && i < ring.N; j += 3 {
			t1 := (uint16(buf[j]) | uint16(buf[j+1])<<8) & 0xFFF
			t2 := (uint16(buf[j+1])>>4 | uint16(buf[j+2])<<4) & 0xFFF

			if t1 < params.Q {
				p[i] = int16(t1)
				i++
			}
			if i < ring.N && t2 < params.Q {
				p[i] = int16(t2)
				i++
			}
		}
	}
	return p
}

// GenMatrix expands the 32-byte seed rho into the K-by-K matrix A-hat (or
// its transpose), row-major: result[i][j] is A-hat[i][j].
//
// Non-transposed rows absorb rho || j || i; the transposed form used during
// encryption absorbs rho || i || j.
func GenMatrix(rho [params.SeedSize]byte, k int, transposed bool) []ring.PolyVec {
	mat := make([]ring.PolyVec, k)
	for i := 0; i < k; i++ {
		mat[i] = ring.NewPolyVec(k)
		for j := 0; j < k; j++ {
			x, y := byte(j), byte(i)
			if transposed {
				x, y = byte(i), byte(j)
			}
			mat[i][j] = deriveUniformPoly(rho, x, y)
		}
	}
	return mat
}

// PRF returns outLen pseudorandom bytes from SHAKE-256(seed || nonce).
func PRF(seed []byte, nonce uint8, outLen int) []byte {
	return hashing.Shake256(outLen, seed, []byte{nonce})
}

// NoisePoly samples one centered-binomial polynomial with parameter eta
// from PRF(seed, nonce, ...).
func NoisePoly(seed []byte, nonce uint8, eta int) ring.Poly {
	buf := PRF(seed, nonce, ring.PRFBytes(eta))
	return ring.CBD(buf, eta)
}

// NoiseVec samples a length-k vector of centered-binomial polynomials, one
// per polynomial from PRF(seed, startNonce+i, ...), matching the nonce
// counter convention used by key generation and encryption.
func NoiseVec(seed []byte, startNonce uint8, k, eta int) ring.PolyVec {
	v := ring.NewPolyVec(k)
	for i := 0; i < k; i++ {
		v[i] = NoisePoly(seed, startNonce+uint8(i), eta)
	}
	return v
}
