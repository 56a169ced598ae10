// Package hashing wraps the SHA3-256, SHA3-512, SHAKE-128 and SHAKE-256
// primitives the KEM engine consumes. It is a thin adapter over
// golang.org/x/crypto/sha3 so the rest of the engine never imports that
// package directly.
package hashing

import (
	"golang.org/x/crypto/sha3"
)

// Sum256 returns SHA3-256(data).
func Sum256(data ...[]byte) [32]byte {
	h := sha3.New256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Sum512 returns SHA3-512(data).
func Sum512(data ...[]byte) [64]byte {
	h := sha3.New512()
	for _, d := range data {
		h.Write(d)
	}
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Shake128 absorbs seed and returns an XOF for squeezing output
// incrementally. Matrix sampling relies on this to re-squeeze past one
// block when rejection sampling needs more candidates.
func Shake128(seed []byte) *XOF {
	x := sha3.NewShake128()
	_, _ = x.Write(seed)
	return &XOF{sponge: x}
}

// Shake256 returns outLen bytes of SHAKE-256(parts[0] || parts[1] || ...).
func Shake256(outLen int, parts ...[]byte) []byte {
	x := sha3.NewShake256()
	for _, p := range parts {
		_, _ = x.Write(p)
	}
	out := make([]byte, outLen)
	_, _ = x.Read(out)
	return out
}

// XOF is an incrementally-squeezable extendable output function, used by
// sampler.GenMatrix which may need to re-squeeze past one SHAKE-128 block when
// rejection sampling is unlucky.
type XOF struct {
	sponge interface {
		Read([]byte) (int, error)
	}
}

// Squeeze reads the next n bytes from the sponge.
func (x *XOF) Squeeze(n int) []byte {
	buf := make([]byte, n)
	_, _ = x.sponge.Read(buf)
	return buf
}
