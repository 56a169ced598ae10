// Package codec implements the bit-packed serialization and lossy
// compression routines that turn polynomials and polynomial vectors into
// the exact byte counts FIPS-203 mandates, and back.
package codec

import (
	"github.com/cloudflare/kyberkem/internal/kyber/params"
	"github.com/cloudflare/kyberkem/internal/kyber/ring"
)

// packBits writes len(vals) values of the given bit width into a
// contiguous, byte-packed, little-endian bitstream. Every rate this codec
// supports (4, 5, 10, 11 for compression and 12 for the uncompressed pack)
// shares this one bit-packing routine.
func packBits(vals []uint16, bits int) []byte {
	out := make([]byte, (len(vals)*bits+7)/8)
	pos := 0
	for _, v := range vals {
		for b := 0; b < bits; b++ {
			if (v>>uint(b))&1 == 1 {
				out[pos/8] |= 1 << uint(pos%8)
			}
			pos++
		}
	}
	return out
}

// unpackBits is the inverse of packBits: it reads n values of the given
// bit width back out of buf.
func unpackBits(buf []byte, n, bits int) []uint16 {
	out := make([]uint16, n)
	pos := 0
	for i := 0; i < n; i++ {
		var v uint16
		for b := 0; b < bits; b++ {
			if (buf[pos/8]>>uint(pos%8))&1 == 1 {
				v |= 1 << uint(b)
			}
			pos++
		}
		out[i] = v
	}
	return out
}

// PolyToBytes packs p's 256 coefficients, assumed to already lie in
// [0, q), as 12-bit little-endian values into params.PolyBytes bytes.
func PolyToBytes(p *ring.Poly) []byte {
	vals := make([]uint16, ring.N)
	for i, c := range p {
		vals[i] = uint16(c)
	}
	return packBits(vals, 12)
}

// PolyFromBytes unpacks a polynomial from buf, masking each coefficient to
// 12 bits. The result is not guaranteed to be < q: callers that need that
// guarantee must reduce it themselves.
func PolyFromBytes(buf []byte) ring.Poly {
	vals := unpackBits(buf, ring.N, 12)
	var p ring.Poly
	for i, v := range vals {
		p[i] = int16(v & 0xFFF)
	}
	return p
}

// PolyVecToBytes packs every polynomial in v in turn.
func PolyVecToBytes(v ring.PolyVec) []byte {
	out := make([]byte, 0, len(v)*params.PolyBytes)
	for i := range v {
		out = append(out, PolyToBytes(&v[i])...)
	}
	return out
}

// PolyVecFromBytes unpacks k polynomials from buf.
func PolyVecFromBytes(buf []byte, k int) ring.PolyVec {
	v := ring.NewPolyVec(k)
	for i := 0; i < k; i++ {
		v[i] = PolyFromBytes(buf[i*params.PolyBytes:])
	}
	return v
}

// PolyToMsg maps each of p's 256 coefficients (assumed normalized) to one
// bit: bit = round(2a/q) mod 2, packed 8 bits to a byte, producing exactly
// params.MessageSize bytes.
func PolyToMsg(p *ring.Poly) []byte {
	out := make([]byte, params.MessageSize)
	for i, c := range p {
		bit := ((uint32(c)<<1 + params.Q/2) / params.Q) & 1
		out[i/8] |= byte(bit) << uint(i%8)
	}
	return out
}

// PolyFromMsg is the inverse of PolyToMsg: bit 1 maps to (q+1)/2, bit 0 to
// 0, using an all-ones/all-zeros arithmetic mask rather than a
// data-dependent branch.
func PolyFromMsg(msg []byte) ring.Poly {
	var p ring.Poly
	for i := range p {
		bit := int16((msg[i/8] >> uint(i%8)) & 1)
		mask := -bit // 0x0000 or 0xFFFF
		p[i] = mask & int16((params.Q+1)/2)
	}
	return p
}

// compressCoeff implements Compress_q(x, d) = floor((x*2^d + q/2)/q) mod 2^d.
func compressCoeff(x int16, d int) uint16 {
	v := (uint32(x)<<uint(d) + params.Q/2) / params.Q
	return uint16(v) & ((1 << uint(d)) - 1)
}

// decompressCoeff implements Decompress_q(x, d) = floor((x*q + 2^(d-1))/2^d).
func decompressCoeff(x uint16, d int) int16 {
	v := (uint32(x)*params.Q + (1 << uint(d-1))) >> uint(d)
	return int16(v)
}

// CompressPoly writes Compress_q(p, d) to a packed byte slice of
// params.CompressedPolySize(d) bytes. p must be normalized and d must be
// one of {4, 5, 10, 11}.
func CompressPoly(p *ring.Poly, d int) []byte {
	vals := make([]uint16, ring.N)
	for i, c := range p {
		vals[i] = compressCoeff(c, d)
	}
	return packBits(vals, d)
}

// DecompressPoly sets p to Decompress_q(buf, d). p is normalized by
// construction since decompressCoeff always returns a value in [0, q).
func DecompressPoly(buf []byte, d int) ring.Poly {
	vals := unpackBits(buf, ring.N, d)
	var p ring.Poly
	for i, v := range vals {
		p[i] = decompressCoeff(v, d)
	}
	return p
}

// CompressVec writes Compress_q(v, d) for every polynomial in v,
// concatenated.
func CompressVec(v ring.PolyVec, d int) []byte {
	size := params.CompressedPolySize(d)
	out := make([]byte, 0, len(v)*size)
	for i := range v {
		out = append(out, CompressPoly(&v[i], d)...)
	}
	return out
}

// DecompressVec sets the returned vector of length k to Decompress_q(buf, d)
// for each of its polynomials.
func DecompressVec(buf []byte, k, d int) ring.PolyVec {
	size := params.CompressedPolySize(d)
	v := ring.NewPolyVec(k)
	for i := 0; i < k; i++ {
		v[i] = DecompressPoly(buf[i*size:], d)
	}
	return v
}
