// Package pke implements the IND-CPA-secure public key encryption scheme
// that the IND-CCA2 KEM (package kem) wraps via the Fujisaki-Okamoto
// transform.
package pke

import (
	"github.com/cloudflare/kyberkem/internal/kyber/codec"
	"github.com/cloudflare/kyberkem/internal/kyber/hashing"
	"github.com/cloudflare/kyberkem/internal/kyber/params"
	"github.com/cloudflare/kyberkem/internal/kyber/ring"
	"github.com/cloudflare/kyberkem/internal/kyber/sampler"
)

// KeyGenFromSeed derives a CPA-secure keypair deterministically from the
// 32-byte seed d:
//
//  1. (rho, sigma) = SHA3-512(d).
//  2. A-hat is expanded from rho.
//  3. s, e are sampled from the centered binomial distribution with
//     parameter eta1 and seeded by sigma.
//  4. t-hat = A-hat . s-hat + e-hat.
//
// pk is encode(t-hat) || rho; sk is encode(s-hat).
func KeyGenFromSeed(p params.ParamSet, d []byte) (pk, sk []byte) {
	expanded := hashing.Sum512(d)

	var rho [params.SeedSize]byte
	copy(rho[:], expanded[:params.SeedSize])
	sigma := expanded[params.SeedSize:]

	aHat := sampler.GenMatrix(rho, p.K, false)

	s := sampler.NoiseVec(sigma, 0, p.K, p.Eta1)
	e := sampler.NoiseVec(sigma, uint8(p.K), p.K, p.Eta1)
	s.NTT()
	s.Normalize()
	e.NTT()

	t := ring.NewPolyVec(p.K)
	for i := 0; i < p.K; i++ {
		ring.DotHat(&t[i], aHat[i], s)
		t[i].ToMont()
	}
	t.Add(t, e)
	t.Normalize()

	pk = append(codec.PolyVecToBytes(t), rho[:]...)
	sk = codec.PolyVecToBytes(s)
	return pk, sk
}

// Encrypt produces a ciphertext for msg (exactly params.MessageSize bytes)
// under pk, using coins (exactly params.SeedSize bytes) as the randomness
// for r, e1 and e2.
func Encrypt(p params.ParamSet, pk, msg, coins []byte) []byte {
	tHat := codec.PolyVecFromBytes(pk, p.K)
	tHat.Normalize()

	var rho [params.SeedSize]byte
	copy(rho[:], pk[p.PolyVecBytes():])
	aHatT := sampler.GenMatrix(rho, p.K, true)

	r := sampler.NoiseVec(coins, 0, p.K, p.Eta1)
	e1 := sampler.NoiseVec(coins, uint8(p.K), p.K, p.Eta2)
	e2 := sampler.NoisePoly(coins, uint8(2*p.K), p.Eta2)
	r.NTT()

	u := ring.NewPolyVec(p.K)
	for i := 0; i < p.K; i++ {
		ring.DotHat(&u[i], aHatT[i], r)
	}
	u.InvNTT()
	u.Add(u, e1)

	var v ring.Poly
	ring.DotHat(&v, tHat, r)
	v.InvNTT()

	m := codec.PolyFromMsg(msg)
	v.Add(&v, &m)
	v.Add(&v, &e2)

	u.Normalize()
	v.Normalize()

	ct := codec.CompressVec(u, p.Du)
	return append(ct, codec.CompressPoly(&v, p.Dv)...)
}

// Decrypt recovers the plaintext message from ct under sk:
// mp = v - invNTT(s-hat . u-hat), then poly_to_msg(mp).
func Decrypt(p params.ParamSet, sk, ct []byte) []byte {
	uSize := p.K * params.CompressedPolySize(p.Du)
	u := codec.DecompressVec(ct, p.K, p.Du)
	v := codec.DecompressPoly(ct[uSize:], p.Dv)

	sHat := codec.PolyVecFromBytes(sk, p.K)

	u.NTT()
	var mp ring.Poly
	ring.DotHat(&mp, sHat, u)
	mp.InvNTT()
	mp.Sub(&v, &mp)
	mp.Normalize()

	return codec.PolyToMsg(&mp)
}
