// Package ring implements the modular arithmetic, polynomial, and
// polynomial-vector engine of the Kyber ring R_q = Z_q[X]/(X^256+1),
// q=3329.
package ring

import "github.com/cloudflare/kyberkem/internal/kyber/params"

const (
	q    = int16(params.Q)
	qInv = int16(params.QInv) // q^-1 mod 2^16, wrapped into signed int16
)

// barrettReduce brings a into {0, ..., q} using a single-multiplication
// approximation of division by q, with no data-dependent branch.
//
// Beware: barrettReduce(x) can equal q for x a negative multiple of q; the
// caller must run csubq afterwards to land in [0, q).
func barrettReduce(a int16) int16 {
	// 20159/2^26 approximates 1/q to within 2^-10 for |a| <= 2^16.
	v := int16((int32(a) * 20159) >> 26)
	return a - v*q
}

// montReduce takes a in (-2^15 q, 2^15 q) and returns b in (-q, q) with
// b == a * 2^-16 (mod q).
func montReduce(a int32) int16 {
	u := int16(a * int32(qInv))
	t := int32(u) * int32(q)
	return int16((a - t) >> 16)
}

// toMont multiplies a by the Montgomery factor R=2^16 mod q, returning a
// value in (-q, q).
func toMont(a int16) int16 {
	const r2 = 1353 // R^2 mod q
	return montReduce(int32(a) * r2)
}

// mulMont returns montReduce(x*y): the Montgomery product of x and y.
func mulMont(x, y int16) int16 {
	return montReduce(int32(x) * int32(y))
}

// csubq returns the representative of x in [0, q) for any x in [-q, 2q):
// x if 0 <= x < q, x-q if x >= q, and x+q if x < 0. Every caller of csubq in
// this package meets that bound because coefficients are barrett-reduced
// first.
func csubq(x int16) int16 {
	x -= q
	x += (x >> 15) & q
	x += (x >> 15) & q
	return x
}
