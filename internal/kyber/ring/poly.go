package ring

import "github.com/cloudflare/kyberkem/internal/kyber/params"

// N is the number of coefficients in a Poly.
const N = params.N

// Poly is a polynomial in R_q, or (depending on what the caller last did to
// it) its image under the NTT, or that image in Montgomery form. The domain
// is tracked by the caller: there is no runtime tag on the type itself.
type Poly [N]int16

// Add sets p = a + b, coefficient-wise, without reducing.
func (p *Poly) Add(a, b *Poly) {
	for i := range p {
		p[i] = a[i] + b[i]
	}
}

// Sub sets p = a - b, coefficient-wise, without reducing.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p {
		p[i] = a[i] - b[i]
	}
}

// BarrettReduce brings every coefficient into {0, ..., q}, almost
// normalized (see csubq for the last step).
func (p *Poly) BarrettReduce() {
	for i := range p {
		p[i] = barrettReduce(p[i])
	}
}

// Normalize brings every coefficient into {0, ..., q-1}. Every polynomial
// must be normalized before it is exported to bytes.
func (p *Poly) Normalize() {
	for i := range p {
		p[i] = csubq(barrettReduce(p[i]))
	}
}

// ToMont multiplies p in place by the Montgomery factor R=2^16 mod q.
// Resulting coefficients are bounded in absolute value by q.
func (p *Poly) ToMont() {
	for i := range p {
		p[i] = toMont(p[i])
	}
}

// NTT executes the in-place forward number-theoretic transform: 7
// Cooley-Tukey butterfly layers with length halving from 128 down to 2,
// consuming zetas from nttZetas[1..127] in order.
//
// Input coefficients must be bounded in absolute value by q; output
// coefficients are bounded in absolute value by 7q and left in
// bit-reversed order.
func (p *Poly) NTT() {
	k := 0
	for length := N / 2; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			k++
			zeta := nttZetas[k]
			for j := start; j < start+length; j++ {
				t := mulMont(zeta, p[j+length])
				p[j+length] = p[j] - t
				p[j] += t
			}
		}
	}
}

// InvNTT executes the in-place inverse number-theoretic transform, mirror
// image of NTT: length doubling from 2 to 128, Gentleman-Sande butterflies
// consuming nttZetasInv[0..126], with a final Montgomery multiplication by
// nttZetasInv[127] = 128^-1 * R^2 mod q. The 7 layers leave a factor of
// 128; the final step removes it and multiplies by R = 2^16 mod q, so
// InvNTT(NTT(p)) is p in Montgomery form. That extra R cancels the R^-1
// that BaseMul leaves on its products.
//
// Requires the input to be in the bit-reversed order NTT produces.
func (p *Poly) InvNTT() {
	k := 0
	for length := 2; length < N; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := nttZetasInv[k]
			k++
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = barrettReduce(t + p[j+length])
				p[j+length] = mulMont(zeta, t-p[j+length])
			}
		}
	}
	f := nttZetasInv[127]
	for i := range p {
		p[i] = mulMont(p[i], f)
	}
}

// BaseMul sets p to the base multiplication of a and b in the NTT domain:
// for each quadruple of coefficients, the product of
// two degree-one polynomials modulo X^2 - zeta', where zeta' is
// nttZetas[64+i] on the first pair of a quadruple and its negation on the
// second. Every product passes through Montgomery reduction, so p holds
// a*b*R^-1 (R = 2^16 mod q); callers remove the R^-1 with ToMont or
// InvNTT, or by passing one operand in Montgomery form. The products stay
// Barrett-unreduced here, bounded well within int16 range for the vector
// lengths Kyber uses; DotHat does the single Barrett reduction the
// accumulated sum needs once, after summing all K terms, rather than after
// every BaseMul call.
func (p *Poly) BaseMul(a, b *Poly) {
	for i := 0; i < N/4; i++ {
		zetaPrime := nttZetas[64+i]
		basemul2(p[4*i:4*i+2], a[4*i:4*i+2], b[4*i:4*i+2], zetaPrime)
		basemul2(p[4*i+2:4*i+4], a[4*i+2:4*i+4], b[4*i+2:4*i+4], -zetaPrime)
	}
}

// basemul2 computes (a0+a1 X)(b0+b1 X) mod (X^2 - zetaPrime) and writes the
// two resulting coefficients to out.
func basemul2(out, a, b []int16, zetaPrime int16) {
	out[0] = mulMont(a[0], b[0])
	out[0] += mulMont(mulMont(a[1], b[1]), zetaPrime)
	out[1] = mulMont(a[0], b[1])
	out[1] += mulMont(a[1], b[0])
}
