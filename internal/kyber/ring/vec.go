package ring

// PolyVec is a fixed-length ordered sequence of K polynomials. Its length
// is set once at construction by NewPolyVec and must
// never change afterwards; nothing in this package resizes a PolyVec.
type PolyVec []Poly

// NewPolyVec allocates a zeroed PolyVec of length k.
func NewPolyVec(k int) PolyVec {
	return make(PolyVec, k)
}

// Add sets v = a + b, element-wise.
func (v PolyVec) Add(a, b PolyVec) {
	for i := range v {
		v[i].Add(&a[i], &b[i])
	}
}

// NTT applies the forward NTT to every polynomial in v, in place.
func (v PolyVec) NTT() {
	for i := range v {
		v[i].NTT()
	}
}

// InvNTT applies the inverse NTT to every polynomial in v, in place.
func (v PolyVec) InvNTT() {
	for i := range v {
		v[i].InvNTT()
	}
}

// BarrettReduce almost-normalizes every polynomial in v, in place.
func (v PolyVec) BarrettReduce() {
	for i := range v {
		v[i].BarrettReduce()
	}
}

// Normalize fully normalizes every polynomial in v, in place.
func (v PolyVec) Normalize() {
	for i := range v {
		v[i].Normalize()
	}
}

// ToMont multiplies every polynomial in v by the Montgomery factor, in
// place.
func (v PolyVec) ToMont() {
	for i := range v {
		v[i].ToMont()
	}
}

// DotHat sets p to the pointwise-accumulate inner product of a and b:
// p = sum_{i<K} BaseMul(a[i], b[i]), followed by a
// final Barrett reduction on the sum. a and b must have the same length and
// be in the NTT domain; like BaseMul, the result carries a factor R^-1.
func DotHat(p *Poly, a, b PolyVec) {
	var t Poly
	*p = Poly{}
	for i := range a {
		t.BaseMul(&a[i], &b[i])
		p.Add(p, &t)
	}
	p.BarrettReduce()
}
