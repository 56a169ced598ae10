package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotHatIsBoundedAndNormalizable(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(30))
	a := NewPolyVec(3)
	b := NewPolyVec(3)
	for i := range a {
		a[i] = randomNormalizedPoly(r)
		b[i] = randomNormalizedPoly(r)
		a[i].NTT()
		a[i].ToMont()
		b[i].NTT()
	}

	var p Poly
	DotHat(&p, a, b)
	p.Normalize()
	for _, c := range p {
		assert.GreaterOrEqual(t, c, int16(0))
		assert.Less(t, c, q)
	}
}

func TestPolyVecAddElementWise(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(31))
	a := NewPolyVec(2)
	b := NewPolyVec(2)
	for i := range a {
		a[i] = randomNormalizedPoly(r)
		b[i] = randomNormalizedPoly(r)
	}

	sum := NewPolyVec(2)
	sum.Add(a, b)

	for i := range sum {
		var want Poly
		want.Add(&a[i], &b[i])
		require.Equal(t, want, sum[i])
	}
}
