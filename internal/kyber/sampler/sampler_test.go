package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudflare/kyberkem/internal/kyber/params"
)

func TestGenMatrixIsDeterministicInRho(t *testing.T) {
	t.Parallel()

	var rho [params.SeedSize]byte
	for i := range rho {
		rho[i] = byte(i)
	}

	a1 := GenMatrix(rho, 3, false)
	a2 := GenMatrix(rho, 3, false)
	require.Equal(t, a1, a2)
}

func TestGenMatrixTransposeSwapsCoordinates(t *testing.T) {
	t.Parallel()

	var rho [params.SeedSize]byte
	rho[0] = 0xAB

	a := GenMatrix(rho, 3, false)
	aT := GenMatrix(rho, 3, true)

	// a[i][j] absorbed (j, i); aT[j][i] absorbed (j, i) too, so they must
	// be the same polynomial.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a[i][j], aT[j][i], "a[%d][%d] should equal transpose(a)[%d][%d]", i, j, j, i)
		}
	}
}

func TestGenMatrixCoefficientsAreCanonical(t *testing.T) {
	t.Parallel()

	var rho [params.SeedSize]byte
	mat := GenMatrix(rho, 2, false)
	for _, row := range mat {
		for _, poly := range row {
			for _, c := range poly {
				assert.GreaterOrEqual(t, c, int16(0))
				assert.Less(t, int(c), params.Q)
			}
		}
	}
}

func TestPRFIsDeterministicAndNonceSensitive(t *testing.T) {
	t.Parallel()

	seed := []byte("some 32 byte long seed material")
	a := PRF(seed, 0, 64)
	b := PRF(seed, 0, 64)
	c := PRF(seed, 1, 64)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestNoiseVecUsesSequentialNonces(t *testing.T) {
	t.Parallel()

	seed := []byte("another 32 byte long seed material!")
	v := NoiseVec(seed, 5, 3, 2)
	require.Len(t, v, 3)

	for i := range v {
		expected := NoisePoly(seed, uint8(5+i), 2)
		assert.Equal(t, expected, v[i])
	}
}
