package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudflare/kyberkem/internal/kyber/params"
	"github.com/cloudflare/kyberkem/internal/kyber/ring"
)

func randomPoly(r *rand.Rand) ring.Poly {
	var p ring.Poly
	for i := range p {
		p[i] = int16(r.Intn(params.Q))
	}
	return p
}

func TestPolyToFromBytesRoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(10))
	for trial := 0; trial < 10; trial++ {
		p := randomPoly(r)
		buf := PolyToBytes(&p)
		require.Len(t, buf, params.PolyBytes)

		got := PolyFromBytes(buf)
		assert.Equal(t, p, got)
	}
}

func TestPolyVecToFromBytesRoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))
	for _, k := range []int{2, 3, 4} {
		v := ring.NewPolyVec(k)
		for i := range v {
			v[i] = randomPoly(r)
		}
		buf := PolyVecToBytes(v)
		require.Len(t, buf, k*params.PolyBytes)

		got := PolyVecFromBytes(buf, k)
		assert.Equal(t, []ring.Poly(v), []ring.Poly(got))
	}
}

func TestPolyToFromMsgRoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(12))
	for trial := 0; trial < 10; trial++ {
		msg := make([]byte, params.MessageSize)
		r.Read(msg)

		p := PolyFromMsg(msg)
		got := PolyToMsg(&p)
		assert.Equal(t, msg, got)
	}
}

func TestCompressDecompressPolyWithinTolerance(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(13))
	for _, d := range []int{4, 5, 10, 11} {
		p := randomPoly(r)
		buf := CompressPoly(&p, d)
		require.Len(t, buf, params.CompressedPolySize(d))

		decompressed := DecompressPoly(buf, d)
		for i := range p {
			assert.LessOrEqual(t, compressionError(p[i], decompressed[i]), params.Q/(1<<uint(d-1))+1,
				"coefficient %d exceeds expected compression error at d=%d", i, d)
		}
	}
}

func TestCompressDecompressVecRoundTripSizes(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(14))
	for _, k := range []int{2, 3, 4} {
		for _, d := range []int{4, 5, 10, 11} {
			v := ring.NewPolyVec(k)
			for i := range v {
				v[i] = randomPoly(r)
			}
			buf := CompressVec(v, d)
			require.Len(t, buf, k*params.CompressedPolySize(d))

			got := DecompressVec(buf, k, d)
			require.Len(t, got, k)
		}
	}
}

func compressionError(orig, recovered int16) int {
	diff := int(orig) - int(recovered)
	if diff < 0 {
		diff = -diff
	}
	if diff > params.Q/2 {
		diff = params.Q - diff
	}
	return diff
}
