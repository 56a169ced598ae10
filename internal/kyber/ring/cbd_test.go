package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRFBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 192, PRFBytes(3))
	assert.Equal(t, 128, PRFBytes(2))
}

func TestCBDCoefficientsBoundedByEta(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(20))
	for _, eta := range []int{2, 3} {
		buf := make([]byte, PRFBytes(eta))
		for trial := 0; trial < 20; trial++ {
			r.Read(buf)
			p := CBD(buf, eta)
			for _, c := range p {
				assert.GreaterOrEqual(t, c, int16(-eta))
				assert.LessOrEqual(t, c, int16(eta))
			}
		}
	}
}

func TestCBDIsDeterministic(t *testing.T) {
	t.Parallel()

	buf := make([]byte, PRFBytes(2))
	for i := range buf {
		buf[i] = byte(i)
	}
	assert.Equal(t, CBD(buf, 2), CBD(buf, 2))
}
