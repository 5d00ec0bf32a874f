package gonumExtensions

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestArange(t *testing.T) {
	v := Arange(5, 0.25)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, v.RawVector().Data)
}

func TestNANORINF(t *testing.T) {
	assert.False(t, NANORINF(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
	assert.True(t, NANORINF(mat.NewDense(2, 2, []float64{1, math.NaN(), 3, 4})))
	assert.True(t, NANORINF(mat.NewVecDense(2, []float64{math.Inf(-1), 0})))
}

func TestCNANORINF(t *testing.T) {
	assert.False(t, CNANORINF([]complex128{1 + 2i, 0}))
	assert.True(t, CNANORINF([]complex128{complex(0, math.NaN())}))
	assert.True(t, CNANORINF([]complex128{cmplx.Inf()}))
}

func TestAbs(t *testing.T) {
	v := Abs([]complex128{3 + 4i, -2})
	assert.InDelta(t, 5., v.AtVec(0), 1e-12)
	assert.InDelta(t, 2., v.AtVec(1), 1e-12)
}
