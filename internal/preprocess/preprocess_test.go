package preprocess_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yyyoichi/spectral_bicluster/internal/preprocess"
)

// verification tolerance: sums must agree to one decimal place
const sumDelta = 0.15

func randomMatrix(r, c int, seed uint64) *mat.Dense {
	u := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(seed, seed)}
	data := make([]float64, r*c)
	for i := range data {
		data[i] = u.Rand()
	}
	return mat.NewDense(r, c, data)
}

func rowSums(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	sums := make([]float64, r)
	for i := range r {
		sums[i] = floats.Sum(m.RawRowView(i))
	}
	return sums
}

func colSums(m *mat.Dense) []float64 {
	r, c := m.Dims()
	sums := make([]float64, c)
	for j := range c {
		for i := range r {
			sums[j] += m.At(i, j)
		}
	}
	return sums
}

// assertScaled checks that all row sums agree with each other and all column
// sums agree with each other.
func assertScaled(t *testing.T, m *mat.Dense) {
	t.Helper()
	rs := rowSums(m)
	rsMean := floats.Sum(rs) / float64(len(rs))
	for i, s := range rs {
		assert.InDelta(t, rsMean, s, sumDelta, "row %d", i)
	}
	cs := colSums(m)
	csMean := floats.Sum(cs) / float64(len(cs))
	for j, s := range cs {
		assert.InDelta(t, csMean, s, sumDelta, "column %d", j)
	}
}

// assertBistochastic additionally checks that the row and column constants
// coincide.
func assertBistochastic(t *testing.T, m *mat.Dense) {
	t.Helper()
	assertScaled(t, m)
	rs := rowSums(m)
	cs := colSums(m)
	assert.InDelta(t, floats.Sum(rs)/float64(len(rs)), floats.Sum(cs)/float64(len(cs)), sumDelta)
}

func TestScale(t *testing.T) {
	t.Run("known factors", func(t *testing.T) {
		x := mat.NewDense(2, 2, []float64{1, 3, 2, 4})
		an, rowDiag, colDiag, err := preprocess.Scale(x)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, rowDiag[0], 1e-12)          // 1/sqrt(4)
		assert.InDelta(t, 1/2.449489742783178, rowDiag[1], 1e-12) // 1/sqrt(6)
		assert.InDelta(t, 1/1.7320508075688772, colDiag[0], 1e-12) // 1/sqrt(3)
		assert.InDelta(t, 1/2.6457513110645907, colDiag[1], 1e-12) // 1/sqrt(7)
		assert.InDelta(t, rowDiag[0]*1*colDiag[0], an.At(0, 0), 1e-12)
		assert.InDelta(t, rowDiag[1]*4*colDiag[1], an.At(1, 1), 1e-12)
	})
	t.Run("row and column sums equalize", func(t *testing.T) {
		scaled, _, _, err := preprocess.Scale(randomMatrix(100, 100, 0))
		require.NoError(t, err)
		assertScaled(t, scaled)
	})
	t.Run("preserves shape", func(t *testing.T) {
		scaled, rowDiag, colDiag, err := preprocess.Scale(randomMatrix(20, 50, 1))
		require.NoError(t, err)
		r, c := scaled.Dims()
		assert.Equal(t, 20, r)
		assert.Equal(t, 50, c)
		assert.Len(t, rowDiag, 20)
		assert.Len(t, colDiag, 50)
	})
	t.Run("zero row sum", func(t *testing.T) {
		x := mat.NewDense(2, 2, []float64{0, 0, 1, 2})
		_, _, _, err := preprocess.Scale(x)
		assert.ErrorIs(t, err, preprocess.ErrZeroSum)
	})
	t.Run("negative column sum", func(t *testing.T) {
		x := mat.NewDense(2, 2, []float64{-5, 1, 2, 2})
		_, _, _, err := preprocess.Scale(x)
		assert.ErrorIs(t, err, preprocess.ErrZeroSum)
	})
}

func TestBistochastic(t *testing.T) {
	t.Run("sums converge to one constant", func(t *testing.T) {
		scaled, err := preprocess.Bistochastic(randomMatrix(100, 100, 0))
		require.NoError(t, err)
		assertBistochastic(t, scaled)
	})
	t.Run("rectangular input", func(t *testing.T) {
		scaled, err := preprocess.Bistochastic(randomMatrix(40, 80, 2))
		require.NoError(t, err)
		assertScaled(t, scaled)
	})
	t.Run("zero row sum", func(t *testing.T) {
		x := mat.NewDense(2, 2, []float64{0, 0, 1, 2})
		_, err := preprocess.Bistochastic(x)
		assert.ErrorIs(t, err, preprocess.ErrZeroSum)
	})
}

func TestLog(t *testing.T) {
	t.Run("constant shift is bistochastic", func(t *testing.T) {
		scaled, err := preprocess.Log(randomMatrix(100, 100, 0))
		require.NoError(t, err)
		r, c := scaled.Dims()
		shifted := mat.NewDense(r, c, nil)
		shifted.Apply(func(_, _ int, v float64) float64 { return v + 1 }, scaled)
		assertBistochastic(t, shifted)
	})
	t.Run("non-positive entry", func(t *testing.T) {
		for _, v := range []float64{0, -1} {
			x := mat.NewDense(2, 2, []float64{1, v, 1, 1})
			_, err := preprocess.Log(x)
			assert.ErrorIs(t, err, preprocess.ErrNonPositive)
		}
	})
}
