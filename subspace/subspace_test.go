package subspace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/avspace/subspace"
)

// randomOrthonormal builds an m×m orthonormal basis by Gram–Schmidt over
// a seeded random matrix. Deterministic per seed.
func randomOrthonormal(t *testing.T, m int, seed uint64) *mat.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	w := mat.NewDense(m, m, nil)
	for j := 0; j < m; j++ {
		col := make([]float64, m)
		for i := range col {
			col[i] = rng.NormFloat64()
		}
		// subtract projections onto previous columns
		for p := 0; p < j; p++ {
			dot := 0.0
			for i := 0; i < m; i++ {
				dot += col[i] * w.At(i, p)
			}
			for i := 0; i < m; i++ {
				col[i] -= dot * w.At(i, p)
			}
		}
		norm := 0.0
		for _, v := range col {
			norm += v * v
		}
		require.Greater(t, norm, 1e-12, "random columns must stay independent")
		inv := 1 / math.Sqrt(norm)
		for i := 0; i < m; i++ {
			w.Set(i, j, col[i]*inv)
		}
	}

	return w
}

// TestNew_Validation exercises every construction sentinel.
func TestNew_Validation(t *testing.T) {
	_, err := subspace.New(nil, 1)
	assert.ErrorIs(t, err, subspace.ErrNilBasis, "nil basis must error")

	_, err = subspace.New(mat.NewDense(2, 3, nil), 1)
	assert.ErrorIs(t, err, subspace.ErrNonSquare, "rectangular basis must error")

	eye := identity(3)
	_, err = subspace.New(eye, 0)
	assert.ErrorIs(t, err, subspace.ErrBadSplit, "n=0 must error")
	_, err = subspace.New(eye, 3)
	assert.ErrorIs(t, err, subspace.ErrBadSplit, "n=m must error")

	skew := mat.NewDense(2, 2, []float64{1, 1, 0, 1})
	_, err = subspace.New(skew, 1)
	assert.ErrorIs(t, err, subspace.ErrNotOrthonormal, "shear basis must error")
}

// TestNew_SplitShapes verifies the column split and dimension accessors.
func TestNew_SplitShapes(t *testing.T) {
	w := randomOrthonormal(t, 5, 7)
	p, err := subspace.New(w, 2)
	require.NoError(t, err)

	m, n := p.Dims()
	assert.Equal(t, 5, m)
	assert.Equal(t, 2, n)

	r1, c1 := p.W1().Dims()
	assert.Equal(t, 5, r1)
	assert.Equal(t, 2, c1)
	r2, c2 := p.W2().Dims()
	assert.Equal(t, 5, r2)
	assert.Equal(t, 3, c2)

	// W1 and W2 are the matching column blocks of the basis.
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, w.At(i, j), p.W1().At(i, j))
		}
		for j := 0; j < m-n; j++ {
			assert.Equal(t, w.At(i, n+j), p.W2().At(i, j))
		}
	}
}

// TestNew_CopiesBasis ensures mutating the caller's matrix after New does
// not leak into the Projection.
func TestNew_CopiesBasis(t *testing.T) {
	w := identity(3)
	p, err := subspace.New(w, 1)
	require.NoError(t, err)

	w.Set(0, 0, 42)
	assert.Equal(t, 1.0, p.Eigenvectors().At(0, 0), "Projection must own its copy")
}

func identity(m int) *mat.Dense {
	eye := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		eye.Set(i, i, 1)
	}

	return eye
}
