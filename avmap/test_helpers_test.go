package avmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/avspace/subspace"
)

// feasTol is the floating tolerance for hypercube membership checks.
const feasTol = 1e-9

// lineBasis: orthonormal 3×3 with active column (1,1,1)/√3 (n=1).
func lineBasis(t *testing.T) *subspace.Projection {
	t.Helper()
	s2 := 1 / math.Sqrt2
	s3 := 1 / math.Sqrt(3)
	s6 := 1 / math.Sqrt(6)
	w := mat.NewDense(3, 3, []float64{
		s3, s2, s6,
		s3, -s2, s6,
		s3, 0, -2 * s6,
	})

	p, err := subspace.New(w, 1)
	require.NoError(t, err)

	return p
}

// skewBasis: orthonormal 3×3, n=2, chosen so the realizable point
// y = W1ᵀ·(1,1,1) has |W1·y| exceeding 1 in its first component — the
// z=0 seed is infeasible there and the LP oracle path is exercised.
func skewBasis(t *testing.T) *subspace.Projection {
	t.Helper()
	s5 := 1 / math.Sqrt(5)
	w := mat.NewDense(3, 3, []float64{
		2 * s5, -2 * s5 / 3, -1.0 / 3,
		s5, 4 * s5 / 3, 2.0 / 3,
		0, -5 * s5 / 3, 2.0 / 3,
	})

	p, err := subspace.New(w, 2)
	require.NoError(t, err)

	return p
}

// assertInCube checks -1-ε ≤ W1·y + W2·z ≤ 1+ε for every column of Z.
func assertInCube(t *testing.T, p *subspace.Projection, y []float64, Z *mat.Dense) {
	t.Helper()
	m, n := p.Dims()
	s := mat.NewVecDense(m, nil)
	s.MulVec(p.W1(), mat.NewVecDense(n, y))

	_, cols := Z.Dims()
	img := mat.NewVecDense(m, nil)
	z := mat.NewVecDense(m-n, nil)
	for k := 0; k < cols; k++ {
		for i := 0; i < m-n; i++ {
			z.SetVec(i, Z.At(i, k))
		}
		img.MulVec(p.W2(), z)
		for i := 0; i < m; i++ {
			v := img.AtVec(i) + s.AtVec(i)
			require.LessOrEqual(t, v, 1+feasTol, "draw %d component %d above cube", k, i)
			require.GreaterOrEqual(t, v, -1-feasTol, "draw %d component %d below cube", k, i)
		}
	}
}
