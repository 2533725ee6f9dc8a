package avmap

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/avspace/subspace"
)

// feasibleSeed asks the LP oracle for any x ∈ [-1,1]^m with W1ᵀ·x = y.
//
// lp.Simplex solves standard-form programs (min cᵀv s.t. A·v = b, v ≥ 0),
// so the box is folded in by substitution rather than lp.Convert — the
// variable layout of the recovered point stays explicit:
//
//	x = 2t − 1 with t ∈ [0,1]^m, enforced as t + u = 1, u ≥ 0.
//
// Variables v = [t; u] ∈ ℝ^{2m}, equalities
//
//	2·W1ᵀ·t = y + W1ᵀ·1   (n rows: the projection constraint)
//	t + u   = 1           (m rows: the upper box face)
//
// and a zero cost — any feasible vertex will do. The stacked system has
// full row rank whenever W1 has orthonormal columns.
func feasibleSeed(p *subspace.Projection, y []float64) ([]float64, error) {
	m, n := p.Dims()
	W1 := p.W1()

	cols := 2 * m
	a := mat.NewDense(n+m, cols, nil)
	b := make([]float64, n+m)

	for j := 0; j < n; j++ {
		shift := 0.0
		for i := 0; i < m; i++ {
			a.Set(j, i, 2*W1.At(i, j))
			shift += W1.At(i, j)
		}
		b[j] = y[j] + shift
	}
	for i := 0; i < m; i++ {
		a.Set(n+i, i, 1)
		a.Set(n+i, m+i, 1)
		b[n+i] = 1
	}

	c := make([]float64, cols)
	_, v, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, err
	}

	x := make([]float64, m)
	for i := 0; i < m; i++ {
		x[i] = 2*v[i] - 1
	}

	return x, nil
}
