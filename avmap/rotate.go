package avmap

import "gonum.org/v1/gonum/mat"

// RotateX reassembles active and inactive coordinates into full-space
// points. Y is R×n (one active point per row), Z holds one (m−n)×N draw
// matrix per row, and W is the m×m orthogonal basis. Each output point is
// x = W·[y; z], i.e. the concatenated coordinate vector right-multiplied
// by Wᵀ in row convention.
//
// Output is (R·N)×m, grouped by row with draws in order (row-major), and
// rows[i] gives the originating row of output point i.
//
// Returns ErrNilInput or ErrBadShape on mismatched batch dimensions.
func RotateX(Y mat.Matrix, Z []*mat.Dense, W *mat.Dense) (X *mat.Dense, rows []int, err error) {
	if Y == nil || W == nil {
		return nil, nil, ErrNilInput
	}
	R, n := Y.Dims()
	m, mc := W.Dims()
	if R < 1 || m != mc || n >= m || len(Z) != R {
		return nil, nil, ErrBadShape
	}
	N := 0
	for r, z := range Z {
		if z == nil {
			return nil, nil, ErrNilInput
		}
		zr, zc := z.Dims()
		if r == 0 {
			N = zc
		}
		if zr != m-n || zc != N {
			return nil, nil, ErrBadShape
		}
	}

	X = mat.NewDense(R*N, m, nil)
	rows = make([]int, R*N)
	v := mat.NewVecDense(m, nil)
	x := mat.NewVecDense(m, nil)
	for r := 0; r < R; r++ {
		for k := 0; k < N; k++ {
			for j := 0; j < n; j++ {
				v.SetVec(j, Y.At(r, j))
			}
			for j := 0; j < m-n; j++ {
				v.SetVec(n+j, Z[r].At(j, k))
			}
			x.MulVec(W, v)
			idx := r*N + k
			for j := 0; j < m; j++ {
				X.Set(idx, j, x.AtVec(j))
			}
			rows[idx] = r
		}
	}

	return X, rows, nil
}
